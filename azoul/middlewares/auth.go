package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"azoul/azoul/config"
	httputils "azoul/azoul/utils/http"
	"azoul/azoul/utils/logging"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type contextKey string

const SubjectKey contextKey = "subject"

const RoleAdmin = "admin"

var (
	ErrNoSecret     = errors.New("JWT_SECRET is not configured")
	ErrInvalidToken = errors.New("invalid token")
	ErrNotAdmin     = errors.New("admin role required")
)

// AdminClaims is the payload of back-office tokens.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueAdminToken signs an HS256 admin token for subject, valid for ttl.
func IssueAdminToken(secret, subject string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrNoSecret
	}
	now := time.Now()
	claims := AdminClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseAdminToken verifies signature, expiry and the admin role.
func ParseAdminToken(secret, tokenStr string) (*AdminClaims, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Role != RoleAdmin {
		return nil, ErrNotAdmin
	}
	return claims, nil
}

// AdminMiddleware guards back-office routes with a Bearer admin token.
func AdminMiddleware(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			parts := strings.Split(auth, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				httputils.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			claims, err := ParseAdminToken(cfg.JWTSecret, parts[1])
			switch {
			case errors.Is(err, ErrNotAdmin):
				httputils.WriteError(w, http.StatusForbidden, "forbidden")
				return
			case err != nil:
				if errors.Is(err, ErrNoSecret) {
					logging.ErrorLogger.Error("admin route hit without JWT_SECRET", zap.String("path", r.URL.Path))
				}
				httputils.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			ctx := context.WithValue(r.Context(), SubjectKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
