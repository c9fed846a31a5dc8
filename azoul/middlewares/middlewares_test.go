package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"azoul/azoul/config"
	httputils "azoul/azoul/utils/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func okHandler(w http.ResponseWriter, r *http.Request) {
	subject, _ := r.Context().Value(SubjectKey).(string)
	w.Write([]byte(subject))
}

func TestCORS(t *testing.T) {
	h := CORS(http.HandlerFunc(okHandler))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodOptions, "/api/chat", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/chat", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestAdminMiddleware(t *testing.T) {
	h := AdminMiddleware(config.Config{JWTSecret: testSecret})(http.HandlerFunc(okHandler))

	valid, err := IssueAdminToken(testSecret, "ops@azoul.ma", time.Hour)
	require.NoError(t, err)
	expired, err := IssueAdminToken(testSecret, "ops@azoul.ma", -time.Hour)
	require.NoError(t, err)
	wrongKey, err := IssueAdminToken("other", "ops@azoul.ma", time.Hour)
	require.NoError(t, err)
	visitor, err := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{Role: "visitor"}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage", "Bearer abc", http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong key", "Bearer " + wrongKey, http.StatusUnauthorized},
		{"not admin", "Bearer " + visitor, http.StatusForbidden},
		{"admin", "Bearer " + valid, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			assert.Equal(t, tc.want, rr.Code)
			if tc.want == http.StatusOK {
				assert.Equal(t, "ops@azoul.ma", rr.Body.String())
				return
			}
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			var body httputils.ErrorBody
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
			_, err := time.Parse(httputils.TimestampLayout, body.Timestamp)
			assert.NoError(t, err)
		})
	}
}

func TestAdminMiddlewareWithoutSecret(t *testing.T) {
	_, err := IssueAdminToken("", "ops", time.Hour)
	assert.ErrorIs(t, err, ErrNoSecret)

	token, err := IssueAdminToken(testSecret, "ops", time.Hour)
	require.NoError(t, err)
	h := AdminMiddleware(config.Config{})(http.HandlerFunc(okHandler))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	h := middleware.RequestID(RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}
