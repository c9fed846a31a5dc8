package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Pinger is any dependency the health check can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthController struct {
	checks map[string]Pinger
}

// NewHealthController probes checks on every request; a nil entry is
// reported as "disabled".
func NewHealthController(checks map[string]Pinger) *HealthController {
	return &HealthController{checks: checks}
}

func (h *HealthController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	body := map[string]string{"status": "ok"}
	status := http.StatusOK
	for name, check := range h.checks {
		switch {
		case check == nil:
			body[name] = "disabled"
		case check.Ping(ctx) != nil:
			body[name] = "down"
			body["status"] = "degraded"
			status = http.StatusServiceUnavailable
		default:
			body[name] = "up"
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
