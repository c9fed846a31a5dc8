package routes

import (
	"net/http"

	"azoul/azoul/config"
	"azoul/azoul/controllers"

	"github.com/go-chi/chi/v5"
)

type subscribeRequest struct {
	Email    string `json:"email"`
	Language string `json:"language"`
}

// SubscriberRoutes: the newsletter form is public, the list is admin only.
func SubscriberRoutes(ctrl *controllers.SubscriberController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Post("/subscribe", handleJSON(func(r *http.Request) (any, int, error) {
		r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
		var req subscribeRequest
		if err := decodeJSON(r, &req); err != nil {
			return nil, 0, err
		}
		sub, created, err := ctrl.Subscribe(r.Context(), req.Email, req.Language)
		if err != nil {
			return nil, 0, err
		}
		if created {
			return sub, http.StatusCreated, nil
		}
		return sub, http.StatusOK, nil
	}))
	registerResource(r, ctrl.ResourceController, cfg, false)
	return r
}
