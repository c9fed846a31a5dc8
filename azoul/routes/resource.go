package routes

import (
	"io"
	"net/http"

	"azoul/azoul/config"
	"azoul/azoul/controllers"
	"azoul/azoul/middlewares"

	"github.com/go-chi/chi/v5"
)

// ResourceRoutes exposes GET /, GET /{id}, POST /, PUT /{id} and
// DELETE /{id}. Writes always need an admin token; reads only when
// publicRead is false.
func ResourceRoutes[T any, PT interface {
	*T
	controllers.Model
}](ctrl *controllers.ResourceController[T, PT], cfg config.Config, publicRead bool) chi.Router {
	r := chi.NewRouter()
	registerResource(r, ctrl, cfg, publicRead)
	return r
}

func registerResource[T any, PT interface {
	*T
	controllers.Model
}](r chi.Router, ctrl *controllers.ResourceController[T, PT], cfg config.Config, publicRead bool) {
	admin := middlewares.AdminMiddleware(cfg)

	r.Group(func(gr chi.Router) {
		if !publicRead {
			gr.Use(admin)
		}
		gr.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
			limit, offset := paging(r)
			items, err := ctrl.List(r.Context(), limit, offset)
			if err != nil {
				return nil, 0, err
			}
			return items, http.StatusOK, nil
		}))
		gr.Get("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
			item, err := ctrl.Get(r.Context(), chi.URLParam(r, "id"))
			if err != nil {
				return nil, 0, err
			}
			return item, http.StatusOK, nil
		}))
	})

	r.Group(func(gr chi.Router) {
		gr.Use(admin)
		gr.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
			r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
			item := new(T)
			if err := decodeJSON(r, item); err != nil {
				return nil, 0, err
			}
			created, err := ctrl.Create(r.Context(), item)
			if err != nil {
				return nil, 0, err
			}
			return created, http.StatusCreated, nil
		}))
		gr.Put("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
			patch, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
			if err != nil {
				return nil, 0, err
			}
			updated, err := ctrl.Update(r.Context(), chi.URLParam(r, "id"), patch)
			if err != nil {
				return nil, 0, err
			}
			return updated, http.StatusOK, nil
		}))
		gr.Delete("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
			if err := ctrl.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
				return nil, 0, err
			}
			return nil, http.StatusNoContent, nil
		}))
	})
}
