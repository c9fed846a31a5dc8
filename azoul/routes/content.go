package routes

import (
	"net/http"

	"azoul/azoul/config"
	"azoul/azoul/controllers"
	"azoul/azoul/middlewares"
	"azoul/azoul/sources/psql/dao"

	"github.com/go-chi/chi/v5"
)

// TourRoutes adds the admin bookings-per-tour listing to the tour CRUD.
func TourRoutes(c *controllers.Content, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.With(middlewares.AdminMiddleware(cfg)).Get("/{id}/bookings", handleJSON(func(r *http.Request) (any, int, error) {
		bookings, err := c.BookingDAO.ListByTour(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			return nil, 0, err
		}
		return bookings, http.StatusOK, nil
	}))
	registerResource(r, c.Tours, cfg, true)
	return r
}

// DestinationRoutes adds the public lookup by slug used by the site pages.
func DestinationRoutes(c *controllers.Content, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Get("/slug/{slug}", handleJSON(func(r *http.Request) (any, int, error) {
		d, err := c.DestinationDAO.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			return nil, 0, err
		}
		if d == nil {
			return nil, 0, dao.ErrNotFound
		}
		return d, http.StatusOK, nil
	}))
	registerResource(r, c.Destinations, cfg, true)
	return r
}
