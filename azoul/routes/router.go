package routes

import (
	"time"

	"azoul/azoul/config"
	"azoul/azoul/controllers"
	"azoul/azoul/middlewares"
	"azoul/azoul/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Deps are the controllers behind the router. Content and Media are nil
// when their backing store is not configured.
type Deps struct {
	Chat    *controllers.ChatController
	Health  *controllers.HealthController
	Content *controllers.Content
	Media   *controllers.MediaController
}

func NewRouter(cfg config.Config, deps Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CORS)

	r.Mount("/health", HealthRoutes(deps.Health))
	// no timeout here: the socket lives as long as the widget is open
	r.Mount("/chat", SessionRoutes(deps.Chat))

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(60 * time.Second))
		api.Mount("/chat", ChatRoutes(deps.Chat))

		if c := deps.Content; c != nil {
			api.Mount("/destinations", DestinationRoutes(c, cfg))
			api.Mount("/features", ResourceRoutes(c.Features, cfg, true))
			api.Mount("/tours", TourRoutes(c, cfg))
			api.Mount("/accommodations", ResourceRoutes(c.Accommodations, cfg, true))
			api.Mount("/courses", ResourceRoutes(c.Courses, cfg, true))
			api.Mount("/guides", ResourceRoutes(c.Guides, cfg, true))
			api.Mount("/bookings", ResourceRoutes(c.Bookings, cfg, false))
			api.Mount("/users", ResourceRoutes(c.Users, cfg, false))
			api.Mount("/subscribers", SubscriberRoutes(c.Subscribers, cfg))
		} else {
			logging.AppLogger.Warn("no database configured, content routes disabled")
		}

		if deps.Media != nil {
			api.Mount("/media", MediaRoutes(deps.Media, cfg))
		} else {
			logging.AppLogger.Warn("no object storage configured, media routes disabled")
		}
	})
	return r
}
