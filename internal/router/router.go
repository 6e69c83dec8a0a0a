package router

import (
	"net/http"

	"rulebook/internal/handler"
	"rulebook/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(rulesHandler *handler.RulesHandler, apiKey string, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Recovery -> RequestID -> Logging -> CORS, then APIKeyAuth on /api
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	r.NotFound(handler.NotFound(logger))

	r.Get("/health", handler.Health(logger))

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(apiKey, logger))

		r.Get("/coupons", rulesHandler.GetCoupons)
		r.Post("/discounts", rulesHandler.CalculateDiscount)
		r.Post("/users/validate", rulesHandler.ValidateUser)
		r.Get("/prices/in-range", rulesHandler.PriceInRange)
		r.Post("/usernames/validate", rulesHandler.ValidateUsername)
		r.Get("/driving-ages", rulesHandler.GetDrivingAges)
		r.Get("/driving-ages/{country}/eligibility", rulesHandler.CanDrive)
	})

	return r
}
