package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itchan-dev/authd/internal/config"
	"github.com/itchan-dev/authd/internal/handler"
	"github.com/itchan-dev/authd/internal/middleware"
	"github.com/itchan-dev/authd/internal/middleware/metrics"
)

// New creates and configures the router with all the routes.
func New(h *handler.Handler, authMw *middleware.Auth, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(middleware.SecurityHeaders(cfg.Public.SecureCookies))

	if len(cfg.Public.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Public.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
		r.Post("/verify-2fa", h.Verify2FA)
		r.Post("/verify-token", h.VerifyToken)
		r.Post("/logout", h.Logout)

		r.Group(func(r chi.Router) {
			r.Use(authMw.NeedAuth()) // enforce token validation with revocation check
			r.Get("/me", h.Me)
		})
	})

	return r
}
