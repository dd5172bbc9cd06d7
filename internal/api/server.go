package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/Wozus/Fc-tournament/internal/api/handler"
	"github.com/Wozus/Fc-tournament/internal/config"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(h *handler.Handler, sessions SessionResolver, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS. Credentials are allowed so the session cookie crosses origins.
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "ETag"},
		AllowCredentials: true,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// Session lookup, once per request.
	r.Use(SessionMiddleware(sessions))

	// --- Routes ---

	r.Get("/", h.Root)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
	})

	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	authRoutes := func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Get("/me", h.Me)
	}
	r.Route("/auth", authRoutes)
	r.Route("/api/auth", authRoutes)

	r.Route("/api", func(r chi.Router) {
		r.Get("/club-logo", h.GetClubLogo)

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", h.ListTournaments)
			r.Post("/", h.CreateTournament)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetTournament)
				r.Delete("/", h.DeleteTournament)
				r.Get("/leaderboard", h.GetLeaderboard)

				r.Route("/matches", func(r chi.Router) {
					r.Get("/", h.ListMatches)
					r.Post("/", h.CreateMatch)
					r.Get("/next", h.NextMatchNo)
					r.Get("/{matchId}", h.GetMatch)
					r.Put("/{matchId}", h.UpdateMatch)
					r.Delete("/{matchId}", h.DeleteMatch)
				})
			})
		})
	})

	return r
}
