package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const requestTimeout = 30 * time.Second

type Handlers struct {
	Calculations *CalculationHandler
	GPA          *GPAHandler
	Account      *AccountHandler
}

// NewRouter mounts the API under /api behind the per-IP rate limiter.
func NewRouter(h Handlers, limiter *RateLimiter, corsOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(RateLimitMiddleware(limiter))

		api.Route("/calculations", func(cr chi.Router) {
			cr.Get("/", h.Calculations.ListCalculations)
			cr.Get("/{name}", h.Calculations.DescribeCalculation)
			cr.Post("/{name}/evaluate", h.Calculations.EvaluateCalculation)
		})

		api.Post("/gpa", h.GPA.CalculateGPA)

		api.Route("/account", func(ar chi.Router) {
			ar.Get("/me", h.Account.CurrentUser)
			ar.Post("/reports", h.Account.SubmitReport)
			ar.Put("/settings", h.Account.UpdateSettings)
		})
	})

	return r
}
