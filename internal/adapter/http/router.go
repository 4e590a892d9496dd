package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/openmfi/loancore/internal/adapter/http/handler"
	"github.com/openmfi/loancore/internal/adapter/http/middleware"
	"github.com/openmfi/loancore/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	LoanHandler      *handler.LoanHandler
	RepaymentHandler *handler.RepaymentHandler
	RuleHandler      *handler.RuleHandler
	AccountHandler   *handler.AccountHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Metrics)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Loans
		r.Route("/loans", func(r chi.Router) {
			r.Post("/", cfg.LoanHandler.Create)
			r.Get("/", cfg.LoanHandler.List)
			r.Get("/{id}", cfg.LoanHandler.Get)
			r.Post("/{id}/repayments", cfg.RepaymentHandler.Create)
			r.Get("/{id}/entries", cfg.RepaymentHandler.ListEntries)
		})

		// Schedule dry runs
		r.Post("/schedules/preview", cfg.LoanHandler.PreviewSchedule)

		// Accounting rules
		r.Route("/rules", func(r chi.Router) {
			r.Post("/", cfg.RuleHandler.Create)
			r.Get("/", cfg.RuleHandler.List)
			r.Get("/{id}", cfg.RuleHandler.Get)
			r.Delete("/{id}", cfg.RuleHandler.Delete)
			r.Post("/resolve", cfg.RuleHandler.Resolve)
		})

		// Chart of accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
		})
	})

	return r
}
