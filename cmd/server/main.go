package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/openmfi/loancore/internal/adapter/http"
	"github.com/openmfi/loancore/internal/adapter/http/handler"
	"github.com/openmfi/loancore/internal/adapter/http/middleware"
	postgresRepo "github.com/openmfi/loancore/internal/adapter/repository/postgres"
	redisRepo "github.com/openmfi/loancore/internal/adapter/repository/redis"
	"github.com/openmfi/loancore/internal/infrastructure/config"
	"github.com/openmfi/loancore/internal/infrastructure/logger"
	"github.com/openmfi/loancore/internal/infrastructure/metrics"
	"github.com/openmfi/loancore/internal/infrastructure/postgres"
	"github.com/openmfi/loancore/internal/infrastructure/redis"
	"github.com/openmfi/loancore/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx := context.Background()

	// Apply pending migrations before accepting traffic
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	loanRepo := postgresRepo.NewLoanRepository(pool)
	installmentRepo := postgresRepo.NewInstallmentRepository(pool)
	ruleRepo := postgresRepo.NewRuleRepository(pool)
	journalRepo := postgresRepo.NewJournalRepository(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	ruleCache := redisRepo.NewRuleSnapshotCache(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	m := metrics.New()

	// Initialize use cases
	loanUC := usecase.NewLoanUseCase(txManager, loanRepo, installmentRepo, idGen).WithMetrics(m)
	ruleUC := usecase.NewRuleUseCase(ruleRepo, ruleCache, idGen, cfg.RuleCacheTTL).WithMetrics(m)
	repaymentUC := usecase.NewRepaymentUseCase(txManager, loanRepo, installmentRepo, journalRepo, ruleUC, idGen).
		WithRetrier(postgresRepo.NewRetrier()).
		WithMetrics(m)

	// Initialize handlers
	loanHandler := handler.NewLoanHandler(loanUC)
	repaymentHandler := handler.NewRepaymentHandler(repaymentUC)
	ruleHandler := handler.NewRuleHandler(ruleUC)
	accountHandler := handler.NewAccountHandler(accountRepo)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	routerCfg := httpAdapter.RouterConfig{
		LoanHandler:      loanHandler,
		RepaymentHandler: repaymentHandler,
		RuleHandler:      ruleHandler,
		AccountHandler:   accountHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		Logger:           log.Logger,
	}

	if cfg.RateLimitPerSecond > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
	}

	// Create router
	router := httpAdapter.NewRouter(routerCfg)

	// Serve Prometheus metrics alongside the API
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      mux,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
