package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpLayer "mortgage-engine/http"
	"mortgage-engine/metrics"
	"mortgage-engine/repository"
	"mortgage-engine/service"
)

func main() {
	cfg := loadConfig()

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
		log.Printf("using redis cache at %s", cfg.RedisAddr)
	} else {
		cache = repository.NewMemoryCache()
	}

	m := metrics.New()

	amortizationService := service.NewAmortizationService(cache, cfg.CacheTTL)
	scenarioService := service.NewScenarioService(amortizationService)
	termService := service.NewTermComparisonService(amortizationService)

	mortgageHandler := httpLayer.NewMortgageHandler(amortizationService, m)
	scenarioHandler := httpLayer.NewScenarioHandler(scenarioService)
	termHandler := httpLayer.NewTermComparisonHandler(termService)
	exportHandler := httpLayer.NewExportHandler(amortizationService, m)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/mortgage/schedule",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(mortgageHandler.CalculateSchedule),
		),
	)
	mux.Handle(
		"/mortgage/compare",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(scenarioHandler.CompareScenarios),
		),
	)
	mux.Handle(
		"/mortgage/terms",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(termHandler.CompareTerms),
		),
	)
	mux.Handle(
		"/mortgage/export",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(exportHandler.ExportSchedule),
		),
	)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("mortgage engine listening on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
