package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appanalysis "github.com/bryanwahyu/venture-insight/internal/application/analysis"
	"github.com/bryanwahyu/venture-insight/internal/config"
	domain "github.com/bryanwahyu/venture-insight/internal/domain/analysis"
	aiopenai "github.com/bryanwahyu/venture-insight/internal/infra/ai/openai"
	"github.com/bryanwahyu/venture-insight/internal/infra/httpserver"
	"github.com/bryanwahyu/venture-insight/internal/infra/storage"
	"github.com/bryanwahyu/venture-insight/internal/middleware"
)

func main() {
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	if cfg.OpenAI.APIKey == "" {
		log.Fatal("openai api key is required (config openai.apiKey or OPENAI_API_KEY)")
	}

	ctx := context.Background()

	// Text-generation client is injected explicitly; no ambient init.
	gen := aiopenai.NewClientWithBaseURL(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL)

	svc := appanalysis.NewService(gen)
	svc.Timeout = cfg.SectionTimeout()
	svc.MaxConcurrent = cfg.Analysis.MaxConcurrent

	// Optional report store for exported analyses.
	var reports domain.ReportStore
	if cfg.Storage.Enabled {
		store, err := storage.New(ctx,
			cfg.Storage.Endpoint,
			cfg.Storage.Region,
			cfg.Storage.BucketName,
			cfg.Storage.AccessKey,
			cfg.Storage.SecretKey,
			cfg.Storage.UseSSL,
		)
		if err != nil {
			log.Fatalf("storage init error: %v", err)
		}
		reports = store
	}

	mux := chi.NewRouter()
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))
	mux.Use(middleware.RequestLogger)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.RateLimitMiddleware(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate))
	mux.Mount("/", httpserver.NewRouter(svc, reports))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     mux,
		ReadTimeout: 15 * time.Second,
		// Analyze holds the connection for the full fan-out; give writes room.
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
