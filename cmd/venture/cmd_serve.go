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
	"github.com/spf13/cobra"

	domain "github.com/bryanwahyu/venture-insight/internal/domain/analysis"
	"github.com/bryanwahyu/venture-insight/internal/infra/httpserver"
	"github.com/bryanwahyu/venture-insight/internal/infra/storage"
	"github.com/bryanwahyu/venture-insight/internal/middleware"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cfg, err := newService()
		if err != nil {
			return err
		}

		var reports domain.ReportStore
		if cfg.Storage.Enabled {
			store, err := storage.New(cmd.Context(),
				cfg.Storage.Endpoint,
				cfg.Storage.Region,
				cfg.Storage.BucketName,
				cfg.Storage.AccessKey,
				cfg.Storage.SecretKey,
				cfg.Storage.UseSSL,
			)
			if err != nil {
				return err
			}
			reports = store
		}

		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			port = cfg.Server.Port
		}

		mux := chi.NewRouter()
		mux.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"*"},
		}))
		mux.Use(middleware.RequestLogger)
		mux.Use(middleware.MetricsMiddleware)
		mux.Use(middleware.RateLimitMiddleware(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate))
		mux.Mount("/", httpserver.NewRouter(svc, reports))

		addr := fmt.Sprintf(":%d", port)
		srv := &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 5 * time.Minute,
			IdleTimeout:  60 * time.Second,
		}

		go func() {
			log.Printf("server listening on %s", addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("server error: %v", err)
			}
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Println("shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (overrides config)")

	rootCmd.AddCommand(serveCmd)
}
