package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/matex-shoes/storefront/internal/order/application"
	orderhttp "github.com/matex-shoes/storefront/internal/order/infrastructure/http"
	"github.com/matex-shoes/storefront/internal/order/infrastructure/jsonfile"
	ordersmtp "github.com/matex-shoes/storefront/internal/order/infrastructure/smtp"
	"github.com/matex-shoes/storefront/pkg/config"
	"github.com/matex-shoes/storefront/pkg/logging"
	"github.com/matex-shoes/storefront/pkg/shutdown"
)

func main() {
	log := logging.New("storefront-server")

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}

	store := jsonfile.New(log, cfg.StorePath)
	if err := store.Init(); err != nil {
		log.Error("store init failed", "path", cfg.StorePath, "err", err)
		os.Exit(1)
	}

	notifier, err := ordersmtp.NewNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass, cfg.OrderRecipient)
	if err != nil {
		log.Error("smtp setup failed", "err", err)
		os.Exit(1)
	}

	svc := application.NewService(log, store, store, notifier)
	handler := orderhttp.NewHandler(log, svc, cfg.Production())

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Mount("/", handler.Routes())

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http listening", "addr", cfg.HTTPAddr, "store", cfg.StorePath, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server error", "err", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	svc.Wait()
	log.Info("storefront-server shutdown complete")
}
