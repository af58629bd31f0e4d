package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	apiadapter "github.com/rafaeltov/acessopainel/internal/adapter/driven/api"
	httphandler "github.com/rafaeltov/acessopainel/internal/adapter/driving/http"
	webhandler "github.com/rafaeltov/acessopainel/internal/adapter/driving/web"
	"github.com/rafaeltov/acessopainel/internal/application"
	"github.com/rafaeltov/acessopainel/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on missing required env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"api_base_url", cfg.APIBaseURL,
		"api_timeout", cfg.APITimeout,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Create the directory API client. One client for everything: the
	// cookie jar it carries IS the session.
	client, err := apiadapter.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	if err != nil {
		return err
	}

	// 4. Wire application services. The session check runs in the
	// background; the route guard shows a placeholder until it settles.
	sessionSvc := application.NewSessionService(client)
	go sessionSvc.CheckSession(ctx)

	statsSvc := application.NewStatsService(client, client, client)

	// 5. Register routes: JSON surface and the HTML GUI on one mux.
	mux := http.NewServeMux()

	apiHandler := httphandler.NewHandler(sessionSvc, statsSvc, slog.Default())
	httphandler.RegisterRoutes(mux, apiHandler)

	webHandler := webhandler.NewHandler(sessionSvc, statsSvc, client, client, client, client, slog.Default())
	webhandler.RegisterRoutes(mux, webHandler)

	handler := httphandler.ApplyMiddleware(mux, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
		}
	}()

	slog.Info("acessopainel started", "listen_addr", cfg.ListenAddr)

	// 6. Wait for shutdown signal.
	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
