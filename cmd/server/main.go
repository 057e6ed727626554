package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"adev-backend/internal/platform/config"
	"adev-backend/internal/platform/httpserver"
	"adev-backend/internal/platform/logger"
	"adev-backend/internal/platform/metrics"
	registrationhandler "adev-backend/internal/registration/handler"
	registrationservice "adev-backend/internal/registration/service"
	registrationstore "adev-backend/internal/registration/store"
	"adev-backend/internal/registration/webhook"
	schedulehandler "adev-backend/internal/schedule/handler"
	scheduleservice "adev-backend/internal/schedule/service"
	schedulestore "adev-backend/internal/schedule/store"
	httptransport "adev-backend/internal/transport/http"
)

// main owns the exit code; all wiring lives in run so that deferred
// cleanup (store pools) executes on every failure path.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server exited with error", "error", err)
		stop()
		os.Exit(1)
	}
	log.Info("shutdown complete")
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	m := metrics.New(registry)

	// The two stores are intentionally independent: separate databases,
	// separate pools, no shared transaction.
	var visitorStore registrationstore.Store
	if cfg.CadastrosDSN != "" {
		ps, err := registrationstore.NewPostgres(ctx, cfg.CadastrosDSN)
		if err != nil {
			return fmt.Errorf("cadastros store init: %w", err)
		}
		defer func() { _ = ps.Close() }()
		visitorStore = ps
	} else {
		log.Warn("ADEV_CADASTROS_DSN not set, using in-memory visitor store")
		visitorStore = registrationstore.NewMemory()
	}

	var scheduleStore schedulestore.Store
	if cfg.ProgramacaoDSN != "" {
		ps, err := schedulestore.NewPostgres(ctx, cfg.ProgramacaoDSN)
		if err != nil {
			return fmt.Errorf("programacao store init: %w", err)
		}
		defer func() { _ = ps.Close() }()
		scheduleStore = ps
	} else {
		log.Warn("ADEV_PROGRAMACAO_DSN not set, using in-memory schedule store")
		scheduleStore = schedulestore.NewMemory()
	}

	dispatcher := webhook.New(cfg.WebhookURL, cfg.WebhookQueueSize, log, m)

	regService, err := registrationservice.New(visitorStore, dispatcher, log, m)
	if err != nil {
		return fmt.Errorf("registration service init: %w", err)
	}
	schedService, err := scheduleservice.New(scheduleStore, log, m)
	if err != nil {
		return fmt.Errorf("schedule service init: %w", err)
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:       log,
		Registration: registrationhandler.New(regService, log),
		Schedule:     schedulehandler.New(schedService, log),
		AdminSecret:  cfg.AdminSecret,
		Gatherer:     registry,
	})
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting adev backend", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return dispatcher.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
