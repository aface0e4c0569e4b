package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"subject-quiz/internal/config"
	"subject-quiz/internal/dataset"
	"subject-quiz/internal/httpapi"
	"subject-quiz/internal/quiz"
	"subject-quiz/internal/userclient"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.NewLogger(config.Config{LogLevel: "info"}).WithError(err).Fatal("load config")
	}

	addr := flag.String("addr", cfg.Addr, "HTTP listen address")
	budget := flag.Int("budget", cfg.TimeBudget, "seconds allotted per quiz run")
	healthcheck := flag.Bool("healthcheck", false, "check /healthz of a service listening on -addr and exit")
	flag.Parse()

	log := config.NewLogger(cfg)
	if err := cfg.SetTimeBudget(*budget); err != nil {
		log.WithError(err).Fatal("invalid -budget")
	}

	if *healthcheck {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		health, err := userclient.NewHTTPClient(userclient.BaseURLForAddr(*addr), nil).Health(ctx)
		if err != nil {
			log.WithError(err).Fatal("health check failed")
		}
		log.WithField("session_id", health.SessionID).Info("quiz-service healthy")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bank, err := dataset.Load(ctx, cfg.DBDriver, cfg.DBDSN, log)
	if err != nil {
		log.WithError(err).Fatal("load question bank")
	}

	controller := quiz.NewController(
		bank,
		quiz.WithBudget(cfg.TimeBudget),
		quiz.WithTickInterval(cfg.TickInterval),
		quiz.WithLogger(log),
	)
	defer controller.Close()

	server := &http.Server{
		Addr: *addr,
		Handler: httpapi.NewRouter(controller, bank, httpapi.RouterOptions{
			AllowedOrigins: cfg.AllowedOrigins,
			Logger:         log,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("graceful shutdown failed")
		}
	}()

	log.WithField("addr", *addr).Info("quiz-service listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Error("server failed")
		return
	}
	log.Info("quiz-service stopped")
}
