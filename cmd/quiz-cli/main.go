package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"subject-quiz/internal/cli"
	"subject-quiz/internal/config"
	"subject-quiz/internal/dataset"
	"subject-quiz/internal/quiz"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	budget := flag.Int("budget", cfg.TimeBudget, "seconds allotted per quiz run")
	subject := flag.String("subject", "", "subject to select on startup")
	flag.Parse()
	if err := cfg.SetTimeBudget(*budget); err != nil {
		return fmt.Errorf("-budget: %w", err)
	}

	// Keep log lines out of the quiz screen unless asked for.
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.LogLevel = "warn"
	}
	log := config.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bank, err := dataset.Load(ctx, cfg.DBDriver, cfg.DBDSN, log)
	if err != nil {
		return err
	}

	controller := quiz.NewController(
		bank,
		quiz.WithBudget(cfg.TimeBudget),
		quiz.WithTickInterval(cfg.TickInterval),
		quiz.WithLogger(log),
	)
	defer controller.Close()

	if *subject != "" {
		controller.Dispatch(quiz.ChooseSubject(*subject))
	}
	return cli.Run(ctx, os.Stdin, os.Stdout, controller, bank, log)
}
