package config

import (
	"context"
	"io"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

type loggerKey struct{}

// NewLogger builds the process logger. Unknown levels fall back to info.
func NewLogger(cfg Config) *logrus.Logger {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg Config, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}

func ContextWithLogger(ctx context.Context, log logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerKey{}, log)
}

// WithContext returns the request-scoped logger, tagged with the chi request
// ID when there is one.
func WithContext(ctx context.Context) logrus.FieldLogger {
	log, ok := ctx.Value(loggerKey{}).(logrus.FieldLogger)
	if !ok {
		log = logrus.StandardLogger()
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		return log.WithField("request_id", reqID)
	}
	return log
}
