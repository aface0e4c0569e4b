package httpapi

import (
	"bytes"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"subject-quiz/internal/config"
	"subject-quiz/internal/quiz"
)

const maxLoggedResponseBytes = 512

type RouterOptions struct {
	AllowedOrigins []string
	Logger         logrus.FieldLogger
}

func NewRouter(controller *quiz.Controller, subjects SubjectLister, opts RouterOptions) http.Handler {
	api := NewAPI(controller, subjects)

	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithField("session_id", api.SessionID())

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))
	r.Use(requestLogger(log))

	r.Get("/healthz", api.HandleHealth)
	r.Get("/subjects", api.HandleSubjects)
	r.Get("/state", api.HandleState)
	r.Post("/actions", api.HandleActions)
	r.Get("/review", api.HandleReview)

	return r
}

// requestLogger attaches a request-scoped logger to the context and writes
// one access line per request. Response bodies are only logged at debug.
func requestLogger(log logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := config.ContextWithLogger(r.Context(), log)
			r = r.WithContext(ctx)

			recorder := &statusRecorder{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
				maxLogBytes:    maxLoggedResponseBytes,
			}
			next.ServeHTTP(recorder, r)

			entry := config.WithContext(ctx).WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   recorder.statusCode,
				"bytes":    recorder.bytesWritten,
				"duration": time.Since(start).String(),
			})
			if recorder.statusCode >= http.StatusInternalServerError {
				entry.Error("request failed")
				return
			}
			entry.Info("request handled")
			entry.WithField("truncated", recorder.truncated).Debugf("response body: %s", recorder.logBody.String())
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode   int
	maxLogBytes  int
	bytesWritten int
	logBody      bytes.Buffer
	truncated    bool
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if remaining := r.maxLogBytes - r.logBody.Len(); remaining > 0 {
		if len(p) > remaining {
			r.logBody.Write(p[:remaining])
			r.truncated = true
		} else {
			r.logBody.Write(p)
		}
	} else if len(p) > 0 {
		r.truncated = true
	}

	written, err := r.ResponseWriter.Write(p)
	r.bytesWritten += written
	return written, err
}
