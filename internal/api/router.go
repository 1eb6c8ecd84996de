// Package api serves the tracker over a local HTTP JSON API for browser
// front ends.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/blackwell-systems/mindwell/internal/tracker"
)

// Options configures the router.
type Options struct {
	CORSOrigins []string

	// JournalListLimit is the default page size for GET /journal.
	JournalListLimit int
}

// NewRouter returns the HTTP handler for the API.
func NewRouter(svc *tracker.Service, log *zap.SugaredLogger, opts Options) http.Handler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger(log))
	r.Use(chimw.Recoverer)

	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			ExposedHeaders: []string{"X-Request-Id"},
			MaxAge:         300,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	h := &Handler{Svc: svc, Log: log, JournalListLimit: opts.JournalListLimit}
	r.Get("/dashboard", h.Dashboard)

	r.Route("/checkins", func(r chi.Router) {
		r.Get("/", h.ListCheckIns)
		r.Post("/", h.CreateCheckIn)
	})
	r.Route("/journal", func(r chi.Router) {
		r.Get("/", h.ListJournal)
		r.Post("/", h.CreateJournal)
	})

	r.Post("/sentiment", h.Sentiment)
	r.Get("/recommendations", h.Recommendations)
	r.Get("/insights", h.Insights)

	return r
}

// requestLogger logs one line per request with its outcome.
func requestLogger(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				log.Infow("request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
					"request_id", chimw.GetReqID(r.Context()),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
