// Package dashboard serves the interactive movie analysis pages and a small
// JSON API over a loaded dataset.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/ukaji3/moviereport-go/internal/config"
	"github.com/ukaji3/moviereport-go/pkg/moviereport"
)

// Server holds the dataset shown by the dashboard.
type Server struct {
	dataset *moviereport.Dataset
	opts    moviereport.Options
	logger  *slog.Logger

	// mu serializes report and chart generation, which write shared files.
	mu sync.Mutex
}

// New creates a dashboard over ds. Report generation always runs in full
// mode using the paths in opts.
func New(ds *moviereport.Dataset, opts moviereport.Options, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	opts.Mode = moviereport.ModeFull
	return &Server{
		dataset: ds,
		opts:    opts,
		logger:  logger.With(slog.String("component", "dashboard")),
	}
}

// Routes returns the dashboard HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/search", http.StatusFound)
	})
	r.Get("/healthz", s.handleHealth)

	r.Get("/search", s.handleSearch)
	r.Get("/cleaning", s.handleCleaning)
	r.Get("/report", s.handleReportPage)
	r.Post("/report", s.handleGenerateReport)
	r.Get("/report/download", s.handleDownload)
	r.Get("/charts", s.handleChartsPage)
	r.Post("/charts", s.handleGenerateCharts)
	r.Get("/charts/{file}", s.handleChartImage)

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/movies", s.handleAPIMovie)
		r.Get("/summary", s.handleAPISummary)
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		renderError(w, "Page not found.", http.StatusNotFound)
	})
	return r
}

// requestLogger logs one line per request with the chi request ID.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			s.logger.Info("http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())))
		}()
		next.ServeHTTP(ww, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]any{
		"status": "ok",
		"source": s.dataset.Source,
		"movies": s.dataset.Clean.Len(),
	})
}

// ListenAndServe serves the dashboard on cfg.Addr until ctx is cancelled,
// then shuts down within cfg.ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context, cfg config.ServerConfig) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("dashboard listening", slog.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("dashboard server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down dashboard")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}
	return nil
}
