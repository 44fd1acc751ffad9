package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/techflow/pkg/domain/interfaces"
	"github.com/secmon-lab/techflow/pkg/domain/model"
	"github.com/secmon-lab/techflow/pkg/domain/types"
	"github.com/secmon-lab/techflow/pkg/service/render"
	"github.com/secmon-lab/techflow/pkg/utils/async"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router  chi.Router
	repo    interfaces.ReportRepository
	runner  interfaces.ReportRunner
	baseURL string

	// runMu allows a single on-demand report run at a time
	runMu sync.Mutex
}

// Option configures Server
type Option func(*Server)

// WithRunner enables POST /api/reports
func WithRunner(runner interfaces.ReportRunner) Option {
	return func(s *Server) {
		s.runner = runner
	}
}

// WithBaseURL sets the external URL used in dashboard links
func WithBaseURL(baseURL string) Option {
	return func(s *Server) {
		s.baseURL = baseURL
	}
}

// NewServer creates a new HTTP server over the report archive
func NewServer(ctx context.Context, addr string, repo interfaces.ReportRepository, opts ...Option) *Server {
	router := chi.NewRouter()

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
		repo:   repo,
	}
	for _, opt := range opts {
		opt(server)
	}

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.Get("/health", handleHealth)

	router.Route("/api/reports", func(r chi.Router) {
		r.Get("/", server.handleListReports)
		r.Get("/latest", server.handleLatestReport)
		r.Get("/{date}", server.handleGetReport)
		r.Post("/", server.handleRunReport)
	})
	router.Get("/reports/{date}", server.handleDashboard)

	return server
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "techflow",
	})
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	dates, err := s.repo.ListReportDates(r.Context())
	if err != nil {
		s.writeRepoError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"dates": dates})
}

func (s *Server) handleLatestReport(w http.ResponseWriter, r *http.Request) {
	report, err := s.repo.GetLatestReport(r.Context())
	if err != nil {
		s.writeRepoError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, report)
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	report, ok := s.lookupReport(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, report)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	report, ok := s.lookupReport(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := render.Dashboard(&buf, report); err != nil {
		ctxlog.From(r.Context()).Error("Failed to render dashboard", "error", err, "date", report.Date)
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write dashboard", "error", err)
	}
}

type runResponse struct {
	Report       *model.Report `json:"report"`
	DashboardURL string        `json:"dashboard_url"`
}

func (s *Server) handleRunReport(w http.ResponseWriter, r *http.Request) {
	if s.runner == nil {
		writeError(w, goerr.New("report generation is not enabled"), http.StatusNotImplemented)
		return
	}
	if !s.runMu.TryLock() {
		writeError(w, goerr.New("a report run is already in progress"), http.StatusConflict)
		return
	}

	if r.URL.Query().Get("async") == "true" {
		async.Dispatch(r.Context(), func(ctx context.Context) error {
			defer s.runMu.Unlock()
			_, err := s.runner.Run(ctx)
			return err
		})
		writeJSON(w, r, http.StatusAccepted, map[string]string{"status": "accepted"})
		return
	}
	defer s.runMu.Unlock()

	report, err := s.runner.Run(r.Context())
	if err != nil {
		ctxlog.From(r.Context()).Error("Report run failed", "error", err)
		writeError(w, err, http.StatusBadGateway)
		return
	}
	if report == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, r, http.StatusCreated, runResponse{
		Report:       report,
		DashboardURL: ResolveBaseURL(r, s.baseURL) + "/reports/" + report.Date.String(),
	})
}

// lookupReport loads the report named by the {date} URL parameter and writes
// the error response when it cannot
func (s *Server) lookupReport(w http.ResponseWriter, r *http.Request) (*model.Report, bool) {
	date := types.ReportDate(chi.URLParam(r, "date"))
	if err := date.Validate(); err != nil {
		writeError(w, err, http.StatusBadRequest)
		return nil, false
	}

	report, err := s.repo.GetReport(r.Context(), date)
	if err != nil {
		s.writeRepoError(w, r, err)
		return nil, false
	}
	return report, true
}

func (s *Server) writeRepoError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, model.ErrReportNotFound) {
		writeError(w, err, http.StatusNotFound)
		return
	}
	ctxlog.From(r.Context()).Error("Report archive error", "error", err)
	writeError(w, err, http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, err error, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	if err := json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	}); err != nil {
		// Can't get context here, so use background context
		ctxlog.From(context.Background()).Error("Failed to encode error response", "error", err)
	}
}
