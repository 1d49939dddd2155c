package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/finsight/internal/config"
)

type Services struct {
	Submitter    Submitter
	Submissions  SubmissionsReader
	Transactions TransactionsReader
	Exporter     TransactionsExporter
	Orchestrator Orchestrator
	Backend      HealthChecker
}

type Server struct {
	httpServer *http.Server
}

func NewRouter(log *slog.Logger, svc Services) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	submissions := NewSubmissionsHandler(log, svc.Submitter, svc.Submissions, svc.Transactions, svc.Exporter)
	state := NewStateHandler(log, svc.Orchestrator, svc.Backend, svc.Submitter)
	progress := NewProgressHandler(log, svc.Orchestrator)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", state.GetHealth)

		r.Route("/submissions", func(r chi.Router) {
			r.Get("/", submissions.GetSubmissions)
			r.Post("/", submissions.CreateSubmission)
			r.Get("/{id}", submissions.GetSubmission)
			r.Get("/{id}/transactions.csv", submissions.GetTransactionsCSV)
		})

		r.Get("/progress", progress.Stream)

		r.Get("/state", state.GetState)
		r.Post("/state/reset", state.Reset)
		r.Post("/state/retry", state.Retry)
	})

	return r
}

func NewServer(cfg config.HTTP, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      handler,
		},
	}
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
