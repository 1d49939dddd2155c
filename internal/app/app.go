package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/finsight/internal/config"
	v1 "github.com/kurochkinivan/finsight/internal/controller/http/v1"
	"github.com/kurochkinivan/finsight/internal/domain"
	"github.com/kurochkinivan/finsight/internal/infrastructure/csv_exporter"
	"github.com/kurochkinivan/finsight/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/finsight/internal/pipeline"
	"github.com/kurochkinivan/finsight/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const (
	jobsBuffer    = 100
	resultsBuffer = 50
	reportsBuffer = 100

	shutdownTimeout = 5 * time.Second
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("watch_dir", a.cfg.App.WatchDirectory),
		slog.String("reports_dir", a.cfg.App.ReportsDirectory),
		slog.Duration("scan_interval", a.cfg.App.DirectoryScanInterval),
		slog.String("backend_url", a.cfg.Backend.URL),
	)

	pool, err := a.connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	submissionsRepository := postgresql.NewSubmissionsRepository(pool)
	transactionsRepository := postgresql.NewTransactionsRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	if err := submissionsRepository.ResetProcessingSubmissions(ctx); err != nil {
		return fmt.Errorf("failed to reset processing submissions: %w", err)
	}

	agent := NewAgent(a.log, a.cfg)
	defer func() {
		if err := agent.Close(); err != nil {
			a.log.WarnContext(ctx, "failed to close session", slog.String("err", err.Error()))
		}
	}()

	return a.startPipeline(ctx, agent, submissionsRepository, transactionsRepository, txManager)
}

// History returns the most recent submissions and the total count.
func (a *App) History(ctx context.Context, limit uint64) ([]*domain.Submission, int, error) {
	pool, err := a.connect(ctx)
	if err != nil {
		return nil, -1, err
	}
	defer pool.Close()

	return postgresql.NewSubmissionsRepository(pool).SubmissionsPage(ctx, limit, 0)
}

func (a *App) connect(ctx context.Context) (*pgxpool.Pool, error) {
	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	return pool, nil
}

func (a *App) startPipeline(
	ctx context.Context,
	agent *Agent,
	submissionsRepo *postgresql.SubmissionsRepository,
	transactionsRepo *postgresql.TransactionsRepository,
	txManager *postgresql.TxManager,
) error {
	jobs := make(chan *domain.Job, jobsBuffer)
	results := make(chan *domain.JobResult, resultsBuffer)
	reports := make(chan *domain.JobResult, reportsBuffer)

	exporter := csv_exporter.New()

	scanner := pipeline.NewScanner(
		a.log,
		a.cfg.WatchDirectory,
		a.cfg.DirectoryScanInterval,
		jobs,
		submissionsRepo,
		submissionsRepo,
	)
	submitter := pipeline.NewSubmitter(a.log, jobs, results, agent.Orchestrator, submissionsRepo)
	writer := pipeline.NewWriter(a.log, results, reports, submissionsRepo, transactionsRepo, txManager)
	reporter := pipeline.NewReporter(a.log, a.cfg.ReportsDirectory, reports, report_generator.New(), exporter)

	server := v1.NewServer(a.cfg.HTTP, v1.NewRouter(a.log, v1.Services{
		Submitter:    submitter,
		Submissions:  submissionsRepo,
		Transactions: transactionsRepo,
		Exporter:     exporter,
		Orchestrator: agent.Orchestrator,
		Backend:      agent.Backend,
	}))

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "scanner started")
		return scanner.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "submitter started")
		return submitter.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "writer started")
		return writer.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "reporter started")
		return reporter.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		// Progress streams hold hijacked connections that Shutdown does not wait for.
		agent.Hub.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "pipeline stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "pipeline stopped gracefully")

	return nil
}
