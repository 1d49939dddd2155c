package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurochkinivan/finsight/internal/domain"
	"github.com/kurochkinivan/finsight/internal/orchestrator"
)

const busyRetryDelay = time.Second

type command struct {
	job   *domain.Job
	retry bool
}

// Submitter runs jobs through the processor one at a time. Jobs come from the
// scanner, and from TrySubmit/TryRetry which only succeed while the submitter
// is idle.
type Submitter struct {
	log               *slog.Logger
	jobs              <-chan *domain.Job
	direct            chan command
	results           chan<- *domain.JobResult
	processor         Processor
	submissionUpdater SubmissionUpdater
	now               func() time.Time

	last *domain.Job
}

func NewSubmitter(
	log *slog.Logger,
	jobs <-chan *domain.Job,
	results chan<- *domain.JobResult,
	processor Processor,
	submissionUpdater SubmissionUpdater,
) *Submitter {
	return &Submitter{
		log:               log,
		jobs:              jobs,
		direct:            make(chan command),
		results:           results,
		processor:         processor,
		submissionUpdater: submissionUpdater,
		now:               time.Now,
	}
}

// TrySubmit hands the job to the submitter if it is idle and returns
// orchestrator.ErrBusy otherwise.
func (s *Submitter) TrySubmit(job *domain.Job) error {
	select {
	case s.direct <- command{job: job}:
		return nil
	default:
		return orchestrator.ErrBusy
	}
}

// TryRetry re-runs the last job if the submitter is idle. Only a failed job is
// kept for retrying.
func (s *Submitter) TryRetry() error {
	select {
	case s.direct <- command{retry: true}:
		return nil
	default:
		return orchestrator.ErrBusy
	}
}

func (s *Submitter) Run(ctx context.Context) error {
	defer close(s.results)

	for {
		select {
		case job, ok := <-s.jobs:
			if !ok {
				return nil
			}

			s.handle(ctx, command{job: job})

		case cmd := <-s.direct:
			s.handle(ctx, cmd)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Submitter) handle(ctx context.Context, cmd command) {
	job := cmd.job
	if cmd.retry {
		job = s.last
	}

	if job == nil {
		s.log.WarnContext(ctx, "nothing to retry")
		return
	}

	log := s.log.With(
		slog.String("submission_id", job.ID.String()),
		slog.String("source", job.Source),
		slog.String("document_type", string(job.Category)),
	)

	log.InfoContext(ctx, "received job")

	result, err := s.process(ctx, log, job, cmd.retry)
	if err != nil {
		log.ErrorContext(ctx, "failed to process job", slog.String("err", err.Error()))
		return
	}

	s.last = nil
	if result.Submission.Status == domain.StatusError {
		s.last = job
	}

	select {
	case s.results <- result:
	case <-ctx.Done():
	}
}

func (s *Submitter) process(ctx context.Context, log *slog.Logger, job *domain.Job, retry bool) (*domain.JobResult, error) {
	submission := &domain.Submission{
		ID:        job.ID,
		Name:      jobName(job),
		Source:    job.Source,
		Category:  job.Category,
		Size:      jobSize(job),
		Status:    domain.StatusProcessing,
		CreatedAt: s.now(),
	}

	if err := s.submissionUpdater.UpdateOrCreateSubmission(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to update submission status: %w", err)
	}

	handoff, err := s.run(ctx, job, retry)

	now := s.now()
	submission.ProcessedAt = &now

	result := &domain.JobResult{Job: job, Submission: submission}

	var failure *orchestrator.Failure
	switch {
	case err == nil:
		submission.Status = domain.StatusDone
		submission.Name = handoff.FileName
		submission.Result = handoff.Result
		submission.IsAuditReport = handoff.IsAuditReport

		if !job.Category.IsMultiSlot() {
			result.Transactions = s.transactions(ctx, log, job, handoff)
		}

		log.InfoContext(ctx, "job processed", slog.Int("transactions_count", len(result.Transactions)))

	case errors.As(err, &failure):
		submission.Status = domain.StatusError
		submission.FailureKind = string(failure.Kind)
		submission.ErrorMessage = failure.Message

		log.WarnContext(ctx, "job failed", slog.String("kind", string(failure.Kind)))

	default:
		return nil, err
	}

	return result, nil
}

// run submits the job, waiting while another submission holds the
// processor.
func (s *Submitter) run(ctx context.Context, job *domain.Job, retry bool) (*orchestrator.Handoff, error) {
	for {
		var (
			handoff *orchestrator.Handoff
			err     error
		)

		if retry {
			handoff, err = s.processor.Retry(ctx)
		} else {
			handoff, err = s.processor.Submit(ctx, &orchestrator.Request{Category: job.Category, Files: job.Files})
		}

		if !errors.Is(err, orchestrator.ErrBusy) {
			return handoff, err
		}

		select {
		case <-time.After(busyRetryDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (s *Submitter) transactions(
	ctx context.Context,
	log *slog.Logger,
	job *domain.Job,
	handoff *orchestrator.Handoff,
) []*domain.Transaction {
	transactions, err := domain.ParseTransactions(job.ID, handoff.Result)
	if err != nil {
		log.WarnContext(ctx, "result kept without transaction rows", slog.String("err", err.Error()))
		return nil
	}

	return transactions
}

func jobName(job *domain.Job) string {
	if job.Name != "" {
		return job.Name
	}
	if len(job.Files) == 1 && !job.Category.IsMultiSlot() {
		return job.Files[0].File.Name
	}
	return job.Category.Label()
}
