package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/finsight/internal/domain"
)

type Writer struct {
	log               *slog.Logger
	results           <-chan *domain.JobResult
	reports           chan<- *domain.JobResult
	submissionUpdater SubmissionUpdater
	transactionsSaver TransactionsSaver
	transactor        Transactor
}

func NewWriter(
	log *slog.Logger,
	results <-chan *domain.JobResult,
	reports chan<- *domain.JobResult,
	submissionUpdater SubmissionUpdater,
	transactionsSaver TransactionsSaver,
	transactor Transactor,
) *Writer {
	return &Writer{
		log:               log,
		results:           results,
		reports:           reports,
		submissionUpdater: submissionUpdater,
		transactionsSaver: transactionsSaver,
		transactor:        transactor,
	}
}

func (w *Writer) Run(ctx context.Context) error {
	defer close(w.reports)

	for {
		select {
		case result, ok := <-w.results:
			if !ok {
				return nil
			}

			log := w.log.With(
				slog.String("submission_id", result.Submission.ID.String()),
				slog.String("status", string(result.Submission.Status)),
				slog.Int("transactions_count", len(result.Transactions)),
			)

			log.InfoContext(ctx, "received job result")

			if err := w.processResult(ctx, log, result); err != nil {
				log.ErrorContext(ctx, "failed to process job result", slog.String("err", err.Error()))
				continue
			}

			w.reports <- result

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Writer) processResult(ctx context.Context, log *slog.Logger, result *domain.JobResult) error {
	switch result.Submission.Status {
	case domain.StatusDone:
		log.DebugContext(ctx, "saving job result to database")

		if err := w.saveResult(ctx, result); err != nil {
			return fmt.Errorf("failed to save result: %w", err)
		}

		log.DebugContext(ctx, "result saved successfully")

	default:
		log.DebugContext(ctx, "processing failed job result")

		if err := w.submissionUpdater.UpdateOrCreateSubmission(ctx, result.Submission); err != nil {
			return fmt.Errorf("failed to save failed submission: %w", err)
		}
	}

	return nil
}

func (w *Writer) saveResult(ctx context.Context, result *domain.JobResult) error {
	return w.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if len(result.Transactions) > 0 {
			if err := w.transactionsSaver.SaveTransactions(ctx, result.Transactions...); err != nil {
				return fmt.Errorf("failed to save transactions: %w", err)
			}
		}

		if err := w.submissionUpdater.UpdateOrCreateSubmission(ctx, result.Submission); err != nil {
			return fmt.Errorf("failed to update submission status: %w", err)
		}

		return nil
	})
}
