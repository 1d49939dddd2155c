package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/kurochkinivan/finsight/internal/domain"
)

type Reporter struct {
	log                  *slog.Logger
	outputDir            string
	reports              <-chan *domain.JobResult
	reportGenerator      ReportGenerator
	transactionsExporter TransactionsExporter
}

func NewReporter(
	log *slog.Logger,
	outputDir string,
	reports <-chan *domain.JobResult,
	reportGenerator ReportGenerator,
	transactionsExporter TransactionsExporter,
) *Reporter {
	return &Reporter{
		log:                  log,
		outputDir:            outputDir,
		reports:              reports,
		reportGenerator:      reportGenerator,
		transactionsExporter: transactionsExporter,
	}
}

func (r *Reporter) Run(ctx context.Context) error {
	for {
		select {
		case result, ok := <-r.reports:
			if !ok {
				return nil
			}

			if result.Submission.Status != domain.StatusDone {
				continue
			}

			log := r.log.With(
				slog.String("submission_id", result.Submission.ID.String()),
				slog.Int("transactions_count", len(result.Transactions)),
			)

			log.InfoContext(ctx, "received job result, generating report")

			if err := r.processResult(result); err != nil {
				log.ErrorContext(ctx, "failed to generate report", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// processResult writes <id>.pdf and, for single-document results, <id>.csv.
func (r *Reporter) processResult(result *domain.JobResult) error {
	id := result.Submission.ID.String()

	var errs []error

	pdfPath := filepath.Join(r.outputDir, id+".pdf")
	if err := r.reportGenerator.GenerateReport(pdfPath, result.Submission, result.Transactions); err != nil {
		errs = append(errs, fmt.Errorf("pdf: %w", err))
	}

	if !result.Submission.Category.IsMultiSlot() {
		csvPath := filepath.Join(r.outputDir, id+".csv")
		if err := r.transactionsExporter.ExportFile(csvPath, result.Transactions); err != nil {
			errs = append(errs, fmt.Errorf("csv: %w", err))
		}
	}

	return errors.Join(errs...)
}
