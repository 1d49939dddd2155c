package pipeline

import (
	"context"

	"github.com/kurochkinivan/finsight/internal/domain"
	"github.com/kurochkinivan/finsight/internal/orchestrator"
)

type SubmissionsProvider interface {
	Submissions(ctx context.Context) ([]*domain.Submission, error)
}

type SubmissionUpdater interface {
	UpdateOrCreateSubmission(ctx context.Context, submission *domain.Submission) error
}

type TransactionsSaver interface {
	SaveTransactions(ctx context.Context, transactions ...*domain.Transaction) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Processor interface {
	Submit(ctx context.Context, req *orchestrator.Request) (*orchestrator.Handoff, error)
	Retry(ctx context.Context) (*orchestrator.Handoff, error)
}

type ReportGenerator interface {
	GenerateReport(outputPath string, submission *domain.Submission, transactions []*domain.Transaction) error
}

type TransactionsExporter interface {
	ExportFile(path string, transactions []*domain.Transaction) error
}
