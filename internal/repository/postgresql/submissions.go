package postgresql

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/finsight/internal/domain"
)

const TableSubmissions = "submissions"

var submissionColumns = []string{
	"id",
	"name",
	"source",
	"category",
	"size",
	"status",
	"failure_kind",
	"error_message",
	"is_audit_report",
	"result",
	"created_at",
	"processed_at",
}

type SubmissionsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewSubmissionsRepository(pool *pgxpool.Pool) *SubmissionsRepository {
	return &SubmissionsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Submissions returns every submission that came from the inbox.
func (r *SubmissionsRepository) Submissions(ctx context.Context) ([]*domain.Submission, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(submissionColumns...).
		From(TableSubmissions).
		Where(sq.NotEq{"source": ""}).
		ToSql()
	if err != nil {
		return nil, queryError(TableSubmissions, stageBuild, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, queryError(TableSubmissions, stageExecute, err)
	}

	submissions, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Submission])
	if err != nil {
		return nil, queryError(TableSubmissions, stageCollect, err)
	}

	return submissions, nil
}

func (r *SubmissionsRepository) SubmissionsPage(
	ctx context.Context,
	limit, offset uint64,
) ([]*domain.Submission, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableSubmissions).
		ToSql()
	if err != nil {
		return nil, -1, queryError(TableSubmissions, stageBuild, err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, queryError(TableSubmissions, stageScan, err)
	}

	sql, args, err = r.qb.
		Select(submissionColumns...).
		From(TableSubmissions).
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, queryError(TableSubmissions, stageBuild, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, queryError(TableSubmissions, stageExecute, err)
	}

	submissions, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Submission])
	if err != nil {
		return nil, -1, queryError(TableSubmissions, stageCollect, err)
	}

	return submissions, total, nil
}

func (r *SubmissionsRepository) SubmissionByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(submissionColumns...).
		From(TableSubmissions).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, queryError(TableSubmissions, stageBuild, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, queryError(TableSubmissions, stageExecute, err)
	}

	submission, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Submission])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSubmissionNotFound
	}
	if err != nil {
		return nil, queryError(TableSubmissions, stageCollect, err)
	}

	return submission, nil
}

func (r *SubmissionsRepository) UpdateOrCreateSubmission(ctx context.Context, s *domain.Submission) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableSubmissions).
		Columns(submissionColumns...).
		Values(
			s.ID,
			s.Name,
			s.Source,
			s.Category,
			s.Size,
			s.Status,
			s.FailureKind,
			s.ErrorMessage,
			s.IsAuditReport,
			s.Result,
			s.CreatedAt,
			s.ProcessedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			failure_kind = EXCLUDED.failure_kind,
			error_message = EXCLUDED.error_message,
			is_audit_report = EXCLUDED.is_audit_report,
			result = EXCLUDED.result,
			processed_at = EXCLUDED.processed_at
		`).
		ToSql()
	if err != nil {
		return queryError(TableSubmissions, stageBuild, err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return queryError(TableSubmissions, stageExecute, err)
	}

	return nil
}

// ResetProcessingSubmissions returns submissions interrupted by a shutdown to
// the pending state.
func (r *SubmissionsRepository) ResetProcessingSubmissions(ctx context.Context) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableSubmissions).
		Set("status", domain.StatusPending).
		Where(sq.Eq{"status": domain.StatusProcessing}).
		ToSql()
	if err != nil {
		return queryError(TableSubmissions, stageBuild, err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return queryError(TableSubmissions, stageExecute, err)
	}

	return nil
}
