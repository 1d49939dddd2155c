package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/finsight/internal/domain"
)

const TableTransactions = "transactions"

var transactionColumns = []string{
	"submission_id",
	"n",
	"date",
	"description",
	"amount",
	"type",
	"category",
	"balance",
}

type TransactionsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewTransactionsRepository(pool *pgxpool.Pool) *TransactionsRepository {
	return &TransactionsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *TransactionsRepository) TransactionsBySubmission(ctx context.Context, id uuid.UUID) ([]*domain.Transaction, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(transactionColumns...).
		From(TableTransactions).
		Where(sq.Eq{"submission_id": id}).
		OrderBy("n ASC").
		ToSql()
	if err != nil {
		return nil, queryError(TableTransactions, stageBuild, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, queryError(TableTransactions, stageExecute, err)
	}

	transactions, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Transaction])
	if err != nil {
		return nil, queryError(TableTransactions, stageCollect, err)
	}

	return transactions, nil
}

func (r *TransactionsRepository) SaveTransactions(ctx context.Context, transactions ...*domain.Transaction) error {
	db := extractDB(ctx, r.pool)

	copied, err := db.CopyFrom(ctx, pgx.Identifier{TableTransactions}, transactionColumns,
		pgx.CopyFromSlice(len(transactions), func(i int) ([]any, error) {
			t := transactions[i]

			var balance *float64
			if t.Balance != nil {
				b := float64(*t.Balance)
				balance = &b
			}

			return []any{
				t.SubmissionID,
				t.N,
				t.Date,
				t.Description,
				float64(t.Amount),
				t.Type,
				t.Category,
				balance,
			}, nil
		}))
	if err != nil {
		return queryError(TableTransactions, stageExecute, err)
	}

	if copied != int64(len(transactions)) {
		return fmt.Errorf("failed to save transactions: copied %d rows, expected %d", copied, len(transactions))
	}

	return nil
}
