package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/loan_ingestor/internal/domain"
)

const (
	TableStaging = "users_staging"

	lockJobQuery  = "SELECT pg_advisory_xact_lock(hashtext($1))"
	mergeJobQuery = "SELECT merge_staging_to_users($1)"
)

var stagingColumns = []string{
	"job_id",
	"row_number",
	"user_id",
	"name",
	"email",
	"monthly_income",
	"credit_score",
	"employment_status",
	"age",
	"is_valid",
	"validation_errors",
}

type StagingRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewStagingRepository(pool *pgxpool.Pool) *StagingRepository {
	return &StagingRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ReplaceStagingRows drops whatever a previous attempt staged for the job and
// bulk-writes rows, atomically. Writers of the same job are serialised by a
// transaction-scoped advisory lock, so a retried or concurrently redelivered
// job never carries duplicate staging rows.
func (r *StagingRepository) ReplaceStagingRows(ctx context.Context, jobID string, rows []*domain.StagingRow) error {
	tx, err := extractDB(ctx, r.pool).Begin(ctx)
	if err != nil {
		return beginTxError(err)
	}
	defer tx.Rollback(ctx)

	// Held until the outermost transaction ends, so a concurrent delivery of
	// the same job waits here and then replaces the committed rows.
	if _, err := tx.Exec(ctx, lockJobQuery, jobID); err != nil {
		return fmt.Errorf("failed to lock job %s: %w", jobID, err)
	}

	sql, args, err := r.qb.
		Delete(TableStaging).
		Where(sq.Eq{"job_id": jobID}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{TableStaging}, stagingColumns,
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			if rows[i].JobID != jobID {
				return nil, fmt.Errorf("row %d belongs to job %q", rows[i].RowNumber, rows[i].JobID)
			}

			return []any{
				rows[i].JobID,
				rows[i].RowNumber,
				rows[i].UserID,
				rows[i].Name,
				rows[i].Email,
				rows[i].MonthlyIncome,
				rows[i].CreditScore,
				rows[i].EmploymentStatus,
				rows[i].Age,
				rows[i].IsValid,
				rows[i].ViolationCodes(),
			}, nil
		}))
	if err != nil {
		return fmt.Errorf("failed to copy staging rows: %w", err)
	}

	if copied != int64(len(rows)) {
		return fmt.Errorf("failed to copy staging rows: copied %d rows, expected %d", copied, len(rows))
	}

	if err := tx.Commit(ctx); err != nil {
		return commitTxError(err)
	}

	return nil
}

// MergeStaging promotes the valid staged rows of the job into the canonical
// users table and returns how many canonical records the job now owns.
func (r *StagingRepository) MergeStaging(ctx context.Context, jobID string) (int, error) {
	db := extractDB(ctx, r.pool)

	var applied int
	if err := db.QueryRow(ctx, mergeJobQuery, jobID).Scan(&applied); err != nil {
		return 0, fmt.Errorf("failed to merge staging rows: %w", err)
	}

	return applied, nil
}
