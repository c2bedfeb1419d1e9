package postgresql

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/loan_ingestor/internal/domain"
)

const (
	TableJobs    = "ingestion_jobs"
	TableMatches = "user_product_matches"
)

var jobColumns = []string{
	"job_id",
	"source_key",
	"status",
	"total_rows",
	"processed_rows",
	"valid_rows",
	"invalid_rows",
	"error_message",
	"error_details",
	"started_at",
	"completed_at",
	"created_at",
}

type JobsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewJobsRepository(pool *pgxpool.Pool) *JobsRepository {
	return &JobsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *JobsRepository) JobByID(ctx context.Context, jobID string) (*domain.IngestionJob, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(jobColumns...).
		From(TableJobs).
		Where(sq.Eq{"job_id": jobID}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	job, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.IngestionJob])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrJobNotFound
	}
	if err != nil {
		return nil, collectRowsError(err)
	}

	return job, nil
}

// UpsertJob writes the job snapshot keyed by job_id. The update is skipped
// when the stored job is already terminal or further along the pipeline, so
// redelivered phases never move a job backwards.
func (r *JobsRepository) UpsertJob(ctx context.Context, job *domain.IngestionJob) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableJobs).
		Columns(
			"job_id",
			"source_key",
			"status",
			"phase",
			"total_rows",
			"processed_rows",
			"valid_rows",
			"invalid_rows",
			"error_message",
			"error_details",
			"started_at",
			"completed_at",
		).
		Values(
			job.JobID,
			job.SourceKey,
			job.Status,
			job.Status.Phase(),
			job.TotalRows,
			job.ProcessedRows,
			job.ValidRows,
			job.InvalidRows,
			job.ErrorMessage,
			job.ErrorDetails,
			job.StartedAt,
			job.CompletedAt,
		).
		Suffix(`ON CONFLICT (job_id) DO UPDATE SET
			status = EXCLUDED.status,
			phase = EXCLUDED.phase,
			total_rows = EXCLUDED.total_rows,
			processed_rows = EXCLUDED.processed_rows,
			valid_rows = EXCLUDED.valid_rows,
			invalid_rows = EXCLUDED.invalid_rows,
			error_message = EXCLUDED.error_message,
			error_details = EXCLUDED.error_details,
			started_at = COALESCE(ingestion_jobs.started_at, EXCLUDED.started_at),
			completed_at = EXCLUDED.completed_at,
			updated_at = NOW()
		WHERE ingestion_jobs.completed_at IS NULL
			AND ingestion_jobs.phase <= EXCLUDED.phase
		`).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	_, err = db.Exec(ctx, sql, args...)
	if err != nil {
		return executeQueryError(err)
	}

	return nil
}

// MatchStats aggregates the downstream matches recorded for the batch.
func (r *JobsRepository) MatchStats(ctx context.Context, jobID string) (*domain.MatchStats, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"COUNT(*) AS total_matches",
			"COUNT(DISTINCT user_id) AS users_matched",
			"COALESCE(AVG(match_score), 0)::float8 AS avg_score",
		).
		From(TableMatches).
		Where(sq.Eq{"batch_id": jobID}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	var stats domain.MatchStats
	if err := db.QueryRow(ctx, sql, args...).Scan(&stats.TotalMatches, &stats.UsersMatched, &stats.AvgScore); err != nil {
		return nil, scanRowError(err)
	}

	return &stats, nil
}
