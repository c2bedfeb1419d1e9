package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurochkinivan/loan_ingestor/internal/domain"
	"github.com/kurochkinivan/loan_ingestor/internal/validator"
)

// Ingestor drives one uploaded file through parse, validate, stage, merge and
// notify. It is the only writer of the job status.
type Ingestor struct {
	log        *slog.Logger
	objects    ObjectOpener
	jobs       JobStore
	staging    StagingWriter
	merger     Merger
	transactor Transactor
	notifier   Notifier
}

func NewIngestor(
	log *slog.Logger,
	objects ObjectOpener,
	jobs JobStore,
	staging StagingWriter,
	merger Merger,
	transactor Transactor,
	notifier Notifier,
) *Ingestor {
	return &Ingestor{
		log:        log,
		objects:    objects,
		jobs:       jobs,
		staging:    staging,
		merger:     merger,
		transactor: transactor,
		notifier:   notifier,
	}
}

// Process runs the pipeline for the job encoded in event. Jobs that already
// reached a terminal status are left untouched. On a fatal error the job is
// marked FAILED before the error is returned.
func (i *Ingestor) Process(ctx context.Context, event *domain.UploadEvent) (*domain.IngestionResult, error) {
	log := i.log.With(
		slog.String("job_id", event.JobID),
		slog.String("key", event.Key),
	)

	existing, err := i.jobs.JobByID(ctx, event.JobID)
	switch {
	case err == nil && existing.Status.IsTerminal():
		log.InfoContext(ctx, "job already finished, skipping", slog.String("status", string(existing.Status)))

		return &domain.IngestionResult{Job: existing, Skipped: true}, nil

	case err != nil && !errors.Is(err, domain.ErrJobNotFound):
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	// A job interrupted mid-flight is replayed from the start. The store
	// ignores status writes that would move it backwards.
	job := domain.NewIngestionJob(event.JobID, event.Key)
	result := &domain.IngestionResult{Job: job}

	if err := i.run(ctx, log, event, result); err != nil {
		log.ErrorContext(ctx, "ingestion failed", slog.String("err", err.Error()))

		return result, i.fail(ctx, log, job, err)
	}

	log.InfoContext(ctx, "ingestion finished",
		slog.Int("total_rows", job.TotalRows),
		slog.Int("valid_rows", job.ValidRows),
		slog.Int("invalid_rows", job.InvalidRows),
		slog.Int("processed_rows", job.ProcessedRows),
	)

	return result, nil
}

func (i *Ingestor) run(ctx context.Context, log *slog.Logger, event *domain.UploadEvent, result *domain.IngestionResult) error {
	job := result.Job

	if err := i.advance(ctx, job, domain.StatusParsing); err != nil {
		return err
	}

	records, err := i.download(ctx, event)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "parsed upload", slog.Int("records", len(records)))

	job.TotalRows = len(records)
	if err := i.advance(ctx, job, domain.StatusValidating); err != nil {
		return err
	}

	result.Rows = make([]*domain.StagingRow, 0, len(records))
	for n, rec := range records {
		row := domain.NewStagingRow(job.JobID, n+1, rec, validator.ValidateRow(rec))
		if row.IsValid {
			job.ValidRows++
		} else {
			job.InvalidRows++
		}

		result.Rows = append(result.Rows, row)
	}

	err = i.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if err := i.staging.ReplaceStagingRows(ctx, job.JobID, result.Rows); err != nil {
			return fmt.Errorf("failed to stage rows: %w", err)
		}

		return i.advance(ctx, job, domain.StatusStaging)
	})
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "rows staged",
		slog.Int("valid_rows", job.ValidRows),
		slog.Int("invalid_rows", job.InvalidRows),
	)

	applied, err := i.merger.MergeStaging(ctx, job.JobID)
	if err != nil {
		return fmt.Errorf("failed to merge staged rows: %w", err)
	}

	job.ProcessedRows = applied
	if err := i.advance(ctx, job, domain.StatusLoaded); err != nil {
		return err
	}

	if job.ValidRows > 0 {
		i.notify(ctx, log, job)
	} else {
		log.InfoContext(ctx, "no valid rows, matching workflow not notified")
	}

	return i.advance(ctx, job, domain.StatusMatchingTriggered)
}

func (i *Ingestor) download(ctx context.Context, event *domain.UploadEvent) (_ []domain.ApplicantRecord, err error) {
	body, err := i.objects.Open(ctx, event.Bucket, event.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to open object: %w", err)
	}
	defer func() { err = errors.Join(err, body.Close()) }()

	records, err := ParseApplicants(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse upload: %w", err)
	}

	return records, nil
}

// advance persists the next status. The in-memory job only moves once the
// write succeeded, so a failed write still leaves room for FAILED.
func (i *Ingestor) advance(ctx context.Context, job *domain.IngestionJob, next domain.Status) error {
	updated := *job
	if err := updated.Transition(next, time.Now().UTC()); err != nil {
		return err
	}

	if err := i.jobs.UpsertJob(ctx, &updated); err != nil {
		return fmt.Errorf("failed to update job status to %s: %w", next, err)
	}

	*job = updated

	return nil
}

// notify is best-effort: a failed notification never fails the job.
func (i *Ingestor) notify(ctx context.Context, log *slog.Logger, job *domain.IngestionJob) {
	err := i.notifier.Notify(ctx, &domain.BatchNotification{
		BatchID:     job.JobID,
		UserCount:   job.ValidRows,
		TriggeredAt: time.Now().UTC(),
	})
	if err != nil {
		log.WarnContext(ctx, "failed to notify matching workflow", slog.String("err", err.Error()))
		return
	}

	log.InfoContext(ctx, "matching workflow notified", slog.Int("user_count", job.ValidRows))
}

func (i *Ingestor) fail(ctx context.Context, log *slog.Logger, job *domain.IngestionJob, cause error) error {
	if err := job.Fail(cause, time.Now().UTC()); err != nil {
		return errors.Join(cause, err)
	}

	if err := i.jobs.UpsertJob(ctx, job); err != nil {
		log.ErrorContext(ctx, "failed to record job failure", slog.String("err", err.Error()))

		return errors.Join(cause, fmt.Errorf("failed to record job failure: %w", err))
	}

	return cause
}
