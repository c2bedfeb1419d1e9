package domain

import (
	"errors"
	"fmt"
	"time"
)

type IngestionJob struct {
	JobID         string         `db:"job_id"         json:"job_id"`
	SourceKey     string         `db:"source_key"     json:"source_key"`
	Status        Status         `db:"status"         json:"status"`
	TotalRows     int            `db:"total_rows"     json:"total_rows"`
	ProcessedRows int            `db:"processed_rows" json:"processed_rows"`
	ValidRows     int            `db:"valid_rows"     json:"valid_rows"`
	InvalidRows   int            `db:"invalid_rows"   json:"invalid_rows"`
	ErrorMessage  *string        `db:"error_message"  json:"error_message"`
	ErrorDetails  map[string]any `db:"error_details"  json:"error_details"`
	StartedAt     *time.Time     `db:"started_at"     json:"started_at"`
	CompletedAt   *time.Time     `db:"completed_at"   json:"completed_at"`
	CreatedAt     time.Time      `db:"created_at"     json:"created_at"`
}

func NewIngestionJob(jobID, sourceKey string) *IngestionJob {
	return &IngestionJob{
		JobID:     jobID,
		SourceKey: sourceKey,
		Status:    StatusPending,
	}
}

// Transition moves the job to next. completed_at is stamped once, when a
// terminal status is reached.
func (j *IngestionJob) Transition(next Status, at time.Time) error {
	if !j.Status.CanTransitionTo(next) {
		return fmt.Errorf("invalid status transition %s -> %s", j.Status, next)
	}

	if next == StatusParsing && j.StartedAt == nil {
		j.StartedAt = &at
	}

	if next.IsTerminal() && j.CompletedAt == nil {
		j.CompletedAt = &at
	}

	j.Status = next

	return nil
}

// Fail moves the job to FAILED and records the cause together with the
// phase the job was in when it failed.
func (j *IngestionJob) Fail(cause error, at time.Time) error {
	phase := j.Status

	if err := j.Transition(StatusFailed, at); err != nil {
		return err
	}

	msg := cause.Error()
	j.ErrorMessage = &msg
	j.ErrorDetails = map[string]any{"phase": string(phase)}

	var schemaErr *SchemaError
	if errors.As(cause, &schemaErr) {
		j.ErrorDetails["missing_columns"] = schemaErr.Missing
	}

	return nil
}
