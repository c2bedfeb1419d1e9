package pipeline

import (
	"context"
	"io"

	"github.com/kurochkinivan/loan_ingestor/internal/domain"
)

type JobStore interface {
	JobByID(ctx context.Context, jobID string) (*domain.IngestionJob, error)
	UpsertJob(ctx context.Context, job *domain.IngestionJob) error
}

type StagingWriter interface {
	ReplaceStagingRows(ctx context.Context, jobID string, rows []*domain.StagingRow) error
}

type Merger interface {
	MergeStaging(ctx context.Context, jobID string) (int, error)
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ObjectOpener interface {
	Open(ctx context.Context, bucket, key string) (io.ReadCloser, error)
}

type Notifier interface {
	Notify(ctx context.Context, n *domain.BatchNotification) error
}

type Processor interface {
	Process(ctx context.Context, event *domain.UploadEvent) (*domain.IngestionResult, error)
}

type MessageFetcher interface {
	Fetch(ctx context.Context) ([]Message, error)
}

// Message is one delivery of the at-least-once trigger transport.
type Message interface {
	Data() []byte
	Ack() error
	Nak() error
	Term() error
}

type ReportGenerator interface {
	GenerateReport(outputPath string, result *domain.IngestionResult) error
}
