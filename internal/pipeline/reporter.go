package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/kurochkinivan/loan_ingestor/internal/domain"
)

// Reporter writes a validation report for every finished job.
type Reporter struct {
	log             *slog.Logger
	outputDir       string
	reports         <-chan *domain.IngestionResult
	reportGenerator ReportGenerator
}

func NewReporter(
	log *slog.Logger,
	outputDir string,
	reports <-chan *domain.IngestionResult,
	reportGenerator ReportGenerator,
) *Reporter {
	return &Reporter{
		log:             log,
		outputDir:       outputDir,
		reports:         reports,
		reportGenerator: reportGenerator,
	}
}

func (r *Reporter) Run(ctx context.Context) error {
	for {
		select {
		case result, ok := <-r.reports:
			if !ok {
				return nil
			}

			log := r.log.With(
				slog.String("job_id", result.Job.JobID),
				slog.String("status", string(result.Job.Status)),
			)

			log.InfoContext(ctx, "received ingestion result, generating report")

			if err := r.processResult(result); err != nil {
				log.WarnContext(ctx, "failed to generate report", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *Reporter) processResult(result *domain.IngestionResult) error {
	path := filepath.Join(r.outputDir, filepath.Base(result.Job.JobID)+".pdf")

	if err := r.reportGenerator.GenerateReport(path, result); err != nil {
		return fmt.Errorf("job %s: %w", result.Job.JobID, err)
	}

	return nil
}
