package v1

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/loan_ingestor/internal/domain"
)

type JobsRepository interface {
	JobByID(ctx context.Context, jobID string) (*domain.IngestionJob, error)
	MatchStats(ctx context.Context, jobID string) (*domain.MatchStats, error)
}

type JobsHandler struct {
	log            *slog.Logger
	jobsRepository JobsRepository
}

func NewJobsHandler(log *slog.Logger, jobsRepository JobsRepository) *JobsHandler {
	return &JobsHandler{
		log:            log,
		jobsRepository: jobsRepository,
	}
}

type GetJobResponse struct {
	*domain.IngestionJob
	MatchStats *domain.MatchStats `json:"match_stats,omitempty"`
}

func (h *JobsHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "job_id")

	job, err := h.jobsRepository.JobByID(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			writeError(w, http.StatusNotFound, "job not found")
			return
		}

		h.log.ErrorContext(r.Context(), "failed to get job",
			slog.String("job_id", jobID),
			slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := GetJobResponse{IngestionJob: job}

	if job.Status == domain.StatusMatchingTriggered {
		stats, err := h.jobsRepository.MatchStats(r.Context(), jobID)
		if err != nil {
			h.log.ErrorContext(r.Context(), "failed to get match stats",
				slog.String("job_id", jobID),
				slog.String("err", err.Error()))
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}

		resp.MatchStats = stats
	}

	writeJSON(w, http.StatusOK, resp)
}
