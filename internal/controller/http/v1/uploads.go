package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/loan_ingestor/internal/domain"
)

const (
	defaultFilename = "upload.csv"
	allowedExt      = ".csv"
	maxRequestBody  = 1 << 20
)

type UploadPresigner interface {
	PresignUpload(ctx context.Context, key string, expiry time.Duration) (string, error)
}

type UploadsHandler struct {
	log       *slog.Logger
	presigner UploadPresigner
	expiry    time.Duration
	maxSize   int64
}

func NewUploadsHandler(log *slog.Logger, presigner UploadPresigner, expiry time.Duration, maxSize int64) *UploadsHandler {
	return &UploadsHandler{
		log:       log,
		presigner: presigner,
		expiry:    expiry,
		maxSize:   maxSize,
	}
}

type CreateUploadRequest struct {
	Filename string `json:"filename"`
	FileSize int64  `json:"file_size"`
}

type CreateUploadResponse struct {
	JobID     string `json:"job_id"`
	UploadURL string `json:"upload_url"`
	S3Key     string `json:"s3_key"`
	ExpiresIn int    `json:"expires_in"`
}

// CreateUpload mints a job id and a presigned URL the client uploads the CSV
// to. The job itself is created once the upload notification is processed.
func (h *UploadsHandler) CreateUpload(w http.ResponseWriter, r *http.Request) {
	var req CreateUploadRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Filename == "" {
		req.Filename = defaultFilename
	}

	if err := h.validate(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	jobID := uuid.NewString()
	key := domain.UploadKey(jobID, req.Filename)

	uploadURL, err := h.presigner.PresignUpload(r.Context(), key, h.expiry)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to presign upload",
			slog.String("key", key),
			slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.log.InfoContext(r.Context(), "upload url issued",
		slog.String("job_id", jobID),
		slog.String("key", key))

	writeJSON(w, http.StatusOK, CreateUploadResponse{
		JobID:     jobID,
		UploadURL: uploadURL,
		S3Key:     key,
		ExpiresIn: int(h.expiry.Seconds()),
	})
}

func (h *UploadsHandler) validate(req CreateUploadRequest) error {
	if strings.ContainsAny(req.Filename, `/\`) {
		return fmt.Errorf("invalid filename %q", req.Filename)
	}

	if !strings.EqualFold(filepath.Ext(req.Filename), allowedExt) {
		return fmt.Errorf("only %s files allowed", allowedExt)
	}

	if req.FileSize < 0 {
		return fmt.Errorf("invalid file size %d", req.FileSize)
	}

	if req.FileSize > h.maxSize {
		return fmt.Errorf("file size exceeds %dMB limit", h.maxSize>>20)
	}

	return nil
}
