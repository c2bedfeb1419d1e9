package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/loan_ingestor/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func NewServer(
	log *slog.Logger,
	cfg config.HTTP,
	uploadCfg config.ObjectStore,
	jobsRepo JobsRepository,
	presigner UploadPresigner,
) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(log, uploadCfg, jobsRepo, presigner),
		},
	}
}

func NewRouter(
	log *slog.Logger,
	uploadCfg config.ObjectStore,
	jobsRepo JobsRepository,
	presigner UploadPresigner,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	jobs := NewJobsHandler(log, jobsRepo)
	uploads := NewUploadsHandler(log, presigner, uploadCfg.UploadURLExpiry, uploadCfg.MaxUploadSize)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/jobs/{job_id}", jobs.GetJob)
		r.Post("/uploads", uploads.CreateUpload)
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
