package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/kurochkinivan/loan_ingestor/internal/config"
	v1 "github.com/kurochkinivan/loan_ingestor/internal/controller/http/v1"
	"github.com/kurochkinivan/loan_ingestor/internal/domain"
	"github.com/kurochkinivan/loan_ingestor/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/loan_ingestor/internal/notifier"
	"github.com/kurochkinivan/loan_ingestor/internal/pipeline"
	"github.com/kurochkinivan/loan_ingestor/internal/repository/objectstore"
	"github.com/kurochkinivan/loan_ingestor/internal/repository/postgresql"
	"github.com/kurochkinivan/loan_ingestor/internal/transport/jetstream"
	"golang.org/x/sync/errgroup"
)

const (
	reportsBuffer   = 100
	shutdownTimeout = 5 * time.Second
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("reports_dir", a.cfg.App.ReportsDirectory),
		slog.Int("workers", a.cfg.App.Workers),
	)

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	storage, err := objectstore.New(a.log, a.cfg.ObjectStore)
	if err != nil {
		return fmt.Errorf("failed to create object storage: %w", err)
	}

	if err := storage.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("failed to ensure bucket: %w", err)
	}

	a.log.InfoContext(ctx, "connecting to nats",
		slog.String("nats_url", a.cfg.NATS.URL),
		slog.String("stream", a.cfg.NATS.Stream),
		slog.String("consumer", a.cfg.NATS.Consumer),
	)

	consumer, err := jetstream.NewConsumer(ctx, a.log, a.cfg.NATS)
	if err != nil {
		return fmt.Errorf("failed to create nats consumer: %w", err)
	}
	defer consumer.Close()

	jobsRepository := postgresql.NewJobsRepository(pool)
	stagingRepository := postgresql.NewStagingRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	ingestor := pipeline.NewIngestor(
		a.log,
		storage,
		jobsRepository,
		stagingRepository,
		stagingRepository,
		txManager,
		notifier.NewWebhook(a.log, a.cfg.Webhook),
	)

	server := v1.NewServer(a.log, a.cfg.HTTP, a.cfg.ObjectStore, jobsRepository, storage)

	return a.startPipeline(ctx, consumer, ingestor, server)
}

func (a *App) startPipeline(
	ctx context.Context,
	fetcher pipeline.MessageFetcher,
	processor pipeline.Processor,
	server *v1.Server,
) error {
	deliveries := make(chan pipeline.Message, max(a.cfg.NATS.FetchBatch, 1))
	reports := make(chan *domain.IngestionResult, reportsBuffer)

	receiver := pipeline.NewReceiver(a.log, fetcher, a.cfg.App.RetryDelay, deliveries)
	dispatcher := pipeline.NewDispatcher(a.log, a.cfg.App.Workers, deliveries, reports, processor)
	reporter := pipeline.NewReporter(a.log, a.cfg.App.ReportsDirectory, reports, report_generator.New())

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "receiver started")
		return receiver.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "dispatcher started")
		return dispatcher.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "reporter started")
		return reporter.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "pipeline stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "pipeline stopped gracefully")

	return nil
}
