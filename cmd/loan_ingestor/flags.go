package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/loan_ingestor/internal/app"
	"github.com/kurochkinivan/loan_ingestor/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "loan_ingestor",
		Usage:   "Loan applicant CSV ingestion service",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

// flags are read from the command line, then the environment where a
// variable is named, then the YAML config file.
func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:      "reports-dir",
			Aliases:   []string{"r"},
			Usage:     "Set directory to write validation reports to",
			Value:     "output",
			Sources:   cli.NewValueSourceChain(yaml.YAML("app.reports_dir", altsrc.NewStringPtrSourcer(&config))),
			Required:  true,
			Validator: validateDirectory,
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"w"},
			Usage:   "Set number of jobs processed concurrently",
			Value:   4,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.workers", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "retry-delay",
			Usage:   "Set delay before fetching again after a transport error",
			Value:   5 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("app.retry_delay", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("PG_HOST"), yaml.YAML("postgresql.host", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("PG_PORT"), yaml.YAML("postgresql.port", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("PG_USERNAME"), yaml.YAML("postgresql.username", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("PG_PASSWORD"), yaml.YAML("postgresql.password", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "loan_ingestor",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("PG_DBNAME"), yaml.YAML("postgresql.dbname", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "pg-sslmode",
			Usage:   "Set PostgreSQL sslmode",
			Value:   "disable",
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.sslmode", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "pg-connect-timeout",
			Usage:   "Set PostgreSQL connect timeout",
			Value:   5 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.connect_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.IntFlag{
			Name:    "pg-max-conns",
			Usage:   "Set PostgreSQL pool size, 0 keeps the driver default",
			Value:   0,
			Sources: cli.NewValueSourceChain(yaml.YAML("postgresql.max_conns", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:     "s3-endpoint",
			Usage:    "Set object storage endpoint (host:port)",
			Value:    "localhost:9000",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("S3_ENDPOINT"), yaml.YAML("object_store.endpoint", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "s3-access-key",
			Usage:    "Set object storage access key",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("S3_ACCESS_KEY"), yaml.YAML("object_store.access_key", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "s3-secret-key",
			Usage:    "Set object storage secret key",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("S3_SECRET_KEY"), yaml.YAML("object_store.secret_key", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "s3-region",
			Usage:   "Set object storage region",
			Value:   "us-east-1",
			Sources: cli.NewValueSourceChain(yaml.YAML("object_store.region", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:     "s3-bucket",
			Usage:    "Set bucket uploads are written to",
			Value:    "loan-applicant-uploads",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("S3_BUCKET"), yaml.YAML("object_store.bucket", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.BoolFlag{
			Name:    "s3-use-ssl",
			Usage:   "Use TLS for object storage",
			Value:   false,
			Sources: cli.NewValueSourceChain(yaml.YAML("object_store.use_ssl", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "s3-upload-url-expiry",
			Usage:   "Set presigned upload URL lifetime",
			Value:   15 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("object_store.upload_url_expiry", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.IntFlag{
			Name:    "s3-max-upload-size",
			Usage:   "Set max accepted upload size in bytes",
			Value:   50 << 20,
			Sources: cli.NewValueSourceChain(yaml.YAML("object_store.max_upload_size", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:     "nats-url",
			Usage:    "Set NATS server URL",
			Value:    "nats://localhost:4222",
			Sources:  cli.NewValueSourceChain(cli.EnvVar("NATS_URL"), yaml.YAML("nats.url", altsrc.NewStringPtrSourcer(&config))),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "nats-stream",
			Usage:   "Set JetStream stream with upload notifications",
			Value:   "UPLOADS",
			Sources: cli.NewValueSourceChain(yaml.YAML("nats.stream", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "nats-subject",
			Usage:   "Set subject upload notifications are published on",
			Value:   "uploads.>",
			Sources: cli.NewValueSourceChain(yaml.YAML("nats.subject", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "nats-consumer",
			Usage:   "Set durable consumer name",
			Value:   "loan-ingestor",
			Sources: cli.NewValueSourceChain(yaml.YAML("nats.consumer", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "nats-ack-wait",
			Usage:   "Set time a delivery may stay unacknowledged before redelivery",
			Value:   5 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("nats.ack_wait", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.IntFlag{
			Name:    "nats-max-deliver",
			Usage:   "Set max deliveries per message, -1 is unlimited",
			Value:   10,
			Sources: cli.NewValueSourceChain(yaml.YAML("nats.max_deliver", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.IntFlag{
			Name:    "nats-fetch-batch",
			Usage:   "Set number of messages fetched at once",
			Value:   10,
			Sources: cli.NewValueSourceChain(yaml.YAML("nats.fetch_batch", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "nats-fetch-max-wait",
			Usage:   "Set how long a fetch waits for messages",
			Value:   5 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("nats.fetch_max_wait", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "webhook-url",
			Usage:   "Set matching workflow webhook URL, empty disables notifications",
			Sources: cli.NewValueSourceChain(cli.EnvVar("WEBHOOK_URL"), yaml.YAML("webhook.url", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "webhook-timeout",
			Usage:   "Set webhook request timeout",
			Value:   30 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("webhook.timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.host", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: cli.NewValueSourceChain(yaml.YAML("http.port", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.idle_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.read_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   15 * time.Second,
			Sources: cli.NewValueSourceChain(yaml.YAML("http.write_timeout", altsrc.NewStringPtrSourcer(&config))),
		},
	}
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
