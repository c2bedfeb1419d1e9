package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	PostgreSQL
	ObjectStore
	NATS
	Webhook
	HTTP
}

type App struct {
	ReportsDirectory string
	Workers          int
	RetryDelay       time.Duration
}

type PostgreSQL struct {
	Host           string
	Port           string
	Username       string
	Password       string
	DBName         string
	SSLMode        string
	ConnectTimeout time.Duration
	MaxConns       int32
}

type ObjectStore struct {
	Endpoint        string
	AccessKey       string
	SecretKey       string
	Region          string
	Bucket          string
	UseSSL          bool
	UploadURLExpiry time.Duration
	MaxUploadSize   int64
}

type NATS struct {
	URL          string
	Stream       string
	Subject      string
	Consumer     string
	AckWait      time.Duration
	MaxDeliver   int
	FetchBatch   int
	FetchMaxWait time.Duration
}

type Webhook struct {
	URL     string
	Timeout time.Duration
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			ReportsDirectory: cmd.String("reports-dir"),
			Workers:          int(cmd.Int("workers")),
			RetryDelay:       cmd.Duration("retry-delay"),
		},
		PostgreSQL: PostgreSQL{
			Host:           cmd.String("pg-host"),
			Port:           cmd.String("pg-port"),
			Username:       cmd.String("pg-username"),
			Password:       cmd.String("pg-password"),
			DBName:         cmd.String("pg-dbname"),
			SSLMode:        cmd.String("pg-sslmode"),
			ConnectTimeout: cmd.Duration("pg-connect-timeout"),
			MaxConns:       int32(cmd.Int("pg-max-conns")),
		},
		ObjectStore: ObjectStore{
			Endpoint:        cmd.String("s3-endpoint"),
			AccessKey:       cmd.String("s3-access-key"),
			SecretKey:       cmd.String("s3-secret-key"),
			Region:          cmd.String("s3-region"),
			Bucket:          cmd.String("s3-bucket"),
			UseSSL:          cmd.Bool("s3-use-ssl"),
			UploadURLExpiry: cmd.Duration("s3-upload-url-expiry"),
			MaxUploadSize:   int64(cmd.Int("s3-max-upload-size")),
		},
		NATS: NATS{
			URL:          cmd.String("nats-url"),
			Stream:       cmd.String("nats-stream"),
			Subject:      cmd.String("nats-subject"),
			Consumer:     cmd.String("nats-consumer"),
			AckWait:      cmd.Duration("nats-ack-wait"),
			MaxDeliver:   int(cmd.Int("nats-max-deliver")),
			FetchBatch:   int(cmd.Int("nats-fetch-batch")),
			FetchMaxWait: cmd.Duration("nats-fetch-max-wait"),
		},
		Webhook: Webhook{
			URL:     cmd.String("webhook-url"),
			Timeout: cmd.Duration("webhook-timeout"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}
