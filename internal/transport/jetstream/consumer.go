package jetstream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kurochkinivan/loan_ingestor/internal/config"
	"github.com/kurochkinivan/loan_ingestor/internal/pipeline"
	"github.com/nats-io/nats.go"
)

const (
	connectTimeout = 10 * time.Second
	reconnectWait  = 3 * time.Second
)

// Consumer is a durable pull consumer over the upload notification stream.
type Consumer struct {
	log     *slog.Logger
	conn    *nats.Conn
	sub     *nats.Subscription
	batch   int
	maxWait time.Duration
}

func NewConsumer(ctx context.Context, log *slog.Logger, cfg config.NATS) (*Consumer, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.Name(cfg.Consumer),
		nats.Timeout(connectTimeout),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(reconnectWait),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create jetstream context: %w", err)
	}

	if err := ensureStream(ctx, log, js, cfg); err != nil {
		nc.Close()
		return nil, err
	}

	sub, err := js.PullSubscribe(cfg.Subject, cfg.Consumer,
		nats.BindStream(cfg.Stream),
		nats.AckWait(cfg.AckWait),
		nats.MaxDeliver(cfg.MaxDeliver),
	)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to subscribe to %q: %w", cfg.Subject, err)
	}

	return &Consumer{
		log:     log,
		conn:    nc,
		sub:     sub,
		batch:   cfg.FetchBatch,
		maxWait: cfg.FetchMaxWait,
	}, nil
}

func ensureStream(ctx context.Context, log *slog.Logger, js nats.JetStreamContext, cfg config.NATS) error {
	_, err := js.StreamInfo(cfg.Stream, nats.Context(ctx))
	if err == nil {
		return nil
	}

	if !errors.Is(err, nats.ErrStreamNotFound) {
		return fmt.Errorf("failed to get stream %q: %w", cfg.Stream, err)
	}

	log.InfoContext(ctx, "stream not found, creating",
		slog.String("stream", cfg.Stream),
		slog.String("subject", cfg.Subject),
	)

	_, err = js.AddStream(&nats.StreamConfig{
		Name:     cfg.Stream,
		Subjects: []string{cfg.Subject},
		Storage:  nats.FileStorage,
	}, nats.Context(ctx))
	if err != nil {
		return fmt.Errorf("failed to create stream %q: %w", cfg.Stream, err)
	}

	return nil
}

// Fetch waits up to the configured max wait for a batch. An empty batch is
// returned when nothing arrived in time.
func (c *Consumer) Fetch(ctx context.Context) ([]pipeline.Message, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, c.maxWait)
	defer cancel()

	msgs, err := c.sub.Fetch(c.batch, nats.Context(fetchCtx))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if isTimeout(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	out := make([]pipeline.Message, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, &message{msg: msg})
	}

	return out, nil
}

func (c *Consumer) Close() {
	if err := c.conn.Drain(); err != nil {
		c.log.Warn("failed to drain nats connection", slog.String("err", err.Error()))
		c.conn.Close()
	}
}

func isTimeout(err error) bool {
	return errors.Is(err, nats.ErrTimeout) || errors.Is(err, context.DeadlineExceeded)
}

type message struct {
	msg *nats.Msg
}

func (m *message) Data() []byte { return m.msg.Data }

func (m *message) Ack() error { return m.msg.Ack() }

func (m *message) Nak() error { return m.msg.Nak() }

// Term stops redelivery of a message that can never be processed.
func (m *message) Term() error { return m.msg.Term() }
