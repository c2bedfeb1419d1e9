package pipeline

import (
	"context"
	"log/slog"
	"time"
)

// Receiver pulls trigger messages from the transport and hands them to the
// dispatcher.
type Receiver struct {
	log        *slog.Logger
	fetcher    MessageFetcher
	retryDelay time.Duration
	deliveries chan<- Message
}

func NewReceiver(
	log *slog.Logger,
	fetcher MessageFetcher,
	retryDelay time.Duration,
	deliveries chan<- Message,
) *Receiver {
	return &Receiver{
		log:        log,
		fetcher:    fetcher,
		retryDelay: retryDelay,
		deliveries: deliveries,
	}
}

func (r *Receiver) Run(ctx context.Context) error {
	defer close(r.deliveries)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		msgs, err := r.fetcher.Fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			r.log.ErrorContext(ctx, "failed to fetch messages", slog.String("err", err.Error()))

			select {
			case <-time.After(r.retryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}

			continue
		}

		if len(msgs) > 0 {
			r.log.DebugContext(ctx, "received messages", slog.Int("count", len(msgs)))
		}

		for _, msg := range msgs {
			select {
			case r.deliveries <- msg:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
