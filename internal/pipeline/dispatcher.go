package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/kurochkinivan/loan_ingestor/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Dispatcher processes deliveries on a bounded set of workers. Each delivery
// is handled sequentially by one worker; distinct jobs run in parallel.
type Dispatcher struct {
	log        *slog.Logger
	workers    int
	deliveries <-chan Message
	reports    chan<- *domain.IngestionResult
	processor  Processor
}

func NewDispatcher(
	log *slog.Logger,
	workers int,
	deliveries <-chan Message,
	reports chan<- *domain.IngestionResult,
	processor Processor,
) *Dispatcher {
	return &Dispatcher{
		log:        log,
		workers:    max(workers, 1),
		deliveries: deliveries,
		reports:    reports,
		processor:  processor,
	}
}

func (d *Dispatcher) Run(ctx context.Context) error {
	defer close(d.reports)

	var g errgroup.Group
	g.SetLimit(d.workers)
	defer g.Wait()

	for {
		select {
		case msg, ok := <-d.deliveries:
			if !ok {
				return nil
			}

			g.Go(func() error {
				d.handle(ctx, msg)
				return nil
			})

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// handle settles a delivery: acknowledged when the job is done, terminated
// when the message can never be processed, redelivered otherwise.
func (d *Dispatcher) handle(ctx context.Context, msg Message) {
	event, err := domain.ParseUploadEvent(msg.Data())
	if err != nil {
		d.log.ErrorContext(ctx, "dropping undecodable message", slog.String("err", err.Error()))
		d.settle(ctx, msg.Term, "term")
		return
	}

	log := d.log.With(slog.String("job_id", event.JobID))

	result, err := d.processor.Process(ctx, event)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEvent) {
			d.settle(ctx, msg.Term, "term")
		} else {
			log.ErrorContext(ctx, "failed to process upload, requesting redelivery", slog.String("err", err.Error()))
			d.settle(ctx, msg.Nak, "nak")
		}

		d.report(ctx, result)

		return
	}

	d.settle(ctx, msg.Ack, "ack")
	d.report(ctx, result)
}

func (d *Dispatcher) settle(ctx context.Context, fn func() error, action string) {
	if err := fn(); err != nil {
		d.log.ErrorContext(ctx, "failed to settle message",
			slog.String("action", action),
			slog.String("err", err.Error()),
		)
	}
}

func (d *Dispatcher) report(ctx context.Context, result *domain.IngestionResult) {
	if result == nil || result.Skipped || !result.Job.Status.IsTerminal() {
		return
	}

	select {
	case d.reports <- result:
	case <-ctx.Done():
	}
}
