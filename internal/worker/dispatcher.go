package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/mkuznecov/storefront/internal/adapter/notification"
	"github.com/mkuznecov/storefront/internal/domain/model"
)

// ErrQueueFull is returned when a confirmation cannot be enqueued
// without blocking the caller.
var ErrQueueFull = errors.New("confirmation queue is full")

// ErrStopped is returned when the dispatcher is not accepting jobs.
var ErrStopped = errors.New("confirmation dispatcher is stopped")

// ConfirmationDispatcher delivers order confirmations through a worker
// pool. Enqueueing never blocks, so a slow or unreachable notification
// service cannot extend checkout latency; delivery failures are logged
// and dropped.
type ConfirmationDispatcher struct {
	client  notification.Client
	timeout time.Duration
	workers int
	logger  *slog.Logger

	jobs    chan model.Order
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	mu      sync.Mutex
	started bool
}

// NewConfirmationDispatcher constructs the dispatcher worker pool.
func NewConfirmationDispatcher(client notification.Client, timeout time.Duration, workers, queueSize int, logger *slog.Logger) *ConfirmationDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ConfirmationDispatcher{
		client:  client,
		timeout: timeout,
		workers: workers,
		logger:  logger,
		jobs:    make(chan model.Order, queueSize),
	}
}

// Start launches delivery workers.
func (d *ConfirmationDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.started = true

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop waits for all workers to finish.
func (d *ConfirmationDispatcher) Stop() {
	d.mu.Lock()
	d.started = false
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// SendOrderConfirmation enqueues the order for delivery without blocking.
func (d *ConfirmationDispatcher) SendOrderConfirmation(_ context.Context, order *model.Order) error {
	d.mu.Lock()
	started := d.started
	d.mu.Unlock()
	if !started {
		return ErrStopped
	}

	select {
	case d.jobs <- *order:
		return nil
	default:
		return ErrQueueFull
	}
}

func (d *ConfirmationDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order := <-d.jobs:
			d.deliver(ctx, order)
		}
	}
}

func (d *ConfirmationDispatcher) deliver(ctx context.Context, order model.Order) {
	attemptCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.client.SendOrderConfirmation(attemptCtx, &order); err != nil {
		d.logger.Error("confirmation delivery failed",
			slog.Int64("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}
}
