package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/minhvn/sourcehub/internal/domain/model"
	"github.com/minhvn/sourcehub/internal/domain/repository"
)

const persistTimeout = 5 * time.Second

// Dispatcher persists notifications asynchronously through a bounded queue
// and a worker pool. Enqueueing never blocks and never fails the caller: a
// saturated queue drops the notification with a warning. Business transitions
// therefore cannot be aborted by the notification path.
type Dispatcher struct {
	repo    repository.NotificationRepository
	logger  *slog.Logger
	queue   chan model.Notification
	workers int

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDispatcher constructs the fan-out worker pool.
func NewDispatcher(repo repository.NotificationRepository, queueSize, workers int, logger *slog.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	if workers <= 0 {
		workers = 1
	}
	return &Dispatcher{
		repo:    repo,
		logger:  logger,
		queue:   make(chan model.Notification, queueSize),
		workers: workers,
	}
}

// Start launches background workers. The dispatcher owns its lifetime: the
// workers run until Stop, independent of any startup context the caller may
// hold (fx cancels the OnStart context as soon as startup returns).
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop terminates workers and waits for in-flight writes to finish. Queued
// notifications that no worker picked up are dropped; delivery is best effort.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Notify enqueues one notification for the user. It returns immediately; the
// record is written in the background and any failure is logged, never
// surfaced to the triggering operation.
func (d *Dispatcher) Notify(userID int64, t model.NotificationType, title, message, link string) {
	n := model.Notification{
		UserID:  userID,
		Type:    t,
		Title:   title,
		Message: message,
		Link:    link,
	}

	select {
	case d.queue <- n:
	default:
		d.logger.Warn("notification queue saturated, dropping",
			slog.Int64("user_id", userID),
			slog.String("type", string(t)),
		)
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case n := <-d.queue:
			d.persist(n)
		}
	}
}

func (d *Dispatcher) persist(n model.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if _, err := d.repo.Create(ctx, &n); err != nil {
		d.logger.Error("store notification failed",
			slog.Int64("user_id", n.UserID),
			slog.String("type", string(n.Type)),
			slog.String("error", err.Error()),
		)
	}
}
