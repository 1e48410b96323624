package notify

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/octobees/portfolio-contact/api/internal/entity"
)

// Dispatcher runs notifications in the background so request handling never
// waits on mail delivery. A nil *Dispatcher drops every notification.
type Dispatcher struct {
	notifier Notifier
	timeout  time.Duration
	log      logrus.FieldLogger
	wg       sync.WaitGroup
}

// NewDispatcher wraps notifier. timeout bounds each delivery attempt.
func NewDispatcher(notifier Notifier, timeout time.Duration, log logrus.FieldLogger) *Dispatcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Dispatcher{notifier: notifier, timeout: timeout, log: log}
}

// Dispatch starts one delivery attempt and returns immediately.
// The outcome is only logged.
func (d *Dispatcher) Dispatch(sub entity.Submission) {
	if d == nil || d.notifier == nil {
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		entry := d.log.WithField("submission_id", sub.ID)
		if err := d.notifier.Notify(ctx, sub); err != nil {
			entry.WithError(err).Warn("notification failed")
			return
		}
		entry.Info("notification sent")
	}()
}

// Wait blocks until in-flight deliveries finish or ctx ends.
func (d *Dispatcher) Wait(ctx context.Context) error {
	if d == nil {
		return nil
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
