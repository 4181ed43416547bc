package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Background forwards notifications to another Notifier on a separate
// goroutine so a slow bus never stalls the caller. Delivery failures are
// logged at debug level.
type Background struct {
	next    Notifier
	timeout time.Duration
	log     *zap.Logger
}

// NewBackground wraps next. Each delivery is bounded by timeout.
func NewBackground(next Notifier, timeout time.Duration, log *zap.Logger) *Background {
	if log == nil {
		log = zap.NewNop()
	}
	return &Background{next: next, timeout: timeout, log: log}
}

// Notify schedules delivery and returns immediately.
func (b *Background) Notify(ctx context.Context, title, body string) error {
	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.timeout)
		defer cancel()
		if err := b.next.Notify(ctx, title, body); err != nil {
			b.log.Debug("desktop notification failed", zap.Error(err))
		}
	}()
	return nil
}
