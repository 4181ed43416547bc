package timer

import (
	"sync"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
)

// Ticker is a cancellable one-second clock source. The callback runs on the
// ticker goroutine; callers that share state with it must synchronise.
type Ticker struct {
	mu       sync.Mutex
	interval time.Duration
	stopCh   chan struct{}
	running  bool
}

// NewTicker creates a stopped Ticker. A non-positive interval falls back to
// one second.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = config.TickInterval
	}
	return &Ticker{interval: interval}
}

// Start launches the ticking loop. It is a no-op while already running.
func (t *Ticker) Start(fn func(time.Time)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}
	t.running = true
	t.stopCh = make(chan struct{})
	go t.run(t.stopCh, fn)
}

// Stop cancels the loop. After Stop returns no new tick is delivered; a
// callback already in flight may still complete, which is why ticks are
// tagged with the engine generation.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.running {
		return
	}
	close(t.stopCh)
	t.running = false
}

// Running reports whether the loop is active.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *Ticker) run(stopCh <-chan struct{}, fn func(time.Time)) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.C:
			select {
			case <-stopCh:
				return
			default:
			}
			fn(tickTime)
		}
	}
}
