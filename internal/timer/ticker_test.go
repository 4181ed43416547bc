package timer

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTickerDeliversAndStops(t *testing.T) {
	tk := NewTicker(5 * time.Millisecond)
	var ticks atomic.Int32
	got := make(chan struct{}, 1)
	tk.Start(func(time.Time) {
		if ticks.Add(1) == 3 {
			got <- struct{}{}
		}
	})
	if !tk.Running() {
		t.Fatalf("expected ticker running")
	}
	select {
	case <-got:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for ticks")
	}
	tk.Stop()
	if tk.Running() {
		t.Fatalf("expected ticker stopped")
	}
	tk.Stop()
}

func TestTickerStartIsIdempotent(t *testing.T) {
	tk := NewTicker(time.Hour)
	tk.Start(func(time.Time) {})
	tk.Start(func(time.Time) { t.Errorf("second callback must not run") })
	tk.Stop()
}

func TestNewTickerDefaultsInterval(t *testing.T) {
	if tk := NewTicker(0); tk.interval != time.Second {
		t.Fatalf("expected one second default, got %v", tk.interval)
	}
}
