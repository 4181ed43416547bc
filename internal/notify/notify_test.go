package notify

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/godbus/dbus/v5"
)

func TestCueTones(t *testing.T) {
	tests := []struct {
		cue   Cue
		freqs []int
	}{
		{CueStart, []int{800}},
		{CueBreak, []int{600}},
		{CueSessionComplete, []int{1000, 800}},
		{CueGoalAchieved, []int{1200, 1000, 800}},
	}
	for _, tt := range tests {
		tones := tt.cue.Tones()
		if len(tones) != len(tt.freqs) {
			t.Fatalf("%s: expected %d tones, got %d", tt.cue, len(tt.freqs), len(tones))
		}
		for i, tone := range tones {
			if tone.Frequency != tt.freqs[i] {
				t.Fatalf("%s: tone %d expected %dHz, got %d", tt.cue, i, tt.freqs[i], tone.Frequency)
			}
			if tone.Duration <= 0 {
				t.Fatalf("%s: tone %d has no duration", tt.cue, i)
			}
		}
	}
	if Cue(99).Tones() != nil {
		t.Fatalf("expected no tones for unknown cue")
	}
}

func TestBellRingsPerTone(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf, 0)
	if err := b.Play(CueGoalAchieved); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if got := strings.Count(buf.String(), "\a"); got != 3 {
		t.Fatalf("expected 3 bells, got %d", got)
	}
	if err := b.Play(Cue(42)); err == nil {
		t.Fatalf("expected error for unknown cue")
	}
}

func TestBellWithoutWriter(t *testing.T) {
	b := NewBell(nil, 0)
	if err := b.Play(CueStart); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestBellDelayedFirstToneIsImmediate(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf, 1<<40)
	if err := b.Play(CueStart); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	b.mu.Lock()
	got := buf.String()
	b.mu.Unlock()
	if got != "\a" {
		t.Fatalf("expected one immediate bell, got %q", got)
	}
}

type fakeBus struct {
	calls []([]interface{})
	err   error
	id    uint32
}

func (f *fakeBus) CallWithContext(_ context.Context, method string, _ dbus.Flags, args ...interface{}) *dbus.Call {
	if method != dbusMethod {
		return &dbus.Call{Err: errors.New("unexpected method " + method)}
	}
	f.calls = append(f.calls, args)
	if f.err != nil {
		return &dbus.Call{Err: f.err}
	}
	f.id++
	return &dbus.Call{Body: []interface{}{f.id}}
}

func TestDesktopNotifyReplacesPrevious(t *testing.T) {
	bus := &fakeBus{}
	d := newDesktop("Pomodoro Timer", bus)
	ctx := context.Background()

	if err := d.Notify(ctx, "Pomodoro Timer", "Study session started"); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	if err := d.Notify(ctx, "Pomodoro Timer", "Timer reset"); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	if len(bus.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(bus.calls))
	}
	first, second := bus.calls[0], bus.calls[1]
	if first[0] != "Pomodoro Timer" || first[4] != "Study session started" {
		t.Fatalf("unexpected args %v", first)
	}
	if first[1] != uint32(0) {
		t.Fatalf("expected replaces id 0, got %v", first[1])
	}
	if second[1] != uint32(1) {
		t.Fatalf("expected replaces id 1, got %v", second[1])
	}
}

func TestDesktopNotifyError(t *testing.T) {
	d := newDesktop("pomo", &fakeBus{err: errors.New("no service")})
	err := d.Notify(context.Background(), "t", "b")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestNop(t *testing.T) {
	var n Nop
	if err := n.Notify(context.Background(), "a", "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := n.Play(CueStart); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

type chanNotifier chan string

func (c chanNotifier) Notify(_ context.Context, _, body string) error {
	c <- body
	return errors.New("bus gone")
}

func TestBackgroundDelivers(t *testing.T) {
	ch := make(chanNotifier, 1)
	b := NewBackground(ch, time.Second, nil)
	if err := b.Notify(context.Background(), "t", "hello"); err != nil {
		t.Fatalf("Notify failed: %v", err)
	}
	select {
	case got := <-ch:
		if got != "hello" {
			t.Fatalf("expected hello, got %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("notification not delivered")
	}
}
