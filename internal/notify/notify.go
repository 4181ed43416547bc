// Package notify delivers desktop notifications and audible cues.
package notify

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when a backend cannot be reached.
var ErrUnavailable = errors.New("notification backend unavailable")

// Notifier shows a desktop notification.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}

// Player plays a sound cue.
type Player interface {
	Play(c Cue) error
}

// Nop discards notifications and cues.
type Nop struct{}

func (Nop) Notify(context.Context, string, string) error { return nil }

func (Nop) Play(Cue) error { return nil }
