package notify

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const bel = "\a"

// Bell renders cues as terminal bells, one per tone. Terminals cannot
// reproduce pitch, so only the rhythm of a cue survives.
type Bell struct {
	mu  sync.Mutex
	out io.Writer
	gap time.Duration
}

// NewBell writes bells to out. Tones after the first are delayed by their
// predecessor's duration plus gap; with a non-positive gap all bells are
// written at once.
func NewBell(out io.Writer, gap time.Duration) *Bell {
	return &Bell{out: out, gap: gap}
}

// Play rings the bell for each tone of c.
func (b *Bell) Play(c Cue) error {
	tones := c.Tones()
	if len(tones) == 0 {
		return fmt.Errorf("unknown cue %d", int(c))
	}
	if b.gap <= 0 {
		for range tones {
			if err := b.ring(); err != nil {
				return err
			}
		}
		return nil
	}

	if err := b.ring(); err != nil {
		return err
	}
	var delay time.Duration
	for i := 1; i < len(tones); i++ {
		delay += tones[i-1].Duration + b.gap
		time.AfterFunc(delay, func() { _ = b.ring() })
	}
	return nil
}

func (b *Bell) ring() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.out == nil {
		return ErrUnavailable
	}
	_, err := io.WriteString(b.out, bel)
	return err
}
