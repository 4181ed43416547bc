package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/akyairhashvil/pomo/internal/pomodoro"
	"github.com/akyairhashvil/pomo/internal/testutil"
	"go.uber.org/zap"
)

type fakeClock struct {
	mu     sync.Mutex
	fn     func(time.Time)
	starts int
	stops  int
}

func (f *fakeClock) Start(fn func(time.Time)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fn = fn
	f.starts++
}

func (f *fakeClock) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fn = nil
	f.stops++
}

func (f *fakeClock) running() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fn != nil
}

func (f *fakeClock) fire(n int) {
	f.mu.Lock()
	fn := f.fn
	f.mu.Unlock()
	for i := 0; i < n && fn != nil; i++ {
		fn(time.Now())
	}
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func setupConsole(t *testing.T) (*Console, *pomodoro.Session, *fakeClock, *lockedBuffer) {
	t.Helper()
	db := testutil.OpenDB(t)
	session, err := pomodoro.New(context.Background(), pomodoro.Options{
		Repo:      db,
		Logger:    zap.NewNop(),
		ExportDir: t.TempDir(),
		Now:       testutil.NewClock(testutil.Day).Func(),
	})
	if err != nil {
		t.Fatalf("pomodoro.New failed: %v", err)
	}
	clock := &fakeClock{}
	out := &lockedBuffer{}
	return New(session, clock, out, zap.NewNop()), session, clock, out
}

func TestStartRunsClockAndBreakStopsIt(t *testing.T) {
	ctx := context.Background()
	c, session, clock, out := setupConsole(t)

	c.Execute(ctx, "start")
	if !clock.running() {
		t.Fatalf("expected clock running")
	}
	clock.fire(90)
	if got := session.View().Timer.CurrentSessionSeconds; got != 90 {
		t.Fatalf("expected 90 seconds, got %d", got)
	}

	c.Execute(ctx, "b")
	if clock.running() {
		t.Fatalf("expected clock stopped on break")
	}
	st := session.View().Stats
	if st.StudySessionsCompleted != 1 || st.TotalStudyMinutes != 1 {
		t.Fatalf("unexpected stats %+v", st)
	}
	text := out.String()
	for _, want := range []string{"[success] Study session started", "[info] Switched to break mode"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
}

func TestRestartRebindsClock(t *testing.T) {
	ctx := context.Background()
	c, session, clock, _ := setupConsole(t)
	c.Execute(ctx, "s")
	c.Execute(ctx, "s")
	c.Execute(ctx, "s")
	if clock.starts != 2 || !clock.running() {
		t.Fatalf("expected two clock runs, got %d", clock.starts)
	}
	clock.fire(5)
	if got := session.View().Timer.CurrentSessionSeconds; got != 5 {
		t.Fatalf("expected 5 seconds, got %d", got)
	}
}

func TestSessionGoalNotificationPrinted(t *testing.T) {
	ctx := context.Background()
	c, _, clock, out := setupConsole(t)
	c.Execute(ctx, "- 24")
	c.Execute(ctx, "s")
	clock.fire(60)
	if !strings.Contains(out.String(), "[info] "+pomodoro.MsgSessionGoal) {
		t.Fatalf("expected session goal notification:\n%s", out.String())
	}
}

func TestGoalCommands(t *testing.T) {
	ctx := context.Background()
	c, session, _, out := setupConsole(t)
	c.Execute(ctx, "goal 1441")
	if !strings.Contains(out.String(), "[error] "+pomodoro.MsgInvalidGoal) {
		t.Fatalf("expected validation error:\n%s", out.String())
	}
	c.Execute(ctx, "g 45")
	if session.View().Goal.DailyGoalMinutes != 45 {
		t.Fatalf("expected goal 45")
	}
	c.Execute(ctx, "status")
	if !strings.Contains(out.String(), "Daily goal: 0 of 45 min (0%)") {
		t.Fatalf("expected goal in status:\n%s", out.String())
	}
	c.Execute(ctx, "clear")
	if session.View().GoalSet {
		t.Fatalf("expected goal cleared")
	}
}

func TestExportCommandPrintsPath(t *testing.T) {
	ctx := context.Background()
	c, _, _, out := setupConsole(t)
	c.Execute(ctx, "export json")
	text := out.String()
	if !strings.Contains(text, pomodoro.MsgExportedJSON) || !strings.Contains(text, "pomodoro-stats-2026-10-15.json") {
		t.Fatalf("unexpected output:\n%s", text)
	}
	c.Execute(ctx, "export csv")
	if !strings.Contains(out.String(), "[error] Unknown export format") {
		t.Fatalf("expected unknown format error:\n%s", out.String())
	}
}

func TestUnknownCommandAndQuit(t *testing.T) {
	ctx := context.Background()
	c, _, _, out := setupConsole(t)
	if c.Execute(ctx, "dance") {
		t.Fatalf("unknown command should not quit")
	}
	if !strings.Contains(out.String(), `unknown command "dance"`) {
		t.Fatalf("expected unknown command message")
	}
	if c.Execute(ctx, "   ") {
		t.Fatalf("blank line should not quit")
	}
	if !c.Execute(ctx, "q") {
		t.Fatalf("expected quit")
	}
}

func TestRunFinalizesOnEOF(t *testing.T) {
	c, session, clock, out := setupConsole(t)
	in := strings.NewReader("start\nhistory\n")
	if err := c.Run(context.Background(), in); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if clock.running() {
		t.Fatalf("expected clock stopped after Run")
	}
	v := session.View()
	if v.Timer.Running || v.Stats.StudySessionsCompleted != 1 {
		t.Fatalf("expected session finalized on exit, got %+v", v)
	}
	if !strings.Contains(out.String(), "Commands:") || !strings.Contains(out.String(), "2026-10-15") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	c, _, _, _ := setupConsole(t)
	in := strings.NewReader("quit\nstart\n")
	if err := c.Run(context.Background(), in); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	c, _, _, _ := setupConsole(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r, w := io.Pipe()
	defer w.Close()
	if err := c.Run(ctx, r); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
}
