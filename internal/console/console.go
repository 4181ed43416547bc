// Package console is a line-oriented front end for non-interactive
// terminals and pipes.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/pomodoro"
	"github.com/akyairhashvil/pomo/internal/util"
	"go.uber.org/zap"
)

// Clock delivers ticks until stopped. *timer.Ticker satisfies it.
type Clock interface {
	Start(fn func(time.Time))
	Stop()
}

type Console struct {
	session *pomodoro.Session
	clock   Clock
	out     io.Writer
	log     *zap.Logger

	mu      sync.Mutex
	tickGen uint64
	ticking bool
}

func New(session *pomodoro.Session, clock Clock, out io.Writer, log *zap.Logger) *Console {
	if log == nil {
		log = zap.NewNop()
	}
	return &Console{session: session, clock: clock, out: out, log: log}
}

const helpText = `Commands:
  s, start        start, or switch to break while running
  b, break        switch to break
  r, reset        reset the timer
  g, goal <min>   set the daily goal (1-1440)
  G, clear        clear the daily goal
  +, -            adjust the session goal by 5 minutes
  t, theme        toggle dark/light mode (used by image export)
  e, json         export stats as JSON
  i, image        export progress as an image
  p, pdf          export a PDF report
  status          show the timer and today's totals
  history         show recent days
  ?, help         show this help
  q, quit         quit`

// Run reads commands from in until quit, EOF or ctx is done. A running
// session is finalized on exit.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	errs := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		errs <- scanner.Err()
	}()

	defer c.shutdown()

	c.printf("%s\n%s\n", "Pomodoro Timer", helpText)
	c.printStatus()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errs:
			return err
		case line := <-lines:
			if c.Execute(ctx, line) {
				return nil
			}
		}
	}
}

func (c *Console) shutdown() {
	c.clock.Stop()
	c.session.Close(context.Background())
}

// Execute runs one command line. It reports whether the user asked to quit.
func (c *Console) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]
	c.log.Debug("console command", zap.String("command", cmd))

	var notes []models.Notification
	switch cmd {
	case "s", "start":
		notes = c.session.Toggle(ctx)
	case "b", "break":
		notes = c.session.SwitchToBreak(ctx)
	case "r", "reset":
		notes = c.session.Reset(ctx)
	case "g", "goal":
		notes = c.session.SetDailyGoal(ctx, strings.Join(args, " "))
	case "G", "clear":
		notes = c.session.ClearDailyGoal(ctx)
	case "+":
		notes = c.session.AdjustSessionGoal(ctx, stepArg(args))
	case "-":
		notes = c.session.AdjustSessionGoal(ctx, -stepArg(args))
	case "t", "theme":
		notes = c.session.ToggleTheme(ctx)
	case "e", "json":
		notes = c.session.Export(ctx, pomodoro.ExportJSON)
	case "i", "image":
		notes = c.session.Export(ctx, pomodoro.ExportImage)
	case "p", "pdf":
		notes = c.session.Export(ctx, pomodoro.ExportPDF)
	case "export":
		format := pomodoro.ExportJSON
		if len(args) > 0 {
			format = pomodoro.ExportFormat(args[0])
		}
		notes = c.session.Export(ctx, format)
	case "status":
		c.printStatus()
		return false
	case "history":
		c.printHistory(ctx)
		return false
	case "?", "help":
		c.printf("%s\n", helpText)
		return false
	case "q", "quit", "exit":
		return true
	default:
		c.printf("unknown command %q, type help\n", cmd)
		return false
	}

	c.printNotes(notes)
	if v := c.session.View(); v.LastExport != "" && isExport(cmd) {
		c.printf("  -> %s\n", v.LastExport)
	}
	c.syncClock(ctx)
	return false
}

func stepArg(args []string) int {
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			return n
		}
	}
	return 5
}

func isExport(cmd string) bool {
	switch cmd {
	case "e", "json", "i", "image", "p", "pdf", "export":
		return true
	}
	return false
}

// syncClock runs the clock exactly while the session is running, bound to
// the current run generation.
func (c *Console) syncClock(ctx context.Context) {
	v := c.session.View()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !v.Timer.Running {
		if c.ticking {
			c.clock.Stop()
			c.ticking = false
		}
		return
	}
	if c.ticking && c.tickGen == v.Generation {
		return
	}
	if c.ticking {
		c.clock.Stop()
	}
	gen := v.Generation
	c.tickGen = gen
	c.ticking = true
	c.clock.Start(func(time.Time) {
		c.printNotes(c.session.Tick(ctx, gen))
	})
}

func (c *Console) printNotes(notes []models.Notification) {
	for _, n := range notes {
		c.printf("[%s] %s\n", n.Severity, n.Message)
	}
}

func (c *Console) printStatus() {
	v := c.session.View()
	mode := "Ready to Start"
	switch {
	case v.Timer.Running:
		mode = v.Timer.Mode.Label()
	case v.Timer.Mode == models.ModeBreak:
		mode = models.ModeBreak.Label()
	}
	c.printf("%s %s | session %d min (goal %d) | today: %d sessions, %d min study, %d min break\n",
		mode, util.FormatClock(v.Timer.TotalElapsedSeconds), v.Timer.CurrentSessionSeconds/60,
		v.Timer.SessionGoalMinutes, v.Stats.StudySessionsCompleted, v.Stats.TotalStudyMinutes, v.Stats.TotalBreakMinutes)
	if v.GoalSet {
		c.printf("Daily goal: %d of %d min (%d%%)\n", v.Stats.TotalStudyMinutes, v.Goal.DailyGoalMinutes, v.GoalPercent)
	} else {
		c.printf("Daily goal: not set\n")
	}
}

func (c *Console) printHistory(ctx context.Context) {
	for _, day := range c.session.History(ctx) {
		c.printf("%s  %d sessions  %d min study  %d min break\n",
			day.Date, day.StudySessionsCompleted, day.TotalStudyMinutes, day.TotalBreakMinutes)
	}
}

func (c *Console) printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		c.log.Debug("console write failed", zap.Error(err))
	}
}
