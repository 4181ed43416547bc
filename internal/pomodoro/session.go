// Package pomodoro coordinates the timer engine, daily statistics, the goal
// tracker and their side effects behind one lock.
package pomodoro

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/database"
	"github.com/akyairhashvil/pomo/internal/goal"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/notify"
	"github.com/akyairhashvil/pomo/internal/stats"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/util"
	"go.uber.org/zap"
)

// User-facing messages.
const (
	MsgStarted        = "Study session started"
	MsgSessionGoal    = "Session goal reached! Consider taking a break."
	MsgBreak          = "Switched to break mode"
	MsgReset          = "Timer reset"
	MsgGoalSet        = "Daily goal set to %d minutes!"
	MsgInvalidGoal    = "Please enter a valid goal (1-1440 minutes)"
	MsgGoalCleared    = "Daily goal cleared"
	MsgGoalAchieved   = "🎉 Daily goal achieved! Great job!"
	MsgSessionGoalSet = "Session goal set to %d minutes"
	MsgThemeEnabled   = "%s mode enabled"
	MsgExportedJSON   = "Stats exported as JSON!"
	MsgExportedImage  = "Progress exported as image!"
	MsgExportedPDF    = "Report exported as PDF!"
	MsgExportFailed   = "Export failed: %v"
	MsgUnknownExport  = "Unknown export format %q"
)

const (
	desktopStudyTitle   = "Study Session"
	desktopBreakTitle   = "Break Time"
	desktopStudyBody    = "Keep up the great work!"
	desktopBreakBody    = "Take a well-deserved break!"
	desktopAchievedBody = "Daily goal achieved! Great job!"
	desktopSessionGoal  = "Session goal reached. Consider taking a break."
)

// ExportFormat selects an export renderer.
type ExportFormat string

const (
	ExportJSON  ExportFormat = "json"
	ExportImage ExportFormat = "image"
	ExportPDF   ExportFormat = "pdf"
)

// Options configures a Session.
type Options struct {
	Repo      database.Repository
	Logger    *zap.Logger
	Desktop   notify.Notifier
	Sound     notify.Player
	ExportDir string
	Now       func() time.Time
}

// View is a consistent copy of everything a front end renders.
type View struct {
	Timer           models.TimerState
	Stats           models.DailyStats
	Goal            models.GoalConfig
	GoalPercent     int
	GoalSet         bool
	SessionProgress float64
	DarkMode        bool
	Generation      uint64
	LastExport      string
}

// Session is the single owner of the timer state, statistics and goal.
// All methods are safe for concurrent use.
type Session struct {
	mu         sync.Mutex
	engine     *timer.Engine
	agg        *stats.Aggregator
	tracker    *goal.Tracker
	settings   models.Settings
	repo       database.Repository
	log        *zap.Logger
	desktop    notify.Notifier
	sound      notify.Player
	exportDir  string
	lastExport string
	now        func() time.Time
}

// New loads settings and today's statistics and returns an idle Session.
func New(ctx context.Context, opts Options) (*Session, error) {
	if opts.Repo == nil {
		return nil, errors.New("pomodoro: repository is required")
	}
	s := &Session{
		repo:      opts.Repo,
		log:       opts.Logger,
		desktop:   opts.Desktop,
		sound:     opts.Sound,
		exportDir: opts.ExportDir,
		now:       opts.Now,
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.desktop == nil {
		s.desktop = notify.Nop{}
	}
	if s.sound == nil {
		s.sound = notify.Nop{}
	}
	if s.now == nil {
		s.now = time.Now
	}

	settings, err := s.repo.LoadSettings(ctx)
	if err != nil {
		if errors.Is(err, database.ErrMalformedRecord) {
			s.log.Warn("settings malformed, defaults applied", zap.Error(err))
		} else {
			s.log.Error("load settings failed", zap.Error(err))
			settings = database.DefaultSettings()
		}
	}
	s.settings = settings

	s.engine = timer.NewEngine(settings.SessionGoalMinutes)
	s.engine.SetClock(s.now)
	s.agg = stats.NewAggregator(s.repo, s.log)
	s.agg.Load(ctx, s.now())
	s.tracker = goal.NewTracker(settings.DailyGoalMinutes)
	s.tracker.Prime(s.agg.Stats().TotalStudyMinutes)

	s.log.Info("session ready",
		zap.Int("study_minutes", s.agg.Stats().TotalStudyMinutes),
		zap.Int("daily_goal", settings.DailyGoalMinutes),
		zap.Int("session_goal", settings.SessionGoalMinutes),
	)
	return s, nil
}

// View returns the current state for rendering.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.agg.Stats()
	pct, ok := s.tracker.Progress(st.TotalStudyMinutes)
	return View{
		Timer:           s.engine.State(),
		Stats:           st,
		Goal:            s.tracker.Config(),
		GoalPercent:     pct,
		GoalSet:         ok,
		SessionProgress: s.engine.SessionProgress(),
		DarkMode:        s.settings.DarkMode,
		Generation:      s.engine.Generation(),
		LastExport:      s.lastExport,
	}
}

// Generation returns the current run id for tagging ticks.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Generation()
}

// Start begins a study run, leaving break mode if needed.
func (s *Session) Start(ctx context.Context) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rollover()
	return s.handle(ctx, s.engine.Start())
}

// Tick advances the running session by one second. Ticks from an earlier
// run or arriving while stopped are dropped.
func (s *Session) Tick(ctx context.Context, generation uint64) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.engine.Generation() || !s.engine.State().Running {
		return nil
	}
	s.rollover()
	return s.handle(ctx, s.engine.Tick())
}

// SwitchToBreak ends the running study session.
func (s *Session) SwitchToBreak(ctx context.Context) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handle(ctx, s.engine.SwitchToBreak())
}

// Toggle starts when idle and switches to break while running.
func (s *Session) Toggle(ctx context.Context) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine.State().Running {
		return s.handle(ctx, s.engine.SwitchToBreak())
	}
	s.rollover()
	return s.handle(ctx, s.engine.Start())
}

// Reset stops the timer and clears its counters, finalizing a running
// session first.
func (s *Session) Reset(ctx context.Context) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handle(ctx, s.engine.Reset())
}

// SetDailyGoal parses and applies a daily goal in minutes.
func (s *Session) SetDailyGoal(ctx context.Context, input string) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	minutes, err := s.tracker.SetDailyGoal(input)
	if err != nil {
		s.log.Debug("daily goal rejected", zap.Error(err))
		return []models.Notification{s.note(models.SeverityError, MsgInvalidGoal)}
	}
	s.settings.DailyGoalMinutes = minutes
	s.saveSettings(ctx)

	out := []models.Notification{s.note(models.SeveritySuccess, fmt.Sprintf(MsgGoalSet, minutes))}
	return append(out, s.evaluateGoal(ctx)...)
}

// ClearDailyGoal unsets the daily goal.
func (s *Session) ClearDailyGoal(ctx context.Context) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.tracker.Config().IsSet() {
		return nil
	}
	s.tracker.Clear()
	s.settings.DailyGoalMinutes = 0
	s.saveSettings(ctx)
	return []models.Notification{s.note(models.SeverityInfo, MsgGoalCleared)}
}

// AdjustSessionGoal changes the session goal by delta minutes, bounded to
// 1..config.MaxSessionGoalMinutes.
func (s *Session) AdjustSessionGoal(ctx context.Context, delta int) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.engine.State().SessionGoalMinutes
	next := util.Clamp(cur+delta, 1, config.MaxSessionGoalMinutes)
	if next == cur {
		return nil
	}
	if err := s.engine.SetSessionGoal(next); err != nil {
		return []models.Notification{s.note(models.SeverityError, err.Error())}
	}
	s.settings.SessionGoalMinutes = next
	s.saveSettings(ctx)
	return []models.Notification{s.note(models.SeverityInfo, fmt.Sprintf(MsgSessionGoalSet, next))}
}

// ToggleTheme flips between dark and light mode.
func (s *Session) ToggleTheme(ctx context.Context) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.DarkMode = !s.settings.DarkMode
	s.saveSettings(ctx)
	name := "Light"
	if s.settings.DarkMode {
		name = "Dark"
	}
	return []models.Notification{s.note(models.SeverityInfo, fmt.Sprintf(MsgThemeEnabled, name))}
}

// History returns the recent daily records, today first.
func (s *Session) History(ctx context.Context) []models.DailyStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agg.History(ctx, config.HistoryDays)
}

// Close finalizes a running session without user-facing side effects.
// Front ends call it on quit so the elapsed minutes are kept.
func (s *Session) Close(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.engine.State().Running {
		return
	}
	for _, ev := range s.engine.Reset() {
		if ev.Type == timer.EventSessionEnded {
			s.agg.FinalizeSession(ctx, ev.Mode, ev.Seconds, ev.StartedAt, ev.At)
		}
	}
	s.log.Info("session closed", zap.Int("study_minutes", s.agg.Stats().TotalStudyMinutes))
}

func (s *Session) rollover() {
	if s.agg.RollIfStale(s.now()) {
		s.tracker.Evaluate(s.agg.Stats().TotalStudyMinutes)
	}
}

// handle applies engine events to statistics and turns them into
// notifications, cues and desktop alerts. Callers hold s.mu.
func (s *Session) handle(ctx context.Context, events []timer.Event) []models.Notification {
	var out []models.Notification
	for _, ev := range events {
		switch ev.Type {
		case timer.EventStarted:
			out = append(out, s.note(models.SeveritySuccess, MsgStarted))
			s.play(notify.CueStart)
			s.alert(ctx, desktopStudyTitle, desktopStudyBody)
		case timer.EventSessionGoalReached:
			out = append(out, s.note(models.SeverityInfo, MsgSessionGoal))
			s.play(notify.CueSessionComplete)
			s.alert(ctx, config.DesktopTitle, desktopSessionGoal)
		case timer.EventSessionEnded:
			s.agg.FinalizeSession(ctx, ev.Mode, ev.Seconds, ev.StartedAt, ev.At)
			out = append(out, s.evaluateGoal(ctx)...)
		case timer.EventBreakStarted:
			out = append(out, s.note(models.SeverityInfo, MsgBreak))
			s.play(notify.CueBreak)
			s.alert(ctx, desktopBreakTitle, desktopBreakBody)
		case timer.EventReset:
			out = append(out, s.note(models.SeverityInfo, MsgReset))
		}
	}
	return out
}

func (s *Session) evaluateGoal(ctx context.Context) []models.Notification {
	if !s.tracker.Evaluate(s.agg.Stats().TotalStudyMinutes) {
		return nil
	}
	s.log.Info("daily goal achieved",
		zap.Int("goal", s.tracker.Config().DailyGoalMinutes),
		zap.Int("study_minutes", s.agg.Stats().TotalStudyMinutes),
	)
	s.play(notify.CueGoalAchieved)
	s.alert(ctx, config.DesktopTitle, desktopAchievedBody)
	return []models.Notification{s.note(models.SeveritySuccess, MsgGoalAchieved)}
}

func (s *Session) note(sev models.Severity, msg string) models.Notification {
	return models.Notification{Severity: sev, Message: msg, At: s.now()}
}

func (s *Session) play(c notify.Cue) {
	if err := s.sound.Play(c); err != nil {
		s.log.Debug("sound cue failed", zap.Stringer("cue", c), zap.Error(err))
	}
}

func (s *Session) alert(ctx context.Context, title, body string) {
	if err := s.desktop.Notify(ctx, title, body); err != nil {
		s.log.Debug("desktop notification failed", zap.Error(err))
	}
}

func (s *Session) saveSettings(ctx context.Context) {
	util.LogError(s.log, "save settings failed", s.repo.SaveSettings(ctx, s.settings))
}
