package tui

import (
	"context"
	"math/rand/v2"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/pomodoro"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Options tune the TUI.
type Options struct {
	Tips   bool
	Logger *zap.Logger
	Rand   *rand.Rand
}

type banner struct {
	id    int
	notes []models.Notification
}

// Model is the root bubbletea model. All timer state lives in the
// pomodoro.Session; the model only holds presentation state.
type Model struct {
	ctx         context.Context
	session     *pomodoro.Session
	log         *zap.Logger
	keys        *HandlerRegistry
	view        pomodoro.View
	history     []models.DailyStats
	sessionBar  progress.Model
	goalBar     progress.Model
	goalInput   textinput.Model
	editingGoal bool
	showHelp    bool
	banner      *banner
	bannerSeq   int
	tips        bool
	rng         *rand.Rand
	width       int
	height      int
	quitting    bool
}

func NewModel(ctx context.Context, session *pomodoro.Session, opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	gi := textinput.New()
	gi.Placeholder = "minutes (1-1440)"
	gi.CharLimit = config.GoalInputCharLimit
	gi.Width = 20

	m := Model{
		ctx:       ctx,
		session:   session,
		log:       log,
		keys:      defaultKeyRegistry(),
		goalInput: gi,
		tips:      opts.Tips,
		rng:       opts.Rand,
	}
	m.view = session.View()
	m.applyTheme()
	m.history = session.History(ctx)
	return m
}

func (m Model) Init() tea.Cmd {
	if m.tips {
		return tipCmd()
	}
	return nil
}

func (m *Model) applyTheme() {
	theme := ThemeFor(m.view.DarkMode)
	width := config.ProgressBarWidth
	if m.sessionBar.Width > 0 {
		width = m.sessionBar.Width
	}
	m.sessionBar = progress.New(progress.WithGradient(theme.BarFrom, theme.BarTo), progress.WithoutPercentage())
	m.sessionBar.Width = width
	m.goalBar = progress.New(progress.WithGradient(theme.BarFrom, theme.GoalBarTo), progress.WithoutPercentage())
	m.goalBar.Width = width
}

func (m Model) theme() Theme {
	return ThemeFor(m.view.DarkMode)
}

// refresh re-reads the session view after a command. It returns a tick
// command when the command started a new run.
func (m *Model) refresh() tea.Cmd {
	prev := m.view
	m.view = m.session.View()
	if prev.DarkMode != m.view.DarkMode {
		m.applyTheme()
	}
	if prev.Stats != m.view.Stats {
		m.history = m.session.History(m.ctx)
	}
	if m.view.Timer.Running && (!prev.Timer.Running || prev.Generation != m.view.Generation) {
		return tickCmd(m.view.Generation)
	}
	return nil
}

// notify shows notes in the banner and schedules its expiry.
func (m *Model) notify(notes []models.Notification) tea.Cmd {
	if len(notes) == 0 {
		return nil
	}
	m.bannerSeq++
	m.banner = &banner{id: m.bannerSeq, notes: notes}
	for _, n := range notes {
		m.log.Debug("notification", zap.String("severity", string(n.Severity)), zap.String("message", n.Message))
	}
	return bannerCmd(m.bannerSeq, config.BannerTTL)
}

func (m Model) randomTip() string {
	return pomodoro.RandomTip(m.rng)
}
