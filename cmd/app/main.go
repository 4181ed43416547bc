package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/console"
	"github.com/akyairhashvil/pomo/internal/database"
	"github.com/akyairhashvil/pomo/internal/notify"
	"github.com/akyairhashvil/pomo/internal/pomodoro"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/tui"
	"github.com/akyairhashvil/pomo/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"
)

const (
	desktopTimeout = 2 * time.Second
	bellGap        = 150 * time.Millisecond
)

type flags struct {
	version bool
	plain   bool
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&f.version, "version", false, "print the version and exit")
	fs.BoolVar(&f.plain, "plain", false, "use the line-oriented console instead of the full-screen UI")
	err := fs.Parse(args)
	return f, err
}

func main() {
	f, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	if f.version {
		fmt.Printf("%s %s\n", config.AppName, tui.VersionLabel())
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, cfgErr := config.Load(config.DefaultFile(util.DataDir(config.AppName), util.ReportsDir(config.AppName)))
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	logger, err := util.NewLogger(filepath.Join(cfg.DataDir, config.LogFileName), cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()
	util.LogError(logger, "config load failed, using defaults", cfgErr)

	db, err := database.Open(ctx, filepath.Join(cfg.DataDir, config.DBFileName))
	if err != nil {
		logger.Error("open database failed", zap.Error(err))
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	interactive := !f.plain && term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	session, err := pomodoro.New(ctx, sessionOptions(cfg, db, logger, interactive))
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting", zap.String("version", tui.VersionLabel()), zap.Bool("interactive", interactive))

	if interactive {
		model := tui.NewModel(ctx, session, tui.Options{Tips: cfg.Tips, Logger: logger})
		p := tea.NewProgram(model, tea.WithAltScreen())
		_, err := p.Run()
		session.Close(context.Background())
		if err != nil {
			logger.Error("ui exited", zap.Error(err))
			fmt.Printf("Alas, there's been an error: %v", err)
			os.Exit(1)
		}
		return
	}

	c := console.New(session, timer.NewTicker(config.TickInterval), os.Stdout, logger)
	if err := c.Run(ctx, os.Stdin); err != nil {
		logger.Error("console exited", zap.Error(err))
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

// sessionOptions wires the configured notifiers. A missing session bus only
// disables desktop alerts. The bell goes to stdout in the full-screen UI and
// to stderr in console mode so piped output stays clean.
func sessionOptions(cfg config.File, repo database.Repository, logger *zap.Logger, interactive bool) pomodoro.Options {
	opts := pomodoro.Options{
		Repo:      repo,
		Logger:    logger,
		ExportDir: cfg.ExportDir,
	}
	if cfg.DesktopNotifications {
		if d, err := notify.NewDesktop(config.DesktopTitle); err != nil {
			logger.Info("desktop notifications unavailable", zap.Error(err))
		} else {
			opts.Desktop = notify.NewBackground(d, desktopTimeout, logger)
		}
	}
	if cfg.Sound {
		out := io.Writer(os.Stderr)
		if interactive {
			out = os.Stdout
		}
		opts.Sound = notify.NewBell(out, bellGap)
	}
	return opts
}
