package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRegistryPriorityAndHelp(t *testing.T) {
	r := NewHandlerRegistry()
	calls := []string{}
	mk := func(name string, handled bool) KeyHandler {
		return func(m Model, key string) (Model, tea.Cmd, bool) {
			calls = append(calls, name)
			return m, nil, handled
		}
	}
	r.Register(KeyBinding{Keys: []string{"x"}, Handler: mk("low", true), Description: "low"})
	r.Register(KeyBinding{Keys: []string{"x"}, Handler: mk("high", false), Description: "high", Priority: 10})

	if _, _, handled := r.Handle(Model{}, "x"); !handled {
		t.Fatalf("expected x to be handled")
	}
	if strings.Join(calls, ",") != "high,low" {
		t.Fatalf("unexpected call order %v", calls)
	}
	if _, _, handled := r.Handle(Model{}, "y"); handled {
		t.Fatalf("unexpected handling of y")
	}
	if got := r.HelpLine(); got != "[x]high" {
		t.Fatalf("unexpected help line %q", got)
	}
}

func TestDefaultRegistryHelpLine(t *testing.T) {
	help := defaultKeyRegistry().HelpLine()
	for _, want := range []string{"[ctrl+c/q]quit", "[space/s]start/switch", "[b]break", "[r]reset", "[g]goal", "[t]theme", "[e]json", "[i]image", "[p]pdf", "[?]help"} {
		if !strings.Contains(help, want) {
			t.Fatalf("expected %q in %q", want, help)
		}
	}
	if !strings.HasPrefix(help, "[ctrl+c/q]quit") {
		t.Fatalf("expected quit first, got %q", help)
	}
}
