package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler runs a command for a key press. handled reports whether the
// key was consumed.
type KeyHandler func(m Model, key string) (next Model, cmd tea.Cmd, handled bool)

type KeyBinding struct {
	Keys        []string
	Handler     KeyHandler
	Description string
	Priority    int
}

func (b KeyBinding) Matches(key string) bool {
	for _, k := range b.Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Label is the key list shown in help, e.g. "space/s".
func (b KeyBinding) Label() string {
	labels := make([]string, 0, len(b.Keys))
	seen := make(map[string]bool)
	for _, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		labels = append(labels, k)
	}
	return strings.Join(labels, "/")
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Matches(key) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) Bindings() []KeyBinding {
	out := make([]KeyBinding, len(r.bindings))
	copy(out, r.bindings)
	return out
}

// HelpLine renders the described bindings as "[key]desc|[key]desc".
func (r *HandlerRegistry) HelpLine() string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.bindings {
		if b.Description == "" {
			continue
		}
		label := b.Label()
		if seen[label] {
			continue
		}
		seen[label] = true
		parts = append(parts, "["+label+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}
