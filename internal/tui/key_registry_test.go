package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHandlerRegistryPriority(t *testing.T) {
	var calls []string
	handler := func(name string, handled bool) KeyHandler {
		return func(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
			calls = append(calls, name)
			return m, nil, handled
		}
	}
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "x", Handler: handler("global", true)})
	r.Register(KeyBinding{Key: "x", Sections: []section{sectionEntries}, Priority: 1, Handler: handler("entries", false)})

	m := MainModel{focus: sectionEntries}
	if _, _, handled := r.Handle(m, "x"); !handled {
		t.Fatalf("expected key to be handled")
	}
	if strings.Join(calls, ",") != "entries,global" {
		t.Fatalf("unexpected call order %v", calls)
	}

	calls = nil
	m.focus = sectionNotes
	r.Handle(m, "x")
	if strings.Join(calls, ",") != "global" {
		t.Fatalf("expected only the global binding outside entries, got %v", calls)
	}

	if _, _, handled := r.Handle(m, "y"); handled {
		t.Fatalf("expected unbound key to fall through")
	}
}

func TestDefaultRegistryHelp(t *testing.T) {
	r := defaultRegistry()
	tests := []struct {
		focus   section
		want    []string
		notWant []string
	}{
		{sectionEntries, []string{"[a] add row", "[d] delete row", "[enter] edit", "[ctrl+s] save"}, []string{"toggle"}},
		{sectionChecklist, []string{"[space] toggle"}, []string{"add row", "[ ] toggle"}},
		{sectionProject, []string{"[left] change"}, []string{"[right] change"}},
		{sectionNotes, []string{"[ctrl+p] export pdf"}, []string{"edit"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.focus.String(), func(t *testing.T) {
			help := r.HelpFor(tc.focus)
			for _, w := range tc.want {
				if !strings.Contains(help, w) {
					t.Fatalf("expected %q in %q", w, help)
				}
			}
			for _, w := range tc.notWant {
				if strings.Contains(help, w) {
					t.Fatalf("did not expect %q in %q", w, help)
				}
			}
		})
	}
}
