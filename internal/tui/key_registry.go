package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler applies one key binding. handled=false lets the key fall
// through to the focused widget.
type KeyHandler func(m MainModel, key string) (MainModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Sections    []section
	Priority    int
}

func (b KeyBinding) AppliesTo(s section) bool {
	if len(b.Sections) == 0 {
		return true
	}
	for _, v := range b.Sections {
		if v == s {
			return true
		}
	}
	return false
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

func (r *HandlerRegistry) Handle(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(m.focus) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(s section) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(s) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpFor(s section) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(s) {
		if b.Description == "" || seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		parts = append(parts, "["+b.Key+"] "+b.Description)
	}
	return strings.Join(parts, "  ")
}

// defaultRegistry binds the form keys. Section-specific bindings outrank
// the global ones.
func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()

	r.Register(KeyBinding{Key: "ctrl+s", Description: "save", Handler: handleOpenSave})
	r.Register(KeyBinding{Key: "ctrl+o", Description: "load", Handler: handleOpenLoad})
	r.Register(KeyBinding{Key: "ctrl+x", Description: "export xlsx", Handler: handleExportSpreadsheet})
	r.Register(KeyBinding{Key: "ctrl+p", Description: "export pdf", Handler: handleExportPDF})
	r.Register(KeyBinding{Key: "ctrl+l", Description: "lock", Handler: handleLock})
	r.Register(KeyBinding{Key: "tab", Description: "next section", Handler: handleNextSection})
	r.Register(KeyBinding{Key: "shift+tab", Handler: handlePrevSection})

	fields := []section{sectionProject, sectionEntries, sectionChecklist, sectionSignOff}
	for _, k := range []string{"up", "k"} {
		r.Register(KeyBinding{Key: k, Sections: fields, Priority: 1, Handler: handleCursorUp})
	}
	for _, k := range []string{"down", "j"} {
		r.Register(KeyBinding{Key: k, Sections: fields, Priority: 1, Handler: handleCursorDown})
	}
	r.Register(KeyBinding{Key: "left", Description: "change", Sections: []section{sectionProject}, Priority: 1, Handler: handleCycleOption})
	r.Register(KeyBinding{Key: "right", Description: "change", Sections: []section{sectionProject}, Priority: 1, Handler: handleCycleOption})
	r.Register(KeyBinding{Key: "a", Description: "add row", Sections: []section{sectionEntries}, Priority: 1, Handler: handleAddRow})
	r.Register(KeyBinding{Key: "d", Description: "delete row", Sections: []section{sectionEntries}, Priority: 1, Handler: handleDeleteRow})
	r.Register(KeyBinding{Key: "enter", Description: "edit", Sections: []section{sectionEntries, sectionSignOff}, Priority: 1, Handler: handleEdit})
	for _, k := range []string{"space", " "} {
		r.Register(KeyBinding{Key: k, Description: "toggle", Sections: []section{sectionChecklist}, Priority: 1, Handler: handleToggle})
	}
	return r
}
