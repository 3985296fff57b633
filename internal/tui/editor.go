package tui

import (
	"strings"

	"github.com/akyairhashvil/sitediary/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// editorField is one labelled input of an edit dialog. Choice fields cycle
// through their options with left/right instead of taking text.
type editorField struct {
	label   string
	input   textinput.Model
	choices []string
	choice  int
}

func newTextField(label, value, placeholder string, limit int) editorField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 50
	ti.SetValue(value)
	return editorField{label: label, input: ti}
}

func newChoiceField(label string, choices []string, current string) editorField {
	f := editorField{label: label, choices: choices}
	for i, c := range choices {
		if c == current {
			f.choice = i
		}
	}
	return f
}

func (f editorField) Value() string {
	if f.choices != nil {
		return f.choices[f.choice]
	}
	return f.input.Value()
}

// commitFunc applies the dialog values. A non-nil error keeps the dialog open
// with the message shown and nothing applied.
type commitFunc func(values []string) (tea.Cmd, error)

type editor struct {
	title  string
	fields []editorField
	focus  int
	err    string
	commit commitFunc
}

func newEditor(title string, fields []editorField, commit commitFunc) *editor {
	e := &editor{title: title, fields: fields, commit: commit}
	e.setFocus(0)
	return e
}

func (e *editor) setFocus(i int) {
	for j := range e.fields {
		e.fields[j].input.Blur()
	}
	e.focus = util.Clamp(i, 0, len(e.fields)-1)
	if e.fields[e.focus].choices == nil {
		e.fields[e.focus].input.Focus()
	}
}

func (e *editor) values() []string {
	out := make([]string, len(e.fields))
	for i, f := range e.fields {
		out[i] = f.Value()
	}
	return out
}

// update handles one key. done reports that the dialog should close.
func (e *editor) update(msg tea.KeyMsg) (tea.Cmd, bool) {
	field := &e.fields[e.focus]
	switch msg.String() {
	case "esc":
		return nil, true
	case "tab", "down":
		e.setFocus(util.Cycle(e.focus, 1, len(e.fields)))
		return nil, false
	case "shift+tab", "up":
		e.setFocus(util.Cycle(e.focus, -1, len(e.fields)))
		return nil, false
	case "enter":
		cmd, err := e.commit(e.values())
		if err != nil {
			e.err = err.Error()
			return nil, false
		}
		return cmd, true
	case "left", "right":
		if field.choices != nil {
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			field.choice = util.Cycle(field.choice, delta, len(field.choices))
			return nil, false
		}
	}
	if field.choices != nil {
		return nil, false
	}
	var cmd tea.Cmd
	field.input, cmd = field.input.Update(msg)
	e.err = ""
	return cmd, false
}

func (e *editor) view(theme Theme) string {
	var b strings.Builder
	b.WriteString(theme.Section.Render(e.title))
	b.WriteString("\n\n")
	for i, f := range e.fields {
		label := theme.Label.Render(f.label)
		if i == e.focus {
			label = theme.Focused.Width(18).Render(f.label)
		}
		var value string
		if f.choices == nil {
			value = f.input.View()
		} else {
			value = "< " + f.Value() + " >"
			if i == e.focus {
				value = theme.Focused.Render(value)
			}
		}
		b.WriteString(label + " " + value + "\n")
	}
	if e.err != "" {
		b.WriteString("\n" + theme.Error.Render(e.err) + "\n")
	}
	b.WriteString("\n" + theme.Dim.Render("[enter] apply  [esc] cancel  [tab] next field  [←/→] change option"))
	return theme.Input.UnsetWidth().Render(b.String())
}
