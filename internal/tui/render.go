package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/sitediary/internal/config"
	"github.com/akyairhashvil/sitediary/internal/models"
	"github.com/charmbracelet/lipgloss"
)

func (m MainModel) View() string {
	if m.lock.Locked {
		return m.renderLock()
	}
	var parts []string
	parts = append(parts, m.renderTitle())
	switch {
	case m.editor != nil:
		parts = append(parts, m.editor.view(m.theme))
	case m.picker != nil:
		parts = append(parts, m.renderPicker())
	default:
		parts = append(parts,
			m.renderProject(),
			m.renderEntries(),
			m.renderChecklist(),
			m.renderNotes(),
			m.renderSignOff(),
		)
	}
	parts = append(parts, m.renderFooter())
	return m.theme.Base.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m MainModel) renderLock() string {
	lines := []string{
		m.theme.Title.Render(config.ReportTitle),
		"",
		"Enter the password to open the log.",
		"",
		m.lock.SecretInput.View(),
	}
	if m.lock.Message != "" {
		lines = append(lines, "", m.theme.Error.Render(m.lock.Message))
	}
	lines = append(lines, "", m.theme.Dim.Render("[enter] unlock  [ctrl+c] quit"))
	return m.theme.Base.Render(strings.Join(lines, "\n"))
}

func (m MainModel) renderTitle() string {
	title := config.ReportTitle
	if scheme := m.state.ProjectInfo().Scheme; scheme != "" {
		title = scheme + "  |  " + title
	}
	return m.theme.Title.Render(title) + "\n"
}

func (m MainModel) sectionHeader(s section) string {
	if m.focus == s {
		return m.theme.Focused.Render("▸ " + s.String())
	}
	return m.theme.Section.Render("  " + s.String())
}

func (m MainModel) marker(s section, row int) string {
	if m.focus == s && m.cursor[s] == row {
		return m.theme.Focused.Render("> ")
	}
	return "  "
}

func (m MainModel) renderProject() string {
	info := m.state.ProjectInfo()
	dropdown := func(row int, value string) string {
		v := "< " + value + " >"
		if m.focus == sectionProject && m.cursor[sectionProject] == row {
			return m.theme.Focused.Render(v)
		}
		return v
	}
	lines := []string{
		m.sectionHeader(sectionProject),
		m.marker(sectionProject, projectRowNumber) + m.theme.Label.Render("Project No") + dropdown(projectRowNumber, info.ProjectNo),
		"  " + m.theme.Label.Render("Scheme") + m.theme.ReadOnly.Render(info.Scheme),
		m.marker(sectionProject, projectRowPackage) + m.theme.Label.Render("GI Package") + dropdown(projectRowPackage, info.GIPackage),
		"  " + m.theme.Label.Render("Subcontractor") + m.theme.ReadOnly.Render(info.Subcontractor),
		m.marker(sectionProject, projectRowLayout) + m.theme.Label.Render("Layout") + dropdown(projectRowLayout, string(m.state.Layout)),
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m MainModel) renderEntries() string {
	lines := []string{m.sectionHeader(sectionEntries)}
	if m.state.Layout == models.LayoutDaily {
		d := m.state.Daily()
		values := d.Values()
		for i, col := range models.EntryColumns {
			lines = append(lines, "  "+m.theme.Label.Render(col)+cellText(values[i], 80))
		}
		extra := [][2]string{
			{"Weather", d.Weather},
			{"Plant/Equipment", d.Equipment},
			{"Personnel", d.Personnel},
			{"Working Hours", d.Hours},
		}
		for _, f := range extra {
			lines = append(lines, "  "+m.theme.Label.Render(f[0])+cellText(f[1], 80))
		}
		return strings.Join(lines, "\n") + "\n"
	}
	if m.state.Entries().Len() == 0 {
		lines = append(lines, m.theme.Dim.Render("  No entries. Press a to add one."))
		return strings.Join(lines, "\n") + "\n"
	}
	lines = append(lines, m.table.View())
	return strings.Join(lines, "\n") + "\n"
}

func (m MainModel) renderChecklist() string {
	lines := []string{m.sectionHeader(sectionChecklist)}
	for i, item := range m.state.Checklist() {
		box := "[ ]"
		if item.Checked {
			box = m.theme.Checked.Render("[X]")
		}
		lines = append(lines, m.marker(sectionChecklist, i)+box+" "+item.Question)
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m MainModel) renderNotes() string {
	return m.sectionHeader(sectionNotes) + "\n" + m.notes.View() + "\n"
}

func (m MainModel) renderSignOff() string {
	lines := []string{m.sectionHeader(sectionSignOff)}
	for i, sig := range m.state.SignOff() {
		name := sig.Name
		if name == "" {
			name = m.theme.Dim.Render(config.PlaceholderName)
		}
		date := models.DisplayPtr(sig.Date)
		if date == "" {
			date = "N/A"
		}
		lines = append(lines, m.marker(sectionSignOff, i)+m.theme.Label.Render(sig.Role)+fmt.Sprintf("%s  (Date: %s)", name, date))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m MainModel) renderPicker() string {
	lines := []string{m.theme.Section.Render("Load saved report"), ""}
	for i, name := range m.picker.names {
		if i == m.picker.cursor {
			lines = append(lines, m.theme.Focused.Render("> "+name))
		} else {
			lines = append(lines, "  "+name)
		}
	}
	lines = append(lines, "", m.theme.Dim.Render("[enter] load  [esc] cancel"))
	return m.theme.Input.UnsetWidth().Render(strings.Join(lines, "\n"))
}

func (m MainModel) renderFooter() string {
	var b strings.Builder
	if m.status != "" {
		if m.statusErr {
			b.WriteString(m.theme.Error.Render(m.status))
		} else {
			b.WriteString(m.theme.Success.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Dim.Render(m.keys.HelpFor(m.focus) + "  [ctrl+c] quit  |  v" + VersionLabel()))
	return b.String()
}
