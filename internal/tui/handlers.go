package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/sitediary/internal/config"
	"github.com/akyairhashvil/sitediary/internal/models"
	"github.com/akyairhashvil/sitediary/internal/persist"
	"github.com/akyairhashvil/sitediary/internal/report"
	"github.com/akyairhashvil/sitediary/internal/util"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
)

func handleNextSection(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.setFocus(section(util.Cycle(int(m.focus), 1, int(sectionCount))))
	return m, nil, true
}

func handlePrevSection(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.setFocus(section(util.Cycle(int(m.focus), -1, int(sectionCount))))
	return m, nil, true
}

func handleCursorUp(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.moveCursor(-1)
	return m, nil, true
}

func handleCursorDown(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.moveCursor(1)
	return m, nil, true
}

func (m *MainModel) moveCursor(delta int) {
	limit := m.cursorLimit(m.focus)
	if limit == 0 {
		m.cursor[m.focus] = 0
		return
	}
	m.cursor[m.focus] = util.Clamp(m.cursor[m.focus]+delta, 0, limit-1)
	if m.focus == sectionEntries {
		m.table.SetCursor(m.cursor[sectionEntries])
	}
}

func indexOf(list []string, v string) int {
	for i, item := range list {
		if item == v {
			return i
		}
	}
	return 0
}

// handleCycleOption steps the focused dropdown. The derived names follow on
// the next render.
func handleCycleOption(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	delta := 1
	if key == "left" {
		delta = -1
	}
	var err error
	switch m.cursor[sectionProject] {
	case projectRowNumber:
		opts := config.ProjectNumbers
		err = m.state.SetProjectNo(opts[util.Cycle(indexOf(opts, m.state.ProjectNo()), delta, len(opts))])
	case projectRowPackage:
		opts := config.GIPackages
		err = m.state.SetGIPackage(opts[util.Cycle(indexOf(opts, m.state.GIPackage()), delta, len(opts))])
	case projectRowLayout:
		if m.state.Layout == models.LayoutDaily {
			m.state.Layout = models.LayoutTable
		} else {
			m.state.Layout = models.LayoutDaily
		}
		m.syncTable()
	}
	if err != nil {
		m.setStatus(err.Error(), true)
	}
	return m, nil, true
}

func handleAddRow(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.state.Layout == models.LayoutDaily {
		m.setStatus("The daily layout has a single entry", true)
		return m, nil, true
	}
	pos := m.state.Entries().AppendBlank()
	m.cursor[sectionEntries] = pos
	m.syncTable()
	m.setStatus(fmt.Sprintf("Entry %d added", pos+1), false)
	return m, nil, true
}

func handleDeleteRow(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if m.state.Layout == models.LayoutDaily {
		m.setStatus("The daily layout has a single entry", true)
		return m, nil, true
	}
	pos := m.cursor[sectionEntries]
	if err := m.state.Entries().Delete(pos); err != nil {
		m.setStatus("No entry to delete", true)
		return m, nil, true
	}
	m.syncTable()
	m.setStatus(fmt.Sprintf("Entry %d deleted", pos+1), false)
	return m, nil, true
}

func handleEdit(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	switch m.focus {
	case sectionEntries:
		if m.state.Layout == models.LayoutDaily {
			m.editor = dailyEditor(m.state)
			return m, nil, true
		}
		ed, err := rowEditor(m.state, m.cursor[sectionEntries])
		if err != nil {
			m.setStatus("No entries yet; press a to add one", true)
			return m, nil, true
		}
		m.editor = ed
	case sectionSignOff:
		ed, err := signOffEditor(m.state, m.cursor[sectionSignOff])
		if err != nil {
			m.setStatus(err.Error(), true)
			return m, nil, true
		}
		m.editor = ed
	default:
		return m, nil, false
	}
	return m, nil, true
}

func handleToggle(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if err := m.state.ToggleChecked(m.cursor[sectionChecklist]); err != nil {
		m.setStatus(err.Error(), true)
	}
	return m, nil, true
}

func handleOpenSave(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.editor = saveEditor(m.state, m.store)
	return m, nil, true
}

func handleOpenLoad(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m, listCmd(m.store), true
}

func handleExportSpreadsheet(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m.startExport(report.FormatSpreadsheet)
}

func handleExportPDF(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m.startExport(report.FormatPDF)
}

func (m MainModel) startExport(format report.Format) (MainModel, tea.Cmd, bool) {
	m.setStatus("Exporting "+strings.ToUpper(string(format))+"...", false)
	return m, exportCmd(m.reportsDir, format, m.state.Snapshot(), m.now()), true
}

func handleLock(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.lock.Lock("")
	return m, nil, true
}

func (m MainModel) handleSaved(msg savedMsg) MainModel {
	if msg.err != nil {
		util.LogError(m.logger, "save report", msg.err)
		if errors.Is(msg.err, persist.ErrInvalidName) {
			m.setStatus("Please enter your name before saving", true)
		} else {
			m.setStatus("Save failed: "+msg.err.Error(), true)
		}
		return m
	}
	m.logger.Info("report saved", zap.String("path", msg.path))
	m.setStatus("Saved "+msg.path, false)
	return m
}

func (m MainModel) handleListed(msg listedMsg) MainModel {
	if msg.err != nil {
		util.LogError(m.logger, "list saved reports", msg.err)
		m.setStatus("Could not list saved reports: "+msg.err.Error(), true)
		return m
	}
	if len(msg.names) == 0 {
		m.setStatus("No saved reports found", true)
		return m
	}
	m.picker = &loadPicker{names: msg.names}
	return m
}

// handleLoaded replaces the session state. A refused file leaves the form as
// it was.
func (m MainModel) handleLoaded(msg loadedMsg) MainModel {
	if msg.err == nil {
		msg.err = m.state.Apply(msg.report)
	}
	if msg.err != nil {
		util.LogError(m.logger, "load report", msg.err)
		m.setStatus("Load failed: "+msg.err.Error(), true)
		return m
	}
	m.editor, m.picker = nil, nil
	m.notes.SetValue(m.state.Notes)
	m.cursor = [sectionCount]int{}
	m.syncTable()
	m.logger.Info("session replaced", zap.String("file", msg.name))
	m.setStatus("Loaded "+msg.name, false)
	return m
}

func (m MainModel) handleExported(msg exportedMsg) MainModel {
	if msg.err != nil {
		util.LogError(m.logger, "export "+string(msg.format), msg.err)
		m.setStatus("Export failed: "+msg.err.Error(), true)
		return m
	}
	m.logger.Info("report exported", zap.String("format", string(msg.format)), zap.String("path", msg.path))
	m.setStatus("Exported "+filepath.Base(msg.path)+" to "+filepath.Dir(msg.path), false)
	return m
}

// visibleColumns returns the entry columns shown at the current width.
// Narrow terminals keep the identifying columns and the status.
func (m MainModel) visibleColumns() []int {
	if m.width > 0 && m.width < config.CompactModeThreshold {
		return []int{0, 1, 2, 4}
	}
	return []int{0, 1, 2, 3, 4, 5, 6, 7}
}

func columnWeight(i int) int {
	switch i {
	case 3:
		return 3
	case 7:
		return 2
	}
	return 1
}

func cellText(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return ansi.Truncate(s, width, config.TruncationSuffix)
}

// syncTable rebuilds the entries widget from the session state.
func (m *MainModel) syncTable() {
	idx := m.visibleColumns()
	avail := m.width - 8
	if m.width == 0 {
		avail = 140
	}
	total := 0
	for _, i := range idx {
		total += columnWeight(i)
	}
	cols := make([]table.Column, len(idx))
	for j, i := range idx {
		w := avail * columnWeight(i) / total
		if w < config.MinColumnWidth {
			w = config.MinColumnWidth
		}
		cols[j] = table.Column{Title: models.EntryColumns[i], Width: w}
	}

	entries := m.state.Entries().Rows()
	rows := make([]table.Row, len(entries))
	for r, e := range entries {
		values := e.Values()
		row := make(table.Row, len(idx))
		for j, i := range idx {
			row[j] = cellText(values[i], cols[j].Width)
		}
		rows[r] = row
	}

	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	last := m.cursorLimit(sectionEntries) - 1
	if last < 0 {
		last = 0
	}
	m.cursor[sectionEntries] = util.Clamp(m.cursor[sectionEntries], 0, last)
	m.table.SetCursor(m.cursor[sectionEntries])
}
