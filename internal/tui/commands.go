package tui

import (
	"time"

	"github.com/akyairhashvil/sitediary/internal/models"
	"github.com/akyairhashvil/sitediary/internal/report"
	tea "github.com/charmbracelet/bubbletea"
)

const lockCheckInterval = 30 * time.Second

type savedMsg struct {
	name string
	path string
	err  error
}

type listedMsg struct {
	names []string
	err   error
}

type loadedMsg struct {
	name   string
	report models.Report
	err    error
}

type exportedMsg struct {
	format report.Format
	path   string
	err    error
}

type lockTickMsg time.Time

func saveCmd(store Store, doc models.Report, verifier string) tea.Cmd {
	return func() tea.Msg {
		name, err := store.Save(doc, verifier)
		if err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{name: name, path: store.Path(name)}
	}
}

func listCmd(store Store) tea.Cmd {
	return func() tea.Msg {
		names, err := store.List()
		return listedMsg{names: names, err: err}
	}
}

func loadCmd(store Store, name string) tea.Cmd {
	return func() tea.Msg {
		r, err := store.Load(name)
		return loadedMsg{name: name, report: r, err: err}
	}
}

func exportCmd(dir string, format report.Format, doc models.Report, now time.Time) tea.Cmd {
	return func() tea.Msg {
		path, err := report.ExportFile(dir, format, doc, now)
		return exportedMsg{format: format, path: path, err: err}
	}
}

func lockTick() tea.Cmd {
	return tea.Tick(lockCheckInterval, func(t time.Time) tea.Msg {
		return lockTickMsg(t)
	})
}
