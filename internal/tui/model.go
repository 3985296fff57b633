package tui

import (
	"time"

	"github.com/akyairhashvil/sitediary/internal/config"
	"github.com/akyairhashvil/sitediary/internal/diary"
	"github.com/akyairhashvil/sitediary/internal/models"
	"github.com/akyairhashvil/sitediary/internal/util"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// section is one focusable block of the form.
type section int

const (
	sectionProject section = iota
	sectionEntries
	sectionChecklist
	sectionNotes
	sectionSignOff
	sectionCount
)

func (s section) String() string {
	switch s {
	case sectionProject:
		return "Project Information"
	case sectionEntries:
		return "Verification Entries"
	case sectionChecklist:
		return "Verification Checklist"
	case sectionNotes:
		return "Overall Verification Notes"
	case sectionSignOff:
		return "Verification Sign-off"
	}
	return ""
}

// Project section rows that take input; the derived names sit between them.
const (
	projectRowNumber = iota
	projectRowPackage
	projectRowLayout
	projectRowCount
)

// Options wires the model to its collaborators.
type Options struct {
	State      *diary.State
	Store      Store
	Logger     *zap.Logger
	ReportsDir string
	SecretHash string
	Theme      string
	Now        func() time.Time
}

// MainModel is the root bubbletea model: a lock screen in front of the
// diary form. The update loop is the only writer of the session state.
type MainModel struct {
	state      *diary.State
	store      Store
	logger     *zap.Logger
	reportsDir string
	now        func() time.Time
	keys       *HandlerRegistry
	theme      Theme
	lock       LockModel

	focus  section
	cursor [sectionCount]int
	table  table.Model
	notes  textarea.Model
	editor *editor
	picker *loadPicker

	status    string
	statusErr bool
	width     int
	height    int
}

func NewMainModel(opts Options) MainModel {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	state := opts.State
	if state == nil {
		state = diary.NewState("", now)
	}

	notes := textarea.New()
	notes.Placeholder = "Overall verification notes"
	notes.CharLimit = config.MaxTextLength
	notes.SetWidth(80)
	notes.SetHeight(4)
	notes.SetValue(state.Notes)

	tbl := table.New(table.WithHeight(config.TableHeight))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	tbl.SetStyles(styles)

	m := MainModel{
		state:      state,
		store:      opts.Store,
		logger:     logger,
		reportsDir: opts.ReportsDir,
		now:        now,
		keys:       defaultRegistry(),
		theme:      ThemeNamed(opts.Theme),
		lock:       NewLockModel(config.AutoLockAfter, opts.SecretHash, now()),
		table:      tbl,
		notes:      notes,
	}
	m.syncTable()
	return m
}

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, lockTick())
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.notes.SetWidth(util.Clamp(msg.Width-8, 20, 120))
		m.syncTable()
		return m, nil
	case lockTickMsg:
		if !m.lock.Locked && m.lock.Idle(m.now()) {
			m.editor, m.picker = nil, nil
			m.lock.Lock("Locked after inactivity")
			m.logger.Info("session locked", zap.Duration("idle", m.lock.AutoLockAfter))
		}
		return m, lockTick()
	case savedMsg:
		return m.handleSaved(msg), nil
	case listedMsg:
		return m.handleListed(msg), nil
	case loadedMsg:
		return m.handleLoaded(msg), nil
	case exportedMsg:
		return m.handleExported(msg), nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.lock.Locked {
			return m.updateLocked(msg)
		}
		m.lock.LastInput = m.now()
		return m.updateForm(msg)
	}

	var cmd tea.Cmd
	if m.lock.Locked {
		m.lock.SecretInput, cmd = m.lock.SecretInput.Update(msg)
	} else if m.focus == sectionNotes && m.editor == nil {
		m.notes, cmd = m.notes.Update(msg)
	}
	return m, cmd
}

func (m MainModel) updateLocked(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyEnter {
		var cmd tea.Cmd
		m.lock.SecretInput, cmd = m.lock.SecretInput.Update(msg)
		return m, cmd
	}
	result := newAuthHandler(m.lock.SecretHash).Validate(m.lock.SecretInput.Value())
	if !result.Success {
		m.lock.Message = result.Message
		m.lock.SecretInput.Reset()
		m.lock.SecretInput.Focus()
		m.logger.Warn("unlock failed", zap.String("reason", result.Message))
		if !result.ShouldRetry {
			return m, tea.Quit
		}
		return m, nil
	}
	m.lock.Locked = false
	m.lock.Message = ""
	m.lock.SecretInput.Reset()
	m.lock.LastInput = m.now()
	m.logger.Info("session unlocked")
	return m, nil
}

func (m MainModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editor != nil {
		cmd, done := m.editor.update(msg)
		if done {
			m.editor = nil
			m.syncTable()
		}
		return m, cmd
	}
	if m.picker != nil {
		return m.updatePicker(msg)
	}

	next, cmd, handled := m.keys.Handle(m, msg.String())
	if handled {
		return next, cmd
	}
	if m.focus == sectionNotes {
		m.notes, cmd = m.notes.Update(msg)
		m.state.Notes = m.notes.Value()
		return m, cmd
	}
	return m, nil
}

func (m MainModel) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.picker = nil
	case "up", "k":
		m.picker.cursor = util.Clamp(m.picker.cursor-1, 0, len(m.picker.names)-1)
	case "down", "j":
		m.picker.cursor = util.Clamp(m.picker.cursor+1, 0, len(m.picker.names)-1)
	case "enter":
		name := m.picker.selected()
		m.picker = nil
		if name == "" {
			return m, nil
		}
		m.setStatus("Loading "+name+"...", false)
		return m, loadCmd(m.store, name)
	}
	return m, nil
}

func (m *MainModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *MainModel) setFocus(s section) {
	m.focus = s
	if s == sectionNotes {
		m.notes.Focus()
	} else {
		m.notes.Blur()
	}
	if s == sectionEntries {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
}

// cursorLimit is the number of selectable rows in a section.
func (m MainModel) cursorLimit(s section) int {
	switch s {
	case sectionProject:
		return projectRowCount
	case sectionEntries:
		if m.state.Layout == models.LayoutDaily {
			return 1
		}
		return m.state.Entries().Len()
	case sectionChecklist:
		return len(m.state.Checklist())
	case sectionSignOff:
		return len(m.state.SignOff())
	}
	return 0
}
