package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/sitediary/internal/config"
	"github.com/akyairhashvil/sitediary/internal/diary"
	"github.com/akyairhashvil/sitediary/internal/models"
	"github.com/akyairhashvil/sitediary/internal/persist"
	"github.com/akyairhashvil/sitediary/internal/testutil"
	"github.com/akyairhashvil/sitediary/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"
)

const testSecret = "site-secret"

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func newTestModel(t *testing.T, store Store) (MainModel, *fakeClock) {
	t.Helper()
	hash, err := util.HashSecret(testSecret)
	if err != nil {
		t.Fatalf("HashSecret failed: %v", err)
	}
	clock := &fakeClock{t: testutil.FixedNow()}
	m := NewMainModel(Options{
		State:      diary.NewState(models.LayoutTable, clock.Now),
		Store:      store,
		SecretHash: hash,
		ReportsDir: t.TempDir(),
		Now:        clock.Now,
	})
	return m, clock
}

func unlocked(t *testing.T, store Store) (MainModel, *fakeClock) {
	t.Helper()
	m, clock := newTestModel(t, store)
	m.lock.Locked = false
	return m, clock
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+o":
		return tea.KeyMsg{Type: tea.KeyCtrlO}
	case "ctrl+x":
		return tea.KeyMsg{Type: tea.KeyCtrlX}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func press(t *testing.T, m MainModel, keys ...string) (MainModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(MainModel)
	}
	return m, cmd
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m MainModel, cmd tea.Cmd) MainModel {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	next, _ := m.Update(cmd())
	return next.(MainModel)
}

func TestNewMainModelStartsLocked(t *testing.T) {
	m, _ := newTestModel(t, nil)
	if !m.lock.Locked {
		t.Fatalf("expected model to start locked")
	}
	if view := m.View(); !strings.Contains(view, config.ReportTitle) {
		t.Fatalf("expected lock view to show the title, got %q", view)
	}
	if m.Init() == nil {
		t.Fatalf("expected init command")
	}
}

func TestUnlock(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m.lock.SecretInput.SetValue("wrong")
	m, cmd := press(t, m, "enter")
	if !m.lock.Locked {
		t.Fatalf("expected wrong secret to keep the form locked")
	}
	if m.lock.Message != "Password incorrect" {
		t.Fatalf("unexpected lock message %q", m.lock.Message)
	}
	if cmd != nil {
		t.Fatalf("expected no command after a retryable failure")
	}
	if m.lock.SecretInput.Value() != "" {
		t.Fatalf("expected secret input to be cleared")
	}

	m.lock.SecretInput.SetValue(testSecret)
	m, _ = press(t, m, "enter")
	if m.lock.Locked {
		t.Fatalf("expected correct secret to unlock")
	}
	if !strings.Contains(m.View(), sectionProject.String()) {
		t.Fatalf("expected form view after unlock")
	}
}

func TestLockedIgnoresFormKeys(t *testing.T) {
	m, _ := newTestModel(t, nil)
	before := m.state.Entries().Len()
	m, _ = press(t, m, "tab", "a")
	if m.state.Entries().Len() != before {
		t.Fatalf("expected form keys to be ignored while locked")
	}
}

func TestAutoLockAfterInactivity(t *testing.T) {
	m, clock := unlocked(t, nil)
	m.lock.LastInput = clock.Now()

	clock.t = clock.t.Add(config.AutoLockAfter - time.Second)
	next, cmd := m.Update(lockTickMsg(clock.t))
	m = next.(MainModel)
	if m.lock.Locked {
		t.Fatalf("expected form to stay open before the idle period")
	}
	if cmd == nil {
		t.Fatalf("expected lock tick to be rescheduled")
	}

	clock.t = clock.t.Add(2 * time.Second)
	next, _ = m.Update(lockTickMsg(clock.t))
	m = next.(MainModel)
	if !m.lock.Locked {
		t.Fatalf("expected auto lock after inactivity")
	}
}

func TestManualLock(t *testing.T) {
	m, _ := unlocked(t, nil)
	m, _ = press(t, m, "ctrl+l")
	if !m.lock.Locked {
		t.Fatalf("expected ctrl+l to lock")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t, nil)
	_, cmd := press(t, m, "ctrl+c")
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestSectionNavigation(t *testing.T) {
	m, _ := unlocked(t, nil)
	m, _ = press(t, m, "tab", "tab")
	if m.focus != sectionChecklist {
		t.Fatalf("expected checklist focus, got %v", m.focus)
	}
	m, _ = press(t, m, "shift+tab", "shift+tab", "shift+tab")
	if m.focus != sectionSignOff {
		t.Fatalf("expected focus to wrap to sign-off, got %v", m.focus)
	}
}

func TestAddAndDeleteRows(t *testing.T) {
	m, clock := unlocked(t, nil)
	m, _ = press(t, m, "tab", "a")
	if got := m.state.Entries().Len(); got != 2 {
		t.Fatalf("expected 2 rows, got %d", got)
	}
	row, err := m.state.Entries().Row(1)
	if err != nil {
		t.Fatalf("Row failed: %v", err)
	}
	if row.Date != models.DateOf(clock.Now()) || row.Status != models.StatusPending {
		t.Fatalf("unexpected blank row %+v", row)
	}
	if m.cursor[sectionEntries] != 1 {
		t.Fatalf("expected cursor on the new row, got %d", m.cursor[sectionEntries])
	}

	m, _ = press(t, m, "up", "d")
	if got := m.state.Entries().Len(); got != 1 {
		t.Fatalf("expected 1 row after delete, got %d", got)
	}
	row, _ = m.state.Entries().Row(0)
	if row.Status != models.StatusPending {
		t.Fatalf("expected the example row to be deleted, got %+v", row)
	}

	m, _ = press(t, m, "d", "d")
	if m.state.Entries().Len() != 0 {
		t.Fatalf("expected empty table")
	}
	if !m.statusErr {
		t.Fatalf("expected error status when deleting from an empty table")
	}
	if !strings.Contains(m.View(), "No entries") {
		t.Fatalf("expected empty table hint in view")
	}
}

func TestEditRowRejectsMissingDate(t *testing.T) {
	m, _ := unlocked(t, nil)
	before, _ := m.state.Entries().Row(0)

	m, _ = press(t, m, "tab", "enter")
	if m.editor == nil {
		t.Fatalf("expected row editor to open")
	}
	m.editor.fields[0].input.SetValue("")
	m, _ = press(t, m, "enter")
	if m.editor == nil {
		t.Fatalf("expected editor to stay open on a rejected row")
	}
	if m.editor.err == "" {
		t.Fatalf("expected editor error message")
	}
	after, _ := m.state.Entries().Row(0)
	if after != before {
		t.Fatalf("expected row unchanged, got %+v", after)
	}

	m, _ = press(t, m, "esc")
	if m.editor != nil {
		t.Fatalf("expected esc to close the editor")
	}
}

func TestEditRowCommits(t *testing.T) {
	m, _ := unlocked(t, nil)
	m, _ = press(t, m, "tab", "enter")
	m.editor.fields[1].input.SetValue("JD")
	m.editor.fields[6].input.SetValue("21.08.2025")
	m, _ = press(t, m, "enter")
	if m.editor != nil {
		t.Fatalf("expected editor to close, err=%q", m.editor.err)
	}
	row, _ := m.state.Entries().Row(0)
	if row.Engineer != "JD" {
		t.Fatalf("expected engineer JD, got %q", row.Engineer)
	}
	if models.DisplayPtr(row.VerificationDate) != "21.08.2025" {
		t.Fatalf("unexpected verification date %v", row.VerificationDate)
	}
}

func TestEditRowStatusChoice(t *testing.T) {
	m, _ := unlocked(t, nil)
	m, _ = press(t, m, "tab", "enter")
	for i := 0; i < 4; i++ {
		m, _ = press(t, m, "tab")
	}
	if m.editor.fields[m.editor.focus].label != models.ColStatus {
		t.Fatalf("expected status field focus, got %q", m.editor.fields[m.editor.focus].label)
	}
	m, _ = press(t, m, "right", "enter")
	row, _ := m.state.Entries().Row(0)
	if row.Status != models.StatusIssuesFound {
		t.Fatalf("expected ISSUES FOUND, got %q", row.Status)
	}
}

func TestChecklistToggle(t *testing.T) {
	m, _ := unlocked(t, nil)
	m, _ = press(t, m, "tab", "tab", "down", " ")
	items := m.state.Checklist()
	if items[0].Checked || !items[1].Checked {
		t.Fatalf("expected only item 1 checked, got %+v", items[:2])
	}
	m, _ = press(t, m, " ")
	if m.state.Checklist()[1].Checked {
		t.Fatalf("expected second toggle to uncheck")
	}
}

func TestProjectDropdownUpdatesDerivedNames(t *testing.T) {
	m, _ := unlocked(t, nil)
	m, _ = press(t, m, "right")
	info := m.state.ProjectInfo()
	if info.ProjectNo != "LT359" || info.Scheme != config.Scheme("LT359") {
		t.Fatalf("unexpected project info %+v", info)
	}
	if !strings.Contains(m.View(), info.Scheme) {
		t.Fatalf("expected scheme in view")
	}

	m, _ = press(t, m, "down", "left")
	info = m.state.ProjectInfo()
	if info.GIPackage != "Package 5" || info.Subcontractor != config.Subcontractor("Package 5") {
		t.Fatalf("unexpected package info %+v", info)
	}
}

func TestLayoutToggle(t *testing.T) {
	m, _ := unlocked(t, nil)
	m, _ = press(t, m, "down", "down", "right")
	if m.state.Layout != models.LayoutDaily {
		t.Fatalf("expected daily layout, got %q", m.state.Layout)
	}
	m, _ = press(t, m, "tab", "a")
	if !m.statusErr {
		t.Fatalf("expected add row to be refused in the daily layout")
	}
	m, _ = press(t, m, "enter")
	if m.editor == nil || len(m.editor.fields) != len(entryFields)+4 {
		t.Fatalf("expected daily editor")
	}
	m.editor.fields[len(entryFields)].input.SetValue("Overcast")
	m, _ = press(t, m, "enter")
	if got := m.state.Daily().Weather; got != "Overcast" {
		t.Fatalf("expected weather saved, got %q", got)
	}
}

func TestNotesTyping(t *testing.T) {
	m, _ := unlocked(t, nil)
	m, _ = press(t, m, "tab", "tab", "tab", "o", "k")
	if m.state.Notes != "ok" {
		t.Fatalf("expected notes %q, got %q", "ok", m.state.Notes)
	}
}

func TestSignOffEdit(t *testing.T) {
	m, _ := unlocked(t, nil)
	m, _ = press(t, m, "shift+tab", "enter")
	if m.editor == nil {
		t.Fatalf("expected sign-off editor")
	}
	m.editor.fields[0].input.SetValue("R. Checker")
	m.editor.fields[1].input.SetValue("32.13.2025")
	m, _ = press(t, m, "enter")
	if m.editor == nil || !strings.Contains(m.editor.err, "sign-off date") {
		t.Fatalf("expected bad date to be rejected")
	}
	m.editor.fields[1].input.SetValue("")
	m, _ = press(t, m, "enter")
	sig := m.state.SignOff()[0]
	if sig.Name != "R. Checker" || sig.Date != nil {
		t.Fatalf("unexpected signature %+v", sig)
	}
}

func TestSaveRejectsPlaceholderName(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	m, _ := unlocked(t, store)

	m, _ = press(t, m, "ctrl+s")
	if m.editor == nil {
		t.Fatalf("expected save dialog")
	}
	for _, name := range []string{"", config.PlaceholderName, "   "} {
		m.editor.fields[0].input.SetValue(name)
		var cmd tea.Cmd
		m, cmd = press(t, m, "enter")
		if cmd != nil {
			t.Fatalf("expected no save for %q", name)
		}
		if m.editor == nil || m.editor.err != persist.ErrInvalidName.Error() {
			t.Fatalf("expected dialog to stay open for %q", name)
		}
	}
}

func TestSaveCallsStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	m, _ := unlocked(t, store)

	saved := filepath.Join("saves", "2025-08-20_Jane.json")
	gomock.InOrder(
		store.EXPECT().Save(m.state.Snapshot(), "Jane").Return("2025-08-20_Jane.json", nil),
		store.EXPECT().Path("2025-08-20_Jane.json").Return(saved),
	)

	m, _ = press(t, m, "ctrl+s")
	m.editor.fields[0].input.SetValue("Jane")
	m, cmd := press(t, m, "enter")
	if m.editor != nil {
		t.Fatalf("expected dialog to close")
	}
	m = run(t, m, cmd)
	if m.statusErr || !strings.Contains(m.status, saved) {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestSaveFailureShown(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	m, _ := unlocked(t, store)

	store.EXPECT().Save(gomock.Any(), "Jane").Return("", errors.New("disk full"))

	m, _ = press(t, m, "ctrl+s")
	m.editor.fields[0].input.SetValue("Jane")
	m, cmd := press(t, m, "enter")
	m = run(t, m, cmd)
	if !m.statusErr || !strings.Contains(m.status, "disk full") {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestLoadReplacesState(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	m, _ := unlocked(t, store)

	saved := testutil.NewReport().
		WithEntries(testutil.NewEntry().Build(), testutil.NewEntry().WithLocation("CB5-23").Build()).
		WithNotes("Loaded notes").
		Checked(0, 2).
		Build()
	gomock.InOrder(
		store.EXPECT().List().Return([]string{"2025-08-19_Jane.json", "Jane.json"}, nil),
		store.EXPECT().Load("Jane.json").Return(saved, nil),
	)

	m, cmd := press(t, m, "ctrl+o")
	m = run(t, m, cmd)
	if m.picker == nil {
		t.Fatalf("expected load picker")
	}
	m, cmd = press(t, m, "down", "enter")
	m = run(t, m, cmd)

	if m.statusErr {
		t.Fatalf("unexpected error status %q", m.status)
	}
	if got := m.state.Entries().Len(); got != 2 {
		t.Fatalf("expected 2 rows, got %d", got)
	}
	if m.state.GIPackage() != "Package 2" || m.state.Notes != "Loaded notes" || m.notes.Value() != "Loaded notes" {
		t.Fatalf("state not replaced: %+v", m.state.Snapshot())
	}
	if !m.state.Checklist()[2].Checked {
		t.Fatalf("expected checklist restored")
	}
}

func TestLoadClosesOpenEditor(t *testing.T) {
	m, _ := unlocked(t, nil)
	m, _ = press(t, m, "tab", "enter")
	if m.editor == nil {
		t.Fatalf("expected row editor to open")
	}
	loaded := testutil.NewReport().WithEntries(testutil.NewEntry().WithEngineer("LD").Build()).Build()
	next, _ := m.Update(loadedMsg{name: "Jane.json", report: loaded})
	m = next.(MainModel)
	if m.editor != nil {
		t.Fatalf("expected load to close the editor")
	}
	row, _ := m.state.Entries().Row(0)
	if row.Engineer != "LD" {
		t.Fatalf("expected loaded row, got %+v", row)
	}
}

func TestRowEditorCommitsToCurrentTable(t *testing.T) {
	state := diary.NewState(models.LayoutTable, testutil.FixedNow)
	ed, err := rowEditor(state, 0)
	if err != nil {
		t.Fatalf("rowEditor failed: %v", err)
	}
	replacement := testutil.NewReport().WithEntries(testutil.NewEntry().WithEngineer("LD").Build()).Build()
	if err := state.Apply(replacement); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	ed.fields[1].input.SetValue("JD")
	if _, done := ed.update(keyMsg("enter")); !done {
		t.Fatalf("expected commit to succeed, err=%q", ed.err)
	}
	row, _ := state.Entries().Row(0)
	if row.Engineer != "JD" {
		t.Fatalf("expected edit in the current table, got %+v", row)
	}
}

func TestLoadFailureKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	m, _ := unlocked(t, store)
	before := m.state.Snapshot()

	gomock.InOrder(
		store.EXPECT().List().Return([]string{"bad.json"}, nil),
		store.EXPECT().Load("bad.json").Return(models.Report{}, persist.ErrIncompatibleShape),
	)

	m, cmd := press(t, m, "ctrl+o")
	m = run(t, m, cmd)
	m, cmd = press(t, m, "enter")
	m = run(t, m, cmd)

	if !m.statusErr {
		t.Fatalf("expected error status")
	}
	after := m.state.Snapshot()
	if after.Project != before.Project || len(after.Entries) != len(before.Entries) || after.Notes != before.Notes {
		t.Fatalf("expected state unchanged")
	}
}

func TestLoadWithNoSaves(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)
	m, _ := unlocked(t, store)
	store.EXPECT().List().Return(nil, nil)

	m, cmd := press(t, m, "ctrl+o")
	m = run(t, m, cmd)
	if m.picker != nil || !m.statusErr {
		t.Fatalf("expected no picker and an error status")
	}
}

func TestExportWritesFiles(t *testing.T) {
	tests := []struct {
		key  string
		name string
	}{
		{"ctrl+x", "Site_Diary_Log_2025-08-20.xlsx"},
		{"ctrl+p", "Site_Diary_Log_2025-08-20.pdf"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.key, func(t *testing.T) {
			m, _ := unlocked(t, nil)
			m, cmd := press(t, m, tc.key)
			m = run(t, m, cmd)
			if m.statusErr {
				t.Fatalf("unexpected export error %q", m.status)
			}
			if _, err := os.Stat(filepath.Join(m.reportsDir, tc.name)); err != nil {
				t.Fatalf("expected export file: %v", err)
			}
		})
	}
}

func TestWindowResizeCompactsTable(t *testing.T) {
	m, _ := unlocked(t, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: config.CompactModeThreshold - 1, Height: 40})
	m = next.(MainModel)
	if got := len(m.table.Columns()); got != 4 {
		t.Fatalf("expected 4 compact columns, got %d", got)
	}
	next, _ = m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	m = next.(MainModel)
	if got := len(m.table.Columns()); got != len(models.EntryColumns) {
		t.Fatalf("expected all columns, got %d", got)
	}
}
