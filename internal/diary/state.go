package diary

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/sitediary/internal/config"
	"github.com/akyairhashvil/sitediary/internal/models"
)

// State is everything one session edits. The scheme and subcontractor are
// not stored: they are looked up from the project number and GI package every
// time they are read.
type State struct {
	Layout models.Layout
	Notes  string

	projectNo string
	giPackage string
	entries   *Table
	daily     models.DailyEntry
	checklist []bool
	signOff   []models.Signature
	now       func() time.Time
}

// ExampleEntry is the row a fresh session starts with.
func ExampleEntry() models.DiaryEntry {
	return models.DiaryEntry{
		Date:       models.NewDate(2025, time.August, 19),
		Engineer:   "FS",
		Location:   "CB5-22",
		Activities: "Drilling 14.5m-20.5m, BH completion, install/backfill activities",
		Status:     models.StatusVerified,
	}
}

// NewState returns the defaults a session starts with.
func NewState(layout models.Layout, now func() time.Time) *State {
	if now == nil {
		now = time.Now
	}
	if !layout.Valid() {
		layout = models.LayoutTable
	}
	today := models.DateOf(now())
	s := &State{
		Layout:    layout,
		projectNo: config.ProjectNumbers[0],
		giPackage: config.GIPackages[0],
		entries:   NewTable(now, ExampleEntry()),
		daily:     models.DailyEntry{DiaryEntry: BlankEntry(now())},
		checklist: make([]bool, len(config.ChecklistQuestions)),
		now:       now,
	}
	for _, role := range config.SignOffRoles {
		d := today
		s.signOff = append(s.signOff, models.Signature{Role: role, Date: &d})
	}
	return s
}

func (s *State) Entries() *Table { return s.entries }

func (s *State) ProjectNo() string { return s.projectNo }
func (s *State) GIPackage() string { return s.giPackage }

func (s *State) SetProjectNo(v string) error {
	if !config.IsProjectNumber(v) {
		return fmt.Errorf("project no %q: %w", v, ErrUnknownOption)
	}
	s.projectNo = v
	return nil
}

func (s *State) SetGIPackage(v string) error {
	if !config.IsGIPackage(v) {
		return fmt.Errorf("gi package %q: %w", v, ErrUnknownOption)
	}
	s.giPackage = v
	return nil
}

// SetProjectField edits a project information field by label. Scheme and
// Subcontractor are derived and always refused.
func (s *State) SetProjectField(label, value string) error {
	switch label {
	case "Project No":
		return s.SetProjectNo(value)
	case "GI Package":
		return s.SetGIPackage(value)
	case "Scheme", "Subcontractor":
		return fmt.Errorf("%s: %w", label, ErrReadOnlyField)
	}
	return fmt.Errorf("%s: %w", label, ErrUnknownOption)
}

func (s *State) ProjectInfo() models.ProjectInfo {
	return models.ProjectInfo{
		ProjectNo:     s.projectNo,
		Scheme:        config.Scheme(s.projectNo),
		GIPackage:     s.giPackage,
		Subcontractor: config.Subcontractor(s.giPackage),
	}
}

func (s *State) Daily() models.DailyEntry {
	d := s.daily
	d.DiaryEntry = cloneEntry(d.DiaryEntry)
	return d
}

// SetDaily replaces the daily entry; it must carry a date and status.
func (s *State) SetDaily(d models.DailyEntry) error {
	if err := ValidateEntry(0, d.DiaryEntry); err != nil {
		return err
	}
	d.DiaryEntry = cloneEntry(d.DiaryEntry)
	s.daily = d
	return nil
}

func (s *State) Checklist() []models.ChecklistItem {
	items := make([]models.ChecklistItem, len(config.ChecklistQuestions))
	for i, q := range config.ChecklistQuestions {
		items[i] = models.ChecklistItem{Question: q, Checked: s.checklist[i]}
	}
	return items
}

func (s *State) SetChecked(i int, checked bool) error {
	if i < 0 || i >= len(s.checklist) {
		return fmt.Errorf("checklist item %d: %w", i, ErrOutOfRange)
	}
	s.checklist[i] = checked
	return nil
}

func (s *State) ToggleChecked(i int) error {
	if i < 0 || i >= len(s.checklist) {
		return fmt.Errorf("checklist item %d: %w", i, ErrOutOfRange)
	}
	s.checklist[i] = !s.checklist[i]
	return nil
}

func (s *State) SignOff() []models.Signature {
	return cloneSignatures(s.signOff)
}

func (s *State) SetSignature(i int, name string, date *models.Date) error {
	if i < 0 || i >= len(s.signOff) {
		return fmt.Errorf("sign-off %d: %w", i, ErrOutOfRange)
	}
	s.signOff[i].Name = name
	if date == nil || date.IsZero() {
		s.signOff[i].Date = nil
	} else {
		d := *date
		s.signOff[i].Date = &d
	}
	return nil
}

// Snapshot copies the state into the plain report form used by persistence
// and the exporters. Only the active layout's entries are included.
func (s *State) Snapshot() models.Report {
	r := models.Report{
		Layout:    s.Layout,
		Project:   s.ProjectInfo(),
		Checklist: s.Checklist(),
		Notes:     s.Notes,
		SignOff:   s.SignOff(),
	}
	if s.Layout == models.LayoutDaily {
		d := s.Daily()
		r.Daily = &d
	} else {
		r.Entries = s.entries.Rows()
	}
	return r
}

// Apply replaces the whole state with r. Everything is validated first, so a
// rejected report leaves the state untouched.
func (s *State) Apply(r models.Report) error {
	if !r.Layout.Valid() {
		return fmt.Errorf("layout %q: %w", r.Layout, ErrUnknownOption)
	}
	if !config.IsProjectNumber(r.Project.ProjectNo) {
		return fmt.Errorf("project no %q: %w", r.Project.ProjectNo, ErrUnknownOption)
	}
	if !config.IsGIPackage(r.Project.GIPackage) {
		return fmt.Errorf("gi package %q: %w", r.Project.GIPackage, ErrUnknownOption)
	}
	for i, e := range r.Entries {
		if err := ValidateEntry(i, e); err != nil {
			return err
		}
	}
	daily := models.DailyEntry{DiaryEntry: BlankEntry(s.now())}
	if r.Layout == models.LayoutDaily {
		if r.Daily == nil {
			return fmt.Errorf("daily entry: %w", ErrRequiredField)
		}
		if err := ValidateEntry(0, r.Daily.DiaryEntry); err != nil {
			return err
		}
		daily = *r.Daily
		daily.DiaryEntry = cloneEntry(daily.DiaryEntry)
	}
	checked := make(map[string]bool, len(r.Checklist))
	for _, item := range r.Checklist {
		if config.IsChecklistQuestion(item.Question) {
			checked[item.Question] = item.Checked
		}
	}
	checklist := make([]bool, len(config.ChecklistQuestions))
	for i, q := range config.ChecklistQuestions {
		checklist[i] = checked[q]
	}
	signOff := make([]models.Signature, 0, len(config.SignOffRoles))
	for _, role := range config.SignOffRoles {
		sig := models.Signature{Role: role}
		for _, in := range r.SignOff {
			if in.Role == role {
				sig.Name = in.Name
				if in.Date != nil {
					d := *in.Date
					sig.Date = &d
				}
			}
		}
		signOff = append(signOff, sig)
	}

	s.Layout = r.Layout
	s.projectNo = r.Project.ProjectNo
	s.giPackage = r.Project.GIPackage
	s.entries = NewTable(s.now, r.Entries...)
	s.daily = daily
	s.checklist = checklist
	s.Notes = r.Notes
	s.signOff = signOff
	return nil
}

func cloneSignatures(in []models.Signature) []models.Signature {
	out := make([]models.Signature, len(in))
	for i, sig := range in {
		out[i] = sig
		if sig.Date != nil {
			d := *sig.Date
			out[i].Date = &d
		}
	}
	return out
}
