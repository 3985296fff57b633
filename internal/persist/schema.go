package persist

import (
	"encoding/json"
	"fmt"

	"github.com/akyairhashvil/sitediary/internal/config"
	"github.com/akyairhashvil/sitediary/internal/models"
)

// SchemaVersion is written into every saved report. Files without the field
// predate versioning and are recognised by their keys alone.
const SchemaVersion = 1

const (
	keyProjectInfo  = "project_info"
	keyDiaryEntries = "diary_entries"
	keyDailyEntry   = "daily_entry"
	keyChecklist    = "checklist_state"
	keyNotes        = "overall_notes"
	keySignatures   = "signature_data"
)

var requiredKeys = []string{keyProjectInfo, keyChecklist, keyNotes, keySignatures}

type signatureJSON struct {
	Name string       `json:"name"`
	Date *models.Date `json:"date"`
}

type savedReport struct {
	SchemaVersion int                      `json:"schema_version,omitempty"`
	ReportID      string                   `json:"report_id,omitempty"`
	SavedAt       string                   `json:"saved_at,omitempty"`
	Layout        models.Layout            `json:"layout,omitempty"`
	ProjectInfo   models.ProjectInfo       `json:"project_info"`
	DiaryEntries  *[]models.DiaryEntry     `json:"diary_entries,omitempty"`
	DailyEntry    *models.DailyEntry       `json:"daily_entry,omitempty"`
	Checklist     map[string]bool          `json:"checklist_state"`
	OverallNotes  string                   `json:"overall_notes"`
	Signatures    map[string]signatureJSON `json:"signature_data"`
}

func toSaved(r models.Report) savedReport {
	out := savedReport{
		SchemaVersion: SchemaVersion,
		Layout:        r.Layout,
		ProjectInfo:   r.Project,
		Checklist:     make(map[string]bool, len(r.Checklist)),
		OverallNotes:  r.Notes,
		Signatures:    make(map[string]signatureJSON, len(r.SignOff)),
	}
	if r.Layout == models.LayoutDaily {
		out.DailyEntry = r.Daily
	} else {
		entries := r.Entries
		if entries == nil {
			entries = []models.DiaryEntry{}
		}
		out.DiaryEntries = &entries
	}
	for _, item := range r.Checklist {
		out.Checklist[item.Question] = item.Checked
	}
	for _, sig := range r.SignOff {
		out.Signatures[sig.Role] = signatureJSON{Name: sig.Name, Date: sig.Date}
	}
	return out
}

// decodeSaved checks the top-level keys before decoding anything, so a file
// from an older or unrelated format is refused as a whole.
func decodeSaved(data []byte) (savedReport, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return savedReport{}, fmt.Errorf("%w: %v", ErrIncompatibleShape, err)
	}
	for _, key := range requiredKeys {
		if _, ok := top[key]; !ok {
			return savedReport{}, fmt.Errorf("%w: missing %q", ErrIncompatibleShape, key)
		}
	}
	_, hasTable := top[keyDiaryEntries]
	_, hasDaily := top[keyDailyEntry]
	if !hasTable && !hasDaily {
		return savedReport{}, fmt.Errorf("%w: missing %q or %q", ErrIncompatibleShape, keyDiaryEntries, keyDailyEntry)
	}

	var saved savedReport
	if err := json.Unmarshal(data, &saved); err != nil {
		return savedReport{}, fmt.Errorf("%w: %v", ErrIncompatibleShape, err)
	}
	if saved.SchemaVersion > SchemaVersion {
		return savedReport{}, fmt.Errorf("%w (schema %d)", ErrUnsupportedVersion, saved.SchemaVersion)
	}
	if saved.Layout == "" {
		saved.Layout = models.LayoutTable
		if hasDaily && !hasTable {
			saved.Layout = models.LayoutDaily
		}
	}
	if !saved.Layout.Valid() {
		return savedReport{}, fmt.Errorf("%w: unknown layout %q", ErrIncompatibleShape, saved.Layout)
	}
	if saved.Layout == models.LayoutDaily && saved.DailyEntry == nil {
		return savedReport{}, fmt.Errorf("%w: daily layout without %q", ErrIncompatibleShape, keyDailyEntry)
	}
	return saved, nil
}

func (s savedReport) report() models.Report {
	r := models.Report{
		Layout: s.Layout,
		Project: models.ProjectInfo{
			ProjectNo:     s.ProjectInfo.ProjectNo,
			Scheme:        config.Scheme(s.ProjectInfo.ProjectNo),
			GIPackage:     s.ProjectInfo.GIPackage,
			Subcontractor: config.Subcontractor(s.ProjectInfo.GIPackage),
		},
		Notes: s.OverallNotes,
	}
	if s.Layout == models.LayoutDaily {
		d := *s.DailyEntry
		d.VerificationDate = presentDate(d.VerificationDate)
		r.Daily = &d
	} else if s.DiaryEntries != nil {
		for _, e := range *s.DiaryEntries {
			e.VerificationDate = presentDate(e.VerificationDate)
			r.Entries = append(r.Entries, e)
		}
	}
	for _, q := range config.ChecklistQuestions {
		r.Checklist = append(r.Checklist, models.ChecklistItem{Question: q, Checked: s.Checklist[q]})
	}
	for _, role := range config.SignOffRoles {
		sig := models.Signature{Role: role}
		if in, ok := s.Signatures[role]; ok {
			sig.Name = in.Name
			sig.Date = presentDate(in.Date)
		}
		r.SignOff = append(r.SignOff, sig)
	}
	return r
}

// presentDate maps an empty date string, which decodes to a zero Date, to nil.
func presentDate(d *models.Date) *models.Date {
	if d == nil || d.IsZero() {
		return nil
	}
	return d
}
