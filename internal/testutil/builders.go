package testutil

import (
	"time"

	"github.com/akyairhashvil/sitediary/internal/config"
	"github.com/akyairhashvil/sitediary/internal/models"
)

// FixedNow is the clock used by tests that need a stable "today".
func FixedNow() time.Time {
	return time.Date(2025, time.August, 20, 9, 30, 0, 0, time.UTC)
}

// EntryBuilder provides fluent API for creating test diary entries.
type EntryBuilder struct {
	entry models.DiaryEntry
}

func NewEntry() *EntryBuilder {
	return &EntryBuilder{
		entry: models.DiaryEntry{
			Date:       models.NewDate(2025, time.August, 19),
			Engineer:   "FS",
			Location:   "CB5-22",
			Activities: "Drilling 14.5m-20.5m",
			Status:     models.StatusVerified,
		},
	}
}

func (b *EntryBuilder) WithDate(d models.Date) *EntryBuilder {
	b.entry.Date = d
	return b
}

func (b *EntryBuilder) WithEngineer(name string) *EntryBuilder {
	b.entry.Engineer = name
	return b
}

func (b *EntryBuilder) WithLocation(loc string) *EntryBuilder {
	b.entry.Location = loc
	return b
}

func (b *EntryBuilder) WithActivities(text string) *EntryBuilder {
	b.entry.Activities = text
	return b
}

func (b *EntryBuilder) WithStatus(s models.VerificationStatus) *EntryBuilder {
	b.entry.Status = s
	return b
}

func (b *EntryBuilder) VerifiedBy(name string, on models.Date) *EntryBuilder {
	b.entry.VerifiedBy = name
	b.entry.VerificationDate = &on
	return b
}

func (b *EntryBuilder) WithNotes(notes string) *EntryBuilder {
	b.entry.Notes = notes
	return b
}

func (b *EntryBuilder) Build() models.DiaryEntry {
	return b.entry
}

// ReportBuilder assembles a complete report snapshot.
type ReportBuilder struct {
	report models.Report
}

func NewReport() *ReportBuilder {
	checklist := make([]models.ChecklistItem, len(config.ChecklistQuestions))
	for i, q := range config.ChecklistQuestions {
		checklist[i] = models.ChecklistItem{Question: q}
	}
	signed := models.NewDate(2025, time.August, 20)
	return &ReportBuilder{
		report: models.Report{
			Layout: models.LayoutTable,
			Project: models.ProjectInfo{
				ProjectNo:     "LT037",
				Scheme:        config.Scheme("LT037"),
				GIPackage:     "Package 2",
				Subcontractor: config.Subcontractor("Package 2"),
			},
			Entries:   []models.DiaryEntry{NewEntry().Build()},
			Checklist: checklist,
			Notes:     "All records reviewed on site.",
			SignOff: []models.Signature{
				{Role: config.SignOffRoles[0], Name: "A. Verifier", Date: &signed},
			},
		},
	}
}

func (b *ReportBuilder) WithEntries(entries ...models.DiaryEntry) *ReportBuilder {
	b.report.Entries = entries
	return b
}

func (b *ReportBuilder) WithDaily(d models.DailyEntry) *ReportBuilder {
	b.report.Layout = models.LayoutDaily
	b.report.Entries = nil
	b.report.Daily = &d
	return b
}

func (b *ReportBuilder) WithNotes(notes string) *ReportBuilder {
	b.report.Notes = notes
	return b
}

func (b *ReportBuilder) Checked(indices ...int) *ReportBuilder {
	for _, i := range indices {
		b.report.Checklist[i].Checked = true
	}
	return b
}

func (b *ReportBuilder) Unsigned() *ReportBuilder {
	for i := range b.report.SignOff {
		b.report.SignOff[i].Name = ""
		b.report.SignOff[i].Date = nil
	}
	return b
}

func (b *ReportBuilder) Build() models.Report {
	return b.report
}
