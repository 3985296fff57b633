package models

// VerificationStatus enumerates the review outcome of a diary entry.
type VerificationStatus string

const (
	StatusPending     VerificationStatus = "PENDING"
	StatusVerified    VerificationStatus = "VERIFIED"
	StatusIssuesFound VerificationStatus = "ISSUES FOUND"
)

// VerificationStatuses lists the statuses in dropdown order. The first one is
// the default for new rows.
var VerificationStatuses = []VerificationStatus{StatusPending, StatusVerified, StatusIssuesFound}

func (s VerificationStatus) Valid() bool {
	for _, v := range VerificationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Layout selects between the multi-row table form and the single daily entry form.
type Layout string

const (
	LayoutTable Layout = "table"
	LayoutDaily Layout = "daily"
)

func (l Layout) Valid() bool {
	return l == LayoutTable || l == LayoutDaily
}

// Column headers of the entries table, in export order.
const (
	ColDiaryDate        = "Diary Date"
	ColEngineer         = "Engineer"
	ColLocation         = "Location/BH ID"
	ColActivities       = "Activities Summary"
	ColStatus           = "Verification Status"
	ColVerifiedBy       = "Verified By"
	ColVerificationDate = "Verification Date"
	ColNotes            = "Issues/Notes"
)

var EntryColumns = []string{
	ColDiaryDate,
	ColEngineer,
	ColLocation,
	ColActivities,
	ColStatus,
	ColVerifiedBy,
	ColVerificationDate,
	ColNotes,
}

// DiaryEntry is one dated record of site activity. Rows have no identity
// beyond their position in the table.
type DiaryEntry struct {
	Date             Date               `json:"Diary Date"`
	Engineer         string             `json:"Engineer"`
	Location         string             `json:"Location/BH ID"`
	Activities       string             `json:"Activities Summary"`
	Status           VerificationStatus `json:"Verification Status"`
	VerifiedBy       string             `json:"Verified By"`
	VerificationDate *Date              `json:"Verification Date"`
	Notes            string             `json:"Issues/Notes"`
}

// Values returns the row as display strings in EntryColumns order.
func (e DiaryEntry) Values() []string {
	return []string{
		e.Date.Display(),
		e.Engineer,
		e.Location,
		e.Activities,
		string(e.Status),
		e.VerifiedBy,
		DisplayPtr(e.VerificationDate),
		e.Notes,
	}
}

// DailyEntry is the single-entry form: a diary entry plus the site conditions
// recorded for that day.
type DailyEntry struct {
	DiaryEntry
	Weather   string `json:"Weather"`
	Equipment string `json:"Plant/Equipment"`
	Personnel string `json:"Personnel"`
	Hours     string `json:"Working Hours"`
}

// ProjectInfo carries the selected project and package with their derived names.
type ProjectInfo struct {
	ProjectNo     string `json:"Project No"`
	Scheme        string `json:"Scheme"`
	GIPackage     string `json:"GI Package"`
	Subcontractor string `json:"Subcontractor"`
}

// Fields returns label/value pairs in display order.
func (p ProjectInfo) Fields() [][2]string {
	return [][2]string{
		{"Project No", p.ProjectNo},
		{"Scheme", p.Scheme},
		{"GI Package", p.GIPackage},
		{"Subcontractor", p.Subcontractor},
	}
}

type ChecklistItem struct {
	Question string
	Checked  bool
}

// Signature is one sign-off role.
type Signature struct {
	Role string
	Name string
	Date *Date
}

// Report is a complete snapshot of the form. Exporters and persistence only
// ever see this type.
type Report struct {
	Layout    Layout
	Project   ProjectInfo
	Entries   []DiaryEntry
	Daily     *DailyEntry
	Checklist []ChecklistItem
	Notes     string
	SignOff   []Signature
}

// Rows returns the entries to tabulate: the table rows, or the single daily
// entry when the daily layout is active.
func (r Report) Rows() []DiaryEntry {
	if r.Layout == LayoutDaily {
		if r.Daily == nil {
			return nil
		}
		return []DiaryEntry{r.Daily.DiaryEntry}
	}
	return r.Entries
}
