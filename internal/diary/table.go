package diary

import (
	"strings"
	"time"

	"github.com/akyairhashvil/sitediary/internal/models"
)

// Field identifies an editable column of a diary entry.
type Field int

const (
	FieldDate Field = iota
	FieldEngineer
	FieldLocation
	FieldActivities
	FieldStatus
	FieldVerifiedBy
	FieldVerificationDate
	FieldNotes
)

// Column returns the header of the field as shown in the form and exports.
func (f Field) Column() string {
	if f < 0 || int(f) >= len(models.EntryColumns) {
		return ""
	}
	return models.EntryColumns[f]
}

// Table is the ordered list of diary entries. Rows are never merged or
// deduplicated; position is the only identity.
type Table struct {
	rows []models.DiaryEntry
	now  func() time.Time
}

func NewTable(now func() time.Time, rows ...models.DiaryEntry) *Table {
	if now == nil {
		now = time.Now
	}
	t := &Table{now: now}
	for _, r := range rows {
		t.rows = append(t.rows, cloneEntry(r))
	}
	return t
}

func (t *Table) Len() int { return len(t.rows) }

// Rows returns a copy of the table in display order.
func (t *Table) Rows() []models.DiaryEntry {
	out := make([]models.DiaryEntry, len(t.rows))
	for i, r := range t.rows {
		out[i] = cloneEntry(r)
	}
	return out
}

func (t *Table) Row(pos int) (models.DiaryEntry, error) {
	if pos < 0 || pos >= len(t.rows) {
		return models.DiaryEntry{}, &RowError{Row: pos, Err: ErrOutOfRange}
	}
	return cloneEntry(t.rows[pos]), nil
}

// BlankEntry is what a newly added row holds: today's date and the first
// status option, every other field empty.
func BlankEntry(now time.Time) models.DiaryEntry {
	return models.DiaryEntry{
		Date:   models.DateOf(now),
		Status: models.VerificationStatuses[0],
	}
}

// AppendBlank adds a blank row at the end and returns its position.
func (t *Table) AppendBlank() int {
	t.rows = append(t.rows, BlankEntry(t.now()))
	return len(t.rows) - 1
}

// Append adds a validated row at the end.
func (t *Table) Append(e models.DiaryEntry) error {
	return t.Insert(len(t.rows), e)
}

// Insert places a validated row at pos, shifting later rows down.
func (t *Table) Insert(pos int, e models.DiaryEntry) error {
	if pos < 0 || pos > len(t.rows) {
		return &RowError{Row: pos, Err: ErrOutOfRange}
	}
	if err := ValidateEntry(pos, e); err != nil {
		return err
	}
	t.rows = append(t.rows, models.DiaryEntry{})
	copy(t.rows[pos+1:], t.rows[pos:])
	t.rows[pos] = cloneEntry(e)
	return nil
}

// Delete removes the row at pos. There is no confirmation step.
func (t *Table) Delete(pos int) error {
	if pos < 0 || pos >= len(t.rows) {
		return &RowError{Row: pos, Err: ErrOutOfRange}
	}
	t.rows = append(t.rows[:pos], t.rows[pos+1:]...)
	return nil
}

// Commit replaces the row at pos. A row missing its date or status is
// rejected and the stored row is left as it was.
func (t *Table) Commit(pos int, e models.DiaryEntry) error {
	if pos < 0 || pos >= len(t.rows) {
		return &RowError{Row: pos, Err: ErrOutOfRange}
	}
	if err := ValidateEntry(pos, e); err != nil {
		return err
	}
	t.rows[pos] = cloneEntry(e)
	return nil
}

// Update sets one field of one row from its form text. Dates use the
// DD.MM.YYYY form; an empty verification date clears it.
func (t *Table) Update(pos int, field Field, value string) error {
	row, err := t.Row(pos)
	if err != nil {
		return err
	}
	if err := SetField(&row, field, value); err != nil {
		return &RowError{Row: pos, Column: field.Column(), Err: err}
	}
	return t.Commit(pos, row)
}

// SetField applies form text to a single field of e without validating the row.
func SetField(e *models.DiaryEntry, field Field, value string) error {
	switch field {
	case FieldDate:
		if strings.TrimSpace(value) == "" {
			e.Date = models.Date{}
			return nil
		}
		d, err := models.ParseDisplayDate(value)
		if err != nil {
			return err
		}
		e.Date = d
	case FieldEngineer:
		e.Engineer = value
	case FieldLocation:
		e.Location = value
	case FieldActivities:
		e.Activities = value
	case FieldStatus:
		e.Status = models.VerificationStatus(strings.TrimSpace(value))
	case FieldVerifiedBy:
		e.VerifiedBy = value
	case FieldVerificationDate:
		if strings.TrimSpace(value) == "" {
			e.VerificationDate = nil
			return nil
		}
		d, err := models.ParseDisplayDate(value)
		if err != nil {
			return err
		}
		e.VerificationDate = &d
	case FieldNotes:
		e.Notes = value
	default:
		return ErrUnknownOption
	}
	return nil
}

// FieldValue returns the form text of a single field.
func FieldValue(e models.DiaryEntry, field Field) string {
	values := e.Values()
	if field < 0 || int(field) >= len(values) {
		return ""
	}
	return values[field]
}

// ValidateEntry enforces the per-row invariants: a date and a known status.
func ValidateEntry(pos int, e models.DiaryEntry) error {
	if e.Date.IsZero() {
		return &RowError{Row: pos, Column: models.ColDiaryDate, Err: ErrRequiredField}
	}
	if e.Status == "" {
		return &RowError{Row: pos, Column: models.ColStatus, Err: ErrRequiredField}
	}
	if !e.Status.Valid() {
		return &RowError{Row: pos, Column: models.ColStatus, Err: ErrInvalidStatus}
	}
	return nil
}

func cloneEntry(e models.DiaryEntry) models.DiaryEntry {
	if e.VerificationDate != nil {
		d := *e.VerificationDate
		e.VerificationDate = &d
	}
	return e
}
