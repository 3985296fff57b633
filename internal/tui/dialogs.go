package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/sitediary/internal/config"
	"github.com/akyairhashvil/sitediary/internal/diary"
	"github.com/akyairhashvil/sitediary/internal/models"
	"github.com/akyairhashvil/sitediary/internal/persist"
	tea "github.com/charmbracelet/bubbletea"
)

var entryFields = []diary.Field{
	diary.FieldDate,
	diary.FieldEngineer,
	diary.FieldLocation,
	diary.FieldActivities,
	diary.FieldStatus,
	diary.FieldVerifiedBy,
	diary.FieldVerificationDate,
	diary.FieldNotes,
}

const datePlaceholder = "DD.MM.YYYY"

func statusChoices() []string {
	out := make([]string, len(models.VerificationStatuses))
	for i, s := range models.VerificationStatuses {
		out[i] = string(s)
	}
	return out
}

func fieldLimit(f diary.Field) int {
	switch f {
	case diary.FieldEngineer, diary.FieldVerifiedBy:
		return config.MaxNameLength
	case diary.FieldLocation:
		return config.MaxLocationLength
	case diary.FieldDate, diary.FieldVerificationDate:
		return len(datePlaceholder)
	}
	return config.MaxTextLength
}

func entryEditorFields(e models.DiaryEntry) []editorField {
	fields := make([]editorField, 0, len(entryFields))
	for _, f := range entryFields {
		if f == diary.FieldStatus {
			fields = append(fields, newChoiceField(f.Column(), statusChoices(), string(e.Status)))
			continue
		}
		placeholder := ""
		if f == diary.FieldDate || f == diary.FieldVerificationDate {
			placeholder = datePlaceholder
		}
		fields = append(fields, newTextField(f.Column(), diary.FieldValue(e, f), placeholder, fieldLimit(f)))
	}
	return fields
}

// applyEntryValues copies the dialog values onto e without validating the row.
func applyEntryValues(e models.DiaryEntry, values []string) (models.DiaryEntry, error) {
	for i, f := range entryFields {
		if err := diary.SetField(&e, f, values[i]); err != nil {
			return e, fmt.Errorf("%s: %w", f.Column(), err)
		}
	}
	return e, nil
}

// rowEditor edits one row. The commit looks the table up again so it always
// writes to the session's current entries.
func rowEditor(state *diary.State, pos int) (*editor, error) {
	row, err := state.Entries().Row(pos)
	if err != nil {
		return nil, err
	}
	title := fmt.Sprintf("Edit entry %d", pos+1)
	return newEditor(title, entryEditorFields(row), func(values []string) (tea.Cmd, error) {
		updated, err := applyEntryValues(row, values)
		if err != nil {
			return nil, err
		}
		return nil, state.Entries().Commit(pos, updated)
	}), nil
}

func dailyEditor(state *diary.State) *editor {
	d := state.Daily()
	fields := entryEditorFields(d.DiaryEntry)
	fields = append(fields,
		newTextField("Weather", d.Weather, "", config.MaxTextLength),
		newTextField("Plant/Equipment", d.Equipment, "", config.MaxTextLength),
		newTextField("Personnel", d.Personnel, "", config.MaxTextLength),
		newTextField("Working Hours", d.Hours, "07:30-18:00", config.MaxLocationLength),
	)
	return newEditor("Edit daily entry", fields, func(values []string) (tea.Cmd, error) {
		entry, err := applyEntryValues(d.DiaryEntry, values)
		if err != nil {
			return nil, err
		}
		n := len(entryFields)
		next := models.DailyEntry{
			DiaryEntry: entry,
			Weather:    values[n],
			Equipment:  values[n+1],
			Personnel:  values[n+2],
			Hours:      values[n+3],
		}
		return nil, state.SetDaily(next)
	})
}

func signOffEditor(state *diary.State, i int) (*editor, error) {
	sigs := state.SignOff()
	if i < 0 || i >= len(sigs) {
		return nil, diary.ErrOutOfRange
	}
	sig := sigs[i]
	fields := []editorField{
		newTextField("Name", sig.Name, config.PlaceholderName, config.MaxNameLength),
		newTextField("Date", models.DisplayPtr(sig.Date), datePlaceholder, len(datePlaceholder)),
	}
	return newEditor("Sign-off: "+sig.Role, fields, func(values []string) (tea.Cmd, error) {
		var date *models.Date
		if v := strings.TrimSpace(values[1]); v != "" {
			d, err := models.ParseDisplayDate(v)
			if err != nil {
				return nil, fmt.Errorf("sign-off date: %w", err)
			}
			date = &d
		}
		return nil, state.SetSignature(i, strings.TrimSpace(values[0]), date)
	}), nil
}

// saveEditor asks for the verifier name. Blank or placeholder names keep the
// dialog open and write nothing.
func saveEditor(state *diary.State, store Store) *editor {
	fields := []editorField{newTextField("Verifier name", "", config.PlaceholderName, config.MaxNameLength)}
	return newEditor("Save report", fields, func(values []string) (tea.Cmd, error) {
		name := strings.TrimSpace(values[0])
		if !persist.ValidVerifier(name) {
			return nil, persist.ErrInvalidName
		}
		return saveCmd(store, state.Snapshot(), name), nil
	})
}

// loadPicker lists saved reports, newest first.
type loadPicker struct {
	names  []string
	cursor int
}

func (p *loadPicker) selected() string {
	if len(p.names) == 0 {
		return ""
	}
	return p.names[p.cursor]
}
