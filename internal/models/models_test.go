package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestVerificationStatusConstants(t *testing.T) {
	if StatusPending != "PENDING" {
		t.Fatalf("StatusPending = %q", StatusPending)
	}
	if StatusVerified != "VERIFIED" {
		t.Fatalf("StatusVerified = %q", StatusVerified)
	}
	if StatusIssuesFound != "ISSUES FOUND" {
		t.Fatalf("StatusIssuesFound = %q", StatusIssuesFound)
	}
	if VerificationStatuses[0] != StatusPending {
		t.Fatalf("expected PENDING to be the first status")
	}
	if VerificationStatus("DONE").Valid() || VerificationStatus("").Valid() {
		t.Fatalf("expected unknown statuses to be invalid")
	}
}

func TestDateFormats(t *testing.T) {
	d := NewDate(2025, time.August, 19)
	if d.String() != "2025-08-19" {
		t.Fatalf("String() = %q", d.String())
	}
	if d.Display() != "19.08.2025" {
		t.Fatalf("Display() = %q", d.Display())
	}
	parsed, err := ParseDisplayDate("19.08.2025")
	if err != nil || parsed != d {
		t.Fatalf("ParseDisplayDate = %v, %v", parsed, err)
	}
	parsed, err = ParseDate("2025-08-19")
	if err != nil || parsed != d {
		t.Fatalf("ParseDate = %v, %v", parsed, err)
	}
	if _, err := ParseDisplayDate("2025-08-19"); err == nil {
		t.Fatalf("expected ISO input to be rejected by ParseDisplayDate")
	}
	var zero Date
	if !zero.IsZero() || zero.String() != "" || zero.Display() != "" {
		t.Fatalf("expected zero date to format empty")
	}
}

func TestDateJSON(t *testing.T) {
	type wrapper struct {
		D   Date  `json:"d"`
		Opt *Date `json:"opt"`
	}
	in := wrapper{D: NewDate(2024, time.February, 29)}
	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(raw) != `{"d":"2024-02-29","opt":null}` {
		t.Fatalf("unexpected json %s", raw)
	}
	var out wrapper
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if out.D != in.D || out.Opt != nil {
		t.Fatalf("round trip mismatch: %+v", out)
	}
	if err := json.Unmarshal([]byte(`{"d":"19.08.2025"}`), &out); err == nil {
		t.Fatalf("expected display-format date to be rejected in json")
	}
}

func TestDiaryEntryValues(t *testing.T) {
	e := DiaryEntry{
		Date:       NewDate(2025, time.August, 19),
		Engineer:   "FS",
		Location:   "CB5-22",
		Activities: "Drilling 14.5m-20.5m",
		Status:     StatusVerified,
	}
	got := strings.Join(e.Values(), "|")
	want := "19.08.2025|FS|CB5-22|Drilling 14.5m-20.5m|VERIFIED|||"
	if got != want {
		t.Fatalf("Values() = %q, want %q", got, want)
	}
	if len(e.Values()) != len(EntryColumns) {
		t.Fatalf("expected one value per column")
	}
}

func TestDailyEntryJSONFlattens(t *testing.T) {
	d := DailyEntry{DiaryEntry: DiaryEntry{Engineer: "FS", Status: StatusPending}, Weather: "Rain"}
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(raw), `"Engineer":"FS"`) || !strings.Contains(string(raw), `"Weather":"Rain"`) {
		t.Fatalf("expected flattened daily entry, got %s", raw)
	}
}

func TestReportRows(t *testing.T) {
	entry := DiaryEntry{Engineer: "A", Status: StatusPending}
	r := Report{Layout: LayoutTable, Entries: []DiaryEntry{entry, entry}}
	if len(r.Rows()) != 2 {
		t.Fatalf("expected table rows")
	}
	r.Layout = LayoutDaily
	if len(r.Rows()) != 0 {
		t.Fatalf("expected no rows without a daily entry")
	}
	r.Daily = &DailyEntry{DiaryEntry: entry}
	if len(r.Rows()) != 1 {
		t.Fatalf("expected the daily entry as a single row")
	}
}
