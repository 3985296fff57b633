// Package report renders a form snapshot as a spreadsheet or a PDF document.
// Both writers take a models.Report and never touch session state.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/sitediary/internal/config"
	"github.com/akyairhashvil/sitediary/internal/models"
	"golang.org/x/text/encoding/charmap"
)

// Format names an export writer and doubles as the file extension.
type Format string

const (
	FormatSpreadsheet Format = "xlsx"
	FormatPDF         Format = "pdf"
)

var ErrUnknownFormat = errors.New("unknown export format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSpreadsheet, FormatPDF:
		return f, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// Filename returns "<name>_<YYYY-MM-DD>.<ext>" for the day of now.
func Filename(name string, ext Format, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", name, now.Format(models.ISODateLayout), ext)
}

// ExportFile renders doc in the given format and writes it to dir, replacing
// any export of the same day. It returns the written path.
func ExportFile(dir string, format Format, doc models.Report, now time.Time) (string, error) {
	var buf bytes.Buffer
	var err error
	switch format {
	case FormatSpreadsheet:
		err = WriteSpreadsheet(&buf, doc)
	case FormatPDF:
		err = WritePDF(&buf, doc)
	default:
		err = fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, Filename(config.ReportName, format, now))
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// cp1252 encodes s for the core PDF fonts. Runes the code page cannot
// represent become '?'.
func cp1252(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\r' {
			continue
		}
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			c = '?'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// SignOffLine formats one sign-off role as printed in the document.
func SignOffLine(sig models.Signature) string {
	date := "N/A"
	if sig.Date != nil && !sig.Date.IsZero() {
		date = sig.Date.String()
	}
	return fmt.Sprintf("%s: %s (Date: %s)", sig.Role, sig.Name, date)
}

// ChecklistLine formats one checklist item with its tick box.
func ChecklistLine(item models.ChecklistItem) string {
	box := "[ ]"
	if item.Checked {
		box = "[X]"
	}
	return box + " " + item.Question
}
