// Package persist saves and loads complete form states as JSON files in a
// single directory.
package persist

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/akyairhashvil/sitediary/internal/config"
	"github.com/akyairhashvil/sitediary/internal/models"
	"github.com/akyairhashvil/sitediary/internal/util"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Meta describes a saved file beyond the form state itself.
type Meta struct {
	ReportID      string
	SavedAt       time.Time
	SchemaVersion int
}

// Store reads and writes saved reports under Dir.
type Store struct {
	Dir    string
	now    func() time.Time
	logger *zap.Logger
}

func NewStore(dir string, now func() time.Time, logger *zap.Logger) *Store {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{Dir: dir, now: now, logger: logger}
}

// ValidVerifier reports whether name can be used to save: not blank and not
// the placeholder hint.
func ValidVerifier(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, config.PlaceholderName) {
		return false
	}
	return util.SafeFileName(name) != ""
}

// Filename is the file a report is saved to: "<verifier>.json" for the table
// layout, "<YYYY-MM-DD>_<verifier>.json" for the daily layout.
func Filename(r models.Report, verifier string) (string, error) {
	if !ValidVerifier(verifier) {
		return "", ErrInvalidName
	}
	name := util.SafeFileName(verifier)
	if r.Layout == models.LayoutDaily && r.Daily != nil && !r.Daily.Date.IsZero() {
		name = r.Daily.Date.String() + "_" + name
	}
	return name + ".json", nil
}

// Save writes r, replacing any previous file of the same name. A rejected
// verifier name writes nothing.
func (s *Store) Save(r models.Report, verifier string) (string, error) {
	name, err := Filename(r, verifier)
	if err != nil {
		s.logger.Warn("save refused", zap.String("verifier", verifier), zap.Error(err))
		return "", wrapErr("save", "", err)
	}
	path := filepath.Join(s.Dir, name)

	saved := toSaved(r)
	saved.ReportID = s.existingReportID(path)
	if saved.ReportID == "" {
		saved.ReportID = uuid.NewString()
	}
	saved.SavedAt = s.now().UTC().Format(time.RFC3339)

	raw, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		return "", wrapErr("save", name, err)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", wrapErr("save", name, err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return "", wrapErr("save", name, err)
	}
	s.logger.Info("report saved",
		zap.String("file", name),
		zap.String("report_id", saved.ReportID),
		zap.String("layout", string(r.Layout)),
		zap.Int("entries", len(r.Rows())))
	return name, nil
}

func (s *Store) existingReportID(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var head struct {
		ReportID string `json:"report_id"`
	}
	if json.Unmarshal(data, &head) != nil {
		return ""
	}
	return head.ReportID
}

// List returns the saved report names, newest first by name. A missing
// directory is an empty list.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, wrapErr("list", s.Dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// Load reads a saved report. Files missing any required key are refused.
func (s *Store) Load(name string) (models.Report, error) {
	r, _, err := s.LoadWithMeta(name)
	return r, err
}

func (s *Store) LoadWithMeta(name string) (models.Report, Meta, error) {
	if name == "" || filepath.Base(name) != name || name == "." || name == ".." {
		return models.Report{}, Meta{}, wrapErr("load", name, ErrInvalidFilename)
	}
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		return models.Report{}, Meta{}, wrapErr("load", name, err)
	}
	saved, err := decodeSaved(data)
	if err != nil {
		s.logger.Warn("load refused", zap.String("file", name), zap.Error(err))
		return models.Report{}, Meta{}, wrapErr("load", name, err)
	}
	meta := Meta{ReportID: saved.ReportID, SchemaVersion: saved.SchemaVersion}
	if saved.SavedAt != "" {
		if t, err := time.Parse(time.RFC3339, saved.SavedAt); err == nil {
			meta.SavedAt = t
		}
	}
	r := saved.report()
	s.logger.Info("report loaded",
		zap.String("file", name),
		zap.String("report_id", meta.ReportID),
		zap.Int("entries", len(r.Rows())))
	return r, meta, nil
}

// Path returns the absolute location of a saved report name.
func (s *Store) Path(name string) string {
	p := filepath.Join(s.Dir, name)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
