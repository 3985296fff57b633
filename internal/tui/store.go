package tui

import (
	"github.com/akyairhashvil/sitediary/internal/models"
	"github.com/akyairhashvil/sitediary/internal/persist"
)

// Store defines the persistence methods the TUI requires.
//
//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=tui
type Store interface {
	Save(r models.Report, verifier string) (string, error)
	List() ([]string, error)
	Load(name string) (models.Report, error)
	Path(name string) string
}

var _ Store = (*persist.Store)(nil)
