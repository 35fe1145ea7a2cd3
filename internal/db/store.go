package db

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/LavenderBridge/vocab/internal/models"
)

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// ErrNoData means the store has nothing saved yet.
var ErrNoData = errors.New("no vocabulary saved yet")

// CorruptError means saved data exists but could not be decoded.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("cannot parse vocabulary in %s: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}

// Store persists the whole vocabulary at once.
type Store interface {
	// Read returns the saved vocabulary or the reason it could not be read.
	Read() (models.Vocabulary, error)
	// Save overwrites the saved vocabulary with v.
	Save(v models.Vocabulary) error
	Close() error
}

// Options selects and locates a backend.
type Options struct {
	Backend    string
	DataFile   string
	SQLiteFile string
}

// Open returns the store for opts.Backend.
func Open(opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendJSON:
		return NewJSONStore(opts.DataFile), nil
	case BackendSQLite:
		return NewSQLiteStore(opts.SQLiteFile)
	default:
		return nil, fmt.Errorf("unknown storage backend %q (use %s or %s)", opts.Backend, BackendJSON, BackendSQLite)
	}
}

// Load reads s and falls back to an empty vocabulary on any read failure.
// Missing or corrupt data is never reported to the user.
func Load(s Store, logger *slog.Logger) models.Vocabulary {
	v, err := s.Read()
	if err != nil {
		if logger != nil {
			logger.Debug("starting from empty vocabulary", "reason", err)
		}
		return models.Vocabulary{}
	}
	return v
}
