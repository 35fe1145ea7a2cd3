package db

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/LavenderBridge/vocab/internal/models"
)

// DataFileName is the JSON file kept in the home directory.
const DataFileName = ".vocab_data.json"

// JSONStore keeps the vocabulary as one indented JSON array in a file.
type JSONStore struct {
	path string
}

// DefaultDataFile returns <home>/.vocab_data.json.
func DefaultDataFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, DataFileName), nil
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) Read() (models.Vocabulary, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var v models.Vocabulary
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, &CorruptError{Path: s.path, Err: err}
	}
	if v == nil {
		// a literal "null" document
		return nil, &CorruptError{Path: s.path, Err: errors.New("not a list")}
	}
	return v, nil
}

func (s *JSONStore) Save(v models.Vocabulary) error {
	if v == nil {
		v = models.Vocabulary{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode vocabulary: %w", err)
	}

	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}
