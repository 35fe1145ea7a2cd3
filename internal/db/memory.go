package db

import (
	"github.com/LavenderBridge/vocab/internal/models"
)

// MemoryStore is an in-process Store. ReadErr and SaveErr, when set, are
// returned instead of touching the data.
type MemoryStore struct {
	Entries models.Vocabulary
	Saves   int
	ReadErr error
	SaveErr error
}

func NewMemoryStore(entries ...models.Entry) *MemoryStore {
	return &MemoryStore{Entries: entries}
}

func (m *MemoryStore) Read() (models.Vocabulary, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	if m.Entries == nil {
		return nil, ErrNoData
	}
	return append(models.Vocabulary{}, m.Entries...), nil
}

func (m *MemoryStore) Save(v models.Vocabulary) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Entries = append(models.Vocabulary{}, v...)
	m.Saves++
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
