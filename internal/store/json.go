package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pbaille/meetbook/internal/model"
)

// JSONStore keeps the address book in a single JSON file.
type JSONStore struct {
	path string
}

// NewJSON returns a store for the file at path. The file is created on first save.
func NewJSON(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Path() string { return s.path }

func (s *JSONStore) Close() error { return nil }

// Load reads the address book. A missing file yields ErrNoData.
func (s *JSONStore) Load() (*model.AddressBook, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var jb jsonBook
	if err := json.Unmarshal(b, &jb); err != nil {
		return nil, fmt.Errorf("decode data file: %w", err)
	}
	return jb.toModel()
}

// Save writes the address book, replacing the file atomically.
func (s *JSONStore) Save(book *model.AddressBook) error {
	b, err := json.MarshalIndent(adaptBook(book), "", "  ")
	if err != nil {
		return fmt.Errorf("encode data file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	return writeFile(s.path, b, 0o644)
}

// writeFile writes bytes via a temp file in the same directory, then renames it over path.
func writeFile(path string, b []byte, mode os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}
