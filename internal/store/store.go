// Package store persists the address book.
package store

import (
	"errors"
	"fmt"

	"github.com/pbaille/meetbook/internal/model"
)

// ErrNoData is returned by Load when nothing has been saved yet.
var ErrNoData = errors.New("no saved data")

// Storage loads and saves the whole address book.
type Storage interface {
	Load() (*model.AddressBook, error)
	Save(book *model.AddressBook) error
	Path() string
	Close() error
}

// Backend names accepted by Open.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Open returns the storage for backend at path.
func Open(backend, path string) (Storage, error) {
	switch backend {
	case BackendJSON, "":
		return NewJSON(path), nil
	case BackendSQLite:
		return NewSQLite(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
