package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pbaille/meetbook/internal/model"
)

//go:embed schema.sql
var schema string

// SQLiteStore keeps the address book in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLite opens (creating if needed) the database at path.
func NewSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) Path() string { return s.path }

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the address book. A database that was never saved to yields ErrNoData.
func (s *SQLiteStore) Load() (*model.AddressBook, error) {
	var marker int
	err := s.db.QueryRow("SELECT id FROM saves WHERE id = 1").Scan(&marker)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("read save marker: %w", err)
	}

	var jb jsonBook
	if jb.Persons, err = s.loadPersons(); err != nil {
		return nil, err
	}
	if jb.Meetings, err = s.loadMeetings(); err != nil {
		return nil, err
	}
	return jb.toModel()
}

func (s *SQLiteStore) loadPersons() ([]jsonPerson, error) {
	tags, err := s.loadTags("SELECT person_id, tag FROM person_tags ORDER BY tag")
	if err != nil {
		return nil, fmt.Errorf("list person tags: %w", err)
	}

	rows, err := s.db.Query("SELECT id, name, phone, email, address FROM persons ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	var persons []jsonPerson
	for rows.Next() {
		var id, name, phone, email, address string
		if err := rows.Scan(&id, &name, &phone, &email, &address); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		persons = append(persons, jsonPerson{
			Name: &name, Phone: &phone, Email: &email, Address: &address,
			Tagged: tags[id],
		})
	}
	return persons, rows.Err()
}

func (s *SQLiteStore) loadMeetings() ([]jsonMeeting, error) {
	tags, err := s.loadTags("SELECT meeting_id, tag FROM meeting_tags ORDER BY tag")
	if err != nil {
		return nil, fmt.Errorf("list meeting tags: %w", err)
	}

	rows, err := s.db.Query("SELECT id, title, link, start_time, duration FROM meetings ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	defer rows.Close()

	var meetings []jsonMeeting
	for rows.Next() {
		var id, title, link, start, duration string
		if err := rows.Scan(&id, &title, &link, &start, &duration); err != nil {
			return nil, fmt.Errorf("scan meeting: %w", err)
		}
		meetings = append(meetings, jsonMeeting{
			Title: &title, Link: &link, StartTime: &start, Duration: &duration,
			Tagged: tags[id],
		})
	}
	return meetings, rows.Err()
}

func (s *SQLiteStore) loadTags(query string) (map[string][]string, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make(map[string][]string)
	for rows.Next() {
		var owner, tag string
		if err := rows.Scan(&owner, &tag); err != nil {
			return nil, err
		}
		tags[owner] = append(tags[owner], tag)
	}
	return tags, rows.Err()
}

// Save replaces the stored address book in a single transaction.
func (s *SQLiteStore) Save(book *model.AddressBook) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		"DELETE FROM person_tags", "DELETE FROM persons",
		"DELETE FROM meeting_tags", "DELETE FROM meetings",
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("clear tables: %w", err)
		}
	}

	for i, p := range book.Persons() {
		id := uuid.New().String()
		_, err := tx.Exec(
			"INSERT INTO persons (id, position, name, phone, email, address) VALUES (?, ?, ?, ?, ?, ?)",
			id, i, string(p.Name), string(p.Phone), string(p.Email), string(p.Address),
		)
		if err != nil {
			return fmt.Errorf("insert person: %w", err)
		}
		for _, t := range p.Tags {
			if _, err := tx.Exec("INSERT INTO person_tags (person_id, tag) VALUES (?, ?)", id, string(t)); err != nil {
				return fmt.Errorf("insert person tag: %w", err)
			}
		}
	}

	for i, m := range book.Meetings() {
		j := adaptMeeting(m)
		id := uuid.New().String()
		_, err := tx.Exec(
			"INSERT INTO meetings (id, position, title, link, start_time, duration) VALUES (?, ?, ?, ?, ?, ?)",
			id, i, *j.Title, *j.Link, *j.StartTime, *j.Duration,
		)
		if err != nil {
			return fmt.Errorf("insert meeting: %w", err)
		}
		for _, t := range m.Tags {
			if _, err := tx.Exec("INSERT INTO meeting_tags (meeting_id, tag) VALUES (?, ?)", id, string(t)); err != nil {
				return fmt.Errorf("insert meeting tag: %w", err)
			}
		}
	}

	if _, err := tx.Exec("INSERT OR REPLACE INTO saves (id, saved_at) VALUES (1, ?)", time.Now()); err != nil {
		return fmt.Errorf("mark save: %w", err)
	}
	return tx.Commit()
}
