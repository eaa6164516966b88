// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/propstore/store.go
// Summary: SQLite snapshots of widget properties.
//
// Widgets are persisted through the generic property bridge, so the store
// never needs to know a widget's concrete type:
//   - Save reads the named properties and writes one row per property
//   - Restore writes them back in the holder's preferred order

package propstore

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/framegrace/texelslider/texelui/core"
)

const schema = `
CREATE TABLE IF NOT EXISTS properties (
    widget TEXT NOT NULL,
    name   TEXT NOT NULL,
    kind   TEXT NOT NULL,
    value  TEXT NOT NULL,
    PRIMARY KEY (widget, name)
);
`

// Store persists property snapshots keyed by widget id.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (creating if needed) the database at path. ":memory:" opens a
// private in-memory database.
func Open(path string) (*Store, error) {
	dsn := ":memory:"
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("propstore: create directory: %w", err)
		}
		dsn = path +
			"?_pragma=journal_mode(WAL)" +
			"&_pragma=synchronous(NORMAL)" +
			"&_pragma=busy_timeout(2000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("propstore: open database: %w", err)
	}
	// one connection keeps ":memory:" a single database
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("propstore: connect: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("propstore: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Save snapshots the named properties of h under id, replacing any earlier
// values. With no names, a core.PropertyLister holder saves all of its
// properties.
func (s *Store) Save(id string, h core.PropertyHolder, names ...string) error {
	if id == "" || h == nil {
		return fmt.Errorf("propstore: save needs an id and a holder: %w", core.ErrInvalidArgument)
	}
	if len(names) == 0 {
		if l, ok := h.(core.PropertyLister); ok {
			names = l.PropertyNames()
		}
	}

	values := make([]core.Value, len(names))
	for i, name := range names {
		v, err := h.GetProperty(name)
		if err != nil {
			return fmt.Errorf("propstore: read %s.%s: %w", id, name, err)
		}
		values[i] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("propstore: begin: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO properties (widget, name, kind, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("propstore: prepare: %w", err)
	}
	defer stmt.Close()

	for i, name := range names {
		v := values[i]
		if _, err := stmt.Exec(id, name, v.Kind().String(), v.String()); err != nil {
			tx.Rollback()
			return fmt.Errorf("propstore: write %s.%s: %w", id, name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("propstore: commit: %w", err)
	}
	return nil
}

// Load returns the stored properties of id. A widget with no snapshot
// yields ErrNotFound.
func (s *Store) Load(id string) (map[string]core.Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT name, kind, value FROM properties WHERE widget = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("propstore: query %s: %w", id, err)
	}
	defer rows.Close()

	out := make(map[string]core.Value)
	for rows.Next() {
		var name, kind, text string
		if err := rows.Scan(&name, &kind, &text); err != nil {
			return nil, fmt.Errorf("propstore: scan %s: %w", id, err)
		}
		v, err := core.ParseValue(kind, text)
		if err != nil {
			log.Printf("PropStore: Skipping %s.%s: %v", id, name, err)
			continue
		}
		out[name] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("propstore: read %s: %w", id, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("propstore: widget %q: %w", id, core.ErrNotFound)
	}
	return out, nil
}

// Restore writes the stored properties of id back into h. A
// core.PropertyLister holder receives them in its declared order; other
// holders in name order. Every failing property is reported and the rest
// are still applied.
func (s *Store) Restore(id string, h core.PropertyHolder) error {
	if h == nil {
		return fmt.Errorf("propstore: restore needs a holder: %w", core.ErrInvalidArgument)
	}
	stored, err := s.Load(id)
	if err != nil {
		return err
	}

	var order []string
	if l, ok := h.(core.PropertyLister); ok {
		order = l.PropertyNames()
	} else {
		for name := range stored {
			order = append(order, name)
		}
		sort.Strings(order)
	}

	var errs []error
	for _, name := range order {
		v, ok := stored[name]
		if !ok {
			continue
		}
		if err := h.SetProperty(name, v); err != nil {
			errs = append(errs, fmt.Errorf("propstore: restore %s.%s: %w", id, name, err))
		}
	}
	return errors.Join(errs...)
}

// Delete drops the snapshot of id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec(`DELETE FROM properties WHERE widget = ?`, id); err != nil {
		return fmt.Errorf("propstore: delete %s: %w", id, err)
	}
	return nil
}
