// Package store keeps named block maps in a sqlite database.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/I-Am-Dench/blockbuf/blockbuffer"
	_ "github.com/mattn/go-sqlite3"
)

const DriverName = "sqlite3"

const schema = `CREATE TABLE IF NOT EXISTS block_maps (
	name   TEXT PRIMARY KEY,
	width  INTEGER NOT NULL,
	crc    INTEGER NOT NULL,
	blocks BLOB NOT NULL
)`

type Entry struct {
	Name  string
	Width int
	Crc   uint32
}

type Store struct {
	*sql.DB
}

func Open(dsn string) (*Store, error) {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open: %v", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create table: %v", err)
	}

	return &Store{db}, nil
}

// Put stores m under name, replacing any map already stored there.
func (s *Store) Put(name string, m *blockbuffer.Map) error {
	query := "INSERT OR REPLACE INTO block_maps (name, width, crc, blocks) VALUES (?, ?, ?, ?)"
	if _, err := s.Exec(query, name, m.Width(), int64(m.Checksum()), m.Bytes()); err != nil {
		return fmt.Errorf("store: put: %s: %v", name, err)
	}
	return nil
}

func (s *Store) Get(name string) (*blockbuffer.Map, error) {
	var (
		width  int
		crc    int64
		blocks []byte
	)

	query := "SELECT width, crc, blocks FROM block_maps WHERE name = ?"
	err := s.QueryRow(query, name).Scan(&width, &crc, &blocks)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NameError{ErrNotFound, name}
	}

	if err != nil {
		return nil, fmt.Errorf("store: get: %s: %v", name, err)
	}

	if actual := blockbuffer.Checksum(blocks); actual != uint32(crc) {
		return nil, &CorruptError{name, uint32(crc), actual}
	}

	m, err := blockbuffer.NewMap(width, blocks)
	if err != nil {
		return nil, &NameError{err, name}
	}

	return m, nil
}

func (s *Store) List() ([]Entry, error) {
	rows, err := s.Query("SELECT name, width, crc FROM block_maps ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("store: list: %v", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			entry Entry
			crc   int64
		)
		if err := rows.Scan(&entry.Name, &entry.Width, &crc); err != nil {
			return nil, fmt.Errorf("store: list: %v", err)
		}
		entry.Crc = uint32(crc)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list: %v", err)
	}

	return entries, nil
}

func (s *Store) Delete(name string) error {
	result, err := s.Exec("DELETE FROM block_maps WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("store: delete: %s: %v", name, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete: %s: %v", name, err)
	}

	if n == 0 {
		return &NameError{ErrNotFound, name}
	}

	return nil
}
