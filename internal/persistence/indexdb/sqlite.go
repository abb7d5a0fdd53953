// Package indexdb keeps a SQLite secondary index of saved schematics.
// The schematic files themselves are the source of truth; the index
// only serves listing and lookup, so writes are asynchronous and may be
// dropped under backpressure.
package indexdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"

	"voxedit.dev/internal/block"
	"voxedit.dev/internal/catalogs"
	"voxedit.dev/internal/persistence/schemstore"
)

type SQLiteIndex struct {
	db *sql.DB

	ch   chan req
	wg   sync.WaitGroup
	once sync.Once

	closed atomic.Bool
}

type reqKind int

const (
	reqSave reqKind = iota + 1
	reqDelete
)

type req struct {
	kind reqKind
	save schemstore.Meta
	name string
}

// Entry is one indexed schematic.
type Entry struct {
	Name      string
	Format    string
	SizeBytes int
	Dims      block.Pos
	SavedAt   time.Time
}

func OpenSQLite(path string) (*SQLiteIndex, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &SQLiteIndex{
		db: db,
		ch: make(chan req, 4096),
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop()
	}()
	return s, nil
}

func initPragmas(db *sql.DB) error {
	// WAL is much faster for append-style workloads.
	// NORMAL is a decent durability/perf tradeoff for a secondary index.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS catalogs (
			name TEXT PRIMARY KEY,
			digest TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS schematics (
			name TEXT PRIMARY KEY,
			format TEXT NOT NULL,
			size_bytes INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			length INTEGER NOT NULL,
			saved_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_schematics_saved_at ON schematics(saved_at);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Close drains queued writes, commits and closes the database.
func (s *SQLiteIndex) Close() error {
	var err error
	s.once.Do(func() {
		s.closed.Store(true)
		close(s.ch)
		s.wg.Wait()
		err = s.db.Close()
	})
	return err
}

// RecordSave queues an index row for a saved schematic. Drops if the
// indexer falls behind; the store's files remain the source of truth.
func (s *SQLiteIndex) RecordSave(m schemstore.Meta) {
	if s == nil || s.closed.Load() {
		return
	}
	select {
	case s.ch <- req{kind: reqSave, save: m}:
	default:
	}
}

// RecordDelete queues removal of an index row.
func (s *SQLiteIndex) RecordDelete(name string) {
	if s == nil || s.closed.Load() {
		return
	}
	select {
	case s.ch <- req{kind: reqDelete, name: name}:
	default:
	}
}

// UpsertCatalog stores the active block catalog's digest so an operator
// can tell which palette produced the indexed saves.
func (s *SQLiteIndex) UpsertCatalog(cat *catalogs.BlockCatalog) error {
	if s == nil {
		return nil
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := s.db.Exec(`INSERT OR REPLACE INTO meta(key,value) VALUES('schema_version','1')`); err != nil {
		return err
	}
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO catalogs(name,digest,updated_at) VALUES('blocks_palette',?,?)`,
		cat.PaletteDigest, now)
	return err
}

// Recent returns up to limit entries, newest save first.
func (s *SQLiteIndex) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT name, format, size_bytes, width, height, length, saved_at
		 FROM schematics ORDER BY saved_at DESC, name LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var savedAt string
		if err := rows.Scan(&e.Name, &e.Format, &e.SizeBytes,
			&e.Dims.X, &e.Dims.Y, &e.Dims.Z, &savedAt); err != nil {
			return nil, err
		}
		e.SavedAt, _ = time.Parse(time.RFC3339Nano, savedAt)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLiteIndex) loop() {
	insertSave, _ := s.db.Prepare(
		`INSERT OR REPLACE INTO schematics(name,format,size_bytes,width,height,length,saved_at)
		 VALUES(?,?,?,?,?,?,?)`)
	deleteRow, _ := s.db.Prepare(`DELETE FROM schematics WHERE name = ?`)
	defer func() {
		if insertSave != nil {
			_ = insertSave.Close()
		}
		if deleteRow != nil {
			_ = deleteRow.Close()
		}
	}()

	for r := range s.ch {
		switch r.kind {
		case reqSave:
			if insertSave == nil {
				continue
			}
			m := r.save
			_, _ = insertSave.Exec(
				m.Name, m.Format, m.SizeBytes,
				m.Dims.X, m.Dims.Y, m.Dims.Z,
				m.SavedAt.Format(time.RFC3339Nano))
		case reqDelete:
			if deleteRow == nil {
				continue
			}
			_, _ = deleteRow.Exec(r.name)
		}
	}
}
