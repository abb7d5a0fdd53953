// Package schemstore stores schematic files on disk. Names resolve
// leniently on read (exact, then .schem, then .litematic appended);
// saves always land as Sponge .schem files.
package schemstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"voxedit.dev/internal/block"
	"voxedit.dev/internal/schem"
)

var (
	ErrNotFound = errors.New("schematic not found")
	ErrExists   = errors.New("schematic already exists")
)

// Meta describes a stored schematic for index recording.
type Meta struct {
	Name      string
	Format    string // "schem" or "litematic"
	SizeBytes int
	Dims      block.Pos
	SavedAt   time.Time
}

// Recorder observes store mutations. The SQLite index implements it; a
// nil recorder disables indexing.
type Recorder interface {
	RecordSave(m Meta)
	RecordDelete(name string)
}

type Store struct {
	dir string
	rec Recorder
}

func New(dir string, rec Recorder) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, rec: rec}, nil
}

func (s *Store) Dir() string { return s.dir }

// Resolve maps a user-supplied name to an existing file name: exact
// first, then each known extension appended, first match wins.
func (s *Store) Resolve(name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	for _, cand := range []string{name, name + ".schem", name + ".litematic"} {
		if _, err := os.Stat(filepath.Join(s.dir, cand)); err == nil {
			return cand, nil
		}
	}
	return "", fmt.Errorf("%q: %w", name, ErrNotFound)
}

// Load resolves name, reads the file and decodes it.
func (s *Store) Load(name string) (*block.Volume, error) {
	file, err := s.Resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, file))
	if err != nil {
		return nil, err
	}
	vol, err := schem.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return vol, nil
}

// Save encodes vol as Sponge v2 under name (".schem" appended unless
// the name already carries it) and returns the stored file name. An
// existing file fails with ErrExists unless overwrite is set.
func (s *Store) Save(name string, vol *block.Volume, overwrite bool) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	file := name
	if !strings.HasSuffix(file, ".schem") {
		file += ".schem"
	}
	path := filepath.Join(s.dir, file)
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%q: %w", file, ErrExists)
		}
	}
	data, err := schem.EncodeSponge(vol)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	if s.rec != nil {
		w, h, l := vol.Dims()
		s.rec.RecordSave(Meta{
			Name:      file,
			Format:    "schem",
			SizeBytes: len(data),
			Dims:      block.Pos{X: w, Y: h, Z: l},
			SavedAt:   time.Now().UTC(),
		})
	}
	return file, nil
}

// List returns stored schematic file names, sorted. Files without a
// recognized extension are skipped.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".schem", ".litematic":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Delete resolves name and removes the file.
func (s *Store) Delete(name string) error {
	file, err := s.Resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.dir, file)); err != nil {
		return err
	}
	if s.rec != nil {
		s.rec.RecordDelete(file)
	}
	return nil
}

func checkName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("invalid schematic name %q", name)
	}
	return nil
}
