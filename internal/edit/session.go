// Package edit implements the region-editing engine: selections,
// region operations, clipboard, single-slot undo, and the per-player
// session registry. World access goes through the Reader/Writer
// accessor pair; planning runs anywhere, applying is serialized onto
// the host's writer.
package edit

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"voxedit.dev/internal/block"
)

// Session is one player's editing state: a selection, an optional
// clipboard, and an optional undo slot. Sessions serialize their own
// commands; distinct sessions only contend at the Applier.
type Session struct {
	id    uuid.UUID
	audit AuditSink

	mu   sync.Mutex
	sel  Selection
	clip *Clipboard
	undo *block.Volume
}

func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) SetPos1(p block.Pos) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.SetPos1(p)
}

func (s *Session) SetPos2(p block.Pos) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.SetPos2(p)
}

// Size reports the selection's per-axis extent.
func (s *Session) Size() (block.Pos, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.Dims()
}

// HasUndo reports whether an undo snapshot is pending.
func (s *Session) HasUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.undo != nil
}

// AuditEntry describes one applied operation and the footprint it
// touched.
type AuditEntry struct {
	Time   time.Time `json:"time"`
	Player string    `json:"player"`
	Op     string    `json:"op"`
	Cells  int       `json:"cells"`
	Origin [3]int    `json:"origin"`
	Dims   [3]int    `json:"dims"`
}

// AuditSink receives an entry after each applied batch. Record must not
// block the writer for long; sinks buffer internally.
type AuditSink interface {
	Record(e AuditEntry)
}

// Registry maps player identities to sessions, creating each on first
// use. Eviction on disconnect is not an error; a later command from the
// same identity simply starts fresh.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	audit    AuditSink
}

func NewRegistry(audit AuditSink) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
		audit:    audit,
	}
}

// Session returns the player's session, creating it if absent.
func (r *Registry) Session(id uuid.UUID) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		s = &Session{id: id, audit: r.audit}
		r.sessions[id] = s
	}
	return s
}

// Evict drops the player's session and all its state.
func (r *Registry) Evict(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
