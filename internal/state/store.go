package state

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/five82/facet/internal/backend"
	"github.com/five82/facet/internal/protocol"
	"github.com/five82/facet/internal/style"
)

// MaxEntries bounds the activity log kept in a snapshot.
const MaxEntries = 200

// EntryKind classifies activity log lines.
type EntryKind int

const (
	EntryText EntryKind = iota
	EntryAction
	EntryResult
	EntryWarning
	EntrySudo
)

func (k EntryKind) String() string {
	switch k {
	case EntryText:
		return "text"
	case EntryAction:
		return "action"
	case EntryResult:
		return "result"
	case EntryWarning:
		return "warning"
	case EntrySudo:
		return "sudo"
	default:
		return "unknown"
	}
}

// Entry is one line of the activity log.
type Entry struct {
	At   time.Time
	Kind EntryKind
	Text string
}

// Pending is a protected action waiting for human approval.
type Pending struct {
	Action protocol.Action
	Reason string
	At     time.Time
}

// Snapshot represents the application state shown by every surface.
type Snapshot struct {
	Page          protocol.Page
	ThemeKind     style.ThemeKind
	Tone          style.Tone
	Mode          style.RenderMode
	ButtonVariant style.Variant
	ButtonIntent  style.Intent
	// Transforms holds spatial placements keyed by target tag.
	Transforms map[string]backend.Transform

	Pending    Pending
	HasPending bool

	Entries []Entry

	Revision            uint64
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// Defaults is the state a fresh session starts from.
func Defaults() Snapshot {
	return Snapshot{
		Page:      protocol.PageLanding,
		ThemeKind: style.ThemePeak,
		Tone:      style.ToneDark,
		Mode:      style.ModeTerminal,
	}
}

// Tokens returns the theme tokens for the current theme kind and tone.
func (s Snapshot) Tokens() style.Tokens {
	return style.Theme(s.ThemeKind, s.Tone)
}

// TransformFor returns the placement for target, or the identity.
func (s Snapshot) TransformFor(target string) backend.Transform {
	if t, ok := s.Transforms[target]; ok {
		return t
	}
	return backend.Identity()
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	seeded   bool
}

// NewStore returns a store seeded with initial.
func NewStore(initial Snapshot) *Store {
	s := &Store{snapshot: clone(initial), seeded: true}
	return s
}

func (s *Store) ensureSeeded() {
	if !s.seeded {
		s.snapshot = Defaults()
		s.seeded = true
	}
}

// Update applies fn to the stored snapshot under the write lock and bumps the
// revision. fn must not retain the pointer.
func (s *Store) Update(fn func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureSeeded()

	fn(&s.snapshot)
	s.trim()
	s.snapshot.Revision++
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Fail records err. The previous data is kept.
func (s *Store) Fail(err error) {
	if err == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureSeeded()

	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures++
	s.snapshot.Revision++
}

// Log appends an activity entry.
func (s *Store) Log(kind EntryKind, text string) {
	s.Update(func(snap *Snapshot) {
		snap.Entries = append(snap.Entries, Entry{At: time.Now(), Kind: kind, Text: text})
	})
}

// Revision returns the current revision without copying the snapshot.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Revision
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	if !s.seeded {
		s.mu.RUnlock()
		s.mu.Lock()
		s.ensureSeeded()
		s.mu.Unlock()
		s.mu.RLock()
	}
	defer s.mu.RUnlock()

	snap := clone(s.snapshot)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func (s *Store) trim() {
	if n := len(s.snapshot.Entries); n > MaxEntries {
		s.snapshot.Entries = slices.Clone(s.snapshot.Entries[n-MaxEntries:])
	}
}

func clone(s Snapshot) Snapshot {
	out := s
	out.Transforms = maps.Clone(s.Transforms)
	out.Entries = slices.Clone(s.Entries)
	return out
}
