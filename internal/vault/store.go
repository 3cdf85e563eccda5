package vault

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nvault/nv/internal/note"
)

var (
	// ErrNotFound is returned when an id lookup yields nothing.
	ErrNotFound = errors.New("note not found")
	// ErrNotActive is returned when an operation requires the note to be in
	// the active collection.
	ErrNotActive = errors.New("note is not in the active collection")
)

// Location identifies which collection currently holds a note.
type Location int

const (
	LocationActive Location = iota
	LocationArchive
	LocationTrash
)

func (l Location) String() string {
	switch l {
	case LocationActive:
		return "active"
	case LocationArchive:
		return "archive"
	case LocationTrash:
		return "trash"
	default:
		return "unknown"
	}
}

type ref struct {
	loc Location
	pos int
}

// Store owns the persisted document and provides the lifecycle, undo, and
// query operations over it. Every mutating operation writes the full
// document back to disk before returning. The store assumes exclusive
// single-process access to the file; it performs no locking.
type Store struct {
	path  string
	now   func() time.Time
	doc   *Document
	index map[int]ref
}

// Open loads the document at path, falling back to the default document when
// the file is missing or unparsable, and purges expired trash entries.
func Open(path string) (*Store, error) {
	return OpenWithClock(path, time.Now)
}

// OpenWithClock is Open with an injectable wall-clock source, so stores can
// be driven at fixed times in tests.
func OpenWithClock(path string, now func() time.Time) (*Store, error) {
	s := &Store{path: path, now: now}
	s.doc = loadDocument(path)
	s.reindex()

	if purged := s.autoPurgeTrash(); purged > 0 {
		if err := s.Save(); err != nil {
			return nil, fmt.Errorf("persist purged trash: %w", err)
		}
	}
	return s, nil
}

// loadDocument reads and parses the document. A missing or corrupt file
// yields the default document rather than an error: availability is chosen
// over surfacing unreadable storage.
func loadDocument(path string) *Document {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultDocument()
	}
	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return DefaultDocument()
	}
	return doc
}

// Save writes the full document to disk, creating the parent directory if
// needed. There are no partial or append writes.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// Path returns the on-disk location of the document.
func (s *Store) Path() string {
	return s.path
}

// Now returns the store's current wall-clock reading.
func (s *Store) Now() time.Time {
	return s.now()
}

// Document exposes the live document for read-only queries. Callers must not
// mutate it; all mutations go through store methods so snapshots and saves
// stay consistent.
func (s *Store) Document() *Document {
	return s.doc
}

func (s *Store) Settings() Settings {
	return s.doc.Settings
}

// Active, Archived, and Trashed return deep copies of the collections so
// search and sorting operate on snapshots that cannot mutate the store.
func (s *Store) Active() []note.Note {
	return note.CloneAll(s.doc.Notes)
}

func (s *Store) Archived() []note.Note {
	return note.CloneAll(s.doc.Archive)
}

func (s *Store) Trashed() []note.Note {
	return note.CloneAll(s.doc.Trash)
}

// reindex rebuilds the id lookup table. Called after load, undo, and any
// operation that changes collection membership.
func (s *Store) reindex() {
	s.index = make(map[int]ref, len(s.doc.Notes)+len(s.doc.Archive)+len(s.doc.Trash))
	// Trash first, active last: lookups resolve in active, archive, trash
	// order when an id somehow appears twice.
	for i, n := range s.doc.Trash {
		s.index[n.ID] = ref{loc: LocationTrash, pos: i}
	}
	for i, n := range s.doc.Archive {
		s.index[n.ID] = ref{loc: LocationArchive, pos: i}
	}
	for i, n := range s.doc.Notes {
		s.index[n.ID] = ref{loc: LocationActive, pos: i}
	}
}

// Find locates a note by id across all three collections and returns a copy
// together with the collection holding it.
func (s *Store) Find(id int) (note.Note, Location, error) {
	r, ok := s.index[id]
	if !ok {
		return note.Note{}, 0, fmt.Errorf("note #%d: %w", id, ErrNotFound)
	}
	switch r.loc {
	case LocationActive:
		return s.doc.Notes[r.pos].Clone(), r.loc, nil
	case LocationArchive:
		return s.doc.Archive[r.pos].Clone(), r.loc, nil
	default:
		return s.doc.Trash[r.pos].Clone(), r.loc, nil
	}
}

// activeRef returns a pointer into the active collection for in-place field
// edits that do not change membership.
func (s *Store) activeRef(id int) (*note.Note, error) {
	r, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("note #%d: %w", id, ErrNotFound)
	}
	if r.loc != LocationActive {
		return nil, fmt.Errorf("note #%d: %w", id, ErrNotActive)
	}
	return &s.doc.Notes[r.pos], nil
}

// UpdateSettings applies fn to the settings block and persists the document.
// Settings changes are not undoable; snapshots cover only the collections.
func (s *Store) UpdateSettings(fn func(*Settings)) error {
	fn(&s.doc.Settings)
	return s.Save()
}

// autoPurgeTrash removes trashed notes older than the configured retention
// window. Purging is unconditional and does not push an undo snapshot.
func (s *Store) autoPurgeTrash() int {
	days := s.doc.Settings.TrashDays
	cutoff := note.FormatTime(s.now().AddDate(0, 0, -days))
	kept := s.doc.Trash[:0]
	for _, n := range s.doc.Trash {
		// Lexicographic comparison matches chronological order for the
		// persisted layout; missing or malformed timestamps are purged.
		if n.TrashedAt > cutoff {
			kept = append(kept, n)
		}
	}
	purged := len(s.doc.Trash) - len(kept)
	s.doc.Trash = kept
	if purged > 0 {
		s.reindex()
	}
	return purged
}
