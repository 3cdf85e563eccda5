package vault

import (
	"fmt"

	"github.com/nvault/nv/internal/note"
)

// appendSeparator renders the rule inserted between an existing body and
// appended text.
func appendSeparator(ts string) string {
	if len(ts) > 16 {
		ts = ts[:16]
	}
	return fmt.Sprintf("\n\n--- %s ---\n\n", ts)
}

// CreateRequest carries the collaborator-supplied payload for a new note.
type CreateRequest struct {
	Title    string
	Body     string
	Category string
	Tags     []string
	Pinned   bool
}

// Create validates the payload, assigns a fresh id, and appends the note to
// the active collection. An empty category falls back to the configured
// default; a previously unseen category is added to the category set.
func (s *Store) Create(req CreateRequest) (note.Note, error) {
	if err := note.ValidateTitle(req.Title); err != nil {
		return note.Note{}, err
	}

	category := req.Category
	if category == "" {
		category = s.doc.Settings.DefaultCategory
	}

	now := note.FormatTime(s.now())
	n := note.Note{
		ID:        s.doc.NextID(),
		Title:     req.Title,
		Body:      req.Body,
		Category:  category,
		Tags:      append([]string(nil), req.Tags...),
		Pinned:    req.Pinned,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.pushSnapshot(fmt.Sprintf("Create note #%d", n.ID))
	s.doc.EnsureCategory(category)
	s.doc.Notes = append(s.doc.Notes, n)
	s.reindex()
	if err := s.Save(); err != nil {
		return note.Note{}, err
	}
	return n.Clone(), nil
}

// EditRequest carries optional field updates; nil fields are left untouched.
type EditRequest struct {
	Title    *string
	Category *string
	Tags     *[]string
	Body     *string
}

func (e EditRequest) empty() bool {
	return e.Title == nil && e.Category == nil && e.Tags == nil && e.Body == nil
}

// Edit updates fields of an active note and refreshes its updated timestamp.
// A snapshot is pushed before the first change.
func (s *Store) Edit(id int, req EditRequest) (note.Note, error) {
	if req.empty() {
		n, _, err := s.Find(id)
		return n, err
	}

	target, err := s.activeRef(id)
	if err != nil {
		return note.Note{}, err
	}
	if req.Title != nil {
		if err := note.ValidateTitle(*req.Title); err != nil {
			return note.Note{}, err
		}
	}

	s.pushSnapshot(fmt.Sprintf("Edit note #%d", id))
	if req.Title != nil {
		target.Title = *req.Title
	}
	if req.Category != nil {
		target.Category = *req.Category
		s.doc.EnsureCategory(*req.Category)
	}
	if req.Tags != nil {
		target.Tags = append([]string(nil), (*req.Tags)...)
	}
	if req.Body != nil {
		target.Body = *req.Body
	}
	target.UpdatedAt = note.FormatTime(s.now())
	if err := s.Save(); err != nil {
		return note.Note{}, err
	}
	return target.Clone(), nil
}

// Append adds text to the end of an active note's body, separated from any
// existing content by a timestamped rule.
func (s *Store) Append(id int, text string) (note.Note, error) {
	target, err := s.activeRef(id)
	if err != nil {
		return note.Note{}, err
	}

	s.pushSnapshot(fmt.Sprintf("Append to #%d", id))
	ts := note.FormatTime(s.now())
	if target.Body == "" {
		target.Body = text
	} else {
		target.Body += appendSeparator(ts) + text
	}
	target.UpdatedAt = ts
	if err := s.Save(); err != nil {
		return note.Note{}, err
	}
	return target.Clone(), nil
}

// TogglePin flips the pin flag on an active note. Pinning is a display
// priority, not content: it does not touch the updated timestamp and is not
// undoable.
func (s *Store) TogglePin(id int) (note.Note, error) {
	target, err := s.activeRef(id)
	if err != nil {
		return note.Note{}, err
	}
	target.Pinned = !target.Pinned
	if err := s.Save(); err != nil {
		return note.Note{}, err
	}
	return target.Clone(), nil
}

// Duplicate creates a copy of the source note with a fresh id and timestamps.
// The copy always lands in the active collection, unpinned, regardless of
// where the source resides.
func (s *Store) Duplicate(id int) (note.Note, error) {
	src, _, err := s.Find(id)
	if err != nil {
		return note.Note{}, err
	}

	now := note.FormatTime(s.now())
	copied := note.Note{
		ID:        s.doc.NextID(),
		Title:     src.Title + " (copy)",
		Body:      src.Body,
		Category:  src.Category,
		Tags:      append([]string(nil), src.Tags...),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.pushSnapshot(fmt.Sprintf("Duplicate #%d", id))
	s.doc.Notes = append(s.doc.Notes, copied)
	s.reindex()
	if err := s.Save(); err != nil {
		return note.Note{}, err
	}
	return copied.Clone(), nil
}

// Archive moves an active note to the archive collection, stamping the time
// it was archived. Confirmation is the caller's concern.
func (s *Store) Archive(id int) error {
	r, ok := s.index[id]
	if !ok {
		return fmt.Errorf("note #%d: %w", id, ErrNotFound)
	}
	if r.loc != LocationActive {
		return fmt.Errorf("note #%d: %w", id, ErrNotActive)
	}

	s.pushSnapshot(fmt.Sprintf("Archive #%d", id))
	n := s.doc.Notes[r.pos]
	n.ArchivedAt = note.FormatTime(s.now())
	s.doc.Notes = append(s.doc.Notes[:r.pos], s.doc.Notes[r.pos+1:]...)
	s.doc.Archive = append(s.doc.Archive, n)
	s.reindex()
	return s.Save()
}

// Trash moves an active note to the trash collection, stamping the time it
// was trashed. Trashed notes are recoverable until auto-purge.
func (s *Store) Trash(id int) error {
	r, ok := s.index[id]
	if !ok {
		return fmt.Errorf("note #%d: %w", id, ErrNotFound)
	}
	if r.loc != LocationActive {
		return fmt.Errorf("note #%d: %w", id, ErrNotActive)
	}

	s.pushSnapshot(fmt.Sprintf("Trash #%d", id))
	n := s.doc.Notes[r.pos]
	n.TrashedAt = note.FormatTime(s.now())
	s.doc.Notes = append(s.doc.Notes[:r.pos], s.doc.Notes[r.pos+1:]...)
	s.doc.Trash = append(s.doc.Trash, n)
	s.reindex()
	return s.Save()
}

// Unarchive restores an archived note to the end of the active collection
// and clears its archived timestamp.
func (s *Store) Unarchive(id int) error {
	r, ok := s.index[id]
	if !ok || r.loc != LocationArchive {
		return fmt.Errorf("archived note #%d: %w", id, ErrNotFound)
	}

	s.pushSnapshot(fmt.Sprintf("Restore #%d", id))
	n := s.doc.Archive[r.pos]
	n.ArchivedAt = ""
	s.doc.Archive = append(s.doc.Archive[:r.pos], s.doc.Archive[r.pos+1:]...)
	s.doc.Notes = append(s.doc.Notes, n)
	s.reindex()
	return s.Save()
}

// Untrash restores a trashed note to the end of the active collection and
// clears its trashed timestamp.
func (s *Store) Untrash(id int) error {
	r, ok := s.index[id]
	if !ok || r.loc != LocationTrash {
		return fmt.Errorf("trashed note #%d: %w", id, ErrNotFound)
	}

	s.pushSnapshot(fmt.Sprintf("Restore #%d from trash", id))
	n := s.doc.Trash[r.pos]
	n.TrashedAt = ""
	s.doc.Trash = append(s.doc.Trash[:r.pos], s.doc.Trash[r.pos+1:]...)
	s.doc.Notes = append(s.doc.Notes, n)
	s.reindex()
	return s.Save()
}

// EmptyTrash permanently deletes every trashed note. Beyond a single undo
// step the deletion is irreversible, so callers must collect an explicit
// typed confirmation before invoking it.
func (s *Store) EmptyTrash() (int, error) {
	count := len(s.doc.Trash)
	if count == 0 {
		return 0, nil
	}
	s.pushSnapshot(fmt.Sprintf("Empty trash (%d notes)", count))
	s.doc.Trash = []note.Note{}
	s.reindex()
	if err := s.Save(); err != nil {
		return 0, err
	}
	return count, nil
}
