package vault

import "github.com/nvault/nv/internal/note"

// maxUndo bounds the snapshot stack; pushing past it evicts the oldest entry.
const maxUndo = 10

// pushSnapshot deep-copies the three collections onto the undo stack. Every
// operation that changes collection membership or note content calls this
// immediately before mutating, so an undo always reverts to the
// immediately-prior observable state.
func (s *Store) pushSnapshot(description string) {
	snap := Snapshot{
		Description: description,
		TakenAt:     note.FormatTime(s.now()),
		Notes:       note.CloneAll(s.doc.Notes),
		Archive:     note.CloneAll(s.doc.Archive),
		Trash:       note.CloneAll(s.doc.Trash),
	}
	s.doc.UndoStack = append(s.doc.UndoStack, snap)
	if len(s.doc.UndoStack) > maxUndo {
		s.doc.UndoStack = s.doc.UndoStack[len(s.doc.UndoStack)-maxUndo:]
	}
}

// Undo pops the most recent snapshot, replaces the three live collections
// with its contents, and persists. An empty stack is a benign no-op reported
// through the second return value, not an error. There is no redo.
func (s *Store) Undo() (string, bool, error) {
	stack := s.doc.UndoStack
	if len(stack) == 0 {
		return "", false, nil
	}
	snap := stack[len(stack)-1]
	s.doc.UndoStack = stack[:len(stack)-1]
	s.doc.Notes = snap.Notes
	s.doc.Archive = snap.Archive
	s.doc.Trash = snap.Trash
	s.reindex()
	if err := s.Save(); err != nil {
		return "", false, err
	}
	return snap.Description, true, nil
}

// UndoDepth reports how many operations can currently be undone.
func (s *Store) UndoDepth() int {
	return len(s.doc.UndoStack)
}
