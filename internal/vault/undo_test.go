package vault

import (
	"fmt"
	"testing"
)

func TestUndoRevertsLastOperation(t *testing.T) {
	s, _ := newTestStore(t)
	n := mustCreate(t, s, "keep")
	if err := s.Archive(n.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}

	desc, undone, err := s.Undo()
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if !undone {
		t.Fatalf("expected an undoable operation")
	}
	if desc != fmt.Sprintf("Archive #%d", n.ID) {
		t.Fatalf("description = %q", desc)
	}
	_, loc, err := s.Find(n.ID)
	if err != nil || loc != LocationActive {
		t.Fatalf("undo did not return note to active: loc=%v err=%v", loc, err)
	}
}

func TestUndoOnEmptyStackIsBenign(t *testing.T) {
	s, _ := newTestStore(t)
	mustCreate(t, s, "survivor")
	for s.UndoDepth() > 0 {
		if _, _, err := s.Undo(); err != nil {
			t.Fatalf("undo: %v", err)
		}
	}

	before := len(s.Active())
	desc, undone, err := s.Undo()
	if err != nil {
		t.Fatalf("undo on empty stack: %v", err)
	}
	if undone || desc != "" {
		t.Fatalf("expected benign no-op, got undone=%v desc=%q", undone, desc)
	}
	if len(s.Active()) != before {
		t.Fatalf("no-op undo mutated collections")
	}
}

func TestUndoStackBound(t *testing.T) {
	s, _ := newTestStore(t)
	// 15 mutating operations; only the 10 most recent snapshots survive.
	for i := 0; i < 15; i++ {
		mustCreate(t, s, fmt.Sprintf("note %d", i))
	}
	if s.UndoDepth() != maxUndo {
		t.Fatalf("undo depth = %d, want %d", s.UndoDepth(), maxUndo)
	}

	for i := 0; i < maxUndo; i++ {
		if _, undone, err := s.Undo(); err != nil || !undone {
			t.Fatalf("undo %d: undone=%v err=%v", i, undone, err)
		}
	}
	// Ten undos roll back exactly to the state before the 10th-from-last
	// operation: the first five creates remain.
	if got := len(s.Active()); got != 5 {
		t.Fatalf("after 10 undos %d notes remain, want 5", got)
	}
	if s.UndoDepth() != 0 {
		t.Fatalf("undo depth = %d after draining, want 0", s.UndoDepth())
	}
}

func TestUndoSnapshotsAreIsolated(t *testing.T) {
	s, _ := newTestStore(t)
	n := mustCreate(t, s, "original tags")
	tags := []string{"mutated"}
	if _, err := s.Edit(n.ID, EditRequest{Tags: &tags}); err != nil {
		t.Fatalf("edit: %v", err)
	}

	// Undo the edit; the restored note must have the pre-edit tags even
	// though the live note's tag slice was rewritten in place.
	if _, _, err := s.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	got, _, err := s.Find(n.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got.Tags) != 0 {
		t.Fatalf("snapshot not isolated, tags = %v", got.Tags)
	}
}

func TestUndoChainRestoresInitialState(t *testing.T) {
	s, _ := newTestStore(t)

	n, err := s.Create(CreateRequest{Title: "Groceries", Category: "General"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Archive(n.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if err := s.Unarchive(n.ID); err != nil {
		t.Fatalf("restore: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, undone, err := s.Undo(); err != nil || !undone {
			t.Fatalf("undo %d: undone=%v err=%v", i+1, undone, err)
		}
	}

	if got := len(s.Active()); got != 0 {
		t.Fatalf("active collection not empty after full undo: %d", got)
	}
	if got := len(s.Archived()); got != 0 {
		t.Fatalf("archive not empty after full undo: %d", got)
	}
	if s.UndoDepth() != 0 {
		t.Fatalf("undo stack not empty: %d", s.UndoDepth())
	}
}
