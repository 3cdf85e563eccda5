package vault

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nvault/nv/internal/note"
)

func TestCreateRejectsBlankTitle(t *testing.T) {
	s, _ := newTestStore(t)
	for _, title := range []string{"", "   "} {
		_, err := s.Create(CreateRequest{Title: title})
		if !errors.Is(err, note.ErrEmptyTitle) {
			t.Fatalf("Create(%q) err = %v, want ErrEmptyTitle", title, err)
		}
	}
	if got := len(s.Active()); got != 0 {
		t.Fatalf("failed create mutated the store: %d active notes", got)
	}
	if s.UndoDepth() != 0 {
		t.Fatalf("failed create pushed an undo snapshot")
	}
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	s, _ := newTestStore(t)
	seen := make(map[int]bool)
	for i := 0; i < 5; i++ {
		n := mustCreate(t, s, "note")
		if seen[n.ID] {
			t.Fatalf("id %d assigned twice", n.ID)
		}
		seen[n.ID] = true
	}
	dup, err := s.Duplicate(1)
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if seen[dup.ID] {
		t.Fatalf("duplicate reused id %d", dup.ID)
	}
}

func TestCreateAppendsNewCategory(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.Create(CreateRequest{Title: "t", Category: "Research"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	cats := s.Document().Categories
	if cats[len(cats)-1] != "Research" {
		t.Fatalf("new category not appended to set: %v", cats)
	}

	// Creating again with the same category must not duplicate it.
	if _, err := s.Create(CreateRequest{Title: "t2", Category: "Research"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	count := 0
	for _, c := range s.Document().Categories {
		if c == "Research" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("category appears %d times, want 1", count)
	}
}

func TestCreateUsesDefaultCategory(t *testing.T) {
	s, _ := newTestStore(t)
	n := mustCreate(t, s, "uncategorized")
	if n.Category != "General" {
		t.Fatalf("category = %q, want default General", n.Category)
	}
}

func TestArchiveRestoreRoundTrip(t *testing.T) {
	s, c := newTestStore(t)
	created, err := s.Create(CreateRequest{
		Title:    "Groceries",
		Body:     "milk",
		Category: "General",
		Tags:     []string{"weekly"},
		Pinned:   true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	c.advance(time.Hour)
	if err := s.Archive(created.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}
	archived, loc, err := s.Find(created.ID)
	if err != nil || loc != LocationArchive {
		t.Fatalf("after archive: loc=%v err=%v", loc, err)
	}
	if archived.ArchivedAt == "" {
		t.Fatalf("ArchivedAt not stamped")
	}
	if got := len(s.Active()); got != 0 {
		t.Fatalf("note still active after archive")
	}

	c.advance(time.Hour)
	if err := s.Unarchive(created.ID); err != nil {
		t.Fatalf("unarchive: %v", err)
	}
	restored, loc, err := s.Find(created.ID)
	if err != nil || loc != LocationActive {
		t.Fatalf("after restore: loc=%v err=%v", loc, err)
	}
	if restored.ArchivedAt != "" {
		t.Fatalf("ArchivedAt not cleared on restore")
	}
	// Every other field is identical to the pre-archive note.
	if restored.Title != created.Title ||
		restored.Body != created.Body ||
		restored.Category != created.Category ||
		restored.Pinned != created.Pinned ||
		restored.CreatedAt != created.CreatedAt ||
		restored.UpdatedAt != created.UpdatedAt {
		t.Fatalf("restore changed fields:\n got %+v\nwant %+v", restored, created)
	}
}

func TestTrashRestoreRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	n := mustCreate(t, s, "doomed")
	if err := s.Trash(n.ID); err != nil {
		t.Fatalf("trash: %v", err)
	}
	trashed, loc, err := s.Find(n.ID)
	if err != nil || loc != LocationTrash {
		t.Fatalf("after trash: loc=%v err=%v", loc, err)
	}
	if trashed.TrashedAt == "" {
		t.Fatalf("TrashedAt not stamped")
	}

	if err := s.Untrash(n.ID); err != nil {
		t.Fatalf("untrash: %v", err)
	}
	restored, loc, err := s.Find(n.ID)
	if err != nil || loc != LocationActive {
		t.Fatalf("after untrash: loc=%v err=%v", loc, err)
	}
	if restored.TrashedAt != "" {
		t.Fatalf("TrashedAt not cleared on restore")
	}
}

func TestArchiveRequiresActiveNote(t *testing.T) {
	s, _ := newTestStore(t)
	n := mustCreate(t, s, "note")
	if err := s.Archive(n.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if err := s.Archive(n.ID); !errors.Is(err, ErrNotActive) {
		t.Fatalf("archiving an archived note: err = %v, want ErrNotActive", err)
	}
	if err := s.Trash(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("trashing unknown id: err = %v, want ErrNotFound", err)
	}
}

func TestDuplicate(t *testing.T) {
	s, c := newTestStore(t)
	src, err := s.Create(CreateRequest{
		Title:  "Original",
		Body:   "body",
		Tags:   []string{"a"},
		Pinned: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.Archive(src.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}

	c.advance(time.Minute)
	dup, err := s.Duplicate(src.ID)
	if err != nil {
		t.Fatalf("duplicate: %v", err)
	}
	if dup.Title != "Original (copy)" {
		t.Fatalf("title = %q, want suffixed copy", dup.Title)
	}
	if dup.Pinned {
		t.Fatalf("duplicate must be unpinned")
	}
	if dup.CreatedAt == src.CreatedAt {
		t.Fatalf("duplicate must get fresh timestamps")
	}
	_, loc, err := s.Find(dup.ID)
	if err != nil || loc != LocationActive {
		t.Fatalf("duplicate of archived source must land active, loc=%v err=%v", loc, err)
	}
}

func TestAppend(t *testing.T) {
	s, c := newTestStore(t)
	n := mustCreate(t, s, "log")

	// First append to an empty body takes the text verbatim.
	got, err := s.Append(n.ID, "first entry")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if got.Body != "first entry" {
		t.Fatalf("body = %q, want text without separator", got.Body)
	}

	c.advance(time.Hour)
	got, err = s.Append(n.ID, "second entry")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if !strings.HasPrefix(got.Body, "first entry\n\n--- ") {
		t.Fatalf("separator missing: %q", got.Body)
	}
	if !strings.HasSuffix(got.Body, "---\n\nsecond entry") {
		t.Fatalf("appended text missing: %q", got.Body)
	}
	if got.UpdatedAt == n.UpdatedAt {
		t.Fatalf("append did not refresh UpdatedAt")
	}
}

func TestEditRefreshesUpdatedAt(t *testing.T) {
	s, c := newTestStore(t)
	n := mustCreate(t, s, "before")

	c.advance(time.Hour)
	title := "after"
	category := "NewCat"
	got, err := s.Edit(n.ID, EditRequest{Title: &title, Category: &category})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got.Title != "after" || got.Category != "NewCat" {
		t.Fatalf("edit did not apply fields: %+v", got)
	}
	if got.UpdatedAt == n.UpdatedAt {
		t.Fatalf("edit did not refresh UpdatedAt")
	}
	found := false
	for _, cat := range s.Document().Categories {
		if cat == "NewCat" {
			found = true
		}
	}
	if !found {
		t.Fatalf("edit did not register the new category")
	}

	blank := "  "
	if _, err := s.Edit(n.ID, EditRequest{Title: &blank}); !errors.Is(err, note.ErrEmptyTitle) {
		t.Fatalf("blank title edit err = %v, want ErrEmptyTitle", err)
	}
}

func TestTogglePin(t *testing.T) {
	s, _ := newTestStore(t)
	n := mustCreate(t, s, "pinme")
	got, err := s.TogglePin(n.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !got.Pinned {
		t.Fatalf("expected pinned after toggle")
	}
	if got.UpdatedAt != n.UpdatedAt {
		t.Fatalf("pin toggle must not touch UpdatedAt")
	}
	if s.UndoDepth() != 1 {
		// Only the create snapshot exists; pin toggles are not undoable.
		t.Fatalf("pin toggle pushed an undo snapshot, depth = %d", s.UndoDepth())
	}
	got, err = s.TogglePin(n.ID)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if got.Pinned {
		t.Fatalf("expected unpinned after second toggle")
	}
}

func TestEmptyTrash(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustCreate(t, s, "one")
	b := mustCreate(t, s, "two")
	if err := s.Trash(a.ID); err != nil {
		t.Fatalf("trash: %v", err)
	}
	if err := s.Trash(b.ID); err != nil {
		t.Fatalf("trash: %v", err)
	}

	count, err := s.EmptyTrash()
	if err != nil {
		t.Fatalf("empty trash: %v", err)
	}
	if count != 2 {
		t.Fatalf("purged %d, want 2", count)
	}
	if got := len(s.Trashed()); got != 0 {
		t.Fatalf("trash not empty: %d", got)
	}

	// An empty trash is a no-op that pushes nothing.
	depth := s.UndoDepth()
	count, err = s.EmptyTrash()
	if err != nil || count != 0 {
		t.Fatalf("empty of empty trash: count=%d err=%v", count, err)
	}
	if s.UndoDepth() != depth {
		t.Fatalf("no-op empty trash pushed a snapshot")
	}
}
