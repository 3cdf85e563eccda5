package new

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/nvault/nv/internal/state"
	"github.com/nvault/nv/internal/vault"
)

func newTestState(t *testing.T) *state.State {
	t.Helper()
	store, err := vault.OpenWithClock(
		filepath.Join(t.TempDir(), "vault.json"),
		func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) },
	)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	return &state.State{Store: store}
}

func TestNewCreatesNote(t *testing.T) {
	s := newTestState(t)

	cmd := NewCmdNew(s)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true

	cmd.SetArgs([]string{"Standup notes", "Discussed the release", "-c", "Work", "-t", "standup,weekly"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	active := s.Store.Active()
	if len(active) != 1 {
		t.Fatalf("got %d active notes, want 1", len(active))
	}
	n := active[0]
	if n.Title != "Standup notes" || n.Category != "Work" {
		t.Fatalf("note = %+v", n)
	}
	if len(n.Tags) != 2 {
		t.Fatalf("tags = %v", n.Tags)
	}
}

func TestNewRejectsBlankTitle(t *testing.T) {
	s := newTestState(t)

	cmd := NewCmdNew(s)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true

	cmd.SetArgs([]string{"   "})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for a blank title")
	}
	if got := len(s.Store.Active()); got != 0 {
		t.Fatalf("blank title created %d notes", got)
	}
}

func TestNewSeedsBodyFromTemplate(t *testing.T) {
	s := newTestState(t)

	cmd := NewCmdNew(s)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true

	cmd.SetArgs([]string{"1:1 with Sam", "--template", "meeting notes"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	active := s.Store.Active()
	if len(active) != 1 {
		t.Fatalf("got %d active notes, want 1", len(active))
	}
	if active[0].Body == "" {
		t.Fatal("template body was not applied")
	}
}

func TestNewUnknownTemplate(t *testing.T) {
	s := newTestState(t)

	cmd := NewCmdNew(s)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SilenceUsage = true

	cmd.SetArgs([]string{"title", "--template", "nope"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for an unknown template")
	}
}
