// Package note provides the note model shared by the vault store and the
// search and browsing pipelines.
package note

import (
	"errors"
	"strings"
	"time"
)

// TimeLayout is the second-precision timestamp format notes are persisted
// with. The string form sorts lexicographically in chronological order.
const TimeLayout = "2006-01-02T15:04:05"

var ErrEmptyTitle = errors.New("note title cannot be empty")

// Note is the fundamental entity. A note lives in exactly one of the three
// vault collections (active, archive, trash) at any time; ArchivedAt and
// TrashedAt are set only while the note resides in that collection.
type Note struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	Pinned     bool     `json:"pinned"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
	ArchivedAt string   `json:"archived_at,omitempty"`
	TrashedAt  string   `json:"trashed_at,omitempty"`
}

// FormatTime renders t in the persisted timestamp layout.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseTime parses a persisted timestamp.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

// ValidateTitle rejects blank or whitespace-only titles.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// ParseTags splits a comma-separated tag string, trimming whitespace and
// dropping empty tokens. Tags are deduplicated case-insensitively with the
// first-seen casing preserved.
func ParseTags(raw string) []string {
	var tags []string
	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// FormatTags renders tags as a comma-separated list.
func FormatTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// Clone returns a deep copy of the note.
func (n Note) Clone() Note {
	copied := n
	if n.Tags != nil {
		copied.Tags = append([]string(nil), n.Tags...)
	}
	return copied
}

// CloneAll returns a deep copy of a note slice. The result is never nil so
// snapshots and persisted collections serialize as empty arrays.
func CloneAll(notes []Note) []Note {
	copied := make([]Note, len(notes))
	for i, n := range notes {
		copied[i] = n.Clone()
	}
	return copied
}

// WordCount reports the number of whitespace-separated words in the body.
func (n Note) WordCount() int {
	return len(strings.Fields(n.Body))
}

// CharCount reports the body length in bytes.
func (n Note) CharCount() int {
	return len(n.Body)
}

// Touched reports whether the note has been edited since creation.
func (n Note) Touched() bool {
	return n.UpdatedAt != "" && n.UpdatedAt != n.CreatedAt
}
