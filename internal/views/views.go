// Package views implements the named sort strategies and the category and
// date-range filters used for browsing and export. Sorting and filtering
// operate on copies and never mutate the source collection.
package views

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/nvault/nv/internal/note"
)

// SortMode names one of the browsing orders. Except where the mode table
// says otherwise, pinned notes sort ahead of unpinned ones; each mode orders
// within its pin tier, so reversing a mode never reverses pin priority.
type SortMode string

const (
	SortRecent   SortMode = "recent"   // updatedAt (fallback createdAt) descending
	SortOldest   SortMode = "oldest"   // createdAt ascending
	SortAlpha    SortMode = "alpha"    // title ascending, case-insensitive
	SortAlphaRev SortMode = "alpha_r"  // title descending, case-insensitive
	SortWords    SortMode = "words"    // body word count descending
	SortCategory SortMode = "category" // category ascending, then recency ascending
)

var sortModes = []SortMode{SortRecent, SortOldest, SortAlpha, SortAlphaRev, SortWords, SortCategory}

// ParseSortMode validates a user-supplied mode name.
func ParseSortMode(raw string) (SortMode, error) {
	mode := SortMode(strings.ToLower(strings.TrimSpace(raw)))
	for _, m := range sortModes {
		if mode == m {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid sort mode %q (valid: %s)", raw, SortModeNames())
}

// SortModeNames returns the comma-separated list of valid mode names.
func SortModeNames() string {
	names := make([]string, len(sortModes))
	for i, m := range sortModes {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// recency is the timestamp used by recency-aware modes.
func recency(n note.Note) string {
	if n.UpdatedAt != "" {
		return n.UpdatedAt
	}
	return n.CreatedAt
}

// Sort returns a sorted copy of notes in the order named by mode, pinned
// notes first. The sort is stable so equal notes keep encounter order.
func Sort(notes []note.Note, mode SortMode) []note.Note {
	sorted := note.CloneAll(notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Pinned != b.Pinned {
			return a.Pinned
		}
		switch mode {
		case SortOldest:
			return a.CreatedAt < b.CreatedAt
		case SortAlpha:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case SortAlphaRev:
			return strings.ToLower(a.Title) > strings.ToLower(b.Title)
		case SortWords:
			return a.WordCount() > b.WordCount()
		case SortCategory:
			ac, bc := strings.ToLower(a.Category), strings.ToLower(b.Category)
			if ac != bc {
				return ac < bc
			}
			return recency(a) < recency(b)
		default: // SortRecent
			return recency(a) > recency(b)
		}
	})
	return sorted
}

// FilterCategory keeps notes whose category equals the filter,
// case-insensitively. An empty filter keeps everything.
func FilterCategory(notes []note.Note, category string) []note.Note {
	if category == "" {
		return note.CloneAll(notes)
	}
	var filtered []note.Note
	for _, n := range notes {
		if strings.EqualFold(n.Category, category) {
			filtered = append(filtered, n.Clone())
		}
	}
	return filtered
}

// DateRange bounds an inclusive created-date window. A nil bound is open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Empty reports whether the range has no bounds and filtering is a no-op.
func (r DateRange) Empty() bool {
	return r.Start == nil && r.End == nil
}

// ParseDateBound parses a user-supplied date bound leniently.
func ParseDateBound(raw string) (time.Time, error) {
	t, err := dateparse.ParseAny(strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FilterDateRange keeps notes whose created date (date portion only) falls
// within the inclusive range. When a bound is active, notes with missing or
// unparsable created dates are excluded.
func FilterDateRange(notes []note.Note, r DateRange) []note.Note {
	if r.Empty() {
		return note.CloneAll(notes)
	}
	var filtered []note.Note
	for _, n := range notes {
		if len(n.CreatedAt) < 10 {
			continue
		}
		created, err := time.Parse("2006-01-02", n.CreatedAt[:10])
		if err != nil {
			continue
		}
		if r.Start != nil && created.Before(*r.Start) {
			continue
		}
		if r.End != nil && created.After(*r.End) {
			continue
		}
		filtered = append(filtered, n.Clone())
	}
	return filtered
}
