package vault

import (
	"sort"

	"github.com/nvault/nv/internal/note"
)

// CountEntry pairs a histogram label with its count.
type CountEntry struct {
	Label string
	Count int
}

// Stats is a read-only aggregation over the three collections. Word, char,
// and histogram figures cover active and archived notes; trash contributes
// only its size.
type Stats struct {
	Active       int
	Archived     int
	Trashed      int
	TotalWritten int
	Words        int
	Chars        int
	Pinned       int
	Categories   []CountEntry
	Tags         []CountEntry
	Months       []CountEntry
}

const (
	statsTagLimit   = 15
	statsMonthLimit = 12
)

// Stats computes usage statistics for the current document.
func (s *Store) Stats() Stats {
	written := make([]note.Note, 0, len(s.doc.Notes)+len(s.doc.Archive))
	written = append(written, s.doc.Notes...)
	written = append(written, s.doc.Archive...)

	st := Stats{
		Active:       len(s.doc.Notes),
		Archived:     len(s.doc.Archive),
		Trashed:      len(s.doc.Trash),
		TotalWritten: len(written),
	}

	categories := make(map[string]int)
	tags := make(map[string]int)
	months := make(map[string]int)
	for _, n := range written {
		st.Words += n.WordCount()
		st.Chars += n.CharCount()
		cat := n.Category
		if cat == "" {
			cat = "Uncategorized"
		}
		categories[cat]++
		for _, tag := range n.Tags {
			tags[tag]++
		}
		if len(n.CreatedAt) >= 7 {
			months[n.CreatedAt[:7]]++
		}
	}
	for _, n := range s.doc.Notes {
		if n.Pinned {
			st.Pinned++
		}
	}

	st.Categories = sortedByCount(categories, 0)
	st.Tags = sortedByCount(tags, statsTagLimit)
	st.Months = recentMonths(months, statsMonthLimit)
	return st
}

// sortedByCount orders entries by descending count, breaking ties on label
// so output is deterministic. A limit of 0 keeps everything.
func sortedByCount(counts map[string]int, limit int) []CountEntry {
	entries := make([]CountEntry, 0, len(counts))
	for label, count := range counts {
		entries = append(entries, CountEntry{Label: label, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Label < entries[j].Label
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// recentMonths orders month buckets newest first.
func recentMonths(counts map[string]int, limit int) []CountEntry {
	entries := make([]CountEntry, 0, len(counts))
	for label, count := range counts {
		entries = append(entries, CountEntry{Label: label, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Label > entries[j].Label
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
