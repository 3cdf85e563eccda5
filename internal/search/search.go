// Package search implements the multi-keyword relevance search over active
// and archived notes: tokenization, AND matching, occurrence scoring with a
// title bonus, and the span selection used for highlighting.
package search

import (
	"sort"
	"strings"

	"github.com/nvault/nv/internal/note"
)

const (
	// DisplayLimit caps how many ranked results are returned for display;
	// the full match count is still reported.
	DisplayLimit = 20
	// titleBonus is added when every keyword also appears in the title.
	titleBonus = 10
	// snippetContext is the number of bytes of body kept on each side of the
	// first keyword occurrence.
	snippetContext = 30
)

const ellipsis = "…"

// Span marks a half-open byte range [Start, End) to be highlighted.
type Span struct {
	Start int
	End   int
}

// FieldMatch reports that one of the labeled note fields contains at least
// one keyword, with the occurrences marked for highlighting.
type FieldMatch struct {
	Field string
	Text  string
	Spans []Span
}

// Snippet is a body excerpt around the first keyword occurrence. Truncation
// at either edge is marked with an ellipsis inside Text; Spans are relative
// to Text.
type Snippet struct {
	Text  string
	Spans []Span
}

// Result is one ranked match.
type Result struct {
	Note     note.Note
	Score    int
	Archived bool
	Fields   []FieldMatch
	Snippet  *Snippet
}

// Results is the outcome of a search: every match counted, the top ranked
// slice prepared for display.
type Results struct {
	Keywords []string
	Total    int
	Ranked   []Result
}

// Tokenize lowercases the query and splits it into whitespace-separated
// keywords. An empty result means there is nothing to search for.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// haystack is the concatenated lowercase searchable text of a note.
func haystack(n note.Note) string {
	parts := []string{n.Title, n.Body, n.Category, strings.Join(n.Tags, " ")}
	return strings.ToLower(strings.Join(parts, " "))
}

// Search ranks the union of active and archived notes against the query.
// A note matches only if every keyword is a case-insensitive substring of
// its haystack. Trashed notes are never searched.
func Search(active, archived []note.Note, query string) Results {
	keywords := Tokenize(query)
	res := Results{Keywords: keywords}
	if len(keywords) == 0 {
		return res
	}

	candidates := make([]Result, 0)
	scan := func(notes []note.Note, archivedSet bool) {
		for _, n := range notes {
			hay := haystack(n)
			if !containsAll(hay, keywords) {
				continue
			}
			score := 0
			for _, kw := range keywords {
				score += strings.Count(hay, kw)
			}
			if containsAll(strings.ToLower(n.Title), keywords) {
				score += titleBonus
			}
			candidates = append(candidates, Result{
				Note:     n.Clone(),
				Score:    score,
				Archived: archivedSet,
			})
		}
	}
	scan(active, false)
	scan(archived, true)

	// Stable sort keeps encounter order for equal scores, so ranking is
	// deterministic.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	res.Total = len(candidates)
	if len(candidates) > DisplayLimit {
		candidates = candidates[:DisplayLimit]
	}
	for i := range candidates {
		annotate(&candidates[i], keywords)
	}
	res.Ranked = candidates
	return res
}

func containsAll(text string, keywords []string) bool {
	for _, kw := range keywords {
		if !strings.Contains(text, kw) {
			return false
		}
	}
	return true
}

// annotate fills in the per-field matches and the body snippet for a result
// that will be displayed.
func annotate(r *Result, keywords []string) {
	fields := []struct {
		name string
		text string
	}{
		{"Title", r.Note.Title},
		{"Category", r.Note.Category},
		{"Tags", note.FormatTags(r.Note.Tags)},
	}
	for _, f := range fields {
		spans := Spans(f.text, keywords)
		if len(spans) > 0 {
			r.Fields = append(r.Fields, FieldMatch{Field: f.name, Text: f.text, Spans: spans})
		}
	}
	r.Snippet = bodySnippet(r.Note.Body, keywords)
}

// Spans returns the byte ranges of every case-insensitive occurrence of each
// keyword in text, sorted and merged so overlapping hits highlight once.
func Spans(text string, keywords []string) []Span {
	lowered := strings.ToLower(text)
	var spans []Span
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		for from := 0; ; {
			idx := strings.Index(lowered[from:], kw)
			if idx < 0 {
				break
			}
			start := from + idx
			spans = append(spans, Span{Start: start, End: start + len(kw)})
			from = start + len(kw)
		}
	}
	if len(spans) == 0 {
		return nil
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})
	merged := spans[:1]
	for _, sp := range spans[1:] {
		last := &merged[len(merged)-1]
		if sp.Start <= last.End {
			if sp.End > last.End {
				last.End = sp.End
			}
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

// bodySnippet extracts a context window around the first occurrence of the
// first matching keyword in the body, newline-flattened, with the occurrence
// marked for highlighting.
func bodySnippet(body string, keywords []string) *Snippet {
	if body == "" {
		return nil
	}
	lowered := strings.ToLower(body)
	for _, kw := range keywords {
		idx := strings.Index(lowered, kw)
		if idx < 0 {
			continue
		}
		start := idx - snippetContext
		if start < 0 {
			start = 0
		}
		end := idx + len(kw) + snippetContext
		if end > len(body) {
			end = len(body)
		}

		text := strings.ReplaceAll(body[start:end], "\n", " ")
		offset := idx - start
		if start > 0 {
			text = ellipsis + text
			offset += len(ellipsis)
		}
		if end < len(body) {
			text += ellipsis
		}
		return &Snippet{
			Text:  text,
			Spans: []Span{{Start: offset, End: offset + len(kw)}},
		}
	}
	return nil
}
