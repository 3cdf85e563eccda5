// Package render holds the presentation helpers used by the command layer:
// lipgloss styles, note summary lines, and highlight rendering for search
// results. The core packages never print; they hand structured values to
// this layer.
package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/nvault/nv/internal/note"
	"github.com/nvault/nv/internal/search"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true)
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
	pinStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB000"))
	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2ECC71"))
	highlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700"))
	archivedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))
	barFillStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF"))
)

func Success(msg string) string {
	return successStyle.Render("✓ " + msg)
}

func Dim(msg string) string {
	return dimStyle.Render(msg)
}

func ArchivedTag() string {
	return archivedStyle.Render(" [ARCHIVED]")
}

// NoteLine renders the one-line summary used in listings and search results.
func NoteLine(n note.Note) string {
	pin := "  "
	if n.Pinned {
		pin = pinStyle.Render("📌")
	}
	created := n.CreatedAt
	if len(created) > 10 {
		created = created[:10]
	}
	line := fmt.Sprintf("%s %s  %s  %s %s",
		pin,
		titleStyle.Render(fmt.Sprintf("#%-4d", n.ID)),
		dimStyle.Render(created),
		dimStyle.Render("["+n.Category+"]"),
		n.Title,
	)
	if n.Touched() {
		line += dimStyle.Render(" ✎")
	}
	if len(n.Tags) > 0 {
		line += dimStyle.Render(" · " + note.FormatTags(n.Tags))
	}
	line += dimStyle.Render(fmt.Sprintf("  %dw", n.WordCount()))
	return line
}

// NoteDetail renders the full note view.
func NoteDetail(n note.Note) string {
	var b strings.Builder
	pin := ""
	if n.Pinned {
		pin = " 📌"
	}
	fmt.Fprintf(&b, "%s %s%s\n",
		dimStyle.Render(fmt.Sprintf("#%d", n.ID)),
		titleStyle.Render(n.Title),
		pin,
	)
	fmt.Fprintf(&b, "%s %s\n", dimStyle.Render("Category:"), n.Category)
	tags := note.FormatTags(n.Tags)
	if tags == "" {
		tags = "None"
	}
	fmt.Fprintf(&b, "%s %s\n", dimStyle.Render("Tags:"), tags)
	fmt.Fprintf(&b, "%s %s\n", dimStyle.Render("Created:"), clipTimestamp(n.CreatedAt))
	updated := clipTimestamp(n.UpdatedAt)
	if updated == "" {
		updated = "—"
	}
	fmt.Fprintf(&b, "%s %s\n", dimStyle.Render("Updated:"), updated)
	if n.ArchivedAt != "" {
		fmt.Fprintf(&b, "%s %s\n", dimStyle.Render("Archived:"), clipTimestamp(n.ArchivedAt))
	}
	if n.TrashedAt != "" {
		fmt.Fprintf(&b, "%s %s\n", dimStyle.Render("Trashed:"), clipTimestamp(n.TrashedAt))
	}
	if n.Body != "" {
		fmt.Fprintf(&b, "\n%s\n", n.Body)
	} else {
		fmt.Fprintf(&b, "\n%s\n", dimStyle.Render("(empty note)"))
	}
	fmt.Fprintf(&b, "\n%s\n", dimStyle.Render(fmt.Sprintf("%d words · %d chars", n.WordCount(), n.CharCount())))
	return b.String()
}

func clipTimestamp(ts string) string {
	if len(ts) > 16 {
		return strings.Replace(ts[:16], "T", " ", 1)
	}
	return strings.Replace(ts, "T", " ", 1)
}

// Highlight wraps the marked spans of text in the highlight style. Spans
// must be sorted and non-overlapping, as produced by the search package.
func Highlight(text string, spans []search.Span) string {
	if len(spans) == 0 {
		return text
	}
	var b strings.Builder
	prev := 0
	for _, sp := range spans {
		if sp.Start < prev || sp.End > len(text) {
			continue
		}
		b.WriteString(text[prev:sp.Start])
		b.WriteString(highlightStyle.Render(text[sp.Start:sp.End]))
		prev = sp.End
	}
	b.WriteString(text[prev:])
	return b.String()
}

// Bar renders a proportional histogram bar.
func Bar(count, max, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	filled := int(math.Round(float64(count) / float64(max) * float64(width)))
	if filled > width {
		filled = width
	}
	return barFillStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled))
}

// DaysLeft reports how many whole days remain before a trashed note is
// auto-purged. The second return is false when the trashed timestamp cannot
// be parsed.
func DaysLeft(trashedAt string, trashDays int, now time.Time) (int, bool) {
	trashed, err := note.ParseTime(trashedAt)
	if err != nil {
		return 0, false
	}
	expires := trashed.AddDate(0, 0, trashDays)
	return int(expires.Sub(now).Hours() / 24), true
}
