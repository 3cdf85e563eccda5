// Package export renders note collections to markdown, plain text, and CSV
// files for use outside the tool.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nvault/nv/internal/note"
)

// Format names a supported export format.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatText     Format = "txt"
	FormatCSV      Format = "csv"
)

var formats = []Format{FormatMarkdown, FormatText, FormatCSV}

// ParseFormat validates a user-supplied format name.
func ParseFormat(raw string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid format %q (valid: md, txt, csv)", raw)
}

// FileName builds the timestamped export file name.
func FileName(f Format, now time.Time) string {
	return fmt.Sprintf("notes-export-%s.%s", now.Format("2006-01-02-150405"), f)
}

// Write renders notes in the given format to w.
func Write(w io.Writer, notes []note.Note, f Format) error {
	switch f {
	case FormatMarkdown:
		return writeMarkdown(w, notes)
	case FormatText:
		return writeText(w, notes)
	case FormatCSV:
		return writeCSV(w, notes)
	default:
		return fmt.Errorf("invalid format %q", f)
	}
}

// WriteFile renders notes into dir, creating it if needed, and returns the
// path of the file written.
func WriteFile(dir string, notes []note.Note, f Format, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(dir, FileName(f, now))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer file.Close()
	if err := Write(file, notes, f); err != nil {
		return "", err
	}
	return path, nil
}

func writeMarkdown(w io.Writer, notes []note.Note) error {
	for i, n := range notes {
		if i > 0 {
			if _, err := fmt.Fprint(w, "\n---\n\n"); err != nil {
				return err
			}
		}
		fmt.Fprintf(w, "# %s\n\n", n.Title)
		fmt.Fprintf(w, "- Category: %s\n", n.Category)
		if len(n.Tags) > 0 {
			fmt.Fprintf(w, "- Tags: %s\n", note.FormatTags(n.Tags))
		}
		fmt.Fprintf(w, "- Created: %s\n", n.CreatedAt)
		if n.Body != "" {
			if _, err := fmt.Fprintf(w, "\n%s\n", n.Body); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeText(w io.Writer, notes []note.Note) error {
	for i, n := range notes {
		if i > 0 {
			if _, err := fmt.Fprintf(w, "\n%s\n\n", strings.Repeat("=", 60)); err != nil {
				return err
			}
		}
		fmt.Fprintf(w, "#%d %s\n", n.ID, n.Title)
		fmt.Fprintf(w, "Category: %s", n.Category)
		if len(n.Tags) > 0 {
			fmt.Fprintf(w, " | Tags: %s", note.FormatTags(n.Tags))
		}
		fmt.Fprintf(w, "\nCreated: %s\n", n.CreatedAt)
		if n.Body != "" {
			if _, err := fmt.Fprintf(w, "\n%s\n", n.Body); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeCSV(w io.Writer, notes []note.Note) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "title", "body", "category", "tags", "pinned", "created_at", "updated_at"}); err != nil {
		return err
	}
	for _, n := range notes {
		record := []string{
			strconv.Itoa(n.ID),
			n.Title,
			n.Body,
			n.Category,
			note.FormatTags(n.Tags),
			strconv.FormatBool(n.Pinned),
			n.CreatedAt,
			n.UpdatedAt,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
