package export

import (
	"encoding/csv"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/nvault/nv/internal/note"
)

func sample() []note.Note {
	return []note.Note{
		{
			ID: 1, Title: "Release plan", Body: "Ship on Friday.",
			Category: "Work", Tags: []string{"release"},
			CreatedAt: "2024-03-01T09:00:00", UpdatedAt: "2024-03-02T10:00:00",
		},
		{
			ID: 2, Title: "Groceries", Body: "Milk, \"eggs\", bread",
			Category: "Personal", Pinned: true,
			CreatedAt: "2024-03-03T08:00:00", UpdatedAt: "2024-03-03T08:00:00",
		},
	}
}

func TestParseFormat(t *testing.T) {
	for _, raw := range []string{"md", "TXT", " csv "} {
		if _, err := ParseFormat(raw); err != nil {
			t.Fatalf("ParseFormat(%q): %v", raw, err)
		}
	}
	if _, err := ParseFormat("xlsx"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 30, 9, 0, time.UTC)
	got := FileName(FormatCSV, now)
	want := "notes-export-2024-03-05-143009.csv"
	if got != want {
		t.Fatalf("FileName = %q, want %q", got, want)
	}
}

func TestMarkdownLayout(t *testing.T) {
	var b strings.Builder
	if err := Write(&b, sample(), FormatMarkdown); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "# Release plan") || !strings.Contains(out, "# Groceries") {
		t.Fatalf("missing title headings:\n%s", out)
	}
	if !strings.Contains(out, "\n---\n") {
		t.Fatalf("missing note separator:\n%s", out)
	}
	if !strings.Contains(out, "- Tags: release") {
		t.Fatalf("missing tags line:\n%s", out)
	}
	if strings.Contains(strings.SplitN(out, "---", 2)[1], "- Tags:") {
		t.Fatalf("tagless note should have no tags line:\n%s", out)
	}
}

func TestTextLayout(t *testing.T) {
	var b strings.Builder
	if err := Write(&b, sample(), FormatText); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.Contains(out, "#1 Release plan") {
		t.Fatalf("missing id and title:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("=", 60)) {
		t.Fatalf("missing separator rule:\n%s", out)
	}
}

func TestCSVRoundTrips(t *testing.T) {
	var b strings.Builder
	if err := Write(&b, sample(), FormatCSV); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(strings.NewReader(b.String())).ReadAll()
	if err != nil {
		t.Fatalf("reading back csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}
	if records[0][0] != "id" {
		t.Fatalf("header row = %v", records[0])
	}
	if records[2][2] != "Milk, \"eggs\", bread" {
		t.Fatalf("quoted body did not survive: %q", records[2][2])
	}
	if records[2][5] != "true" {
		t.Fatalf("pinned column = %q", records[2][5])
	}
}

func TestWriteFileCreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/exports/nested"
	now := time.Date(2024, 3, 5, 14, 30, 9, 0, time.UTC)

	path, err := WriteFile(dir, sample(), FormatMarkdown, now)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "# Release plan") {
		t.Fatalf("export file content wrong:\n%s", data)
	}
}
