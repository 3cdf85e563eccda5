// Package vault owns the persisted notes document: the three note
// collections, categories, templates, settings, and the bounded undo stack.
// It performs atomic load/save and the lifecycle transitions between
// collections.
package vault

import (
	"encoding/json"
	"strings"

	"github.com/nvault/nv/internal/note"
)

// Settings is the document-embedded configuration block. Unknown keys found
// on disk are preserved across load/save; missing keys are backfilled from
// defaults in one place, during deserialization.
type Settings struct {
	DefaultCategory   string
	EditorHint        bool
	TrashDays         int
	UseExternalEditor bool

	extra map[string]json.RawMessage
}

// Template is a named body skeleton offered when creating notes.
type Template struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

// Snapshot is a full deep copy of the three collections taken immediately
// before a mutating operation, paired with a description of that operation.
type Snapshot struct {
	Description string      `json:"desc"`
	TakenAt     string      `json:"ts"`
	Notes       []note.Note `json:"notes"`
	Archive     []note.Note `json:"archive"`
	Trash       []note.Note `json:"trash"`
}

// Document is the full persisted state. Every save writes the whole document
// back to disk.
type Document struct {
	Notes      []note.Note
	Archive    []note.Note
	Trash      []note.Note
	Categories []string
	Templates  []Template
	Settings   Settings
	UndoStack  []Snapshot

	extra map[string]json.RawMessage
}

func DefaultSettings() Settings {
	return Settings{
		DefaultCategory:   "General",
		EditorHint:        true,
		TrashDays:         30,
		UseExternalEditor: false,
	}
}

func DefaultDocument() *Document {
	return &Document{
		Notes:      []note.Note{},
		Archive:    []note.Note{},
		Trash:      []note.Note{},
		Categories: []string{"General", "Work", "Personal", "Ideas"},
		Templates: []Template{
			{Name: "Meeting Notes", Body: "Attendees:\n\nAgenda:\n\nDiscussion:\n\nAction Items:\n"},
			{Name: "Journal Entry", Body: "How I'm feeling:\n\nWhat happened today:\n\nWhat I'm grateful for:\n"},
			{Name: "To-Do List", Body: "[ ] \n[ ] \n[ ] \n[ ] \n[ ] \n"},
		},
		Settings:  DefaultSettings(),
		UndoStack: []Snapshot{},
	}
}

func (s *Settings) UnmarshalJSON(data []byte) error {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = DefaultSettings()
	fields := map[string]any{
		"default_category":    &s.DefaultCategory,
		"editor_hint":         &s.EditorHint,
		"trash_days":          &s.TrashDays,
		"use_external_editor": &s.UseExternalEditor,
	}
	for key, dst := range fields {
		if v, ok := raw[key]; ok {
			if err := json.Unmarshal(v, dst); err != nil {
				return err
			}
			delete(raw, key)
		}
	}
	if len(raw) > 0 {
		s.extra = raw
	}
	return nil
}

func (s Settings) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.extra)+4)
	for k, v := range s.extra {
		out[k] = v
	}
	out["default_category"] = s.DefaultCategory
	out["editor_hint"] = s.EditorHint
	out["trash_days"] = s.TrashDays
	out["use_external_editor"] = s.UseExternalEditor
	return json.Marshal(out)
}

func (d *Document) UnmarshalJSON(data []byte) error {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = *DefaultDocument()
	fields := map[string]any{
		"notes":      &d.Notes,
		"archive":    &d.Archive,
		"trash":      &d.Trash,
		"categories": &d.Categories,
		"templates":  &d.Templates,
		"settings":   &d.Settings,
		"undo_stack": &d.UndoStack,
	}
	for key, dst := range fields {
		if v, ok := raw[key]; ok {
			if err := json.Unmarshal(v, dst); err != nil {
				return err
			}
			delete(raw, key)
		}
	}
	if len(raw) > 0 {
		d.extra = raw
	}

	if d.Notes == nil {
		d.Notes = []note.Note{}
	}
	if d.Archive == nil {
		d.Archive = []note.Note{}
	}
	if d.Trash == nil {
		d.Trash = []note.Note{}
	}
	if d.UndoStack == nil {
		d.UndoStack = []Snapshot{}
	}
	return nil
}

func (d *Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.extra)+7)
	for k, v := range d.extra {
		out[k] = v
	}
	out["notes"] = d.Notes
	out["archive"] = d.Archive
	out["trash"] = d.Trash
	out["categories"] = d.Categories
	out["templates"] = d.Templates
	out["settings"] = d.Settings
	out["undo_stack"] = d.UndoStack
	return json.Marshal(out)
}

// NextID returns one past the highest id across all three collections, or 1
// when the document holds no notes. Ids are never reused, even after a
// permanent purge, as long as a higher id remains anywhere.
func (d *Document) NextID() int {
	max := 0
	for _, coll := range [][]note.Note{d.Notes, d.Archive, d.Trash} {
		for _, n := range coll {
			if n.ID > max {
				max = n.ID
			}
		}
	}
	return max + 1
}

// EnsureCategory appends category to the known set if it is not already
// present. Categories preserve insertion order and are never auto-removed.
func (d *Document) EnsureCategory(category string) {
	for _, existing := range d.Categories {
		if existing == category {
			return
		}
	}
	d.Categories = append(d.Categories, category)
}

// Template returns the named template, matching case-insensitively.
func (d *Document) Template(name string) (Template, bool) {
	for _, t := range d.Templates {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Template{}, false
}
