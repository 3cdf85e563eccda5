package list

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nvault/nv/internal/note"
	"github.com/nvault/nv/internal/render"
	"github.com/nvault/nv/internal/state"
	"github.com/nvault/nv/internal/views"
)

func NewCmdList(s *state.State) *cobra.Command {
	var (
		view     string
		sortFlag string
		category string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes from the active, archive, or trash collection.",
		Long: heredoc.Doc(`
			This command lists notes in a table. The active collection is shown by
			default; --view switches to the archive or the trash. Pinned notes sort
			first regardless of the sort mode.

			Examples:
			  nv list
			  nv list --sort alpha --category Work
			  nv list --view trash
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := views.ParseSortMode(sortFlag)
			if err != nil {
				return err
			}

			var notes []note.Note
			switch view {
			case "active":
				notes = s.Store.Active()
			case "archive":
				notes = s.Store.Archived()
			case "trash":
				notes = s.Store.Trashed()
			default:
				return fmt.Errorf("invalid view %q (valid: active, archive, trash)", view)
			}

			notes = views.FilterCategory(notes, strings.TrimSpace(category))
			notes = views.Sort(notes, mode)

			out := cmd.OutOrStdout()
			if len(notes) == 0 {
				fmt.Fprintln(out, render.Dim("No notes here."))
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.SetStyle(table.StyleDouble)
			if view == "trash" {
				t.AppendHeader(table.Row{"", "ID", "Title", "Category", "Trashed", "Days Left"})
				trashDays := s.Store.Settings().TrashDays
				now := s.Store.Now()
				for _, n := range notes {
					left := "?"
					if days, ok := render.DaysLeft(n.TrashedAt, trashDays, now); ok {
						left = fmt.Sprintf("%d", days)
					}
					t.AppendRow(table.Row{pinMark(n), n.ID, n.Title, n.Category, dateOf(n.TrashedAt), left})
				}
			} else {
				t.AppendHeader(table.Row{"", "ID", "Title", "Category", "Tags", "Updated", "Words"})
				for _, n := range notes {
					t.AppendRow(table.Row{
						pinMark(n), n.ID, n.Title, n.Category,
						note.FormatTags(n.Tags), dateOf(n.UpdatedAt), n.WordCount(),
					})
				}
			}
			t.Render()
			fmt.Fprintln(out, render.Dim(fmt.Sprintf("%d notes", len(notes))))
			return nil
		},
	}

	cmd.Flags().StringVar(&view, "view", "active", "Collection to list: active, archive, or trash.")
	cmd.Flags().StringVarP(&sortFlag, "sort", "s", string(views.SortRecent), "Sort mode: "+views.SortModeNames()+".")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Show only this category.")

	return cmd
}

func pinMark(n note.Note) string {
	if n.Pinned {
		return "📌"
	}
	return ""
}

func dateOf(ts string) string {
	if len(ts) > 10 {
		return ts[:10]
	}
	return ts
}
