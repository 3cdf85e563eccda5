package export

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/nvault/nv/internal/export"
	"github.com/nvault/nv/internal/note"
	"github.com/nvault/nv/internal/render"
	"github.com/nvault/nv/internal/state"
	"github.com/nvault/nv/internal/views"
)

func NewCmdExport(s *state.State) *cobra.Command {
	var (
		format   string
		status   string
		category string
		from     string
		to       string
	)

	c := &cobra.Command{
		Use:   "export",
		Short: "Export notes to a file.",
		Long: heredoc.Doc(`
			This command writes notes to a timestamped file in the export
			directory. Markdown, plain text, and CSV formats are supported, and
			the selection can be narrowed by collection, category, and created
			date range.

			Examples:
			  nv export --format md
			  nv export --format csv --status archive --category Work
			  nv export --format txt --from 2024-01-01 --to "last friday"
		`),
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			var notes []note.Note
			switch status {
			case "active":
				notes = s.Store.Active()
			case "archive":
				notes = s.Store.Archived()
			case "trash":
				notes = s.Store.Trashed()
			case "all":
				notes = append(notes, s.Store.Active()...)
				notes = append(notes, s.Store.Archived()...)
				notes = append(notes, s.Store.Trashed()...)
			default:
				return fmt.Errorf("invalid status %q (valid: active, archive, trash, all)", status)
			}

			notes = views.FilterCategory(notes, strings.TrimSpace(category))

			var rng views.DateRange
			if from != "" {
				bound, err := views.ParseDateBound(from)
				if err != nil {
					return err
				}
				rng.Start = &bound
			}
			if to != "" {
				bound, err := views.ParseDateBound(to)
				if err != nil {
					return err
				}
				rng.End = &bound
			}
			notes = views.FilterDateRange(notes, rng)

			if len(notes) == 0 {
				return fmt.Errorf("nothing to export")
			}

			path, err := export.WriteFile(s.Config.ExportDir, notes, f, s.Store.Now())
			if err != nil {
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "%s — %d notes to %s\n", render.Success("Exported"), len(notes), path)
			return nil
		},
	}

	c.Flags().StringVarP(&format, "format", "f", string(export.FormatMarkdown), "Export format: md, txt, or csv.")
	c.Flags().StringVar(&status, "status", "active", "Collection to export: active, archive, trash, or all.")
	c.Flags().StringVarP(&category, "category", "c", "", "Export only this category.")
	c.Flags().StringVar(&from, "from", "", "Earliest created date to include.")
	c.Flags().StringVar(&to, "to", "", "Latest created date to include.")

	return c
}
