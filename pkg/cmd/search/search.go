package search

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/nvault/nv/internal/render"
	notesearch "github.com/nvault/nv/internal/search"
	"github.com/nvault/nv/internal/state"
)

func NewCmdSearch(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "search [keywords...]",
		Aliases: []string{"find"},
		Short:   "Search active and archived notes.",
		Long: heredoc.Doc(`
			This command searches active and archived notes. Every keyword must
			appear somewhere in a note's title, body, category, or tags for it to
			match. Results are ranked by occurrence count, with a bonus when all
			keywords appear in the title. The trash is never searched.

			Example:
			  nv search deploy rollback
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			res := notesearch.Search(s.Store.Active(), s.Store.Archived(), query)

			out := c.OutOrStdout()
			if res.Total == 0 {
				fmt.Fprintln(out, render.Dim("No matches."))
				return nil
			}

			if res.Total > len(res.Ranked) {
				fmt.Fprintf(out, "%d matches (showing top %d)\n\n", res.Total, len(res.Ranked))
			} else {
				fmt.Fprintf(out, "%d matches\n\n", res.Total)
			}

			for _, r := range res.Ranked {
				line := render.NoteLine(r.Note)
				if r.Archived {
					line += render.ArchivedTag()
				}
				fmt.Fprintln(out, line)
				for _, f := range r.Fields {
					fmt.Fprintf(out, "      %s %s\n", render.Dim(f.Field+":"), render.Highlight(f.Text, f.Spans))
				}
				if r.Snippet != nil {
					fmt.Fprintf(out, "      %s\n", render.Highlight(r.Snippet.Text, r.Snippet.Spans))
				}
			}
			return nil
		},
	}
}
