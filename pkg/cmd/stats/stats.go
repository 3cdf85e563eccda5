package stats

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nvault/nv/internal/render"
	"github.com/nvault/nv/internal/state"
	"github.com/nvault/nv/internal/vault"
)

const barWidth = 24

func NewCmdStats(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show usage statistics.",
		Long: heredoc.Doc(`
			This command summarizes the vault: note counts per collection, word
			and character totals, and histograms over categories, tags, and
			creation months. Trashed notes contribute only their count.

			Example:
			  nv stats
		`),
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			st := s.Store.Stats()
			out := c.OutOrStdout()

			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.SetStyle(table.StyleDouble)
			t.AppendHeader(table.Row{"Metric", "Value"})
			t.AppendRow(table.Row{"Active notes", st.Active})
			t.AppendRow(table.Row{"Archived notes", st.Archived})
			t.AppendRow(table.Row{"Trashed notes", st.Trashed})
			t.AppendRow(table.Row{"Pinned notes", st.Pinned})
			t.AppendRow(table.Row{"Total words", st.Words})
			t.AppendRow(table.Row{"Total characters", st.Chars})
			t.Render()

			printHistogram(out, "Categories", st.Categories)
			printHistogram(out, "Top tags", st.Tags)
			printHistogram(out, "Notes per month", st.Months)
			return nil
		},
	}
}

func printHistogram(out io.Writer, title string, entries []vault.CountEntry) {
	if len(entries) == 0 {
		return
	}
	max := 0
	for _, e := range entries {
		if e.Count > max {
			max = e.Count
		}
	}
	fmt.Fprintf(out, "\n%s\n", title)
	for _, e := range entries {
		fmt.Fprintf(out, "  %-20s %s %d\n", e.Label, render.Bar(e.Count, max, barWidth), e.Count)
	}
}
