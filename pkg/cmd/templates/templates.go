package templates

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nvault/nv/internal/render"
	"github.com/nvault/nv/internal/state"
)

func NewCmdTemplates(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "templates [name]",
		Short: "List note templates or show one.",
		Long: heredoc.Doc(`
			This command lists the available note templates. With a name it shows
			that template's body. Templates seed the body of a new note via
			"nv new --template".

			Examples:
			  nv templates
			  nv templates "Meeting Notes"
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			out := c.OutOrStdout()

			if len(args) == 1 {
				tmpl, ok := s.Store.Document().Template(args[0])
				if !ok {
					return fmt.Errorf("unknown template %q", args[0])
				}
				fmt.Fprintln(out, tmpl.Name)
				fmt.Fprintln(out, render.Dim(strings.Repeat("-", len(tmpl.Name))))
				fmt.Fprint(out, tmpl.Body)
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.SetStyle(table.StyleDouble)
			t.AppendHeader(table.Row{"Name", "Lines"})
			for _, tmpl := range s.Store.Document().Templates {
				t.AppendRow(table.Row{tmpl.Name, strings.Count(tmpl.Body, "\n")})
			}
			t.Render()
			return nil
		},
	}
}
