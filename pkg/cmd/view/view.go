package view

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/nvault/nv/internal/render"
	"github.com/nvault/nv/internal/state"
	"github.com/nvault/nv/internal/vault"
	"github.com/nvault/nv/pkg/cmd"
)

func NewCmdView(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "view [id]",
		Aliases: []string{"show", "cat"},
		Short:   "Show a note in full.",
		Long: heredoc.Doc(`
			This command shows a single note in full, wherever it lives. A note
			sitting in the archive or the trash is labeled as such.

			Example:
			  nv view 12
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := cmd.ParseNoteID(args[0])
			if err != nil {
				return err
			}

			n, loc, err := s.Store.Find(id)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if loc != vault.LocationActive {
				fmt.Fprintln(out, render.Dim(fmt.Sprintf("(%s)", loc)))
			}
			fmt.Fprint(out, render.NoteDetail(n))
			return nil
		},
	}
}
