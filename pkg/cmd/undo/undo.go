package undo

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/nvault/nv/internal/render"
	"github.com/nvault/nv/internal/state"
)

func NewCmdUndo(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Revert the most recent change.",
		Long: heredoc.Doc(`
			This command reverts the most recent change to the note collections.
			Up to ten operations back are kept; there is no redo. Pin toggles and
			settings changes are not covered.

			Example:
			  nv undo
		`),
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			desc, ok, err := s.Store.Undo()
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if !ok {
				fmt.Fprintln(out, render.Dim("Nothing to undo."))
				return nil
			}
			fmt.Fprintf(out, "%s — reverted %q (%d left)\n", render.Success("Undone"), desc, s.Store.UndoDepth())
			return nil
		},
	}
}
