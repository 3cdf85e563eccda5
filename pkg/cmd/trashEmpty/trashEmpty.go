package trashEmpty

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/nvault/nv/internal/render"
	"github.com/nvault/nv/internal/state"
)

// confirmToken is the exact value --confirm must carry before the trash is
// emptied. Anything else, including lowercase, is rejected.
const confirmToken = "EMPTY"

func NewCmdTrashEmpty(s *state.State) *cobra.Command {
	var confirm string

	c := &cobra.Command{
		Use:   "trash-empty",
		Short: "Permanently delete everything in the trash.",
		Long: heredoc.Doc(`
			This command permanently deletes every trashed note. Beyond a single
			undo step the deletion is irreversible, so it requires typing the
			confirmation token exactly.

			Example:
			  nv trash-empty --confirm EMPTY
		`),
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			if confirm != confirmToken {
				return fmt.Errorf("refusing to empty the trash: pass --confirm %s to proceed", confirmToken)
			}

			count, err := s.Store.EmptyTrash()
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			if count == 0 {
				fmt.Fprintln(out, render.Dim("Trash is already empty."))
				return nil
			}
			fmt.Fprintf(out, "%s — %d notes deleted\n", render.Success("Trash emptied"), count)
			return nil
		},
	}

	c.Flags().StringVar(&confirm, "confirm", "", fmt.Sprintf("Type %s to confirm permanent deletion.", confirmToken))

	return c
}
