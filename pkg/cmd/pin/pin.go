package pin

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/nvault/nv/internal/render"
	"github.com/nvault/nv/internal/state"
	"github.com/nvault/nv/pkg/cmd"
)

func NewCmdPin(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "pin [id]",
		Short: "Toggle a note's pin.",
		Long: heredoc.Doc(`
			This command toggles the pin on an active note. Pinned notes sort
			ahead of everything else in listings. Pinning is a display priority,
			so it does not count as an edit and cannot be undone.

			Example:
			  nv pin 12
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := cmd.ParseNoteID(args[0])
			if err != nil {
				return err
			}

			n, err := s.Store.TogglePin(id)
			if err != nil {
				return err
			}

			verb := "Unpinned"
			if n.Pinned {
				verb = "Pinned"
			}
			fmt.Fprintf(c.OutOrStdout(), "%s — #%d %q\n", render.Success(verb), n.ID, n.Title)
			return nil
		},
	}
}
