package duplicate

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/nvault/nv/internal/render"
	"github.com/nvault/nv/internal/state"
	"github.com/nvault/nv/pkg/cmd"
)

func NewCmdDuplicate(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:     "duplicate [id]",
		Aliases: []string{"dup"},
		Short:   "Duplicate a note.",
		Long: heredoc.Doc(`
			This command copies a note into a new active note with a fresh id,
			fresh timestamps, and " (copy)" appended to the title. The source may
			live in any collection; the copy always starts active and unpinned.

			Example:
			  nv duplicate 12
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := cmd.ParseNoteID(args[0])
			if err != nil {
				return err
			}

			copied, err := s.Store.Duplicate(id)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "%s — #%d %q\n", render.Success("Duplicated"), copied.ID, copied.Title)
			return nil
		},
	}
}
