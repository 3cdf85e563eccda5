package archive

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/nvault/nv/internal/render"
	"github.com/nvault/nv/internal/state"
	"github.com/nvault/nv/pkg/cmd"
)

func NewCmdArchive(s *state.State) *cobra.Command {
	var confirm bool

	c := &cobra.Command{
		Use:   "archive [id]",
		Short: "Move a note to the archive.",
		Long: heredoc.Doc(`
			This command moves an active note to the archive. Archived notes stay
			searchable and can be restored at any time; they just leave the
			default listing.

			Example:
			  nv archive 12 --confirm
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := cmd.ParseNoteID(args[0])
			if err != nil {
				return err
			}
			if !confirm {
				return fmt.Errorf("please confirm archiving note #%d with --confirm", id)
			}

			n, _, err := s.Store.Find(id)
			if err != nil {
				return err
			}
			if err := s.Store.Archive(id); err != nil {
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "%s — #%d %q\n", render.Success("Archived"), n.ID, n.Title)
			return nil
		},
	}

	c.Flags().BoolVar(&confirm, "confirm", false, "Confirm the archive operation.")

	return c
}
