package restore

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/nvault/nv/internal/render"
	"github.com/nvault/nv/internal/state"
	"github.com/nvault/nv/internal/vault"
	"github.com/nvault/nv/pkg/cmd"
)

func NewCmdRestore(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "restore [id]",
		Short: "Restore a note from the archive or the trash.",
		Long: heredoc.Doc(`
			This command brings an archived or trashed note back to the active
			collection and clears its archived or trashed timestamp. A note that
			is already active is left alone.

			Example:
			  nv restore 12
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

			switch loc {
			case vault.LocationArchive:
				err = s.Store.Unarchive(id)
			case vault.LocationTrash:
				err = s.Store.Untrash(id)
			default:
				return fmt.Errorf("note #%d is already active", id)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "%s — #%d %q back from %s\n", render.Success("Restored"), n.ID, n.Title, loc)
			return nil
		},
	}
}
