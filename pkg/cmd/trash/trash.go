package trash

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/nvault/nv/internal/render"
	"github.com/nvault/nv/internal/state"
	"github.com/nvault/nv/pkg/cmd"
)

func NewCmdTrash(s *state.State) *cobra.Command {
	var confirm bool

	c := &cobra.Command{
		Use:     "trash [id]",
		Aliases: []string{"rm"},
		Short:   "Move a note to the trash.",
		Long: heredoc.Doc(`
			This command moves an active note to the trash. Trashed notes can be
			restored until the retention window expires, after which they are
			purged automatically.

			Example:
			  nv trash 12 --confirm
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := cmd.ParseNoteID(args[0])
			if err != nil {
				return err
			}
			if !confirm {
				return fmt.Errorf("please confirm trashing note #%d with --confirm", id)
			}

			n, _, err := s.Store.Find(id)
			if err != nil {
				return err
			}
			if err := s.Store.Trash(id); err != nil {
				return err
			}

			days := s.Store.Settings().TrashDays
			fmt.Fprintf(c.OutOrStdout(), "%s — #%d %q (kept %d days)\n", render.Success("Trashed"), n.ID, n.Title, days)
			return nil
		},
	}

	c.Flags().BoolVar(&confirm, "confirm", false, "Confirm the trash operation.")

	return c
}
