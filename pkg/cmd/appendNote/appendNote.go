package appendNote

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/nvault/nv/internal/render"
	"github.com/nvault/nv/internal/state"
	"github.com/nvault/nv/pkg/cmd"
)

func NewCmdAppend(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "append [id] [text]",
		Short: "Append text to a note's body.",
		Long: heredoc.Doc(`
			This command appends text to the end of an active note's body. When
			the note already has content, a timestamped rule separates the old
			text from the new.

			Example:
			  nv append 12 "Follow-up: deploy went out at noon"
		`),
		Args: cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := cmd.ParseNoteID(args[0])
			if err != nil {
				return err
			}

			text := strings.TrimSpace(strings.Join(args[1:], " "))
			if text == "" {
				return fmt.Errorf("nothing to append")
			}

			updated, err := s.Store.Append(id, text)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "%s — #%d now %d words\n", render.Success("Appended"), updated.ID, updated.WordCount())
			return nil
		},
	}
}
