package quick

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/nvault/nv/internal/render"
	"github.com/nvault/nv/internal/state"
	"github.com/nvault/nv/internal/vault"
)

// quickTitleLimit is the point past which captured text is split into a
// title and body rather than kept as a title alone.
const quickTitleLimit = 80

func NewCmdQuick(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quick [text]",
		Short: "Fast capture — just type and go.",
		Long: heredoc.Doc(`
			This command captures a note from a single line of text. Short text
			becomes the title; longer text is split at the first sentence break
			into a title and body. The note lands in the default category.

			Example:
			  nv quick "Call the dentist tomorrow"
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return fmt.Errorf("nothing to capture")
			}

			title, body := splitCapture(text)
			created, err := s.Store.Create(vault.CreateRequest{Title: title, Body: body})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s — #%d %q\n", render.Success("Captured"), created.ID, created.Title)
			return nil
		},
	}

	return cmd
}

func splitCapture(text string) (title, body string) {
	if len(text) <= quickTitleLimit {
		return text, ""
	}
	parts := strings.SplitN(text, ". ", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return text, ""
}
