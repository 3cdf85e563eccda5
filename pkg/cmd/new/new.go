package new

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/nvault/nv/internal/note"
	"github.com/nvault/nv/internal/render"
	"github.com/nvault/nv/internal/state"
	"github.com/nvault/nv/internal/vault"
)

func NewCmdNew(s *state.State) *cobra.Command {
	var (
		category string
		tags     string
		template string
		pinned   bool
	)

	cmd := &cobra.Command{
		Use:   "new [title] [body]",
		Short: "Create a new note.",
		Long: heredoc.Doc(`
			This command creates a new note with the given title and optional body.
			The category defaults to the configured default category; a previously
			unseen category is added to the known set.

			Example:
			  nv new "Standup notes" "Discussed the release" --category Work --tags standup,weekly
			  nv new "1:1 with Sam" --template "Meeting Notes"
		`),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]
			body := ""
			if len(args) > 1 {
				body = args[1]
			}

			if template != "" {
				tmpl, ok := s.Store.Document().Template(template)
				if !ok {
					return fmt.Errorf("unknown template %q", template)
				}
				if body == "" {
					body = tmpl.Body
				} else {
					body = tmpl.Body + body
				}
			}

			created, err := s.Store.Create(vault.CreateRequest{
				Title:    title,
				Body:     body,
				Category: strings.TrimSpace(category),
				Tags:     note.ParseTags(tags),
				Pinned:   pinned,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s — #%d %q\n", render.Success("Saved"), created.ID, created.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Category for the note.")
	cmd.Flags().StringVarP(&tags, "tags", "t", "", "Comma-separated tags.")
	cmd.Flags().StringVar(&template, "template", "", "Seed the body from a named template.")
	cmd.Flags().BoolVar(&pinned, "pin", false, "Pin the note on creation.")

	return cmd
}
