package edit

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/nvault/nv/internal/note"
	"github.com/nvault/nv/internal/render"
	"github.com/nvault/nv/internal/state"
	"github.com/nvault/nv/internal/vault"
	"github.com/nvault/nv/pkg/cmd"
)

func NewCmdEdit(s *state.State) *cobra.Command {
	var (
		title    string
		category string
		tags     string
		body     string
	)

	c := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit fields of an active note.",
		Long: heredoc.Doc(`
			This command updates fields of an active note. Only the flags you pass
			change; everything else is left as it was. Any change refreshes the
			note's updated timestamp. Archived or trashed notes must be restored
			before editing.

			Examples:
			  nv edit 12 --title "Sprint retro notes"
			  nv edit 12 --tags retro,team --category Work
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := cmd.ParseNoteID(args[0])
			if err != nil {
				return err
			}

			req := vault.EditRequest{}
			if c.Flags().Changed("title") {
				req.Title = &title
			}
			if c.Flags().Changed("category") {
				req.Category = &category
			}
			if c.Flags().Changed("tags") {
				parsed := note.ParseTags(tags)
				req.Tags = &parsed
			}
			if c.Flags().Changed("body") {
				req.Body = &body
			}

			updated, err := s.Store.Edit(id, req)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "%s — #%d %q\n", render.Success("Updated"), updated.ID, updated.Title)
			return nil
		},
	}

	c.Flags().StringVar(&title, "title", "", "New title.")
	c.Flags().StringVarP(&category, "category", "c", "", "New category.")
	c.Flags().StringVarP(&tags, "tags", "t", "", "Comma-separated tags, replacing the current set.")
	c.Flags().StringVar(&body, "body", "", "New body, replacing the current one.")

	return c
}
