package settings

import (
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nvault/nv/internal/render"
	"github.com/nvault/nv/internal/state"
	"github.com/nvault/nv/internal/vault"
)

func NewCmdSettings(s *state.State) *cobra.Command {
	c := &cobra.Command{
		Use:   "settings",
		Short: "Show or change vault settings.",
		Long: heredoc.Doc(`
			This command manages the settings stored inside the vault document:
			the default category for new notes, the trash retention window, and
			the editor hints. Settings changes are not undoable.

			Examples:
			  nv settings
			  nv settings set trash_days 14
			  nv settings set default_category Work
		`),
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			cfg := s.Store.Settings()
			t := table.NewWriter()
			t.SetOutputMirror(c.OutOrStdout())
			t.SetStyle(table.StyleDouble)
			t.AppendHeader(table.Row{"Key", "Value"})
			t.AppendRow(table.Row{"default_category", cfg.DefaultCategory})
			t.AppendRow(table.Row{"trash_days", cfg.TrashDays})
			t.AppendRow(table.Row{"editor_hint", cfg.EditorHint})
			t.AppendRow(table.Row{"use_external_editor", cfg.UseExternalEditor})
			t.Render()
			return nil
		},
	}

	c.AddCommand(newCmdSet(s))

	return c
}

func newCmdSet(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "set [key] [value]",
		Short: "Change one setting.",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			apply, err := setter(key, value)
			if err != nil {
				return err
			}
			if err := s.Store.UpdateSettings(apply); err != nil {
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "%s — %s = %s\n", render.Success("Saved"), key, value)
			return nil
		},
	}
}

// setter translates a key/value pair into a settings mutation, validating the
// value for the key's type.
func setter(key, value string) (func(*vault.Settings), error) {
	switch key {
	case "default_category":
		if value == "" {
			return nil, fmt.Errorf("default_category cannot be empty")
		}
		return func(cfg *vault.Settings) { cfg.DefaultCategory = value }, nil
	case "trash_days":
		days, err := strconv.Atoi(value)
		if err != nil || days < 1 {
			return nil, fmt.Errorf("trash_days must be a positive number, got %q", value)
		}
		return func(cfg *vault.Settings) { cfg.TrashDays = days }, nil
	case "editor_hint":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("editor_hint must be true or false, got %q", value)
		}
		return func(cfg *vault.Settings) { cfg.EditorHint = enabled }, nil
	case "use_external_editor":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("use_external_editor must be true or false, got %q", value)
		}
		return func(cfg *vault.Settings) { cfg.UseExternalEditor = enabled }, nil
	default:
		return nil, fmt.Errorf("unknown setting %q (valid: default_category, trash_days, editor_hint, use_external_editor)", key)
	}
}
