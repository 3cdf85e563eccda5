package root

import (
	"github.com/spf13/cobra"

	"github.com/nvault/nv/internal/state"
	"github.com/nvault/nv/pkg/cmd/appendNote"
	"github.com/nvault/nv/pkg/cmd/archive"
	"github.com/nvault/nv/pkg/cmd/duplicate"
	"github.com/nvault/nv/pkg/cmd/edit"
	"github.com/nvault/nv/pkg/cmd/export"
	"github.com/nvault/nv/pkg/cmd/list"
	"github.com/nvault/nv/pkg/cmd/new"
	"github.com/nvault/nv/pkg/cmd/pin"
	"github.com/nvault/nv/pkg/cmd/quick"
	"github.com/nvault/nv/pkg/cmd/restore"
	"github.com/nvault/nv/pkg/cmd/search"
	"github.com/nvault/nv/pkg/cmd/settings"
	"github.com/nvault/nv/pkg/cmd/stats"
	"github.com/nvault/nv/pkg/cmd/templates"
	"github.com/nvault/nv/pkg/cmd/trash"
	"github.com/nvault/nv/pkg/cmd/trashEmpty"
	"github.com/nvault/nv/pkg/cmd/undo"
	"github.com/nvault/nv/pkg/cmd/view"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "nv",
		Short: "A personal note vault for the terminal.",
		Long: `A utility for keeping notes in a single local vault: capture fast,
organize with categories and tags, search by relevance, and recover
mistakes with undo and a retention-windowed trash.

            [title]           [body]
  nv new "robotics study"  "lecture notes from week 3"
  `,
		RunE: list.NewCmdList(s).RunE,
	}

	cmd.AddCommand(
		new.NewCmdNew(s),
		quick.NewCmdQuick(s),
		list.NewCmdList(s),
		view.NewCmdView(s),
		edit.NewCmdEdit(s),
		appendNote.NewCmdAppend(s),
		pin.NewCmdPin(s),
		duplicate.NewCmdDuplicate(s),
		archive.NewCmdArchive(s),
		trash.NewCmdTrash(s),
		restore.NewCmdRestore(s),
		trashEmpty.NewCmdTrashEmpty(s),
		undo.NewCmdUndo(s),
		search.NewCmdSearch(s),
		stats.NewCmdStats(s),
		export.NewCmdExport(s),
		templates.NewCmdTemplates(s),
		settings.NewCmdSettings(s),
	)

	return cmd, nil
}
