package main

import (
	"github.com/spf13/cobra"

	"github.com/nvault/nv/internal/state"
	"github.com/nvault/nv/pkg/cmd/root"
)

func main() {
	s, err := state.NewState()
	cobra.CheckErr(err)

	rootCmd, err := root.NewCmdRoot(s)
	cobra.CheckErr(err)

	cobra.CheckErr(rootCmd.Execute())
}
