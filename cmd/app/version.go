package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/QuestBot_Go/internal/handler"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "questbot %s (commit %s, built %s)\n",
			handler.Version, handler.GitCommit, handler.BuildTime)
	},
}
