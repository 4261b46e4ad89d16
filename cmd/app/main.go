// Package main is the entry point for the QuestBot game server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "questbot",
	Short: "QuestBot text adventure server",
	Long: `QuestBot runs a multi-player text adventure: players explore a world graph,
fight monsters and manage their inventory through a JSON HTTP API.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
}
