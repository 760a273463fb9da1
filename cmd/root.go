// Package cmd implements the kosho command-line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kosho",
	Short: "kosho - MCP server for a fictional book database",
	Long: `kosho serves a small catalog of fictional books over the Model
Context Protocol. It exposes a single tool, search, which matches a
keyword against book titles, authors, and descriptions.

Running kosho without a subcommand starts the server on stdio.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, args)
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
