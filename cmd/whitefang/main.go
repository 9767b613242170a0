// Package main provides the entry point for the whitefang CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/whitefang/cmd/whitefang/commands"
	"github.com/Sumatoshi-tech/whitefang/pkg/version"
)

func main() {
	rootCmd := commands.NewRootCommand()

	// Add commands.
	rootCmd.AddCommand(commands.NewFixCommand())
	rootCmd.AddCommand(commands.NewScanCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(os.Stdout, version.String())
		},
	}
}
