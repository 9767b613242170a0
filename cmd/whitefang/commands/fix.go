// Package commands implements CLI command handlers for whitefang.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/whitefang/pkg/filelock"
	"github.com/Sumatoshi-tech/whitefang/pkg/report"
	"github.com/Sumatoshi-tech/whitefang/pkg/whitespace"
)

// fileFixer rewrites one file in place and reports its fix counts.
type fileFixer func(path string) (whitespace.Fixes, error)

// FixCommand holds configuration and dependencies for the fix command.
type FixCommand struct {
	commonOptions

	noLock bool

	fixer fileFixer
}

// NewRootCommand creates the whitefang root command. Invoked bare it
// fixes the working directory tree, identical to `whitefang fix`.
func NewRootCommand() *cobra.Command {
	fc := &FixCommand{fixer: whitespace.FixFile}

	cmd := &cobra.Command{
		Use:   "whitefang [path]",
		Short: "Whitespace fixer for source trees",
		Long: `whitefang finds source files under a directory tree and fixes two
whitespace defects in place: blank lines containing whitespace (W293) and
trailing whitespace after content (W291). Line terminators are preserved
exactly, and clean files are never rewritten.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          fc.run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	fc.registerFixFlags(cmd)

	return cmd
}

// NewFixCommand creates the explicit fix command.
func NewFixCommand() *cobra.Command {
	return newFixCommandWithDeps(whitespace.FixFile)
}

func newFixCommandWithDeps(fixer fileFixer) *cobra.Command {
	fc := &FixCommand{fixer: fixer}

	cmd := &cobra.Command{
		Use:   "fix [path]",
		Short: "Fix whitespace issues in place",
		Long:  "Rewrite files with blank-line whitespace (W293) or trailing whitespace (W291), preserving line terminators.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  fc.run,
	}

	fc.registerFixFlags(cmd)

	return cmd
}

func (fc *FixCommand) registerFixFlags(cmd *cobra.Command) {
	fc.registerFlags(cmd)
	cmd.Flags().BoolVar(&fc.noLock, "no-lock", false, "Skip the run lock on the tree root")
}

func (fc *FixCommand) run(cmd *cobra.Command, args []string) error {
	opts, err := fc.resolve(cmd, args)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("no-lock") {
		opts.NoLock = fc.noLock
	}

	setupLogging(opts.Verbose, cmd.ErrOrStderr())

	if !opts.NoLock {
		lock := filelock.New(opts.Root)

		if err := lock.Acquire(); err != nil {
			return err
		}

		defer func() { _ = lock.Release() }()

		slog.Debug("acquired run lock", "path", lock.Path())
	}

	files, err := discoverFiles(opts)
	if err != nil {
		return err
	}

	summary := report.NewSummary(opts.Language.Name)

	for _, path := range files {
		fixes, err := fc.fixer(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error %v\n", err)
			summary.AddFailure()

			continue
		}

		summary.Add(path, fixes)

		if fixes.Any() {
			slog.Debug("fixed file", "path", path, "w293", fixes.Blank, "w291", fixes.Trailing)
		}
	}

	renderer := &report.Renderer{Out: cmd.OutOrStdout(), NoColor: opts.NoColor}

	// The fix report is a stable text surface; other formats exist only
	// for scan runs.
	return renderer.Render(summary, report.ModeFix, report.FormatText)
}
