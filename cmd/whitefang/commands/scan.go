package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/whitefang/pkg/report"
	"github.com/Sumatoshi-tech/whitefang/pkg/whitespace"
)

// fileScanner reports the fixes a file needs without modifying it.
type fileScanner func(path string) (whitespace.Fixes, error)

// filePreviewer returns a file's original and fixed contents without
// writing anything.
type filePreviewer func(path string) (original, fixed []byte, fixes whitespace.Fixes, err error)

// ScanCommand holds configuration and dependencies for the scan command.
type ScanCommand struct {
	commonOptions

	format string
	diff   bool

	scanner   fileScanner
	previewer filePreviewer
}

// NewScanCommand creates the scan command.
func NewScanCommand() *cobra.Command {
	return newScanCommandWithDeps(whitespace.ScanFile, whitespace.Preview)
}

func newScanCommandWithDeps(scanner fileScanner, previewer filePreviewer) *cobra.Command {
	sc := &ScanCommand{scanner: scanner, previewer: previewer}

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Report whitespace issues without modifying files",
		Long: `Check files for blank-line whitespace (W293) and trailing whitespace
(W291) and report what a fix run would change. No file is written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: sc.run,
	}

	sc.registerFlags(cmd)
	cmd.Flags().StringVarP(&sc.format, "format", "f", report.FormatText, "Output format (text, json, yaml, table)")
	cmd.Flags().BoolVar(&sc.diff, "diff", false, "Print a patch preview for each file with issues")

	return cmd
}

// patchEntry carries the contents needed to render one file's patch
// preview after the summary.
type patchEntry struct {
	path     string
	original []byte
	fixed    []byte
}

func (sc *ScanCommand) run(cmd *cobra.Command, args []string) error {
	opts, err := sc.resolve(cmd, args)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("format") {
		format, err := report.ValidateFormat(sc.format)
		if err != nil {
			return err
		}

		opts.Format = format
	}

	setupLogging(opts.Verbose, cmd.ErrOrStderr())

	files, err := discoverFiles(opts)
	if err != nil {
		return err
	}

	summary := report.NewSummary(opts.Language.Name)

	var patches []patchEntry

	for _, path := range files {
		fixes, entry, err := sc.inspect(path)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error %v\n", err)
			summary.AddFailure()

			continue
		}

		summary.Add(path, fixes)

		if entry != nil {
			patches = append(patches, *entry)
		}
	}

	renderer := &report.Renderer{Out: cmd.OutOrStdout(), NoColor: opts.NoColor}

	if err := renderer.Render(summary, report.ModeScan, opts.Format); err != nil {
		return err
	}

	for _, patch := range patches {
		renderer.RenderPatch(patch.path, patch.original, patch.fixed)
	}

	return nil
}

// inspect examines one file. In diff mode it also captures the before and
// after contents for files that need fixes.
func (sc *ScanCommand) inspect(path string) (whitespace.Fixes, *patchEntry, error) {
	if !sc.diff {
		fixes, err := sc.scanner(path)

		return fixes, nil, err
	}

	original, fixed, fixes, err := sc.previewer(path)
	if err != nil {
		return whitespace.Fixes{}, nil, err
	}

	if !fixes.Any() {
		return fixes, nil, nil
	}

	return fixes, &patchEntry{path: path, original: original, fixed: fixed}, nil
}
