package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sergi/go-diff/diffmatchpatch"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	// FormatText is the human-readable default.
	FormatText = "text"

	// FormatJSON renders the summary as an indented JSON document.
	FormatJSON = "json"

	// FormatYAML renders the summary as a YAML document.
	FormatYAML = "yaml"

	// FormatTable renders affected files as an aligned table.
	FormatTable = "table"
)

// ErrUnsupportedFormat indicates the requested output format is not
// supported.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Formats returns the supported output formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML, FormatTable}
}

// ValidateFormat canonicalizes a user-provided format and rejects unknown
// ones.
func ValidateFormat(format string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(format))
	if normalized == "" {
		return FormatText, nil
	}

	if slices.Contains(Formats(), normalized) {
		return normalized, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

// Renderer writes summaries to an output stream. With NoColor set, or for
// any non-text format, the output carries no escape sequences, so captured
// output is byte-stable.
type Renderer struct {
	Out     io.Writer
	NoColor bool
}

// Render writes s in the given format. Only text carries mode-specific
// wording; the structured formats always use scan vocabulary.
func (r *Renderer) Render(s *Summary, mode Mode, format string) error {
	switch format {
	case FormatText, "":
		r.renderText(s, mode)
		return nil
	case FormatJSON:
		return r.renderJSON(s)
	case FormatYAML:
		return r.renderYAML(s)
	case FormatTable:
		r.renderTable(s)
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// renderText writes the stable line-oriented report. The fix-mode layout
// is a compatibility surface: scripts parse it, so the wording, counts,
// and blank lines never change.
func (r *Renderer) renderText(s *Summary, mode Mode) {
	fmt.Fprintf(r.Out, "Found %d %s files\n", s.Processed, s.Language)

	if mode == ModeFix {
		fmt.Fprintln(r.Out, "Fixing whitespace issues...")
	} else {
		fmt.Fprintln(r.Out, "Checking whitespace issues...")
	}

	fmt.Fprintln(r.Out)

	for _, entry := range s.Files {
		if mode == ModeFix {
			fmt.Fprintf(r.Out, "%s: Fixed W293=%d, W291=%d\n", r.path(entry.Path), entry.Blank, entry.Trailing)
		} else {
			fmt.Fprintf(r.Out, "%s: W293=%d, W291=%d\n", r.path(entry.Path), entry.Blank, entry.Trailing)
		}
	}

	fmt.Fprintln(r.Out)
	fmt.Fprintf(r.Out, "%s\n", r.headline("Summary:"))

	if mode == ModeFix {
		fmt.Fprintf(r.Out, "Files processed: %d\n", s.Processed)
		fmt.Fprintf(r.Out, "Files fixed: %d\n", s.Affected())
		fmt.Fprintf(r.Out, "Total W293 (blank line whitespace) fixed: %d\n", s.Totals.Blank)
		fmt.Fprintf(r.Out, "Total W291 (trailing whitespace) fixed: %d\n", s.Totals.Trailing)
		fmt.Fprintf(r.Out, "Total whitespace issues fixed: %d\n", s.Totals.Total())
	} else {
		fmt.Fprintf(r.Out, "Files scanned: %d\n", s.Processed)
		fmt.Fprintf(r.Out, "Files with issues: %d\n", s.Affected())
		fmt.Fprintf(r.Out, "Total W293 (blank line whitespace) found: %d\n", s.Totals.Blank)
		fmt.Fprintf(r.Out, "Total W291 (trailing whitespace) found: %d\n", s.Totals.Trailing)
		fmt.Fprintf(r.Out, "Total whitespace issues found: %d\n", s.Totals.Total())
	}
}

// document is the envelope for the structured formats.
type document struct {
	Language   string      `json:"language" yaml:"language"`
	Scanned    int         `json:"files_scanned" yaml:"files_scanned"`
	WithIssues int         `json:"files_with_issues" yaml:"files_with_issues"`
	Failures   int         `json:"failures" yaml:"failures"`
	TotalW293  int         `json:"total_w293" yaml:"total_w293"`
	TotalW291  int         `json:"total_w291" yaml:"total_w291"`
	Total      int         `json:"total_issues" yaml:"total_issues"`
	Files      []FileEntry `json:"files" yaml:"files"`
}

func newDocument(s *Summary) document {
	files := s.Files
	if files == nil {
		files = []FileEntry{}
	}

	return document{
		Language:   s.Language,
		Scanned:    s.Processed,
		WithIssues: s.Affected(),
		Failures:   s.Failures,
		TotalW293:  s.Totals.Blank,
		TotalW291:  s.Totals.Trailing,
		Total:      s.Totals.Total(),
		Files:      files,
	}
}

func (r *Renderer) renderJSON(s *Summary) error {
	data, err := json.MarshalIndent(newDocument(s), "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	fmt.Fprintln(r.Out, string(data))

	return nil
}

func (r *Renderer) renderYAML(s *Summary) error {
	data, err := yaml.Marshal(newDocument(s))
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	fmt.Fprint(r.Out, string(data))

	return nil
}

func (r *Renderer) renderTable(s *Summary) {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Path", "W293", "W291", "Total"})

	for _, entry := range s.Files {
		tbl.AppendRow(table.Row{entry.Path, entry.Blank, entry.Trailing, entry.Total()})
	}

	tbl.AppendFooter(table.Row{
		fmt.Sprintf("%d/%d files", s.Affected(), s.Processed),
		s.Totals.Blank,
		s.Totals.Trailing,
		s.Totals.Total(),
	})

	fmt.Fprintln(r.Out, tbl.Render())
}

// RenderPatch writes a patch-formatted preview of the pending fixes for
// one file.
func (r *Renderer) RenderPatch(path string, original, fixed []byte) {
	dmp := diffmatchpatch.New()

	diffs := dmp.DiffMain(string(original), string(fixed), false)
	patches := dmp.PatchMake(string(original), diffs)

	fmt.Fprintf(r.Out, "--- %s\n", r.path(path))
	fmt.Fprint(r.Out, dmp.PatchToText(patches))
}

func (r *Renderer) path(path string) string {
	if r.NoColor {
		return path
	}

	return color.New(color.FgCyan).Sprint(path)
}

func (r *Renderer) headline(text string) string {
	if r.NoColor {
		return text
	}

	return color.New(color.Bold).Sprint(text)
}
