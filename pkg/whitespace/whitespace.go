// Package whitespace detects and fixes whitespace defects in text files:
// blank lines that contain whitespace (W293) and trailing whitespace after
// content (W291). Fixes never touch line terminators.
package whitespace

import (
	"strings"
	"unicode"

	"github.com/Sumatoshi-tech/whitefang/pkg/textutil"
)

// Diagnostic codes, following the pycodestyle numbering.
const (
	CodeBlankLineWhitespace = "W293"
	CodeTrailingWhitespace  = "W291"
)

// Fixes counts the defects fixed, or found, in one file.
type Fixes struct {
	Blank    int `json:"w293" yaml:"w293"`
	Trailing int `json:"w291" yaml:"w291"`
}

// Total returns the combined defect count.
func (f Fixes) Total() int {
	return f.Blank + f.Trailing
}

// Any reports whether at least one defect was counted.
func (f Fixes) Any() bool {
	return f.Blank > 0 || f.Trailing > 0
}

// Add accumulates other into f.
func (f *Fixes) Add(other Fixes) {
	f.Blank += other.Blank
	f.Trailing += other.Trailing
}

// FixLines applies both rules to every line in place, preserving each
// line's terminator, and returns the defect counts.
//
// The rules are mutually exclusive per line and applied in fixed order:
// a line whose content is all whitespace (and non-empty) is blanked and
// counted as W293; otherwise trailing whitespace is stripped and counted
// as W291. A line whose content is already empty is clean regardless of
// its terminator.
func FixLines(lines []textutil.Line) Fixes {
	var fixes Fixes

	for i := range lines {
		content := lines[i].Content
		if content == "" {
			continue
		}

		if strings.TrimSpace(content) == "" {
			lines[i].Content = ""
			fixes.Blank++

			continue
		}

		stripped := strings.TrimRightFunc(content, unicode.IsSpace)
		if stripped != content {
			lines[i].Content = stripped
			fixes.Trailing++
		}
	}

	return fixes
}
