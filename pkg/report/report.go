// Package report aggregates per-file whitespace results and renders them
// as text, JSON, YAML, or a table.
package report

import (
	"github.com/Sumatoshi-tech/whitefang/pkg/whitespace"
)

// Mode selects the report wording: a fix run rewrites files, a scan run
// only inspects them.
type Mode int

const (
	// ModeFix reports defects as fixed.
	ModeFix Mode = iota
	// ModeScan reports defects as found.
	ModeScan
)

// FileEntry is one file with at least one defect.
type FileEntry struct {
	Path             string `json:"path" yaml:"path"`
	whitespace.Fixes `yaml:",inline"`
}

// Summary aggregates one run over a file tree.
type Summary struct {
	// Language is the display name used in the report header.
	Language string

	// Files holds the affected files in processing order.
	Files []FileEntry

	// Processed counts every candidate file, clean and failed ones
	// included.
	Processed int

	// Failures counts files whose read or write failed.
	Failures int

	// Totals accumulates the defect counts across all files.
	Totals whitespace.Fixes
}

// NewSummary returns an empty summary for the given language label.
func NewSummary(language string) *Summary {
	return &Summary{Language: language}
}

// Add records one successfully processed file.
func (s *Summary) Add(path string, fixes whitespace.Fixes) {
	s.Processed++

	if fixes.Any() {
		s.Files = append(s.Files, FileEntry{Path: path, Fixes: fixes})
		s.Totals.Add(fixes)
	}
}

// AddFailure records a file whose processing failed. Failed files count
// as processed and contribute no fixes.
func (s *Summary) AddFailure() {
	s.Processed++
	s.Failures++
}

// Affected returns the number of files with at least one defect.
func (s *Summary) Affected() int {
	return len(s.Files)
}
