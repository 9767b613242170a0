package whitespace

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/Sumatoshi-tech/whitefang/pkg/textutil"
)

// Read guard failures. Both fold into the read failure kind: files that
// trip them contribute zero fixes and the run continues.
var (
	ErrBinaryContent = errors.New("binary content")
	ErrInvalidUTF8   = errors.New("invalid utf-8 content")
)

// FileOp names the file operation that failed.
type FileOp string

// File operations reported by FileError.
const (
	OpRead  FileOp = "reading"
	OpWrite FileOp = "writing"
)

// FileError is a contained per-file failure. It never aborts a run: the
// affected file counts zero fixes and processing moves on.
type FileError struct {
	Op   FileOp
	Path string
	Err  error
}

// Error formats as "reading {path}: {cause}" so callers can prefix it
// uniformly.
func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FileError) Unwrap() error {
	return e.Err
}

// FixFile reads path, fixes whitespace defects, and rewrites the file in
// place when at least one line changed. A clean file is never rewritten.
// The write goes directly over the original file; use ScanFile for a dry
// run. Failures are returned as *FileError alongside zero counts.
func FixFile(path string) (Fixes, error) {
	data, err := readText(path)
	if err != nil {
		return Fixes{}, err
	}

	lines := textutil.SplitLines(data)

	fixes := FixLines(lines)
	if !fixes.Any() {
		return Fixes{}, nil
	}

	if err := os.WriteFile(path, textutil.JoinLines(lines), 0o644); err != nil {
		return Fixes{}, &FileError{Op: OpWrite, Path: path, Err: err}
	}

	return fixes, nil
}

// ScanFile reads path and reports the defects a fix run would correct,
// leaving the file untouched.
func ScanFile(path string) (Fixes, error) {
	data, err := readText(path)
	if err != nil {
		return Fixes{}, err
	}

	return FixLines(textutil.SplitLines(data)), nil
}

// Preview returns the original and fixed contents of path without writing
// anything. For a clean file both slices hold the same bytes.
func Preview(path string) (original, fixed []byte, fixes Fixes, err error) {
	original, err = readText(path)
	if err != nil {
		return nil, nil, Fixes{}, err
	}

	lines := textutil.SplitLines(original)

	fixes = FixLines(lines)
	if !fixes.Any() {
		return original, original, fixes, nil
	}

	return original, textutil.JoinLines(lines), fixes, nil
}

// readText loads a file and rejects content the fixer must not touch.
// NUL bytes in the sniff window and invalid UTF-8 both count as read
// failures, mirroring a text-mode decode error.
func readText(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Op: OpRead, Path: path, Err: err}
	}

	if textutil.IsBinary(data) {
		return nil, &FileError{Op: OpRead, Path: path, Err: ErrBinaryContent}
	}

	if !utf8.Valid(data) {
		return nil, &FileError{Op: OpRead, Path: path, Err: ErrInvalidUTF8}
	}

	return data, nil
}
