// Package textutil provides byte-level text utilities: binary detection,
// line counting, and line splitting with terminator classification.
package textutil

import (
	"bytes"
)

// BinarySniffLength is the maximum number of bytes scanned for null-byte
// detection. Matches the heuristic used by Git and most editors.
const BinarySniffLength = 8000

// IsBinary returns true if data contains a null byte within the first
// BinarySniffLength bytes. Empty data is not binary.
func IsBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	sniff := data
	if len(sniff) > BinarySniffLength {
		sniff = sniff[:BinarySniffLength]
	}

	return bytes.IndexByte(sniff, 0) >= 0
}

// CountLines returns the number of newline-delimited lines in data.
// A non-empty buffer without a trailing newline counts the last partial line.
// Returns 0 for empty data.
func CountLines(data []byte) int {
	if len(data) == 0 {
		return 0
	}

	lines := bytes.Count(data, []byte{'\n'})

	if data[len(data)-1] != '\n' {
		lines++
	}

	return lines
}

// Terminator identifies how a line ends on disk.
type Terminator int

const (
	// TermNone marks a final line with no trailing newline.
	TermNone Terminator = iota
	// TermLF marks a line ended by "\n".
	TermLF
	// TermCRLF marks a line ended by "\r\n".
	TermCRLF
)

// Bytes returns the on-disk byte sequence of the terminator.
// TermNone yields nil.
func (t Terminator) Bytes() []byte {
	switch t {
	case TermLF:
		return []byte{'\n'}
	case TermCRLF:
		return []byte{'\r', '\n'}
	default:
		return nil
	}
}

// String returns the terminator name: "none", "lf" or "crlf".
func (t Terminator) String() string {
	switch t {
	case TermLF:
		return "lf"
	case TermCRLF:
		return "crlf"
	default:
		return "none"
	}
}

// Line is one line split from a buffer: its content without the line
// terminator, plus the terminator that followed it on disk.
type Line struct {
	Content string
	End     Terminator
}

// SplitLines splits data into lines, classifying each terminator.
// A line ends at '\n'; a '\r' immediately before it belongs to the
// terminator (CRLF). A lone '\r' is ordinary content. A final segment
// without a trailing newline becomes a TermNone line; a buffer ending in
// a newline yields no trailing empty line. Empty data yields no lines.
//
// JoinLines(SplitLines(data)) reproduces data byte for byte.
func SplitLines(data []byte) []Line {
	if len(data) == 0 {
		return nil
	}

	lines := make([]Line, 0, CountLines(data))
	start := 0

	for i := 0; i < len(data); i++ {
		if data[i] != '\n' {
			continue
		}

		end := TermLF
		content := data[start:i]

		if len(content) > 0 && content[len(content)-1] == '\r' {
			end = TermCRLF
			content = content[:len(content)-1]
		}

		lines = append(lines, Line{Content: string(content), End: end})
		start = i + 1
	}

	if start < len(data) {
		lines = append(lines, Line{Content: string(data[start:]), End: TermNone})
	}

	return lines
}

// JoinLines concatenates lines back into one buffer, appending each line's
// terminator after its content. Returns nil for an empty slice.
func JoinLines(lines []Line) []byte {
	if len(lines) == 0 {
		return nil
	}

	size := 0
	for _, line := range lines {
		size += len(line.Content) + len(line.End.Bytes())
	}

	buf := make([]byte, 0, size)

	for _, line := range lines {
		buf = append(buf, line.Content...)
		buf = append(buf, line.End.Bytes()...)
	}

	return buf
}
