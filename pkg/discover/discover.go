// Package discover enumerates candidate source files under a directory
// tree. Hidden directories and well-known build or environment directories
// are never descended into.
package discover

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Sumatoshi-tech/whitefang/pkg/safeconv"
)

// ErrNotDirectory is returned when the scan root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// DefaultExcludeDirs returns the directory names never descended into, on
// top of hidden directories. Callers may extend the set, never shrink it.
func DefaultExcludeDirs() []string {
	return []string{"__pycache__", "venv", "env", "build", "dist"}
}

// Options configures a scan.
type Options struct {
	// Extensions holds the accepted file suffixes, dot included.
	// Matching is exact, so "Setup.PY" does not match ".py".
	Extensions []string

	// ExcludeDirs holds extra directory names to skip, in addition to
	// DefaultExcludeDirs and hidden directories.
	ExcludeDirs []string

	// MaxFileSize skips files larger than this many bytes.
	// Zero disables the limit.
	MaxFileSize int64
}

// SourceFiles walks the tree under root and returns the matching file
// paths, joined from root as given and sorted lexicographically.
// Unreadable directories are skipped; any other walk failure aborts the
// scan. Files are never opened here.
func SourceFiles(root string, opts Options) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("access %s: %w", root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	exclude := make(map[string]bool)
	for _, name := range DefaultExcludeDirs() {
		exclude[name] = true
	}

	for _, name := range opts.ExcludeDirs {
		exclude[name] = true
	}

	var files []string

	err = filepath.WalkDir(root, func(path string, entry os.DirEntry, walkErr error) error {
		skip, err := shouldSkipNode(root, path, entry, walkErr, exclude)
		if skip || err != nil {
			return err
		}

		if !matchesSuffix(entry.Name(), opts.Extensions) {
			return nil
		}

		if opts.MaxFileSize > 0 {
			fileInfo, err := entry.Info()
			if err != nil {
				return nil
			}

			if fileInfo.Size() > opts.MaxFileSize {
				slog.Debug("skipping oversized file",
					"path", path,
					"size", humanize.Bytes(safeconv.MustInt64ToUint64(fileInfo.Size())),
					"limit", humanize.Bytes(safeconv.MustInt64ToUint64(opts.MaxFileSize)))

				return nil
			}
		}

		files = append(files, path)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Strings(files)

	return files, nil
}

// shouldSkipNode decides whether a walk entry is skipped. Permission and
// not-exist errors skip the node (pruning the subtree for directories);
// other walk errors abort the walk.
func shouldSkipNode(root, path string, entry os.DirEntry, walkErr error, exclude map[string]bool) (bool, error) {
	if walkErr != nil {
		if errors.Is(walkErr, fs.ErrPermission) || errors.Is(walkErr, fs.ErrNotExist) {
			if entry != nil && entry.IsDir() {
				return true, filepath.SkipDir
			}

			return true, nil
		}

		return false, walkErr
	}

	if entry == nil {
		return true, nil
	}

	if entry.IsDir() {
		// The root itself is always entered, hidden or not.
		if path != root && skipDirName(entry.Name(), exclude) {
			slog.Debug("skipping directory", "path", path)

			return true, filepath.SkipDir
		}

		return true, nil
	}

	return false, nil
}

func skipDirName(name string, exclude map[string]bool) bool {
	return exclude[name] || strings.HasPrefix(name, ".")
}

func matchesSuffix(name string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}
