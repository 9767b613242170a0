package commands

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/whitefang/pkg/config"
	"github.com/Sumatoshi-tech/whitefang/pkg/discover"
	"github.com/Sumatoshi-tech/whitefang/pkg/filelock"
	"github.com/Sumatoshi-tech/whitefang/pkg/whitespace"
)

// writeTree creates files under dir from relative path to content.
func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(data)
}

func TestFixCommand_RewritesTreeAndReportsCounts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"app.py":      "x = 1  \n   \nprint(x)\n",
		"sub/util.py": "ok = True\n",
		"notes.txt":   "trailing   \n",
	})

	command := newFixCommandWithDeps(whitespace.FixFile)

	var out bytes.Buffer
	command.SetOut(&out)
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{dir, "--no-color", "--no-lock"})

	err := command.Execute()
	require.NoError(t, err)

	expected := strings.Join([]string{
		"Found 2 Python files",
		"Fixing whitespace issues...",
		"",
		fmt.Sprintf("%s: Fixed W293=1, W291=1", filepath.Join(dir, "app.py")),
		"",
		"Summary:",
		"Files processed: 2",
		"Files fixed: 1",
		"Total W293 (blank line whitespace) fixed: 1",
		"Total W291 (trailing whitespace) fixed: 1",
		"Total whitespace issues fixed: 2",
		"",
	}, "\n")
	require.Equal(t, expected, out.String())

	require.Equal(t, "x = 1\n\nprint(x)\n", readFile(t, filepath.Join(dir, "app.py")))
	require.Equal(t, "ok = True\n", readFile(t, filepath.Join(dir, "sub", "util.py")))
	require.Equal(t, "trailing   \n", readFile(t, filepath.Join(dir, "notes.txt")))
}

func TestFixCommand_CleanTreeReportsZeroes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.py": "print(1)\n",
		"b.py": "print(2)\n",
	})

	command := newFixCommandWithDeps(whitespace.FixFile)

	var out bytes.Buffer
	command.SetOut(&out)
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{dir, "--no-color", "--no-lock"})

	err := command.Execute()
	require.NoError(t, err)

	expected := strings.Join([]string{
		"Found 2 Python files",
		"Fixing whitespace issues...",
		"",
		"",
		"Summary:",
		"Files processed: 2",
		"Files fixed: 0",
		"Total W293 (blank line whitespace) fixed: 0",
		"Total W291 (trailing whitespace) fixed: 0",
		"Total whitespace issues fixed: 0",
		"",
	}, "\n")
	require.Equal(t, expected, out.String())
}

func TestFixCommand_PositionalPathOverridesFlag(t *testing.T) {
	t.Parallel()

	flagDir := t.TempDir()
	writeTree(t, flagDir, map[string]string{"flagged.py": "x = 1\n"})

	argDir := t.TempDir()
	writeTree(t, argDir, map[string]string{"chosen.py": "y = 2\n"})

	var seen []string

	command := newFixCommandWithDeps(func(path string) (whitespace.Fixes, error) {
		seen = append(seen, path)

		return whitespace.Fixes{}, nil
	})

	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{argDir, "--path", flagDir, "--no-lock"})

	err := command.Execute()
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(argDir, "chosen.py")}, seen)
}

func TestFixCommand_PerFileErrorsDoNotAbortRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"bad.py":  "whatever\n",
		"good.py": "whatever\n",
	})

	badPath := filepath.Join(dir, "bad.py")

	command := newFixCommandWithDeps(func(path string) (whitespace.Fixes, error) {
		if path == badPath {
			return whitespace.Fixes{}, &whitespace.FileError{Op: whitespace.OpRead, Path: path, Err: errors.New("boom")}
		}

		return whitespace.Fixes{Blank: 1}, nil
	})

	var out, errOut bytes.Buffer
	command.SetOut(&out)
	command.SetErr(&errOut)
	command.SetArgs([]string{dir, "--no-color", "--no-lock"})

	err := command.Execute()
	require.NoError(t, err)

	require.Equal(t, fmt.Sprintf("Error reading %s: boom\n", badPath), errOut.String())
	require.Contains(t, out.String(), "Files processed: 2")
	require.Contains(t, out.String(), "Files fixed: 1")
	require.Contains(t, out.String(), "Total W293 (blank line whitespace) fixed: 1")
}

func TestFixCommand_LockConflictAbortsBeforeFixing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"app.py": "x = 1  \n"})

	holder := filelock.New(dir)
	require.NoError(t, holder.Acquire())

	defer func() { _ = holder.Release() }()

	command := newFixCommandWithDeps(func(string) (whitespace.Fixes, error) {
		t.Fatal("fixer must not run while the tree is locked")

		return whitespace.Fixes{}, nil
	})

	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{dir})

	err := command.Execute()
	require.ErrorIs(t, err, filelock.ErrAlreadyLocked)
	require.Equal(t, "x = 1  \n", readFile(t, filepath.Join(dir, "app.py")))
}

func TestFixCommand_NoLockSkipsLockFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"app.py": "x = 1\n"})

	command := newFixCommandWithDeps(whitespace.FixFile)
	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{dir, "--no-lock"})

	err := command.Execute()
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, filelock.LockFileName))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestFixCommand_UnknownLanguageRejected(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	command := newFixCommandWithDeps(whitespace.FixFile)
	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{dir, "--language", "nosuchlang", "--no-lock"})

	err := command.Execute()
	require.ErrorIs(t, err, discover.ErrUnknownLanguage)
}

func TestFixCommand_InvalidMaxFileSizeRejected(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	command := newFixCommandWithDeps(whitespace.FixFile)
	command.SetOut(&bytes.Buffer{})
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{dir, "--max-file-size", "12parsecs", "--no-lock"})

	err := command.Execute()
	require.ErrorIs(t, err, config.ErrInvalidSizeFormat)
}

func TestFixCommand_MaxFileSizeSkipsLargeFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"small.py": "x = 1  \n",
		"large.py": strings.Repeat("# padding\n", 50) + "y = 2  \n",
	})

	command := newFixCommandWithDeps(whitespace.FixFile)

	var out bytes.Buffer
	command.SetOut(&out)
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{dir, "--no-color", "--no-lock", "--max-file-size", "64B"})

	err := command.Execute()
	require.NoError(t, err)

	require.Contains(t, out.String(), "Found 1 Python files")
	require.Equal(t, "x = 1\n", readFile(t, filepath.Join(dir, "small.py")))
	require.Contains(t, readFile(t, filepath.Join(dir, "large.py")), "y = 2  \n")
}

func TestFixCommand_ConfigFileExcludesDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"app.py":        "x = 1  \n",
		"skipme/bad.py": "y = 2  \n",
	})

	configPath := filepath.Join(t.TempDir(), "whitefang.yaml")
	configContent := "discovery:\n  exclude_dirs:\n    - skipme\n"
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	command := newFixCommandWithDeps(whitespace.FixFile)

	var out bytes.Buffer
	command.SetOut(&out)
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{dir, "--config", configPath, "--no-color", "--no-lock"})

	err := command.Execute()
	require.NoError(t, err)

	require.Contains(t, out.String(), "Found 1 Python files")
	require.Equal(t, "x = 1\n", readFile(t, filepath.Join(dir, "app.py")))
	require.Equal(t, "y = 2  \n", readFile(t, filepath.Join(dir, "skipme", "bad.py")))
}

func TestRootCommand_BareInvocationFixesTree(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"app.py": "x = 1  \n"})

	command := NewRootCommand()

	var out bytes.Buffer
	command.SetOut(&out)
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{dir, "--no-color", "--no-lock"})

	err := command.Execute()
	require.NoError(t, err)

	require.Contains(t, out.String(), "Fixing whitespace issues...")
	require.Contains(t, out.String(), "Files fixed: 1")
	require.Equal(t, "x = 1\n", readFile(t, filepath.Join(dir, "app.py")))
}
