// Package filelock guards a file tree against concurrent write-capable
// runs using an advisory flock.
package filelock

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is the advisory lock file created at the tree root.
const LockFileName = ".whitefang.lock"

// ErrAlreadyLocked is returned when another process holds the tree lock.
var ErrAlreadyLocked = errors.New("another whitefang run holds the lock")

// TreeLock is a non-blocking exclusive lock on a directory tree.
// The zero value is not usable; construct with New.
type TreeLock struct {
	flock *flock.Flock
	path  string
}

// New returns a lock for the tree rooted at root. The lock file is
// created on Acquire and left in place after release; only the flock
// state matters.
func New(root string) *TreeLock {
	path := filepath.Join(root, LockFileName)

	return &TreeLock{flock: flock.New(path), path: path}
}

// Path returns the lock file location.
func (l *TreeLock) Path() string {
	return l.path
}

// Acquire takes the lock without blocking. A lock held elsewhere yields
// ErrAlreadyLocked so callers can abort before touching any file.
func (l *TreeLock) Acquire() error {
	acquired, err := l.flock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock on %s: %w", l.path, err)
	}

	if !acquired {
		return fmt.Errorf("%w: %s", ErrAlreadyLocked, l.path)
	}

	return nil
}

// Release drops the lock. Releasing a lock that was never acquired is a
// no-op.
func (l *TreeLock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("release lock on %s: %w", l.path, err)
	}

	return nil
}
