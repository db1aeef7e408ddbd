package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFile is the advisory lock file kept in the data directory.
const LockFile = ".smarttask.lock"

// ErrDataDirBusy is returned when another process holds the data directory lock.
var ErrDataDirBusy = errors.New("data directory is in use by another smarttask process")

// DirLock serializes whole processes over one data directory. The stores
// themselves assume a single writer; the lock is what makes that true when
// several CLI invocations run at once.
type DirLock struct {
	flk *flock.Flock
}

// AcquireDirLock takes the lock without blocking.
func AcquireDirLock(dir string) (*DirLock, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, ioErr("mkdir", dir, err)
	}
	flk := flock.New(filepath.Join(dir, LockFile))
	locked, err := flk.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock for %s: %w", dir, err)
	}
	if !locked {
		return nil, ErrDataDirBusy
	}
	return &DirLock{flk: flk}, nil
}

// Release unlocks; calling it more than once is harmless.
func (l *DirLock) Release() error {
	if l == nil || l.flk == nil {
		return nil
	}
	return l.flk.Unlock()
}
