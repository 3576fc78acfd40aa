// Package replace makes "rewrite the movie file at P" look atomic even
// though the multiplexer needs two distinct files.
//
// The original is renamed to a hidden sibling, the remux writes a fresh
// container back at the original path, and the sibling is deleted on
// success or renamed back on failure. At completion exactly one readable
// file exists at the path: either the fully stamped new version or the
// untouched original. Nothing in between.
package replace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/gofrs/flock"

	"livepair/internal/identifier"
)

// ErrLocked reports that another replace is already running against the
// same path. The temp-rename scheme assumes exclusive access, so a second
// caller fails fast instead of racing.
var ErrLocked = errors.New("replace already in progress")

// RemuxFunc writes a fresh container at dst from the staged original at
// src. On error any content at dst is treated as partial and removed.
type RemuxFunc func(src, dst string) error

// TempPath returns the hidden sibling path the original is staged at while
// the remux runs: a dot prefix plus the identifier plus the original name,
// in the same directory so the rename never crosses a filesystem.
func TempPath(path, id string) string {
	dir, name := filepath.Split(path)
	return filepath.Join(dir, "."+id+"_"+name)
}

// Replace stages the file at path aside, invokes remux to produce the
// stamped replacement, and finalizes. On remux failure the original is
// restored byte-identical and the remux error is returned unchanged.
func Replace(path, id string, remux RemuxFunc) error {
	lock := flock.New(lockPath(path))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire replace lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("%w: %s", ErrLocked, path)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lockPath(path))
	}()

	temp := TempPath(path, id)
	if err := os.Rename(path, temp); err != nil {
		return fmt.Errorf("stage original aside: %w", err)
	}

	if remuxErr := remux(temp, path); remuxErr != nil {
		// The muxer may have left a partial file at path; a missing one
		// is fine.
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("discard partial output: %w (after remux failure: %v)", err, remuxErr)
		}
		if err := os.Rename(temp, path); err != nil {
			return fmt.Errorf("restore original: %w (after remux failure: %v)", err, remuxErr)
		}
		return remuxErr
	}

	if err := os.Remove(temp); err != nil {
		return fmt.Errorf("remove staged original: %w", err)
	}
	return nil
}

func lockPath(path string) string {
	dir, name := filepath.Split(path)
	return filepath.Join(dir, "."+name+".lock")
}

var tempName = regexp.MustCompile(`^\.([0-9A-Fa-f-]{36})_(.+)$`)

// SweepOrphans removes staged temp files a crashed run left behind in dir
// and returns the removed paths. Only names that embed a well-formed
// identifier are touched; everything else is someone else's dotfile. A
// temp whose unprefixed sibling is missing is the sole surviving copy of
// that file, so it is restored to its original name instead of removed.
func SweepOrphans(dir string) (removed, restored []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		match := tempName.FindStringSubmatch(entry.Name())
		if match == nil || !identifier.IsValid(match[1]) {
			continue
		}
		full := filepath.Join(dir, entry.Name())
		original := filepath.Join(dir, match[2])
		if _, statErr := os.Stat(original); os.IsNotExist(statErr) {
			if err := os.Rename(full, original); err != nil {
				return removed, restored, fmt.Errorf("restore orphan %s: %w", full, err)
			}
			restored = append(restored, original)
			continue
		}
		if err := os.Remove(full); err != nil {
			return removed, restored, fmt.Errorf("remove orphan %s: %w", full, err)
		}
		removed = append(removed, full)
	}
	return removed, restored, nil
}
