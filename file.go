// SPDX-License-Identifier: Apache-2.0

package memkit

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/afero"
)

// ReadFileArena reads the whole file at path into a single arena block and
// returns its contents. The bytes stay valid until the arena is reset or
// released.
func ReadFileArena(fsys afero.Fs, a *Arena, path string) ([]byte, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := int(info.Size())
	if int64(size) != info.Size() {
		// int is 32 bits on some platforms
		return nil, fmt.Errorf("read %s: file too large (%d bytes)", path, info.Size())
	}

	h := a.Alloc(size)
	buf := a.Bytes(h)[:size]
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return buf, nil
}

// ModifiedTime returns the modification timestamp of path.
func ModifiedTime(fsys afero.Fs, path string) (time.Time, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// NeedsUpdate reports whether output is missing or older than any of the
// inputs, in the manner of a build tool's staleness check. An unreadable
// input counts as stale.
func NeedsUpdate(fsys afero.Fs, output string, inputs ...string) bool {
	out, err := ModifiedTime(fsys, output)
	if err != nil {
		return true
	}
	for _, in := range inputs {
		t, err := ModifiedTime(fsys, in)
		if err != nil || t.After(out) {
			return true
		}
	}
	return false
}

// Exists reports whether path exists.
func Exists(fsys afero.Fs, path string) bool {
	ok, err := afero.Exists(fsys, path)
	return err == nil && ok
}
