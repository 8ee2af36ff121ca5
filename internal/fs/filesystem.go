// Package fs is the real filesystem implementation of the service's
// FilesystemManager interface.
package fs

import (
	"fmt"
	"io"
	"os"
)

// OSFilesystemManager performs actual filesystem operations using the os
// package.
type OSFilesystemManager struct{}

// NewOSFilesystemManager creates a new filesystem manager that operates on
// the real filesystem.
func NewOSFilesystemManager() *OSFilesystemManager {
	return &OSFilesystemManager{}
}

// Readable reports whether path is a regular file that can be opened for
// reading. A missing or unreadable path returns false rather than an error;
// for the clippings file that simply means the device is not mounted.
func (m *OSFilesystemManager) Readable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// Copy copies src's bytes verbatim to dst, overwriting any existing file.
// Returns the number of bytes written.
func (m *OSFilesystemManager) Copy(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("opening source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("creating destination: %w", err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return n, fmt.Errorf("copying to %s: %w", dst, err)
	}

	if err := out.Close(); err != nil {
		return n, fmt.Errorf("closing destination: %w", err)
	}
	return n, nil
}
