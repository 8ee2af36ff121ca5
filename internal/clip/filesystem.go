package clip

// FilesystemManager provides an interface for the two filesystem operations
// the sync needs. It abstracts file access to enable testing without a real
// device mount.
type FilesystemManager interface {
	// Readable reports whether path exists and is readable. It never
	// returns an error: an unreadable source just means the device is not
	// mounted.
	Readable(path string) bool

	// Copy copies src's bytes verbatim to dst, overwriting any existing
	// file. Returns the number of bytes written.
	Copy(src, dst string) (int64, error)
}
