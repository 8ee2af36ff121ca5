package clip

// Store is the narrow capability interface over the version-controlled
// destination directory. The real implementation shells out to git; tests
// inject a fake so no repository is needed.
type Store interface {
	// HasChanges reports whether the working tree differs from the last
	// commit (staged or not).
	HasChanges() (bool, error)

	// Stage stages all changes in the destination directory, recursively.
	Stage() error

	// Commit records the staged changes with the given message.
	Commit(message string) error

	// Push publishes the current branch to the named remote and ref.
	Push(remote, ref string) error
}
