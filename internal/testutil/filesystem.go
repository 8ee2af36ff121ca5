package testutil

import "fmt"

// MockFilesystemManager is an in-memory FilesystemManager. Files live in a
// map keyed by absolute path.
type MockFilesystemManager struct {
	files map[string][]byte

	// CopyErr, when set, is returned from Copy.
	CopyErr error
}

func NewMockFilesystemManager() *MockFilesystemManager {
	return &MockFilesystemManager{
		files: make(map[string][]byte),
	}
}

// AddFile registers a readable file with the given content.
func (m *MockFilesystemManager) AddFile(path string, content []byte) {
	m.files[path] = content
}

// Content returns the bytes stored at path, or nil.
func (m *MockFilesystemManager) Content(path string) []byte {
	return m.files[path]
}

func (m *MockFilesystemManager) Readable(path string) bool {
	_, ok := m.files[path]
	return ok
}

func (m *MockFilesystemManager) Copy(src, dst string) (int64, error) {
	if m.CopyErr != nil {
		return 0, m.CopyErr
	}
	content, ok := m.files[src]
	if !ok {
		return 0, fmt.Errorf("source does not exist: %s", src)
	}
	m.files[dst] = append([]byte{}, content...)
	return int64(len(content)), nil
}
