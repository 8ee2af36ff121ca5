package testutil

// MockStore is a fake version-controlled store that records calls and
// returns injected results.
type MockStore struct {
	// Injected behavior.
	Changes       bool
	HasChangesErr error
	StageErr      error
	CommitErr     error
	PushErr       error

	// Recorded calls.
	StageCalls    int
	Commits       []string
	PushedRemotes []string
	PushedRefs    []string
}

func NewMockStore() *MockStore {
	return &MockStore{}
}

func (s *MockStore) HasChanges() (bool, error) {
	if s.HasChangesErr != nil {
		return false, s.HasChangesErr
	}
	return s.Changes, nil
}

func (s *MockStore) Stage() error {
	if s.StageErr != nil {
		return s.StageErr
	}
	s.StageCalls++
	return nil
}

func (s *MockStore) Commit(message string) error {
	if s.CommitErr != nil {
		return s.CommitErr
	}
	s.Commits = append(s.Commits, message)
	return nil
}

func (s *MockStore) Push(remote, ref string) error {
	if s.PushErr != nil {
		return s.PushErr
	}
	s.PushedRemotes = append(s.PushedRemotes, remote)
	s.PushedRefs = append(s.PushedRefs, ref)
	return nil
}
