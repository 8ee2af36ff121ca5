package testutil

import "time"

// MockClock returns a fixed time, so commit messages are deterministic.
type MockClock struct {
	T time.Time
}

func (c *MockClock) Now() time.Time { return c.T }
