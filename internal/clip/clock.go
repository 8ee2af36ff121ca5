package clip

import "time"

// Clock abstracts time retrieval so business logic is deterministic in tests.
// Commit messages are rendered from Clock.Now, so a fixed clock gives fixed
// messages.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }
