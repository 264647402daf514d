package view

import "time"

// Clock abstracts wall time so hover timeouts are testable with a
// deterministic clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
