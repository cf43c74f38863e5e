package session

import "time"

// SetClock replaces the wall clock for tests.
func SetClock(s *Session, now func() time.Time) {
	s.now = now
}
