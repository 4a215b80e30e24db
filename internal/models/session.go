package models

import (
	"sync"
	"time"
)

// Outcome is the terminal result of a finished game
type Outcome struct {
	Winner  Team
	Message string
	Turns   int
}

// Session is one hosted game inside a multi-game run
type Session struct {
	ID        string
	Seed      int64
	Players   []*Player
	CreatedAt time.Time
	Outcome   *Outcome // nil until the game concludes
	Err       error    // set when the game aborted on an engine error
	mu        sync.RWMutex
}

// Lock acquires the session's write lock
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock releases the session's write lock
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// RLock acquires the session's read lock
func (s *Session) RLock() {
	s.mu.RLock()
}

// RUnlock releases the session's read lock
func (s *Session) RUnlock() {
	s.mu.RUnlock()
}

// Finish records the outcome of the session's game
func (s *Session) Finish(outcome Outcome) {
	s.Lock()
	defer s.Unlock()
	s.Outcome = &outcome
}

// Fail records an engine error that ended the session's game
func (s *Session) Fail(err error) {
	s.Lock()
	defer s.Unlock()
	s.Err = err
}

// Done reports whether the session has an outcome or an error
func (s *Session) Done() bool {
	s.RLock()
	defer s.RUnlock()
	return s.Outcome != nil || s.Err != nil
}
