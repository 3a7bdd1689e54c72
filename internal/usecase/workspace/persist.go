package workspace

import (
	"sync"
	"time"
)

// saveDelay is the debounce window for snapshot writes. Rapid
// successive mutations coalesce into one write of the latest state.
const saveDelay = 150 * time.Millisecond

// saver schedules a deferred write: each Schedule replaces the pending
// timer, so the store sees a last-write-wins snapshot no earlier than
// the delay after the final mutation.
type saver struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	write func()
}

func newSaver(delay time.Duration, write func()) *saver {
	return &saver{delay: delay, write: write}
}

func (s *saver) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.write)
}

// Flush cancels any pending timer and writes immediately. Used on
// shutdown so the final state is not lost to the debounce window.
func (s *saver) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.write()
}
