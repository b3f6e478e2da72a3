package carousel

import (
	"sync"
	"time"

	"github.com/five82/pulse/internal/clock"
)

// slot owns at most one pending timer. Re-arming or cancelling bumps the
// generation, so a callback that was already running when its timer was
// stopped finds a stale generation and does nothing.
type slot struct {
	timer clock.Timer
	gen   uint64
}

func (s *slot) cancel() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

func (s *slot) pending() bool {
	return s.timer != nil
}

// arm replaces any pending timer in s with one that runs fn under mu after d.
// fn is skipped when closed reports true or the slot was re-armed since.
// Callers must hold mu.
func arm(sched clock.Scheduler, mu *sync.Mutex, s *slot, d time.Duration, closed func() bool, fn func()) {
	s.cancel()
	gen := s.gen
	s.timer = sched.AfterFunc(d, func() {
		mu.Lock()
		defer mu.Unlock()
		if closed() || s.gen != gen {
			return
		}
		s.timer = nil
		fn()
	})
}

func normalize(i, n int) int {
	return ((i % n) + n) % n
}
