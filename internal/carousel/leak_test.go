package carousel

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/five82/pulse/internal/clock"
)

func TestRealClock_NoLeakAfterClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	timing := Timing{
		Advance:    3 * time.Millisecond,
		Transition: 2 * time.Millisecond,
		ResetDelay: time.Millisecond,
	}

	var mu sync.Mutex
	var afterClose int
	closed := false

	c, err := New(3, timing, WithScheduler(clock.Real()), WithObserver(func(s State) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			afterClose++
		}
		if s.ActiveIndex < 0 || s.ActiveIndex > s.Size {
			t.Errorf("index %d outside [0, %d]", s.ActiveIndex, s.Size)
		}
	}))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 20 {
				if (i+j)%2 == 0 {
					c.Next()
				} else {
					c.Previous()
				}
				time.Sleep(500 * time.Microsecond)
			}
		}()
	}
	wg.Wait()
	time.Sleep(20 * time.Millisecond)

	// Close takes the controller lock, so no observer call can overlap the
	// flag flip below.
	c.Close()
	mu.Lock()
	closed = true
	mu.Unlock()

	time.Sleep(20 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	require.Zero(t, afterClose, "callbacks mutated state after Close")
}

func TestRealRotator_NoLeakAfterClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, err := NewRotator(4, RotatorTiming{Advance: 3 * time.Millisecond, Fade: time.Millisecond})
	require.NoError(t, err)
	time.Sleep(15 * time.Millisecond)
	r.Close()
}
