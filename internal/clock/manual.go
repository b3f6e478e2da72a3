package clock

import (
	"container/heap"
	"sync"
	"time"
)

// Manual is a Scheduler driven by virtual time. Nothing fires until Advance
// is called; due callbacks then run synchronously on the caller's goroutine,
// ordered by due time and then by scheduling order.
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending timerHeap
	fired   int
}

// NewManual returns a Manual clock starting at start.
func NewManual(start time.Time) *Manual {
	m := &Manual{now: start}
	heap.Init(&m.pending)
	return m
}

// Now returns the current virtual time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc schedules f to run once virtual time has advanced by d.
func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTimer{
		clock: m,
		when:  m.now.Add(d),
		seq:   m.seq,
		fn:    f,
	}
	heap.Push(&m.pending, t)
	return t
}

// Advance moves virtual time forward by d, firing every callback that falls
// due on the way. Callbacks scheduled while advancing fire too when they are
// due before the new time.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	for len(m.pending) > 0 && !m.pending[0].when.After(target) {
		t := heap.Pop(&m.pending).(*manualTimer)
		if t.when.After(m.now) {
			m.now = t.when
		}
		m.fired++
		m.mu.Unlock()
		t.fn()
		m.mu.Lock()
	}
	m.now = target
	m.mu.Unlock()
}

// Pending returns the number of timers that have neither fired nor been
// stopped.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Fired returns how many callbacks have been invoked so far.
func (m *Manual) Fired() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fired
}

// NextDue returns the due time of the earliest pending timer.
func (m *Manual) NextDue() (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.pending) == 0 {
		return time.Time{}, false
	}
	return m.pending[0].when, true
}

type manualTimer struct {
	clock *Manual
	when  time.Time
	seq   uint64
	fn    func()
	index int
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.index < 0 {
		return false
	}
	heap.Remove(&t.clock.pending, t.index)
	return true
}

type timerHeap []*manualTimer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].when.Equal(h[j].when) {
		return h[i].seq < h[j].seq
	}
	return h[i].when.Before(h[j].when)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*manualTimer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
