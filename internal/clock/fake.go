package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake is a manually advanced Clock. Callbacks run synchronously inside Advance,
// in deadline order.
type Fake struct {
	mu      sync.Mutex
	now     time.Time
	nextID  int
	pending []*fakeTimer
}

type fakeTimer struct {
	clock    *Fake
	id       int
	deadline time.Time
	fn       func()
	stopped  bool
}

// NewFake returns a fake clock starting at the given instant.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// Now returns the current fake instant.
func (fake *Fake) Now() time.Time {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return fake.now
}

// AfterFunc schedules f to run once the fake clock has advanced by d.
func (fake *Fake) AfterFunc(d time.Duration, f func()) Timer {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	fake.nextID++
	timer := &fakeTimer{
		clock:    fake,
		id:       fake.nextID,
		deadline: fake.now.Add(d),
		fn:       f,
	}
	fake.pending = append(fake.pending, timer)
	return timer
}

// Pending returns the number of timers that have not fired or been stopped.
func (fake *Fake) Pending() int {
	fake.mu.Lock()
	defer fake.mu.Unlock()
	return len(fake.pending)
}

// Advance moves the clock forward, firing every timer whose deadline is reached.
// Timers armed by a callback fire in the same call when they fall inside the window.
func (fake *Fake) Advance(d time.Duration) {
	fake.mu.Lock()
	target := fake.now.Add(d)
	fake.mu.Unlock()

	for {
		fake.mu.Lock()
		next := fake.popDueLocked(target)
		if next == nil {
			fake.now = target
			fake.mu.Unlock()
			return
		}
		fake.now = next.deadline
		fake.mu.Unlock()

		next.fn()
	}
}

func (fake *Fake) popDueLocked(target time.Time) *fakeTimer {
	if len(fake.pending) == 0 {
		return nil
	}
	sort.SliceStable(fake.pending, func(i, j int) bool {
		if fake.pending[i].deadline.Equal(fake.pending[j].deadline) {
			return fake.pending[i].id < fake.pending[j].id
		}
		return fake.pending[i].deadline.Before(fake.pending[j].deadline)
	})
	first := fake.pending[0]
	if first.deadline.After(target) {
		return nil
	}
	fake.pending = fake.pending[1:]
	return first
}

func (timer *fakeTimer) Stop() bool {
	fake := timer.clock
	fake.mu.Lock()
	defer fake.mu.Unlock()
	if timer.stopped {
		return false
	}
	timer.stopped = true
	for i, pending := range fake.pending {
		if pending == timer {
			fake.pending = append(fake.pending[:i], fake.pending[i+1:]...)
			return true
		}
	}
	return false
}
