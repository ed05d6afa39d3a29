package tetris

import (
	"sort"
	"sync"
	"time"
)

// Clock schedules one-shot callbacks. The game re-arms a new timer after
// every gravity step, so the period can change between steps.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type Timer interface {
	// Stop prevents the callback from firing. It reports whether the
	// timer was still pending.
	Stop() bool
}

// RealClock runs callbacks on their own goroutine after wall-clock time.
type RealClock struct{}

func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ManualClock only moves when Advance is called. Callbacks run on the
// goroutine calling Advance.
type ManualClock struct {
	m      sync.Mutex
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	clock    *ManualClock
	deadline time.Duration
	seq      int
	f        func()
}

func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Now is the time elapsed since the clock was created.
func (c *ManualClock) Now() time.Duration {
	c.m.Lock()
	defer c.m.Unlock()
	return c.now
}

// Pending counts timers that have not fired or been stopped.
func (c *ManualClock) Pending() int {
	c.m.Lock()
	defer c.m.Unlock()
	return len(c.timers)
}

func (c *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.m.Lock()
	defer c.m.Unlock()

	c.seq++
	t := &manualTimer{clock: c, deadline: c.now + d, seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d and fires every timer that comes
// due, in deadline order. Timers armed by a callback fire in the same call
// if their deadline is within the advanced window.
func (c *ManualClock) Advance(d time.Duration) {
	c.m.Lock()
	target := c.now + d
	c.m.Unlock()

	for {
		t := c.popDue(target)
		if t == nil {
			break
		}
		t.f()
	}

	c.m.Lock()
	c.now = target
	c.m.Unlock()
}

func (c *ManualClock) popDue(target time.Duration) *manualTimer {
	c.m.Lock()
	defer c.m.Unlock()

	if len(c.timers) == 0 {
		return nil
	}
	sort.Slice(c.timers, func(i, j int) bool {
		if c.timers[i].deadline == c.timers[j].deadline {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].deadline < c.timers[j].deadline
	})
	t := c.timers[0]
	if t.deadline > target {
		return nil
	}
	c.timers = c.timers[1:]
	c.now = t.deadline
	return t
}

func (t *manualTimer) Stop() bool {
	c := t.clock
	c.m.Lock()
	defer c.m.Unlock()

	for i, pending := range c.timers {
		if pending == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}
