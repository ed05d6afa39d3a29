package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManualClock(t *testing.T) {
	t.Run("fires due timers in deadline order", func(t *testing.T) {
		clock := NewManualClock()
		var fired []string
		clock.AfterFunc(2*time.Second, func() { fired = append(fired, "b") })
		clock.AfterFunc(time.Second, func() { fired = append(fired, "a") })
		clock.AfterFunc(3*time.Second, func() { fired = append(fired, "c") })

		clock.Advance(999 * time.Millisecond)
		assert.Empty(t, fired)

		clock.Advance(2 * time.Second)
		assert.Equal(t, []string{"a", "b"}, fired)
		assert.Equal(t, 1, clock.Pending())
		assert.Equal(t, 2999*time.Millisecond, clock.Now())
	})

	t.Run("stopped timers do not fire", func(t *testing.T) {
		clock := NewManualClock()
		fired := false
		timer := clock.AfterFunc(time.Second, func() { fired = true })

		assert.True(t, timer.Stop())
		assert.False(t, timer.Stop())

		clock.Advance(time.Minute)
		assert.False(t, fired)
	})

	t.Run("re-armed timers fire within the same advance", func(t *testing.T) {
		clock := NewManualClock()
		var at []time.Duration
		var tick func()
		tick = func() {
			at = append(at, clock.Now())
			clock.AfterFunc(time.Second, tick)
		}
		clock.AfterFunc(time.Second, tick)

		clock.Advance(3500 * time.Millisecond)
		assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}, at)
		assert.Equal(t, 1, clock.Pending())
	})
}

func TestRealClock(t *testing.T) {
	done := make(chan struct{})
	RealClock{}.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("real clock timer did not fire")
	}

	timer := RealClock{}.AfterFunc(time.Hour, func() { t.Error("stopped timer fired") })
	assert.True(t, timer.Stop())
}
