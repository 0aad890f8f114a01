package scheduler

import (
	"sync"

	"github.com/kamstrup/intmap"
)

// TimerID names a countdown timer.
type TimerID uint8

// Timers are countdown counters decremented once per trigger until they reach
// zero. A timer that was never set reads as expired.
type Timers struct {
	mu       sync.Mutex
	counters *intmap.Map[TimerID, uint32]
	running  []TimerID
}

func newTimers() *Timers {
	return &Timers{
		counters: intmap.New[TimerID, uint32](4),
	}
}

// Set starts timer id with the given number of ticks.
func (t *Timers) Set(id TimerID, ticks uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counters.Put(id, ticks)
}

// Remaining returns the ticks left on timer id.
func (t *Timers) Remaining(id TimerID) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, _ := t.counters.Get(id)
	return v
}

// Expired reports whether timer id has counted down to zero.
func (t *Timers) Expired(id TimerID) bool {
	return t.Remaining(id) == 0
}

// Stop forgets timer id.
func (t *Timers) Stop(id TimerID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counters.Del(id)
}

func (t *Timers) countDown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.running = t.running[:0]
	t.counters.ForEach(func(id TimerID, v uint32) bool {
		if v > 0 {
			t.running = append(t.running, id)
		}
		return true
	})
	for _, id := range t.running {
		v, _ := t.counters.Get(id)
		t.counters.Put(id, v-1)
	}
}
