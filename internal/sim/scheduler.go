package sim

import (
	"container/heap"
	"fmt"
	"time"
)

// TimerFunc is invoked when a timer fires. now is the timer's due time.
type TimerFunc func(now time.Duration)

type timer struct {
	due      time.Duration
	seq      uint64
	interval time.Duration // zero for one-shot timers
	fn       TimerFunc
}

// timerQueue orders timers by due time, then by registration order.
type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *timerQueue) Push(x any) { *q = append(*q, x.(*timer)) }

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

// Scheduler is a simulated-time timer queue. Time only moves when the host
// calls Advance, which makes every run reproducible from its inputs.
//
// Timers cannot be cancelled. Callbacks that must stop having an effect are
// expected to check their own stop condition when they fire.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue timerQueue
}

// NewScheduler creates a scheduler whose clock starts at start.
func NewScheduler(start time.Duration) *Scheduler {
	return &Scheduler{now: start}
}

// Now returns the time of the last Advance (or the start time).
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of timers waiting to fire.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// After registers fn to fire once, d after the current time.
func (s *Scheduler) After(d time.Duration, fn TimerFunc) {
	if d < 0 {
		panic(fmt.Sprintf("sim: negative timer delay %v", d))
	}
	s.push(&timer{due: s.now + d, fn: fn})
}

// Every registers fn to fire every interval, starting one interval from now.
// The timer is re-armed after each firing, so anything fn registers for the
// same instant fires before the next period does.
func (s *Scheduler) Every(interval time.Duration, fn TimerFunc) {
	if interval <= 0 {
		panic(fmt.Sprintf("sim: non-positive timer interval %v", interval))
	}
	s.push(&timer{due: s.now + interval, interval: interval, fn: fn})
}

// Advance moves the clock to now, firing every timer due at or before it.
func (s *Scheduler) Advance(now time.Duration) {
	if now < s.now {
		panic(fmt.Sprintf("sim: clock moved backwards from %v to %v", s.now, now))
	}
	for len(s.queue) > 0 && s.queue[0].due <= now {
		t := heap.Pop(&s.queue).(*timer)
		s.now = t.due
		t.fn(t.due)
		if t.interval > 0 {
			t.due += t.interval
			s.push(t)
		}
	}
	s.now = now
}

// Reset drops every pending timer and moves the clock to start.
func (s *Scheduler) Reset(start time.Duration) {
	s.queue = nil
	s.now = start
}

func (s *Scheduler) push(t *timer) {
	s.seq++
	t.seq = s.seq
	heap.Push(&s.queue, t)
}
