package engine

import (
	"container/heap"
	"time"
)

// Scheduler runs one-shot callbacks once game time passes their deadline
// Not safe for concurrent use; callbacks run on the goroutine calling Advance
type Scheduler struct {
	clock Clock
	queue timerQueue
	seq   uint64
	gen   uint64
}

type timer struct {
	deadline time.Time
	seq      uint64
	fn       func()
}

// NewScheduler creates a scheduler measuring delays against clock
func NewScheduler(clock Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// After schedules fn to run once d of game time has elapsed
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.seq++
	heap.Push(&s.queue, &timer{
		deadline: s.clock.Now().Add(d),
		seq:      s.seq,
		fn:       fn,
	})
}

// Advance runs every callback due at or before now in deadline order
// Timers with equal deadlines run in scheduling order; timers scheduled by a
// callback run in the same call if already due
// Returns the number of callbacks run
func (s *Scheduler) Advance(now time.Time) int {
	gen := s.gen
	fired := 0
	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.deadline.After(now) {
			break
		}
		heap.Pop(&s.queue)
		next.fn()
		fired++
		// A callback reset the scheduler; leave the new timers for the next tick
		if s.gen != gen {
			break
		}
	}
	return fired
}

// Reset cancels every pending timer
func (s *Scheduler) Reset() {
	s.queue = s.queue[:0]
	s.gen++
}

// Pending returns the number of timers waiting to fire
func (s *Scheduler) Pending() int {
	return s.queue.Len()
}

// timerQueue is a min-heap on (deadline, seq)
type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].deadline.Equal(q[j].deadline) {
		return q[i].seq < q[j].seq
	}
	return q[i].deadline.Before(q[j].deadline)
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
