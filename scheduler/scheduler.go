// Package scheduler runs delayed and periodic callbacks against a
// simulation clock. Callbacks fire on the goroutine that calls Advance.
//
// One-shot timers belong to the generation that was current when they were
// scheduled. Starting a new generation drops them, and a callback whose
// generation is no longer current never runs. Periodic timers are not tied
// to a generation.
package scheduler

import (
	"container/heap"
)

// Token identifies a scheduled callback for cancellation.
type Token struct {
	id  uint64
	gen uint64
}

// Valid reports whether the token refers to a scheduled callback.
func (t Token) Valid() bool {
	return t.id != 0
}

// Generation returns the generation the callback was scheduled under.
// Periodic callbacks report 0.
func (t Token) Generation() uint64 {
	return t.gen
}

type timer struct {
	id       uint64
	gen      uint64 // 0 = persistent
	at       float64
	seq      uint64
	interval float64
	fn       func()
	index    int
}

// timerHeap implements heap.Interface ordered by deadline, then insertion.
type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }
func (h timerHeap) Less(i, j int) bool {
	if h[i].at != h[j].at {
		return h[i].at < h[j].at
	}
	return h[i].seq < h[j].seq
}
func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*timer)
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

// Scheduler is a deadline queue driven by Advance. It is not safe for
// concurrent use.
type Scheduler struct {
	now    float64
	gen    uint64
	nextID uint64
	seq    uint64
	queue  timerHeap
	live   map[uint64]*timer
}

// New creates a scheduler at time 0, generation 1.
func New() *Scheduler {
	return &Scheduler{
		gen:  1,
		live: make(map[uint64]*timer),
	}
}

// Now returns the scheduler clock.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Generation returns the current generation.
func (s *Scheduler) Generation() uint64 {
	return s.gen
}

// NextGeneration cancels every one-shot callback and starts a new
// generation. It returns the new generation.
func (s *Scheduler) NextGeneration() uint64 {
	for id, t := range s.live {
		if t.gen == 0 {
			continue
		}
		if t.index >= 0 {
			heap.Remove(&s.queue, t.index)
		}
		delete(s.live, id)
	}
	s.gen++
	return s.gen
}

// After schedules fn to run once, delay seconds after the current clock,
// under the current generation.
func (s *Scheduler) After(delay float64, fn func()) Token {
	return s.schedule(s.now+max(delay, 0), 0, s.gen, fn)
}

// Every schedules fn to run every interval seconds until cancelled. A
// non-positive interval schedules nothing.
func (s *Scheduler) Every(interval float64, fn func()) Token {
	if interval <= 0 {
		return Token{}
	}
	return s.schedule(s.now+interval, interval, 0, fn)
}

func (s *Scheduler) schedule(at, interval float64, gen uint64, fn func()) Token {
	s.nextID++
	s.seq++
	t := &timer{
		id:       s.nextID,
		gen:      gen,
		at:       at,
		seq:      s.seq,
		interval: interval,
		fn:       fn,
	}
	s.live[t.id] = t
	heap.Push(&s.queue, t)
	return Token{id: t.id, gen: gen}
}

// Cancel stops a pending callback. It reports whether anything was removed.
func (s *Scheduler) Cancel(tok Token) bool {
	t, ok := s.live[tok.id]
	if !ok {
		return false
	}
	delete(s.live, tok.id)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
	return true
}

// Pending returns the number of scheduled callbacks.
func (s *Scheduler) Pending() int {
	return len(s.live)
}

// Advance moves the clock to now and fires every callback due by then in
// deadline order. The clock reads each callback's deadline while it runs.
// It returns the number of callbacks fired. A clock that moves backwards is
// ignored.
func (s *Scheduler) Advance(now float64) int {
	if now < s.now {
		return 0
	}

	fired := 0
	for len(s.queue) > 0 && s.queue[0].at <= now {
		t := heap.Pop(&s.queue).(*timer)
		s.now = t.at

		if t.gen != 0 && t.gen != s.gen {
			delete(s.live, t.id)
			continue
		}

		if t.interval > 0 {
			s.seq++
			t.at += t.interval
			t.seq = s.seq
			heap.Push(&s.queue, t)
		} else {
			delete(s.live, t.id)
		}

		t.fn()
		fired++
	}
	s.now = now
	return fired
}
