package game

import "context"

// Token cancels every event scheduled with it. A level reload swaps in a
// fresh token so callbacks from the previous level never fire.
type Token struct {
	cancelled bool
}

// Cancel marks the token cancelled.
func (t *Token) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Cancelled reports whether Cancel was called.
func (t *Token) Cancelled() bool {
	return t != nil && t.cancelled
}

type event struct {
	due uint64
	seq uint64
	tok *Token
	fn  func(context.Context)
}

// Scheduler runs delayed callbacks on the simulation goroutine. Nothing
// blocks: callbacks fire from Advance once their due tick is reached.
type Scheduler struct {
	now    uint64
	seq    uint64
	events []event
}

// NewScheduler creates an empty scheduler at tick 0.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the current tick.
func (s *Scheduler) Now() uint64 {
	return s.now
}

// After schedules fn to run ticks ticks from now. Events scheduled while
// Advance is running with ticks <= 0 run within the same Advance.
func (s *Scheduler) After(ticks int, tok *Token, fn func(context.Context)) {
	if ticks < 0 {
		ticks = 0
	}
	s.seq++
	s.events = append(s.events, event{
		due: s.now + uint64(ticks),
		seq: s.seq,
		tok: tok,
		fn:  fn,
	})
}

// Advance moves to the next tick and runs every due event in due order,
// ties broken by scheduling order. It returns the number of callbacks run.
func (s *Scheduler) Advance(ctx context.Context) int {
	s.now++
	ran := 0
	for {
		i := s.next()
		if i < 0 {
			return ran
		}
		ev := s.events[i]
		s.events = append(s.events[:i], s.events[i+1:]...)
		if ev.tok.Cancelled() {
			continue
		}
		ev.fn(ctx)
		ran++
	}
}

// next returns the index of the earliest due event, or -1.
func (s *Scheduler) next() int {
	best := -1
	for i, ev := range s.events {
		if ev.due > s.now {
			continue
		}
		if best < 0 || ev.due < s.events[best].due ||
			(ev.due == s.events[best].due && ev.seq < s.events[best].seq) {
			best = i
		}
	}
	return best
}

// Pending returns the number of live events still waiting to run.
func (s *Scheduler) Pending() int {
	n := 0
	for _, ev := range s.events {
		if !ev.tok.Cancelled() {
			n++
		}
	}
	return n
}
