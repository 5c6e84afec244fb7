package scheduler

import (
	"testing"
)

func TestAfterFiresAtDeadline(t *testing.T) {
	s := New()
	fired := false
	s.After(1.5, func() { fired = true })

	s.Advance(1.4)
	if fired {
		t.Fatal("fired before deadline")
	}
	s.Advance(1.5)
	if !fired {
		t.Fatal("did not fire at deadline")
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d, want 0", s.Pending())
	}
}

func TestAdvanceFiresInDeadlineOrder(t *testing.T) {
	s := New()
	var order []string
	s.After(3, func() { order = append(order, "c") })
	s.After(1, func() { order = append(order, "a") })
	s.After(2, func() { order = append(order, "b1") })
	s.After(2, func() { order = append(order, "b2") })

	if n := s.Advance(10); n != 4 {
		t.Errorf("fired %d, want 4", n)
	}
	want := []string{"a", "b1", "b2", "c"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestClockReadsDeadlineInsideCallback(t *testing.T) {
	s := New()
	var seen float64
	s.After(2, func() {
		seen = s.Now()
		s.After(1, func() {})
	})
	s.Advance(5)

	if seen != 2 {
		t.Errorf("Now() inside callback = %v, want 2", seen)
	}
	// The nested timer was due at 3 and fires in the same Advance.
	if s.Pending() != 0 {
		t.Errorf("pending = %d, want 0", s.Pending())
	}
	if s.Now() != 5 {
		t.Errorf("Now() = %v, want 5", s.Now())
	}
}

func TestCancel(t *testing.T) {
	s := New()
	fired := false
	tok := s.After(1, func() { fired = true })

	if !s.Cancel(tok) {
		t.Fatal("Cancel returned false for pending timer")
	}
	if s.Cancel(tok) {
		t.Error("second Cancel should report false")
	}
	s.Advance(2)
	if fired {
		t.Error("cancelled timer fired")
	}
}

func TestNextGenerationDropsOneShots(t *testing.T) {
	s := New()
	removed := false
	tok := s.After(15, func() { removed = true })
	if tok.Generation() != 1 {
		t.Fatalf("token generation = %d, want 1", tok.Generation())
	}

	s.Advance(5)
	if gen := s.NextGeneration(); gen != 2 {
		t.Fatalf("generation = %d, want 2", gen)
	}
	s.Advance(30)

	if removed {
		t.Error("timer from previous generation fired")
	}
}

func TestStaleTimerFromCallbackIsSkipped(t *testing.T) {
	s := New()
	var fired []string
	s.After(1, func() {
		fired = append(fired, "restart")
		s.NextGeneration()
	})
	s.After(1, func() { fired = append(fired, "stale") })
	s.After(2, func() { fired = append(fired, "stale2") })

	s.Advance(5)
	if len(fired) != 1 || fired[0] != "restart" {
		t.Errorf("fired = %v, want only restart", fired)
	}
}

func TestEveryRepeatsAcrossGenerations(t *testing.T) {
	s := New()
	count := 0
	tok := s.Every(0.1, func() { count++ })

	s.Advance(0.35)
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}

	s.NextGeneration()
	s.Advance(0.55)
	if count != 5 {
		t.Errorf("count after generation change = %d, want 5", count)
	}

	s.Cancel(tok)
	s.Advance(2)
	if count != 5 {
		t.Errorf("count after cancel = %d, want 5", count)
	}
}

func TestEveryCancelledFromOwnCallback(t *testing.T) {
	s := New()
	count := 0
	var tok Token
	tok = s.Every(1, func() {
		count++
		if count == 2 {
			s.Cancel(tok)
		}
	})

	s.Advance(10)
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d, want 0", s.Pending())
	}
}

func TestEveryRejectsNonPositiveInterval(t *testing.T) {
	s := New()
	if tok := s.Every(0, func() {}); tok.Valid() {
		t.Error("zero interval should not schedule")
	}
}

func TestAdvanceBackwardsIgnored(t *testing.T) {
	s := New()
	s.Advance(5)
	fired := false
	s.After(1, func() { fired = true })

	if n := s.Advance(3); n != 0 || s.Now() != 5 {
		t.Errorf("backwards Advance fired %d, clock %v", n, s.Now())
	}
	s.Advance(6)
	if !fired {
		t.Error("timer did not fire after clock resumed")
	}
}
