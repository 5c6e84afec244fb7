package sensor

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Mailbox is a single-slot channel where a newer sample replaces an unread
// older one.
type Mailbox struct {
	ch chan r2.Vec
}

// NewMailbox creates an empty mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{ch: make(chan r2.Vec, 1)}
}

// Post stores v without blocking.
func (m *Mailbox) Post(v r2.Vec) {
	for {
		select {
		case m.ch <- v:
			return
		default:
		}
		// Slot full: discard the stale sample and retry
		select {
		case <-m.ch:
		default:
		}
	}
}

// Drain returns the pending sample, if any.
func (m *Mailbox) Drain() (r2.Vec, bool) {
	select {
	case v := <-m.ch:
		return v, true
	default:
		return r2.Vec{}, false
	}
}
