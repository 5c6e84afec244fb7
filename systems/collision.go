package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/starvingfish/components"
)

// Contact is a one-shot notification that the fish began touching a body.
type Contact struct {
	Entity   ecs.Entity
	Kind     components.Kind
	BubbleID uint64 // zero unless Kind is KindBubble
}

// ContactTracker remembers which pairs overlapped on the previous tick so
// only separated-to-overlapping transitions are reported.
type ContactTracker struct {
	overlapping map[ecs.Entity]bool
	next        map[ecs.Entity]bool
	began       []Contact
}

// NewContactTracker creates an empty tracker.
func NewContactTracker() *ContactTracker {
	return &ContactTracker{
		overlapping: make(map[ecs.Entity]bool),
		next:        make(map[ecs.Entity]bool),
	}
}

// Begin starts a detection pass.
func (t *ContactTracker) Begin() {
	clear(t.next)
	t.began = t.began[:0]
}

// Observe records whether a candidate overlaps this pass.
func (t *ContactTracker) Observe(c Contact, overlap bool) {
	if !overlap {
		return
	}
	t.next[c.Entity] = true
	if !t.overlapping[c.Entity] {
		t.began = append(t.began, c)
	}
}

// End finishes the pass and returns the single contact to report, if any.
// Bubble contacts win over food since they end the round; among bubbles the
// lowest ID wins.
func (t *ContactTracker) End() (Contact, bool) {
	t.overlapping, t.next = t.next, t.overlapping

	var best Contact
	found := false
	for _, c := range t.began {
		if !found || contactBefore(c, best) {
			best = c
			found = true
		}
	}
	return best, found
}

// Forget drops the overlap history for e, so its next overlap is a new
// contact.
func (t *ContactTracker) Forget(e ecs.Entity) {
	delete(t.overlapping, e)
	delete(t.next, e)
}

// Reset forgets all overlap history.
func (t *ContactTracker) Reset() {
	clear(t.overlapping)
	clear(t.next)
	t.began = t.began[:0]
}

// contactBefore orders contacts for the one-per-tick tie-break.
func contactBefore(a, b Contact) bool {
	if pa, pb := contactPriority(a.Kind), contactPriority(b.Kind); pa != pb {
		return pa < pb
	}
	return a.BubbleID < b.BubbleID
}

func contactPriority(k components.Kind) int {
	switch k {
	case components.KindBubble:
		return 0
	case components.KindFood:
		return 1
	case components.KindFish:
		return 2
	default:
		return 3
	}
}

// CollisionSystem tests the fish against every body it listens to.
type CollisionSystem struct {
	filter    *ecs.Filter2[components.Position, components.Body]
	bubbleMap *ecs.Map1[components.Bubble]
	tracker   *ContactTracker
}

// NewCollisionSystem creates a new collision system.
func NewCollisionSystem(w *ecs.World) *CollisionSystem {
	return &CollisionSystem{
		filter:    ecs.NewFilter2[components.Position, components.Body](w),
		bubbleMap: ecs.NewMap1[components.Bubble](w),
		tracker:   NewContactTracker(),
	}
}

// Detect returns at most one new contact for the fish this tick.
func (s *CollisionSystem) Detect(fish ecs.Entity, fishPos components.Position, fishBody components.Body) (Contact, bool) {
	center := r2.Vec{X: fishPos.X, Y: fishPos.Y}

	s.tracker.Begin()
	query := s.filter.Query()
	for query.Next() {
		e := query.Entity()
		if e == fish {
			continue
		}
		pos, body := query.Get()
		if !fishBody.Contacts.Has(body.Category) {
			continue
		}

		c := Contact{Entity: e, Kind: body.Category}
		if body.Category == components.KindBubble {
			if b := s.bubbleMap.Get(e); b != nil {
				c.BubbleID = b.ID
			}
		}
		overlap := CirclesOverlap(center, fishBody.Radius, r2.Vec{X: pos.X, Y: pos.Y}, body.Radius)
		s.tracker.Observe(c, overlap)
	}
	return s.tracker.End()
}

// Forget drops the overlap history for e.
func (s *CollisionSystem) Forget(e ecs.Entity) {
	s.tracker.Forget(e)
}

// Reset forgets overlap history.
func (s *CollisionSystem) Reset() {
	s.tracker.Reset()
}
