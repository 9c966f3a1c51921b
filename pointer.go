package bramble

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // pixels
)

// PointerID identifies one continuous interaction (a gesture) from its start
// event through its end or cancel. The mouse is always pointer 0; touches are
// assigned slots 1-9 for as long as the finger stays down.
type PointerID int

// Event is an immutable sample of a pointer interaction. The same position is
// carried in both coordinate spaces: Device is the raw screen position and
// World is the position after the game camera's inverse view transform
// (identical to Device when no camera is set).
type Event struct {
	Device Vec2
	World  Vec2
}

// ScrollEvent is an Event with the wheel deltas for the sample.
type ScrollEvent struct {
	Event
	DeltaX float64
	DeltaY float64
}

// ScaleEvent is an Event describing a pinch sample. Device and World hold the
// pinch center point.
type ScaleEvent struct {
	Event
	// Factor is the cumulative scale since the gesture started (1 at start).
	Factor float64
	// Delta is the factor change since the previous sample.
	Delta float64
	// Rotation is the cumulative rotation in radians since the gesture started.
	Rotation float64
}

// pointerSet tracks the pointer IDs of the gestures a capability mixin is
// currently engaged in. Pointer counts are tiny (at most maxPointers), so a
// linear slice beats a map here.
type pointerSet struct {
	ids []PointerID
}

func (s *pointerSet) has(id PointerID) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// add registers id. Adding an already-registered id is a no-op.
func (s *pointerSet) add(id PointerID) {
	if s.has(id) {
		return
	}
	s.ids = append(s.ids, id)
}

// remove unregisters id and reports whether it was registered.
func (s *pointerSet) remove(id PointerID) bool {
	for i, v := range s.ids {
		if v == id {
			copy(s.ids[i:], s.ids[i+1:])
			s.ids = s.ids[:len(s.ids)-1]
			return true
		}
	}
	return false
}

func (s *pointerSet) count() int {
	return len(s.ids)
}
