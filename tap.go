package bramble

// Tappable is the tap capability contract. Components opt in by embedding
// [Tap]. A tap is a press and release without enough movement to become a
// drag; the down/up/cancel phases follow the same registration protocol as
// drags: up and cancel only reach components that accepted the down.
type Tappable interface {
	Component

	// OnTapDown fires when a pointer goes down inside the component's bounds.
	OnTapDown(id PointerID, ev Event) bool
	// OnTapUp fires when an accepted pointer is released without dragging.
	OnTapUp(id PointerID, ev Event) bool
	// OnTapCancel fires when an accepted pointer stops being a tap (it started
	// dragging, joined a pinch, or was lost).
	OnTapCancel(id PointerID) bool

	tapPointers() *pointerSet
}

// Tap is the embeddable tappable capability. The zero value is ready to use;
// the default hooks do nothing and return true.
type Tap struct {
	pointers pointerSet
}

func (t *Tap) tapPointers() *pointerSet { return &t.pointers }

// IsPressed reports whether at least one pointer is currently down on the component.
func (t *Tap) IsPressed() bool { return t.pointers.count() > 0 }

func (*Tap) OnTapDown(PointerID, Event) bool { return true }
func (*Tap) OnTapUp(PointerID, Event) bool   { return true }
func (*Tap) OnTapCancel(PointerID) bool      { return true }

func handleTapDown(t Tappable, id PointerID, ev Event) bool {
	if !t.ContainsPoint(ev.World) {
		return true
	}
	t.tapPointers().add(id)
	return t.OnTapDown(id, ev)
}

func handleTapUp(t Tappable, id PointerID, ev Event) bool {
	if !t.tapPointers().remove(id) {
		return true
	}
	return t.OnTapUp(id, ev)
}

func handleTapCancel(t Tappable, id PointerID) bool {
	if !t.tapPointers().remove(id) {
		return true
	}
	return t.OnTapCancel(id)
}
