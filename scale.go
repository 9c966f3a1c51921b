package bramble

// Scalable is the pinch capability contract. A pinch gesture is identified by
// the pointer ID of its first touch; the event's position is the pinch center.
// Registration follows the drag protocol: update/end/cancel only reach
// components whose bounds contained the center at start.
type Scalable interface {
	Component

	// OnScaleStart fires when a pinch begins with its center inside the
	// component's bounds. The event carries Factor == 1.
	OnScaleStart(id PointerID, ev ScaleEvent) bool
	// OnScaleUpdate fires for each sample of an accepted pinch.
	OnScaleUpdate(id PointerID, ev ScaleEvent) bool
	// OnScaleEnd fires when an accepted pinch's fingers lift.
	OnScaleEnd(id PointerID, ev ScaleEvent) bool
	// OnScaleCancel fires when an accepted pinch is aborted (for example a
	// third finger joined).
	OnScaleCancel(id PointerID) bool

	scalePointers() *pointerSet
}

// Scale is the embeddable scalable capability. The zero value is ready to use;
// the default hooks do nothing and return true.
type Scale struct {
	pointers pointerSet
}

func (s *Scale) scalePointers() *pointerSet { return &s.pointers }

// IsScaling reports whether a pinch gesture is active on the component.
func (s *Scale) IsScaling() bool { return s.pointers.count() > 0 }

func (*Scale) OnScaleStart(PointerID, ScaleEvent) bool  { return true }
func (*Scale) OnScaleUpdate(PointerID, ScaleEvent) bool { return true }
func (*Scale) OnScaleEnd(PointerID, ScaleEvent) bool    { return true }
func (*Scale) OnScaleCancel(PointerID) bool             { return true }

func handleScaleStart(s Scalable, id PointerID, ev ScaleEvent) bool {
	if !s.ContainsPoint(ev.World) {
		return true
	}
	s.scalePointers().add(id)
	return s.OnScaleStart(id, ev)
}

func handleScaleUpdate(s Scalable, id PointerID, ev ScaleEvent) bool {
	if !s.scalePointers().has(id) {
		return true
	}
	return s.OnScaleUpdate(id, ev)
}

func handleScaleEnd(s Scalable, id PointerID, ev ScaleEvent) bool {
	if !s.scalePointers().remove(id) {
		return true
	}
	return s.OnScaleEnd(id, ev)
}

func handleScaleCancel(s Scalable, id PointerID) bool {
	if !s.scalePointers().remove(id) {
		return true
	}
	return s.OnScaleCancel(id)
}
