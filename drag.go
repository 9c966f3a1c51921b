package bramble

// Draggable is the drag capability contract. Components opt in by embedding
// [Drag] and override any of the OnDrag* hooks by redeclaring them on the
// outer type. Hooks return the propagation flag: true lets the event continue
// to the next candidate in traversal order, false claims the event and stops
// dispatch immediately.
type Draggable interface {
	Component

	// OnDragStart fires when a drag begins inside the component's bounds.
	OnDragStart(id PointerID, ev Event) bool
	// OnDragUpdate fires for each movement sample of a drag this component
	// previously accepted.
	OnDragUpdate(id PointerID, ev Event) bool
	// OnDragEnd fires when an accepted drag's pointer is released.
	OnDragEnd(id PointerID, ev Event) bool
	// OnDragCancel fires when an accepted drag is aborted (for example the
	// pointers turned into a pinch).
	OnDragCancel(id PointerID) bool

	dragPointers() *pointerSet
}

// Drag is the embeddable draggable capability. The zero value is ready to use.
// The default hooks do nothing and return true, so an embedding component is
// transparent to drags until it overrides a hook.
type Drag struct {
	pointers pointerSet
}

func (d *Drag) dragPointers() *pointerSet { return &d.pointers }

// IsDragged reports whether at least one drag gesture is active on the component.
func (d *Drag) IsDragged() bool { return d.pointers.count() > 0 }

func (*Drag) OnDragStart(PointerID, Event) bool  { return true }
func (*Drag) OnDragUpdate(PointerID, Event) bool { return true }
func (*Drag) OnDragEnd(PointerID, Event) bool    { return true }
func (*Drag) OnDragCancel(PointerID) bool        { return true }

// --- Dispatch wrappers ---
//
// The handle* functions add the per-gesture bookkeeping on top of the hooks:
// start gates on containment and registers the pointer, the other phases only
// reach the hook while the pointer is registered. A phase for an unregistered
// pointer is a silent no-op that keeps propagation going, which tolerates
// late, duplicate, or out-of-order delivery from the input source.

func handleDragStart(d Draggable, id PointerID, ev Event) bool {
	if !d.ContainsPoint(ev.World) {
		return true
	}
	d.dragPointers().add(id)
	return d.OnDragStart(id, ev)
}

func handleDragUpdate(d Draggable, id PointerID, ev Event) bool {
	if !d.dragPointers().has(id) {
		return true
	}
	return d.OnDragUpdate(id, ev)
}

func handleDragEnd(d Draggable, id PointerID, ev Event) bool {
	if !d.dragPointers().remove(id) {
		return true
	}
	return d.OnDragEnd(id, ev)
}

func handleDragCancel(d Draggable, id PointerID) bool {
	if !d.dragPointers().remove(id) {
		return true
	}
	return d.OnDragCancel(id)
}
