package bramble

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// The phase entry points below are the event dispatcher: one per gesture
// phase per capability. Each binds its phase wrapper into a closure and
// propagates it through the tree (see propagate for the visit order). The
// tree is locked for the duration of the walk so structural mutation from
// inside a hook is deferred to the end of the dispatch.
//
// Each entry point returns the final propagation flag: false means a
// component claimed the event.

// DragStart dispatches the start sample of a drag gesture.
func (g *Game) DragStart(id PointerID, ev Event) bool {
	return dispatchEvent(g, func(d Draggable) bool { return handleDragStart(d, id, ev) })
}

// DragUpdate dispatches a movement sample of a drag gesture.
func (g *Game) DragUpdate(id PointerID, ev Event) bool {
	return dispatchEvent(g, func(d Draggable) bool { return handleDragUpdate(d, id, ev) })
}

// DragEnd dispatches the terminal sample of a drag gesture.
func (g *Game) DragEnd(id PointerID, ev Event) bool {
	return dispatchEvent(g, func(d Draggable) bool { return handleDragEnd(d, id, ev) })
}

// DragCancel aborts a drag gesture.
func (g *Game) DragCancel(id PointerID) bool {
	return dispatchEvent(g, func(d Draggable) bool { return handleDragCancel(d, id) })
}

// TapDown dispatches a pointer press.
func (g *Game) TapDown(id PointerID, ev Event) bool {
	return dispatchEvent(g, func(t Tappable) bool { return handleTapDown(t, id, ev) })
}

// TapUp dispatches a pointer release that stayed within the drag dead zone.
func (g *Game) TapUp(id PointerID, ev Event) bool {
	return dispatchEvent(g, func(t Tappable) bool { return handleTapUp(t, id, ev) })
}

// TapCancel aborts a pending tap.
func (g *Game) TapCancel(id PointerID) bool {
	return dispatchEvent(g, func(t Tappable) bool { return handleTapCancel(t, id) })
}

// Scroll dispatches a wheel sample.
func (g *Game) Scroll(ev ScrollEvent) bool {
	return dispatchEvent(g, func(s Scrollable) bool { return handleScroll(s, ev) })
}

// ScaleStart dispatches the start sample of a pinch gesture.
func (g *Game) ScaleStart(id PointerID, ev ScaleEvent) bool {
	return dispatchEvent(g, func(s Scalable) bool { return handleScaleStart(s, id, ev) })
}

// ScaleUpdate dispatches a movement sample of a pinch gesture.
func (g *Game) ScaleUpdate(id PointerID, ev ScaleEvent) bool {
	return dispatchEvent(g, func(s Scalable) bool { return handleScaleUpdate(s, id, ev) })
}

// ScaleEnd dispatches the terminal sample of a pinch gesture.
func (g *Game) ScaleEnd(id PointerID, ev ScaleEvent) bool {
	return dispatchEvent(g, func(s Scalable) bool { return handleScaleEnd(s, id, ev) })
}

// ScaleCancel aborts a pinch gesture.
func (g *Game) ScaleCancel(id PointerID) bool {
	return dispatchEvent(g, func(s Scalable) bool { return handleScaleCancel(s, id) })
}

// dispatchEvent runs one locked propagation pass over the whole tree.
// Methods cannot be generic, hence the free function. The lock depth keeps a
// nested dispatch from unlocking the outer walk; flush only acts once the
// outermost pass returns.
func dispatchEvent[T any](g *Game, handler func(T) bool) bool {
	g.locked++
	cont := propagate(Component(g.root), handler)
	g.locked--
	g.flush()
	return cont
}

// eventAt builds an Event for the device position (sx, sy), deriving the
// world position through the camera when one is set.
func (g *Game) eventAt(sx, sy float64) Event {
	wx, wy := sx, sy
	if g.camera != nil {
		wx, wy = g.camera.ScreenToWorld(sx, sy)
	}
	return Event{Device: Vec2{sx, sy}, World: Vec2{wx, wy}}
}

// --- Per-pointer state machine ---

type pointerState struct {
	down     bool
	dragging bool
	start    Vec2 // device coords at press
	last     Vec2 // device coords of the previous sample
}

type pinchState struct {
	active       bool
	pointer0     int
	pointer1     int
	initialDist  float64
	initialAngle float64
	prevDist     float64
	prevAngle    float64
	lastCenter   Vec2 // device coords
	lastFactor   float64
	lastRotation float64
}

// processInput reads the raw input sources for this tick and feeds them
// through the per-pointer state machine. An injected synthetic event takes
// the mouse's place for the tick so scripted input cannot race real input.
func (g *Game) processInput() {
	if g.camera != nil {
		g.camera.computeViewMatrix()
	}
	if !g.processInjectedInput() {
		g.processMousePointer()
	}
	g.processTouchPointers()
	g.detectPinch()
	g.processWheel()
}

// processMousePointer handles mouse input (pointer 0).
func (g *Game) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	g.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (g *Game) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(g.prevTouchIDs[:0])
	g.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := g.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		g.processPointer(PointerID(slot), float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if g.touchUsed[i] && !activeSlots[i] {
			ps := &g.pointers[i]
			if ps.down {
				g.processPointer(PointerID(i), ps.last.X, ps.last.Y, false)
			}
			g.touchUsed[i] = false
			g.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (g *Game) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if g.touchUsed[i] && g.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !g.touchUsed[i] {
			g.touchUsed[i] = true
			g.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the state machine for a single pointer sample, turning
// the raw pressed/position pair into tap and drag phase dispatches.
func (g *Game) processPointer(id PointerID, sx, sy float64, pressed bool) {
	ps := &g.pointers[id]
	ev := g.eventAt(sx, sy)

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.dragging = false
		ps.start = Vec2{sx, sy}
		ps.last = ps.start
		g.TapDown(id, ev)

	case !pressed && ps.down:
		if ps.dragging {
			g.DragEnd(id, ev)
		} else {
			g.TapUp(id, ev)
		}
		ps.down = false
		ps.dragging = false

	case pressed && ps.down:
		if g.pinch.active && (int(id) == g.pinch.pointer0 || int(id) == g.pinch.pointer1) {
			// Pinch pointers feed the pinch, not drags.
			ps.last = Vec2{sx, sy}
			return
		}
		if sx == ps.last.X && sy == ps.last.Y {
			return
		}
		if !ps.dragging {
			dx := sx - ps.start.X
			dy := sy - ps.start.Y
			if math.Sqrt(dx*dx+dy*dy) > g.dragDeadZone {
				ps.dragging = true
				g.TapCancel(id)
				g.DragStart(id, ev)
			}
		}
		if ps.dragging {
			g.DragUpdate(id, ev)
		}
		ps.last = Vec2{sx, sy}
	}
}

// --- Pinch detection ---

// detectPinch turns two simultaneous touches into a pinch gesture. The two
// pointers' pending taps and drags are cancelled when the pinch begins; the
// gesture is identified by the first pointer's ID and its samples carry the
// pinch center.
func (g *Game) detectPinch() {
	var active [maxPointers]bool
	count := 0
	for i := 1; i < maxPointers; i++ {
		if g.pointers[i].down {
			active[i] = true
			count++
		}
	}

	switch {
	case count == 2 && !g.pinch.active:
		p0, p1 := -1, -1
		for i := 1; i < maxPointers; i++ {
			if active[i] {
				if p0 < 0 {
					p0 = i
				} else {
					p1 = i
					break
				}
			}
		}
		g.cancelPointerGestures(PointerID(p0))
		g.cancelPointerGestures(PointerID(p1))

		dist, angle, center := pinchGeometry(&g.pointers[p0], &g.pointers[p1])
		g.pinch = pinchState{
			active:       true,
			pointer0:     p0,
			pointer1:     p1,
			initialDist:  dist,
			initialAngle: angle,
			prevDist:     dist,
			prevAngle:    angle,
			lastCenter:   center,
			lastFactor:   1,
		}
		g.ScaleStart(PointerID(p0), g.scaleEventAt(center, 1, 0, 0))

	case count == 2 && g.pinch.active:
		dist, angle, center := pinchGeometry(&g.pointers[g.pinch.pointer0], &g.pointers[g.pinch.pointer1])
		factor := 1.0
		if g.pinch.initialDist > 0 {
			factor = dist / g.pinch.initialDist
		}
		delta := 0.0
		if g.pinch.prevDist > 0 {
			delta = dist/g.pinch.prevDist - 1.0
		}
		rotation := angle - g.pinch.initialAngle
		g.ScaleUpdate(PointerID(g.pinch.pointer0), g.scaleEventAt(center, factor, delta, rotation))
		g.pinch.prevDist = dist
		g.pinch.prevAngle = angle
		g.pinch.lastCenter = center
		g.pinch.lastFactor = factor
		g.pinch.lastRotation = rotation

	case count != 2 && g.pinch.active:
		id := PointerID(g.pinch.pointer0)
		if count > 2 {
			// A third finger joined; the gesture is ambiguous, abort it.
			g.ScaleCancel(id)
		} else {
			g.ScaleEnd(id, g.scaleEventAt(g.pinch.lastCenter, g.pinch.lastFactor, 0, g.pinch.lastRotation))
		}
		g.pinch.active = false
	}
}

// cancelPointerGestures aborts whatever gesture the pointer is mid-way
// through when it joins a pinch.
func (g *Game) cancelPointerGestures(id PointerID) {
	ps := &g.pointers[id]
	if ps.dragging {
		g.DragCancel(id)
		ps.dragging = false
	} else {
		g.TapCancel(id)
	}
}

func pinchGeometry(p0, p1 *pointerState) (dist, angle float64, center Vec2) {
	dx := p1.last.X - p0.last.X
	dy := p1.last.Y - p0.last.Y
	dist = math.Sqrt(dx*dx + dy*dy)
	angle = math.Atan2(dy, dx)
	center = Vec2{(p0.last.X + p1.last.X) / 2, (p0.last.Y + p1.last.Y) / 2}
	return dist, angle, center
}

func (g *Game) scaleEventAt(center Vec2, factor, delta, rotation float64) ScaleEvent {
	return ScaleEvent{
		Event:    g.eventAt(center.X, center.Y),
		Factor:   factor,
		Delta:    delta,
		Rotation: rotation,
	}
}

// --- Wheel ---

func (g *Game) processWheel() {
	dx, dy := ebiten.Wheel()
	if dx == 0 && dy == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	g.Scroll(ScrollEvent{
		Event:  g.eventAt(float64(mx), float64(my)),
		DeltaX: dx,
		DeltaY: dy,
	})
}
