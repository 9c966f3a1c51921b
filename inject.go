package bramble

// syntheticPointerEvent is one queued sample of scripted pointer input. It
// carries device coordinates; world conversion happens at consumption time
// through the same path as real mouse samples, so the camera state of the
// consuming tick applies.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at the given device coordinates. Queued
// events drain one per tick, each taking the real mouse's place for its tick.
func (g *Game) InjectPress(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a held-down pointer move. Combined with InjectPress and
// InjectRelease this simulates a drag; see InjectDrag for the packaged form.
func (g *Game) InjectMove(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given device coordinates.
func (g *Game) InjectRelease(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectTap queues a press and a release at the same spot, consuming two
// ticks. Staying under the drag dead zone, it always dispatches as a tap.
func (g *Game) InjectTap(x, y float64) {
	g.InjectPress(x, y)
	g.InjectRelease(x, y)
}

// InjectDrag queues a complete drag over the given number of ticks: a press
// at (fromX, fromY), evenly spaced held moves, and a release at (toX, toY).
// Fewer than 2 frames is rounded up to the minimum press+release pair.
func (g *Game) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	g.InjectPress(fromX, fromY)
	moves := frames - 2
	for i := 1; i <= moves; i++ {
		t := float64(i) / float64(moves+1)
		g.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	g.InjectRelease(toX, toY)
}

// processInjectedInput consumes the head of the inject queue through the
// pointer 0 state machine. Reports whether a sample was consumed, in which
// case the caller skips real mouse polling for the tick.
func (g *Game) processInjectedInput() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	evt := g.injectQueue[0]
	g.injectQueue = g.injectQueue[:copy(g.injectQueue, g.injectQueue[1:])]

	g.processPointer(0, evt.x, evt.y, evt.pressed)
	return true
}
