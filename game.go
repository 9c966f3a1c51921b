package bramble

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game owns the component tree and drives it: it implements [ebiten.Game],
// polls raw input once per tick, and dispatches capability events through the
// tree. Top-level components are children of an internal root container, so
// they follow the same ordering rules as any other siblings: insertion order
// is the base render order and input dispatch visits them in reverse,
// topmost first.
type Game struct {
	root   *BaseComponent
	camera *Camera

	width, height int
	dragDeadZone  float64
	debug         bool

	// locked counts in-flight tree walks. Dispatches can nest (a hook may
	// invoke another phase entry point), so this is a depth, not a flag;
	// structural mutations requested while it is nonzero land in pending.
	locked  int
	pending []func()

	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	pinch        pinchState

	injectQueue []syntheticPointerEvent
	script      *Script
}

// NewGame creates a Game with the given logical screen size.
func NewGame(width, height int) *Game {
	g := &Game{
		width:        width,
		height:       height,
		dragDeadZone: defaultDragDeadZone,
	}
	g.root = &BaseComponent{game: g}
	return g
}

// Root returns the internal root container. Top-level components are its
// children.
func (g *Game) Root() *BaseComponent {
	return g.root
}

// Add appends a top-level component.
func (g *Game) Add(c Component) {
	g.root.AddChild(c)
}

// Remove detaches a top-level component and its subtree.
func (g *Game) Remove(c Component) {
	g.root.RemoveChild(c)
}

// Components returns the top-level components in insertion order.
// The returned slice MUST NOT be mutated by the caller.
func (g *Game) Components() []Component {
	return g.root.Children()
}

// SetCamera sets the camera used to map device coordinates to world
// coordinates for input events. A nil camera means the two spaces coincide.
func (g *Game) SetCamera(cam *Camera) {
	g.camera = cam
}

// Camera returns the current camera, or nil.
func (g *Game) Camera() *Camera {
	return g.camera
}

// SetDragDeadZone sets the minimum movement in pixels before a press becomes
// a drag instead of a tap.
func (g *Game) SetDragDeadZone(pixels float64) {
	g.dragDeadZone = pixels
}

// SetDebugMode enables per-tick timing logs on stderr.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
}

// --- ebiten.Game ---

// Update polls input, dispatches events, and advances every component by one
// tick. Part of the [ebiten.Game] interface.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	var stats tickStats
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	if g.script != nil {
		g.script.step(g)
	}
	g.processInput()

	if g.debug {
		stats.inputTime = time.Since(t0)
		t0 = time.Now()
	}

	g.locked++
	updateComponent(g.root, dt)
	g.locked--
	g.flush()
	pruneEffects(g.root)

	if g.camera != nil {
		g.camera.update(dt)
	}

	if g.debug {
		stats.updateTime = time.Since(t0)
		stats.componentCount = countComponents(g.root)
		g.debugLog(stats)
	}
	return nil
}

// Draw renders the tree in painter order: parents under children, siblings by
// ascending priority then insertion order. Part of the [ebiten.Game] interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.locked++
	drawComponent(g.root, screen)
	g.locked--
	g.flush()
}

// Layout reports the logical screen size. Part of the [ebiten.Game] interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// --- Traversal helpers ---

func updateComponent(c Component, dt float64) {
	c.Update(dt)
	for _, child := range c.base().orderedChildren() {
		updateComponent(child, dt)
	}
}

func drawComponent(c Component, dst *ebiten.Image) {
	c.Draw(dst)
	for _, child := range c.base().orderedChildren() {
		drawComponent(child, dst)
	}
}

func countComponents(c Component) int {
	n := 1
	for _, child := range c.Children() {
		n += countComponents(child)
	}
	return n
}

// --- Deferred structural mutation ---

// enqueue records a structural mutation requested while a cycle is in flight.
func (g *Game) enqueue(op func()) {
	g.pending = append(g.pending, op)
}

// flush applies queued structural mutations. Ops may themselves enqueue more
// ops (an added component adding its own children); those run in the same
// flush, in request order. A no-op while any walk is still in flight, so a
// nested dispatch returning does not apply ops the outer walk must not see.
func (g *Game) flush() {
	if g.locked > 0 {
		return
	}
	for len(g.pending) > 0 {
		ops := g.pending
		g.pending = nil
		for _, op := range ops {
			op()
		}
	}
}
