// Package bramble is a component scene graph for [Ebitengine] with
// capability-based input dispatch.
//
// # Quick start
//
// A [Game] owns an ordered tree of components and implements [ebiten.Game]:
//
//	game := bramble.NewGame(640, 480)
//	game.Add(myComponent)
//	if err := bramble.Run(game, bramble.DefaultRunConfig()); err != nil {
//		log.Fatal(err)
//	}
//
// # Components
//
// A component is any type that embeds [BaseComponent]. The base provides the
// child list, sibling ordering by priority, and the default containment test
// against the component's rectangle (or a custom [HitShape]). Components
// override Update and Draw for behavior and rendering:
//
//	type Crate struct {
//		bramble.BaseComponent
//	}
//
//	func (c *Crate) Draw(dst *ebiten.Image) { ... }
//
// Children are owned by their parent and visited depth-first: render order is
// ascending priority (insertion order among equals), parents under children.
//
// # Capabilities
//
// Components opt into input by embedding capability mixins and overriding
// their hooks:
//
//	type Crate struct {
//		bramble.BaseComponent
//		bramble.Drag
//	}
//
//	func (c *Crate) OnDragUpdate(id bramble.PointerID, ev bramble.Event) bool {
//		c.X, c.Y = ev.World.X, ev.World.Y
//		return false // claim the event
//	}
//
// Available mixins: [Drag], [Tap], [Scroll], and [Scale] (pinch). Every hook
// returns a propagation flag: true passes the event on to the next component
// in traversal order, false claims it and stops dispatch.
//
// Input dispatch walks the tree front to back (the reverse of render order,
// children before parents), so the component drawn on top is always offered
// an event first. A gesture is identified by its [PointerID]; a mixin only
// receives update/end/cancel phases for gestures whose start it accepted
// inside its bounds.
//
// # Input sources
//
// Game.Update polls the mouse (pointer 0), touches (pointers 1-9), and the
// wheel, and feeds them through a per-pointer state machine: a press is a tap
// until it travels past the drag dead zone, two touches form a pinch. For
// tests and automation, synthetic input can be queued with [Game.InjectPress]
// and friends or scripted as JSON via [LoadScript].
//
// [Ebitengine]: https://ebitengine.org
package bramble
