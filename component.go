package bramble

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Component is a node in the scene tree. Concrete components embed
// [BaseComponent], which provides the tree plumbing and default behavior,
// and opt into input capabilities by additionally embedding the capability
// mixins ([Drag], [Tap], [Scroll], [Scale]).
type Component interface {
	// Update advances the component by dt seconds.
	Update(dt float64)
	// Draw renders the component onto dst.
	Draw(dst *ebiten.Image)
	// ContainsPoint reports whether the world-space point p falls inside the
	// component's interactive bounds. Pure; no side effects.
	ContainsPoint(p Vec2) bool
	// Children returns the child list in insertion order.
	// The returned slice MUST NOT be mutated by the caller.
	Children() []Component

	base() *BaseComponent
}

// BaseComponent is the embeddable scene tree node. The zero value is usable:
// a zero-size, priority-zero component with no children.
//
// X, Y, Width, and Height define the default interactive bounds used by
// ContainsPoint; set HitShape for a non-rectangular region. Priority orders
// siblings: higher priorities render later (on top) and therefore receive
// input earlier. Siblings with equal priority keep insertion order.
type BaseComponent struct {
	X, Y          float64
	Width, Height float64
	HitShape      HitShape

	priority int
	parent   *BaseComponent
	game     *Game

	children       []Component
	childrenSorted bool
	sortedChildren []Component // reused buffer for priority-sorted traversal order
}

func (b *BaseComponent) base() *BaseComponent { return b }

// Update is a no-op. Concrete components override it to add behavior.
func (b *BaseComponent) Update(dt float64) {}

// Draw is a no-op. Concrete components override it to render.
func (b *BaseComponent) Draw(dst *ebiten.Image) {}

// ContainsPoint tests p against HitShape when set, otherwise against the
// rectangle (X, Y, Width, Height). A component with zero size and no HitShape
// contains nothing, so bare containers never claim events themselves.
func (b *BaseComponent) ContainsPoint(p Vec2) bool {
	if b.HitShape != nil {
		return b.HitShape.Contains(p.X, p.Y)
	}
	if b.Width == 0 && b.Height == 0 {
		return false
	}
	return p.X >= b.X && p.X <= b.X+b.Width &&
		p.Y >= b.Y && p.Y <= b.Y+b.Height
}

// Priority returns the component's sibling ordering value.
func (b *BaseComponent) Priority() int {
	return b.priority
}

// SetPriority changes the component's sibling ordering value. Takes effect on
// the next traversal.
func (b *BaseComponent) SetPriority(p int) {
	if b.priority == p {
		return
	}
	b.priority = p
	if b.parent != nil {
		b.parent.childrenSorted = false
	}
}

// --- Tree manipulation ---
//
// While a dispatch or update cycle is walking the tree, structural mutation
// is queued on the owning Game and applied after the cycle, so one cycle
// always sees a consistent snapshot of the tree.

// AddChild appends child to this component's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this component (cycle).
func (b *BaseComponent) AddChild(child Component) {
	if child == nil {
		panic("bramble: cannot add nil child")
	}
	cb := child.base()
	// A reparent touches two trees: the destination's and the child's
	// current one. If either is mid-cycle the whole op waits.
	if g := lockedGameOf(b, cb.parent); g != nil {
		g.enqueue(func() { b.AddChild(child) })
		return
	}
	if isAncestor(cb, b) {
		panic("bramble: adding child would create a cycle")
	}
	if cb.parent != nil {
		cb.parent.removeChildNow(child)
	}
	cb.parent = b
	cb.setGame(b.game)
	b.children = append(b.children, child)
	b.childrenSorted = false
}

// RemoveChild detaches child and its whole subtree from this component.
// Panics if child is not a child of this component.
func (b *BaseComponent) RemoveChild(child Component) {
	if child == nil {
		panic("bramble: cannot remove nil child")
	}
	if g := lockedGameOf(b); g != nil {
		g.enqueue(func() { b.RemoveChild(child) })
		return
	}
	cb := child.base()
	if cb.parent != b {
		panic("bramble: child's parent is not this component")
	}
	b.removeChildNow(child)
	cb.parent = nil
	cb.setGame(nil)
}

// RemoveChildren detaches all children from this component.
func (b *BaseComponent) RemoveChildren() {
	if g := lockedGameOf(b); g != nil {
		g.enqueue(func() { b.RemoveChildren() })
		return
	}
	for _, child := range b.children {
		cb := child.base()
		cb.parent = nil
		cb.setGame(nil)
	}
	b.children = b.children[:0]
	b.sortedChildren = nil
	b.childrenSorted = true
}

// Children returns the child list in insertion order.
// The returned slice MUST NOT be mutated by the caller.
func (b *BaseComponent) Children() []Component {
	return b.children
}

// NumChildren returns the number of children.
func (b *BaseComponent) NumChildren() int {
	return len(b.children)
}

// ChildAt returns the child at the given index (insertion order).
func (b *BaseComponent) ChildAt(index int) Component {
	return b.children[index]
}

// removeChildNow removes child from b.children without touching child's
// parent or game links. Uses copy+nil to avoid retaining a dangling reference
// in the backing array.
func (b *BaseComponent) removeChildNow(child Component) {
	for i, c := range b.children {
		if c == child {
			copy(b.children[i:], b.children[i+1:])
			b.children[len(b.children)-1] = nil
			b.children = b.children[:len(b.children)-1]
			b.childrenSorted = false
			return
		}
	}
}

// setGame links b and all its descendants to g (or unlinks when g is nil).
func (b *BaseComponent) setGame(g *Game) {
	b.game = g
	for _, child := range b.children {
		child.base().setGame(g)
	}
}

// lockedGameOf returns the game a mutation touching the given nodes must be
// queued on, or nil when it can apply immediately. Nil nodes (a detached
// child's parent, say) are skipped.
func lockedGameOf(nodes ...*BaseComponent) *Game {
	for _, n := range nodes {
		if n != nil && n.game != nil && n.game.locked > 0 {
			return n.game
		}
	}
	return nil
}

// isAncestor reports whether candidate is b or an ancestor of b.
func isAncestor(candidate, b *BaseComponent) bool {
	for p := b; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// --- Traversal order ---

// orderedChildren returns the children in render order: ascending priority,
// insertion order among equals. Input dispatch iterates the result backward.
func (b *BaseComponent) orderedChildren() []Component {
	if !b.childrenSorted {
		b.rebuildSortedChildren()
	}
	if b.sortedChildren != nil {
		return b.sortedChildren
	}
	return b.children
}

// rebuildSortedChildren refreshes the priority-sorted traversal buffer.
// When every child shares the same priority the buffer is dropped and the
// insertion-order slice is used directly.
func (b *BaseComponent) rebuildSortedChildren() {
	b.childrenSorted = true
	needsSort := false
	for i := 1; i < len(b.children); i++ {
		if b.children[i].base().priority < b.children[i-1].base().priority {
			needsSort = true
			break
		}
	}
	if !needsSort {
		b.sortedChildren = nil
		return
	}
	b.sortedChildren = append(b.sortedChildren[:0], b.children...)
	sort.SliceStable(b.sortedChildren, func(i, j int) bool {
		return b.sortedChildren[i].base().priority < b.sortedChildren[j].base().priority
	})
}
