package bramble

// propagate walks c's subtree looking for components that implement the
// capability interface T and invokes handler on each, in input order:
// siblings from topmost to bottommost (reverse render order), a component's
// subtree before the component itself. The first handler that returns false
// stops the walk immediately; remaining siblings and ancestors are skipped
// and false propagates to the caller.
//
// The handler is never invoked on c itself; the dispatcher covers top-level
// components by propagating from the root container, whose children are the
// top-level components.
func propagate[T any](c Component, handler func(T) bool) bool {
	children := c.base().orderedChildren()
	for i := len(children) - 1; i >= 0; i-- {
		child := children[i]
		if !propagate(child, handler) {
			return false
		}
		if t, ok := child.(T); ok {
			if !handler(t) {
				return false
			}
		}
	}
	return true
}
