package bramble

// Scrollable is the scroll capability contract. Scroll has no per-pointer
// lifecycle: each wheel sample is a single containment-gated event delivered
// at the cursor position.
type Scrollable interface {
	Component

	// OnScroll fires for a wheel sample over the component's bounds.
	OnScroll(ev ScrollEvent) bool
}

// Scroll is the embeddable scrollable capability. The default hook does
// nothing and returns true.
type Scroll struct{}

func (*Scroll) OnScroll(ScrollEvent) bool { return true }

func handleScroll(s Scrollable, ev ScrollEvent) bool {
	if !s.ContainsPoint(ev.World) {
		return true
	}
	return s.OnScroll(ev)
}
