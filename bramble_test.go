package bramble

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// at builds an Event with identical device and world positions, which is what
// the dispatcher produces when no camera is set.
func at(x, y float64) Event {
	return Event{Device: Vec2{x, y}, World: Vec2{x, y}}
}

// box creates a bare component with rectangular bounds.
func box(x, y, w, h float64) *BaseComponent {
	return &BaseComponent{X: x, Y: y, Width: w, Height: h}
}

// dragRecorder is a draggable component that appends "<name>:<phase>:<id>" to
// a shared log. Phases listed in claim return false (stop propagation).
type dragRecorder struct {
	BaseComponent
	Drag
	name  string
	log   *[]string
	claim map[string]bool
}

func newDragRecorder(name string, log *[]string, x, y, w, h float64) *dragRecorder {
	r := &dragRecorder{name: name, log: log}
	r.X, r.Y, r.Width, r.Height = x, y, w, h
	return r
}

func (r *dragRecorder) record(phase string, id PointerID) bool {
	*r.log = append(*r.log, fmt.Sprintf("%s:%s:%d", r.name, phase, id))
	return !r.claim[phase]
}

func (r *dragRecorder) OnDragStart(id PointerID, ev Event) bool  { return r.record("start", id) }
func (r *dragRecorder) OnDragUpdate(id PointerID, ev Event) bool { return r.record("update", id) }
func (r *dragRecorder) OnDragEnd(id PointerID, ev Event) bool    { return r.record("end", id) }
func (r *dragRecorder) OnDragCancel(id PointerID) bool           { return r.record("cancel", id) }

// tapRecorder is the Tappable counterpart of dragRecorder.
type tapRecorder struct {
	BaseComponent
	Tap
	name  string
	log   *[]string
	claim map[string]bool
}

func newTapRecorder(name string, log *[]string, x, y, w, h float64) *tapRecorder {
	r := &tapRecorder{name: name, log: log}
	r.X, r.Y, r.Width, r.Height = x, y, w, h
	return r
}

func (r *tapRecorder) record(phase string, id PointerID) bool {
	*r.log = append(*r.log, fmt.Sprintf("%s:%s:%d", r.name, phase, id))
	return !r.claim[phase]
}

func (r *tapRecorder) OnTapDown(id PointerID, ev Event) bool { return r.record("down", id) }
func (r *tapRecorder) OnTapUp(id PointerID, ev Event) bool   { return r.record("up", id) }
func (r *tapRecorder) OnTapCancel(id PointerID) bool         { return r.record("cancel", id) }

func assertLog(t *testing.T, got []string, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("event log mismatch (-want +got):\n%s", diff)
	}
}
