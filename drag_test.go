package bramble

import "testing"

func TestHandleDragStartRegistersInsideBounds(t *testing.T) {
	var log []string
	r := newDragRecorder("a", &log, 0, 0, 100, 100)

	if cont := handleDragStart(r, 1, at(50, 50)); !cont {
		t.Error("default hook should continue propagation")
	}
	if !r.dragPointers().has(1) {
		t.Error("pointer 1 should be registered after start inside bounds")
	}
	assertLog(t, log, "a:start:1")
}

func TestHandleDragStartOutsideBoundsIsNoop(t *testing.T) {
	var log []string
	r := newDragRecorder("a", &log, 0, 0, 100, 100)

	if cont := handleDragStart(r, 1, at(150, 50)); !cont {
		t.Error("miss should continue propagation")
	}
	if r.dragPointers().has(1) {
		t.Error("pointer must not be registered on a miss")
	}
	assertLog(t, log)
}

func TestHandleDragUpdateRequiresStart(t *testing.T) {
	var log []string
	r := newDragRecorder("a", &log, 0, 0, 100, 100)

	// Update without a prior start: silent no-op, continue.
	if cont := handleDragUpdate(r, 1, at(50, 50)); !cont {
		t.Error("update for unknown pointer should continue propagation")
	}
	assertLog(t, log)

	// Start then update: hook fires.
	handleDragStart(r, 1, at(50, 50))
	handleDragUpdate(r, 1, at(60, 60))
	assertLog(t, log, "a:start:1", "a:update:1")
}

func TestHandleDragEndUnregistersExactlyOnce(t *testing.T) {
	var log []string
	r := newDragRecorder("a", &log, 0, 0, 100, 100)

	handleDragStart(r, 1, at(50, 50))
	handleDragEnd(r, 1, at(60, 60))
	if r.dragPointers().has(1) {
		t.Error("pointer should be unregistered after end")
	}

	// Second end is a no-op.
	if cont := handleDragEnd(r, 1, at(60, 60)); !cont {
		t.Error("duplicate end should continue propagation")
	}
	assertLog(t, log, "a:start:1", "a:end:1")
}

func TestHandleDragCancelUnregisters(t *testing.T) {
	var log []string
	r := newDragRecorder("a", &log, 0, 0, 100, 100)

	handleDragStart(r, 1, at(50, 50))
	handleDragCancel(r, 1)
	if r.dragPointers().has(1) {
		t.Error("pointer should be unregistered after cancel")
	}

	// Cancel for an unknown pointer is a no-op.
	if cont := handleDragCancel(r, 2); !cont {
		t.Error("cancel for unknown pointer should continue propagation")
	}
	assertLog(t, log, "a:start:1", "a:cancel:1")
}

func TestConcurrentPointersTrackedIndependently(t *testing.T) {
	var log []string
	r := newDragRecorder("a", &log, 0, 0, 100, 100)

	handleDragStart(r, 1, at(10, 10))
	handleDragStart(r, 2, at(90, 90))
	if !r.dragPointers().has(1) || !r.dragPointers().has(2) {
		t.Fatal("both pointers should be registered")
	}

	// Ending one must not affect the other.
	handleDragEnd(r, 1, at(10, 10))
	if r.dragPointers().has(1) {
		t.Error("pointer 1 should be unregistered")
	}
	if !r.dragPointers().has(2) {
		t.Error("pointer 2 should stay registered")
	}

	handleDragUpdate(r, 2, at(95, 95))
	assertLog(t, log, "a:start:1", "a:start:2", "a:end:1", "a:update:2")
}

func TestDragIsDragged(t *testing.T) {
	var log []string
	r := newDragRecorder("a", &log, 0, 0, 100, 100)

	if r.IsDragged() {
		t.Error("fresh component should not be dragged")
	}
	handleDragStart(r, 1, at(50, 50))
	if !r.IsDragged() {
		t.Error("IsDragged should be true after an accepted start")
	}
	handleDragEnd(r, 1, at(50, 50))
	if r.IsDragged() {
		t.Error("IsDragged should be false after end")
	}
}

func TestDragDefaultsAreTransparent(t *testing.T) {
	// A component that embeds Drag without overriding hooks continues
	// propagation in every phase.
	type plain struct {
		BaseComponent
		Drag
	}
	p := &plain{}
	p.Width, p.Height = 100, 100

	if !handleDragStart(p, 1, at(50, 50)) {
		t.Error("default OnDragStart should return true")
	}
	if !handleDragUpdate(p, 1, at(55, 55)) {
		t.Error("default OnDragUpdate should return true")
	}
	if !handleDragEnd(p, 1, at(60, 60)) {
		t.Error("default OnDragEnd should return true")
	}
	handleDragStart(p, 2, at(50, 50))
	if !handleDragCancel(p, 2) {
		t.Error("default OnDragCancel should return true")
	}
}
