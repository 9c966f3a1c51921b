package bramble

import "testing"

func TestHandleTapDownGatesOnContainment(t *testing.T) {
	var log []string
	r := newTapRecorder("a", &log, 10, 10, 50, 50)

	handleTapDown(r, 1, at(5, 5)) // outside
	if r.tapPointers().has(1) {
		t.Error("pointer must not register outside bounds")
	}
	handleTapDown(r, 1, at(30, 30)) // inside
	if !r.tapPointers().has(1) {
		t.Error("pointer should register inside bounds")
	}
	assertLog(t, log, "a:down:1")
}

func TestHandleTapUpRequiresDown(t *testing.T) {
	var log []string
	r := newTapRecorder("a", &log, 0, 0, 100, 100)

	if cont := handleTapUp(r, 1, at(50, 50)); !cont {
		t.Error("up for unknown pointer should continue propagation")
	}
	assertLog(t, log)

	handleTapDown(r, 1, at(50, 50))
	handleTapUp(r, 1, at(50, 50))
	if r.tapPointers().has(1) {
		t.Error("pointer should be unregistered after up")
	}
	assertLog(t, log, "a:down:1", "a:up:1")
}

func TestHandleTapCancelIsTerminal(t *testing.T) {
	var log []string
	r := newTapRecorder("a", &log, 0, 0, 100, 100)

	handleTapDown(r, 1, at(50, 50))
	handleTapCancel(r, 1)
	// Up after cancel: the pointer is gone, silent no-op.
	handleTapUp(r, 1, at(50, 50))
	assertLog(t, log, "a:down:1", "a:cancel:1")
}

func TestTapIsPressed(t *testing.T) {
	var log []string
	r := newTapRecorder("a", &log, 0, 0, 100, 100)

	if r.IsPressed() {
		t.Error("fresh component should not be pressed")
	}
	handleTapDown(r, 1, at(50, 50))
	handleTapDown(r, 2, at(60, 60))
	if !r.IsPressed() {
		t.Error("IsPressed should be true while pointers are down")
	}
	handleTapUp(r, 1, at(50, 50))
	if !r.IsPressed() {
		t.Error("IsPressed should stay true while one pointer remains")
	}
	handleTapUp(r, 2, at(60, 60))
	if r.IsPressed() {
		t.Error("IsPressed should be false after all pointers lift")
	}
}
