package bramble

import "testing"

func TestPointerSetAddRemove(t *testing.T) {
	var s pointerSet

	if s.has(1) {
		t.Error("empty set should not contain anything")
	}
	s.add(1)
	s.add(2)
	if !s.has(1) || !s.has(2) {
		t.Error("both ids should be present")
	}
	if s.count() != 2 {
		t.Errorf("count = %d, want 2", s.count())
	}

	if !s.remove(1) {
		t.Error("remove should report the id was present")
	}
	if s.has(1) {
		t.Error("removed id should be gone")
	}
	if !s.has(2) {
		t.Error("other id should be untouched")
	}
	if s.remove(1) {
		t.Error("second remove should report absence")
	}
}

func TestPointerSetAddIsIdempotent(t *testing.T) {
	var s pointerSet
	s.add(7)
	s.add(7)
	if s.count() != 1 {
		t.Errorf("count = %d, want 1 (duplicate add must not grow the set)", s.count())
	}
	s.remove(7)
	if s.has(7) {
		t.Error("one remove should clear a doubly-added id")
	}
}
