package bramble

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestCameraIdentityMapping(t *testing.T) {
	cam := NewCamera(Rect{0, 0, 640, 480})
	cam.X, cam.Y = 320, 240 // centered on the viewport center

	sx, sy := cam.WorldToScreen(320, 240)
	if !approx(sx, 320) || !approx(sy, 240) {
		t.Errorf("center should map to viewport center, got (%v, %v)", sx, sy)
	}
	wx, wy := cam.ScreenToWorld(0, 0)
	if !approx(wx, 0) || !approx(wy, 0) {
		t.Errorf("ScreenToWorld(0,0) = (%v, %v), want (0, 0)", wx, wy)
	}
}

func TestCameraZoomMapping(t *testing.T) {
	cam := NewCamera(Rect{0, 0, 640, 480})
	cam.X, cam.Y = 0, 0
	cam.Zoom = 2

	// The camera centers on the origin: world (10, 0) lands 20px right of
	// the viewport center at 2x zoom.
	sx, sy := cam.WorldToScreen(10, 0)
	if !approx(sx, 340) || !approx(sy, 240) {
		t.Errorf("WorldToScreen(10, 0) = (%v, %v), want (340, 240)", sx, sy)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	cam := NewCamera(Rect{0, 0, 640, 480})
	cam.X, cam.Y = 123, -45
	cam.Zoom = 1.7
	cam.Rotation = 0.3

	wx, wy := cam.ScreenToWorld(100, 200)
	sx, sy := cam.WorldToScreen(wx, wy)
	if !approx(sx, 100) || !approx(sy, 200) {
		t.Errorf("round trip = (%v, %v), want (100, 200)", sx, sy)
	}
}

func TestCameraScrollTo(t *testing.T) {
	cam := NewCamera(Rect{0, 0, 640, 480})
	cam.ScrollTo(100, 50, 1, ease.Linear)

	cam.update(0.5)
	if cam.X <= 0 || cam.X >= 100 {
		t.Errorf("X = %v, want mid-scroll", cam.X)
	}
	cam.update(0.6)
	if !approx(cam.X, 100) || !approx(cam.Y, 50) {
		t.Errorf("final position = (%v, %v), want (100, 50)", cam.X, cam.Y)
	}
	if cam.scrollTween != nil {
		t.Error("finished scroll tween should be released")
	}
}

func TestCameraFollow(t *testing.T) {
	cam := NewCamera(Rect{0, 0, 640, 480})
	target := box(100, 60, 20, 20)
	cam.Follow(target, 0, 0, 1) // snap

	cam.update(1.0 / 60)
	if !approx(cam.X, 110) || !approx(cam.Y, 70) {
		t.Errorf("camera = (%v, %v), want target center (110, 70)", cam.X, cam.Y)
	}
}

func TestCameraBoundsClamp(t *testing.T) {
	cam := NewCamera(Rect{0, 0, 640, 480})
	cam.SetBounds(Rect{0, 0, 1000, 1000})
	cam.X, cam.Y = -500, 2000

	cam.update(1.0 / 60)
	if cam.X != 320 || cam.Y != 760 {
		t.Errorf("clamped = (%v, %v), want (320, 760)", cam.X, cam.Y)
	}
}

func TestCameraBoundsSmallerThanView(t *testing.T) {
	cam := NewCamera(Rect{0, 0, 640, 480})
	cam.SetBounds(Rect{0, 0, 100, 100})
	cam.X, cam.Y = 999, 999

	cam.update(1.0 / 60)
	if cam.X != 50 || cam.Y != 50 {
		t.Errorf("camera should center on small bounds, got (%v, %v)", cam.X, cam.Y)
	}
}

func TestGameEventUsesCameraWorldSpace(t *testing.T) {
	g := NewGame(640, 480)
	cam := NewCamera(Rect{0, 0, 640, 480})
	cam.X, cam.Y = 1000, 1000
	g.SetCamera(cam)

	ev := g.eventAt(320, 240)
	if ev.Device != (Vec2{320, 240}) {
		t.Errorf("Device = %v, want (320, 240)", ev.Device)
	}
	if !approx(ev.World.X, 1000) || !approx(ev.World.Y, 1000) {
		t.Errorf("World = %v, want camera center (1000, 1000)", ev.World)
	}
}
