package sfml

import (
	"math"
	"testing"

	"github.com/phanxgames/sfml/ffi/ffitest"
	"github.com/tanema/gween/ease"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func newTestCamera(t *testing.T) (*Camera, *View) {
	t.Helper()
	v, err := NewView()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(v.Dispose)
	return NewCamera(v), v
}

func TestCameraDefaults(t *testing.T) {
	ffitest.Install(t)
	cam, v := newTestCamera(t)

	if cam.Zoom != 1.0 {
		t.Errorf("Zoom = %f, want 1.0", cam.Zoom)
	}
	if cam.X != 500 || cam.Y != 500 {
		t.Errorf("position = (%f,%f), want (500,500)", cam.X, cam.Y)
	}
	if cam.BaseSize != (Vector2f{X: 1000, Y: 1000}) {
		t.Errorf("BaseSize = %v", cam.BaseSize)
	}
	if cam.View() != v {
		t.Error("View() is not the driven view")
	}
}

func TestCameraUpdatePushesToView(t *testing.T) {
	ffitest.Install(t)
	cam, v := newTestCamera(t)

	cam.X, cam.Y = 10, 20
	cam.Zoom = 2
	cam.Rotation = 45
	cam.Update(0)

	if got := v.Center(); got != (Vector2f{X: 10, Y: 20}) {
		t.Errorf("view Center = %v", got)
	}
	if got := v.Size(); got != (Vector2f{X: 500, Y: 500}) {
		t.Errorf("view Size = %v, want (500,500)", got)
	}
	if got := v.Rotation(); got != 45 {
		t.Errorf("view Rotation = %v", got)
	}
}

func TestCameraScrollTo(t *testing.T) {
	ffitest.Install(t)
	cam, v := newTestCamera(t)

	cam.ScrollTo(100, 200, 1.0, ease.Linear)
	if !cam.Animating() {
		t.Fatal("Animating = false after ScrollTo")
	}
	cam.Update(0.5)
	if !approxEqual(cam.X, 300, 0.01) || !approxEqual(cam.Y, 350, 0.01) {
		t.Errorf("midway = (%f,%f), want (300,350)", cam.X, cam.Y)
	}
	cam.Update(0.5)
	if cam.Animating() {
		t.Error("still animating after duration")
	}
	if got := v.Center(); !near(got, Vector2f{X: 100, Y: 200}) {
		t.Errorf("view Center = %v, want (100,200)", got)
	}
}

func TestCameraZoomTo(t *testing.T) {
	ffitest.Install(t)
	cam, v := newTestCamera(t)

	cam.ZoomTo(4, 1.0, ease.Linear)
	cam.Update(1.0)
	if !approxEqual(cam.Zoom, 4, 0.001) {
		t.Errorf("Zoom = %f, want 4", cam.Zoom)
	}
	if got := v.Size(); !near(got, Vector2f{X: 250, Y: 250}) {
		t.Errorf("view Size = %v, want (250,250)", got)
	}
}

func TestCameraFollow(t *testing.T) {
	ffitest.Install(t)
	cam, _ := newTestCamera(t)

	target := NewCircleShape(4, 8)
	target.SetPosition(Vector2f{X: 50, Y: 60})
	cam.Follow(target, Vector2f{X: 10, Y: 0}, 1.0)
	cam.Update(0)
	if cam.X != 60 || cam.Y != 60 {
		t.Errorf("following = (%f,%f), want (60,60)", cam.X, cam.Y)
	}

	cam.Follow(target, Vector2f{}, 0.5)
	target.SetPosition(Vector2f{X: 160, Y: 60})
	cam.Update(0)
	if cam.X != 110 {
		t.Errorf("lerped X = %f, want 110", cam.X)
	}

	target.Dispose()
	cam.Update(0)
	if cam.X != 110 || cam.Y != 60 {
		t.Errorf("moved after target disposed: (%f,%f)", cam.X, cam.Y)
	}
}

func TestCameraBounds(t *testing.T) {
	ffitest.Install(t)
	cam, _ := newTestCamera(t)

	cam.SetBounds(FloatRect{Size: Vector2f{X: 2000, Y: 2000}})
	cam.X, cam.Y = 0, 5000
	cam.Update(0)
	if cam.X != 500 || cam.Y != 1500 {
		t.Errorf("clamped = (%f,%f), want (500,1500)", cam.X, cam.Y)
	}

	cam.SetBounds(FloatRect{Position: Vector2f{X: 100, Y: 100}, Size: Vector2f{X: 200, Y: 200}})
	cam.ClampToBounds()
	if cam.X != 200 || cam.Y != 200 {
		t.Errorf("small bounds = (%f,%f), want centered (200,200)", cam.X, cam.Y)
	}

	cam.ClearBounds()
	cam.X = -1000
	cam.ClampToBounds()
	if cam.X != -1000 {
		t.Errorf("ClampToBounds moved the camera with bounds disabled")
	}
}

func TestCameraVisibleBounds(t *testing.T) {
	ffitest.Install(t)
	cam, _ := newTestCamera(t)

	cam.X, cam.Y = 0, 0
	cam.BaseSize = Vector2f{X: 200, Y: 100}
	b := cam.VisibleBounds()
	if b.Position != (Vector2f{X: -100, Y: -50}) || b.Size != (Vector2f{X: 200, Y: 100}) {
		t.Errorf("VisibleBounds = %v", b)
	}

	cam.Rotation = 90
	b = cam.VisibleBounds()
	if !near(b.Position, Vector2f{X: -50, Y: -100}) || !near(b.Size, Vector2f{X: 100, Y: 200}) {
		t.Errorf("rotated VisibleBounds = %v", b)
	}
}

func TestCameraDisposedView(t *testing.T) {
	ffitest.Install(t)

	v, err := NewView()
	if err != nil {
		t.Fatal(err)
	}
	cam := NewCamera(v)
	v.Dispose()
	cam.X = 42
	cam.Update(0.1)
}
