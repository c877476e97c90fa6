package sfml

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PositionSource is anything a Camera can follow. Shapes satisfy it.
type PositionSource interface {
	Position() Vector2f
	Disposed() bool
}

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera drives a View: position, zoom and rotation, with follow, scroll and
// bounds clamping. The camera borrows the view; disposing the view is the
// caller's job, after which Update stops writing to it.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in degrees (clockwise).
	Rotation float64
	// BaseSize is the size of the visible area at Zoom 1.
	BaseSize Vector2f

	followTarget  PositionSource
	followOffsetX float64
	followOffsetY float64
	followLerp    float64

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds FloatRect

	view        *View
	scrollTween *scrollAnim
	zoomTween   *gween.Tween
}

// NewCamera creates a Camera that starts from the view's current center,
// size and rotation.
func NewCamera(view *View) *Camera {
	center := view.Center()
	return &Camera{
		X:        float64(center.X),
		Y:        float64(center.Y),
		Zoom:     1.0,
		Rotation: float64(view.Rotation()),
		BaseSize: view.Size(),
		view:     view,
	}
}

// View returns the view the camera drives.
func (c *Camera) View() *View { return c.view }

// Follow makes the camera track a target with the given offset and lerp factor.
// A lerp of 1.0 snaps immediately; lower values give smoother following.
func (c *Camera) Follow(target PositionSource, offset Vector2f, lerp float64) {
	c.followTarget = target
	c.followOffsetX = float64(offset.X)
	c.followOffsetY = float64(offset.Y)
	c.followLerp = lerp
}

// Unfollow stops tracking the current target.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// ZoomTo animates Zoom to the given value over duration seconds.
func (c *Camera) ZoomTo(zoom float64, duration float32, easeFn ease.TweenFunc) {
	c.zoomTween = gween.New(float32(c.Zoom), float32(zoom), duration, easeFn)
}

// Animating reports whether a scroll or zoom animation is in progress.
func (c *Camera) Animating() bool {
	return c.scrollTween != nil || c.zoomTween != nil
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds FloatRect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// ClampToBounds immediately clamps the camera position so the visible area
// stays within Bounds. No-op if BoundsEnabled is false.
func (c *Camera) ClampToBounds() {
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// Update advances follow, scroll, zoom and bounds clamping by dt seconds,
// then writes the result to the view.
func (c *Camera) Update(dt float32) {
	if c.followTarget != nil {
		if c.followTarget.Disposed() {
			c.followTarget = nil
		} else {
			p := c.followTarget.Position()
			targetX := float64(p.X) + c.followOffsetX
			targetY := float64(p.Y) + c.followOffsetY
			c.X += (targetX - c.X) * c.followLerp
			c.Y += (targetY - c.Y) * c.followLerp
		}
	}

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.zoomTween != nil {
		val, done := c.zoomTween.Update(dt)
		c.Zoom = float64(val)
		if done {
			c.zoomTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}

	c.apply()
}

// apply writes the camera state to the view.
func (c *Camera) apply() {
	if c.view == nil || c.view.Disposed() {
		return
	}
	c.view.SetCenter(Vector2f{X: float32(c.X), Y: float32(c.Y)})
	c.view.SetSize(c.visibleSize())
	c.view.SetRotation(float32(c.Rotation))
}

func (c *Camera) visibleSize() Vector2f {
	z := c.Zoom
	if z <= 0 {
		z = 1
	}
	return Vector2f{X: float32(float64(c.BaseSize.X) / z), Y: float32(float64(c.BaseSize.Y) / z)}
}

// clampToBounds restricts camera position so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	size := c.visibleSize()
	halfW := float64(size.X) / 2
	halfH := float64(size.Y) / 2

	bx, by := float64(c.Bounds.Position.X), float64(c.Bounds.Position.Y)
	bw, bh := float64(c.Bounds.Size.X), float64(c.Bounds.Size.Y)

	minX := bx + halfW
	maxX := bx + bw - halfW
	minY := by + halfH
	maxY := by + bh - halfH

	// If bounds are smaller than visible area, center the camera.
	if minX > maxX {
		c.X = bx + bw/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = by + bh/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's visible
// area in world space, accounting for rotation.
func (c *Camera) VisibleBounds() FloatRect {
	size := c.visibleSize()
	center := Vector2f{X: float32(c.X), Y: float32(c.Y)}
	rect := FloatRect{Position: center.Sub(size.Mul(0.5)), Size: size}
	if c.Rotation == 0 {
		return rect
	}
	t := IdentityTransform
	t.RotateWithCenter(float32(c.Rotation), center)
	return t.TransformRect(rect)
}
