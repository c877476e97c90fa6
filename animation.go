package sfml

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Disposable is implemented by wrappers that can report disposal.
type Disposable interface {
	Disposed() bool
}

// Positioner is a target for TweenPosition. Shapes satisfy it.
type Positioner interface {
	Disposable
	Position() Vector2f
	SetPosition(Vector2f)
}

// Scaler is a target for TweenScale.
type Scaler interface {
	Disposable
	Scale() Vector2f
	SetScale(Vector2f)
}

// Rotator is a target for TweenRotation.
type Rotator interface {
	Disposable
	Rotation() float32
	SetRotation(float32)
}

// FillColorer is a target for TweenFillColor.
type FillColorer interface {
	Disposable
	FillColor() Color
	SetFillColor(Color)
}

// TweenGroup animates up to 4 float32 values on a foreign object
// simultaneously. Create one via the convenience constructors and call
// Update(dt) each frame; the group writes the values through the target's
// setters. If the target is disposed, the group stops immediately.
//
// There is no global animation manager; callers drive Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	values [4]float32
	apply  func(v [4]float32)
	target Disposable
	Done   bool
}

func newTweenGroup(target Disposable, apply func([4]float32), duration float32, fn ease.TweenFunc, pairs ...[2]float32) *TweenGroup {
	g := &TweenGroup{count: len(pairs), target: target, apply: apply}
	for i, p := range pairs {
		g.tweens[i] = gween.New(p[0], p[1], duration, fn)
		g.values[i] = p[0]
	}
	return g
}

// Update advances all tweens by dt seconds and writes the values to the
// target. If the target has been disposed, Done is set to true and no writes
// occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.Disposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.values[i] = val
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.apply(g.values)
}

// TweenPosition animates the target's position to to.
func TweenPosition(target Positioner, to Vector2f, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := target.Position()
	return newTweenGroup(target, func(v [4]float32) {
		target.SetPosition(Vector2f{X: v[0], Y: v[1]})
	}, duration, fn, [2]float32{from.X, to.X}, [2]float32{from.Y, to.Y})
}

// TweenScale animates the target's scale factors to to.
func TweenScale(target Scaler, to Vector2f, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := target.Scale()
	return newTweenGroup(target, func(v [4]float32) {
		target.SetScale(Vector2f{X: v[0], Y: v[1]})
	}, duration, fn, [2]float32{from.X, to.X}, [2]float32{from.Y, to.Y})
}

// TweenRotation animates the target's rotation to the given angle in degrees.
// The angle is not normalized, so 0 to 720 spins twice.
func TweenRotation(target Rotator, to float32, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(target, func(v [4]float32) {
		target.SetRotation(v[0])
	}, duration, fn, [2]float32{target.Rotation(), to})
}

// TweenFillColor animates all four components of the target's fill color.
func TweenFillColor(target FillColorer, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := target.FillColor()
	return newTweenGroup(target, func(v [4]float32) {
		target.SetFillColor(Color{R: channel(v[0]), G: channel(v[1]), B: channel(v[2]), A: channel(v[3])})
	}, duration, fn,
		[2]float32{float32(from.R), float32(to.R)},
		[2]float32{float32(from.G), float32(to.G)},
		[2]float32{float32(from.B), float32(to.B)},
		[2]float32{float32(from.A), float32(to.A)})
}

// TweenViewZoom animates the view's size from its current value to size/factor,
// matching Camera's zoom convention (factor > 1 zooms in). A factor <= 0 is
// treated as 1.
func TweenViewZoom(view *View, factor float32, duration float32, fn ease.TweenFunc) *TweenGroup {
	if factor <= 0 {
		factor = 1
	}
	from := view.Size()
	to := from.Mul(1 / factor)
	return newTweenGroup(view, func(v [4]float32) {
		view.SetSize(Vector2f{X: v[0], Y: v[1]})
	}, duration, fn, [2]float32{from.X, to.X}, [2]float32{from.Y, to.Y})
}

func channel(v float32) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, float64(v)))))
}
