package native

/*
#include "csfml.h"
*/
import "C"

import "github.com/phanxgames/sfml/ffi"

func circleShapeABI() ffi.ShapeABI[ffi.CircleShape] {
	s := func(p *ffi.CircleShape) *C.sfCircleShape { return cast[C.sfCircleShape](p) }
	return ffi.ShapeABI[ffi.CircleShape]{
		SetPosition: func(p *ffi.CircleShape, v ffi.Vector2f) { C.sfCircleShape_setPosition(s(p), cVector2f(v)) },
		SetRotation: func(p *ffi.CircleShape, a float32) { C.sfCircleShape_setRotation(s(p), C.float(a)) },
		SetScale:    func(p *ffi.CircleShape, v ffi.Vector2f) { C.sfCircleShape_setScale(s(p), cVector2f(v)) },
		SetOrigin:   func(p *ffi.CircleShape, v ffi.Vector2f) { C.sfCircleShape_setOrigin(s(p), cVector2f(v)) },
		Position:    func(p *ffi.CircleShape) ffi.Vector2f { return goVector2f(C.sfCircleShape_getPosition(s(p))) },
		Rotation:    func(p *ffi.CircleShape) float32 { return float32(C.sfCircleShape_getRotation(s(p))) },
		Scale:       func(p *ffi.CircleShape) ffi.Vector2f { return goVector2f(C.sfCircleShape_getScale(s(p))) },
		Origin:      func(p *ffi.CircleShape) ffi.Vector2f { return goVector2f(C.sfCircleShape_getOrigin(s(p))) },
		Move:        func(p *ffi.CircleShape, v ffi.Vector2f) { C.sfCircleShape_move(s(p), cVector2f(v)) },
		Rotate:      func(p *ffi.CircleShape, a float32) { C.sfCircleShape_rotate(s(p), C.float(a)) },
		ScaleBy:     func(p *ffi.CircleShape, v ffi.Vector2f) { C.sfCircleShape_scale(s(p), cVector2f(v)) },

		Transform:        func(p *ffi.CircleShape) *ffi.Transform { return goTransform(C.sfCircleShape_getTransform(s(p))) },
		InverseTransform: func(p *ffi.CircleShape) *ffi.Transform { return goTransform(C.sfCircleShape_getInverseTransform(s(p))) },

		SetTexture: func(p *ffi.CircleShape, t *ffi.Texture, reset bool) {
			C.sfCircleShape_setTexture(s(p), cast[C.sfTexture](t), C.bool(reset))
		},
		SetTextureRect:      func(p *ffi.CircleShape, r ffi.IntRect) { C.sfCircleShape_setTextureRect(s(p), cIntRect(r)) },
		SetFillColor:        func(p *ffi.CircleShape, c ffi.Color) { C.sfCircleShape_setFillColor(s(p), cColor(c)) },
		SetOutlineColor:     func(p *ffi.CircleShape, c ffi.Color) { C.sfCircleShape_setOutlineColor(s(p), cColor(c)) },
		SetOutlineThickness: func(p *ffi.CircleShape, f float32) { C.sfCircleShape_setOutlineThickness(s(p), C.float(f)) },
		Texture:             func(p *ffi.CircleShape) *ffi.Texture { return cast[ffi.Texture](C.sfCircleShape_getTexture(s(p))) },
		TextureRect:         func(p *ffi.CircleShape) ffi.IntRect { return goIntRect(C.sfCircleShape_getTextureRect(s(p))) },
		FillColor:           func(p *ffi.CircleShape) ffi.Color { return goColor(C.sfCircleShape_getFillColor(s(p))) },
		OutlineColor:        func(p *ffi.CircleShape) ffi.Color { return goColor(C.sfCircleShape_getOutlineColor(s(p))) },
		OutlineThickness:    func(p *ffi.CircleShape) float32 { return float32(C.sfCircleShape_getOutlineThickness(s(p))) },
		PointCount:          func(p *ffi.CircleShape) uintptr { return uintptr(C.sfCircleShape_getPointCount(s(p))) },
		Point: func(p *ffi.CircleShape, i uintptr) ffi.Vector2f {
			return goVector2f(C.sfCircleShape_getPoint(s(p), C.size_t(i)))
		},
		GeometricCenter: func(p *ffi.CircleShape) ffi.Vector2f { return goVector2f(C.sfCircleShape_getGeometricCenter(s(p))) },
		LocalBounds:     func(p *ffi.CircleShape) ffi.FloatRect { return goFloatRect(C.sfCircleShape_getLocalBounds(s(p))) },
		GlobalBounds:    func(p *ffi.CircleShape) ffi.FloatRect { return goFloatRect(C.sfCircleShape_getGlobalBounds(s(p))) },
	}
}

func customShapeABI() ffi.ShapeABI[ffi.CustomShape] {
	s := func(p *ffi.CustomShape) *C.sfCustomShape { return cast[C.sfCustomShape](p) }
	return ffi.ShapeABI[ffi.CustomShape]{
		SetPosition: func(p *ffi.CustomShape, v ffi.Vector2f) { C.sfCustomShape_setPosition(s(p), cVector2f(v)) },
		SetRotation: func(p *ffi.CustomShape, a float32) { C.sfCustomShape_setRotation(s(p), C.float(a)) },
		SetScale:    func(p *ffi.CustomShape, v ffi.Vector2f) { C.sfCustomShape_setScale(s(p), cVector2f(v)) },
		SetOrigin:   func(p *ffi.CustomShape, v ffi.Vector2f) { C.sfCustomShape_setOrigin(s(p), cVector2f(v)) },
		Position:    func(p *ffi.CustomShape) ffi.Vector2f { return goVector2f(C.sfCustomShape_getPosition(s(p))) },
		Rotation:    func(p *ffi.CustomShape) float32 { return float32(C.sfCustomShape_getRotation(s(p))) },
		Scale:       func(p *ffi.CustomShape) ffi.Vector2f { return goVector2f(C.sfCustomShape_getScale(s(p))) },
		Origin:      func(p *ffi.CustomShape) ffi.Vector2f { return goVector2f(C.sfCustomShape_getOrigin(s(p))) },
		Move:        func(p *ffi.CustomShape, v ffi.Vector2f) { C.sfCustomShape_move(s(p), cVector2f(v)) },
		Rotate:      func(p *ffi.CustomShape, a float32) { C.sfCustomShape_rotate(s(p), C.float(a)) },
		ScaleBy:     func(p *ffi.CustomShape, v ffi.Vector2f) { C.sfCustomShape_scale(s(p), cVector2f(v)) },

		Transform:        func(p *ffi.CustomShape) *ffi.Transform { return goTransform(C.sfCustomShape_getTransform(s(p))) },
		InverseTransform: func(p *ffi.CustomShape) *ffi.Transform { return goTransform(C.sfCustomShape_getInverseTransform(s(p))) },

		SetTexture: func(p *ffi.CustomShape, t *ffi.Texture, reset bool) {
			C.sfCustomShape_setTexture(s(p), cast[C.sfTexture](t), C.bool(reset))
		},
		SetTextureRect:      func(p *ffi.CustomShape, r ffi.IntRect) { C.sfCustomShape_setTextureRect(s(p), cIntRect(r)) },
		SetFillColor:        func(p *ffi.CustomShape, c ffi.Color) { C.sfCustomShape_setFillColor(s(p), cColor(c)) },
		SetOutlineColor:     func(p *ffi.CustomShape, c ffi.Color) { C.sfCustomShape_setOutlineColor(s(p), cColor(c)) },
		SetOutlineThickness: func(p *ffi.CustomShape, f float32) { C.sfCustomShape_setOutlineThickness(s(p), C.float(f)) },
		Texture:             func(p *ffi.CustomShape) *ffi.Texture { return cast[ffi.Texture](C.sfCustomShape_getTexture(s(p))) },
		TextureRect:         func(p *ffi.CustomShape) ffi.IntRect { return goIntRect(C.sfCustomShape_getTextureRect(s(p))) },
		FillColor:           func(p *ffi.CustomShape) ffi.Color { return goColor(C.sfCustomShape_getFillColor(s(p))) },
		OutlineColor:        func(p *ffi.CustomShape) ffi.Color { return goColor(C.sfCustomShape_getOutlineColor(s(p))) },
		OutlineThickness:    func(p *ffi.CustomShape) float32 { return float32(C.sfCustomShape_getOutlineThickness(s(p))) },
		PointCount:          func(p *ffi.CustomShape) uintptr { return uintptr(C.sfCustomShape_getPointCount(s(p))) },
		Point: func(p *ffi.CustomShape, i uintptr) ffi.Vector2f {
			return goVector2f(C.sfCustomShape_getPoint(s(p), C.size_t(i)))
		},
		GeometricCenter: func(p *ffi.CustomShape) ffi.Vector2f { return goVector2f(C.sfCustomShape_getGeometricCenter(s(p))) },
		LocalBounds:     func(p *ffi.CustomShape) ffi.FloatRect { return goFloatRect(C.sfCustomShape_getLocalBounds(s(p))) },
		GlobalBounds:    func(p *ffi.CustomShape) ffi.FloatRect { return goFloatRect(C.sfCustomShape_getGlobalBounds(s(p))) },
	}
}
