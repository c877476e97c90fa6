// Package native installs the cgo binding to the CSFML shared libraries as the
// process-wide ffi.Library. Import it for its side effect:
//
//	import _ "github.com/phanxgames/sfml/ffi/native"
//
// The default link flags name the four CSFML modules. Override them with
// CGO_LDFLAGS when the libraries live somewhere non-standard.
package native

/*
#cgo LDFLAGS: -lcsfml-graphics -lcsfml-window -lcsfml-audio -lcsfml-system
#include "csfml.h"
*/
import "C"

import (
	"unsafe"

	"github.com/phanxgames/sfml/ffi"
)

func init() {
	if prev := ffi.Install(library()); prev != nil {
		ffi.Logger().Warn("native binding replaced an installed library")
	}
}

// cast reinterprets a pointer between an ffi marker type and its C class.
func cast[To, From any](p *From) *To {
	return (*To)(unsafe.Pointer(p))
}

func cVector2f(v ffi.Vector2f) C.sfVector2f {
	return C.sfVector2f{x: C.float(v.X), y: C.float(v.Y)}
}

func goVector2f(v C.sfVector2f) ffi.Vector2f {
	return ffi.Vector2f{X: float32(v.x), Y: float32(v.y)}
}

func cVector2u(v ffi.Vector2u) C.sfVector2u {
	return C.sfVector2u{x: C.uint(v.X), y: C.uint(v.Y)}
}

func goVector2u(v C.sfVector2u) ffi.Vector2u {
	return ffi.Vector2u{X: uint32(v.x), Y: uint32(v.y)}
}

func cColor(c ffi.Color) C.sfColor {
	return C.sfColor{r: C.uint8_t(c.R), g: C.uint8_t(c.G), b: C.uint8_t(c.B), a: C.uint8_t(c.A)}
}

func goColor(c C.sfColor) ffi.Color {
	return ffi.Color{R: uint8(c.r), G: uint8(c.g), B: uint8(c.b), A: uint8(c.a)}
}

func cFloatRect(r ffi.FloatRect) C.sfFloatRect {
	return C.sfFloatRect{position: cVector2f(r.Position), size: cVector2f(r.Size)}
}

func goFloatRect(r C.sfFloatRect) ffi.FloatRect {
	return ffi.FloatRect{Position: goVector2f(r.position), Size: goVector2f(r.size)}
}

func cIntRect(r ffi.IntRect) C.sfIntRect {
	return C.sfIntRect{
		position: C.sfVector2i{x: C.int(r.Position.X), y: C.int(r.Position.Y)},
		size:     C.sfVector2i{x: C.int(r.Size.X), y: C.int(r.Size.Y)},
	}
}

func goIntRect(r C.sfIntRect) ffi.IntRect {
	return ffi.IntRect{
		Position: ffi.Vector2i{X: int32(r.position.x), Y: int32(r.position.y)},
		Size:     ffi.Vector2i{X: int32(r.size.x), Y: int32(r.size.y)},
	}
}

func cTransform(t *ffi.Transform) *C.sfmlTransform {
	return (*C.sfmlTransform)(unsafe.Pointer(t))
}

func goTransform(t *C.sfmlTransform) *ffi.Transform {
	return (*ffi.Transform)(unsafe.Pointer(t))
}

func cBytes(p *byte) *C.uint8_t {
	return (*C.uint8_t)(unsafe.Pointer(p))
}

func library() *ffi.Library {
	l := &ffi.Library{
		ClockNew:         func() *ffi.Clock { return cast[ffi.Clock](C.sfClock_new()) },
		ClockDelete:      func(c *ffi.Clock) { C.sfClock_delete(cast[C.sfClock](c)) },
		ClockElapsedTime: func(c *ffi.Clock) int64 { return int64(C.sfClock_getElapsedTime(cast[C.sfClock](c))) },
		ClockRestart:     func(c *ffi.Clock) int64 { return int64(C.sfClock_restart(cast[C.sfClock](c))) },
		ClockReset:       func(c *ffi.Clock) int64 { return int64(C.sfClock_reset(cast[C.sfClock](c))) },
		ClockIsRunning:   func(c *ffi.Clock) bool { return bool(C.sfClock_isRunning(cast[C.sfClock](c))) },
		ClockStart:       func(c *ffi.Clock) { C.sfClock_start(cast[C.sfClock](c)) },
		ClockStop:        func(c *ffi.Clock) { C.sfClock_stop(cast[C.sfClock](c)) },
		Sleep:            func(us int64) { C.sfSleep(C.int64_t(us)) },

		SfStringLength: func(s *ffi.SfString) uintptr { return uintptr(C.sfString_getLength(cast[C.sfString](s))) },
		SfStringData: func(s *ffi.SfString) *uint32 {
			return (*uint32)(unsafe.Pointer(C.sfString_getData(cast[C.sfString](s))))
		},
		SfStringDelete: func(s *ffi.SfString) { C.sfString_delete(cast[C.sfString](s)) },

		StdStringLength: func(s *ffi.StdString) uintptr { return uintptr(C.sfStdString_getLength(cast[C.sfStdString](s))) },
		StdStringData: func(s *ffi.StdString) *byte {
			return (*byte)(unsafe.Pointer(C.sfStdString_getData(cast[C.sfStdString](s))))
		},
		StdStringDelete: func(s *ffi.StdString) { C.sfStdString_del(cast[C.sfStdString](s)) },

		StdStringVectorLength: func(v *ffi.StdStringVector) uintptr {
			return uintptr(C.sfStdStringVector_getLength(cast[C.sfStdStringVector](v)))
		},
		StdStringVectorIndex: func(v *ffi.StdStringVector, i uintptr) *ffi.StdString {
			return cast[ffi.StdString](C.sfStdStringVector_index(cast[C.sfStdStringVector](v), C.size_t(i)))
		},
		StdStringVectorDelete: func(v *ffi.StdStringVector) { C.sfStdStringVector_del(cast[C.sfStdStringVector](v)) },

		InputStreamNew: func(ud ffi.UserData) *ffi.InputStream {
			return cast[ffi.InputStream](C.sfmlInputStreamNew(C.uintptr_t(ud)))
		},
		InputStreamDelete: func(s *ffi.InputStream) { C.sfInputStreamHelper_del(cast[C.sfInputStreamHelper](s)) },

		ClipboardUnicodeString: func() *ffi.SfString { return cast[ffi.SfString](C.sfClipboard_getUnicodeString()) },
		SetClipboardUnicodeString: func(text *uint32) {
			C.sfClipboard_setUnicodeString((*C.uint32_t)(unsafe.Pointer(text)))
		},

		ContextNew:    func() *ffi.Context { return cast[ffi.Context](C.sfContext_new()) },
		ContextDelete: func(c *ffi.Context) { C.sfContext_del(cast[C.sfContext](c)) },
		ContextSetActive: func(c *ffi.Context, active bool) bool {
			return bool(C.sfContext_setActive(cast[C.sfContext](c), C.bool(active)))
		},
		ContextSettings: func(c *ffi.Context) *ffi.ContextSettings {
			return cast[ffi.ContextSettings](C.sfContext_getSettings(cast[C.sfContext](c)))
		},
		ContextActiveContextID: func() uint64 { return uint64(C.sfContext_getActiveContextId()) },
		ContextActiveContext:   func() *ffi.Context { return cast[ffi.Context](C.sfContext_getActiveContext()) },
		ContextFunction: func(name *byte) uintptr {
			return uintptr(unsafe.Pointer(C.sfContext_getFunction((*C.char)(unsafe.Pointer(name)))))
		},

		ViewNew:    func() *ffi.View { return cast[ffi.View](C.sfView_new()) },
		ViewCopy:   func(v *ffi.View) *ffi.View { return cast[ffi.View](C.sfView_cpy(cast[C.sfView](v))) },
		ViewDelete: func(v *ffi.View) { C.sfView_del(cast[C.sfView](v)) },
		ViewSetCenter: func(v *ffi.View, center ffi.Vector2f) {
			C.sfView_setCenter(cast[C.sfView](v), cVector2f(center))
		},
		ViewSetSize:     func(v *ffi.View, size ffi.Vector2f) { C.sfView_setSize(cast[C.sfView](v), cVector2f(size)) },
		ViewSetRotation: func(v *ffi.View, angle float32) { C.sfView_setRotation(cast[C.sfView](v), C.float(angle)) },
		ViewSetViewport: func(v *ffi.View, r ffi.FloatRect) { C.sfView_setViewport(cast[C.sfView](v), cFloatRect(r)) },
		ViewSetScissor:  func(v *ffi.View, r ffi.FloatRect) { C.sfView_setScissor(cast[C.sfView](v), cFloatRect(r)) },
		ViewCenter:      func(v *ffi.View) ffi.Vector2f { return goVector2f(C.sfView_getCenter(cast[C.sfView](v))) },
		ViewSize:        func(v *ffi.View) ffi.Vector2f { return goVector2f(C.sfView_getSize(cast[C.sfView](v))) },
		ViewRotation:    func(v *ffi.View) float32 { return float32(C.sfView_getRotation(cast[C.sfView](v))) },
		ViewViewport:    func(v *ffi.View) ffi.FloatRect { return goFloatRect(C.sfView_getViewport(cast[C.sfView](v))) },
		ViewScissor:     func(v *ffi.View) ffi.FloatRect { return goFloatRect(C.sfView_getScissor(cast[C.sfView](v))) },
		ViewMove:        func(v *ffi.View, off ffi.Vector2f) { C.sfView_move(cast[C.sfView](v), cVector2f(off)) },
		ViewRotate:      func(v *ffi.View, angle float32) { C.sfView_rotate(cast[C.sfView](v), C.float(angle)) },
		ViewZoom:        func(v *ffi.View, factor float32) { C.sfView_zoom(cast[C.sfView](v), C.float(factor)) },
		ViewReset:       func(v *ffi.View, r ffi.FloatRect) { C.sfView_reset(cast[C.sfView](v), cFloatRect(r)) },

		TransformPoint: func(t *ffi.Transform, p ffi.Vector2f) ffi.Vector2f {
			return goVector2f(C.sfTransform_transformPoint(cTransform(t), cVector2f(p)))
		},
		TransformRect: func(t *ffi.Transform, r ffi.FloatRect) ffi.FloatRect {
			return goFloatRect(C.sfTransform_transformRect(cTransform(t), cFloatRect(r)))
		},
		TransformCombine: func(t, other *ffi.Transform) { C.sfTransform_combine(cTransform(t), cTransform(other)) },
		TransformTranslate: func(t *ffi.Transform, off ffi.Vector2f) {
			C.sfTransform_translate(cTransform(t), cVector2f(off))
		},
		TransformRotate: func(t *ffi.Transform, angle float32) { C.sfTransform_rotate(cTransform(t), C.float(angle)) },
		TransformRotateWithCenter: func(t *ffi.Transform, angle float32, center ffi.Vector2f) {
			C.sfTransform_rotateWithCenter(cTransform(t), C.float(angle), cVector2f(center))
		},
		TransformScale: func(t *ffi.Transform, s ffi.Vector2f) { C.sfTransform_scale(cTransform(t), cVector2f(s)) },
		TransformScaleWithCenter: func(t *ffi.Transform, s, center ffi.Vector2f) {
			C.sfTransform_scaleWithCenter(cTransform(t), cVector2f(s), cVector2f(center))
		},

		TextureNew:    func() *ffi.Texture { return cast[ffi.Texture](C.sfTexture_new()) },
		TextureCopy:   func(t *ffi.Texture) *ffi.Texture { return cast[ffi.Texture](C.sfTexture_cpy(cast[C.sfTexture](t))) },
		TextureDelete: func(t *ffi.Texture) { C.sfTexture_del(cast[C.sfTexture](t)) },
		TextureResize: func(t *ffi.Texture, size ffi.Vector2u, srgb bool) bool {
			return bool(C.sfTexture_resize(cast[C.sfTexture](t), cVector2u(size), C.bool(srgb)))
		},
		TextureLoadFromMemory: func(t *ffi.Texture, data *byte, n uintptr, srgb bool, area ffi.IntRect) bool {
			return bool(C.sfTexture_loadFromMemory(cast[C.sfTexture](t), unsafe.Pointer(data), C.size_t(n), C.bool(srgb), cIntRect(area)))
		},
		TextureLoadFromStream: func(t *ffi.Texture, s *ffi.InputStream, srgb bool, area ffi.IntRect) bool {
			return bool(C.sfTexture_loadFromStream(cast[C.sfTexture](t), cast[C.sfInputStreamHelper](s), C.bool(srgb), cIntRect(area)))
		},
		TextureLoadFromImage: func(t *ffi.Texture, img *ffi.Image, srgb bool, area ffi.IntRect) bool {
			return bool(C.sfTexture_loadFromImage(cast[C.sfTexture](t), cast[C.sfImage](img), C.bool(srgb), cIntRect(area)))
		},
		TextureSize:        func(t *ffi.Texture) ffi.Vector2u { return goVector2u(C.sfTexture_getSize(cast[C.sfTexture](t))) },
		TextureCopyToImage: func(t *ffi.Texture) *ffi.Image { return cast[ffi.Image](C.sfTexture_copyToImage(cast[C.sfTexture](t))) },
		TextureUpdateFromPixels: func(t *ffi.Texture, pixels *byte, size, dest ffi.Vector2u) {
			C.sfTexture_updateFromPixels(cast[C.sfTexture](t), cBytes(pixels), cVector2u(size), cVector2u(dest))
		},
		TextureUpdateFromImage: func(t *ffi.Texture, img *ffi.Image, dest ffi.Vector2u) {
			C.sfTexture_updateFromImage(cast[C.sfTexture](t), cast[C.sfImage](img), cVector2u(dest))
		},
		TextureSetSmooth:      func(t *ffi.Texture, on bool) { C.sfTexture_setSmooth(cast[C.sfTexture](t), C.bool(on)) },
		TextureIsSmooth:       func(t *ffi.Texture) bool { return bool(C.sfTexture_isSmooth(cast[C.sfTexture](t))) },
		TextureIsSrgb:         func(t *ffi.Texture) bool { return bool(C.sfTexture_isSrgb(cast[C.sfTexture](t))) },
		TextureSetRepeated:    func(t *ffi.Texture, on bool) { C.sfTexture_setRepeated(cast[C.sfTexture](t), C.bool(on)) },
		TextureIsRepeated:     func(t *ffi.Texture) bool { return bool(C.sfTexture_isRepeated(cast[C.sfTexture](t))) },
		TextureGenerateMipmap: func(t *ffi.Texture) bool { return bool(C.sfTexture_generateMipmap(cast[C.sfTexture](t))) },
		TextureMaximumSize:    func() uint32 { return uint32(C.sfTexture_getMaximumSize()) },

		ImageNew:    func() *ffi.Image { return cast[ffi.Image](C.sfImage_new()) },
		ImageCopy:   func(img *ffi.Image) *ffi.Image { return cast[ffi.Image](C.sfImage_cpy(cast[C.sfImage](img))) },
		ImageDelete: func(img *ffi.Image) { C.sfImage_del(cast[C.sfImage](img)) },
		ImageResizeWithColor: func(img *ffi.Image, size ffi.Vector2u, c ffi.Color) {
			C.sfImage_resizeWithColor(cast[C.sfImage](img), cVector2u(size), cColor(c))
		},
		ImageResizeWithPixels: func(img *ffi.Image, size ffi.Vector2u, pixels *byte) {
			C.sfImage_resizeWithPixels(cast[C.sfImage](img), cVector2u(size), cBytes(pixels))
		},
		ImageLoadFromMemory: func(img *ffi.Image, data *byte, n uintptr) bool {
			return bool(C.sfImage_loadFromMemory(cast[C.sfImage](img), cBytes(data), C.size_t(n)))
		},
		ImageLoadFromStream: func(img *ffi.Image, s *ffi.InputStream) bool {
			return bool(C.sfImage_loadFromStream(cast[C.sfImage](img), cast[C.sfInputStreamHelper](s)))
		},
		ImageCreateMaskFromColor: func(img *ffi.Image, key ffi.Color, alpha uint8) {
			C.sfImage_createMaskFromColor(cast[C.sfImage](img), cColor(key), C.uint8_t(alpha))
		},
		ImageSetPixel: func(img *ffi.Image, at ffi.Vector2u, c ffi.Color) {
			C.sfImage_setPixel(cast[C.sfImage](img), cVector2u(at), cColor(c))
		},
		ImagePixel: func(img *ffi.Image, at ffi.Vector2u) ffi.Color {
			return goColor(C.sfImage_getPixel(cast[C.sfImage](img), cVector2u(at)))
		},
		ImagePixelsPtr: func(img *ffi.Image) *byte {
			return (*byte)(unsafe.Pointer(C.sfImage_getPixelsPtr(cast[C.sfImage](img))))
		},
		ImageSize:             func(img *ffi.Image) ffi.Vector2u { return goVector2u(C.sfImage_getSize(cast[C.sfImage](img))) },
		ImageFlipHorizontally: func(img *ffi.Image) { C.sfImage_flipHorizontally(cast[C.sfImage](img)) },
		ImageFlipVertically:   func(img *ffi.Image) { C.sfImage_flipVertically(cast[C.sfImage](img)) },

		CircleShapeNew: func() *ffi.CircleShape { return cast[ffi.CircleShape](C.sfCircleShape_new()) },
		CircleShapeCopy: func(s *ffi.CircleShape) *ffi.CircleShape {
			return cast[ffi.CircleShape](C.sfCircleShape_cpy(cast[C.sfCircleShape](s)))
		},
		CircleShapeDelete: func(s *ffi.CircleShape) { C.sfCircleShape_del(cast[C.sfCircleShape](s)) },
		CircleShapeSetRadius: func(s *ffi.CircleShape, r float32) {
			C.sfCircleShape_setRadius(cast[C.sfCircleShape](s), C.float(r))
		},
		CircleShapeRadius: func(s *ffi.CircleShape) float32 {
			return float32(C.sfCircleShape_getRadius(cast[C.sfCircleShape](s)))
		},
		CircleShapeSetPointCount: func(s *ffi.CircleShape, n uintptr) {
			C.sfCircleShape_setPointCount(cast[C.sfCircleShape](s), C.size_t(n))
		},
		CircleShape: circleShapeABI(),

		CustomShapeNew: func(ud ffi.UserData) *ffi.CustomShape {
			return cast[ffi.CustomShape](C.sfmlCustomShapeNew(C.uintptr_t(ud)))
		},
		CustomShapeDelete: func(s *ffi.CustomShape) { C.sfCustomShape_del(cast[C.sfCustomShape](s)) },
		CustomShapeUpdate: func(s *ffi.CustomShape) { C.sfCustomShape_update(cast[C.sfCustomShape](s)) },
		CustomShape:       customShapeABI(),

		SoundRecorderIsAvailable: func() bool { return bool(C.sfSoundRecorder_isAvailable()) },
		SoundRecorderDefaultDevice: func() *ffi.StdString {
			return cast[ffi.StdString](C.sfSoundRecorder_getDefaultDevice())
		},
		SoundRecorderAvailableDevices: func() *ffi.StdStringVector {
			return cast[ffi.StdStringVector](C.sfSoundRecorder_getAvailableDevices())
		},
	}
	wireRecorder(l)
	return l
}

func wireRecorder(l *ffi.Library) {
	rec := func(r *ffi.CustomSoundRecorder) *C.sfCustomSoundRecorder {
		return cast[C.sfCustomSoundRecorder](r)
	}
	l.CustomSoundRecorderNew = func(ud ffi.UserData) *ffi.CustomSoundRecorder {
		return cast[ffi.CustomSoundRecorder](C.sfmlCustomSoundRecorderNew(C.uintptr_t(ud)))
	}
	l.CustomSoundRecorderDelete = func(r *ffi.CustomSoundRecorder) { C.sfCustomSoundRecorder_del(rec(r)) }
	l.CustomSoundRecorderStart = func(r *ffi.CustomSoundRecorder, rate uint32) bool {
		return bool(C.sfCustomSoundRecorder_start(rec(r), C.uint(rate)))
	}
	l.CustomSoundRecorderStop = func(r *ffi.CustomSoundRecorder) { C.sfCustomSoundRecorder_stop(rec(r)) }
	l.CustomSoundRecorderSampleRate = func(r *ffi.CustomSoundRecorder) uint32 {
		return uint32(C.sfCustomSoundRecorder_getSampleRate(rec(r)))
	}
	l.CustomSoundRecorderSetProcessingInterval = func(r *ffi.CustomSoundRecorder, us int64) {
		C.sfCustomSoundRecorder_setProcessingInterval(rec(r), C.int64_t(us))
	}
	l.CustomSoundRecorderSetDevice = func(r *ffi.CustomSoundRecorder, name *byte) bool {
		return bool(C.sfCustomSoundRecorder_setDevice(rec(r), (*C.char)(unsafe.Pointer(name))))
	}
	l.CustomSoundRecorderDevice = func(r *ffi.CustomSoundRecorder) *ffi.StdString {
		return cast[ffi.StdString](C.sfCustomSoundRecorder_getDevice(rec(r)))
	}
	l.CustomSoundRecorderSetChannelCount = func(r *ffi.CustomSoundRecorder, n uint32) {
		C.sfCustomSoundRecorder_setChannelCount(rec(r), C.uint(n))
	}
	l.CustomSoundRecorderChannelCount = func(r *ffi.CustomSoundRecorder) uint32 {
		return uint32(C.sfCustomSoundRecorder_getChannelCount(rec(r)))
	}
}
