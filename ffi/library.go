package ffi

import (
	"errors"
	"sync/atomic"
	"unsafe"
)

// ErrNotInstalled is the panic value of Lib when no foreign library has been
// installed.
var ErrNotInstalled = errors.New("ffi: no foreign library installed (import github.com/phanxgames/sfml/ffi/native)")

// ShapeABI is the entry-point set shared by every sf::Shape class. The native
// binding fills one per class with the sfCircleShape_* / sfCustomShape_*
// functions.
type ShapeABI[T any] struct {
	SetPosition func(shape *T, position Vector2f)
	SetRotation func(shape *T, angle float32)
	SetScale    func(shape *T, scale Vector2f)
	SetOrigin   func(shape *T, origin Vector2f)
	Position    func(shape *T) Vector2f
	Rotation    func(shape *T) float32
	Scale       func(shape *T) Vector2f
	Origin      func(shape *T) Vector2f
	Move        func(shape *T, offset Vector2f)
	Rotate      func(shape *T, angle float32)
	ScaleBy     func(shape *T, factors Vector2f)

	// Transform and InverseTransform return pointers owned by the shape.
	Transform        func(shape *T) *Transform
	InverseTransform func(shape *T) *Transform

	SetTexture          func(shape *T, texture *Texture, resetRect bool)
	SetTextureRect      func(shape *T, rect IntRect)
	SetFillColor        func(shape *T, color Color)
	SetOutlineColor     func(shape *T, color Color)
	SetOutlineThickness func(shape *T, thickness float32)
	Texture             func(shape *T) *Texture
	TextureRect         func(shape *T) IntRect
	FillColor           func(shape *T) Color
	OutlineColor        func(shape *T) Color
	OutlineThickness    func(shape *T) float32
	PointCount          func(shape *T) uintptr
	Point               func(shape *T, index uintptr) Vector2f
	GeometricCenter     func(shape *T) Vector2f
	LocalBounds         func(shape *T) FloatRect
	GlobalBounds        func(shape *T) FloatRect
}

// Library is the table of foreign entry points. Each field corresponds to one
// C-linkage function of the native library, with the same argument order and
// return convention. Pointer-plus-length arguments stay pointer-plus-length so
// the table can be filled directly from the C symbols.
type Library struct {
	// System
	ClockNew         func() *Clock
	ClockDelete      func(clock *Clock)
	ClockElapsedTime func(clock *Clock) int64
	ClockRestart     func(clock *Clock) int64
	ClockReset       func(clock *Clock) int64
	ClockIsRunning   func(clock *Clock) bool
	ClockStart       func(clock *Clock)
	ClockStop        func(clock *Clock)
	Sleep            func(microseconds int64)

	SfStringLength func(s *SfString) uintptr
	SfStringData   func(s *SfString) *uint32
	SfStringDelete func(s *SfString)

	StdStringLength func(s *StdString) uintptr
	StdStringData   func(s *StdString) *byte
	StdStringDelete func(s *StdString)

	StdStringVectorLength func(v *StdStringVector) uintptr
	StdStringVectorIndex  func(v *StdStringVector, index uintptr) *StdString
	StdStringVectorDelete func(v *StdStringVector)

	// InputStreamNew wires the stream trampolines to userData.
	InputStreamNew    func(userData UserData) *InputStream
	InputStreamDelete func(stream *InputStream)

	// Window
	ClipboardUnicodeString    func() *SfString
	SetClipboardUnicodeString func(text *uint32)

	ContextNew             func() *Context
	ContextDelete          func(ctx *Context)
	ContextSetActive       func(ctx *Context, active bool) bool
	ContextSettings        func(ctx *Context) *ContextSettings
	ContextActiveContextID func() uint64
	ContextActiveContext   func() *Context
	ContextFunction        func(name *byte) uintptr

	// Graphics
	ViewNew         func() *View
	ViewCopy        func(view *View) *View
	ViewDelete      func(view *View)
	ViewSetCenter   func(view *View, center Vector2f)
	ViewSetSize     func(view *View, size Vector2f)
	ViewSetRotation func(view *View, angle float32)
	ViewSetViewport func(view *View, viewport FloatRect)
	ViewSetScissor  func(view *View, scissor FloatRect)
	ViewCenter      func(view *View) Vector2f
	ViewSize        func(view *View) Vector2f
	ViewRotation    func(view *View) float32
	ViewViewport    func(view *View) FloatRect
	ViewScissor     func(view *View) FloatRect
	ViewMove        func(view *View, offset Vector2f)
	ViewRotate      func(view *View, angle float32)
	ViewZoom        func(view *View, factor float32)
	ViewReset       func(view *View, rect FloatRect)

	TransformPoint            func(t *Transform, point Vector2f) Vector2f
	TransformRect             func(t *Transform, rect FloatRect) FloatRect
	TransformCombine          func(t *Transform, other *Transform)
	TransformTranslate        func(t *Transform, offset Vector2f)
	TransformRotate           func(t *Transform, angle float32)
	TransformRotateWithCenter func(t *Transform, angle float32, center Vector2f)
	TransformScale            func(t *Transform, scale Vector2f)
	TransformScaleWithCenter  func(t *Transform, scale Vector2f, center Vector2f)

	TextureNew              func() *Texture
	TextureCopy             func(tex *Texture) *Texture
	TextureDelete           func(tex *Texture)
	TextureResize           func(tex *Texture, size Vector2u, srgb bool) bool
	TextureLoadFromMemory   func(tex *Texture, data *byte, size uintptr, srgb bool, area IntRect) bool
	TextureLoadFromStream   func(tex *Texture, stream *InputStream, srgb bool, area IntRect) bool
	TextureLoadFromImage    func(tex *Texture, img *Image, srgb bool, area IntRect) bool
	TextureSize             func(tex *Texture) Vector2u
	TextureCopyToImage      func(tex *Texture) *Image
	TextureUpdateFromPixels func(tex *Texture, pixels *byte, size Vector2u, dest Vector2u)
	TextureUpdateFromImage  func(tex *Texture, img *Image, dest Vector2u)
	TextureSetSmooth        func(tex *Texture, smooth bool)
	TextureIsSmooth         func(tex *Texture) bool
	TextureIsSrgb           func(tex *Texture) bool
	TextureSetRepeated      func(tex *Texture, repeated bool)
	TextureIsRepeated       func(tex *Texture) bool
	TextureGenerateMipmap   func(tex *Texture) bool
	TextureMaximumSize      func() uint32

	ImageNew                 func() *Image
	ImageCopy                func(img *Image) *Image
	ImageDelete              func(img *Image)
	ImageResizeWithColor     func(img *Image, size Vector2u, color Color)
	ImageResizeWithPixels    func(img *Image, size Vector2u, pixels *byte)
	ImageLoadFromMemory      func(img *Image, data *byte, size uintptr) bool
	ImageLoadFromStream      func(img *Image, stream *InputStream) bool
	ImageCreateMaskFromColor func(img *Image, key Color, alpha uint8)
	ImageSetPixel            func(img *Image, coords Vector2u, color Color)
	ImagePixel               func(img *Image, coords Vector2u) Color
	ImagePixelsPtr           func(img *Image) *byte
	ImageSize                func(img *Image) Vector2u
	ImageFlipHorizontally    func(img *Image)
	ImageFlipVertically      func(img *Image)

	CircleShapeNew           func() *CircleShape
	CircleShapeCopy          func(shape *CircleShape) *CircleShape
	CircleShapeDelete        func(shape *CircleShape)
	CircleShapeSetRadius     func(shape *CircleShape, radius float32)
	CircleShapeRadius        func(shape *CircleShape) float32
	CircleShapeSetPointCount func(shape *CircleShape, count uintptr)
	CircleShape              ShapeABI[CircleShape]

	// CustomShapeNew wires the point trampolines to userData.
	CustomShapeNew    func(userData UserData) *CustomShape
	CustomShapeDelete func(shape *CustomShape)
	CustomShapeUpdate func(shape *CustomShape)
	CustomShape       ShapeABI[CustomShape]

	// Audio
	SoundRecorderIsAvailable      func() bool
	SoundRecorderDefaultDevice    func() *StdString
	SoundRecorderAvailableDevices func() *StdStringVector

	// CustomSoundRecorderNew wires the recorder trampolines to userData.
	CustomSoundRecorderNew                   func(userData UserData) *CustomSoundRecorder
	CustomSoundRecorderDelete                func(rec *CustomSoundRecorder)
	CustomSoundRecorderStart                 func(rec *CustomSoundRecorder, sampleRate uint32) bool
	CustomSoundRecorderStop                  func(rec *CustomSoundRecorder)
	CustomSoundRecorderSampleRate            func(rec *CustomSoundRecorder) uint32
	CustomSoundRecorderSetProcessingInterval func(rec *CustomSoundRecorder, microseconds int64)
	CustomSoundRecorderSetDevice             func(rec *CustomSoundRecorder, name *byte) bool
	// CustomSoundRecorderDevice returns a string owned by the recorder.
	CustomSoundRecorderDevice          func(rec *CustomSoundRecorder) *StdString
	CustomSoundRecorderSetChannelCount func(rec *CustomSoundRecorder, count uint32)
	CustomSoundRecorderChannelCount    func(rec *CustomSoundRecorder) uint32
}

var current atomic.Pointer[Library]

// Install makes l the library used by every wrapper and returns the previously
// installed one (nil if none). Passing nil uninstalls.
func Install(l *Library) *Library {
	return current.Swap(l)
}

// Installed reports whether a library is installed.
func Installed() bool {
	return current.Load() != nil
}

// Lib returns the installed library. It panics with ErrNotInstalled if there
// is none.
func Lib() *Library {
	l := current.Load()
	if l == nil {
		panic(ErrNotInstalled)
	}
	return l
}

// CString returns a NUL-terminated copy of s for entry points taking
// const char*. The result must stay referenced until the call returns.
func CString(s string) *byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}

// GoBytes copies n bytes starting at p. A nil p yields nil.
func GoBytes(p *byte, n uintptr) []byte {
	if p == nil || n == 0 {
		return nil
	}
	return append([]byte(nil), unsafe.Slice(p, n)...)
}
