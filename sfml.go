package sfml

import "github.com/phanxgames/sfml/ffi"

// Value types shared with the foreign interface. They are plain structs laid
// out exactly as their C counterparts.
type (
	Vector2f        = ffi.Vector2f
	Vector2i        = ffi.Vector2i
	Vector2u        = ffi.Vector2u
	Color           = ffi.Color
	FloatRect       = ffi.FloatRect
	IntRect         = ffi.IntRect
	ContextSettings = ffi.ContextSettings
)

// Predefined colors.
var (
	ColorBlack       = Color{R: 0, G: 0, B: 0, A: 255}
	ColorWhite       = Color{R: 255, G: 255, B: 255, A: 255}
	ColorRed         = Color{R: 255, G: 0, B: 0, A: 255}
	ColorGreen       = Color{R: 0, G: 255, B: 0, A: 255}
	ColorBlue        = Color{R: 0, G: 0, B: 255, A: 255}
	ColorYellow      = Color{R: 255, G: 255, B: 0, A: 255}
	ColorMagenta     = Color{R: 255, G: 0, B: 255, A: 255}
	ColorCyan        = Color{R: 0, G: 255, B: 255, A: 255}
	ColorTransparent = Color{R: 0, G: 0, B: 0, A: 0}
)

// lib returns the installed foreign library.
func lib() *ffi.Library {
	return ffi.Lib()
}
