// Package ebitenbridge converts sfml values to their Ebitengine counterparts,
// so geometry computed by the native library can be drawn by an Ebitengine
// game.
package ebitenbridge

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/sfml"
)

// GeoM converts an affine sfml.Transform into an ebiten.GeoM. The projective
// row of the transform is dropped.
func GeoM(t sfml.Transform) ebiten.GeoM {
	m3 := t.Matrix3()
	var m ebiten.GeoM
	m.SetElement(0, 0, float64(m3[0]))
	m.SetElement(0, 1, float64(m3[1]))
	m.SetElement(0, 2, float64(m3[2]))
	m.SetElement(1, 0, float64(m3[3]))
	m.SetElement(1, 1, float64(m3[4]))
	m.SetElement(1, 2, float64(m3[5]))
	return m
}

// ColorScale converts a straight-alpha sfml.Color into an ebiten.ColorScale.
func ColorScale(c sfml.Color) ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.ScaleWithColor(NRGBA(c))
	return cs
}

// NRGBA converts an sfml.Color into a color.NRGBA.
func NRGBA(c sfml.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// DrawImageOptions returns options drawing with transform t tinted by c.
func DrawImageOptions(t sfml.Transform, c sfml.Color) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{GeoM: GeoM(t)}
	op.ColorScale = ColorScale(c)
	return op
}

// Image uploads a copy of img into a new ebiten.Image.
func Image(img *sfml.Image) *ebiten.Image {
	return ebiten.NewImageFromImage(img.NRGBA())
}

// UpdateImage writes img into dst, which must be the same size.
func UpdateImage(dst *ebiten.Image, img *sfml.Image) {
	pix := img.Pixels()
	premultiply(pix)
	dst.WritePixels(pix)
}

// ReadImage copies src into a new sfml.Image. src must belong to a running
// game.
func ReadImage(src *ebiten.Image) (*sfml.Image, error) {
	b := src.Bounds()
	pix := make([]byte, 4*b.Dx()*b.Dy())
	src.ReadPixels(pix)
	unpremultiply(pix)
	return sfml.NewImageFromPixels(uint32(b.Dx()), uint32(b.Dy()), pix)
}

// Rect converts an sfml.IntRect into an image.Rectangle.
func Rect(r sfml.IntRect) image.Rectangle {
	return image.Rect(int(r.Position.X), int(r.Position.Y),
		int(r.Position.X+r.Size.X), int(r.Position.Y+r.Size.Y))
}

func premultiply(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := uint16(pix[i+3])
		pix[i] = byte(uint16(pix[i]) * a / 255)
		pix[i+1] = byte(uint16(pix[i+1]) * a / 255)
		pix[i+2] = byte(uint16(pix[i+2]) * a / 255)
	}
}

func unpremultiply(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		a := uint16(pix[i+3])
		if a == 0 {
			continue
		}
		pix[i] = byte(min(uint16(pix[i])*255/a, 255))
		pix[i+1] = byte(min(uint16(pix[i+1])*255/a, 255))
		pix[i+2] = byte(min(uint16(pix[i+2])*255/a, 255))
	}
}
