package sfml

import (
	"bytes"
	"errors"
	"image/color"
	"testing"

	"github.com/phanxgames/sfml/ffi/ffitest"
)

func TestImagePixels(t *testing.T) {
	ffitest.Install(t)

	img, err := NewImage(3, 2, ColorBlue)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Dispose()

	if got := img.Size(); got != (Vector2u{X: 3, Y: 2}) {
		t.Fatalf("Size = %v", got)
	}
	img.SetPixel(0, 0, ColorRed)
	if got := img.Pixel(0, 0); got != ColorRed {
		t.Errorf("Pixel(0,0) = %v", got)
	}
	if got := img.Pixel(2, 1); got != ColorBlue {
		t.Errorf("Pixel(2,1) = %v", got)
	}

	img.FlipHorizontally()
	if got := img.Pixel(2, 0); got != ColorRed {
		t.Errorf("after FlipHorizontally Pixel(2,0) = %v", got)
	}
	img.FlipVertically()
	if got := img.Pixel(2, 1); got != ColorRed {
		t.Errorf("after FlipVertically Pixel(2,1) = %v", got)
	}

	px := img.Pixels()
	if len(px) != 3*2*4 {
		t.Fatalf("len(Pixels) = %d", len(px))
	}
	nrgba := img.NRGBA()
	if got := nrgba.NRGBAAt(2, 1); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("NRGBA at (2,1) = %v", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Pixel(3,0) did not panic")
		}
	}()
	img.Pixel(3, 0)
}

func TestImageMask(t *testing.T) {
	ffitest.Install(t)

	img, err := NewImageFromPixels(2, 1, []byte{0, 255, 0, 255, 9, 9, 9, 255})
	if err != nil {
		t.Fatal(err)
	}
	defer img.Dispose()

	img.CreateMaskFromColor(ColorGreen, 0)
	if got := img.Pixel(0, 0).A; got != 0 {
		t.Errorf("masked alpha = %d, want 0", got)
	}
	if got := img.Pixel(1, 0).A; got != 255 {
		t.Errorf("unmasked alpha = %d, want 255", got)
	}

	if _, err := NewImageFromPixels(2, 2, make([]byte, 15)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("short pixels: err = %v", err)
	}
}

func TestImageCloneAndLoad(t *testing.T) {
	lib := ffitest.Install(t)

	data := pngBytes(t, 5, 5, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	img, err := NewImageFromMemory(data)
	if err != nil {
		t.Fatal(err)
	}
	cp, err := img.Clone()
	if err != nil {
		t.Fatal(err)
	}
	img.SetPixel(0, 0, ColorWhite)
	img.Dispose()
	if got := cp.Pixel(0, 0); got != (Color{R: 1, G: 2, B: 3, A: 255}) {
		t.Errorf("clone Pixel(0,0) = %v", got)
	}
	cp.Dispose()

	fromStream, err := NewImageFromStream(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if got := fromStream.Size(); got != (Vector2u{X: 5, Y: 5}) {
		t.Errorf("Size = %v", got)
	}
	tex, err := NewTextureFromImage(fromStream, false, IntRect{Size: Vector2i{X: 2, Y: 3}})
	if err != nil {
		t.Fatal(err)
	}
	if got := tex.Size(); got != (Vector2u{X: 2, Y: 3}) {
		t.Errorf("texture Size = %v", got)
	}
	if err := tex.UpdateFromImage(fromStream, Vector2u{}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("oversized image update: err = %v", err)
	}
	tex.Dispose()
	fromStream.Dispose()

	if _, err := NewImageFromStream(bytes.NewReader([]byte("junk"))); !errors.Is(err, ErrLoadFailed) {
		t.Errorf("junk stream: err = %v", err)
	}
	for _, class := range []string{ffitest.ClassImage, ffitest.ClassTexture, ffitest.ClassInputStream} {
		if got := lib.Live(class); got != 0 {
			t.Errorf("live %s = %d, want 0", class, got)
		}
	}
}
