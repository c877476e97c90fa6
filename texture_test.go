package sfml

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/phanxgames/sfml/ffi/ffitest"
)

func pngBytes(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestTextureBorrowedByShapes(t *testing.T) {
	lib := ffitest.Install(t)

	tex, err := NewTexture(64, 32, false)
	if err != nil {
		t.Fatal(err)
	}
	c := NewCircleShapeWithTexture(10, 12, tex)
	if got := c.TextureRect(); got.Size != (Vector2i{X: 64, Y: 32}) {
		t.Errorf("TextureRect = %v, want full texture", got)
	}
	cp := c.Clone()
	if tex.Borrowers() != 2 {
		t.Fatalf("Borrowers = %d, want 2", tex.Borrowers())
	}

	if err := tex.Dispose(); !errors.Is(err, ErrTextureBorrowed) {
		t.Fatalf("Dispose while borrowed: err = %v, want ErrTextureBorrowed", err)
	}
	if tex.Disposed() {
		t.Fatal("texture disposed while borrowed")
	}

	c.Dispose()
	cp.SetTexture(nil, false)
	if cp.Texture() != nil {
		t.Error("Texture not nil after unbinding")
	}
	if tex.Borrowers() != 0 {
		t.Fatalf("Borrowers = %d, want 0", tex.Borrowers())
	}
	if err := tex.Dispose(); err != nil {
		t.Fatalf("Dispose: %v", err)
	}
	cp.Dispose()

	if got := lib.Destroyed(ffitest.ClassTexture); got != 1 {
		t.Errorf("textures destroyed = %d, want 1", got)
	}
}

func TestTextureRebind(t *testing.T) {
	ffitest.Install(t)

	a, err := NewTexture(8, 8, false)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewTexture(16, 16, false)
	if err != nil {
		t.Fatal(err)
	}
	s := NewCustomShapeWithTexture(RegularPolygon(3, 4), a)
	s.SetTexture(a, false)
	if a.Borrowers() != 1 {
		t.Errorf("rebinding the same texture: Borrowers = %d, want 1", a.Borrowers())
	}
	s.SetTexture(b, false)
	if a.Borrowers() != 0 || b.Borrowers() != 1 {
		t.Errorf("Borrowers = %d/%d, want 0/1", a.Borrowers(), b.Borrowers())
	}
	s.Dispose()
	for _, tex := range []*Texture{a, b} {
		if err := tex.Dispose(); err != nil {
			t.Error(err)
		}
	}
}

func TestTextureFromMemory(t *testing.T) {
	ffitest.Install(t)

	data := pngBytes(t, 4, 3, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	tex, err := NewTextureFromMemory(data, true, IntRect{})
	if err != nil {
		t.Fatal(err)
	}
	defer tex.Dispose()

	if got := tex.Size(); got != (Vector2u{X: 4, Y: 3}) {
		t.Errorf("Size = %v", got)
	}
	if !tex.IsSrgb() {
		t.Error("IsSrgb = false")
	}
	img, err := tex.CopyToImage()
	if err != nil {
		t.Fatal(err)
	}
	defer img.Dispose()
	if got := img.Pixel(3, 2); got != (Color{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("Pixel = %v", got)
	}

	area := IntRect{Position: Vector2i{X: 1, Y: 1}, Size: Vector2i{X: 2, Y: 2}}
	sub, err := NewTextureFromStream(bytes.NewReader(data), false, area)
	if err != nil {
		t.Fatal(err)
	}
	defer sub.Dispose()
	if got := sub.Size(); got != (Vector2u{X: 2, Y: 2}) {
		t.Errorf("area Size = %v", got)
	}
}

func TestTextureLoadFailures(t *testing.T) {
	lib := ffitest.Install(t)

	if _, err := NewTextureFromMemory(nil, false, IntRect{}); !errors.Is(err, ErrLoadFailed) {
		t.Errorf("empty data: err = %v", err)
	}
	if _, err := NewTextureFromMemory([]byte("not a png"), false, IntRect{}); !errors.Is(err, ErrLoadFailed) {
		t.Errorf("garbage data: err = %v", err)
	}
	if _, err := NewTexture(MaximumTextureSize()+1, 1, false); !errors.Is(err, ErrLoadFailed) {
		t.Errorf("oversized: err = %v", err)
	}
	lib.FailNext(ffitest.ClassTexture, 1)
	if _, err := NewTexture(1, 1, false); !errors.Is(err, ErrAllocation) {
		t.Errorf("allocation failure: err = %v", err)
	}
	if got := lib.Live(ffitest.ClassTexture); got != 0 {
		t.Errorf("live textures = %d, want 0", got)
	}
}

func TestTextureUpdate(t *testing.T) {
	ffitest.Install(t)

	tex, err := NewTexture(4, 4, false)
	if err != nil {
		t.Fatal(err)
	}
	defer tex.Dispose()

	px := bytes.Repeat([]byte{1, 2, 3, 4}, 4)
	if err := tex.UpdateFromPixels(px, Vector2u{X: 2, Y: 2}, Vector2u{X: 2, Y: 2}); err != nil {
		t.Fatal(err)
	}
	if err := tex.UpdateFromPixels(px, Vector2u{X: 2, Y: 2}, Vector2u{X: 3, Y: 0}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("overflowing update: err = %v", err)
	}
	if err := tex.UpdateFromPixels(px[:3], Vector2u{X: 2, Y: 2}, Vector2u{}); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("short pixels: err = %v", err)
	}

	img, err := tex.CopyToImage()
	if err != nil {
		t.Fatal(err)
	}
	defer img.Dispose()
	if got := img.Pixel(3, 3); got != (Color{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("Pixel(3,3) = %v", got)
	}

	tex.SetSmooth(true)
	tex.SetRepeated(true)
	if !tex.IsSmooth() || !tex.IsRepeated() {
		t.Error("smooth/repeated not kept")
	}
}
