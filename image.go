package sfml

import (
	"fmt"
	"image"
	"io"

	"github.com/phanxgames/sfml/ffi"
)

var imageClass = &Class[ffi.Image]{
	Name:    "Image",
	Destroy: func(i *ffi.Image) { lib().ImageDelete(i) },
	Copy:    func(i *ffi.Image) *ffi.Image { return lib().ImageCopy(i) },
}

// Image is an array of RGBA pixels in client memory of the foreign library.
type Image struct {
	box *FBox[ffi.Image]
}

func newImage() (*Image, error) {
	box, err := Acquire(imageClass, lib().ImageNew())
	if err != nil {
		return nil, err
	}
	return &Image{box: box}, nil
}

// NewImage creates a width x height image filled with c.
func NewImage(width, height uint32, c Color) (*Image, error) {
	img, err := newImage()
	if err != nil {
		return nil, err
	}
	lib().ImageResizeWithColor(img.raw(), Vector2u{X: width, Y: height}, c)
	return img, nil
}

// NewImageFromPixels creates a width x height image from RGBA bytes.
// pixels must hold at least width*height*4 bytes.
func NewImageFromPixels(width, height uint32, pixels []byte) (*Image, error) {
	need := int(width) * int(height) * 4
	if len(pixels) < need {
		return nil, fmt.Errorf("%w: %d pixel bytes for %dx%d image, need %d", ErrOutOfRange, len(pixels), width, height, need)
	}
	img, err := newImage()
	if err != nil {
		return nil, err
	}
	var p *byte
	if need > 0 {
		p = &pixels[0]
	}
	lib().ImageResizeWithPixels(img.raw(), Vector2u{X: width, Y: height}, p)
	return img, nil
}

// NewImageFromMemory decodes an encoded image file held in data.
func NewImageFromMemory(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image data", ErrLoadFailed)
	}
	img, err := newImage()
	if err != nil {
		return nil, err
	}
	if !lib().ImageLoadFromMemory(img.raw(), &data[0], uintptr(len(data))) {
		img.Dispose()
		return nil, fmt.Errorf("%w: image from %d bytes", ErrLoadFailed, len(data))
	}
	return img, nil
}

// NewImageFromStream decodes an encoded image file read from r.
func NewImageFromStream(r io.ReadSeeker) (*Image, error) {
	img, err := newImage()
	if err != nil {
		return nil, err
	}
	ok, err := withStream(r, func(s *ffi.InputStream) bool {
		return lib().ImageLoadFromStream(img.raw(), s)
	})
	if err == nil && !ok {
		err = fmt.Errorf("%w: image from stream", ErrLoadFailed)
	}
	if err != nil {
		img.Dispose()
		return nil, err
	}
	return img, nil
}

func (i *Image) raw() *ffi.Image { return i.box.Raw() }

// Clone returns an independent copy.
func (i *Image) Clone() (*Image, error) {
	box, err := Acquire(imageClass, lib().ImageCopy(i.raw()))
	if err != nil {
		return nil, err
	}
	return &Image{box: box}, nil
}

// Size returns the size in pixels.
func (i *Image) Size() Vector2u { return lib().ImageSize(i.raw()) }

func (i *Image) checkPixel(x, y uint32) {
	if s := i.Size(); x >= s.X || y >= s.Y {
		panic(fmt.Sprintf("sfml: pixel (%d,%d) out of range %dx%d", x, y, s.X, s.Y))
	}
}

// Pixel returns the color at (x, y). It panics if the point is outside the
// image.
func (i *Image) Pixel(x, y uint32) Color {
	i.checkPixel(x, y)
	return lib().ImagePixel(i.raw(), Vector2u{X: x, Y: y})
}

// SetPixel sets the color at (x, y). It panics if the point is outside the
// image.
func (i *Image) SetPixel(x, y uint32, c Color) {
	i.checkPixel(x, y)
	lib().ImageSetPixel(i.raw(), Vector2u{X: x, Y: y}, c)
}

// Pixels returns a copy of the RGBA bytes, row by row.
func (i *Image) Pixels() []byte {
	s := i.Size()
	return ffi.GoBytes(lib().ImagePixelsPtr(i.raw()), uintptr(s.X)*uintptr(s.Y)*4)
}

// NRGBA returns a copy of the image as a Go image.
func (i *Image) NRGBA() *image.NRGBA {
	s := i.Size()
	img := image.NewNRGBA(image.Rect(0, 0, int(s.X), int(s.Y)))
	copy(img.Pix, i.Pixels())
	return img
}

// CreateMaskFromColor sets the alpha of every pixel equal to key to alpha.
func (i *Image) CreateMaskFromColor(key Color, alpha uint8) {
	lib().ImageCreateMaskFromColor(i.raw(), key, alpha)
}

// FlipHorizontally mirrors the image left to right.
func (i *Image) FlipHorizontally() { lib().ImageFlipHorizontally(i.raw()) }

// FlipVertically mirrors the image top to bottom.
func (i *Image) FlipVertically() { lib().ImageFlipVertically(i.raw()) }

// Dispose frees the foreign image.
func (i *Image) Dispose() { i.box.Dispose() }
