package sfml

import (
	"fmt"
	"io"

	"github.com/phanxgames/sfml/ffi"
	"go.uber.org/zap"
)

var textureClass = &Class[ffi.Texture]{
	Name:    "Texture",
	Destroy: func(t *ffi.Texture) { lib().TextureDelete(t) },
	Copy:    func(t *ffi.Texture) *ffi.Texture { return lib().TextureCopy(t) },
}

// Texture is an image living in graphics memory. Shapes that draw with a
// texture hold a borrow on it; the texture cannot be disposed until every
// borrower has let go.
type Texture struct {
	box       *FBox[ffi.Texture]
	borrowers int
}

func newTexture() (*Texture, error) {
	box, err := Acquire(textureClass, lib().TextureNew())
	if err != nil {
		return nil, err
	}
	return &Texture{box: box}, nil
}

// NewTexture creates an uninitialized width x height texture.
func NewTexture(width, height uint32, srgb bool) (*Texture, error) {
	t, err := newTexture()
	if err != nil {
		return nil, err
	}
	if !lib().TextureResize(t.raw(), Vector2u{X: width, Y: height}, srgb) {
		t.box.Dispose()
		return nil, fmt.Errorf("%w: texture of %dx%d", ErrLoadFailed, width, height)
	}
	return t, nil
}

// NewTextureFromMemory decodes an encoded image file held in data. A zero
// area loads the whole image; otherwise only area is loaded.
func NewTextureFromMemory(data []byte, srgb bool, area IntRect) (*Texture, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty texture data", ErrLoadFailed)
	}
	t, err := newTexture()
	if err != nil {
		return nil, err
	}
	if !lib().TextureLoadFromMemory(t.raw(), &data[0], uintptr(len(data)), srgb, area) {
		t.box.Dispose()
		return nil, fmt.Errorf("%w: texture from %d bytes", ErrLoadFailed, len(data))
	}
	return t, nil
}

// NewTextureFromStream decodes an encoded image file read from r.
func NewTextureFromStream(r io.ReadSeeker, srgb bool, area IntRect) (*Texture, error) {
	t, err := newTexture()
	if err != nil {
		return nil, err
	}
	ok, err := withStream(r, func(s *ffi.InputStream) bool {
		return lib().TextureLoadFromStream(t.raw(), s, srgb, area)
	})
	if err == nil && !ok {
		err = fmt.Errorf("%w: texture from stream", ErrLoadFailed)
	}
	if err != nil {
		t.box.Dispose()
		return nil, err
	}
	return t, nil
}

// NewTextureFromImage uploads img, or the part of it inside area if area is
// not zero.
func NewTextureFromImage(img *Image, srgb bool, area IntRect) (*Texture, error) {
	t, err := newTexture()
	if err != nil {
		return nil, err
	}
	if !lib().TextureLoadFromImage(t.raw(), img.raw(), srgb, area) {
		t.box.Dispose()
		return nil, fmt.Errorf("%w: texture from image", ErrLoadFailed)
	}
	return t, nil
}

// MaximumTextureSize returns the largest edge length the driver accepts.
func MaximumTextureSize() uint32 {
	return lib().TextureMaximumSize()
}

func (t *Texture) raw() *ffi.Texture { return t.box.Raw() }

// Clone returns an independent copy with no borrowers.
func (t *Texture) Clone() (*Texture, error) {
	box, err := Acquire(textureClass, lib().TextureCopy(t.raw()))
	if err != nil {
		return nil, err
	}
	return &Texture{box: box}, nil
}

// Size returns the size in pixels.
func (t *Texture) Size() Vector2u { return lib().TextureSize(t.raw()) }

// SetSmooth enables or disables linear filtering.
func (t *Texture) SetSmooth(smooth bool) { lib().TextureSetSmooth(t.raw(), smooth) }

// IsSmooth reports whether linear filtering is on.
func (t *Texture) IsSmooth() bool { return lib().TextureIsSmooth(t.raw()) }

// SetRepeated enables or disables repeating outside [0, size).
func (t *Texture) SetRepeated(repeated bool) { lib().TextureSetRepeated(t.raw(), repeated) }

// IsRepeated reports whether the texture repeats.
func (t *Texture) IsRepeated() bool { return lib().TextureIsRepeated(t.raw()) }

// IsSrgb reports whether the texture is sRGB encoded.
func (t *Texture) IsSrgb() bool { return lib().TextureIsSrgb(t.raw()) }

// GenerateMipmap builds the mipmap chain. It reports false if the driver
// could not.
func (t *Texture) GenerateMipmap() bool { return lib().TextureGenerateMipmap(t.raw()) }

func (t *Texture) fits(size, dest Vector2u) error {
	s := t.Size()
	if uint64(dest.X)+uint64(size.X) > uint64(s.X) || uint64(dest.Y)+uint64(size.Y) > uint64(s.Y) {
		return fmt.Errorf("%w: %dx%d at (%d,%d) in %dx%d texture", ErrOutOfRange, size.X, size.Y, dest.X, dest.Y, s.X, s.Y)
	}
	return nil
}

// UpdateFromPixels writes a size.X x size.Y block of RGBA bytes at dest.
func (t *Texture) UpdateFromPixels(pixels []byte, size, dest Vector2u) error {
	need := int(size.X) * int(size.Y) * 4
	if len(pixels) < need {
		return fmt.Errorf("%w: %d pixel bytes, need %d", ErrOutOfRange, len(pixels), need)
	}
	if err := t.fits(size, dest); err != nil {
		return err
	}
	if need == 0 {
		return nil
	}
	lib().TextureUpdateFromPixels(t.raw(), &pixels[0], size, dest)
	return nil
}

// UpdateFromImage writes img at dest.
func (t *Texture) UpdateFromImage(img *Image, dest Vector2u) error {
	if err := t.fits(img.Size(), dest); err != nil {
		return err
	}
	lib().TextureUpdateFromImage(t.raw(), img.raw(), dest)
	return nil
}

// CopyToImage downloads the texture into a new image.
func (t *Texture) CopyToImage() (*Image, error) {
	box, err := Acquire(imageClass, lib().TextureCopyToImage(t.raw()))
	if err != nil {
		return nil, err
	}
	return &Image{box: box}, nil
}

// Borrowers returns how many shapes currently reference the texture.
func (t *Texture) Borrowers() int { return t.borrowers }

func (t *Texture) borrow() { t.borrowers++ }

func (t *Texture) release() {
	if t.borrowers == 0 {
		panic("sfml: texture borrow released twice")
	}
	t.borrowers--
}

// Disposed reports whether the texture has been disposed.
func (t *Texture) Disposed() bool { return t.box.Disposed() }

// Dispose frees the foreign texture. It fails with ErrTextureBorrowed, and
// leaves the texture intact, while any shape still references it.
func (t *Texture) Dispose() error {
	if t.box.Disposed() {
		return nil
	}
	if t.borrowers > 0 {
		Logger().Warn("texture dispose refused", zap.Int("borrowers", t.borrowers))
		return fmt.Errorf("%w (%d borrowers)", ErrTextureBorrowed, t.borrowers)
	}
	t.box.Dispose()
	return nil
}
