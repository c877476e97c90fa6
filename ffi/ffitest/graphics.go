package ffitest

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"

	"github.com/phanxgames/sfml/ffi"
)

// MaximumTextureSize is the largest texture edge the fake accepts.
const MaximumTextureSize = 8192

type fakeView struct {
	center   ffi.Vector2f
	size     ffi.Vector2f
	rotation float32
	viewport ffi.FloatRect
	scissor  ffi.FloatRect
}

func defaultView() *fakeView {
	unit := ffi.FloatRect{Size: ffi.Vector2f{X: 1, Y: 1}}
	return &fakeView{
		center:   ffi.Vector2f{X: 500, Y: 500},
		size:     ffi.Vector2f{X: 1000, Y: 1000},
		viewport: unit,
		scissor:  unit,
	}
}

type pixels struct {
	size ffi.Vector2u
	rgba []byte
}

func (p *pixels) resize(size ffi.Vector2u) {
	p.size = size
	p.rgba = make([]byte, int(size.X)*int(size.Y)*4)
}

func (p *pixels) offset(x, y uint32) int {
	return (int(y)*int(p.size.X) + int(x)) * 4
}

// crop returns the pixels inside area, clamped to the image. A zero area
// selects everything.
func (p *pixels) crop(area ffi.IntRect) pixels {
	if area.Size.X <= 0 || area.Size.Y <= 0 {
		return pixels{size: p.size, rgba: append([]byte(nil), p.rgba...)}
	}
	x0, y0 := max(area.Position.X, 0), max(area.Position.Y, 0)
	x1 := min(area.Position.X+area.Size.X, int32(p.size.X))
	y1 := min(area.Position.Y+area.Size.Y, int32(p.size.Y))
	var out pixels
	if x1 <= x0 || y1 <= y0 {
		return out
	}
	out.resize(ffi.Vector2u{X: uint32(x1 - x0), Y: uint32(y1 - y0)})
	for y := y0; y < y1; y++ {
		src := p.offset(uint32(x0), uint32(y))
		dst := out.offset(0, uint32(y-y0))
		copy(out.rgba[dst:dst+int(out.size.X)*4], p.rgba[src:])
	}
	return out
}

// blit copies src into p with its top-left corner at dest, clipping at the
// edges.
func (p *pixels) blit(src pixels, dest ffi.Vector2u) {
	if dest.X >= p.size.X {
		return
	}
	for y := uint32(0); y < src.size.Y && dest.Y+y < p.size.Y; y++ {
		w := min(src.size.X, p.size.X-dest.X)
		s := src.offset(0, y)
		d := p.offset(dest.X, dest.Y+y)
		copy(p.rgba[d:d+int(w)*4], src.rgba[s:s+int(w)*4])
	}
}

func decodePNG(data []byte) (pixels, bool) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return pixels{}, false
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return pixels{size: ffi.Vector2u{X: uint32(b.Dx()), Y: uint32(b.Dy())}, rgba: dst.Pix}, true
}

type fakeTexture struct {
	pixels
	srgb     bool
	smooth   bool
	repeated bool
	mipmap   bool
}

type fakeImage struct {
	pixels
}

func (l *Library) wireGraphics() {
	view := func(v *ffi.View) *fakeView { return get[fakeView](l, ClassView, v) }

	l.ViewNew = func() *ffi.View { return alloc[ffi.View](l, ClassView, defaultView()) }
	l.ViewCopy = func(v *ffi.View) *ffi.View {
		cp := *view(v)
		return alloc[ffi.View](l, ClassView, &cp)
	}
	l.ViewDelete = func(v *ffi.View) { free(l, ClassView, v) }
	l.ViewSetCenter = func(v *ffi.View, c ffi.Vector2f) { view(v).center = c }
	l.ViewSetSize = func(v *ffi.View, s ffi.Vector2f) { view(v).size = s }
	l.ViewSetRotation = func(v *ffi.View, a float32) { view(v).rotation = normalizeDegrees(a) }
	l.ViewSetViewport = func(v *ffi.View, r ffi.FloatRect) { view(v).viewport = r }
	l.ViewSetScissor = func(v *ffi.View, r ffi.FloatRect) { view(v).scissor = r }
	l.ViewCenter = func(v *ffi.View) ffi.Vector2f { return view(v).center }
	l.ViewSize = func(v *ffi.View) ffi.Vector2f { return view(v).size }
	l.ViewRotation = func(v *ffi.View) float32 { return view(v).rotation }
	l.ViewViewport = func(v *ffi.View) ffi.FloatRect { return view(v).viewport }
	l.ViewScissor = func(v *ffi.View) ffi.FloatRect { return view(v).scissor }
	l.ViewMove = func(v *ffi.View, off ffi.Vector2f) {
		fv := view(v)
		fv.center = fv.center.Add(off)
	}
	l.ViewRotate = func(v *ffi.View, a float32) {
		fv := view(v)
		fv.rotation = normalizeDegrees(fv.rotation + a)
	}
	l.ViewZoom = func(v *ffi.View, f float32) {
		fv := view(v)
		fv.size = fv.size.Mul(f)
	}
	l.ViewReset = func(v *ffi.View, r ffi.FloatRect) {
		fv := view(v)
		fv.center = r.Position.Add(r.Size.Mul(0.5))
		fv.size = r.Size
		fv.rotation = 0
	}

	combine := func(t *ffi.Transform, m mat3) {
		*t = fromTransform(t).mul(m).transform()
	}
	l.TransformPoint = func(t *ffi.Transform, p ffi.Vector2f) ffi.Vector2f { return fromTransform(t).apply(p) }
	l.TransformRect = func(t *ffi.Transform, r ffi.FloatRect) ffi.FloatRect { return fromTransform(t).applyRect(r) }
	l.TransformCombine = func(t, o *ffi.Transform) { combine(t, fromTransform(o)) }
	l.TransformTranslate = func(t *ffi.Transform, off ffi.Vector2f) { combine(t, translation(off)) }
	l.TransformRotate = func(t *ffi.Transform, a float32) { combine(t, rotation(a, ffi.Vector2f{})) }
	l.TransformRotateWithCenter = func(t *ffi.Transform, a float32, c ffi.Vector2f) { combine(t, rotation(a, c)) }
	l.TransformScale = func(t *ffi.Transform, s ffi.Vector2f) { combine(t, scaling(s, ffi.Vector2f{})) }
	l.TransformScaleWithCenter = func(t *ffi.Transform, s, c ffi.Vector2f) { combine(t, scaling(s, c)) }

	l.wireTexture()
	l.wireImage()
}

func (l *Library) wireTexture() {
	tex := func(t *ffi.Texture) *fakeTexture { return get[fakeTexture](l, ClassTexture, t) }
	load := func(t *ffi.Texture, src pixels, ok bool, srgb bool, area ffi.IntRect) bool {
		if !ok {
			return false
		}
		p := src.crop(area)
		if p.size.X == 0 || p.size.Y == 0 || p.size.X > MaximumTextureSize || p.size.Y > MaximumTextureSize {
			return false
		}
		ft := tex(t)
		ft.pixels, ft.srgb, ft.mipmap = p, srgb, false
		return true
	}

	l.TextureNew = func() *ffi.Texture { return alloc[ffi.Texture](l, ClassTexture, &fakeTexture{}) }
	l.TextureCopy = func(t *ffi.Texture) *ffi.Texture {
		cp := *tex(t)
		cp.rgba = append([]byte(nil), cp.rgba...)
		return alloc[ffi.Texture](l, ClassTexture, &cp)
	}
	l.TextureDelete = func(t *ffi.Texture) {
		if t == nil {
			return
		}
		if n := l.Binders(t); n > 0 {
			l.violate("%s: destroyed while bound to %d shapes", ClassTexture, n)
		}
		free(l, ClassTexture, t)
	}
	l.TextureResize = func(t *ffi.Texture, size ffi.Vector2u, srgb bool) bool {
		if size.X == 0 || size.Y == 0 || size.X > MaximumTextureSize || size.Y > MaximumTextureSize {
			return false
		}
		ft := tex(t)
		ft.resize(size)
		ft.srgb, ft.mipmap = srgb, false
		return true
	}
	l.TextureLoadFromMemory = func(t *ffi.Texture, data *byte, n uintptr, srgb bool, area ffi.IntRect) bool {
		p, ok := decodePNG(ffi.GoBytes(data, n))
		return load(t, p, ok, srgb, area)
	}
	l.TextureLoadFromStream = func(t *ffi.Texture, s *ffi.InputStream, srgb bool, area ffi.IntRect) bool {
		data, ok := l.ReadStream(s, 512)
		if !ok {
			return false
		}
		p, ok := decodePNG(data)
		return load(t, p, ok, srgb, area)
	}
	l.TextureLoadFromImage = func(t *ffi.Texture, img *ffi.Image, srgb bool, area ffi.IntRect) bool {
		return load(t, get[fakeImage](l, ClassImage, img).pixels, true, srgb, area)
	}
	l.TextureSize = func(t *ffi.Texture) ffi.Vector2u { return tex(t).size }
	l.TextureCopyToImage = func(t *ffi.Texture) *ffi.Image {
		ft := tex(t)
		return alloc[ffi.Image](l, ClassImage, &fakeImage{pixels: ft.crop(ffi.IntRect{})})
	}
	l.TextureUpdateFromPixels = func(t *ffi.Texture, src *byte, size, dest ffi.Vector2u) {
		n := uintptr(size.X) * uintptr(size.Y) * 4
		tex(t).blit(pixels{size: size, rgba: ffi.GoBytes(src, n)}, dest)
	}
	l.TextureUpdateFromImage = func(t *ffi.Texture, img *ffi.Image, dest ffi.Vector2u) {
		tex(t).blit(get[fakeImage](l, ClassImage, img).pixels, dest)
	}
	l.TextureSetSmooth = func(t *ffi.Texture, on bool) { tex(t).smooth = on }
	l.TextureIsSmooth = func(t *ffi.Texture) bool { return tex(t).smooth }
	l.TextureIsSrgb = func(t *ffi.Texture) bool { return tex(t).srgb }
	l.TextureSetRepeated = func(t *ffi.Texture, on bool) { tex(t).repeated = on }
	l.TextureIsRepeated = func(t *ffi.Texture) bool { return tex(t).repeated }
	l.TextureGenerateMipmap = func(t *ffi.Texture) bool {
		ft := tex(t)
		if ft.size.X == 0 {
			return false
		}
		ft.mipmap = true
		return true
	}
	l.TextureMaximumSize = func() uint32 { return MaximumTextureSize }
}

func (l *Library) wireImage() {
	img := func(i *ffi.Image) *fakeImage { return get[fakeImage](l, ClassImage, i) }

	l.ImageNew = func() *ffi.Image { return alloc[ffi.Image](l, ClassImage, &fakeImage{}) }
	l.ImageCopy = func(i *ffi.Image) *ffi.Image {
		return alloc[ffi.Image](l, ClassImage, &fakeImage{pixels: img(i).crop(ffi.IntRect{})})
	}
	l.ImageDelete = func(i *ffi.Image) { free(l, ClassImage, i) }
	l.ImageResizeWithColor = func(i *ffi.Image, size ffi.Vector2u, c ffi.Color) {
		fi := img(i)
		fi.resize(size)
		for p := 0; p < len(fi.rgba); p += 4 {
			fi.rgba[p], fi.rgba[p+1], fi.rgba[p+2], fi.rgba[p+3] = c.R, c.G, c.B, c.A
		}
	}
	l.ImageResizeWithPixels = func(i *ffi.Image, size ffi.Vector2u, src *byte) {
		fi := img(i)
		fi.resize(size)
		copy(fi.rgba, ffi.GoBytes(src, uintptr(len(fi.rgba))))
	}
	l.ImageLoadFromMemory = func(i *ffi.Image, data *byte, n uintptr) bool {
		p, ok := decodePNG(ffi.GoBytes(data, n))
		if ok {
			img(i).pixels = p
		}
		return ok
	}
	l.ImageLoadFromStream = func(i *ffi.Image, s *ffi.InputStream) bool {
		data, ok := l.ReadStream(s, 512)
		if !ok {
			return false
		}
		p, ok := decodePNG(data)
		if ok {
			img(i).pixels = p
		}
		return ok
	}
	l.ImageCreateMaskFromColor = func(i *ffi.Image, key ffi.Color, alpha uint8) {
		fi := img(i)
		for p := 0; p < len(fi.rgba); p += 4 {
			if fi.rgba[p] == key.R && fi.rgba[p+1] == key.G && fi.rgba[p+2] == key.B && fi.rgba[p+3] == key.A {
				fi.rgba[p+3] = alpha
			}
		}
	}
	l.ImageSetPixel = func(i *ffi.Image, at ffi.Vector2u, c ffi.Color) {
		fi := img(i)
		if at.X >= fi.size.X || at.Y >= fi.size.Y {
			l.violate("%s: pixel %v out of range %v", ClassImage, at, fi.size)
			return
		}
		o := fi.offset(at.X, at.Y)
		fi.rgba[o], fi.rgba[o+1], fi.rgba[o+2], fi.rgba[o+3] = c.R, c.G, c.B, c.A
	}
	l.ImagePixel = func(i *ffi.Image, at ffi.Vector2u) ffi.Color {
		fi := img(i)
		if at.X >= fi.size.X || at.Y >= fi.size.Y {
			l.violate("%s: pixel %v out of range %v", ClassImage, at, fi.size)
			return ffi.Color{}
		}
		o := fi.offset(at.X, at.Y)
		return ffi.Color{R: fi.rgba[o], G: fi.rgba[o+1], B: fi.rgba[o+2], A: fi.rgba[o+3]}
	}
	l.ImagePixelsPtr = func(i *ffi.Image) *byte {
		fi := img(i)
		if len(fi.rgba) == 0 {
			return nil
		}
		return &fi.rgba[0]
	}
	l.ImageSize = func(i *ffi.Image) ffi.Vector2u { return img(i).size }
	l.ImageFlipHorizontally = func(i *ffi.Image) {
		fi := img(i)
		for y := uint32(0); y < fi.size.Y; y++ {
			for x := uint32(0); x < fi.size.X/2; x++ {
				a, b := fi.offset(x, y), fi.offset(fi.size.X-1-x, y)
				for c := range 4 {
					fi.rgba[a+c], fi.rgba[b+c] = fi.rgba[b+c], fi.rgba[a+c]
				}
			}
		}
	}
	l.ImageFlipVertically = func(i *ffi.Image) {
		fi := img(i)
		row := int(fi.size.X) * 4
		tmp := make([]byte, row)
		for y := uint32(0); y < fi.size.Y/2; y++ {
			a, b := fi.offset(0, y), fi.offset(0, fi.size.Y-1-y)
			copy(tmp, fi.rgba[a:a+row])
			copy(fi.rgba[a:a+row], fi.rgba[b:b+row])
			copy(fi.rgba[b:b+row], tmp)
		}
	}
}
