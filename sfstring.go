package sfml

import (
	"bytes"
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"
	"unsafe"

	"github.com/phanxgames/sfml/ffi"
)

// DecodeUTF32 converts UTF-32 units to a Go string. Surrogates and values
// above U+10FFFF become U+FFFD. The input is never modified.
func DecodeUTF32(units []uint32) string {
	var b strings.Builder
	b.Grow(len(units))
	for _, u := range units {
		r := rune(u)
		if u > utf8.MaxRune || !utf8.ValidRune(r) {
			r = utf8.RuneError
		}
		b.WriteRune(r)
	}
	return b.String()
}

// TryDecodeUTF32 converts UTF-32 units to a Go string, failing with a
// *ConversionError that names the first invalid unit.
func TryDecodeUTF32(units []uint32) (string, error) {
	for i, u := range units {
		if u > utf8.MaxRune || !utf8.ValidRune(rune(u)) {
			return "", &ConversionError{Index: i, Unit: u}
		}
	}
	return DecodeUTF32(units), nil
}

// MustDecodeUTF32 is like TryDecodeUTF32 but panics on invalid input.
func MustDecodeUTF32(units []uint32) string {
	s, err := TryDecodeUTF32(units)
	if err != nil {
		panic(err)
	}
	return s
}

// EncodeUTF32 converts s to UTF-32 units, one per code point. Invalid UTF-8
// bytes become U+FFFD. No terminator is appended.
func EncodeUTF32(s string) []uint32 {
	out := make([]uint32, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, uint32(r))
	}
	return out
}

// utf32z returns s as a NUL-terminated UTF-32 buffer for entry points taking
// const uint32_t*. The foreign side stops at the first NUL, so anything after
// an embedded NUL is dropped.
func utf32z(s string) []uint32 {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return append(EncodeUTF32(s), 0)
}

var sfStringClass = &Class[ffi.SfString]{
	Name:    "SfString",
	Destroy: func(s *ffi.SfString) { lib().SfStringDelete(s) },
}

// SfString owns a foreign sf::String, a UTF-32 string.
type SfString struct {
	box *FBox[ffi.SfString]
}

func newSfString(raw *ffi.SfString) (*SfString, error) {
	box, err := Acquire(sfStringClass, raw)
	if err != nil {
		return nil, err
	}
	return &SfString{box: box}, nil
}

// view aliases the foreign buffer; it is only valid until the string is
// disposed.
func (s *SfString) view() []uint32 {
	raw := s.box.Raw()
	n := lib().SfStringLength(raw)
	if n == 0 {
		return nil
	}
	return unsafe.Slice(lib().SfStringData(raw), n)
}

// Len returns the number of UTF-32 units.
func (s *SfString) Len() int {
	return int(lib().SfStringLength(s.box.Raw()))
}

// Units returns a copy of the UTF-32 units.
func (s *SfString) Units() []uint32 {
	return append([]uint32(nil), s.view()...)
}

// String decodes the string, replacing invalid units with U+FFFD.
func (s *SfString) String() string {
	return DecodeUTF32(s.view())
}

// TryString decodes the string, failing on the first invalid unit.
func (s *SfString) TryString() (string, error) {
	return TryDecodeUTF32(s.view())
}

// Dispose frees the foreign string.
func (s *SfString) Dispose() {
	s.box.Dispose()
}

var stdStringClass = &Class[ffi.StdString]{
	Name:    "StdString",
	Destroy: func(s *ffi.StdString) { lib().StdStringDelete(s) },
}

// stdBytes aliases the bytes of a foreign std::string.
func stdBytes(s *ffi.StdString) []byte {
	n := lib().StdStringLength(s)
	if n == 0 {
		return nil
	}
	return unsafe.Slice(lib().StdStringData(s), n)
}

// stdString copies a borrowed std::string into a Go string.
func stdString(s *ffi.StdString) string {
	return string(stdBytes(s))
}

// CppString owns a foreign std::string. Its bytes are usually, but not
// necessarily, UTF-8.
type CppString struct {
	box *FBox[ffi.StdString]
}

func newCppString(raw *ffi.StdString) (*CppString, error) {
	box, err := Acquire(stdStringClass, raw)
	if err != nil {
		return nil, err
	}
	return &CppString{box: box}, nil
}

// Len returns the length in bytes.
func (s *CppString) Len() int {
	return int(lib().StdStringLength(s.box.Raw()))
}

// Bytes returns a copy of the raw bytes.
func (s *CppString) Bytes() []byte {
	return append([]byte(nil), stdBytes(s.box.Raw())...)
}

// String returns the content with invalid UTF-8 replaced by U+FFFD.
func (s *CppString) String() string {
	return strings.ToValidUTF8(stdString(s.box.Raw()), "\uFFFD")
}

// Str returns the content, failing with ErrInvalidUTF8 if it is not valid
// UTF-8.
func (s *CppString) Str() (string, error) {
	b := stdBytes(s.box.Raw())
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w at byte %d", ErrInvalidUTF8, firstInvalidUTF8(b))
	}
	return string(b), nil
}

// Equal reports whether both strings hold the same bytes.
func (s *CppString) Equal(other *CppString) bool {
	return bytes.Equal(stdBytes(s.box.Raw()), stdBytes(other.box.Raw()))
}

// EqualString reports whether the string holds exactly the bytes of str.
func (s *CppString) EqualString(str string) bool {
	return string(stdBytes(s.box.Raw())) == str
}

// Dispose frees the foreign string.
func (s *CppString) Dispose() {
	s.box.Dispose()
}

func firstInvalidUTF8(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

var stdStringVectorClass = &Class[ffi.StdStringVector]{
	Name:    "StdStringVector",
	Destroy: func(v *ffi.StdStringVector) { lib().StdStringVectorDelete(v) },
}

// CppStringVector owns a foreign std::vector<std::string>. Elements are read
// by copy.
type CppStringVector struct {
	box *FBox[ffi.StdStringVector]
}

func newCppStringVector(raw *ffi.StdStringVector) (*CppStringVector, error) {
	box, err := Acquire(stdStringVectorClass, raw)
	if err != nil {
		return nil, err
	}
	return &CppStringVector{box: box}, nil
}

// Len returns the number of elements.
func (v *CppStringVector) Len() int {
	return int(lib().StdStringVectorLength(v.box.Raw()))
}

// At returns a copy of element i. It panics if i is out of range.
func (v *CppStringVector) At(i int) string {
	if i < 0 || i >= v.Len() {
		panic(fmt.Sprintf("sfml: string vector index %d out of range [0,%d)", i, v.Len()))
	}
	return stdString(lib().StdStringVectorIndex(v.box.Raw(), uintptr(i)))
}

// Strings returns copies of all elements.
func (v *CppStringVector) Strings() []string {
	out := make([]string, 0, v.Len())
	for _, s := range v.All() {
		out = append(out, s)
	}
	return out
}

// All iterates over the elements in order.
func (v *CppStringVector) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		n := v.Len()
		for i := range n {
			if !yield(i, v.At(i)) {
				return
			}
		}
	}
}

// Dispose frees the vector and its elements.
func (v *CppStringVector) Dispose() {
	v.box.Dispose()
}
