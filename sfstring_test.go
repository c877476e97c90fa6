package sfml

import (
	"errors"
	"slices"
	"testing"

	"github.com/phanxgames/sfml/ffi/ffitest"
)

func TestUTF32RoundTrip(t *testing.T) {
	tests := []string{
		"",
		"hello",
		"héllo wörld",
		"日本語",
		"emoji 🎮 and more 🚀",
		"\U0010FFFF",
	}
	for _, s := range tests {
		units := EncodeUTF32(s)
		if got := DecodeUTF32(units); got != s {
			t.Errorf("DecodeUTF32(EncodeUTF32(%q)) = %q", s, got)
		}
		if len(units) != len([]rune(s)) {
			t.Errorf("EncodeUTF32(%q) has %d units, want %d", s, len(units), len([]rune(s)))
		}
	}
}

func TestDecodeUTF32Invalid(t *testing.T) {
	tests := []struct {
		name  string
		units []uint32
		index int
	}{
		{"surrogate", []uint32{'a', 0xD800, 'b'}, 1},
		{"too large", []uint32{0x110000}, 0},
		{"last", []uint32{'a', 'b', 'c', 0xFFFFFFFF}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TryDecodeUTF32(tt.units)
			var ce *ConversionError
			if !errors.As(err, &ce) {
				t.Fatalf("err = %v, want *ConversionError", err)
			}
			if ce.Index != tt.index {
				t.Errorf("Index = %d, want %d", ce.Index, tt.index)
			}
			if ce.Unit != tt.units[tt.index] {
				t.Errorf("Unit = %#x, want %#x", ce.Unit, tt.units[tt.index])
			}

			lossy := []rune(DecodeUTF32(tt.units))
			if lossy[tt.index] != '\uFFFD' {
				t.Errorf("DecodeUTF32 rune %d = %q, want U+FFFD", tt.index, lossy[tt.index])
			}
		})
	}
}

func TestDecodeUTF32DoesNotModifyInput(t *testing.T) {
	units := []uint32{'a', 0xD800}
	orig := slices.Clone(units)
	DecodeUTF32(units)
	if !slices.Equal(units, orig) {
		t.Errorf("input modified: %v", units)
	}
}

func TestClipboardRoundTrip(t *testing.T) {
	lib := ffitest.Install(t)

	SetClipboardString("copy ✂ paste")
	want := append(EncodeUTF32("copy ✂ paste"), 0)
	if got := append(lib.ClipboardUnits(), 0); !slices.Equal(got, want) {
		t.Errorf("clipboard units = %v, want %v", got, want)
	}
	if got := ClipboardString(); got != "copy ✂ paste" {
		t.Errorf("ClipboardString = %q", got)
	}
	if got, want := lib.Live(ffitest.ClassSfString), 0; got != want {
		t.Errorf("live sf::String = %d, want %d", got, want)
	}
}

func TestClipboardEmbeddedNUL(t *testing.T) {
	ffitest.Install(t)

	SetClipboardString("before\x00after")
	if got := ClipboardString(); got != "before" {
		t.Errorf("ClipboardString = %q, want %q", got, "before")
	}
}

func TestSfStringInvalidUnits(t *testing.T) {
	lib := ffitest.Install(t)
	lib.SetClipboardUnits([]uint32{'o', 'k', 0xDFFF})

	s, err := Clipboard()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Dispose()

	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
	if _, err := s.TryString(); err == nil {
		t.Error("TryString accepted a lone surrogate")
	}
	if got := s.String(); got != "ok\uFFFD" {
		t.Errorf("String = %q", got)
	}
}

func TestCppString(t *testing.T) {
	lib := ffitest.Install(t)

	s, err := newCppString(lib.NewStdString("Fake Microphone"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != len("Fake Microphone") {
		t.Errorf("Len = %d", s.Len())
	}
	if !s.EqualString("Fake Microphone") {
		t.Error("EqualString false for identical content")
	}
	o, err := newCppString(lib.NewStdString("Fake Microphone"))
	if err != nil {
		t.Fatal(err)
	}
	if !s.Equal(o) {
		t.Error("Equal false for identical content")
	}
	s.Dispose()
	o.Dispose()

	if got := lib.Live(ffitest.ClassStdString); got != 0 {
		t.Errorf("live std::string = %d, want 0", got)
	}
}

func TestCppStringInvalidUTF8(t *testing.T) {
	lib := ffitest.Install(t)

	s, err := newCppString(lib.NewStdString("ab\xffcd"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Dispose()

	if got := s.String(); got != "ab\uFFFDcd" {
		t.Errorf("String = %q", got)
	}
	if _, err := s.Str(); !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("Str err = %v, want ErrInvalidUTF8", err)
	}
	if got := s.Bytes(); string(got) != "ab\xffcd" {
		t.Errorf("Bytes = %q", got)
	}
}

func TestCppStringVector(t *testing.T) {
	lib := ffitest.Install(t)

	want := []string{"one", "two", "three"}
	v, err := newCppStringVector(lib.NewStdStringVector(want))
	if err != nil {
		t.Fatal(err)
	}
	if v.Len() != 3 {
		t.Fatalf("Len = %d, want 3", v.Len())
	}
	if got := v.At(1); got != "two" {
		t.Errorf("At(1) = %q", got)
	}
	if got := v.Strings(); !slices.Equal(got, want) {
		t.Errorf("Strings = %v", got)
	}
	n := 0
	for i, s := range v.All() {
		if s != want[i] {
			t.Errorf("All[%d] = %q", i, s)
		}
		n++
	}
	if n != 3 {
		t.Errorf("All yielded %d items", n)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("At(3) did not panic")
			}
		}()
		v.At(3)
	}()

	v.Dispose()
	if got := lib.Live(ffitest.ClassStdStringVector); got != 0 {
		t.Errorf("live vectors = %d, want 0", got)
	}
}
