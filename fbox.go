package sfml

import (
	"fmt"

	"go.uber.org/zap"
)

// Class describes the foreign lifecycle functions of one opaque class.
type Class[T any] struct {
	// Name identifies the class in errors and logs.
	Name string
	// Destroy is the foreign destructor.
	Destroy func(*T)
	// Copy is the foreign copy constructor. Nil if the class cannot be copied.
	Copy func(*T) *T
}

// FBox exclusively owns one foreign object of type T. The foreign destructor
// runs exactly once, on Dispose. Ownership can move with Take; the source is
// left disposed without running the destructor.
//
// An FBox is not safe for concurrent use.
type FBox[T any] struct {
	class *Class[T]
	raw   *T
}

// Acquire takes ownership of raw, a pointer just returned by a foreign
// constructor. It fails with an *AllocationError when raw is nil, in which
// case no destructor is ever called.
func Acquire[T any](class *Class[T], raw *T) (*FBox[T], error) {
	if raw == nil {
		Logger().Warn("foreign allocation failed", zap.String("class", class.Name))
		return nil, &AllocationError{Class: class.Name}
	}
	return &FBox[T]{class: class, raw: raw}, nil
}

// Raw returns the owned pointer for passing to foreign calls. The pointer
// must not be retained past the life of the box. Panics with ErrDisposed if
// the box no longer owns anything.
func (b *FBox[T]) Raw() *T {
	if b == nil || b.raw == nil {
		panic(ErrDisposed)
	}
	return b.raw
}

// Disposed reports whether the box no longer owns an object.
func (b *FBox[T]) Disposed() bool {
	return b == nil || b.raw == nil
}

// Class returns the lifecycle description the box was acquired with.
func (b *FBox[T]) Class() *Class[T] {
	return b.class
}

// Clone runs the foreign copy constructor and returns a box owning the new
// allocation. It panics if the class is not copyable and with an
// *AllocationError if the copy returns null.
func (b *FBox[T]) Clone() *FBox[T] {
	raw := b.Raw()
	if b.class.Copy == nil {
		panic(fmt.Sprintf("sfml: %s cannot be copied", b.class.Name))
	}
	cp, err := Acquire(b.class, b.class.Copy(raw))
	if err != nil {
		panic(err)
	}
	return cp
}

// Take moves ownership into a new box and leaves b disposed.
func (b *FBox[T]) Take() *FBox[T] {
	raw := b.Raw()
	b.raw = nil
	return &FBox[T]{class: b.class, raw: raw}
}

// Dispose runs the foreign destructor. Subsequent calls are no-ops.
func (b *FBox[T]) Dispose() {
	if b.Disposed() {
		return
	}
	raw := b.raw
	b.raw = nil
	b.class.Destroy(raw)
}
