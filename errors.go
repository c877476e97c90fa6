package sfml

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation reports that a foreign constructor or copy returned null.
	ErrAllocation = errors.New("sfml: foreign allocation failed")
	// ErrInvalidUTF8 reports a std::string that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("sfml: invalid UTF-8")
	// ErrDisposed is the panic value for use of a disposed or moved handle.
	ErrDisposed = errors.New("sfml: use of disposed handle")
	// ErrTextureBorrowed reports an attempt to dispose a texture that shapes
	// still reference.
	ErrTextureBorrowed = errors.New("sfml: texture is still bound to shapes")
	// ErrContextActivation reports a failed context (de)activation.
	ErrContextActivation = errors.New("sfml: context activation failed")
	// ErrContextSettings reports a context that does not meet requested
	// settings.
	ErrContextSettings = errors.New("sfml: context settings not satisfied")
	// ErrRecorderStart reports that audio capture could not start.
	ErrRecorderStart = errors.New("sfml: sound recorder failed to start")
	// ErrRecorderDevice reports an unknown or unusable capture device.
	ErrRecorderDevice = errors.New("sfml: sound recorder device rejected")
	// ErrLoadFailed reports that the foreign side rejected resource data.
	ErrLoadFailed = errors.New("sfml: resource load failed")
	// ErrOutOfRange reports a region or buffer that does not fit its target.
	ErrOutOfRange = errors.New("sfml: out of range")
)

// AllocationError is returned when a foreign factory of Class returns null.
type AllocationError struct {
	Class string
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("sfml: allocation of %s failed", e.Class)
}

func (e *AllocationError) Unwrap() error { return ErrAllocation }

// ConversionError reports the first invalid UTF-32 unit of a foreign string.
type ConversionError struct {
	Index int    // zero-based position of the unit
	Unit  uint32 // the offending value
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("sfml: invalid UTF-32 unit %#x at index %d", e.Unit, e.Index)
}
