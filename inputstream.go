package sfml

import (
	"io"

	"github.com/phanxgames/sfml/ffi"
)

var inputStreamClass = &Class[ffi.InputStream]{
	Name:    "InputStream",
	Destroy: func(s *ffi.InputStream) { lib().InputStreamDelete(s) },
}

// InputStream lets foreign loaders read from a Go io.ReadSeeker. Reads,
// seeks and size queries arrive as callbacks, possibly on foreign threads.
// If the reader also implements Size() int64, that is used for the size
// query; otherwise the size is found by seeking to the end.
type InputStream struct {
	box    *FBox[ffi.InputStream]
	ud     ffi.UserData
	reader io.ReadSeeker
}

// NewInputStream wraps r for foreign consumption.
func NewInputStream(r io.ReadSeeker) (*InputStream, error) {
	ud := ffi.Bind(r)
	box, err := Acquire(inputStreamClass, lib().InputStreamNew(ud))
	if err != nil {
		ffi.Release(ud)
		return nil, err
	}
	return &InputStream{box: box, ud: ud, reader: r}, nil
}

func (s *InputStream) raw() *ffi.InputStream { return s.box.Raw() }

// Reader returns the wrapped reader.
func (s *InputStream) Reader() io.ReadSeeker { return s.reader }

// Dispose destroys the foreign stream, then drops the reader registration.
func (s *InputStream) Dispose() {
	if s.box.Disposed() {
		return
	}
	s.box.Dispose()
	ffi.Release(s.ud)
}

// withStream runs load against a temporary stream over r.
func withStream(r io.ReadSeeker, load func(*ffi.InputStream) bool) (bool, error) {
	s, err := NewInputStream(r)
	if err != nil {
		return false, err
	}
	defer s.Dispose()
	return load(s.raw()), nil
}
