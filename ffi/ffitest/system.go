package ffitest

import (
	"time"
	"unsafe"

	"github.com/phanxgames/sfml/ffi"
)

type fakeClock struct {
	start   int64
	elapsed int64
	running bool
}

type fakeSfString struct {
	units []uint32 // NUL-terminated
}

type fakeStdString struct {
	data []byte // NUL-terminated
}

type fakeStdStringVector struct {
	elems []*ffi.StdString
}

type fakeStream struct {
	ud ffi.UserData
}

func newFakeStdString(s string) *fakeStdString {
	return &fakeStdString{data: append([]byte(s), 0)}
}

func (c *fakeClock) read(now int64) int64 {
	if c.running {
		return c.elapsed + now - c.start
	}
	return c.elapsed
}

// Advance moves the fake monotonic time forward.
func (l *Library) Advance(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now += d.Microseconds()
}

// Slept returns the total time passed to the foreign sleep entry point.
func (l *Library) Slept() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return time.Duration(l.slept) * time.Microsecond
}

func (l *Library) clockNow() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.now
}

// SetClipboardUnits replaces the clipboard content with raw UTF-32 units,
// which may be invalid.
func (l *Library) SetClipboardUnits(units []uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clipboard = append([]uint32(nil), units...)
}

// ClipboardUnits returns the raw clipboard content.
func (l *Library) ClipboardUnits() []uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]uint32(nil), l.clipboard...)
}

// NewStdString hands out an owned std::string, as an entry point returning
// std::string* would.
func (l *Library) NewStdString(s string) *ffi.StdString {
	return alloc[ffi.StdString](l, ClassStdString, newFakeStdString(s))
}

// NewStdStringVector hands out an owned vector of strings.
func (l *Library) NewStdStringVector(items []string) *ffi.StdStringVector {
	v := &fakeStdStringVector{}
	for _, s := range items {
		v.elems = append(v.elems, borrow[ffi.StdString](l, ClassStdString, newFakeStdString(s)))
	}
	return alloc[ffi.StdStringVector](l, ClassStdStringVector, v)
}

// NewSfString hands out an owned sf::String holding units verbatim.
func (l *Library) NewSfString(units []uint32) *ffi.SfString {
	s := &fakeSfString{units: append(append([]uint32(nil), units...), 0)}
	return alloc[ffi.SfString](l, ClassSfString, s)
}

// ReadStream pulls the whole stream through its callbacks the way a foreign
// loader would: size, rewind, then reads of chunk bytes until end of stream.
func (l *Library) ReadStream(s *ffi.InputStream, chunk int) ([]byte, bool) {
	fs := get[fakeStream](l, ClassInputStream, s)
	size := ffi.StreamSizeTrampoline(fs.ud)
	if size < 0 {
		return nil, false
	}
	if ffi.StreamSeekTrampoline(0, fs.ud) != 0 {
		return nil, false
	}
	out := make([]byte, 0, size)
	buf := make([]byte, chunk)
	for {
		n := ffi.StreamReadTrampoline(unsafe.Pointer(&buf[0]), int64(len(buf)), fs.ud)
		if n < 0 {
			return nil, false
		}
		if n == 0 {
			break
		}
		out = append(out, buf[:n]...)
	}
	return out, true
}

func readUnits(p *uint32) []uint32 {
	var out []uint32
	for i := uintptr(0); ; i++ {
		u := *(*uint32)(unsafe.Add(unsafe.Pointer(p), i*4))
		if u == 0 {
			return out
		}
		out = append(out, u)
	}
}

func readCString(p *byte) string {
	var out []byte
	for i := uintptr(0); ; i++ {
		b := *(*byte)(unsafe.Add(unsafe.Pointer(p), i))
		if b == 0 {
			return string(out)
		}
		out = append(out, b)
	}
}

func (l *Library) wireSystem() {
	clock := func(c *ffi.Clock) *fakeClock { return get[fakeClock](l, ClassClock, c) }

	l.ClockNew = func() *ffi.Clock {
		return alloc[ffi.Clock](l, ClassClock, &fakeClock{start: l.clockNow(), running: true})
	}
	l.ClockDelete = func(c *ffi.Clock) { free(l, ClassClock, c) }
	l.ClockElapsedTime = func(c *ffi.Clock) int64 { return clock(c).read(l.clockNow()) }
	l.ClockRestart = func(c *ffi.Clock) int64 {
		fc, now := clock(c), l.clockNow()
		e := fc.read(now)
		fc.elapsed, fc.start, fc.running = 0, now, true
		return e
	}
	l.ClockReset = func(c *ffi.Clock) int64 {
		fc := clock(c)
		e := fc.read(l.clockNow())
		fc.elapsed, fc.running = 0, false
		return e
	}
	l.ClockIsRunning = func(c *ffi.Clock) bool { return clock(c).running }
	l.ClockStart = func(c *ffi.Clock) {
		if fc := clock(c); !fc.running {
			fc.start, fc.running = l.clockNow(), true
		}
	}
	l.ClockStop = func(c *ffi.Clock) {
		if fc := clock(c); fc.running {
			fc.elapsed += l.clockNow() - fc.start
			fc.running = false
		}
	}
	l.Sleep = func(us int64) {
		if us <= 0 {
			return
		}
		l.mu.Lock()
		l.now += us
		l.slept += us
		l.mu.Unlock()
	}

	l.SfStringLength = func(s *ffi.SfString) uintptr {
		return uintptr(len(get[fakeSfString](l, ClassSfString, s).units) - 1)
	}
	l.SfStringData = func(s *ffi.SfString) *uint32 {
		return &get[fakeSfString](l, ClassSfString, s).units[0]
	}
	l.SfStringDelete = func(s *ffi.SfString) { free(l, ClassSfString, s) }

	l.StdStringLength = func(s *ffi.StdString) uintptr {
		return uintptr(len(get[fakeStdString](l, ClassStdString, s).data) - 1)
	}
	l.StdStringData = func(s *ffi.StdString) *byte {
		return &get[fakeStdString](l, ClassStdString, s).data[0]
	}
	l.StdStringDelete = func(s *ffi.StdString) { free(l, ClassStdString, s) }

	l.StdStringVectorLength = func(v *ffi.StdStringVector) uintptr {
		return uintptr(len(get[fakeStdStringVector](l, ClassStdStringVector, v).elems))
	}
	l.StdStringVectorIndex = func(v *ffi.StdStringVector, i uintptr) *ffi.StdString {
		fv := get[fakeStdStringVector](l, ClassStdStringVector, v)
		if i >= uintptr(len(fv.elems)) {
			l.violate("%s: index %d out of range [0,%d)", ClassStdStringVector, i, len(fv.elems))
			return nil
		}
		return fv.elems[i]
	}
	l.StdStringVectorDelete = func(v *ffi.StdStringVector) {
		if v == nil {
			return
		}
		for _, e := range get[fakeStdStringVector](l, ClassStdStringVector, v).elems {
			drop(l, e)
		}
		free(l, ClassStdStringVector, v)
	}

	l.InputStreamNew = func(ud ffi.UserData) *ffi.InputStream {
		return alloc[ffi.InputStream](l, ClassInputStream, &fakeStream{ud: ud})
	}
	l.InputStreamDelete = func(s *ffi.InputStream) { free(l, ClassInputStream, s) }
}
