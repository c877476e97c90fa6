package ffi

import (
	"errors"
	"io"
	"unsafe"

	"go.uber.org/zap"
)

// PointSource is the capability behind a custom shape.
type PointSource interface {
	PointCount() int
	Point(index int) Vector2f
}

// SampleSink is the capability behind a custom sound recorder. Returning
// false from OnProcessSamples asks the foreign side to stop recording.
type SampleSink interface {
	OnProcessSamples(samples []int16) bool
}

// SampleStarter is implemented by sinks that want a hook before capture
// begins. Returning false aborts the start.
type SampleStarter interface {
	OnStart() bool
}

// SampleStopper is implemented by sinks that want a hook after capture ends.
type SampleStopper interface {
	OnStop()
}

// Sizer is implemented by streams that know their size without seeking.
type Sizer interface {
	Size() int64
}

// The trampolines below are the Go halves of the C callbacks. The foreign
// side passes back the UserData it was given at construction; each trampoline
// looks the capability up without taking ownership, dispatches, and converts
// the result to the ABI representation. A panic in a capability is recovered
// and turned into the callback's failure value, since it must not unwind
// through foreign frames.

func lookupAs[T any](ud UserData, callback string) (T, bool) {
	var zero T
	v, ok := Lookup(ud)
	if !ok {
		Logger().Error("callback on released user data",
			zap.String("callback", callback),
			zap.Uint64("user_data", uint64(ud)))
		return zero, false
	}
	c, ok := v.(T)
	if !ok {
		Logger().Error("callback on user data of wrong type",
			zap.String("callback", callback),
			zap.Uint64("user_data", uint64(ud)))
		return zero, false
	}
	return c, true
}

// recoverCallback must be deferred directly by a trampoline.
func recoverCallback(callback string, ud UserData, fail func()) {
	if r := recover(); r != nil {
		Logger().Error("capability panicked in callback",
			zap.String("callback", callback),
			zap.Uint64("user_data", uint64(ud)),
			zap.Any("panic", r))
		fail()
	}
}

// PointCountTrampoline serves size_t (*)(void *userData).
func PointCountTrampoline(ud UserData) (n uintptr) {
	defer recoverCallback("point count", ud, func() { n = 0 })
	src, ok := lookupAs[PointSource](ud, "point count")
	if !ok {
		return 0
	}
	c := src.PointCount()
	if c < 0 {
		return 0
	}
	return uintptr(c)
}

// PointTrampoline serves sfVector2f (*)(size_t index, void *userData).
func PointTrampoline(index uintptr, ud UserData) (p Vector2f) {
	defer recoverCallback("point", ud, func() { p = Vector2f{} })
	src, ok := lookupAs[PointSource](ud, "point")
	if !ok {
		return Vector2f{}
	}
	return src.Point(int(index))
}

// RecorderStartTrampoline serves bool (*)(void *userData).
func RecorderStartTrampoline(ud UserData) (proceed bool) {
	defer recoverCallback("recorder start", ud, func() { proceed = false })
	v, ok := Lookup(ud)
	if !ok {
		Logger().Error("callback on released user data",
			zap.String("callback", "recorder start"),
			zap.Uint64("user_data", uint64(ud)))
		return false
	}
	if s, ok := v.(SampleStarter); ok {
		return s.OnStart()
	}
	return true
}

// RecorderProcessTrampoline serves
// bool (*)(const int16_t *samples, size_t count, void *userData).
// The slice handed to the sink aliases foreign memory and is only valid for
// the duration of the call.
func RecorderProcessTrampoline(samples *int16, count uintptr, ud UserData) (proceed bool) {
	defer recoverCallback("recorder process", ud, func() { proceed = false })
	sink, ok := lookupAs[SampleSink](ud, "recorder process")
	if !ok {
		return false
	}
	var buf []int16
	if samples != nil && count > 0 {
		buf = unsafe.Slice(samples, count)
	}
	return sink.OnProcessSamples(buf)
}

// RecorderStopTrampoline serves void (*)(void *userData).
func RecorderStopTrampoline(ud UserData) {
	defer recoverCallback("recorder stop", ud, func() {})
	v, ok := Lookup(ud)
	if !ok {
		return
	}
	if s, ok := v.(SampleStopper); ok {
		s.OnStop()
	}
}

// StreamReadTrampoline serves
// int64_t (*)(void *data, int64_t size, void *userData).
// It returns the number of bytes read, 0 at end of stream, -1 on error.
func StreamReadTrampoline(data unsafe.Pointer, size int64, ud UserData) (n int64) {
	defer recoverCallback("stream read", ud, func() { n = -1 })
	r, ok := lookupAs[io.ReadSeeker](ud, "stream read")
	if !ok {
		return -1
	}
	if size <= 0 || data == nil {
		return 0
	}
	buf := unsafe.Slice((*byte)(data), size)
	read, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		Logger().Debug("stream read failed", zap.Error(err))
		return -1
	}
	return int64(read)
}

// StreamSeekTrampoline serves int64_t (*)(int64_t position, void *userData).
func StreamSeekTrampoline(position int64, ud UserData) (n int64) {
	defer recoverCallback("stream seek", ud, func() { n = -1 })
	r, ok := lookupAs[io.ReadSeeker](ud, "stream seek")
	if !ok {
		return -1
	}
	pos, err := r.Seek(position, io.SeekStart)
	if err != nil {
		return -1
	}
	return pos
}

// StreamTellTrampoline serves int64_t (*)(void *userData).
func StreamTellTrampoline(ud UserData) (n int64) {
	defer recoverCallback("stream tell", ud, func() { n = -1 })
	r, ok := lookupAs[io.ReadSeeker](ud, "stream tell")
	if !ok {
		return -1
	}
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	return pos
}

// StreamSizeTrampoline serves int64_t (*)(void *userData).
func StreamSizeTrampoline(ud UserData) (n int64) {
	defer recoverCallback("stream size", ud, func() { n = -1 })
	r, ok := lookupAs[io.ReadSeeker](ud, "stream size")
	if !ok {
		return -1
	}
	if s, ok := r.(Sizer); ok {
		return s.Size()
	}
	cur, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return -1
	}
	end, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return -1
	}
	if _, err := r.Seek(cur, io.SeekStart); err != nil {
		return -1
	}
	return end
}
