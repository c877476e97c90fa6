package ffi

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"unsafe"
)

type squarePoints struct {
	calls []int
}

func (s *squarePoints) PointCount() int { return 4 }

func (s *squarePoints) Point(i int) Vector2f {
	s.calls = append(s.calls, i)
	corners := [4]Vector2f{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	return corners[i]
}

type panickyPoints struct{}

func (panickyPoints) PointCount() int    { panic("boom") }
func (panickyPoints) Point(int) Vector2f { panic("boom") }

func TestPointTrampolines(t *testing.T) {
	src := &squarePoints{}
	ud := Bind(src)
	defer Release(ud)

	if n := PointCountTrampoline(ud); n != 4 {
		t.Fatalf("PointCountTrampoline = %d, want 4", n)
	}
	if p := PointTrampoline(2, ud); p != (Vector2f{10, 10}) {
		t.Errorf("PointTrampoline(2) = %v, want {10 10}", p)
	}
	if len(src.calls) != 1 || src.calls[0] != 2 {
		t.Errorf("Point calls = %v, want [2]", src.calls)
	}
}

func TestPointTrampolineRecoversPanic(t *testing.T) {
	ud := Bind(panickyPoints{})
	defer Release(ud)

	if n := PointCountTrampoline(ud); n != 0 {
		t.Errorf("PointCountTrampoline = %d, want 0 after panic", n)
	}
	if p := PointTrampoline(0, ud); p != (Vector2f{}) {
		t.Errorf("PointTrampoline = %v, want zero after panic", p)
	}
}

func TestTrampolineOnReleasedUserData(t *testing.T) {
	ud := Bind(&squarePoints{})
	Release(ud)

	if n := PointCountTrampoline(ud); n != 0 {
		t.Errorf("PointCountTrampoline = %d, want 0", n)
	}
	if RecorderProcessTrampoline(nil, 0, ud) {
		t.Error("RecorderProcessTrampoline = true on released user data, want false")
	}
	if n := StreamReadTrampoline(nil, 4, ud); n != -1 {
		t.Errorf("StreamReadTrampoline = %d, want -1", n)
	}
}

func TestTrampolineOnWrongCapabilityType(t *testing.T) {
	ud := Bind("not a point source")
	defer Release(ud)
	if n := PointCountTrampoline(ud); n != 0 {
		t.Errorf("PointCountTrampoline = %d, want 0", n)
	}
}

type countingSink struct {
	stopAt  int
	calls   int
	started bool
	stopped bool
}

func (s *countingSink) OnStart() bool { s.started = true; return true }
func (s *countingSink) OnStop()       { s.stopped = true }

func (s *countingSink) OnProcessSamples(samples []int16) bool {
	s.calls++
	return s.calls != s.stopAt
}

func TestRecorderTrampolines(t *testing.T) {
	sink := &countingSink{stopAt: 2}
	ud := Bind(sink)
	defer Release(ud)

	if !RecorderStartTrampoline(ud) || !sink.started {
		t.Fatal("start hook not invoked")
	}
	samples := []int16{1, 2, 3}
	if !RecorderProcessTrampoline(&samples[0], uintptr(len(samples)), ud) {
		t.Error("first process call returned stop")
	}
	if RecorderProcessTrampoline(&samples[0], uintptr(len(samples)), ud) {
		t.Error("second process call did not return stop")
	}
	RecorderStopTrampoline(ud)
	if !sink.stopped {
		t.Error("stop hook not invoked")
	}
}

type plainSink struct{}

func (plainSink) OnProcessSamples([]int16) bool { return true }

func TestRecorderStartDefaultsToProceed(t *testing.T) {
	ud := Bind(plainSink{})
	defer Release(ud)
	if !RecorderStartTrampoline(ud) {
		t.Error("start without hook should proceed")
	}
	RecorderStopTrampoline(ud)
}

func TestStreamTrampolines(t *testing.T) {
	ud := Bind(bytes.NewReader([]byte("hello world")))
	defer Release(ud)

	if n := StreamSizeTrampoline(ud); n != 11 {
		t.Errorf("size = %d, want 11", n)
	}
	buf := make([]byte, 5)
	if n := StreamReadTrampoline(unsafe.Pointer(&buf[0]), 5, ud); n != 5 || string(buf) != "hello" {
		t.Errorf("read = %d %q, want 5 hello", n, buf)
	}
	if n := StreamTellTrampoline(ud); n != 5 {
		t.Errorf("tell = %d, want 5", n)
	}
	if n := StreamSeekTrampoline(6, ud); n != 6 {
		t.Errorf("seek = %d, want 6", n)
	}
	big := make([]byte, 32)
	if n := StreamReadTrampoline(unsafe.Pointer(&big[0]), 32, ud); n != 5 || string(big[:5]) != "world" {
		t.Errorf("short read = %d %q, want 5 world", n, big[:n])
	}
	if n := StreamReadTrampoline(unsafe.Pointer(&big[0]), 32, ud); n != 0 {
		t.Errorf("read at end = %d, want 0", n)
	}
}

// seekOnly is an io.ReadSeeker without a Size method.
type seekOnly struct {
	r *bytes.Reader
}

func (s seekOnly) Read(p []byte) (int, error)         { return s.r.Read(p) }
func (s seekOnly) Seek(o int64, w int) (int64, error) { return s.r.Seek(o, w) }

func TestStreamSizeBySeeking(t *testing.T) {
	ud := Bind(seekOnly{bytes.NewReader([]byte("abcdef"))})
	defer Release(ud)

	StreamSeekTrampoline(2, ud)
	if n := StreamSizeTrampoline(ud); n != 6 {
		t.Errorf("size = %d, want 6", n)
	}
	if n := StreamTellTrampoline(ud); n != 2 {
		t.Errorf("position after size = %d, want 2", n)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error)       { return 0, errors.New("disk on fire") }
func (failingReader) Seek(int64, int) (int64, error) { return 0, io.ErrNoProgress }

func TestStreamReadErrorIsMinusOne(t *testing.T) {
	ud := Bind(failingReader{})
	defer Release(ud)
	buf := make([]byte, 4)
	if n := StreamReadTrampoline(unsafe.Pointer(&buf[0]), 4, ud); n != -1 {
		t.Errorf("read = %d, want -1", n)
	}
	if n := StreamTellTrampoline(ud); n != -1 {
		t.Errorf("tell = %d, want -1", n)
	}
}
