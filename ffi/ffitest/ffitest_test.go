package ffitest

import (
	"runtime"
	"strings"
	"testing"
	"time"
	"unsafe"

	"github.com/phanxgames/sfml/ffi"
)

func TestCounters(t *testing.T) {
	l := New()
	a := l.ClockNew()
	b := l.ClockNew()
	l.ClockDelete(a)

	if got := l.Created(ClassClock); got != 2 {
		t.Errorf("Created = %d, want 2", got)
	}
	if got := l.Destroyed(ClassClock); got != 1 {
		t.Errorf("Destroyed = %d, want 1", got)
	}
	if got := l.Live(ClassClock); got != 1 {
		t.Errorf("Live = %d, want 1", got)
	}
	l.ClockDelete(b)
	if got := l.Live(ClassClock); got != 0 {
		t.Errorf("Live after delete = %d, want 0", got)
	}
	if v := l.Violations(); len(v) != 0 {
		t.Errorf("unexpected violations: %v", v)
	}
}

func TestFailNext(t *testing.T) {
	l := New()
	l.FailNext(ClassView, 2)
	if l.ViewNew() != nil || l.ViewNew() != nil {
		t.Fatal("injected failures should return nil")
	}
	v := l.ViewNew()
	if v == nil {
		t.Fatal("third ViewNew should succeed")
	}
	l.ViewDelete(v)
	if got := l.Created(ClassView); got != 1 {
		t.Errorf("Created = %d, want 1", got)
	}
}

func TestViolations(t *testing.T) {
	tests := []struct {
		name string
		run  func(l *Library)
		want string
	}{
		{
			name: "use after destroy",
			run: func(l *Library) {
				c := l.ClockNew()
				l.ClockDelete(c)
				l.ClockIsRunning(c)
			},
			want: "use of unknown or destroyed pointer",
		},
		{
			name: "double destroy",
			run: func(l *Library) {
				c := l.ClockNew()
				l.ClockDelete(c)
				l.ClockDelete(c)
			},
			want: "destroy of unknown or destroyed pointer",
		},
		{
			name: "nil pointer",
			run:  func(l *Library) { l.ViewCenter(nil) },
			want: "nil pointer passed to foreign call",
		},
		{
			name: "wrong class",
			run: func(l *Library) {
				c := l.ClockNew()
				l.ViewCenter((*ffi.View)(unsafe.Pointer(c)))
			},
			want: "View: use of unknown or destroyed pointer",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			tt.run(l)
			v := l.Violations()
			if len(v) != 1 {
				t.Fatalf("violations = %v, want exactly one", v)
			}
			if !strings.Contains(v[0], tt.want) {
				t.Errorf("violation %q does not mention %q", v[0], tt.want)
			}
		})
	}
}

func TestDestroyedPointerNotReused(t *testing.T) {
	l := New()
	first := l.ClockNew()
	l.ClockDelete(first)
	for range 64 {
		if c := l.ClockNew(); c == first {
			t.Fatal("destroyed pointer was handed out again")
		}
	}
}

func TestInstallRestores(t *testing.T) {
	var inner *Library
	t.Run("installed", func(t *testing.T) {
		inner = Install(t)
		if ffi.Lib() != &inner.Library {
			t.Error("Install did not install the fake")
		}
	})
	if inner != nil && ffi.Installed() && ffi.Lib() == &inner.Library {
		t.Error("fake still installed after cleanup")
	}
}

func TestSleepAdvancesClock(t *testing.T) {
	l := New()
	c := l.ClockNew()
	defer l.ClockDelete(c)

	l.Sleep(1500)
	l.Advance(time.Millisecond)
	l.Sleep(-5)

	if got := l.ClockElapsedTime(c); got != 2500 {
		t.Errorf("elapsed = %dµs, want 2500", got)
	}
	if got := l.Slept(); got != 1500*time.Microsecond {
		t.Errorf("Slept = %v, want 1.5ms", got)
	}
}

func TestThreadIDStableOnLockedThread(t *testing.T) {
	done := make(chan [2]uint64)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		done <- [2]uint64{ThreadID(), ThreadID()}
	}()
	ids := <-done
	if ids[0] == 0 || ids[0] != ids[1] {
		t.Errorf("ThreadID = %d then %d, want a stable non-zero id", ids[0], ids[1])
	}
}
