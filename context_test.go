package sfml

import (
	"errors"
	"runtime"
	"testing"

	"github.com/phanxgames/sfml/ffi"
	"github.com/phanxgames/sfml/ffi/ffitest"
)

// onOtherThread runs f on a goroutine locked to a different OS thread than
// the caller, which must itself be locked.
func onOtherThread[T any](f func() T) T {
	ch := make(chan T)
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		ch <- f()
	}()
	return <-ch
}

func TestContextThreadScoped(t *testing.T) {
	lib := ffitest.Install(t)

	ctx, err := NewContext()
	if err != nil {
		t.Fatal(err)
	}
	defer ctx.Dispose()

	if !ctx.IsActive() {
		t.Fatal("new context not active")
	}
	if ActiveContextID() == 0 {
		t.Error("ActiveContextID = 0 with an active context")
	}
	if got := onOtherThread(ActiveContext); got != nil {
		t.Errorf("context visible on another thread: %p", got)
	}
	if got := onOtherThread(ActiveContextID); got != 0 {
		t.Errorf("ActiveContextID on another thread = %d, want 0", got)
	}

	if err := ctx.SetActive(false); err != nil {
		t.Fatal(err)
	}
	if ctx.IsActive() || lib.ActiveOn() != nil {
		t.Error("context still active after SetActive(false)")
	}
	if err := ctx.SetActive(true); err != nil {
		t.Fatal(err)
	}
	if !ctx.IsActive() {
		t.Error("context not active after SetActive(true)")
	}
}

func TestContextDisposeDeactivates(t *testing.T) {
	lib := ffitest.Install(t)

	ctx, err := NewContext()
	if err != nil {
		t.Fatal(err)
	}
	ctx.Dispose()
	ctx.Dispose()

	// Dispose unlocked the thread; lock again so ActiveOn asks the same one.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if ActiveContext() != nil {
		t.Error("active context after Dispose")
	}
	if got := lib.Destroyed(ffitest.ClassContext); got != 1 {
		t.Errorf("destroyed = %d, want 1", got)
	}
}

func TestContextActivationFailure(t *testing.T) {
	lib := ffitest.Install(t)

	ctx, err := NewContext()
	if err != nil {
		t.Fatal(err)
	}
	defer ctx.Dispose()

	lib.FailActivation(true)
	if err := ctx.SetActive(false); !errors.Is(err, ErrContextActivation) {
		t.Errorf("err = %v, want ErrContextActivation", err)
	}
}

func TestContextAllocationFailure(t *testing.T) {
	lib := ffitest.Install(t)
	lib.FailNext(ffitest.ClassContext, 1)

	if _, err := NewContext(); !errors.Is(err, ErrAllocation) {
		t.Fatalf("err = %v, want ErrAllocation", err)
	}
}

func TestContextSettings(t *testing.T) {
	lib := ffitest.Install(t)
	lib.SetContextSettings(ffi.ContextSettings{DepthBits: 24, StencilBits: 8, MajorVersion: 3, MinorVersion: 3})

	ctx, err := NewContext()
	if err != nil {
		t.Fatal(err)
	}
	defer ctx.Dispose()

	tests := []struct {
		name string
		want ContextSettings
		ok   bool
	}{
		{"zero", ContextSettings{}, true},
		{"exact", ContextSettings{DepthBits: 24, StencilBits: 8, MajorVersion: 3, MinorVersion: 3}, true},
		{"older version", ContextSettings{MajorVersion: 2, MinorVersion: 1}, true},
		{"deeper", ContextSettings{DepthBits: 32}, false},
		{"newer minor", ContextSettings{MajorVersion: 3, MinorVersion: 4}, false},
		{"srgb", ContextSettings{SRGBCapable: true}, false},
		{"flags", ContextSettings{AttributeFlags: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ctx.Satisfies(tt.want)
			if tt.ok && err != nil {
				t.Errorf("Satisfies: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrContextSettings) {
				t.Errorf("err = %v, want ErrContextSettings", err)
			}
		})
	}
}

func TestGLFunction(t *testing.T) {
	lib := ffitest.Install(t)
	lib.SetGLFunction("glClear", 0x1234)

	if got := GLFunction("glClear"); got != 0x1234 {
		t.Errorf("GLFunction(glClear) = %#x", got)
	}
	if got := GLFunction("glMissing"); got != 0 {
		t.Errorf("GLFunction(glMissing) = %#x, want 0", got)
	}
}
