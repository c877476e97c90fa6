package sfml

import (
	"errors"
	"testing"

	"github.com/phanxgames/sfml/ffi"
	"github.com/phanxgames/sfml/ffi/ffitest"
)

func TestAcquireDispose(t *testing.T) {
	lib := ffitest.Install(t)

	box, err := Acquire(viewClass, lib.ViewNew())
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if box.Disposed() {
		t.Fatal("new box reports disposed")
	}
	box.Dispose()
	box.Dispose()

	if got := lib.Destroyed(ffitest.ClassView); got != 1 {
		t.Errorf("destroyed = %d, want 1", got)
	}
	if !box.Disposed() {
		t.Error("box not disposed after Dispose")
	}
}

func TestAcquireNil(t *testing.T) {
	lib := ffitest.Install(t)
	lib.FailNext(ffitest.ClassView, 1)

	box, err := Acquire(viewClass, lib.ViewNew())
	if box != nil {
		t.Error("Acquire(nil) returned a box")
	}
	if !errors.Is(err, ErrAllocation) {
		t.Fatalf("err = %v, want ErrAllocation", err)
	}
	var ae *AllocationError
	if !errors.As(err, &ae) || ae.Class != "View" {
		t.Errorf("err = %#v, want *AllocationError for View", err)
	}
	if got := lib.Destroyed(ffitest.ClassView); got != 0 {
		t.Errorf("destroyed = %d, want 0", got)
	}
}

func TestFBoxClone(t *testing.T) {
	lib := ffitest.Install(t)

	a, err := Acquire(viewClass, lib.ViewNew())
	if err != nil {
		t.Fatal(err)
	}
	b := a.Clone()
	if a.Raw() == b.Raw() {
		t.Fatal("clone shares the foreign pointer")
	}
	if got := lib.Created(ffitest.ClassView); got != 2 {
		t.Errorf("created = %d, want 2", got)
	}

	a.Dispose()
	// b must still be usable after a is gone.
	lib.ViewSetCenter(b.Raw(), Vector2f{X: 1, Y: 2})
	b.Dispose()

	if got := lib.Destroyed(ffitest.ClassView); got != 2 {
		t.Errorf("destroyed = %d, want 2", got)
	}
}

func TestFBoxCloneFailure(t *testing.T) {
	lib := ffitest.Install(t)

	a, err := Acquire(viewClass, lib.ViewNew())
	if err != nil {
		t.Fatal(err)
	}
	defer a.Dispose()

	lib.FailNext(ffitest.ClassView, 1)
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrAllocation) {
			t.Errorf("recovered %v, want ErrAllocation", r)
		}
	}()
	a.Clone()
}

func TestFBoxTake(t *testing.T) {
	lib := ffitest.Install(t)

	a, err := Acquire(viewClass, lib.ViewNew())
	if err != nil {
		t.Fatal(err)
	}
	raw := a.Raw()
	b := a.Take()
	if !a.Disposed() {
		t.Error("source not disposed after Take")
	}
	if b.Raw() != raw {
		t.Error("Take changed the pointer")
	}
	a.Dispose()
	if got := lib.Destroyed(ffitest.ClassView); got != 0 {
		t.Errorf("disposing a moved-from box destroyed %d objects", got)
	}
	b.Dispose()
	if got := lib.Destroyed(ffitest.ClassView); got != 1 {
		t.Errorf("destroyed = %d, want 1", got)
	}
}

func TestFBoxUseAfterDispose(t *testing.T) {
	ffitest.Install(t)

	box, err := Acquire(viewClass, ffi.Lib().ViewNew())
	if err != nil {
		t.Fatal(err)
	}
	box.Dispose()

	defer func() {
		if r := recover(); r != ErrDisposed {
			t.Errorf("recovered %v, want ErrDisposed", r)
		}
	}()
	box.Raw()
}

func TestNotInstalled(t *testing.T) {
	prev := ffi.Install(nil)
	defer ffi.Install(prev)

	defer func() {
		if r := recover(); r != ffi.ErrNotInstalled {
			t.Errorf("recovered %v, want ffi.ErrNotInstalled", r)
		}
	}()
	NewClock()
}
