// Package ffitest provides an instrumented in-memory stand-in for the native
// library. It emulates the subset of engine behavior the wrappers rely on,
// counts constructor and destructor calls per class, detects use of destroyed
// pointers, and simulates foreign callers for the callback-driven classes.
//
// Typical use in a test:
//
//	lib := ffitest.Install(t)
//	v, _ := sfml.NewView()
//	v.Dispose()
//	if lib.Destroyed(ffitest.ClassView) != 1 { ... }
package ffitest

import (
	"fmt"
	"sync"
	"testing"
	"unsafe"

	"github.com/phanxgames/sfml/ffi"
)

// Class names used by the counters and by FailNext.
const (
	ClassClock               = "Clock"
	ClassContext             = "Context"
	ClassView                = "View"
	ClassCircleShape         = "CircleShape"
	ClassCustomShape         = "CustomShape"
	ClassTexture             = "Texture"
	ClassImage               = "Image"
	ClassSfString            = "SfString"
	ClassStdString           = "StdString"
	ClassStdStringVector     = "StdStringVector"
	ClassInputStream         = "InputStream"
	ClassCustomSoundRecorder = "CustomSoundRecorder"
)

type object struct {
	class    string
	value    any
	borrowed bool
}

// Library is a fake foreign library. The embedded ffi.Library is the table
// that gets installed; the remaining methods inspect and steer the fake.
type Library struct {
	ffi.Library

	mu         sync.Mutex
	live       map[unsafe.Pointer]object
	graveyard  []any
	created    map[string]int
	destroyed  map[string]int
	fail       map[string]int
	violations []string

	now   int64 // microseconds
	slept int64

	clipboard []uint32

	contextSettings ffi.ContextSettings
	active          map[uint64]*ffi.Context
	nextContextID   uint64
	failActivation  bool
	glFunctions     map[string]uintptr

	recorderAvailable bool
	devices           []string
	defaultDevice     string
}

// New returns a fake library with no objects alive.
func New() *Library {
	l := &Library{
		live:      make(map[unsafe.Pointer]object),
		created:   make(map[string]int),
		destroyed: make(map[string]int),
		fail:      make(map[string]int),
		contextSettings: ffi.ContextSettings{
			DepthBits:    24,
			StencilBits:  8,
			MajorVersion: 4,
			MinorVersion: 6,
		},
		active:            make(map[uint64]*ffi.Context),
		nextContextID:     1,
		glFunctions:       make(map[string]uintptr),
		recorderAvailable: true,
		devices:           []string{"Fake Microphone", "Fake Line In"},
		defaultDevice:     "Fake Microphone",
	}
	l.wireSystem()
	l.wireWindow()
	l.wireGraphics()
	l.wireShapes()
	l.wireAudio()
	return l
}

// Install installs a fresh fake for the duration of the test. The previously
// installed library is restored on cleanup, and any pointer misuse recorded
// by the fake fails the test.
func Install(t testing.TB) *Library {
	t.Helper()
	l := New()
	prev := ffi.Install(&l.Library)
	t.Cleanup(func() {
		ffi.Install(prev)
		for _, v := range l.Violations() {
			t.Errorf("ffitest: %s", v)
		}
	})
	return l
}

// Created returns how many objects of class the constructors and copy
// constructors have handed out.
func (l *Library) Created(class string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.created[class]
}

// Destroyed returns how many objects of class have been destroyed.
func (l *Library) Destroyed(class string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.destroyed[class]
}

// Live returns how many owned objects of class are alive.
func (l *Library) Live(class string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, o := range l.live {
		if o.class == class && !o.borrowed {
			n++
		}
	}
	return n
}

// FailNext makes the next n constructor or copy calls of class return nil.
func (l *Library) FailNext(class string, n int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fail[class] += n
}

// Violations returns the pointer misuse recorded so far: use after destroy,
// double destroy, destroying a borrowed pointer.
func (l *Library) Violations() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.violations...)
}

func (l *Library) violate(format string, args ...any) {
	l.mu.Lock()
	l.violations = append(l.violations, fmt.Sprintf(format, args...))
	l.mu.Unlock()
}

// alloc registers f as a new owned object of class and returns it as the
// marker pointer T. It returns nil if a failure was injected.
func alloc[T, F any](l *Library, class string, f *F) *T {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fail[class] > 0 {
		l.fail[class]--
		return nil
	}
	p := unsafe.Pointer(f)
	l.live[p] = object{class: class, value: f}
	l.created[class]++
	return (*T)(p)
}

// borrow registers f as an object owned by another fake object.
func borrow[T, F any](l *Library, class string, f *F) *T {
	l.mu.Lock()
	defer l.mu.Unlock()
	p := unsafe.Pointer(f)
	l.live[p] = object{class: class, value: f, borrowed: true}
	return (*T)(p)
}

// get resolves a marker pointer to its fake object. Misuse is recorded and a
// zero object is returned so the caller can carry on.
func get[F, T any](l *Library, class string, p *T) *F {
	if p == nil {
		l.violate("%s: nil pointer passed to foreign call", class)
		return new(F)
	}
	l.mu.Lock()
	o, ok := l.live[unsafe.Pointer(p)]
	l.mu.Unlock()
	if !ok || o.class != class {
		l.violate("%s: use of unknown or destroyed pointer %p", class, p)
		return new(F)
	}
	return o.value.(*F)
}

// free destroys an owned object.
func free[T any](l *Library, class string, p *T) {
	if p == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	o, ok := l.live[unsafe.Pointer(p)]
	switch {
	case !ok || o.class != class:
		l.violations = append(l.violations, fmt.Sprintf("%s: destroy of unknown or destroyed pointer %p", class, p))
		return
	case o.borrowed:
		l.violations = append(l.violations, fmt.Sprintf("%s: destroy of borrowed pointer %p", class, p))
		return
	}
	delete(l.live, unsafe.Pointer(p))
	// Keep the memory reachable so a stale pointer never aliases a new object.
	l.graveyard = append(l.graveyard, o.value)
	l.destroyed[class]++
}

// drop unregisters a borrowed object when its owner goes away.
func drop[T any](l *Library, p *T) {
	if p == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if o, ok := l.live[unsafe.Pointer(p)]; ok {
		delete(l.live, unsafe.Pointer(p))
		l.graveyard = append(l.graveyard, o.value)
	}
}
