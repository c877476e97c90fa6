package ffitest

import (
	"github.com/phanxgames/sfml/ffi"
)

type fakeContext struct {
	id       uint64
	settings ffi.ContextSettings
}

// SetContextSettings sets the settings reported by contexts created after the
// call.
func (l *Library) SetContextSettings(s ffi.ContextSettings) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.contextSettings = s
}

// FailActivation makes every context activation call report failure while on.
func (l *Library) FailActivation(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failActivation = on
}

// SetGLFunction registers the address returned for an OpenGL entry point.
func (l *Library) SetGLFunction(name string, addr uintptr) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.glFunctions[name] = addr
}

// ActiveOn returns the context active on the calling OS thread, if any.
func (l *Library) ActiveOn() *ffi.Context {
	tid := ThreadID()
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active[tid]
}

func (l *Library) setActive(c *ffi.Context, active bool) bool {
	tid := ThreadID()
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failActivation {
		return false
	}
	if active {
		l.active[tid] = c
	} else if l.active[tid] == c {
		delete(l.active, tid)
	}
	return true
}

func (l *Library) wireWindow() {
	l.ClipboardUnicodeString = func() *ffi.SfString {
		return l.NewSfString(l.ClipboardUnits())
	}
	l.SetClipboardUnicodeString = func(text *uint32) {
		if text == nil {
			l.violate("clipboard: nil text")
			return
		}
		l.SetClipboardUnits(readUnits(text))
	}

	l.ContextNew = func() *ffi.Context {
		l.mu.Lock()
		fc := &fakeContext{id: l.nextContextID, settings: l.contextSettings}
		l.nextContextID++
		l.mu.Unlock()
		c := alloc[ffi.Context](l, ClassContext, fc)
		if c != nil {
			l.setActive(c, true)
		}
		return c
	}
	l.ContextDelete = func(c *ffi.Context) {
		if c == nil {
			return
		}
		tid := ThreadID()
		l.mu.Lock()
		if l.active[tid] == c {
			delete(l.active, tid)
		}
		l.mu.Unlock()
		free(l, ClassContext, c)
	}
	l.ContextSetActive = func(c *ffi.Context, active bool) bool {
		get[fakeContext](l, ClassContext, c)
		return l.setActive(c, active)
	}
	l.ContextSettings = func(c *ffi.Context) *ffi.ContextSettings {
		return &get[fakeContext](l, ClassContext, c).settings
	}
	l.ContextActiveContextID = func() uint64 {
		c := l.ActiveOn()
		if c == nil {
			return 0
		}
		return get[fakeContext](l, ClassContext, c).id
	}
	l.ContextActiveContext = l.ActiveOn
	l.ContextFunction = func(name *byte) uintptr {
		n := readCString(name)
		l.mu.Lock()
		defer l.mu.Unlock()
		return l.glFunctions[n]
	}
}
