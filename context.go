package sfml

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/phanxgames/sfml/ffi"
	"go.uber.org/zap"
)

var contextClass = &Class[ffi.Context]{
	Name:    "Context",
	Destroy: func(c *ffi.Context) { lib().ContextDelete(c) },
}

// Context is an OpenGL context without a window. Activation is per OS thread:
// NewContext locks the calling goroutine to its thread and Dispose unlocks
// it, so a context must be disposed on the goroutine that created it.
type Context struct {
	box *FBox[ffi.Context]
}

// NewContext creates a context and activates it on the calling thread.
func NewContext() (*Context, error) {
	runtime.LockOSThread()
	box, err := Acquire(contextClass, lib().ContextNew())
	if err != nil {
		runtime.UnlockOSThread()
		return nil, err
	}
	return &Context{box: box}, nil
}

// SetActive activates or deactivates the context on the calling thread.
func (c *Context) SetActive(active bool) error {
	if !lib().ContextSetActive(c.box.Raw(), active) {
		Logger().Debug("context activation failed", zap.Bool("active", active))
		return fmt.Errorf("%w (active=%t)", ErrContextActivation, active)
	}
	return nil
}

// IsActive reports whether c is the context active on the calling thread.
func (c *Context) IsActive() bool {
	return lib().ContextActiveContext() == c.box.Raw()
}

// Settings returns a copy of the settings the context was created with.
func (c *Context) Settings() ContextSettings {
	return *lib().ContextSettings(c.box.Raw())
}

// Satisfies checks the context's actual settings against want, treating the
// numeric fields as minimums. The foreign side may pick settings other than
// those requested.
func (c *Context) Satisfies(want ContextSettings) error {
	got := c.Settings()
	var errs []error
	check := func(name string, got, want uint32) {
		if got < want {
			errs = append(errs, fmt.Errorf("%s %d < %d", name, got, want))
		}
	}
	check("depth bits", got.DepthBits, want.DepthBits)
	check("stencil bits", got.StencilBits, want.StencilBits)
	check("antialiasing level", got.AntiAliasingLevel, want.AntiAliasingLevel)
	if got.MajorVersion < want.MajorVersion ||
		(got.MajorVersion == want.MajorVersion && got.MinorVersion < want.MinorVersion) {
		errs = append(errs, fmt.Errorf("version %d.%d < %d.%d",
			got.MajorVersion, got.MinorVersion, want.MajorVersion, want.MinorVersion))
	}
	if got.AttributeFlags&want.AttributeFlags != want.AttributeFlags {
		errs = append(errs, fmt.Errorf("attribute flags %#x lack %#x", got.AttributeFlags, want.AttributeFlags))
	}
	if want.SRGBCapable && !got.SRGBCapable {
		errs = append(errs, errors.New("not sRGB capable"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrContextSettings, errors.Join(errs...))
	}
	return nil
}

// Disposed reports whether the context has been disposed.
func (c *Context) Disposed() bool { return c.box.Disposed() }

// Dispose destroys the context, deactivating it if active, and unlocks the
// goroutine from its thread.
func (c *Context) Dispose() {
	if c.box.Disposed() {
		return
	}
	c.box.Dispose()
	runtime.UnlockOSThread()
}

// ActiveContext returns the context active on the calling thread, or nil.
// The pointer is only good for comparisons.
func ActiveContext() *ffi.Context {
	return lib().ContextActiveContext()
}

// ActiveContextID returns the id of the context active on the calling thread,
// or 0 if there is none.
func ActiveContextID() uint64 {
	return lib().ContextActiveContextID()
}

// GLFunction returns the address of an OpenGL entry point in the active
// context, or 0 if it is unavailable.
func GLFunction(name string) uintptr {
	return lib().ContextFunction(ffi.CString(name))
}
