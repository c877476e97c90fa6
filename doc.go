// Package sfml provides safe Go wrappers over the CSFML C interface of the
// [SFML] multimedia library.
//
// The wrappers own foreign objects through [FBox], a runtime-checked single
// owner that runs the foreign destructor exactly once. Strings cross the
// boundary as UTF-32 ([SfString]) or std::string ([CppString]) and are copied
// into Go values before the call that produced them returns.
//
// # Installing the native library
//
// Every wrapper calls through the table installed in package ffi. Link the
// real library by importing the cgo binding for its side effect:
//
//	import _ "github.com/phanxgames/sfml/ffi/native"
//
// Tests install the instrumented fake instead:
//
//	lib := ffitest.Install(t)
//
// # Ownership
//
// Constructors return owning wrappers. Call Dispose when done; Dispose is
// idempotent, and any other method on a disposed wrapper panics with
// [ErrDisposed].
//
//	view, err := sfml.NewView()
//	if err != nil {
//		return err
//	}
//	defer view.Dispose()
//	view.Zoom(2)
//
// Shapes borrow the textures bound to them. A [Texture] refuses to be disposed
// while any shape still references it:
//
//	tex, _ := sfml.NewTexture(64, 64, false)
//	circle := sfml.NewCircleShapeWithTexture(32, 30, tex)
//	err := tex.Dispose() // ErrTextureBorrowed
//	circle.Dispose()
//	err = tex.Dispose() // nil
//
// # Callbacks
//
// [CustomShape], [SoundRecorderDriver] and [InputStream] hand a Go value to
// the foreign side, which calls back into it. The value is registered in the
// ffi user-data registry for exactly as long as the foreign object lives.
// Callbacks may run on foreign threads and must be safe for that.
//
// # Contexts
//
// Context activation is bound to an OS thread. [NewContext] locks the calling
// goroutine to its thread until the context is disposed, so create and
// dispose a context on the same goroutine.
//
// [SFML]: https://www.sfml-dev.org
package sfml
