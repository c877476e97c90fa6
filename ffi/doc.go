// Package ffi is the boundary between Go and the native CSFML library.
//
// It holds three things:
//
//   - the opaque handle model: one zero-sized marker type per foreign class
//     ([View], [Texture], [CustomShape], ...). Go code only ever holds
//     pointers to these that came from the foreign allocator;
//   - [Library], the table of C entry points. A binding such as
//     github.com/phanxgames/sfml/ffi/native fills it and calls [Install];
//     tests install github.com/phanxgames/sfml/ffi/ffitest instead;
//   - the callback machinery: a registry that maps an opaque [UserData] id to
//     a Go capability, and the Go halves of every trampoline the foreign side
//     calls back into.
//
// Nothing in this package uses cgo, so the wrappers in the parent package can
// be built and tested without the native library.
package ffi
