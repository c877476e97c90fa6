package native

/*
#include "csfml.h"
*/
import "C"

import (
	"unsafe"

	"github.com/phanxgames/sfml/ffi"
)

// The exports below are the fixed C function pointers handed to the
// callback-driven constructors in trampolines.c. userData is always a
// registry id, never a Go pointer.

func userData(p unsafe.Pointer) ffi.UserData {
	return ffi.UserData(uintptr(p))
}

//export sfmlGoPointCount
func sfmlGoPointCount(ud unsafe.Pointer) C.size_t {
	return C.size_t(ffi.PointCountTrampoline(userData(ud)))
}

//export sfmlGoPoint
func sfmlGoPoint(index C.size_t, ud unsafe.Pointer) C.sfVector2f {
	return cVector2f(ffi.PointTrampoline(uintptr(index), userData(ud)))
}

//export sfmlGoRecorderStart
func sfmlGoRecorderStart(ud unsafe.Pointer) C.bool {
	return C.bool(ffi.RecorderStartTrampoline(userData(ud)))
}

//export sfmlGoRecorderProcess
func sfmlGoRecorderProcess(samples *C.int16_t, count C.size_t, ud unsafe.Pointer) C.bool {
	return C.bool(ffi.RecorderProcessTrampoline((*int16)(unsafe.Pointer(samples)), uintptr(count), userData(ud)))
}

//export sfmlGoRecorderStop
func sfmlGoRecorderStop(ud unsafe.Pointer) {
	ffi.RecorderStopTrampoline(userData(ud))
}

//export sfmlGoStreamRead
func sfmlGoStreamRead(data unsafe.Pointer, size C.int64_t, ud unsafe.Pointer) C.int64_t {
	return C.int64_t(ffi.StreamReadTrampoline(data, int64(size), userData(ud)))
}

//export sfmlGoStreamSeek
func sfmlGoStreamSeek(position C.int64_t, ud unsafe.Pointer) C.int64_t {
	return C.int64_t(ffi.StreamSeekTrampoline(int64(position), userData(ud)))
}

//export sfmlGoStreamTell
func sfmlGoStreamTell(ud unsafe.Pointer) C.int64_t {
	return C.int64_t(ffi.StreamTellTrampoline(userData(ud)))
}

//export sfmlGoStreamSize
func sfmlGoStreamSize(ud unsafe.Pointer) C.int64_t {
	return C.int64_t(ffi.StreamSizeTrampoline(userData(ud)))
}
