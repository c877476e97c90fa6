//go:build !linux && !windows

package ffitest

import (
	"bytes"
	"runtime"
	"strconv"
)

// ThreadID returns an id for the calling goroutine. Contexts lock their
// goroutine to its thread, so it stands in for the thread id here.
func ThreadID() uint64 {
	var buf [64]byte
	b := buf[:runtime.Stack(buf[:], false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i > 0 {
		b = b[:i]
	}
	id, _ := strconv.ParseUint(string(b), 10, 64)
	return id
}
