package ffitest

import "golang.org/x/sys/unix"

// ThreadID returns the calling OS thread's id.
func ThreadID() uint64 {
	return uint64(unix.Gettid())
}
