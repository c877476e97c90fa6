package sfml

import (
	"sync/atomic"

	"github.com/phanxgames/sfml/ffi"
	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// Logger returns the package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger configures the logger for this package and for package ffi,
// whose callbacks log from foreign threads. Nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
	ffi.SetLogger(l.Named("ffi"))
}
