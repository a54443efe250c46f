package handle

import (
	"reflect"
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	logger    atomic.Pointer[zap.Logger]
	nopLogger = zap.NewNop()
)

// Logger returns the handle package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetLogger configures the handle package's logger. A nil logger restores
// the no-op default. Safe to call while guards are in use.
// Providers built on this package log through it as well.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}

// TypeName returns the Go type name of a handle type, used in errors and logs.
func TypeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
