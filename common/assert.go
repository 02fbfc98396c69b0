package common

import (
	"fmt"
	"sync/atomic"
)

var debugAssertions atomic.Bool

// SetDebugAssertions toggles development-time invariant checks. When enabled a failed
// Assert panics; when disabled (the release default) it only emits a debug log record
// and rendering continues with whatever state is bound.
//
// Parameters:
//   - enabled: true to panic on failed assertions
func SetDebugAssertions(enabled bool) {
	debugAssertions.Store(enabled)
}

// DebugAssertions reports whether failed assertions panic.
//
// Returns:
//   - bool: true when development-time assertions are enabled
func DebugAssertions() bool {
	return debugAssertions.Load()
}

// Assert checks an internal invariant of the render pipeline.
//
// Parameters:
//   - cond: the invariant that must hold
//   - format: a fmt-style message describing the violation
//   - args: values for format
func Assert(cond bool, format string, args ...any) {
	if cond {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if debugAssertions.Load() {
		panic("invariant violation: " + msg)
	}
	Logger().Debug("invariant violation", "detail", msg)
}
