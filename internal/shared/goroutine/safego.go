// Package goroutine provides utilities for safely running code with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"helpdesk/internal/shared/logger"
)

// SafeGo launches a goroutine with panic recovery. If the goroutine panics,
// the panic is caught and logged with stack trace instead of crashing the process.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer Recover(log, name)
		fn()
	}()
}

// SafeCall runs fn on the current goroutine with panic recovery. Used to
// isolate one platform event's handler from the rest of the process.
func SafeCall(log logger.Interface, name string, fn func()) {
	defer Recover(log, name)
	fn()
}

// Recover is the shared deferred recovery handler behind SafeGo and SafeCall.
func Recover(log logger.Interface, name string) {
	if r := recover(); r != nil {
		log.Errorw("handler panicked",
			"handler", name,
			"panic", fmt.Sprintf("%v", r),
			"stack", string(debug.Stack()),
		)
	}
}
