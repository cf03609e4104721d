package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// resetHook restores the terminal before crash output is printed
// Registered by the binary once the screen exists
var resetHook atomic.Value // func()

// SetResetHook registers the terminal restore function used on panic
func SetResetHook(fn func()) {
	resetHook.Store(fn)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn, ok := resetHook.Load().(func()); ok && fn != nil {
		fn()
	}

	// Force flush stdout/stderr before printing to stderr
	os.Stdout.Sync()
	os.Stderr.Sync()

	// Use \r\n for raw mode compatibility to avoid zig-zag output
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())

	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
