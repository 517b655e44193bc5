package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu    sync.Mutex
	resetHook  func()
	crashOut   io.Writer = os.Stderr
	crashExit            = os.Exit
	crashFired bool
)

// SetResetHook registers the function that restores the display before a crash report
// Frontends register their screen finalizer; nil clears the hook
func SetResetHook(fn func()) {
	crashMu.Lock()
	defer crashMu.Unlock()
	resetHook = fn
}

// HandleCrash is the unified panic handler that resets the display and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	// Second panic while reporting the first: report once only
	if crashFired {
		crashMu.Unlock()
		return
	}
	crashFired = true
	hook := resetHook
	out := crashOut
	exit := crashExit
	crashMu.Unlock()

	if hook != nil {
		hook()
	}

	// \r\n keeps output straight if the terminal is still in raw mode
	fmt.Fprintf(out, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(out, "Stack Trace:\r\n%s\r\n", debug.Stack())

	exit(1)
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

// Guard wraps fn so a panic inside it is routed to HandleCrash
// Used for callbacks fired from runtime-owned goroutines (time.AfterFunc)
func Guard(fn func()) func() {
	return func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}
}
