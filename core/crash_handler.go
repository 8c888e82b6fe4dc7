// Package core holds process-wide plumbing shared by the command and the show
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores the terminal; satisfied by tcell.Screen
type Finalizer interface {
	Fini()
}

var (
	crashMu       sync.Mutex
	crashTerminal Finalizer
	crashOut      io.Writer = os.Stderr
	crashExit               = os.Exit
)

// RegisterTerminal sets the screen restored before a crash report is printed
// Passing nil unregisters it
func RegisterTerminal(t Finalizer) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashTerminal = t
}

// HandleCrash restores the terminal, prints the panic value with its stack and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	t := crashTerminal
	crashTerminal = nil
	crashMu.Unlock()

	if t != nil {
		t.Fini()
	}

	fmt.Fprintf(crashOut, "\n\x1b[31mCRASH DETECTED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\n%s\n", debug.Stack())

	crashExit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword so the terminal is restored on crash
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
