package core

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync"
)

// Finalizer restores the terminal, tcell.Screen satisfies it
type Finalizer interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finalizer
	exitFunc    = os.Exit
)

// SetCrashScreen registers the screen HandleCrash must finalize before printing
func SetCrashScreen(s Finalizer) {
	crashMu.Lock()
	defer crashMu.Unlock()
	crashScreen = s
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	s := crashScreen
	crashScreen = nil
	crashMu.Unlock()

	if s != nil {
		s.Fini()
	}

	stack := debug.Stack()
	log.Printf("crash: %v\n%s", r, stack)

	fmt.Fprintf(os.Stderr, "\n\x1b[31mORRERY CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)

	exitFunc(1)
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
