// Package interrupt runs registered handlers, last added first, when the
// process receives SIGINT or a shutdown is requested from code.
package interrupt

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"sync/atomic"

	"nostrid.lol/context"
	"nostrid.lol/log"
)

type handlerWithSource struct {
	source string
	fn     func()
}

var (
	requested atomic.Bool
	mx        sync.Mutex
	handlers  []handlerWithSource
	listening sync.Once
	signals   = make(chan os.Signal, 1)

	// HandlersDone is closed after all the handlers have run.
	HandlersDone = make(chan struct{})
)

func listen() {
	signal.Notify(signals, os.Interrupt)
	go func() {
		sig := <-signals
		log.D.Ln("received interrupt signal", sig)
		Request()
	}()
}

// AddHandler adds a handler to call when a SIGINT (Ctrl+C) is received.
func AddHandler(fn func()) {
	_, loc, line, _ := runtime.Caller(1)
	source := fmt.Sprintf("%s:%d", loc, line)
	log.T.Ln("handler added by:", source)
	listening.Do(listen)
	mx.Lock()
	handlers = append(handlers, handlerWithSource{source, fn})
	mx.Unlock()
}

// Request runs the handlers as if an interrupt was received. Only the first
// call does anything. From then on SIGINT is no longer caught, so a second
// Ctrl+C kills the process if the handlers do not end it.
func Request() {
	if !requested.CompareAndSwap(false, true) {
		log.D.Ln("interrupt requested again")
		return
	}
	signal.Stop(signals)
	mx.Lock()
	hs := handlers
	handlers = nil
	mx.Unlock()
	log.D.Ln("running interrupt callbacks", len(hs))
	for i := len(hs) - 1; i >= 0; i-- {
		log.T.Ln("running callback", i, hs[i].source)
		hs[i].fn()
	}
	close(HandlersDone)
}

// Requested returns true if an interrupt has been requested.
func Requested() bool { return requested.Load() }

// Context returns a context that is canceled on interrupt.
func Context(parent context.T) (c context.T, cancel context.F) {
	c, cancel = context.Cancel(parent)
	AddHandler(cancel)
	return
}
