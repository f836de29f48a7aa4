package runtimer

import (
	"os"
	"os/signal"
	"sync"
)

type Callback func(s os.Signal)

// New starts listening for signals. The first one received invokes all registered callbacks, after which the handler
// stops listening.
func New(signals ...os.Signal) *SignalHandler {
	c := make(chan os.Signal, 1)
	signal.Notify(c, signals...)

	sh := &SignalHandler{
		c:    c,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go sh.handle()

	return sh
}

type SignalHandler struct {
	c        chan os.Signal
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}

	lock sync.Mutex
	fns  []Callback
}

func (sh *SignalHandler) handle() {
	defer close(sh.done)

	select {
	case s := <-sh.c:
		signal.Stop(sh.c)
		for _, fn := range sh.callbacks() {
			fn(s)
		}

	case <-sh.stop:
		signal.Stop(sh.c)
	}
}

func (sh *SignalHandler) callbacks() []Callback {
	sh.lock.Lock()
	defer sh.lock.Unlock()

	return append([]Callback(nil), sh.fns...)
}

func (sh *SignalHandler) RegisterCallback(fn Callback) {
	sh.lock.Lock()
	defer sh.lock.Unlock()

	sh.fns = append(sh.fns, fn)
}

// Stop releases the signals without invoking callbacks, unless a signal was already being handled. It blocks until the
// handler is done and is safe to call more than once.
func (sh *SignalHandler) Stop() {
	sh.stopOnce.Do(func() {
		close(sh.stop)
	})

	<-sh.done
}

// Wait blocks until all callback's have been called, or until Stop is called
func (sh *SignalHandler) Wait() {
	<-sh.done
}
