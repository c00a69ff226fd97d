package worker

import (
	"runtime"
	"time"

	"github.com/getsentry/sentry-go"
)

var workerQueue = make(chan func(), runtime.NumCPU())

func init() {
	for i := 0; i < runtime.NumCPU(); i++ {
		go worker()
	}
}

func worker() {
	for {
		f, ok := <-workerQueue
		if !ok {
			return
		}
		run(f)
	}
}

// run executes f, reporting a panic to sentry instead of taking the worker down with it.
func run(f func()) {
	defer func() {
		if err := recover(); err != nil {
			hub := sentry.CurrentHub().Clone()
			hub.Recover(err)
			hub.Flush(time.Second * 5)
		}
	}()
	f()
}

// To be used by a function that may be CPU intensive, such as encoding a snapshot.
func Submit(f func()) {
	workerQueue <- f
}
