package werkit

import (
	"sync"
)

// WerkIt is a fixed size pool of workers consuming tasks of type T. Call StartWorkers once, Process for every task and
// Wait after the last one.
type WerkIt[T any] struct {
	wg    sync.WaitGroup
	tasks chan T
}

// StartWorkers starts at least one worker. Each worker runs fn until the task channel is closed by Wait.
func (wi *WerkIt[T]) StartWorkers(workers int, fn func(tasks <-chan T)) {
	if workers < 1 {
		workers = 1
	}

	wi.tasks = make(chan T)
	wi.wg.Add(workers)
	for i := workers; i > 0; i-- {
		go func() {
			defer wi.wg.Done()
			fn(wi.tasks)
		}()
	}
}

// Process blocks until a worker accepts t
func (wi *WerkIt[T]) Process(t T) {
	wi.tasks <- t
}

// Wait closes the task channel and blocks until all workers returned
func (wi *WerkIt[T]) Wait() {
	close(wi.tasks)
	wi.wg.Wait()
}
