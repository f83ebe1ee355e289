// Package parallel runs batches of independent tasks on a fixed set of
// worker goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed pool of goroutines executing submitted tasks.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
	queue   chan func()
	wg      sync.WaitGroup
	running atomic.Bool
	once    sync.Once
}

// NewPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// A queue a few times deeper than the worker count hides hand-off latency.
	p := &Pool{
		workers: workers,
		queue:   make(chan func(), max(workers*4, 8)),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for work := range p.queue {
		work()
	}
}

// Run executes every task and waits for all of them to finish.
// If the pool is closed, the tasks run on the calling goroutine.
func (p *Pool) Run(tasks []func()) {
	if len(tasks) == 0 {
		return
	}
	if !p.running.Load() || len(tasks) == 1 {
		for _, task := range tasks {
			task()
		}
		return
	}

	var done sync.WaitGroup
	done.Add(len(tasks))
	for _, task := range tasks {
		p.queue <- func() {
			defer done.Done()
			task()
		}
	}
	done.Wait()
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int { return p.workers }

// Close stops the workers after queued tasks finish. Safe to call twice.
// Run must not be called concurrently with Close.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.running.Store(false)
		close(p.queue)
		p.wg.Wait()
	})
}
