package concurrent

import (
	"sync"
)

type JobFunc[T any, G any] func(job T) G

// Job carries the position of its payload so results can be put back in input order.
type Job[T any] struct {
	ID      int
	Payload T
}

type JobResult[G any] struct {
	ID     int
	Result G
}

type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan Job[T]
	results    chan JobResult[G]
	wg         sync.WaitGroup
}

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan Job[T], jobQueueSize),
		results:    make(chan JobResult[G], jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- JobResult[G]{ID: job.ID, Result: jobFunc(job.Payload)}
	}
}

func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 1; i <= wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

// Wait blocks until every worker has returned, then closes the results channel.
// call Close first.
func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[T, G]) AddJob(id int, payload T) {
	wp.jobQueue <- Job[T]{ID: id, Payload: payload}
}

func (wp *WorkerPool[T, G]) CollectResults() chan JobResult[G] {
	return wp.results
}

func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

// Map runs jobFunc over payloads with numWorkers goroutines and returns results in input order.
func Map[T any, G any](numWorkers int, payloads []T, jobFunc JobFunc[T, G]) []G {
	wp := NewWorkerPool[T, G](numWorkers, len(payloads))
	wp.Start(jobFunc)
	for i, p := range payloads {
		wp.AddJob(i, p)
	}
	wp.Close()
	wp.Wait()

	results := make([]G, len(payloads))
	for res := range wp.CollectResults() {
		results[res.ID] = res.Result
	}
	return results
}
