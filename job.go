package kitaev

import (
	"context"
	"sync"
	"time"
)

// Counts is a measurement histogram: bitstring → number of shots that
// produced it. Character i of a bitstring reports qubit i.
type Counts map[string]int

// Shots returns the total number of shots recorded in the histogram.
func (c Counts) Shots() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Job is the asynchronous handle returned by a backend submission. The
// backend completes it exactly once; callers wait on Done or Result.
type Job struct {
	id        string
	backend   string
	createdAt time.Time

	done   chan struct{}
	mu     sync.Mutex
	counts []Counts
	err    error
}

func newJob(id, backend string) *Job {
	return &Job{
		id:        id,
		backend:   backend,
		createdAt: time.Now(),
		done:      make(chan struct{}),
	}
}

// ID returns the backend-assigned job identifier.
func (j *Job) ID() string { return j.id }

// Backend returns the name of the backend the job ran on.
func (j *Job) Backend() string { return j.backend }

// CreatedAt returns the submission time.
func (j *Job) CreatedAt() time.Time { return j.createdAt }

// Done returns a channel that is closed when results are available.
func (j *Job) Done() <-chan struct{} { return j.done }

// Result blocks until the job completes or ctx is cancelled, and returns one
// histogram per submitted circuit, in submission order.
func (j *Job) Result(ctx context.Context) ([]Counts, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-j.done:
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.counts, j.err
}

// complete stores the outcome and releases every waiter. Later calls are
// ignored; a job resolves exactly once.
func (j *Job) complete(counts []Counts, err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	select {
	case <-j.done:
		return
	default:
	}
	j.counts = counts
	j.err = err
	close(j.done)
}
