// Package scoring owns the keyword-relevance model and the arbiter that
// multiplexes concurrent pipeline tasks onto it. The model is expensive to
// construct and not safe for concurrent calls, so exactly one worker
// goroutine holds it and services requests one at a time.
package scoring

import (
	"context"
	"errors"
	"fmt"
)

// Candidate is one scored keyword phrase proposed for a text fragment.
type Candidate struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

// Scorer assigns relevance-weighted keyword candidates to text fragments.
// The returned outer slice pairs 1:1 and in order with fragments.
type Scorer interface {
	Score(fragments []string) ([][]Candidate, error)
}

// ErrArbiterClosed is returned by Submit after Close.
var ErrArbiterClosed = errors.New("scoring: arbiter closed")

type request struct {
	fragments []string
	reply     chan response
}

type response struct {
	candidates [][]Candidate
	err        error
}

// Arbiter serializes scoring requests from any number of goroutines onto a
// single Scorer. Requests are serviced strictly in the order they are
// submitted; nothing is ever scored concurrently.
type Arbiter struct {
	// requests stays open for the arbiter's whole life; shutdown is
	// signalled through closing so a Submit racing Close can never hit a
	// send on a closed channel.
	requests chan request
	closing  chan struct{}
	done     chan struct{}
}

// NewArbiter starts the worker goroutine that takes sole ownership of
// scorer. The scorer must not be touched by anyone else afterwards.
func NewArbiter(scorer Scorer) *Arbiter {
	a := &Arbiter{
		// Unbuffered: submission order is service order.
		requests: make(chan request),
		closing:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go a.serve(scorer)
	return a
}

func (a *Arbiter) serve(scorer Scorer) {
	defer close(a.done)
	for {
		select {
		case req := <-a.requests:
			candidates, err := scorer.Score(req.fragments)
			// The reply channel is buffered, so a caller that gave up
			// waiting never blocks the worker; the response is dropped.
			req.reply <- response{candidates: candidates, err: err}
		case <-a.closing:
			return
		}
	}
}

// Submit scores fragments through the shared model, suspending the caller
// until the reply arrives or ctx is done. Each call uses a fresh single-use
// reply channel; abandoning a pending call (ctx cancellation) leaves the
// worker free to service subsequent requests.
func (a *Arbiter) Submit(ctx context.Context, fragments []string) ([][]Candidate, error) {
	req := request{
		fragments: fragments,
		reply:     make(chan response, 1),
	}

	select {
	case a.requests <- req:
	case <-a.closing:
		return nil, ErrArbiterClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case resp := <-req.reply:
		if resp.err != nil {
			return nil, fmt.Errorf("scoring failed: %w", resp.err)
		}
		return resp.candidates, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close shuts the arbiter down and waits for the worker to exit: the
// request in flight is finished, nothing further is accepted. Submit calls
// racing or following Close return ErrArbiterClosed. Close must only be
// called once.
func (a *Arbiter) Close() {
	close(a.closing)
	<-a.done
}
