package wows

import (
	"context"
	"errors"
)

// AsyncClient starts API calls without waiting for them. All in-flight calls
// share the caller's transport, so a pooled *http.Client lets them reuse
// connections. The client never closes the transport.
type AsyncClient struct {
	r *requester
}

// NewAsync creates a non-blocking client over doer, which is required and
// stays owned by the caller.
func NewAsync(applicationID string, doer Doer, opts ...Option) (*AsyncClient, error) {
	if doer == nil {
		return nil, errors.New("wows: a transport is required; pass a shared *http.Client")
	}
	return &AsyncClient{r: newRequester(applicationID, doer, opts)}, nil
}

// Go starts req in its own goroutine and returns at once. ctx is passed to
// the transport; cancelling it aborts the in-flight request.
func (c *AsyncClient) Go(ctx context.Context, req Request) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.resp, f.err = c.r.do(ctx, req)
	}()
	return f
}

// Future is the pending result of an AsyncClient call.
type Future struct {
	done chan struct{}
	resp *Response
	err  error
}

// Done is closed once the call has finished.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Await waits for the call to finish and returns its result. If ctx ends
// first, Await returns ctx.Err() and the call keeps running; cancel the
// context given to Go to abort it.
func (f *Future) Await(ctx context.Context) (*Response, error) {
	select {
	case <-f.done:
		return f.resp, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
