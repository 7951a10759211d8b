////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package tododb

import (
	"context"
	"sync"
	"time"
)

// dbTimeout is the global timeout for operations awaited with the default
// [context.Context] from NewContext.
const dbTimeout = time.Second

// NewContext builds a context for database operations.
func NewContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

// Request represents a single in-flight asynchronous storage operation. A
// backend creates it, performs the operation, and settles it exactly once via
// Resolve or Reject; the caller blocks on Await until then. Settling a request
// more than once has no effect after the first settle.
type Request struct {
	done   chan struct{}
	settle sync.Once
	result any
	err    error
}

// NewRequest returns an unsettled Request. The backend that created it is
// responsible for eventually calling Resolve or Reject.
func NewRequest() *Request {
	return &Request{done: make(chan struct{})}
}

// Resolve settles the request successfully with the given result.
func (r *Request) Resolve(result any) {
	r.settle.Do(func() {
		r.result = result
		close(r.done)
	})
}

// Reject settles the request with the given error.
func (r *Request) Reject(err error) {
	r.settle.Do(func() {
		r.err = err
		close(r.done)
	})
}

// Await blocks until the request settles or the context expires. A request
// that never settles blocks for as long as the context allows; there is no
// other cancellation mechanism.
func (r *Request) Await(ctx context.Context) (any, error) {
	select {
	case <-r.done:
		return r.result, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// SendRequest is a wrapper for the request.Await() method providing a timeout.
func SendRequest(request *Request) (any, error) {
	ctx, cancel := NewContext()
	defer cancel()
	result, err := request.Await(ctx)
	if err != nil {
		return nil, err
	} else if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return result, nil
}
