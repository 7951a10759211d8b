////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package tododb

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
)

// Tests that a request settles exactly once: a Reject after a Resolve has no
// effect on the awaited outcome.
func TestRequest_ResolveThenReject(t *testing.T) {
	request := NewRequest()
	request.Resolve("value")
	request.Reject(errors.New("late error"))

	result, err := SendRequest(request)
	if err != nil {
		t.Fatalf("Await returned error after Resolve: %+v", err)
	}
	if result != "value" {
		t.Errorf("Unexpected result.\nexpected: %q\nreceived: %v",
			"value", result)
	}
}

// Tests that a request settles exactly once: a Resolve after a Reject has no
// effect on the awaited outcome.
func TestRequest_RejectThenResolve(t *testing.T) {
	request := NewRequest()
	request.Reject(errors.New("failed"))
	request.Resolve("late value")

	_, err := SendRequest(request)
	if err == nil {
		t.Fatal("Await did not return the rejection error")
	}
}

// Tests that Await honors the caller's context for a request that never
// settles.
func TestRequest_AwaitContextExpired(t *testing.T) {
	request := NewRequest()

	ctx, cancel := context.WithTimeout(context.Background(),
		5*time.Millisecond)
	defer cancel()

	_, err := request.Await(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Unexpected error for hung request.\nexpected: %v"+
			"\nreceived: %v", context.DeadlineExceeded, err)
	}
}

// Tests that SendRequest awaits a request settled from another goroutine.
func TestSendRequest(t *testing.T) {
	request := NewRequest()
	go func() {
		time.Sleep(time.Millisecond)
		request.Resolve(5)
	}()

	result, err := SendRequest(request)
	if err != nil {
		t.Fatalf("SendRequest failed: %+v", err)
	}
	if result != 5 {
		t.Errorf("Unexpected result.\nexpected: %d\nreceived: %v", 5, result)
	}
}
