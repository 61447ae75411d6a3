// Package chflow provides context-aware helpers for receiving from and
// sending to Go channels. Every helper gives up as soon as ctx is done.
package chflow

import "context"

// Receive waits to receive a value from ch or for ctx to be canceled.
// It returns the value (zero value if canceled or closed) and whether the
// receive was successful.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send attempts to send data to ch unless ctx is canceled first.
// It returns true if the value was delivered.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Map forwards every value read from in to the returned channel after
// converting it with fn. The returned channel has the given buffer size and
// is closed when in is closed or ctx is done.
func Map[In, Out any](ctx context.Context, in <-chan In, size int, fn func(In) Out) <-chan Out {
	out := make(chan Out, size)
	go func() {
		defer close(out)

		for {
			v, ok := Receive(ctx, in)
			if !ok {
				return
			}

			if !Send(ctx, out, fn(v)) {
				return
			}
		}
	}()

	return out
}
