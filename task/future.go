package task

import "context"

// Result is the outcome of a Future.
type Result[T any] struct {
	Value T
	Err   error
}

// Future is the handle of work that produces a value of type T.
//
//taskforget:task
type Future[T any] <-chan Result[T]

// Go starts fn in a new goroutine.
func Go[T any](fn func() (T, error)) Future[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		var v T
		err := call(func() error {
			var err error
			v, err = fn()
			return err
		})
		ch <- Result[T]{Value: v, Err: err}
	}()
	return ch
}

// FromValue returns a future that has already produced v.
func FromValue[T any](v T) Future[T] {
	ch := make(chan Result[T], 1)
	ch <- Result[T]{Value: v}
	close(ch)
	return ch
}

// Get blocks until f completes or ctx is done.
func (f Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case r := <-f:
		return r.Value, r.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Forget releases f without awaiting it.
func (f Future[T]) Forget() {
	go func() {
		handleForgotten((<-f).Err)
	}()
}

// AsTask discards the value of f, keeping its error.
func (f Future[T]) AsTask() Task {
	ch := make(chan error, 1)
	go func() {
		defer close(ch)
		ch <- (<-f).Err
	}()
	return ch
}

// Then returns a future that maps the value of f with fn.
// fn is not called when f fails.
func Then[T, U any](f Future[T], fn func(T) (U, error)) Future[U] {
	return Go(func() (U, error) {
		r := <-f
		if r.Err != nil {
			var zero U
			return zero, r.Err
		}
		return fn(r.Value)
	})
}
