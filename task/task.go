// Package task provides channel-backed handles for asynchronous work.
//
// Every handle is a receive-only channel, so the receive operator awaits it:
//
//	err := <-task.Run(save)
//	v := <-task.Go(load) // v.Value, v.Err
//	<-task.Fire(notify)
//
// A handle whose outcome is intentionally ignored must be released with
// Forget, which drains it in the background and routes a failure to the
// handler installed with SetForgottenErrorHandler:
//
//	task.Run(save).Forget()
package task

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
)

// ErrPanic is wrapped by the error of a task whose function panicked.
var ErrPanic = errors.New("task panicked")

var forgottenErrorHandler atomic.Pointer[func(error)]

// SetForgottenErrorHandler installs the handler that receives errors of
// forgotten tasks. A nil handler restores the default, which logs the error.
func SetForgottenErrorHandler(h func(error)) {
	if h == nil {
		forgottenErrorHandler.Store(nil)
		return
	}
	forgottenErrorHandler.Store(&h)
}

func handleForgotten(err error) {
	if err == nil {
		return
	}
	if h := forgottenErrorHandler.Load(); h != nil {
		(*h)(err)
		return
	}
	log.Printf("task: forgotten task failed: %v", err)
}

// Task is the handle of work that completes with an error or nil.
// It yields its outcome once; later receives yield nil.
//
//taskforget:task
type Task <-chan error

// Run starts fn in a new goroutine.
func Run(fn func() error) Task {
	ch := make(chan error, 1)
	go func() {
		defer close(ch)
		ch <- call(fn)
	}()
	return ch
}

// Completed returns a task that has already finished with err.
func Completed(err error) Task {
	ch := make(chan error, 1)
	ch <- err
	close(ch)
	return ch
}

// Wait blocks until t completes or ctx is done.
func (t Task) Wait(ctx context.Context) error {
	select {
	case err := <-t:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Forget releases t without awaiting it.
func (t Task) Forget() {
	go func() {
		handleForgotten(<-t)
	}()
}

// ContinueWith returns a task that runs fn with the outcome of t once t
// completes. A nil fn passes the outcome through.
func (t Task) ContinueWith(fn func(error) error) Task {
	ch := make(chan error, 1)
	go func() {
		defer close(ch)
		err := <-t
		if fn == nil {
			ch <- err
			return
		}
		ch <- call(func() error { return fn(err) })
	}()
	return ch
}

// WhenAll returns a task that completes when every task has completed,
// with the joined errors of the failed ones.
func WhenAll(tasks ...Task) Task {
	return Run(func() error {
		errs := make([]error, 0, len(tasks))
		for _, t := range tasks {
			errs = append(errs, <-t)
		}
		return errors.Join(errs...)
	})
}

func call(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return fn()
}
