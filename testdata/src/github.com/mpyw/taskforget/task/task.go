// Package task is a minimal stub of github.com/mpyw/taskforget/task for testing.
package task

import "context"

//taskforget:task
type Task <-chan error

func Run(fn func() error) Task                     { return nil }
func Completed(err error) Task                     { return nil }
func WhenAll(tasks ...Task) Task                   { return nil }
func (t Task) Wait(ctx context.Context) error      { return nil }
func (t Task) Forget()                             {}
func (t Task) ContinueWith(fn func(error) error) Task { return t }

type Result[T any] struct {
	Value T
	Err   error
}

//taskforget:task
type Future[T any] <-chan Result[T]

func Go[T any](fn func() (T, error)) Future[T]                  { return nil }
func FromValue[T any](v T) Future[T]                            { return nil }
func (f Future[T]) Get(ctx context.Context) (T, error)          { var zero T; return zero, nil }
func (f Future[T]) Forget()                                     {}
func (f Future[T]) AsTask() Task                                { return nil }
func Then[T, U any](f Future[T], fn func(T) (U, error)) Future[U] { return nil }

//taskforget:task void
type Void <-chan struct{}

func Fire(fn func() error) Void { return nil }
func (Void) Forget()             {}
