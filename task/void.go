package task

// Void is the handle of fire-and-forget work. It carries no outcome;
// a failure is routed to the forgotten error handler.
//
//taskforget:task void
type Void <-chan struct{}

// Fire starts fn in a new goroutine.
func Fire(fn func() error) Void {
	ch := make(chan struct{})
	go func() {
		defer close(ch)
		handleForgotten(call(fn))
	}()
	return ch
}

// Forget releases v without awaiting it.
func (Void) Forget() {}
