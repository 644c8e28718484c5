// Package jobs declares deferred-result types with directives for testing
// facts imported across packages.
package jobs

// Job is a handle of background work.
//
//taskforget:task
type Job <-chan error

func Start() Job { return nil }

func (Job) Forget() {}

//taskforget:task void
type Tick <-chan struct{}

func Every() Tick { return nil }

// Plain is not marked.
type Plain <-chan error

func Open() Plain { return nil }
