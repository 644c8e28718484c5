// Package hidden declares a task type whose discard method is unexported.
package hidden

//taskforget:task
type Job <-chan error

func Start() Job { return nil }

func (Job) discard() {}
