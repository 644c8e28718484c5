// Package unexported contains test fixtures for an unexported discard method.
// Run with -forget-method=discard.
package unexported

import (
	"example.com/hidden"
)

// Local declares the discard method in this package.
//
//taskforget:task
type Local <-chan error // want Local:"^taskforget:task$"

func (Local) discard() {}

func startLocal() Local { return nil }

// ===== SHOULD REPORT =====

// [BAD]: Discard method of another package
//
// hidden.Job.discard is not accessible here. Only the await fix is offered.
func badForeignDiscard() {
	hidden.Start() // want `result of hidden\.Start\(\) is neither awaited nor forgotten`
}

// [BAD]: Discard method of this package
func badLocalDiscard() {
	startLocal() // want `result of unexported\.startLocal\(\) is neither awaited nor forgotten`
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: Discarded in the declaring package
func goodLocalDiscarded() {
	startLocal().discard()
}
