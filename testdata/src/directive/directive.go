// Package directive contains test fixtures for //taskforget:task directives.
package directive

import (
	"example.com/jobs"
)

//taskforget:task
type Op <-chan error // want Op:"^taskforget:task$"

func (Op) Forget() {}

// Signal completes without a value.
//
//taskforget:task void
type Signal <-chan struct{} // want Signal:"^taskforget:task void$"

//taskforget:task
type Promise[T any] <-chan T // want Promise:"^taskforget:task$"

type (
	//taskforget:task
	Grouped <-chan error // want Grouped:"^taskforget:task$"

	Ungrouped <-chan error
)

//taskforget:taskvoid
type Glued <-chan error

func start() Op             { return nil }
func notify() Signal        { return nil }
func promise() Promise[int] { return nil }
func grouped() Grouped      { return nil }
func ungrouped() Ungrouped  { return nil }
func glued() Glued          { return nil }

// ===== SHOULD REPORT =====

// [BAD]: Local directive
func badLocal() {
	start() // want `result of directive\.start\(\) is neither awaited nor forgotten`
}

// [BAD]: Local void directive
func badLocalVoid() {
	notify() // want `fire-and-forget directive\.notify\(\) is neither awaited nor forgotten`
}

// [BAD]: Local generic directive
func badLocalGeneric() {
	promise() // want `result of directive\.promise\(\) is neither awaited nor forgotten`
}

// [BAD]: Directive on a grouped spec
func badGrouped() {
	grouped() // want `result of directive\.grouped\(\) is neither awaited nor forgotten`
}

// [BAD]: Imported directive
//
// Facts are exported by the declaring package.
func badImported() {
	jobs.Start() // want `result of jobs\.Start\(\) is neither awaited nor forgotten`
}

// [BAD]: Imported void directive
func badImportedVoid() {
	jobs.Every() // want `fire-and-forget jobs\.Every\(\) is neither awaited nor forgotten`
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: Forgotten
func goodForgotten() {
	start().Forget()
	jobs.Start().Forget()
}

// [GOOD]: Unmarked types
func goodUnmarked() {
	ungrouped()
	glued()
	jobs.Open()
}
