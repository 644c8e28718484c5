// Package voidtasks contains test fixtures for the taskvoid checker.
package voidtasks

import (
	"github.com/mpyw/taskforget/task"
)

type Notifier struct{}

func (Notifier) Foo() task.Void { return task.Fire(nil) }

func Run(v task.Void) {}

// ===== SHOULD REPORT =====

// [BAD]: Bare call
//
// Fire-and-forget result is dropped.
func badBareCall(n Notifier) {
	n.Foo() // want `fire-and-forget voidtasks\.Notifier\.Foo\(\) is neither awaited nor forgotten`
}

// [BAD]: Package function
//
// Fire-and-forget result of a package function is dropped.
func badFire() {
	task.Fire(nil) // want `fire-and-forget task\.Fire\(\) is neither awaited nor forgotten`
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: Stored into a variable
//
// The variable takes ownership of the result.
func goodStored(n Notifier) {
	x := n.Foo()
	_ = x
}

// [GOOD]: Variable declaration
//
// A var initializer takes ownership as well.
func goodVarDecl(n Notifier) {
	var x = n.Foo()
	var (
		y task.Void = task.Fire(nil)
	)
	_, _ = x, y
}

// [GOOD]: Passed as an argument
//
// The callee takes ownership of the result.
func goodArgument(n Notifier) {
	Run(n.Foo())
}

// [GOOD]: Awaited
//
// The receive operator waits for completion.
func goodAwaited(n Notifier) {
	<-n.Foo()
}

// [GOOD]: Forgotten
//
// The result is explicitly discarded.
func goodForgotten(n Notifier) {
	n.Foo().Forget()
}
