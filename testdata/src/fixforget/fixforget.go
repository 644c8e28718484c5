// Package fixforget contains test fixtures for the forget suggested fix.
package fixforget

import (
	"github.com/mpyw/taskforget/task"
)

type Bar struct{}

func (Bar) Foo() task.Task { return nil }

func (Bar) Foo3() task.Future[int] { return nil }

func (Bar) Fire() task.Void { return nil }

// [BAD]: Bare call
func badBareCall(bar Bar) {
	bar.Foo() // want `result of fixforget\.Bar\.Foo\(\) is neither awaited nor forgotten`
}

// [BAD]: Fluent chain
//
// The whole chain is kept as the receiver of Forget.
func badFluentChain(bar Bar) {
	bar.Foo3().AsTask().ContinueWith(nil) // want `result of task\.Task\.ContinueWith\(\) is neither awaited nor forgotten`
}

// [BAD]: Parenthesized
func badParenthesized(bar Bar) {
	(bar.Foo()) // want `result of fixforget\.Bar\.Foo\(\) is neither awaited nor forgotten`
}

// [BAD]: Fire-and-forget
func badVoid(bar Bar) {
	bar.Fire() // want `fire-and-forget fixforget\.Bar\.Fire\(\) is neither awaited nor forgotten`
}

// [BAD]: Go statement
//
// No fix is offered.
func badGoStmt(bar Bar) {
	go bar.Foo() // want `result of fixforget\.Bar\.Foo\(\) is neither awaited nor forgotten`
}

// [GOOD]: Already forgotten
func goodForgotten(bar Bar) {
	bar.Foo().Forget()
}
