// Package fixawait contains test fixtures for the await suggested fix.
package fixawait

import (
	"github.com/mpyw/taskforget/task"
)

type Bar struct{}

func (Bar) Foo() task.Task { return nil }

func (Bar) Foo3() task.Future[int] { return nil }

func (Bar) Fire() task.Void { return nil }

// [BAD]: Bare call
func badBareCall(bar Bar) {
	bar.Foo() // want `result of fixawait\.Bar\.Foo\(\) is neither awaited nor forgotten`
}

// [BAD]: Fire-and-forget
//
// The receive operator waits for completion.
func badVoid(bar Bar) {
	bar.Fire() // want `fire-and-forget fixawait\.Bar\.Fire\(\) is neither awaited nor forgotten`
}

// [BAD]: Fluent chain
//
// The receive operator applies to the whole chain.
func badFluentChain(bar Bar) {
	bar.Foo3().AsTask().ContinueWith(nil) // want `result of task\.Task\.ContinueWith\(\) is neither awaited nor forgotten`
}

// [BAD]: Leading comment
//
// Comments before the call are kept in place.
func badLeadingComment(bar Bar) {
	/* start */ bar.Foo() // want `result of fixawait\.Bar\.Foo\(\) is neither awaited nor forgotten`
}

// [BAD]: Defer statement
//
// No fix is offered.
func badDeferStmt(bar Bar) {
	defer bar.Foo() // want `result of fixawait\.Bar\.Foo\(\) is neither awaited nor forgotten`
}
