// Package ignore contains test fixtures for //taskforget:ignore directives.
package ignore

import (
	"github.com/mpyw/taskforget/task"
)

type Bar struct{}

func (Bar) Foo() task.Task { return nil }

func (Bar) Fire() task.Void { return nil }

// [GOOD]: Ignore on the previous line
func goodIgnorePreviousLine(bar Bar) {
	//taskforget:ignore
	bar.Foo()
}

// [GOOD]: Ignore on the same line
func goodIgnoreSameLine(bar Bar) {
	bar.Foo() //taskforget:ignore - result drained by the pool
}

// [GOOD]: Ignore a specific checker
func goodIgnoreSpecific(bar Bar) {
	//taskforget:ignore taskvoid
	bar.Fire()
}

// [BAD]: Ignore another checker
//
// The taskvoid directive does not cover the task checker.
func badIgnoreOtherChecker(bar Bar) {
	//taskforget:ignore taskvoid // want `unused taskforget:ignore directive for checker\(s\): taskvoid`
	bar.Foo() // want `result of ignore\.Bar\.Foo\(\) is neither awaited nor forgotten`
}

// [BAD]: Unused ignore
func badUnusedIgnore(bar Bar) {
	//taskforget:ignore // want `unused taskforget:ignore directive`
	bar.Foo().Forget()
}

// [BAD]: Unknown checker name
func badUnknownChecker(bar Bar) {
	//taskforget:ignore goroutine // want `unused taskforget:ignore directive for checker\(s\): goroutine`
	bar.Foo().Forget()
}
