// Package tasks contains test fixtures for the task checker.
// This file covers advanced patterns - func values, generics, go/defer statements.
package tasks

import (
	"github.com/mpyw/taskforget/task"
)

type Runner func() task.Task

type Service struct {
	start Runner
}

func identity[T any](v T) T { return v }

func wrap[T any](f task.Future[T]) task.Future[T] { return f }

// ===== SHOULD REPORT =====

// [BAD]: Func value
//
// Calls through variables of func type are resolved by their signature.
func badFuncValue(fn func() task.Task) {
	fn() // want `result of fn\(\) is neither awaited nor forgotten`
}

// [BAD]: Named func type
//
// Named func types are resolved through their underlying signature.
func badNamedFuncType(r Runner) {
	r() // want `result of r\(\) is neither awaited nor forgotten`
}

// [BAD]: Struct field of func type
//
// Field selectors are displayed as written.
func badFieldFunc(s Service) {
	s.start() // want `result of s\.start\(\) is neither awaited nor forgotten`
}

// [BAD]: Immediately invoked literal
//
// Function literals returning a task are checked by their signature.
func badFuncLit() {
	func() task.Task { return nil }() // want `is neither awaited nor forgotten`
}

// [BAD]: Generic wrapper
//
// Generic functions returning a generic task are matched through the expression type.
func badGenericWrapper(f task.Future[string]) {
	wrap(f) // want `result of tasks\.wrap\(\) is neither awaited nor forgotten`
}

// [BAD]: Generic map
//
// Then produces a generic task of another type argument.
func badThen(f task.Future[int]) {
	task.Then(f, func(v int) (string, error) { return "", nil }) // want `result of task\.Then\(\) is neither awaited nor forgotten`
}

// [BAD]: Go statement
//
// The result is dropped by the go statement. No fix is offered.
func badGoStmt(bar Bar) {
	go bar.Foo() // want `result of tasks\.Bar\.Foo\(\) is neither awaited nor forgotten`
}

// [BAD]: Defer statement
//
// The result is dropped by the defer statement. No fix is offered.
func badDeferStmt(bar Bar) {
	defer bar.Foo() // want `result of tasks\.Bar\.Foo\(\) is neither awaited nor forgotten`
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: Func value forgotten
//
// Forget works on any task-typed chain.
func goodFuncValueForgotten(fn func() task.Task) {
	fn().Forget()
}

// [GOOD]: Conversion
//
// Conversions are not calls.
func goodConversion(ch chan error) {
	_ = task.Task(ch)
}

// [LIMITATION]: Type parameter result
//
// The non-generic rule looks at the declared result of the callee, which is
// the type parameter T. The generic rule looks at the expression type, so
// the two instantiations below disagree.
func limitationTypeParamResult(bar Bar) {
	identity(bar.Foo())  // not reported: declared result is T
	identity(bar.Foo3()) // want `result of tasks\.identity\(\) is neither awaited nor forgotten`
}

// [LIMITATION]: Returned without awaiting
//
// Returning hands the result to the caller, which is not checked further.
// A caller that drops it is reported at its own call site.
func limitationReturned(bar Bar) task.Task {
	return bar.Foo() // not reported: returned
}

// [LIMITATION]: Plain assignment
//
// Any assignment counts as handled, even when the variable is overwritten
// before it is awaited.
func limitationReassigned(bar Bar) {
	t := bar.Foo().ContinueWith(nil)
	t = bar.Foo() // not reported: assigned
	<-t
}
