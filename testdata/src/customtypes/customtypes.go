// Package customtypes contains test fixtures for types given by flags.
package customtypes

import (
	"config/lib"
)

// [BAD]: Flagged task type
func badTask() {
	lib.Start() // want `result of lib\.Start\(\) is neither awaited nor forgotten`
}

// [BAD]: Flagged generic type
func badGeneric() {
	lib.Compute() // want `result of lib\.Compute\(\) is neither awaited nor forgotten`
}

// [BAD]: Flagged void type
func badVoid() {
	lib.Notify() // want `fire-and-forget lib\.Notify\(\) is neither awaited nor forgotten`
}

// [GOOD]: Configured discard method
func goodDiscarded() {
	lib.Start().Discard()
	lib.Compute().Discard()
}
