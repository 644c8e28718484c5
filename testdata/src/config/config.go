// Package config contains test fixtures for the TOML configuration file.
package config

import (
	"config/lib"
)

// ===== SHOULD REPORT =====

// [BAD]: Configured task type
func badConfiguredTask() {
	lib.Start() // want `lib\.Start\(\) returned a job that is never awaited or discarded`
}

// [BAD]: Configured generic type
func badConfiguredGeneric() {
	lib.Compute() // want `lib\.Compute\(\) returned a job that is never awaited or discarded`
}

// [BAD]: Configured void type
func badConfiguredVoid() {
	lib.Notify() // want `lib\.Notify\(\) fires and forgets`
}

// ===== SHOULD NOT REPORT =====

// [GOOD]: Configured discard method
func goodDiscarded() {
	lib.Start().Discard()
	lib.Compute().Discard()
}

// [GOOD]: Bound
func goodBound() {
	_ = lib.Start()
}
