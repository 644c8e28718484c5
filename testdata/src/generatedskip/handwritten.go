package generatedskip

// [BAD]: Call in a handwritten file
func badHandwrittenCaller() {
	Start() // want `result of generatedskip\.Start\(\) is neither awaited nor forgotten`
}
