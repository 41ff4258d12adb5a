package facemesh

import "gocv.io/x/gocv"

// cvErr runs f and returns the OpenCV exception it raised, if any.
// gocv records C++ exceptions instead of returning them, and a failed
// constructor yields a handle that must not be used.
func cvErr(f func()) error {
	gocv.ClearLastException()
	f()
	return gocv.LastExceptionError()
}
