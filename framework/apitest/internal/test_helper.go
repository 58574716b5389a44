// Package internal contains test helpers for apitest.
package internal

// RunAction calls action. It lives in a separate package so that stacktrace tests can see a
// frame that does not belong to apitest.
func RunAction(action func()) {
	action()
}
