package helpers

import (
	"errors"
	"fmt"
	"strings"
)

// TestContext is the subset of *testing.T and *apitest.T that reports failures. Code that only
// needs to fail a test accepts this instead of either concrete type.
type TestContext interface {
	Errorf(msgFormat string, msgArgs ...interface{})
	FailNow()
}

// TestRecorder is a TestContext that only records what happened. It is used to run a check
// without failing the enclosing test, and to verify failure output in unit tests.
type TestRecorder struct {
	Errors     []string
	Terminated bool

	// PanicOnTerminate makes FailNow panic with the recorder itself, so that code after the
	// FailNow call is not executed. Callers are expected to recover it.
	PanicOnTerminate bool
}

func (t *TestRecorder) Errorf(msgFormat string, msgArgs ...interface{}) {
	t.Errors = append(t.Errors, fmt.Sprintf(msgFormat, msgArgs...))
}

func (t *TestRecorder) FailNow() {
	t.Terminated = true
	if t.PanicOnTerminate {
		panic(t)
	}
}

// Failed returns true if anything was recorded.
func (t *TestRecorder) Failed() bool { return len(t.Errors) != 0 || t.Terminated }

// Err returns nil if no errors were recorded, or else an error combining all messages.
func (t *TestRecorder) Err() error {
	if len(t.Errors) == 0 {
		return nil
	}
	return errors.New(strings.Join(t.Errors, ", "))
}
