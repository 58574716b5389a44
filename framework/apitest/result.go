package apitest

import (
	"fmt"
	"strings"
)

// Results is the outcome of a test run.
type Results struct {
	Tests               []TestResult
	Failures            []TestResult
	NonCriticalFailures []TestResult

	// CleanupFailures lists releases that returned an error. They are warnings: they do not
	// affect OK().
	CleanupFailures []CleanupFailure
}

type TestResult struct {
	TestID        TestID
	Errors        []error
	CleanupErrors []error
	NonCritical   bool
	Explanation   string
}

// CleanupFailure is a resource release that failed at the end of a test scope.
type CleanupFailure struct {
	TestID TestID
	Err    error
}

func (c CleanupFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", c.TestID, c.Err)
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

type TestID []string

func (t TestID) String() string {
	return strings.Join(t, "/")
}

func (t TestID) Plus(name string) TestID {
	return append(append(TestID(nil), t...), name)
}
