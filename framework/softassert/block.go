package softassert

import (
	"github.com/toolshop-qa/api-test-harness/framework/helpers"
)

// Assertions collects the results of the checks made in one block.
type Assertions struct {
	name    string
	results []Result
}

// New creates a standalone block. Use Err to find out whether any check failed.
func New(name string) *Assertions {
	return &Assertions{name: name}
}

// Run evaluates a soft assertion block against a test scope.
//
// If any check failed, t.Errorf is called exactly once with an AggregateError and then
// t.FailNow is called. If the block panics, the failures collected so far are still reported
// and the panic continues.
func Run(t helpers.TestContext, name string, block func(a *Assertions)) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	a := New(name)
	defer func() {
		r := recover()
		if err := a.Err(); err != nil {
			t.Errorf("%s", err)
			if r == nil {
				t.FailNow()
			}
		}
		if r != nil {
			panic(r)
		}
	}()
	block(a)
}

// Name returns the name given to the block.
func (a *Assertions) Name() string { return a.name }

// Results returns every check made so far, including passes, in evaluation order.
func (a *Assertions) Results() []Result {
	return append([]Result(nil), a.results...)
}

// Failed returns true if any check has failed.
func (a *Assertions) Failed() bool {
	for _, r := range a.results {
		if !r.Passed {
			return true
		}
	}
	return false
}

// Err returns nil if every check passed, or else an AggregateError.
func (a *Assertions) Err() error {
	var failures []Result
	for _, r := range a.results {
		if !r.Passed {
			failures = append(failures, r)
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return AggregateError{Block: a.name, Total: len(a.results), Failures: failures}
}

// Record adds the outcome of a check that was evaluated elsewhere.
func (a *Assertions) Record(description string, passed bool, detail string) bool {
	r := Result{Description: description, Passed: passed}
	if !passed {
		r.Detail = detail
	}
	a.results = append(a.results, r)
	return passed
}
