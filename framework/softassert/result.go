package softassert

import (
	"fmt"
	"strings"
)

// Result is the outcome of one check.
type Result struct {
	Description string
	Passed      bool
	// Detail describes the expected and actual values. It is only set for failed checks.
	Detail string
}

// AggregateError lists the failed checks of one soft assertion block, in the order in which
// they were evaluated.
type AggregateError struct {
	Block    string
	Total    int
	Failures []Result
}

func (e AggregateError) Error() string {
	var b strings.Builder
	if e.Block == "" {
		fmt.Fprintf(&b, "%d of %d checks failed:", len(e.Failures), e.Total)
	} else {
		fmt.Fprintf(&b, "%s: %d of %d checks failed:", e.Block, len(e.Failures), e.Total)
	}
	for i, f := range e.Failures {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, f.Description)
		if f.Detail != "" {
			for _, line := range strings.Split(f.Detail, "\n") {
				b.WriteString("\n     ")
				b.WriteString(line)
			}
		}
	}
	return b.String()
}

// Descriptions returns the description of each failed check.
func (e AggregateError) Descriptions() []string {
	ret := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		ret = append(ret, f.Description)
	}
	return ret
}
