package apitest

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter decides whether a test is run.
type Filter interface {
	Match(TestID) bool
}

// FilterFunc adapts a function to the Filter interface.
type FilterFunc func(TestID) bool

func (f FilterFunc) Match(id TestID) bool { return f(id) }

// RegexFilters holds the -run and -skip patterns. A test runs if it matches some Run pattern
// (or there are none) and no Skip pattern. Parents of a selected test always run, since
// otherwise the selected test would never be reached.
type RegexFilters struct {
	Run  PatternList
	Skip PatternList
}

func (r RegexFilters) Match(id TestID) bool {
	if len(r.Run) != 0 && !r.Run.selects(id) {
		return false
	}
	return !r.Skip.excludes(id)
}

// IsDefined returns true if there is at least one pattern.
func (r RegexFilters) IsDefined() bool {
	return len(r.Run) != 0 || len(r.Skip) != 0
}

// Pattern is one -run or -skip value, such as "brands/create". Each "/"-separated level is
// an unanchored regex matched against the same level of a TestID.
type Pattern struct {
	source string
	levels []*regexp.Regexp
}

// ParsePattern compiles a pattern, reporting which level is not a valid regex.
func ParsePattern(s string) (Pattern, error) {
	p := Pattern{source: s}
	for i, level := range strings.Split(s, "/") {
		rx, err := regexp.Compile(level)
		if err != nil {
			return Pattern{}, fmt.Errorf("level %d of pattern %q: %w", i+1, s, err)
		}
		p.levels = append(p.levels, rx)
	}
	return p, nil
}

func (p Pattern) String() string { return p.source }

// matchesPrefix is true if every level the pattern and id have in common matches.
func (p Pattern) matchesPrefix(id TestID) bool {
	for i, rx := range p.levels {
		if i == len(id) {
			break
		}
		if !rx.MatchString(id[i]) {
			return false
		}
	}
	return true
}

// PatternList collects the values of a repeated flag. It implements flag.Value.
type PatternList []Pattern

// selects is used for -run: a test shorter than the pattern is selected if it could be the
// parent of a matching test.
func (l PatternList) selects(id TestID) bool {
	for _, p := range l {
		if p.matchesPrefix(id) {
			return true
		}
	}
	return false
}

// excludes is used for -skip: the id must reach at least as deep as the pattern, and then its
// children are skipped too.
func (l PatternList) excludes(id TestID) bool {
	for _, p := range l {
		if len(id) >= len(p.levels) && p.matchesPrefix(id) {
			return true
		}
	}
	return false
}

func (l PatternList) String() string {
	quoted := make([]string, len(l))
	for i, p := range l {
		quoted[i] = fmt.Sprintf("%q", p.source)
	}
	return strings.Join(quoted, " or ")
}

// Set adds a pattern; the flag package calls it once per occurrence.
func (l *PatternList) Set(value string) error {
	p, err := ParsePattern(value)
	if err != nil {
		return err
	}
	*l = append(*l, p)
	return nil
}

// DescribeFilters returns the lines printed at startup to explain which tests will be skipped,
// either because of -run/-skip or because the configuration lacks a capability.
func DescribeFilters(filters RegexFilters, allCapabilities []string, availableCapabilities []string) []string {
	var lines []string
	if filters.IsDefined() {
		lines = append(lines, "Some tests will be skipped based on the filter criteria for this test run:")
		if len(filters.Run) != 0 {
			lines = append(lines, fmt.Sprintf("  skip any not matching %s", filters.Run))
		}
		if len(filters.Skip) != 0 {
			lines = append(lines, fmt.Sprintf("  skip any matching %s", filters.Skip))
		}
	}

	available := make(map[string]bool)
	for _, c := range availableCapabilities {
		available[c] = true
	}
	var missing []string
	for _, c := range allCapabilities {
		if !available[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		lines = append(lines,
			"Some tests will be skipped because the configuration does not provide:",
			"  "+strings.Join(missing, ", "))
	}
	return lines
}
