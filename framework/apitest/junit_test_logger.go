package apitest

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/toolshop-qa/api-test-harness/framework"
	"github.com/toolshop-qa/api-test-harness/framework/harness"
	o "github.com/toolshop-qa/api-test-harness/framework/opt"
)

// JUnitTestLogger collects results and writes them as a JUnit XML report when EndLog is called.
// There is one test suite per API area (the first element of each TestID), so a CI dashboard
// shows brands, products and users separately. Cleanup warnings, which never fail a test, go
// into each test case's system-err text.
type JUnitTestLogger struct {
	filePath    string
	serviceInfo harness.ServiceInfo
	filters     RegexFilters
	started     time.Time
	cases       []*junitCase // in the order the tests started
	byID        map[string]*junitCase
	lock        sync.Mutex
}

type junitCase struct {
	id       TestID
	start    time.Time
	elapsed  time.Duration
	failures []error
	warnings []error
	skipped  o.Maybe[string]
	optional o.Maybe[string]
	output   string
}

type junitReport struct {
	XMLName xml.Name     `xml:"testsuites"`
	Name    string       `xml:"name,attr"`
	Tests   int          `xml:"tests,attr"`
	Fails   int          `xml:"failures,attr"`
	Suites  []junitSuite `xml:"testsuite"`
}

type junitSuite struct {
	Name       string          `xml:"name,attr"`
	ID         string          `xml:"id,attr,omitempty"`
	Hostname   string          `xml:"hostname,attr,omitempty"`
	Timestamp  string          `xml:"timestamp,attr"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Skipped    int             `xml:"skipped,attr"`
	Time       string          `xml:"time,attr"`
	Properties []junitProperty `xml:"properties>property,omitempty"`
	Cases      []junitTestCase `xml:"testcase"`
}

type junitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type junitTestCase struct {
	Classname string        `xml:"classname,attr"`
	Name      string        `xml:"name,attr"`
	Time      string        `xml:"time,attr"`
	Skipped   *junitMessage `xml:"skipped,omitempty"`
	Failure   *junitFailure `xml:"failure,omitempty"`
	SystemErr string        `xml:"system-err,omitempty"`
}

type junitMessage struct {
	Message string `xml:"message,attr"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Details string `xml:",chardata"`
}

const (
	failureTypeContract    = "contract"
	failureTypeNonCritical = "non-critical"
)

// NewJUnitTestLogger creates a JUnitTestLogger that will write to filePath.
func NewJUnitTestLogger(
	filePath string,
	serviceInfo harness.ServiceInfo,
	filters RegexFilters,
) *JUnitTestLogger {
	return &JUnitTestLogger{
		filePath:    filePath,
		serviceInfo: serviceInfo,
		filters:     filters,
		started:     time.Now(),
		byID:        make(map[string]*junitCase),
	}
}

func (j *JUnitTestLogger) TestStarted(id TestID) {
	j.lock.Lock()
	defer j.lock.Unlock()
	c := &junitCase{id: id, start: time.Now()}
	j.cases = append(j.cases, c)
	j.byID[id.String()] = c
}

func (j *JUnitTestLogger) TestError(id TestID, err error) {
	j.update(id, func(c *junitCase) { c.failures = append(c.failures, err) })
}

func (j *JUnitTestLogger) TestFinished(id TestID, result TestResult, debugOutput framework.CapturedOutput) {
	j.update(id, func(c *junitCase) {
		c.elapsed = time.Since(c.start)
		c.warnings = result.CleanupErrors
		c.output = debugOutput.ToString("")
		if result.NonCritical {
			c.optional = o.Some(result.Explanation)
		}
	})
}

func (j *JUnitTestLogger) TestSkipped(id TestID, reason string) {
	j.update(id, func(c *junitCase) { c.skipped = o.Some(reason) })
}

func (j *JUnitTestLogger) update(id TestID, fn func(*junitCase)) {
	j.lock.Lock()
	defer j.lock.Unlock()
	if c := j.byID[id.String()]; c != nil {
		fn(c)
	}
}

// EndLog writes the report file.
func (j *JUnitTestLogger) EndLog(Results) error {
	data, err := j.render()
	if err != nil {
		return err
	}
	return os.WriteFile(j.filePath, data, 0644) //nolint:gosec
}

func (j *JUnitTestLogger) render() ([]byte, error) {
	j.lock.Lock()
	defer j.lock.Unlock()

	report := junitReport{Name: "Toolshop API contract tests"}
	suiteIndex := make(map[string]int)
	for _, c := range j.cases {
		if len(c.id) == 0 {
			continue
		}
		area := c.id[0]
		i, ok := suiteIndex[area]
		if !ok {
			i = len(report.Suites)
			suiteIndex[area] = i
			report.Suites = append(report.Suites, j.newSuite(area, c.start))
		}
		suite := &report.Suites[i]
		tc, failed := renderCase(c)
		suite.Cases = append(suite.Cases, tc)
		suite.Tests++
		if failed {
			suite.Failures++
		}
		if c.skipped.IsDefined() {
			suite.Skipped++
		}
	}
	for i := range report.Suites {
		suite := &report.Suites[i]
		var total time.Duration
		for _, c := range j.cases {
			if len(c.id) != 0 && c.id[0] == suite.Name {
				total += c.elapsed
			}
		}
		suite.Time = seconds(total)
		report.Tests += suite.Tests
		report.Fails += suite.Failures
	}

	data, err := xml.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(data, '\n')...), nil
}

func (j *JUnitTestLogger) newSuite(area string, start time.Time) junitSuite {
	suite := junitSuite{
		Name:      area,
		ID:        j.serviceInfo.RunID,
		Timestamp: start.UTC().Format(time.RFC3339),
		Properties: []junitProperty{
			{Name: "service.url", Value: j.serviceInfo.BaseURL},
			{Name: "run.id", Value: j.serviceInfo.RunID},
			{Name: "capabilities", Value: strings.Join(j.serviceInfo.Capabilities, ",")},
		},
	}
	if u, err := url.Parse(j.serviceInfo.BaseURL); err == nil {
		suite.Hostname = u.Host
	}
	if len(j.filters.Run) != 0 {
		suite.Properties = append(suite.Properties, junitProperty{Name: "filter.run", Value: j.filters.Run.String()})
	}
	if len(j.filters.Skip) != 0 {
		suite.Properties = append(suite.Properties, junitProperty{Name: "filter.skip", Value: j.filters.Skip.String()})
	}
	return suite
}

// renderCase converts one result. The second return value is true if the failure counts
// against the run; non-critical failures are reported but not counted.
func renderCase(c *junitCase) (junitTestCase, bool) {
	tc := junitTestCase{
		Classname: "toolshop." + c.id[0],
		Name:      caseName(c.id),
		Time:      seconds(c.elapsed),
	}
	if c.skipped.IsDefined() {
		tc.Skipped = &junitMessage{Message: c.skipped.Value()}
	}
	if len(c.warnings) != 0 {
		lines := make([]string, 0, len(c.warnings))
		for _, w := range c.warnings {
			lines = append(lines, "cleanup warning: "+w.Error())
		}
		tc.SystemErr = strings.Join(lines, "\n")
	}
	if len(c.failures) == 0 {
		return tc, false
	}

	var messages, details []string
	for _, err := range c.failures {
		messages = append(messages, err.Error())
		details = append(details, err.Error())
		if located, ok := err.(LocatedError); ok {
			for _, line := range located.Trace() {
				details = append(details, "    at "+line)
			}
		}
	}
	if c.output != "" {
		details = append(details, "", c.output)
	}
	tc.Failure = &junitFailure{
		Message: strings.Join(messages, "; "),
		Type:    failureTypeContract,
		Details: strings.Join(details, "\n"),
	}
	if c.optional.IsDefined() {
		tc.Failure.Type = failureTypeNonCritical
		tc.Failure.Message += fmt.Sprintf(" (non-critical: %s)", c.optional.Value())
		return tc, false
	}
	return tc, true
}

// caseName drops the area, which is already the suite name.
func caseName(id TestID) string {
	if len(id) == 1 {
		return id[0]
	}
	return id[1:].String()
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}
