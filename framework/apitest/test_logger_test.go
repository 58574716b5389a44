package apitest

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"

	"github.com/toolshop-qa/api-test-harness/framework"

	"github.com/stretchr/testify/assert"
)

type recordingTestLogger struct {
	events []string
}

func (r *recordingTestLogger) TestStarted(id TestID) { r.events = append(r.events, "start "+id.String()) }
func (r *recordingTestLogger) TestError(id TestID, err error) {
	r.events = append(r.events, "error "+id.String()+": "+err.Error())
}
func (r *recordingTestLogger) TestFinished(id TestID, _ TestResult, _ framework.CapturedOutput) {
	r.events = append(r.events, "finish "+id.String())
}
func (r *recordingTestLogger) TestSkipped(id TestID, reason string) {
	r.events = append(r.events, "skip "+id.String()+": "+reason)
}

func (r *recordingTestLogger) EndLog(Results) error {
	r.events = append(r.events, "end")
	return nil
}

func TestMultiTestLoggerForwardsToAll(t *testing.T) {
	var l1, l2 recordingTestLogger
	_ = Run(TestConfiguration{TestLogger: MultiTestLogger{Loggers: []TestLogger{&l1, &l2}}}, func(at *T) {
		at.Run("a", func(at *T) { at.Errorf("bad") })
		at.Run("b", func(at *T) { at.SkipWithReason("later") })
	})
	multi := MultiTestLogger{Loggers: []TestLogger{&l1, &l2}}
	assert.NoError(t, multi.EndLog(Results{}))
	expected := []string{"start a", "error a: bad", "finish a", "start b", "skip b: later", "end"}
	assert.Equal(t, expected, l1.events)
	assert.Equal(t, expected, l2.events)
}

func TestWriteResults(t *testing.T) {
	color.NoColor = true

	t.Run("all passed with cleanup warning", func(t *testing.T) {
		var out, errOut bytes.Buffer
		WriteResults(&out, &errOut, Results{
			Tests:           []TestResult{{TestID: TestID{"a"}}},
			CleanupFailures: []CleanupFailure{{TestID: TestID{"a"}, Err: errors.New("delete brand 7: status 500")}},
		})
		assert.Equal(t, "CLEANUP WARNINGS (1):\n  * [a]: delete brand 7: status 500\nAll tests passed (1)\n", out.String())
		assert.Equal(t, "", errOut.String())
	})

	t.Run("failures", func(t *testing.T) {
		var out, errOut bytes.Buffer
		failed := TestResult{TestID: TestID{"brands", "create"}}
		WriteResults(&out, &errOut, Results{Tests: []TestResult{failed}, Failures: []TestResult{failed}})
		assert.Equal(t, "", out.String())
		assert.Equal(t, "FAILED TESTS (1):\n  * brands/create\n", errOut.String())
	})
}
