package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTestifyTrace(t *testing.T) {
	message := "\n\tError Trace:\tbrands.go:40\n\tError:      \tNot equal: \n\t            \texpected: 422\n\t            \tactual  : 201"
	assert.Equal(t, "Not equal: \n\t            \texpected: 422\n\t            \tactual  : 201", StripTestifyTrace(message))
	assert.Equal(t, "plain message", StripTestifyTrace("plain message"))
}

func TestStripTestifyTraceFromRecordedAssertion(t *testing.T) {
	var tr TestRecorder
	assert.Contains(&tr, "Claw Hammer", "Saw")
	if assert.Len(t, tr.Errors, 1) {
		assert.Equal(t, `"Claw Hammer" does not contain "Saw"`, StripTestifyTrace(tr.Errors[0]))
	}
}
