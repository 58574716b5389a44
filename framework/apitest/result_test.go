package apitest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestIDString(t *testing.T) {
	assert.Equal(t, "", TestID{}.String())
	assert.Equal(t, "brands", TestID{"brands"}.String())
	assert.Equal(t, "brands/create/duplicate slug", TestID{"brands", "create", "duplicate slug"}.String())
}

func TestTestIDPlus(t *testing.T) {
	assert.Equal(t, TestID{"name 1"}, TestID{}.Plus("name 1"))
	assert.Equal(t, TestID{"name 1", "name 2"}, TestID{}.Plus("name 1").Plus("name 2"))

	// Calling Plus does not modify the original value
	id1 := TestID{"name 1"}
	id2a := id1.Plus("name 2a")
	id2b := id1.Plus("name 2b")
	assert.Equal(t, TestID{"name 1"}, id1)
	assert.Equal(t, TestID{"name 1", "name 2a"}, id2a)
	assert.Equal(t, TestID{"name 1", "name 2b"}, id2b)
}

func TestCleanupFailureDoesNotAffectOK(t *testing.T) {
	r := Results{CleanupFailures: []CleanupFailure{{TestID: TestID{"brands"}, Err: errors.New("delete failed")}}}
	assert.True(t, r.OK())
	assert.Equal(t, "[brands]: delete failed", r.CleanupFailures[0].Error())
}
