package cmdtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The reserved codes and classifier kinds are part of the wire-level contract
// between handlers and the interpreter; their numeric values must not drift.
func TestReservedStatusValues(t *testing.T) {
	assert.Equal(t, Status(0), StatusOK)
	assert.Equal(t, Status(-1), StatusBadCommand)
	assert.Equal(t, Status(-2), StatusTooManyArgs)
	assert.Equal(t, Status(-3), StatusTooFewArgs)
	assert.Equal(t, Status(-4), StatusInvalidArg)
}

func TestParamKindValues(t *testing.T) {
	assert.Equal(t, ParamKind(-1), ParamInvalid)
	assert.Equal(t, ParamKind(1), ParamDecimal)
	assert.Equal(t, ParamKind(2), ParamHex)
	assert.Equal(t, ParamKind(3), ParamString)
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, 80, BufSize)
	assert.Equal(t, 10, MaxArgs)
	assert.Equal(t, byte(' '), byte(DefaultDelimiter))
	assert.Equal(t, "\r", DefaultTerminators)
}
