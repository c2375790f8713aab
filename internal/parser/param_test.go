package parser

import (
	"testing"

	"serialcmd/pkg/cmdtypes"

	"github.com/stretchr/testify/assert"
)

func TestParseParam_Decimal(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		expected int32
	}{
		{name: "single digit", param: "7", expected: 7},
		{name: "multi digit", param: "1234", expected: 1234},
		{name: "zero", param: "0", expected: 0},
		{name: "negative", param: "-42", expected: -42},
		{name: "leading whitespace skipped", param: "  \t99", expected: 99},
		{name: "lone minus accumulates to zero", param: "-", expected: 0},
		{name: "int32 max", param: "2147483647", expected: 2147483647},
		{name: "wraparound past int32 max", param: "2147483648", expected: -2147483648},
		{name: "wraparound at 2^32", param: "4294967296", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val := ParseParam(tt.param)

			assert.Equal(t, cmdtypes.ParamDecimal, val.Kind)
			assert.Equal(t, tt.expected, val.Number)
		})
	}
}

func TestParseParam_Hex(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		expected int32
	}{
		{name: "lowercase digits", param: "0x12ab", expected: 0x12ab},
		{name: "mixed case digits", param: "0x1A2b", expected: 6699},
		{name: "uppercase prefix", param: "0XFF", expected: 255},
		{name: "bare prefix accumulates to zero", param: "0x", expected: 0},
		{name: "all ones wraps negative", param: "0xFFFFFFFF", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val := ParseParam(tt.param)

			assert.Equal(t, cmdtypes.ParamHex, val.Kind)
			assert.Equal(t, tt.expected, val.Number)
		})
	}
}

func TestParseParam_QuotedString(t *testing.T) {
	tests := []struct {
		name  string
		param string
		text  string
	}{
		{name: "simple string", param: `"abc"`, text: `"abc"`},
		{name: "empty string", param: `""`, text: `""`},
		{name: "leading whitespace skipped", param: ` "abc"`, text: `"abc"`},
		{name: "lone quote is first and last char", param: `"`, text: `"`},
		{name: "contents kept unparsed", param: `"0x12"`, text: `"0x12"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val := ParseParam(tt.param)

			assert.Equal(t, cmdtypes.ParamString, val.Kind)
			assert.Equal(t, tt.text, val.Text)
		})
	}
}

func TestParseParam_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		param string
	}{
		{name: "empty token", param: ""},
		{name: "whitespace only", param: "   "},
		{name: "unterminated quote", param: `"abc`},
		{name: "trailing junk after digits", param: "3abc"},
		{name: "letters", param: "abc"},
		{name: "leading plus not supported", param: "+5"},
		{name: "minus followed by letters", param: "-x"},
		{name: "hex with bad digit", param: "0x12g4"},
		{name: "quoted with trailing character", param: `"abc"x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val := ParseParam(tt.param)

			assert.Equal(t, cmdtypes.ParamInvalid, val.Kind)
		})
	}
}
