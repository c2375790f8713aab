// Package parser implements the token splitter and the parameter classifier
// for completed command lines.
package parser

import (
	"serialcmd/pkg/cmdtypes"
)

// ParseParam classifies a single argument token as a signed decimal number, a
// 0x-prefixed hexadecimal number, or a double-quoted string. Any token that
// matches none of those forms classifies as invalid; there is no partial
// parse of tokens like "3abc".
//
// Numeric accumulation is 32-bit with silent wraparound, so magnitudes beyond
// 2^31 fold over rather than error. Callers that need range safety must check
// the token themselves. Quoted strings are returned as-is in Text, quotes
// included and contents unparsed.
func ParseParam(param string) cmdtypes.ParamValue {
	// Leading whitespace is skipped; trailing whitespace is not, so a quoted
	// string must end the token exactly.
	for len(param) > 0 && isSpace(param[0]) {
		param = param[1:]
	}
	if len(param) == 0 {
		return cmdtypes.ParamValue{Kind: cmdtypes.ParamInvalid}
	}

	if param[0] == '"' {
		if param[len(param)-1] == '"' {
			return cmdtypes.ParamValue{Kind: cmdtypes.ParamString, Text: param}
		}
		return cmdtypes.ParamValue{Kind: cmdtypes.ParamInvalid}
	}

	if len(param) >= 2 && param[0] == '0' && (param[1] == 'x' || param[1] == 'X') {
		var val int32
		for i := 2; i < len(param); i++ {
			d, ok := hexDigit(param[i])
			if !ok {
				return cmdtypes.ParamValue{Kind: cmdtypes.ParamInvalid}
			}
			val = val*16 + int32(d)
		}
		return cmdtypes.ParamValue{Kind: cmdtypes.ParamHex, Number: val}
	}

	neg := false
	if param[0] == '-' {
		neg = true
		param = param[1:]
	}
	var val int32
	for i := 0; i < len(param); i++ {
		ch := param[i]
		if ch < '0' || ch > '9' {
			return cmdtypes.ParamValue{Kind: cmdtypes.ParamInvalid}
		}
		val = val*10 + int32(ch-'0')
	}
	if neg {
		val = -val
	}
	return cmdtypes.ParamValue{Kind: cmdtypes.ParamDecimal, Number: val}
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func hexDigit(ch byte) (byte, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	}
	return 0, false
}
