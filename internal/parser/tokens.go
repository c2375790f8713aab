package parser

import (
	"serialcmd/pkg/cmdtypes"
)

// SplitTokens splits a completed line into tokens on the given delimiter
// character. Each maximal run of non-delimiter bytes becomes one token, so
// consecutive delimiters never produce empty tokens. Quoting is not honored:
// a delimiter inside double quotes still splits the token, and callers that
// need the full quoted text must reassemble it themselves.
//
// At most cmdtypes.MaxArgs tokens are accepted, command name included. If one
// more token starts while scanning, splitting aborts and StatusTooManyArgs is
// returned with a nil token slice.
func SplitTokens(line []byte, delimiter byte) ([]string, cmdtypes.Status) {
	var tokens []string
	start := -1

	for i := 0; i <= len(line); i++ {
		if i == len(line) || line[i] == delimiter {
			if start >= 0 {
				tokens = append(tokens, string(line[start:i]))
				start = -1
			}
			continue
		}
		if start < 0 {
			if len(tokens) == cmdtypes.MaxArgs {
				return nil, cmdtypes.StatusTooManyArgs
			}
			start = i
		}
	}

	return tokens, cmdtypes.StatusOK
}
