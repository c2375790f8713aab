package parser

import (
	"strings"
	"testing"

	"serialcmd/pkg/cmdtypes"

	"github.com/stretchr/testify/assert"
)

func TestSplitTokens(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		delimiter byte
		expected  []string
	}{
		{
			name:      "command with two arguments",
			line:      "led on 500",
			delimiter: ' ',
			expected:  []string{"led", "on", "500"},
		},
		{
			name:      "single token",
			line:      "help",
			delimiter: ' ',
			expected:  []string{"help"},
		},
		{
			name:      "consecutive delimiters collapse",
			line:      "led   on",
			delimiter: ' ',
			expected:  []string{"led", "on"},
		},
		{
			name:      "leading and trailing delimiters",
			line:      "  led on  ",
			delimiter: ' ',
			expected:  []string{"led", "on"},
		},
		{
			name:      "empty line yields no tokens",
			line:      "",
			delimiter: ' ',
			expected:  nil,
		},
		{
			name:      "delimiters only yield no tokens",
			line:      "    ",
			delimiter: ' ',
			expected:  nil,
		},
		{
			name:      "comma delimiter keeps spaces inside tokens",
			line:      "set,name with spaces,2",
			delimiter: ',',
			expected:  []string{"set", "name with spaces", "2"},
		},
		{
			name:      "quotes are not honored",
			line:      `say "two words"`,
			delimiter: ' ',
			expected:  []string{"say", `"two`, `words"`},
		},
		{
			name:      "exactly max tokens accepted",
			line:      "cmd a1 a2 a3 a4 a5 a6 a7 a8 a9",
			delimiter: ' ',
			expected:  []string{"cmd", "a1", "a2", "a3", "a4", "a5", "a6", "a7", "a8", "a9"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, status := SplitTokens([]byte(tt.line), tt.delimiter)

			assert.Equal(t, cmdtypes.StatusOK, status)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestSplitTokens_TooManyArgs(t *testing.T) {
	line := "cmd " + strings.Repeat("x ", cmdtypes.MaxArgs)

	tokens, status := SplitTokens([]byte(line), ' ')

	assert.Equal(t, cmdtypes.StatusTooManyArgs, status)
	assert.Nil(t, tokens)
}

func TestSplitTokens_Deterministic(t *testing.T) {
	line := []byte("led on 500")

	first, status := SplitTokens(line, ' ')
	assert.Equal(t, cmdtypes.StatusOK, status)

	second, status := SplitTokens(line, ' ')
	assert.Equal(t, cmdtypes.StatusOK, status)
	assert.Equal(t, first, second)
}
