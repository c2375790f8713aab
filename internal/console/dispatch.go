package console

import (
	"strings"

	"serialcmd/internal/parser"
	"serialcmd/pkg/cmdtypes"
)

// process splits a completed line into tokens and dispatches the command.
// The command name is matched case-insensitively against the table in order,
// so earlier entries win and duplicate names act as aliases.
func (c *Console) process(line []byte) cmdtypes.Status {
	args, status := parser.SplitTokens(line, c.delimiter)
	if status != cmdtypes.StatusOK {
		return status
	}
	if len(args) == 0 {
		// Delimiters only, nothing to match.
		return cmdtypes.StatusBadCommand
	}

	for _, entry := range c.table {
		if entry.Name == "" {
			break
		}
		if strings.EqualFold(args[0], entry.Name) {
			c.logger.Debug("dispatching", "command", entry.Name)
			return entry.Handler(args)
		}
	}

	if c.defaultHandler != nil {
		return c.defaultHandler(args)
	}
	return cmdtypes.StatusBadCommand
}

// ShowCommands writes the command table to the stream in table order, one
// command per line, with each entry's help text unless showHelp is false.
func (c *Console) ShowCommands(showHelp bool) {
	for _, entry := range c.table {
		if entry.Name == "" {
			break
		}
		if showHelp {
			c.writeLine(entry.Name + entry.Help)
		} else {
			c.writeLine(entry.Name)
		}
	}
}
