package console

import (
	"fmt"

	"serialcmd/pkg/cmdtypes"
)

// report hands the result code of a completed line to the registered custom
// handler, or to the built-in reporter when none is set. The built-in
// reporter prints a fixed message for each reserved code, a generic message
// for any other non-zero code, and nothing for success.
func (c *Console) report(status cmdtypes.Status) {
	if c.errorHandler != nil {
		c.errorHandler(status)
		return
	}

	switch status {
	case cmdtypes.StatusOK:
	case cmdtypes.StatusBadCommand:
		c.writeLine("Bad command!")
	case cmdtypes.StatusTooManyArgs:
		c.writeLine("Too many arguments for command processor!")
	case cmdtypes.StatusTooFewArgs:
		c.writeLine("Not enough arguments for command processor!")
	case cmdtypes.StatusInvalidArg:
		c.writeLine("Invalid argument for command processor!")
	default:
		c.writeLine(fmt.Sprintf("Command returned error code: %d", status))
	}
}
