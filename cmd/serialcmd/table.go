package main

import (
	"fmt"
	"io"

	"serialcmd/internal/console"
	"serialcmd/internal/parser"
	"serialcmd/pkg/cmdtypes"
)

// demoSession bundles the demo command table's shared state. Handlers are
// closures over the session, so each connection gets its own LED and quit
// flag.
type demoSession struct {
	out      io.Writer
	console  *console.Console
	ledOn    bool
	quitting bool
}

// buildTable assembles the demo command table. The console reference is wired
// in afterwards because the help handler needs the console that owns the
// table.
func (d *demoSession) buildTable() []cmdtypes.Entry {
	return []cmdtypes.Entry{
		{Name: "help", Handler: d.helpCmd, Help: " : show this list of commands"},
		{Name: "?", Handler: d.helpCmd, Help: " : show this list of commands"},
		{Name: "led", Handler: d.ledCmd, Help: " <on|off> : control the demo LED"},
		{Name: "add", Handler: d.addCmd, Help: " <a> <b> : add two numbers (decimal or 0x hex)"},
		{Name: "parse", Handler: d.parseCmd, Help: " <token> : classify a parameter token"},
		{Name: "cls", Handler: d.clsCmd, Help: " : clear the screen"},
		{Name: "ver", Handler: d.verCmd, Help: " : show version"},
		{Name: "exit", Handler: d.exitCmd, Help: " : close the session"},
	}
}

func (d *demoSession) helpCmd([]string) cmdtypes.Status {
	d.console.ShowCommands(true)
	return cmdtypes.StatusOK
}

func (d *demoSession) ledCmd(args []string) cmdtypes.Status {
	if len(args) < 2 {
		return cmdtypes.StatusTooFewArgs
	}
	switch args[1] {
	case "on":
		d.ledOn = true
	case "off":
		d.ledOn = false
	default:
		return cmdtypes.StatusInvalidArg
	}
	fmt.Fprintf(d.out, "LED is %s\r\n", args[1])
	return cmdtypes.StatusOK
}

func (d *demoSession) addCmd(args []string) cmdtypes.Status {
	if len(args) < 3 {
		return cmdtypes.StatusTooFewArgs
	}
	var sum int32
	for _, arg := range args[1:3] {
		val := parser.ParseParam(arg)
		if val.Kind != cmdtypes.ParamDecimal && val.Kind != cmdtypes.ParamHex {
			return cmdtypes.StatusInvalidArg
		}
		sum += val.Number
	}
	fmt.Fprintf(d.out, "%d\r\n", sum)
	return cmdtypes.StatusOK
}

func (d *demoSession) parseCmd(args []string) cmdtypes.Status {
	if len(args) < 2 {
		return cmdtypes.StatusTooFewArgs
	}
	val := parser.ParseParam(args[1])
	switch val.Kind {
	case cmdtypes.ParamDecimal:
		fmt.Fprintf(d.out, "decimal: %d\r\n", val.Number)
	case cmdtypes.ParamHex:
		fmt.Fprintf(d.out, "hex: 0x%X\r\n", uint32(val.Number))
	case cmdtypes.ParamString:
		fmt.Fprintf(d.out, "string: %s\r\n", val.Text)
	default:
		return cmdtypes.StatusInvalidArg
	}
	return cmdtypes.StatusOK
}

func (d *demoSession) clsCmd([]string) cmdtypes.Status {
	fmt.Fprint(d.out, cmdtypes.ClearScreen)
	return cmdtypes.StatusOK
}

func (d *demoSession) verCmd([]string) cmdtypes.Status {
	fmt.Fprintf(d.out, "serialcmd v%s\r\n", version)
	return cmdtypes.StatusOK
}

func (d *demoSession) exitCmd([]string) cmdtypes.Status {
	d.quitting = true
	return cmdtypes.StatusOK
}
