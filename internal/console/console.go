// Package console implements the non-blocking line-oriented command
// interpreter. A Console incrementally assembles bytes from its stream into a
// command line, splits the line into tokens, resolves the command against an
// ordered table, and reports the handler's result code, all without ever
// blocking the caller's loop.
package console

import (
	"github.com/charmbracelet/log"

	"serialcmd/internal/logger"
	"serialcmd/pkg/cmdtypes"
)

// Console is one interpreter session bound to a byte stream and a command
// table. It owns the line buffer and must only be driven from a single
// goroutine; all waiting for input is expressed by Poll returning to the
// caller, never by blocking.
type Console struct {
	stream cmdtypes.ByteStream
	table  []cmdtypes.Entry

	echo         bool
	crlfEcho     bool
	crlfResponse bool
	delimiter    byte
	terminators  [cmdtypes.MaxTerminators]byte

	defaultHandler cmdtypes.Handler
	errorHandler   cmdtypes.ErrorHandler

	buf    [cmdtypes.BufSize]byte
	cursor int

	logger *log.Logger
}

// New creates a console session on the given stream with the given command
// table. The table is read-only and matched in order, first match wins.
// Defaults: echo on, CR/LF echo off, CR/LF response on, space delimiter,
// carriage return terminator.
func New(stream cmdtypes.ByteStream, table []cmdtypes.Entry) *Console {
	c := &Console{
		stream:       stream,
		table:        table,
		echo:         true,
		crlfEcho:     false,
		crlfResponse: true,
		delimiter:    cmdtypes.DefaultDelimiter,
		logger:       logger.NewStyledLogger("Console"),
	}
	c.SetTerminators(cmdtypes.DefaultTerminators)
	return c
}

// Echo enables or disables echo of incoming characters. CR and LF are not
// echoed unless CRLFEcho is also enabled.
func (c *Console) Echo(enable bool) {
	c.echo = enable
}

// CRLFEcho enables or disables echo of incoming CR and LF characters. It has
// no effect while Echo is disabled.
func (c *Console) CRLFEcho(enable bool) {
	c.crlfEcho = enable
}

// CRLFResponse enables or disables writing a line break to the stream before
// a completed line is processed.
func (c *Console) CRLFResponse(enable bool) {
	c.crlfResponse = enable
}

// SetDelimiter sets the token separator character. Default is a space.
func (c *Console) SetDelimiter(delimiter byte) {
	c.delimiter = delimiter
}

// SetTerminators sets the line terminator characters. At most
// cmdtypes.MaxTerminators characters are used; extra characters are ignored.
func (c *Console) SetTerminators(terminators string) {
	c.terminators = [cmdtypes.MaxTerminators]byte{}
	for i := 0; i < len(terminators) && i < cmdtypes.MaxTerminators; i++ {
		c.terminators[i] = terminators[i]
	}
}

// SetDefaultHandler registers the handler invoked for command names that
// match no table entry. A nil handler restores the built-in behavior of
// reporting a bad command.
func (c *Console) SetDefaultHandler(handler cmdtypes.Handler) {
	c.defaultHandler = handler
}

// SetErrorHandler registers a custom result handler. While set, it receives
// the raw result code of every completed line and fully supersedes the
// built-in reporter. A nil handler restores the built-in reporter.
func (c *Console) SetErrorHandler(handler cmdtypes.ErrorHandler) {
	c.errorHandler = handler
}

// Flush abandons any partially assembled line, resetting the buffer for the
// next one.
func (c *Console) Flush() {
	c.cursor = 0
}

func (c *Console) isTerminator(ch byte) bool {
	return (ch == c.terminators[0] || ch == c.terminators[1]) && ch != 0
}
