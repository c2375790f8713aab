// Package cmdtypes defines the shared types for the serialcmd command interpreter:
// result codes, handler signatures, command table entries, parameter classification
// results, and the byte stream contract a console session runs on.
package cmdtypes

import "io"

// Status is the signed result code of a dispatched command. Zero means success.
// The reserved negative codes below are produced by the interpreter itself or
// returned by handlers; any other non-zero value is an application-defined code
// and is passed through to the result reporter unchanged.
type Status int8

const (
	// StatusOK indicates the command executed successfully.
	StatusOK Status = 0
	// StatusBadCommand indicates the command name matched no table entry.
	StatusBadCommand Status = -1
	// StatusTooManyArgs indicates the line held more tokens than MaxArgs.
	StatusTooManyArgs Status = -2
	// StatusTooFewArgs is returned by handlers whose minimum-argument policy
	// was violated. The interpreter never raises this code itself.
	StatusTooFewArgs Status = -3
	// StatusInvalidArg is returned by handlers when a parameter fails
	// classification or is out of range for the command.
	StatusInvalidArg Status = -4
)

const (
	// BufSize is the line buffer capacity in bytes. At most BufSize-1
	// characters accumulate into one line; further input is dropped until a
	// terminator or backspace arrives.
	BufSize = 80
	// MaxArgs is the maximum number of tokens per line, command name included.
	MaxArgs = 10
	// MaxTerminators is the maximum number of configurable line terminator
	// characters.
	MaxTerminators = 2
	// CharBS is the backspace control code that erases the previous character.
	CharBS = 0x08
)

const (
	// DefaultDelimiter separates tokens within a line.
	DefaultDelimiter = ' '
	// DefaultTerminators ends line assembly. Carriage return only; bare line
	// feeds are treated as filler.
	DefaultTerminators = "\r"
)

// ClearScreen is the ANSI escape sequence that clears the terminal.
const ClearScreen = "\033[2J"

// Handler executes one command. It receives the token views for the completed
// line, command name in args[0], and returns a signed result code.
type Handler func(args []string) Status

// ErrorHandler receives the raw result code of every completed line. When one
// is registered it fully supersedes the built-in result reporter.
type ErrorHandler func(status Status)

// Entry is one row of a command table: a command name, the handler invoked for
// it, and a help line shown by the help display. Tables are ordered and
// matched first to last, so duplicate names act as intentional aliases. An
// entry with an empty Name terminates iteration early, which lets tables
// carry trailing sentinel filler.
type Entry struct {
	Name    string
	Handler Handler
	Help    string
}

// ParamKind classifies a single argument token.
type ParamKind int8

const (
	// ParamInvalid marks a token that is not a well-formed decimal number,
	// hex number, or quoted string.
	ParamInvalid ParamKind = -1
	// ParamDecimal marks a signed decimal number token.
	ParamDecimal ParamKind = 1
	// ParamHex marks a 0x-prefixed hexadecimal number token.
	ParamHex ParamKind = 2
	// ParamString marks a double-quoted string token.
	ParamString ParamKind = 3
)

// ParamValue is the result of classifying one argument token. Number is set
// for decimal and hex kinds; Text is set for quoted strings and holds the
// token as-is, quotes included.
type ParamValue struct {
	Kind   ParamKind
	Number int32
	Text   string
}

// ByteStream is the byte source and sink a console session runs on, typically
// a serial port or a network connection adapter. Available reports how many
// bytes can be read without blocking; ReadByte must only be called while
// Available reports at least one byte. The interpreter never blocks on a
// ByteStream and assumes nothing about buffering beyond that contract.
type ByteStream interface {
	io.Writer

	// Available reports the number of bytes that can be read immediately.
	Available() int
	// ReadByte consumes one available byte.
	ReadByte() (byte, error)
}
