package console

import "serialcmd/pkg/cmdtypes"

// Poll consumes the bytes currently available on the stream and advances line
// assembly. It never waits for more input: when the stream runs dry before a
// terminator arrives, Poll returns false and the partial line stays buffered
// for the next call. It returns true when a full command cycle completed this
// call, whether the line was dispatched or discarded as empty.
//
// This is the interpreter's only entry point and should be called repeatedly
// from the embedding application's loop.
func (c *Console) Poll() bool {
	if c.stream.Available() == 0 {
		return false
	}

	for {
		if c.stream.Available() == 0 {
			return false
		}
		ch, err := c.stream.ReadByte()
		if err != nil {
			return false
		}
		ch &= 0x7f // 7-bit ASCII only

		if c.echo {
			if (ch != '\r' && ch != '\n') || c.crlfEcho {
				c.stream.Write([]byte{ch})
			}
		}

		switch {
		case c.isTerminator(ch):
			// Non-CR/LF terminators become part of the line.
			if ch != '\r' && ch != '\n' && c.cursor < len(c.buf)-1 {
				c.buf[c.cursor] = ch
				c.cursor++
			}
			c.endLine(ch)
			return true
		case ch == cmdtypes.CharBS:
			if c.cursor > 0 {
				c.cursor--
			}
		case ch == '\n':
			// Bare LF is filler; CR is the default terminator.
		default:
			// One slot stays reserved so a full buffer drops input instead
			// of overflowing. A backspace or terminator ends the drop.
			if c.cursor < len(c.buf)-1 {
				c.buf[c.cursor] = ch
				c.cursor++
			}
		}
	}
}

// endLine finishes the current cycle: dispatch a non-empty line, report its
// result, and reset the buffer either way.
func (c *Console) endLine(terminator byte) {
	line := c.buf[:c.cursor]
	if len(line) > 0 {
		if (terminator == '\r' || terminator == '\n') && c.crlfResponse {
			c.writeLine("")
		}
		status := c.process(line)
		c.logger.Debug("line processed", "input", string(line), "status", int8(status))
		c.report(status)
	}
	c.cursor = 0
}

func (c *Console) writeLine(s string) {
	c.stream.Write(append([]byte(s), '\r', '\n'))
}
