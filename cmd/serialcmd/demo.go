package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"serialcmd/internal/console"
	"serialcmd/internal/logger"
	"serialcmd/internal/stream"
)

// runDemo runs the demo command table on the local terminal. Raw mode hands
// every keystroke straight to the interpreter, which does its own echo and
// backspace handling.
func runDemo(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			logger.Fatal("failed to enter raw mode", "error", err)
		}
		defer func() {
			if err := term.Restore(fd, oldState); err != nil {
				logger.Error("failed to restore terminal", "error", err)
			}
		}()
	}

	st := stream.New(os.Stdout)
	sess := &demoSession{out: st}
	con := console.New(st, sess.buildTable())
	sess.console = con
	cfg.Apply(con)

	pumpDone := make(chan error, 1)
	go func() { pumpDone <- st.Pump(os.Stdin) }()

	fmt.Fprint(st, "serialcmd demo console. Type 'help' for commands, 'exit' to leave.\r\n")
	runSession(con, st, sess, pumpDone)
}

// runSession drives one console session: poll for completed lines, idle
// briefly when the stream is dry, and stop once the session quits or its
// input side is exhausted.
func runSession(con *console.Console, st *stream.Buffered, sess *demoSession, pumpDone <-chan error) {
	eof := false
	for !sess.quitting {
		if con.Poll() {
			continue
		}
		if eof && st.Available() == 0 {
			return
		}
		select {
		case <-pumpDone:
			eof = true
		case <-time.After(5 * time.Millisecond):
		}
	}
}
