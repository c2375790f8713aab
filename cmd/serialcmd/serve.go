package main

import (
	"fmt"
	"net"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"serialcmd/internal/config"
	"serialcmd/internal/console"
	"serialcmd/internal/logger"
	"serialcmd/internal/stream"
)

// runServe listens on the configured TCP address and runs one independent
// console session per connection.
func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	srvLog := logger.NewStyledLogger("Server")

	ln, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		logger.Fatal("failed to listen", "addr", cfg.Listen, "error", err)
	}
	srvLog.Info("listening", "addr", cfg.Listen)

	for {
		conn, err := ln.Accept()
		if err != nil {
			srvLog.Error("accept failed", "error", err)
			return
		}
		go handleConn(conn, cfg, srvLog)
	}
}

// handleConn owns one connection for its lifetime. The pump goroutine is the
// only other party touching the stream, and only through its locked queue.
func handleConn(conn net.Conn, cfg *config.Config, srvLog *log.Logger) {
	defer conn.Close()

	sessionID := uuid.NewString()[:8]
	srvLog.Info("session opened", "session", sessionID, "remote", conn.RemoteAddr().String())

	st := stream.New(conn)
	sess := &demoSession{out: st}
	con := console.New(st, sess.buildTable())
	sess.console = con
	cfg.Apply(con)

	pumpDone := make(chan error, 1)
	go func() { pumpDone <- st.Pump(conn) }()

	fmt.Fprint(st, "serialcmd console. Type 'help' for commands, 'exit' to leave.\r\n")
	runSession(con, st, sess, pumpDone)

	srvLog.Info("session closed", "session", sessionID)
}
