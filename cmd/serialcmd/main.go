// Package main provides the serialcmd CLI application entry point. serialcmd
// hosts a non-blocking line-oriented command console over a local terminal or
// a TCP listener, backed by the interpreter in internal/console.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"serialcmd/internal/config"
	"serialcmd/internal/logger"
)

var (
	logLevel string
	logFile  string
	cfgFile  string
	version  = "0.1.0" // This could be set at build time
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "serialcmd",
	Short: "serialcmd - line-oriented command console for byte streams",
	Long: `serialcmd hosts a non-blocking command interpreter on a byte stream.
Bytes are assembled into lines, lines are split into a command and up to nine
arguments, and commands are dispatched against an ordered command table.`,
	Run: runDemo, // Default behavior is the interactive demo console
}

// demoCmd represents the demo command (explicit version of default behavior)
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive demo console on the local terminal",
	Long: `Run the demo command table on stdin/stdout. The terminal is put into
raw mode so the interpreter's own echo and backspace handling is exercised.`,
	Run: runDemo,
}

// serveCmd represents the serve command for the TCP console server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the demo console over TCP",
	Long: `Listen on the configured TCP address and run one console session per
connection. Connect with netcat or a serial terminal program.`,
	Run: runServe,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("serialcmd v%s\n", version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to YAML session configuration")

	if err := viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-level flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-file flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding config flag: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initLogging)
}

func initLogging() {
	if err := logger.Configure(viper.GetString("log-level"), viper.GetString("log-file")); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig returns the session configuration from --config, or the defaults
// when no file was given. A config file may also raise the log level.
func loadConfig() *config.Config {
	if cfgFile == "" {
		return config.Default()
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		logger.Fatal("failed to load configuration", "path", cfgFile, "error", err)
	}
	if cfg.LogLevel != "" || cfg.LogFile != "" {
		if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
			logger.Fatal("failed to reconfigure logger", "error", err)
		}
	}
	return cfg
}
