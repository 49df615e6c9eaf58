// Package main is the entry point for the todos CLI.
//
// The todos service can be run either as a library (SDK) or as a standalone
// binary with optional YAML configuration. This CLI provides the standalone
// binary approach.
//
// Usage:
//
//	todos serve                      # Listen on 127.0.0.1:3000
//	todos serve -c config.yaml       # Use a config file
//	todos validate -c config.yaml    # Validate configuration
//	todos version                    # Show version info
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "todos",
	Short: "An in-memory Todo HTTP service",
	Long: `todos is a minimal HTTP service that manages Todo records in memory.

Endpoints:
  GET    /todos?offset=<n>&limit=<n>   list todos
  POST   /todos                        create a todo: {"text": "..."}
  PATCH  /todos/{id}                   update: {"text"?: "...", "completed"?: true}
  DELETE /todos/{id}                   delete a todo

Records are not persisted; they are lost when the process exits.

Example config:
  addr: 127.0.0.1:3000
  shutdown_timeout: 5s
  log:
    level: info
    format: json`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with code 1
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// versionCmd prints version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit hash, and build date of this todos binary.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "todos %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built:  %s\n", date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
