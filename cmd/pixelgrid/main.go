package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// logLevelEnv enables debug logging when set to "debug".
const logLevelEnv = "PIXELGRID_LOG_LEVEL"

var rootCmd = &cobra.Command{
	Use:   "pixelgrid",
	Short: "Pixel grid transforms as an MCP server and command line tool",
	Long: `pixelgrid loads images as grids of RGB pixels and applies simple
transforms (negative, mirror, grayscale, binarize, brightness, sepia,
threshold highlight and a three-band flag filter).

Run without a subcommand to serve the transforms over MCP on stdin/stdout.
Omit --input to work on the built-in 3x3 test grid.

Environment variables:
  PIXELGRID_LOG_LEVEL=debug    Enable debug logging`,
	SilenceUsage:      true,
	PersistentPreRun:  setupLogging,
	RunE:              runServe,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

// setupLogging sends logs to stderr since stdout carries protocol and JSON output.
func setupLogging(cmd *cobra.Command, args []string) {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
}

func debugEnabled() bool {
	return os.Getenv(logLevelEnv) == "debug"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
