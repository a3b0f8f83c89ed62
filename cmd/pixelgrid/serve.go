package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/ironsheep/pixelgrid-tools/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdin/stdout (default)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	debug := debugEnabled()
	if debug {
		log.Printf("pixelgrid MCP server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New()
	srv.SetDebug(debug)
	return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
}
