package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/pixelgrid-tools/internal/pixelgrid"
)

var findGreenCmd = &cobra.Command{
	Use:   "find-green",
	Short: "Print the first pure green pixel in row-major order",
	Args:  cobra.NoArgs,
	RunE:  runFindGreen,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print per-channel statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	addInputFlag(findGreenCmd)
	addInputFlag(statsCmd)
	rootCmd.AddCommand(findGreenCmd)
	rootCmd.AddCommand(statsCmd)
}

// findGreenOutput is printed by find-green; Row and Col are -1 when not found.
type findGreenOutput struct {
	Found bool `json:"found"`
	Row   int  `json:"row"`
	Col   int  `json:"col"`
}

func runFindGreen(cmd *cobra.Command, args []string) error {
	g, _, err := loadInput(cmd)
	if err != nil {
		return err
	}
	row, col, ok := pixelgrid.FindGreen(g)
	return writeJSON(cmd, findGreenOutput{Found: ok, Row: row, Col: col})
}

func runStats(cmd *cobra.Command, args []string) error {
	g, _, err := loadInput(cmd)
	if err != nil {
		return err
	}
	stats, err := pixelgrid.ComputeStats(g)
	if err != nil {
		return err
	}
	return writeJSON(cmd, stats)
}
