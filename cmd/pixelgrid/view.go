package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/pixelgrid-tools/internal/display"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show a grid in a window, optionally after a transform",
	Args:  cobra.NoArgs,
	RunE:  runView,
}

func init() {
	addInputFlag(viewCmd)
	viewCmd.Flags().String("op", "", "Operation to apply before showing")
	viewCmd.Flags().Float64("threshold", 0.5, "Threshold for binarize and threshold")
	viewCmd.Flags().Float64("delta", 0, "Channel delta for brightness")
	viewCmd.Flags().Int("scale", display.DefaultScale, "Window pixels per grid cell")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	scale, _ := cmd.Flags().GetInt("scale")

	g, source, err := loadInput(cmd)
	if err != nil {
		return err
	}
	out, op, err := transformFromFlags(cmd, g)
	if err != nil {
		return err
	}

	title := "pixelgrid: " + source
	if op != "" {
		title = fmt.Sprintf("pixelgrid: %s %s", op, source)
	}
	return display.Show(out, title, scale)
}
