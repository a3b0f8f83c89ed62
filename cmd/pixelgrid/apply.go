package main

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ironsheep/pixelgrid-tools/internal/display"
	"github.com/ironsheep/pixelgrid-tools/internal/imaging"
	"github.com/ironsheep/pixelgrid-tools/internal/pixelgrid"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a transform and write the result",
	Long: `Apply one transform to an image (or the built-in grid).

With --output the result is saved as PNG or JPEG, chosen by extension.
Without it the transformed pixels are printed to stdout as JSON.

Operations: ` + strings.Join(pixelgrid.Operations(), ", "),
	Args: cobra.NoArgs,
	RunE: runApply,
}

func init() {
	addInputFlag(applyCmd)
	applyCmd.Flags().String("op", "", "Operation to apply")
	applyCmd.Flags().StringP("output", "o", "", "Output image file (.png, .jpg)")
	applyCmd.Flags().Float64("threshold", 0.5, "Threshold for binarize and threshold")
	applyCmd.Flags().Float64("delta", 0, "Channel delta for brightness")
	applyCmd.Flags().Int("scale", 1, "Pixels per grid cell in the output image")
	applyCmd.Flags().Bool("view", false, "Also show the result in a window")
	rootCmd.AddCommand(applyCmd)
}

// addInputFlag registers the shared --input flag.
func addInputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "Input image file (default: built-in 3x3 grid)")
}

// loadInput reads the grid named by --input.
func loadInput(cmd *cobra.Command) (pixelgrid.Grid, string, error) {
	path, _ := cmd.Flags().GetString("input")
	g, err := imaging.LoadGrid(imaging.NewImageCache(), path)
	if err != nil {
		return nil, "", err
	}
	source := path
	if source == "" {
		source = imaging.SourceFixture
	}
	if debugEnabled() {
		log.Printf("loaded %s: %dx%d", source, g.Rows(), g.Cols())
	}
	return g, source, nil
}

// transformFromFlags applies the operation named by --op using the
// threshold and delta flags.
func transformFromFlags(cmd *cobra.Command, g pixelgrid.Grid) (pixelgrid.Grid, string, error) {
	op, _ := cmd.Flags().GetString("op")
	if op == "" {
		return g, "", nil
	}
	if op == pixelgrid.OpBright && !cmd.Flags().Changed("delta") {
		return nil, "", fmt.Errorf("--delta is required for %s", op)
	}

	threshold, _ := cmd.Flags().GetFloat64("threshold")
	delta, _ := cmd.Flags().GetFloat64("delta")
	out, err := pixelgrid.Apply(op, g, pixelgrid.Params{Threshold: threshold, Delta: delta})
	if err != nil {
		return nil, "", err
	}
	return out, op, nil
}

func runApply(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	scale, _ := cmd.Flags().GetInt("scale")
	view, _ := cmd.Flags().GetBool("view")
	if op, _ := cmd.Flags().GetString("op"); op == "" {
		return fmt.Errorf("--op must name one of: %s", strings.Join(pixelgrid.Operations(), ", "))
	}

	g, source, err := loadInput(cmd)
	if err != nil {
		return err
	}
	out, op, err := transformFromFlags(cmd, g)
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := imaging.SaveGrid(out, outputPath, scale); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Applied %s to %s (%dx%d)\n", op, source, out.Rows(), out.Cols())
		fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", outputPath)
	} else {
		if err := writeJSON(cmd, out); err != nil {
			return err
		}
	}

	if view {
		return display.Show(out, fmt.Sprintf("pixelgrid: %s %s", op, source), display.DefaultScale)
	}
	return nil
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
