// Package pixelgrid provides the pixel grid data model and the transforms that
// operate on it.
//
// A Grid is an ordered sequence of rows, each row an ordered sequence of
// pixels, and each Pixel exactly three float64 channels (red, green, blue)
// nominally in the range [0.0, 1.0]. The range is advisory: values outside it
// are accepted as input, and transforms clamp their output only where they
// document it.
//
// # Coordinate System
//
// Grids are addressed as (row, col), both 0-based:
//   - row 0 is the topmost row
//   - col 0 is the leftmost pixel of a row
//
// Search results use the same (row, col) order.
//
// # Ownership
//
// Every transform returns a new, independent grid and leaves its input
// untouched. Callers may keep using the input after a transform, and the
// returned grid never shares rows or pixels with it.
//
// # Validation
//
// Transforms are total functions and do not return errors. A Grid is expected
// to be rectangular; Validate reports ragged grids with ErrMalformedGrid and is
// applied at the boundaries (loading, server tools) rather than inside every
// transform. Pixel arity is fixed by the Pixel type.
//
// # Transforms
//
// Per-pixel color transforms:
//   - Invert, Grayscale, AdjustBrightness, Binarize, ThresholdHighlight, Sepia
//
// Geometric transform:
//   - Mirror
//
// Search:
//   - FindGreen, FindPixel
//
// Composite banded recolor:
//   - FlagFilter
//
// All per-pixel transforms are built on Grid.Map.
package pixelgrid
