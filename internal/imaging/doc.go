// Package imaging connects pixel grids to image files and rendered output.
//
// It loads images from disk into pixelgrid.Grid values, renders grids back to
// PNG (optionally enlarged and overlaid with cell lines and coordinates), saves
// grids to disk, and inspects grid colors.
//
// # Loading
//
// LoadGrid resolves a path to a grid:
//   - An empty path yields the built-in 3×3 test grid (pixelgrid.SampleGrid)
//   - A missing file yields an error wrapping ErrImageNotFound
//   - Any other path is decoded (PNG, JPEG, GIF) and converted
//
// Decoded images are kept in an ImageCache keyed by path. Each LoadGrid call
// builds a new grid from the cached image, so grids are never shared between
// callers.
//
// # Coordinate System
//
// Grid coordinates are (row, col), both 0-based with the origin at the
// top-left corner. Rendered images use the usual (x, y) with x = col*scale and
// y = row*scale.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. All other functions are
// stateless.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates outside grid bounds
//   - Empty grids passed to rendering
//   - File I/O errors during image loading and saving
//   - Unsupported output extensions
package imaging
