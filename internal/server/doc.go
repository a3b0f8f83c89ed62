// Package server implements the MCP (Model Context Protocol) server for pixel grid tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the pixel grid
// transforms through the MCP protocol, so MCP-compatible clients can load an
// image, apply a transform and look at the result.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Every tool takes an optional "path". An empty or missing path selects the
// built-in 3×3 test grid.
//
// Grid Information:
//   - grid_load: Load a grid and get its dimensions
//   - grid_stats: Per-channel statistics
//
// Transforms (return the result as base64 PNG):
//   - grid_negative, grid_mirror, grid_grayscale, grid_sepia
//   - grid_brightness: Add delta to every channel, clamped
//   - grid_binarize: Black/white by average threshold (inclusive)
//   - grid_threshold_highlight: Red where the average exceeds the threshold
//   - grid_flag_filter: Three-band recolor
//
// Inspection:
//   - grid_find_green: First pure green pixel in row-major order
//   - grid_sample_color, grid_sample_colors_multi: Pixel values
//   - grid_dominant_colors: Color palette
//   - grid_render: Render with optional cell lines and coordinates
//
// # Image Caching
//
// Decoded images are cached by path. grid_load drops the cached copy and reads
// the file again; other tools reuse the cache. Every tool call builds its own
// grid from the cached image, so transforms never affect later calls.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// A missing image file is reported this way and does not stop the server.
package server
