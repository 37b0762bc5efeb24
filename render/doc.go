// Package render turns a grid.View into text, pixels or JSON.
//
// Renderers are passive observers: they accept the read-only grid.View, so
// they can draw a live *grid.Grid mid-generation, a *grid.Snapshot, or a
// finished maze, and they never mutate what they draw.
//
//   - ASCII / WriteASCII: "+---+" box drawing, unvisited cells shaded,
//     optional solution path and cursor markers.
//   - Image / WritePNG: an image.Image drawn the classic canvas way, walls as
//     bands inside each cell.
//   - Document / NewDocument: a JSON-ready description of every cell.
package render
