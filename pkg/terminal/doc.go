// Package terminal renders widgets into a character grid and drives them
// from a Bubble Tea program.
//
// Widget coordinates stay in surface units. Each terminal cell covers
// CellWidth by CellHeight units, so a layout written for a raster window
// shows up at roughly the same proportions in a terminal. Mouse positions
// are mapped back to the center of the cell under the pointer.
package terminal
