// Package raster implements graphics.Surface on an in-memory RGBA image.
//
// Text is drawn with the Go Regular font at the requested pixel size, or
// with a fixed 7x13 bitmap face if the font cannot be loaded. Everything
// drawn outside the image is clipped.
package raster
