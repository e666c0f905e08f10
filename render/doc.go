// Package render draws a grid.Grid for humans: as plain text, or onto a
// tcell.Screen for the interactive viewer.
//
// Glyphs (overridable with WithGlyphs):
//
//	█  wall
//	   path
//	•  shortest-path marker
//	S  start, E end (only with WithEndpoints)
package render
