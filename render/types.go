package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/labyrinth/grid"
)

// Glyphs maps cell kinds to runes.
type Glyphs struct {
	Wall, Path, Marker, Start, End rune
}

// DefaultGlyphs returns the block-and-dot set.
func DefaultGlyphs() Glyphs {
	return Glyphs{Wall: '█', Path: ' ', Marker: '•', Start: 'S', End: 'E'}
}

// Styles maps cell kinds to tcell styles for Paint.
type Styles struct {
	Wall, Path, Marker, Start, End tcell.Style
}

// DefaultStyles returns white walls, a yellow route and green/red endpoints.
func DefaultStyles() Styles {
	return Styles{
		Wall:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
		Path:   tcell.StyleDefault,
		Marker: tcell.StyleDefault.Foreground(tcell.ColorYellow),
		Start:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		End:    tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	}
}

// Options configures rendering.
type Options struct {
	Glyphs     Glyphs
	Styles     Styles
	Start, End *grid.Coord
	// OffsetX, OffsetY shift the drawing on a screen.
	OffsetX, OffsetY int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns default glyphs and styles, no endpoints, no offset.
func DefaultOptions() Options {
	return Options{Glyphs: DefaultGlyphs(), Styles: DefaultStyles()}
}

// WithEndpoints marks start and end with their glyphs.
func WithEndpoints(start, end grid.Coord) Option {
	return func(o *Options) {
		o.Start, o.End = &start, &end
	}
}

// WithGlyphs replaces the glyph set.
func WithGlyphs(g Glyphs) Option {
	return func(o *Options) { o.Glyphs = g }
}

// WithStyles replaces the style set.
func WithStyles(s Styles) Option {
	return func(o *Options) { o.Styles = s }
}

// WithOffset shifts Paint output by (x, y) screen cells.
func WithOffset(x, y int) Option {
	return func(o *Options) { o.OffsetX, o.OffsetY = x, y }
}
