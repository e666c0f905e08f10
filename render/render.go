package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/labyrinth/grid"
)

// cell resolves the glyph and style for c, endpoints first.
func (o *Options) cell(g *grid.Grid, c grid.Coord) (rune, tcell.Style) {
	switch {
	case o.Start != nil && c == *o.Start:
		return o.Glyphs.Start, o.Styles.Start
	case o.End != nil && c == *o.End:
		return o.Glyphs.End, o.Styles.End
	}
	s, _ := g.Get(c)
	switch s {
	case grid.Wall:
		return o.Glyphs.Wall, o.Styles.Wall
	case grid.OnShortestPath:
		return o.Glyphs.Marker, o.Styles.Marker
	default:
		return o.Glyphs.Path, o.Styles.Path
	}
}

// Text renders g row by row, each line terminated by '\n'.
func Text(g *grid.Grid, opts ...Option) string {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	w, h := g.Dimensions()
	var sb strings.Builder
	sb.Grow((w + 1) * h * 3)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			ch, _ := o.cell(g, grid.Coord{Row: r, Col: c})
			sb.WriteRune(ch)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Paint draws g onto s at the configured offset, one screen cell per grid
// cell. Cells falling outside the screen are clipped. Paint does not call
// s.Show.
func Paint(s tcell.Screen, g *grid.Grid, opts ...Option) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	sw, sh := s.Size()
	w, h := g.Dimensions()
	for r := 0; r < h; r++ {
		y := o.OffsetY + r
		if y < 0 || y >= sh {
			continue
		}
		for c := 0; c < w; c++ {
			x := o.OffsetX + c
			if x < 0 || x >= sw {
				continue
			}
			ch, style := o.cell(g, grid.Coord{Row: r, Col: c})
			s.SetContent(x, y, ch, nil, style)
		}
	}
}

// PaintText writes str on row y starting at column x with style.
func PaintText(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for i, ch := range []rune(str) {
		s.SetContent(x+i, y, ch, nil, style)
	}
}
