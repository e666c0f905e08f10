package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/labyrinth/render"
)

// viewMaze shows m full-screen until q, Esc or Ctrl-C.
func viewMaze(m *maze) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	draw(screen, m)
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, m)
		case nil:
			return nil
		}
	}
}

// draw paints the maze below a status line.
func draw(s tcell.Screen, m *maze) {
	s.Clear()
	render.PaintText(s, 0, 0, summary(m)+"  [q] quit", tcell.StyleDefault.Foreground(tcell.ColorAqua))
	render.Paint(s, m.grid, render.WithOffset(0, 1), render.WithEndpoints(m.cfg.Start, m.cfg.End))
	s.Show()
}
