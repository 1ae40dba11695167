// internal/term/view.go
package term

import (
	"fmt"

	"go-hive-defense/internal/board"
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/interfaces"
	"go-hive-defense/internal/unit"
	"go-hive-defense/pkg/geom"

	"github.com/gdamore/tcell/v2"
)

const helpLine = "arrows move  1-4 pick  0 clear  space build  p pause  s speed  r retry  q quit"

var glyphs = map[defs.Kind]rune{
	defs.KindTerrain:   '.',
	defs.KindBlocker:   '#',
	defs.KindGenerator: 'G',
	defs.KindHealer:    '+',
	defs.KindShooter:   'S',
	defs.KindHive:      'H',
	defs.KindBurrower:  'b',
	defs.KindQueen:     'Q',
}

var kindStyles = map[defs.Kind]tcell.Style{
	defs.KindTerrain:   tcell.StyleDefault.Foreground(tcell.ColorOlive),
	defs.KindBlocker:   tcell.StyleDefault.Foreground(tcell.ColorGray),
	defs.KindGenerator: tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	defs.KindHealer:    tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true),
	defs.KindShooter:   tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
	defs.KindHive:      tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	defs.KindBurrower:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
	defs.KindQueen:     tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true),
}

// Glyph возвращает символ и стиль юнита. Башни без питания рисуются строчной буквой и тускло.
func Glyph(u unit.Unit) (rune, tcell.Style) {
	r, ok := glyphs[u.Kind()]
	if !ok {
		r = '?'
	}
	style := kindStyles[u.Kind()]
	if p, ok := u.(unit.Powered); ok && !p.IsPowered() {
		r = lower(r)
		style = style.Dim(true).Bold(false)
	}
	return r, style
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 'a' - 'A'
	}
	return r
}

// Renderer рисует доску: одна ячейка терминала на клетку сетки.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw рисует кадр: клетки, врагов поверх них, курсор и строку статуса под доской.
func (r *Renderer) Draw(s interfaces.Session, b *board.Board, cursor geom.Point) {
	r.screen.Clear()
	n := b.NumSquares()

	for _, t := range b.State().Towers() {
		g := t.GridPosition()
		ch, style := Glyph(t)
		r.screen.SetContent(g.X, g.Y, ch, nil, style)
	}
	sq := b.SquareSize()
	for _, e := range b.Enemies() {
		g := e.Center().ToGrid(sq)
		if g.X < 0 || g.Y < 0 || g.X >= n || g.Y >= n {
			continue
		}
		ch, style := Glyph(e)
		r.screen.SetContent(g.X, g.Y, ch, nil, style)
	}

	mainc, combc, style, _ := r.screen.GetContent(cursor.X, cursor.Y)
	if mainc == 0 {
		mainc = ' '
	}
	r.screen.SetContent(cursor.X, cursor.Y, mainc, combc, style.Reverse(true))

	r.drawText(0, n, tcell.StyleDefault, statusLine(s))
	r.drawText(0, n+1, tcell.StyleDefault.Dim(true), helpLine)
	r.screen.Show()
}

func statusLine(s interfaces.Session) string {
	picked := "-"
	if kind, ok := s.Selected(); ok {
		picked = kind.String()
	}
	line := fmt.Sprintf("level %d  %s  x%g  build %s", s.LevelNumber(), s.Clock(), s.Speed(), picked)
	switch {
	case s.Finished() && s.Won():
		line += "  WON (n next, r retry)"
	case s.Finished():
		line += "  LOST (r retry)"
	case s.Paused():
		line += "  PAUSED"
	}
	return line
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
