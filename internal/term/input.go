// internal/term/input.go
package term

import (
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/interfaces"
	"go-hive-defense/pkg/geom"

	"github.com/gdamore/tcell/v2"
)

// Command: что цикл должен сделать после нажатия.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandRetry
	CommandNext
)

// Controller переводит нажатия клавиш в действия сессии и двигает курсор.
type Controller struct {
	Session    interfaces.Session
	Cursor     geom.Point
	numSquares int
	squareSize int
}

func NewController(s interfaces.Session, numSquares, squareSize int) *Controller {
	return &Controller{
		Session:    s,
		Cursor:     geom.Pt(numSquares/2, numSquares/2),
		numSquares: numSquares,
		squareSize: squareSize,
	}
}

func (c *Controller) HandleKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyUp:
		c.move(0, -1)
	case tcell.KeyDown:
		c.move(0, 1)
	case tcell.KeyLeft:
		c.move(-1, 0)
	case tcell.KeyRight:
		c.move(1, 0)
	case tcell.KeyEnter:
		c.build()
	case tcell.KeyRune:
		return c.handleRune(ev.Rune())
	}
	return CommandNone
}

func (c *Controller) handleRune(r rune) Command {
	switch {
	case r >= '1' && r <= '9':
		if i := int(r - '1'); i < len(defs.BuyableKinds) {
			_ = c.Session.Select(defs.BuyableKinds[i])
		}
	case r == '0':
		c.Session.SelectNone()
	case r == ' ':
		c.build()
	case r == 'p':
		c.Session.TogglePause()
	case r == 's':
		c.Session.ToggleSpeed()
	case r == 'r':
		return CommandRetry
	case r == 'n':
		if c.Session.Finished() && c.Session.Won() {
			return CommandNext
		}
	case r == 'q':
		return CommandQuit
	}
	return CommandNone
}

// build ставит выбранную башню в центр клетки под курсором.
func (c *Controller) build() {
	half := c.squareSize / 2
	c.Session.Click(c.Cursor.X*c.squareSize+half, c.Cursor.Y*c.squareSize+half)
}

func (c *Controller) move(dx, dy int) {
	c.Cursor = geom.Pt(clamp(c.Cursor.X+dx, c.numSquares), clamp(c.Cursor.Y+dy, c.numSquares))
}

func clamp(v, n int) int {
	switch {
	case v < 0:
		return 0
	case v >= n:
		return n - 1
	}
	return v
}
