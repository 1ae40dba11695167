// internal/board/errors.go
package board

import (
	"errors"
	"fmt"
	"strings"

	"go-hive-defense/pkg/geom"
)

// ErrOffscreen matches every OffscreenError via errors.Is.
var ErrOffscreen = errors.New("grid position is not on the board")

// OffscreenError reports a query outside the board and which edges it crossed.
// Movers treat it as leaving the board, not as a bug.
type OffscreenError struct {
	Position geom.Point
	Left     bool
	Right    bool
	Top      bool
	Bottom   bool
}

func newOffscreenError(g geom.Point, numSquares int) *OffscreenError {
	e := &OffscreenError{Position: g}
	if g.X < 0 {
		e.Left = true
	} else if g.X >= numSquares {
		e.Right = true
	}
	if g.Y < 0 {
		e.Top = true
	} else if g.Y >= numSquares {
		e.Bottom = true
	}
	return e
}

func (e *OffscreenError) Error() string {
	var edges []string
	if e.Left {
		edges = append(edges, "left")
	}
	if e.Right {
		edges = append(edges, "right")
	}
	if e.Top {
		edges = append(edges, "top")
	}
	if e.Bottom {
		edges = append(edges, "bottom")
	}
	return fmt.Sprintf("grid position %v is off the board (%s)", e.Position, strings.Join(edges, ", "))
}

func (e *OffscreenError) Is(target error) bool {
	return target == ErrOffscreen
}
