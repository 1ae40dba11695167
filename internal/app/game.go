// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-hive-defense/internal/board"
	"go-hive-defense/internal/config"
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/event"
	"go-hive-defense/internal/interfaces"
	"go-hive-defense/internal/level"
	"go-hive-defense/internal/tower"
	"go-hive-defense/internal/types"
	"go-hive-defense/internal/utils"

	"github.com/google/uuid"
)

var _ interfaces.Session = (*Game)(nil)

// SpeedSteps: множители скорости, по кругу переключаемые кнопкой.
var SpeedSteps = []float64{1, 2, 4}

// Game holds one level session: the board, the countdown and the purchase selection.
type Game struct {
	Level           int
	Board           *board.Board
	SessionID       uuid.UUID
	RemainingTicks  int
	SpeedMultiplier float64

	selected    defs.Kind
	hasSelected bool
	paused      bool
	finished    bool
	won         bool
	speedIndex  int
	accumulator float64
}

// Option настраивает Game при создании.
type Option func(*Game)

// WithSessionID задаёт идентификатор сессии вместо случайного.
func WithSessionID(id uuid.UUID) Option {
	return func(g *Game) { g.SessionID = id }
}

// NewGame wraps a prepared board. The countdown starts at the board's level time.
func NewGame(levelNum int, b *board.Board, opts ...Option) *Game {
	if b == nil {
		panic("board cannot be nil")
	}
	g := &Game{
		Level:           levelNum,
		Board:           b,
		SessionID:       uuid.New(),
		RemainingTicks:  b.InitialTime(),
		SpeedMultiplier: SpeedSteps[0],
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// LoadGame loads an embedded level and starts a session on it.
func LoadGame(levelNum int, rng *utils.PRNGService, events *event.Dispatcher) (*Game, error) {
	state, err := level.Load(levelNum, rng)
	if err != nil {
		return nil, err
	}
	g := NewGame(levelNum, board.New(state, rng, events))
	log.Printf("app: session %s started level %d (%dx%d, %d ticks)",
		g.SessionID, levelNum, state.NumSquares(), state.NumSquares(), state.InitialTime())
	return g, nil
}

// Update accumulates wall time and runs the ticks it covers. Returns how many ran.
func (g *Game) Update(deltaTime float64) int {
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	if g.paused || g.finished {
		return 0
	}

	g.accumulator += deltaTime * g.SpeedMultiplier
	step := config.TickLength.Seconds()
	ran := 0
	for g.accumulator >= step {
		g.accumulator -= step
		if !g.Tick() {
			break
		}
		ran++
	}
	return ran
}

// Tick advances the board once and the countdown with it.
// Returns false when nothing ran because the session is paused or over.
func (g *Game) Tick() bool {
	if g.paused || g.finished {
		return false
	}

	g.Board.Tick()
	g.RemainingTicks--

	switch {
	case g.RemainingTicks <= 0:
		g.RemainingTicks = 0
		g.finish(true)
	case g.Board.State().CountTowers(defs.KindGenerator) == 0:
		g.finish(false)
	}
	return true
}

func (g *Game) finish(won bool) {
	g.finished = true
	g.won = won
	g.accumulator = 0
	log.Printf("app: session %s finished level %d, won=%v after %d ticks",
		g.SessionID, g.Level, won, g.Board.TickCount())
	g.Board.Dispatch(event.Event{
		Type: event.LevelFinished,
		Data: event.LevelResult{Level: g.Level, Won: won},
	})
}

// Remaining splits the countdown into minutes, seconds and ticks.
func (g *Game) Remaining() (minutes, seconds, ticks int) {
	perMinute := config.TicksPerSecond * 60
	minutes = g.RemainingTicks / perMinute
	seconds = g.RemainingTicks / config.TicksPerSecond % 60
	ticks = g.RemainingTicks % config.TicksPerSecond
	return minutes, seconds, ticks
}

// Clock formats Remaining as m:s:t.
func (g *Game) Clock() string {
	m, s, t := g.Remaining()
	return fmt.Sprintf("%d:%02d:%02d", m, s, t)
}

// Select chooses the tower the next Click builds.
func (g *Game) Select(kind defs.Kind) error {
	for _, k := range defs.BuyableKinds {
		if k == kind {
			g.selected = kind
			g.hasSelected = true
			return nil
		}
	}
	return fmt.Errorf("%s cannot be bought", kind)
}

func (g *Game) SelectNone() {
	g.hasSelected = false
}

// Selected returns the current selection.
func (g *Game) Selected() (defs.Kind, bool) {
	return g.selected, g.hasSelected
}

// Click builds the selected tower at a board pixel.
// Returns true if the tower ended up on the board.
func (g *Game) Click(px, py int) bool {
	if !g.hasSelected || g.finished {
		return false
	}
	size := g.Board.SquareSize()
	extent := size * g.Board.NumSquares()
	if px < 0 || py < 0 || px >= extent || py >= extent {
		return false
	}

	t, err := tower.New(g.selected, px, py, size)
	if err != nil {
		log.Printf("app: %v", err)
		return false
	}
	g.Board.AddUnit(t)
	return t.ID() != types.NoUnit
}

func (g *Game) TogglePause() {
	if g.finished {
		return
	}
	g.paused = !g.paused
}

// ToggleSpeed cycles through SpeedSteps.
func (g *Game) ToggleSpeed() {
	g.speedIndex = (g.speedIndex + 1) % len(SpeedSteps)
	g.SpeedMultiplier = SpeedSteps[g.speedIndex]
}

func (g *Game) Paused() bool     { return g.paused }
func (g *Game) Finished() bool   { return g.finished }
func (g *Game) Won() bool        { return g.won }
func (g *Game) Speed() float64   { return g.SpeedMultiplier }
func (g *Game) LevelNumber() int { return g.Level }
