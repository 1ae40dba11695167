// internal/state/game_state.go
package state

import (
	"fmt"
	"time"

	"go-hive-defense/internal/app"
	"go-hive-defense/internal/board"
	"go-hive-defense/internal/config"
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/types"
	"go-hive-defense/internal/ui"
	"go-hive-defense/pkg/geom"
	"go-hive-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var purchaseKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// GameState ведёт идущий уровень: доска, боковая панель и инфо-панель.
type GameState struct {
	sm            *StateMachine
	ctx           *Context
	game          *app.Game
	renderer      *render.BoardRenderer
	panel         *ui.PurchasePanel
	infoPanel     *ui.InfoPanel
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, ctx *Context, g *app.Game) *GameState {
	panelWidth := config.ScreenWidth - config.BoardSize
	return &GameState{
		sm:        sm,
		ctx:       ctx,
		game:      g,
		renderer:  render.NewBoardRenderer(g.Board.NumSquares(), g.Board.SquareSize(), ctx.Colors),
		panel:     ui.NewPurchasePanel(config.BoardSize, panelWidth, ctx.Face, ctx.Colors),
		infoPanel: ui.NewInfoPanel(config.BoardSize, panelWidth, ctx.Face),
	}
}

// Game отдаёт сессию, чтобы пауза могла снять её с паузы.
func (g *GameState) Game() *app.Game { return g.game }

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	g.infoPanel.Update(g.game.Board)

	if g.handleKeys() {
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if x >= config.BoardSize {
			if g.apply(g.panel.ActionAt(x, y)) {
				return
			}
		} else {
			g.handleBoardClick(x, y)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.SelectNone()
	}

	g.game.Update(deltaTime)
	if g.game.Finished() {
		g.sm.SetState(NewFinishedState(g.sm, g.ctx, g))
	}
}

// handleKeys возвращает true, если состояние сменилось.
func (g *GameState) handleKeys() bool {
	for i, key := range purchaseKeys {
		if inpututil.IsKeyJustPressed(key) && i < len(defs.BuyableKinds) {
			g.apply(ui.Action{Type: ui.ActionSelect, Kind: defs.BuyableKinds[i]})
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key0), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.game.SelectNone()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		return g.apply(ui.Action{Type: ui.ActionPause})
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		return g.apply(ui.Action{Type: ui.ActionSpeed})
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return g.apply(ui.Action{Type: ui.ActionRetry})
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		return g.apply(ui.Action{Type: ui.ActionMenu})
	}
	return false
}

// apply выполняет действие панели. Возвращает true, если состояние сменилось.
func (g *GameState) apply(a ui.Action) bool {
	if a.Type == ui.ActionNone {
		return false
	}
	if (a.Type == ui.ActionPause || a.Type == ui.ActionSpeed) &&
		time.Since(g.lastClickTime) < config.ClickCooldown*time.Millisecond {
		return false
	}
	g.lastClickTime = time.Now()
	g.panel.Pressed(a)

	switch a.Type {
	case ui.ActionSelect:
		if cur, ok := g.game.Selected(); ok && cur == a.Kind {
			g.game.SelectNone()
		} else if err := g.game.Select(a.Kind); err != nil {
			return false
		}
	case ui.ActionSpeed:
		g.game.ToggleSpeed()
	case ui.ActionPause:
		g.game.TogglePause()
		g.sm.SetState(NewPauseState(g.sm, g))
		return true
	case ui.ActionRetry:
		g.ctx.StartLevel(g.sm, g.game.Level)
		return true
	case ui.ActionMenu:
		g.sm.SetState(NewMenuState(g.sm, g.ctx))
		return true
	}
	return false
}

// handleBoardClick строит выбранную башню или показывает юнит под курсором.
func (g *GameState) handleBoardClick(x, y int) {
	if _, ok := g.game.Selected(); ok {
		g.game.Click(x, y)
		return
	}
	if id := UnitAt(g.game.Board, x, y); id != types.NoUnit {
		g.infoPanel.SetTarget(id)
	} else {
		g.infoPanel.Hide()
	}
}

// UnitAt ищет юнит под пикселем: сначала враги, потом башня в клетке.
func UnitAt(b *board.Board, x, y int) types.UnitID {
	p := geom.Pt(x, y)
	for _, e := range b.Search().AllEnemies() {
		pos := e.Position()
		size := e.ScaledSize()
		if p.X >= pos.X && p.X < pos.X+size && p.Y >= pos.Y && p.Y < pos.Y+size {
			return e.ID()
		}
	}
	if t, err := b.TowerAtPosition(p); err == nil && t != nil {
		return t.ID()
	}
	return types.NoUnit
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.Board)

	cx, cy := ebiten.CursorPosition()
	g.panel.Draw(screen, g.game, cx, cy)
	g.infoPanel.Draw(screen, g.game.Board)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tick %d  %s", g.game.Board.TickCount(), g.game.SessionID),
		config.BoardSize+config.PanelPadding, config.ScreenHeight-config.InfoPanelHeight-20)
}

func (g *GameState) Exit() {}
