// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"

	"go-hive-defense/internal/config"
	"go-hive-defense/internal/level"
	"go-hive-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const menuColumns = 5

// MenuState: выбор уровня.
type MenuState struct {
	sm      *StateMachine
	ctx     *Context
	buttons []*ui.Button
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	m := &MenuState{sm: sm, ctx: ctx}
	width := menuColumns*config.ButtonWidth + (menuColumns-1)*config.ButtonSpacing
	left := (config.ScreenWidth - width) / 2
	top := config.ScreenHeight/2 - config.ButtonHeight

	for n := 1; n <= level.MaxLevel; n++ {
		col := (n - 1) % menuColumns
		row := (n - 1) / menuColumns
		x := left + col*(config.ButtonWidth+config.ButtonSpacing)
		y := top + row*(config.ButtonHeight+config.ButtonSpacing)
		rect := image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
		m.buttons = append(m.buttons, ui.NewButton(rect, fmt.Sprintf("Level %d", n), ctx.Face))
	}
	return m
}

// LevelAt возвращает номер уровня под точкой или 0.
func (m *MenuState) LevelAt(x, y int) int {
	for i, b := range m.buttons {
		if b.Contains(x, y) {
			return i + 1
		}
	}
	return 0
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		m.sm.Quit()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.ctx.StartLevel(m.sm, 1)
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if n := m.LevelAt(ebiten.CursorPosition()); n > 0 {
			m.ctx.StartLevel(m.sm, n)
		}
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.PanelColor)
	title := image.Rect(0, config.ScreenHeight/4, config.ScreenWidth, config.ScreenHeight/4+40)
	ui.DrawCentered(screen, m.ctx.Face, config.WindowTitle, title, config.TextLightColor)

	cx, cy := ebiten.CursorPosition()
	for _, b := range m.buttons {
		b.Draw(screen, cx, cy, false)
	}
}

func (m *MenuState) Exit() {}
