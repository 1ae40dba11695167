// internal/ui/purchase_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"go-hive-defense/internal/app"
	"go-hive-defense/internal/config"
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/interfaces"
	"go-hive-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// ActionKind: что игрок нажал на боковой панели.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionSelect
	ActionPause
	ActionSpeed
	ActionRetry
	ActionMenu
)

// Action: результат клика по панели. Kind заполнен только для ActionSelect.
type Action struct {
	Type ActionKind
	Kind defs.Kind
}

const (
	levelIndicatorY = 30
	clockY          = 56
	firstButtonY    = 80
	iconSize        = 12
)

// PurchasePanel рисует боковую панель справа от поля: покупка башен и управление игрой.
type PurchasePanel struct {
	Left, Width int

	kindButtons []*Button
	kinds       []defs.Kind
	retry       *Button
	menu        *Button
	pause       *PauseButton
	speed       *SpeedButton
	selection   *SelectionIndicator
	level       *LevelIndicator

	face   font.Face
	colors *render.BoardColors
}

func NewPurchasePanel(left, width int, face font.Face, colors *render.BoardColors) *PurchasePanel {
	p := &PurchasePanel{
		Left:   left,
		Width:  width,
		face:   face,
		colors: colors,
	}

	x := left + (width-config.ButtonWidth)/2
	y := firstButtonY
	nextRect := func() image.Rectangle {
		r := image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
		y += config.ButtonHeight + config.ButtonSpacing
		return r
	}

	for i, kind := range defs.BuyableKinds {
		label := fmt.Sprintf("%d  %s", i+1, kind)
		p.kindButtons = append(p.kindButtons, NewButton(nextRect(), label, face))
		p.kinds = append(p.kinds, kind)
	}

	centerX := float32(left + width/2)
	p.selection = NewSelectionIndicator(centerX, float32(y+iconSize), iconSize)
	y += 3 * iconSize

	iconY := float32(y + iconSize*2)
	p.pause = NewPauseButton(float32(left+width/3), iconY, iconSize,
		color.RGBA{220, 220, 220, 255}, config.WinColor)
	p.speed = NewSpeedButton(float32(left+2*width/3), iconY, iconSize, []color.Color{
		color.RGBA{220, 220, 220, 255},
		color.RGBA{240, 200, 60, 255},
		config.ButtonHotColor,
	})
	y += 5 * iconSize

	p.retry = NewButton(nextRect(), "Retry (R)", face)
	p.menu = NewButton(nextRect(), "Menu (M)", face)
	p.level = NewLevelIndicator(left+width/2, levelIndicatorY)
	return p
}

// ActionAt возвращает действие под точкой (x, y) экрана.
func (p *PurchasePanel) ActionAt(x, y int) Action {
	for i, b := range p.kindButtons {
		if b.Contains(x, y) {
			return Action{Type: ActionSelect, Kind: p.kinds[i]}
		}
	}
	switch {
	case p.pause.IsClicked(x, y):
		return Action{Type: ActionPause}
	case p.speed.IsClicked(x, y):
		return Action{Type: ActionSpeed}
	case p.retry.Contains(x, y):
		return Action{Type: ActionRetry}
	case p.menu.Contains(x, y):
		return Action{Type: ActionMenu}
	}
	return Action{}
}

// Pressed запускает анимацию нажатия для выполненного действия.
func (p *PurchasePanel) Pressed(a Action) {
	now := time.Now()
	switch a.Type {
	case ActionSelect:
		p.selection.Pulse()
	case ActionPause:
		p.pause.LastClickTime = now
	case ActionSpeed:
		p.speed.LastClickTime = now
	}
}

// Sync подгоняет иконки под состояние сессии.
func (p *PurchasePanel) Sync(s interfaces.Session) {
	p.pause.SetPaused(s.Paused())
	p.speed.SetState(SpeedIndex(s.Speed()))
}

// SpeedIndex: позиция множителя в app.SpeedSteps, 0 если его там нет.
func SpeedIndex(multiplier float64) int {
	for i, step := range app.SpeedSteps {
		if step == multiplier {
			return i
		}
	}
	return 0
}

func (p *PurchasePanel) Draw(screen *ebiten.Image, s interfaces.Session, cursorX, cursorY int) {
	vector.DrawFilledRect(screen, float32(p.Left), 0, float32(p.Width), config.ScreenHeight, config.PanelColor, false)

	p.level.Draw(screen, s.LevelNumber(), p.face)
	clockRect := image.Rect(p.Left, clockY-8, p.Left+p.Width, clockY+8)
	DrawCentered(screen, p.face, s.Clock(), clockRect, config.TextLightColor)

	selected, hasSelected := s.Selected()
	for i, b := range p.kindButtons {
		b.Draw(screen, cursorX, cursorY, hasSelected && p.kinds[i] == selected)
	}
	p.selection.Draw(screen, p.colors.KindColor(selected), hasSelected)

	p.Sync(s)
	p.pause.Draw(screen)
	p.speed.Draw(screen)

	p.retry.Draw(screen, cursorX, cursorY, false)
	p.menu.Draw(screen, cursorX, cursorY, false)
}
