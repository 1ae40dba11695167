// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"go-hive-defense/internal/board"
	"go-hive-defense/internal/config"
	"go-hive-defense/internal/types"
	"go-hive-defense/internal/unit"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 16
)

// InfoPanel выезжает снизу боковой панели и показывает юнит под курсором.
type InfoPanel struct {
	IsVisible  bool
	TargetUnit types.UnitID
	Left       int
	Width      int
	fontFace   font.Face
	currentY   float64
	targetY    float64
}

// NewInfoPanel создаёт спрятанную панель шириной width, начиная с x = left.
func NewInfoPanel(left, width int, face font.Face) *InfoPanel {
	return &InfoPanel{
		Left:     left,
		Width:    width,
		fontFace: face,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(id types.UnitID) {
	if id == types.NoUnit {
		p.Hide()
		return
	}
	p.TargetUnit = id
	p.IsVisible = true
	p.targetY = config.ScreenHeight - config.InfoPanelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Update двигает панель к целевой высоте и прячет её, если юнит исчез.
func (p *InfoPanel) Update(b *board.Board) {
	if p.TargetUnit != types.NoUnit && b.Lookup(p.TargetUnit) == nil {
		p.Hide()
	}

	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}

		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
			p.TargetUnit = types.NoUnit
		}
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, b *board.Board) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	rect := image.Rect(
		p.Left+panelMargin,
		int(p.currentY)+panelMargin,
		p.Left+p.Width-panelMargin,
		int(p.currentY)+config.InfoPanelHeight-panelMargin,
	)
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	w, h := float32(rect.Dx()), float32(rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{25, 35, 45, 230}, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.ButtonColor, true)

	u := b.Lookup(p.TargetUnit)
	if u == nil {
		return
	}
	lineY := rect.Min.Y + 18
	for _, line := range Describe(u) {
		text.Draw(screen, line, p.fontFace, rect.Min.X+10, lineY, config.TextLightColor)
		lineY += lineHeight
	}
}

// Describe возвращает строки для панели: заголовок, затем характеристики.
func Describe(u unit.Unit) []string {
	lines := []string{
		fmt.Sprintf("%s #%d", u.Kind(), u.ID()),
		fmt.Sprintf("Health: %d / %d", u.Health(), u.InitialHealth()),
	}

	if p, ok := u.(unit.Powered); ok {
		status := "no"
		switch src := p.PoweredBy(); {
		case src == types.LevelSupply:
			status = "level supply"
		case p.IsPowered():
			status = fmt.Sprintf("by #%d", src)
		}
		lines = append(lines, "Powered: "+status)
	}
	if r, ok := u.(interface{ Range() int }); ok {
		lines = append(lines, fmt.Sprintf("Range: %d", r.Range()))
	}
	if d, ok := u.(interface{ Damage() int }); ok {
		lines = append(lines, fmt.Sprintf("Damage: %d", d.Damage()))
	}
	if s, ok := u.(unit.PowerSource); ok {
		ids := s.Powering()
		names := make([]string, len(ids))
		for i, id := range ids {
			names[i] = fmt.Sprintf("#%d", id)
		}
		lines = append(lines, "Powering: "+strings.Join(names, " "))
	}
	if _, ok := u.(unit.Enemy); ok {
		pos := u.Position()
		lines = append(lines, fmt.Sprintf("At: %d,%d", pos.X, pos.Y))
	}
	return lines
}
