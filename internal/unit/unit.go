// internal/unit/unit.go
package unit

import (
	"math"

	"go-hive-defense/internal/config"
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/types"
	"go-hive-defense/pkg/geom"
)

// DestroyedHealth: здоровье, которое выставляет Destroy.
const DestroyedHealth = -1000

// Unit: сущность на доске, которая действует каждый тик.
// Это либо башня игрока, либо враг под управлением ИИ.
type Unit interface {
	ID() types.UnitID
	AssignID(id types.UnitID)
	Kind() defs.Kind

	Health() int
	InitialHealth() int
	ChangeHealth(delta int)
	Destroy()
	IsDead() bool
	IsDamaged() bool

	Size() int
	ScaledSize() int
	SquareSize() int
	Position() geom.Point
	GridPosition() geom.Point
	Center() geom.Point

	Tick(b Board)
}

// Base хранит здоровье и размеры; встраивается во все юниты.
type Base struct {
	id            types.UnitID
	kind          defs.Kind
	health        int
	initialHealth int
	size          int
	squareSize    int
}

// NewBase берёт начальное здоровье и размер из библиотеки определений.
func NewBase(kind defs.Kind, squareSize int) Base {
	def := defs.Def(kind)
	return Base{
		kind:          kind,
		health:        def.Health,
		initialHealth: def.Health,
		size:          def.Size,
		squareSize:    squareSize,
	}
}

func (b *Base) ID() types.UnitID { return b.id }

// AssignID вызывается доской при регистрации; повторный вызов игнорируется.
func (b *Base) AssignID(id types.UnitID) {
	if b.id == types.NoUnit {
		b.id = id
	}
}

func (b *Base) Kind() defs.Kind    { return b.kind }
func (b *Base) Health() int        { return b.health }
func (b *Base) InitialHealth() int { return b.initialHealth }
func (b *Base) Size() int          { return b.size }
func (b *Base) SquareSize() int    { return b.squareSize }

// ChangeHealth наносит урон (delta < 0) или лечит (delta > 0).
// Здоровье не поднимается выше начального и не переполняется.
func (b *Base) ChangeHealth(delta int) {
	b.health = saturatingAdd(b.health, delta)
	if b.health > b.initialHealth {
		b.health = b.initialHealth
	}
}

// Destroy мгновенно помечает юнит к удалению.
func (b *Base) Destroy() {
	b.health = DestroyedHealth
}

func (b *Base) IsDead() bool {
	return b.health <= 0
}

func (b *Base) IsDamaged() bool {
	return b.health != b.initialHealth
}

// ScaledSize: размер юнита относительно текущего размера клетки.
func (b *Base) ScaledSize() int {
	scaled := b.size * b.squareSize / config.ReferenceSquare
	if scaled < 1 {
		return 1
	}
	return scaled
}

func saturatingAdd(a, delta int) int {
	sum := a + delta
	if delta > 0 && sum < a {
		return math.MaxInt
	}
	if delta < 0 && sum > a {
		return math.MinInt
	}
	return sum
}

func center(p geom.Point, scaledSize int) geom.Point {
	return geom.Point{X: p.X + scaledSize/2, Y: p.Y + scaledSize/2}
}
