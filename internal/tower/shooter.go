// internal/tower/shooter.go
package tower

import (
	"go-hive-defense/internal/defs"
	"go-hive-defense/internal/event"
	"go-hive-defense/internal/types"
	"go-hive-defense/internal/unit"
)

// Shooter бьёт первого врага в радиусе раз в delay тиков.
// Перезарядка начинается заряженной, поэтому первый выстрел: сразу.
type Shooter struct {
	PoweredBase
	reach      int
	damage     int
	delay      int
	cooldown   int
	lastTarget types.UnitID
}

func NewShooter(x, y, squareSize int) *Shooter {
	def := defs.Def(defs.KindShooter)
	return &Shooter{
		PoweredBase: newPoweredBase(defs.KindShooter, x, y, squareSize),
		reach:       def.Range,
		damage:      def.Damage,
		delay:       def.Delay,
		cooldown:    def.Delay,
	}
}

func (s *Shooter) Range() int    { return s.reach }
func (s *Shooter) Damage() int   { return s.damage }
func (s *Shooter) Cooldown() int { return s.cooldown }

// LastTarget: враг, по которому выстрелили в последний запитанный тик.
func (s *Shooter) LastTarget() types.UnitID { return s.lastTarget }

func (s *Shooter) Tick(b unit.Board) {
	if s.IsPowered() {
		s.poweredTick(b)
	}
}

func (s *Shooter) poweredTick(b unit.Board) {
	s.lastTarget = types.NoUnit
	s.cooldown++
	if s.cooldown < s.delay {
		return
	}

	topLeft, bottomRight := unit.Area(s.GridPosition(), s.reach)
	target := b.FirstEnemyInArea(topLeft, bottomRight)
	if target == nil {
		return
	}
	target.ChangeHealth(-s.damage)
	s.cooldown = 0
	s.lastTarget = target.ID()
	b.Dispatch(event.Event{
		Type: event.ShotFired,
		Data: event.ShotData{Shooter: s.ID(), Target: target.ID(), Damage: s.damage},
	})
}
