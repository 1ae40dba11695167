// pkg/geom/vector.go
package geom

import "math"

// DirectionVector is a per-tick displacement: a unit direction scaled by speed.
type DirectionVector struct {
	DX, DY float64
}

// NewDirectionVector normalises source->target and scales it by speed.
// Coincident points give the zero vector.
func NewDirectionVector(source, target Point, speed float64) DirectionVector {
	dx := float64(target.X) - float64(source.X)
	dy := float64(target.Y) - float64(source.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return DirectionVector{}
	}
	return DirectionVector{DX: dx / length * speed, DY: dy / length * speed}
}

// Length returns the magnitude of the vector, i.e. the speed.
func (v DirectionVector) Length() float64 {
	return math.Hypot(v.DX, v.DY)
}
