package model

import (
	"fmt"
	"math"
)

// Position is an integer map coordinate. The arena reports whole units.
type Position struct {
	X int
	Y int
}

// Velocity is the per-turn displacement of a body.
type Velocity struct {
	VX int
	VY int
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Position) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Distance is shorthand for Distance(p, other).
func (p Position) Distance(other Position) float64 {
	return Distance(p, other)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Magnitude returns the speed, sqrt(vx² + vy²).
func (v Velocity) Magnitude() float64 {
	return math.Hypot(float64(v.VX), float64(v.VY))
}

func (v Velocity) String() string {
	return fmt.Sprintf("<%d, %d>", v.VX, v.VY)
}
