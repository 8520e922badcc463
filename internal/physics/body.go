package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultDensity is the density given to bodies created without an explicit one.
const DefaultDensity = 1.0

// Body is a circular disc in the arena. Mass is derived from density and area, never stored.
type Body struct {
	Pos     r2.Vec
	Vel     r2.Vec
	Radius  float64
	Density float64
}

// NewBody returns a body at pos moving with vel. Density is DefaultDensity.
func NewBody(pos, vel r2.Vec, radius float64) Body {
	return Body{Pos: pos, Vel: vel, Radius: radius, Density: DefaultDensity}
}

// Mass is density times disc area.
func (b Body) Mass() float64 {
	return b.Density * math.Pi * b.Radius * b.Radius
}

// Momentum returns mass times velocity.
func (b Body) Momentum() r2.Vec {
	return r2.Scale(b.Mass(), b.Vel)
}

// KineticEnergy returns ½·m·|v|².
func (b Body) KineticEnergy() float64 {
	return 0.5 * b.Mass() * r2.Norm2(b.Vel)
}

// Circle returns the body's current extent for rendering.
func (b Body) Circle() Circle {
	return Circle{X: b.Pos.X, Y: b.Pos.Y, Radius: b.Radius}
}

// Circle is the read-only view of one body handed to renderers.
type Circle struct {
	X      float64
	Y      float64
	Radius float64
}

// Bounds returns the bounding box of the circle as (left, bottom, width, height), the form
// an ellipse shape is usually built from.
func (c Circle) Bounds() (x, y, w, h float64) {
	return c.X - c.Radius, c.Y - c.Radius, 2 * c.Radius, 2 * c.Radius
}
