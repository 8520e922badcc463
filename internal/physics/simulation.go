package physics

import (
	"fmt"
	"math"
)

const (
	// DefaultGravity is the vertical acceleration applied each step. Negative pulls toward y = 0.
	DefaultGravity = -5.0
	// FloorEpsilon is how far above the floor a sunk body is put back, so that gravity cannot
	// hold it below the wall between two bounces.
	FloorEpsilon = 1e-4
)

// Simulation owns an arena and a fixed, ordered set of bodies and advances them in time.
// Body order never changes after construction. A Simulation is not safe for concurrent use;
// wrap it (see model.Locked) when rendering reads while physics runs.
type Simulation struct {
	arena   Arena
	gravity float64
	bodies  []Body
}

// NewWithBodies returns a simulation over a copy of bodies. Every body must have a positive
// radius and density, lie inside the arena, and not overlap another body.
func NewWithBodies(arena Arena, gravity float64, bodies []Body) (*Simulation, error) {
	if _, err := NewArena(arena.Width, arena.Height); err != nil {
		return nil, err
	}
	if math.IsNaN(gravity) || math.IsInf(gravity, 0) {
		return nil, fmt.Errorf("%w: gravity %g", ErrInvalidConfiguration, gravity)
	}
	own := make([]Body, len(bodies))
	copy(own, bodies)
	for i, b := range own {
		if !(b.Radius > 0) || !(b.Density > 0) || !finite(b.Radius) || !finite(b.Density) {
			return nil, fmt.Errorf("%w: body %d has radius %g and density %g", ErrInvalidConfiguration, i, b.Radius, b.Density)
		}
		if !finite(b.Vel.X) || !finite(b.Vel.Y) {
			return nil, fmt.Errorf("%w: body %d has velocity %v", ErrInvalidConfiguration, i, b.Vel)
		}
		if !arena.Contains(b) {
			return nil, fmt.Errorf("%w: body %d at (%g, %g) is outside the arena", ErrInvalidConfiguration, i, b.Pos.X, b.Pos.Y)
		}
		for j := 0; j < i; j++ {
			if Collided(b, own[j]) {
				return nil, fmt.Errorf("%w: bodies %d and %d overlap", ErrInvalidConfiguration, j, i)
			}
		}
	}
	return &Simulation{arena: arena, gravity: gravity, bodies: own}, nil
}

// Arena returns the simulation's arena.
func (s *Simulation) Arena() Arena {
	return s.arena
}

// Gravity returns the vertical acceleration.
func (s *Simulation) Gravity() float64 {
	return s.gravity
}

// Len returns the number of bodies.
func (s *Simulation) Len() int {
	return len(s.bodies)
}

// Bodies returns a copy of the current body state, in simulation order.
func (s *Simulation) Bodies() []Body {
	out := make([]Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}

// Snapshot returns the circular extent of every body, in simulation order.
func (s *Simulation) Snapshot() []Circle {
	out := make([]Circle, len(s.bodies))
	for i, b := range s.bodies {
		out[i] = b.Circle()
	}
	return out
}

// KineticEnergy returns the total kinetic energy of all bodies.
func (s *Simulation) KineticEnergy() float64 {
	var e float64
	for _, b := range s.bodies {
		e += b.KineticEnergy()
	}
	return e
}

// Advance moves the simulation forward by dt seconds. The phases always run in this order:
// wall bounce for every body, collision resolution for every unordered pair, then integration
// for every body. dt must be positive and finite; otherwise ErrInvalidStep is returned and
// nothing changes.
func (s *Simulation) Advance(dt float64) error {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return fmt.Errorf("%w: dt %g", ErrInvalidStep, dt)
	}
	for i := range s.bodies {
		s.wallBounce(&s.bodies[i])
	}
	// Each pair once per step: i over all bodies, j below i.
	for i := range s.bodies {
		for j := 0; j < i; j++ {
			if Collided(s.bodies[i], s.bodies[j]) {
				Resolve(&s.bodies[i], &s.bodies[j])
			}
		}
	}
	for i := range s.bodies {
		s.integrate(&s.bodies[i], dt)
		s.contain(&s.bodies[i])
	}
	return nil
}

// wallBounce flips a velocity component only when the body is past a wall and still moving
// out through it, so a body resting on the floor is not flipped twice.
func (s *Simulation) wallBounce(b *Body) {
	r := b.Radius
	if (b.Pos.X < r && b.Vel.X < 0) || (b.Pos.X > s.arena.Width-r && b.Vel.X > 0) {
		b.Vel.X = -b.Vel.X
	}
	if (b.Pos.Y < r && b.Vel.Y < 0) || (b.Pos.Y > s.arena.Height-r && b.Vel.Y > 0) {
		b.Vel.Y = -b.Vel.Y
	}
	if b.Pos.Y < r {
		b.Pos.Y = r + FloorEpsilon
	}
}

// integrate is a semi-implicit Euler step: velocity from gravity first, then position from the
// new velocity.
func (s *Simulation) integrate(b *Body, dt float64) {
	b.Vel.Y += s.gravity * dt
	b.Pos.X += b.Vel.X * dt
	b.Pos.Y += b.Vel.Y * dt
}

// contain mirrors a body that integration carried through a wall back inside it.
func (s *Simulation) contain(b *Body) {
	b.Pos.X, b.Vel.X = reflectAxis(b.Pos.X, b.Vel.X, b.Radius, s.arena.Width-b.Radius)
	b.Pos.Y, b.Vel.Y = reflectAxis(b.Pos.Y, b.Vel.Y, b.Radius, s.arena.Height-b.Radius)
}

// reflectAxis keeps p within [lo, hi]. A position past a bound is mirrored across it and the
// velocity turned inward; if the mirror image still falls outside, p is clamped.
func reflectAxis(p, v, lo, hi float64) (float64, float64) {
	switch {
	case p < lo:
		p = 2*lo - p
		if v < 0 {
			v = -v
		}
	case p > hi:
		p = 2*hi - p
		if v > 0 {
			v = -v
		}
	default:
		return p, v
	}
	return math.Min(math.Max(p, lo), hi), v
}
