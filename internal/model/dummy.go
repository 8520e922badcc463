package model

import (
	"fmt"
	"math"

	"bouncing-balls/internal/physics"
)

// Dummy is a placeholder model: one ball starting near the lower-left corner, no gravity and no
// other bodies. Its wall test flips velocity whenever the ball is past a wall, without checking
// the direction of travel, so it can jitter against a wall; use it to check a renderer, not physics.
type Dummy struct {
	arena  physics.Arena
	x, y   float64
	vx, vy float64
	r      float64
}

// NewDummy returns a Dummy in a width×height arena.
func NewDummy(width, height float64) (*Dummy, error) {
	arena, err := physics.NewArena(width, height)
	if err != nil {
		return nil, err
	}
	if !arena.Fits(1) {
		return nil, fmt.Errorf("%w: arena %gx%g too small for the dummy ball", physics.ErrInvalidConfiguration, width, height)
	}
	return &Dummy{arena: arena, x: 1, y: 1, vx: 2.3, vy: 1, r: 1}, nil
}

// Advance moves the ball in a straight line, bouncing off walls.
func (d *Dummy) Advance(dt float64) error {
	if err := checkStep(dt); err != nil {
		return err
	}
	if d.x < d.r || d.x > d.arena.Width-d.r {
		d.vx = -d.vx
	}
	if d.y < d.r || d.y > d.arena.Height-d.r {
		d.vy = -d.vy
	}
	d.x += d.vx * dt
	d.y += d.vy * dt
	return nil
}

// Snapshot returns the single ball.
func (d *Dummy) Snapshot() []physics.Circle {
	return []physics.Circle{{X: d.x, Y: d.y, Radius: d.r}}
}

func checkStep(dt float64) error {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return fmt.Errorf("%w: dt %g", physics.ErrInvalidStep, dt)
	}
	return nil
}
