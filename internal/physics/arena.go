package physics

import (
	"fmt"
	"math"
)

// Arena is the walled rectangle [0,Width] × [0,Height] in world units. Y points up: the floor is y = 0.
type Arena struct {
	Width  float64
	Height float64
}

// NewArena returns an arena with the given size. Both sides must be positive and finite.
func NewArena(width, height float64) (Arena, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return Arena{}, fmt.Errorf("%w: arena %gx%g", ErrInvalidConfiguration, width, height)
	}
	return Arena{Width: width, Height: height}, nil
}

// Fits reports whether a disc of radius r has any valid centre position in the arena.
func (a Arena) Fits(r float64) bool {
	return 2*r <= a.Width && 2*r <= a.Height
}

// Contains reports whether the whole disc of b lies inside the arena.
func (a Arena) Contains(b Body) bool {
	return b.Pos.X >= b.Radius && b.Pos.X <= a.Width-b.Radius &&
		b.Pos.Y >= b.Radius && b.Pos.Y <= a.Height-b.Radius
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
