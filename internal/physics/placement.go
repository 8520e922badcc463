package physics

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"
)

// Options controls how New builds a randomly populated simulation.
// Seed == 0 uses a time-based seed.
type Options struct {
	Width   float64
	Height  float64
	Count   int
	Gravity float64

	MinRadius float64
	MaxRadius float64
	MaxSpeed  float64
	Density   float64

	Seed                 uint64
	MaxPlacementAttempts int
}

// DefaultOptions returns two balls of radius 1–3 with speeds up to 25 per axis in a 20×20 arena.
func DefaultOptions() Options {
	return Options{
		Width:                20,
		Height:               20,
		Count:                2,
		Gravity:              DefaultGravity,
		MinRadius:            1,
		MaxRadius:            3,
		MaxSpeed:             25,
		Density:              DefaultDensity,
		Seed:                 0,
		MaxPlacementAttempts: 10000,
	}
}

func (o Options) validate() (Arena, error) {
	arena, err := NewArena(o.Width, o.Height)
	if err != nil {
		return Arena{}, err
	}
	switch {
	case o.Count < 0:
		return Arena{}, fmt.Errorf("%w: body count %d", ErrInvalidConfiguration, o.Count)
	case !(o.MinRadius > 0) || !(o.MaxRadius > 0):
		return Arena{}, fmt.Errorf("%w: radius bounds [%g, %g] must be positive", ErrInvalidConfiguration, o.MinRadius, o.MaxRadius)
	case o.MinRadius > o.MaxRadius:
		return Arena{}, fmt.Errorf("%w: min radius %g above max radius %g", ErrInvalidConfiguration, o.MinRadius, o.MaxRadius)
	case !arena.Fits(o.MaxRadius):
		return Arena{}, fmt.Errorf("%w: radius %g does not fit a %gx%g arena", ErrInvalidConfiguration, o.MaxRadius, o.Width, o.Height)
	case o.MaxSpeed < 0 || !finite(o.MaxSpeed):
		return Arena{}, fmt.Errorf("%w: max speed %g", ErrInvalidConfiguration, o.MaxSpeed)
	case !(o.Density > 0) || !finite(o.Density):
		return Arena{}, fmt.Errorf("%w: density %g", ErrInvalidConfiguration, o.Density)
	case math.IsNaN(o.Gravity) || math.IsInf(o.Gravity, 0):
		return Arena{}, fmt.Errorf("%w: gravity %g", ErrInvalidConfiguration, o.Gravity)
	case o.MaxPlacementAttempts <= 0:
		return Arena{}, fmt.Errorf("%w: placement attempts %d", ErrInvalidConfiguration, o.MaxPlacementAttempts)
	}
	return arena, nil
}

// New returns a simulation with opts.Count randomly placed bodies. Each candidate body is drawn
// with a uniform radius, a uniform velocity in [-MaxSpeed, MaxSpeed] per axis and a uniform
// position that keeps its disc inside the arena; candidates overlapping an accepted body are
// discarded. Running out of MaxPlacementAttempts candidates returns ErrInvalidConfiguration.
func New(opts Options) (*Simulation, error) {
	arena, err := opts.validate()
	if err != nil {
		return nil, err
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	bodies := make([]Body, 0, opts.Count)
	attempts := 0
	for len(bodies) < opts.Count {
		if attempts == opts.MaxPlacementAttempts {
			return nil, fmt.Errorf("%w: placed %d of %d bodies in %d attempts", ErrInvalidConfiguration, len(bodies), opts.Count, attempts)
		}
		attempts++
		candidate := randomBody(rng, arena, opts)
		if overlapsAny(candidate, bodies) {
			continue
		}
		bodies = append(bodies, candidate)
	}
	return &Simulation{arena: arena, gravity: opts.Gravity, bodies: bodies}, nil
}

func randomBody(rng *rand.Rand, arena Arena, opts Options) Body {
	r := uniform(rng, opts.MinRadius, opts.MaxRadius)
	return Body{
		Pos: r2.Vec{
			X: uniform(rng, r, arena.Width-r),
			Y: uniform(rng, r, arena.Height-r),
		},
		Vel: r2.Vec{
			X: uniform(rng, -opts.MaxSpeed, opts.MaxSpeed),
			Y: uniform(rng, -opts.MaxSpeed, opts.MaxSpeed),
		},
		Radius:  r,
		Density: opts.Density,
	}
}

func overlapsAny(b Body, accepted []Body) bool {
	for _, other := range accepted {
		if Collided(b, other) {
			return true
		}
	}
	return false
}

// uniform returns a value in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
