package model

import (
	"fmt"

	"bouncing-balls/internal/physics"
)

// Model is a simulation a host loop can drive: Advance moves it forward by dt seconds and
// Snapshot returns every ball's current circle, always in the same order.
type Model interface {
	Advance(dt float64) error
	Snapshot() []physics.Circle
}

// Kinds accepted by New.
const (
	KindPhysics = "physics"
	KindDummy   = "dummy"
)

// New builds the model named by kind. "physics" is the full simulation built from opts;
// "dummy" is a single gravity-free ball in an arena of the same size.
func New(kind string, opts physics.Options) (Model, error) {
	switch kind {
	case KindPhysics, "":
		sim, err := physics.New(opts)
		if err != nil {
			return nil, err
		}
		return sim, nil
	case KindDummy:
		d, err := NewDummy(opts.Width, opts.Height)
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("model: unknown kind %q (want %q or %q)", kind, KindPhysics, KindDummy)
	}
}

var (
	_ Model = (*physics.Simulation)(nil)
	_ Model = (*Dummy)(nil)
	_ Model = (*Locked)(nil)
)
