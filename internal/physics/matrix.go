package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// detEpsilon is the smallest |det| a basis may have and still be inverted.
const detEpsilon = 1e-12

// Mat2 is a 2×2 matrix stored by columns: C0 is the first column, C1 the second.
//
//	| C0.X  C1.X |
//	| C0.Y  C1.Y |
type Mat2 struct {
	C0 r2.Vec
	C1 r2.Vec
}

// Det returns the determinant.
func (m Mat2) Det() float64 {
	return m.C0.X*m.C1.Y - m.C1.X*m.C0.Y
}

// Inverse returns m⁻¹. ok is false when m is singular or too close to it to invert without
// blowing up, in which case the returned matrix is the zero value.
func (m Mat2) Inverse() (inv Mat2, ok bool) {
	det := m.Det()
	if math.Abs(det) < detEpsilon || math.IsNaN(det) {
		return Mat2{}, false
	}
	// [[a b] [c d]]⁻¹ = 1/det · [[d -b] [-c a]], written column by column.
	a, b, c, d := m.C0.X, m.C1.X, m.C0.Y, m.C1.Y
	return Mat2{
		C0: r2.Vec{X: d / det, Y: -c / det},
		C1: r2.Vec{X: -b / det, Y: a / det},
	}, true
}

// MulVec returns m·v.
func (m Mat2) MulVec(v r2.Vec) r2.Vec {
	return r2.Add(r2.Scale(v.X, m.C0), r2.Scale(v.Y, m.C1))
}
