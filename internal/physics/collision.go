package physics

import "gonum.org/v1/gonum/spatial/r2"

// Collided reports whether the discs of a and b overlap. Touching discs have not collided.
func Collided(a, b Body) bool {
	return r2.Norm(r2.Sub(b.Pos, a.Pos)) < a.Radius+b.Radius
}

// collisionBasis returns the frame [normal | tangent] for the pair, where normal points from a to b
// and tangent is normal rotated a quarter turn counter-clockwise. The columns are not normalised.
func collisionBasis(a, b Body) Mat2 {
	n := r2.Sub(b.Pos, a.Pos)
	return Mat2{C0: n, C1: r2.Vec{X: -n.Y, Y: n.X}}
}

// Resolve applies a perfectly elastic collision between a and b along their line of centres.
// Velocities are expressed in the collision basis; the first component (along the normal) is
// exchanged per the 1D elastic law and the second (tangential) is kept. Nothing happens when the
// bodies are already separating along the normal or when the basis is degenerate (same centre).
// It reports whether the velocities were changed. Overlap is not checked; see Collided.
func Resolve(a, b *Body) bool {
	basis := collisionBasis(*a, *b)
	inv, ok := basis.Inverse()
	if !ok {
		return false
	}
	va := inv.MulVec(a.Vel)
	vb := inv.MulVec(b.Vel)
	if va.X <= vb.X {
		return false
	}

	ma, mb := a.Mass(), b.Mass()
	impulse := ma*va.X + mb*vb.X
	closing := -(vb.X - va.X)
	na := (impulse - mb*closing) / (ma + mb)
	nb := closing + na

	a.Vel = basis.MulVec(r2.Vec{X: na, Y: va.Y})
	b.Vel = basis.MulVec(r2.Vec{X: nb, Y: vb.Y})
	return true
}
