// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "fmt"

// NumericalError reports a degenerate triangle: zero area or a singular
// Jacobian pseudoinverse (spec.md §7).
type NumericalError struct {
	Msg string
}

func (e *NumericalError) Error() string { return e.Msg }

// dNdXi holds the natural-coordinate gradients of the three linear triangle
// shape functions N0=1-ξ-η, N1=ξ, N2=η; row m, column {∂/∂ξ, ∂/∂η}.
var dNdXi = [3][2]float64{
	{-1, -1},
	{1, 0},
	{0, 1},
}

// TriFrame holds the per-triangle frame and derived quantities computed once
// at mesh pre-processing time: unit normal, area, centroid, and the
// shape-function gradient expressed in the ambient 3D frame.
//
// GradN[i][m] == ∂N_m/∂x_i, a 3×3 matrix (one row per world axis, one column
// per local vertex). Because the triangle is flat, the component of GradN
// along the unit normal is identically zero; storing the full 3×3 matrix
// (rather than a reduced 2×3 tangent-plane form) is what lets assembly
// compute (∇N)ᵀ·k·∇N directly against the world-frame permeability tensor
// k_tri produced by the rosette projection (see material.Project), without a
// second change of basis.
type TriFrame struct {
	Normal   Vec3
	Area     float64
	Centroid Vec3
	GradN    [3][3]float64
}

// NewTriFrame computes the frame of the triangle (p0,p1,p2) given in
// counter-clockwise order. It returns a *NumericalError if the triangle is
// degenerate (zero area or singular JᵀJ).
func NewTriFrame(p0, p1, p2 Vec3) (TriFrame, error) {
	var f TriFrame

	e1 := Sub(p1, p0) // ∂x/∂ξ
	e2 := Sub(p2, p0) // ∂x/∂η

	cr := Cross(e1, e2)
	crNorm := Norm(cr)
	if crNorm < 1e-15 {
		return f, &NumericalError{Msg: fmt.Sprintf("degenerate triangle: zero area for vertices %v, %v, %v", p0, p1, p2)}
	}
	f.Normal = Scale(1/crNorm, cr)
	f.Area = 0.5 * crNorm
	f.Centroid = Scale(1.0/3.0, Add(Add(p0, p1), p2))

	// J == [e1 e2], a 3x2 matrix mapping (ξ,η) to world coordinates.
	// J+ == pseudoinverse of J == inv(JᵀJ)·Jᵀ, a 2x3 matrix.
	jtj00 := Dot(e1, e1)
	jtj01 := Dot(e1, e2)
	jtj11 := Dot(e2, e2)
	det := jtj00*jtj11 - jtj01*jtj01
	if det < 1e-15*crNorm*crNorm {
		return f, &NumericalError{Msg: fmt.Sprintf("degenerate triangle: singular JᵀJ for vertices %v, %v, %v", p0, p1, p2)}
	}
	inv00 := jtj11 / det
	inv01 := -jtj01 / det
	inv11 := jtj00 / det

	// Jpinv[a][i] == (JᵀJ)⁻¹ · Jᵀ, row a in {ξ,η}, column i in {x,y,z}.
	var jpinv [2][3]float64
	for i := 0; i < 3; i++ {
		e1i, e2i := e1[i], e2[i]
		jpinv[0][i] = inv00*e1i + inv01*e2i
		jpinv[1][i] = inv01*e1i + inv11*e2i
	}

	// dNdx[m][i] == Σ_a dNdXi[m][a] * Jpinv[a][i]; GradN == transpose(dNdx).
	for m := 0; m < 3; m++ {
		for i := 0; i < 3; i++ {
			f.GradN[i][m] = dNdXi[m][0]*jpinv[0][i] + dNdXi[m][1]*jpinv[1][i]
		}
	}
	return f, nil
}
