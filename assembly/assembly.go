// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assembly builds the global Darcy stiffness matrix and RHS vector
// from per-triangle contributions (spec.md §4.3), following the
// scatter-into-a-triplet idiom of gofem's fem.ElemDiffu.AddToKb. The
// assembled system is kept backend-agnostic (a plain coordinate list) so
// that linsolve can convert it to either a dense or a sparse representation
// (spec.md §9 "solver backend dispatch").
package assembly

import (
	"github.com/cpmech/gosl/la"

	"rtmflow/mesh"
)

// Entry is one (row, col, value) contribution to the global stiffness
// matrix; duplicate (row, col) pairs accumulate by addition, exactly like
// gosl's la.Triplet.Put.
type Entry struct {
	Row, Col int
	Val      float64
}

// System is the globally assembled, BC-free Darcy system: K·p = f.
type System struct {
	N       int // number of equations (== number of nodes)
	Entries []Entry
	F       []float64

	// Be[tri] == k_tri · ∇N (3x3, la.MatAlloc'd), precomputed at assembly
	// time and reused by velocity recovery (spec.md §4.6).
	Be [][][]float64
}

// Clone returns a copy of the system with its own Entries and F, so that
// boundary-condition application never mutates the pristine assembled K, f
// (spec.md §4.4, §9 "BC application on copies"). The read-only Be cache is
// shared with the original, not copied.
func (s *System) Clone() *System {
	c := &System{N: s.N, Be: s.Be}
	c.Entries = make([]Entry, len(s.Entries))
	copy(c.Entries, s.Entries)
	c.F = make([]float64, len(s.F))
	copy(c.F, s.F)
	return c
}

// Assemble builds the global K (as a coordinate list) and f for the given
// mesh and viscosity mu. K is symmetric positive semi-definite before
// Dirichlet substitution; this is expected (spec.md §4.3). Local element
// matrices are built with la.MatAlloc/la.MatFill, the same scratch-buffer
// idiom gofem's fem.ElemDiffu.AddToKb (fem/e_diffu.go:114,218) uses for its
// own element stiffness.
func Assemble(m *mesh.Mesh, mu float64) *System {
	sys := &System{
		N:  len(m.Nodes),
		F:  make([]float64, len(m.Nodes)),
		Be: make([][][]float64, len(m.Triangles)),
	}
	ke := la.MatAlloc(3, 3)
	for ti := range m.Triangles {
		tri := &m.Triangles[ti]
		k := tri.MatFrame.KWorld
		gradN := tri.Frame.GradN
		coef := tri.Frame.Area * tri.Material.H / mu

		// Be == k_tri · ∇N (3x3), cached for velocity recovery: one
		// allocation per triangle since every Be survives past this call.
		be := la.MatAlloc(3, 3)
		for i := 0; i < 3; i++ {
			for mm := 0; mm < 3; mm++ {
				var sum float64
				for j := 0; j < 3; j++ {
					sum += k[i][j] * gradN[j][mm]
				}
				be[i][mm] = sum
			}
		}
		sys.Be[ti] = be

		// K_e == (∇N)ᵀ · k_tri · ∇N · A · h / μ, a 3x3 scratch matrix
		// cleared and reused across triangles.
		la.MatFill(ke, 0)
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				for i := 0; i < 3; i++ {
					ke[a][b] += gradN[i][a] * be[i][b] * coef
				}
			}
		}

		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				sys.Entries = append(sys.Entries, Entry{
					Row: tri.Nodes[a], Col: tri.Nodes[b], Val: ke[a][b],
				})
			}
		}
	}
	return sys
}
