// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package velocity recovers per-triangle Darcy velocities from nodal
// pressures (spec.md §4.6), mirroring the post-processing pass gofem's
// diffusion element runs after a pressure solve (fem/e_diffu.go,
// OutIpsData's gradient recovery).
package velocity

import (
	"rtmflow/assembly"
	"rtmflow/mesh"
)

// Recover computes v_e = -(1/mu) * Be * p[node_ids_e] for every triangle,
// using the Be = k_tri*grad(N) cached at assembly time. Returns one velocity
// vector per triangle, in the triangle's world frame.
func Recover(m *mesh.Mesh, sys *assembly.System, p []float64, mu float64) [][3]float64 {
	v := make([][3]float64, len(m.Triangles))
	for ti := range m.Triangles {
		tri := &m.Triangles[ti]
		be := sys.Be[ti] // [][]float64, 3x3, la.MatAlloc'd in assembly.Assemble
		var pn [3]float64
		for a := 0; a < 3; a++ {
			pn[a] = p[tri.Nodes[a]]
		}
		var ve [3]float64
		for i := 0; i < 3; i++ {
			var sum float64
			for a := 0; a < 3; a++ {
				sum += be[i][a] * pn[a]
			}
			ve[i] = -sum / mu
		}
		v[ti] = ve
	}
	return v
}
