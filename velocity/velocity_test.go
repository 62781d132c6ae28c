// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package velocity

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"rtmflow/assembly"
	"rtmflow/geom"
	"rtmflow/material"
	"rtmflow/mesh"
)

func TestRecover01UniformGradient(tst *testing.T) {

	chk.PrintTitle("Recover01: a unit-slope pressure field gives a uniform velocity")

	reg := material.NewRegistry()
	reg.Bind("body", material.PorousMaterial{K: [3]float64{1, 1, 1}, Phi: 0.5, H: 1.0},
		material.Rosette{U: geom.Vec3{1, 0, 0}})

	in := mesh.MeshInput{
		Coords:          [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Conn:            [][3]int{{0, 1, 2}},
		PhysicalDomains: map[string][]int{"body": {0}},
		PhysicalNodes:   map[string][]int{},
	}
	m, err := mesh.Build(in, reg)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	sys := assembly.Assemble(m, 1.0)

	// p = x, so dp/dx = 1, dp/dy = 0 => v = -(1/mu)*k*grad(p) = (-1, 0, 0)
	p := []float64{0, 1, 0}
	v := Recover(m, sys, p, 1.0)

	chk.Scalar(tst, "v.x", 1e-10, v[0][0], -1.0)
	chk.Scalar(tst, "v.y", 1e-10, v[0][1], 0.0)
}
