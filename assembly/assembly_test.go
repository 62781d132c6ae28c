// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"rtmflow/geom"
	"rtmflow/material"
	"rtmflow/mesh"
)

func oneTriangleMesh(tst *testing.T) *mesh.Mesh {
	reg := material.NewRegistry()
	reg.Bind("body", material.PorousMaterial{K: [3]float64{1e-10, 1e-10, 1e-10}, Phi: 0.5, H: 1.0},
		material.Rosette{U: geom.Vec3{1, 0, 0}})

	in := mesh.MeshInput{
		Coords:          [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Conn:            [][3]int{{0, 1, 2}},
		PhysicalDomains: map[string][]int{"body": {0}},
		PhysicalNodes:   map[string][]int{},
	}
	m, err := mesh.Build(in, reg)
	if err != nil {
		tst.Fatalf("unexpected error building mesh: %v", err)
	}
	return m
}

func TestAssemble01RowSumsZero(tst *testing.T) {

	chk.PrintTitle("Assemble01: each local element row sums to zero (constant-pressure mode)")

	m := oneTriangleMesh(tst)
	sys := Assemble(m, 0.1)

	rowSum := make([]float64, sys.N)
	for _, e := range sys.Entries {
		rowSum[e.Row] += e.Val
	}
	for i, s := range rowSum {
		chk.Scalar(tst, "row sum", 1e-12, s, 0.0)
		_ = i
	}
}

func TestAssemble02Symmetric(tst *testing.T) {

	chk.PrintTitle("Assemble02: K is symmetric before BC application")

	m := oneTriangleMesh(tst)
	sys := Assemble(m, 0.1)

	dense := make(map[[2]int]float64)
	for _, e := range sys.Entries {
		dense[[2]int{e.Row, e.Col}] += e.Val
	}
	for k, v := range dense {
		vt := dense[[2]int{k[1], k[0]}]
		chk.Scalar(tst, "K symmetry", 1e-12, v, vt)
	}
}

func TestSystemClone01(tst *testing.T) {

	chk.PrintTitle("SystemClone01: Clone is independent of the original")

	m := oneTriangleMesh(tst)
	sys := Assemble(m, 0.1)
	clone := sys.Clone()

	clone.F[0] = 999
	clone.Entries[0].Val = 999

	if sys.F[0] == 999 {
		tst.Fatalf("mutating the clone's F leaked into the original")
	}
	if sys.Entries[0].Val == 999 {
		tst.Fatalf("mutating the clone's Entries leaked into the original")
	}
}
