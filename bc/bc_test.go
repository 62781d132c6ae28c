// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bc

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"rtmflow/assembly"
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
		PhysicalNodes:   map[string][]int{"left": {0}},
	}
	m, err := mesh.Build(in, reg)
	if err != nil {
		tst.Fatalf("unexpected error building mesh: %v", err)
	}
	return m
}

func TestBuild01InletWinsOverEmpty(tst *testing.T) {

	chk.PrintTitle("Build01: inlet value wins when a node is both inlet and empty")

	m := oneTriangleMesh(tst)
	mgr := NewManager()
	mgr.AddInlet("left", 1e5)

	set, err := mgr.Build(m, 0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	found := false
	for i, idx := range set.Idx {
		if idx == 0 {
			found = true
			chk.Scalar(tst, "inlet value wins", 1e-10, set.Vals[i], 1e5)
		}
	}
	if !found {
		tst.Fatalf("node 0 (inlet + empty) missing from combined Dirichlet set")
	}
}

func TestBuild02UnknownTag(tst *testing.T) {

	chk.PrintTitle("Build02: unknown inlet tag errors")

	m := oneTriangleMesh(tst)
	mgr := NewManager()
	mgr.AddInlet("nonexistent", 1e5)

	_, err := mgr.Build(m, 0)
	if err == nil {
		tst.Fatalf("expected a MeshTagError for an unknown inlet tag")
	}
	if _, ok := err.(*MeshTagError); !ok {
		tst.Fatalf("expected *MeshTagError, got %T", err)
	}
}

func TestApply01RowsAndColumnsEliminated(tst *testing.T) {

	chk.PrintTitle("Apply01: Dirichlet rows and columns are identity-diagonal, original untouched")

	m := oneTriangleMesh(tst)
	sys := assembly.Assemble(m, 0.1)
	original := sys.Clone()

	set := Set{Idx: []int{0}, Vals: []float64{5.0}}
	out := Apply(sys, set)

	// row 0 / column 0 must be identity
	var diag float64
	offDiagFound := false
	for _, e := range out.Entries {
		if e.Row == 0 && e.Col == 0 {
			diag = e.Val
		}
		if (e.Row == 0 && e.Col != 0) || (e.Col == 0 && e.Row != 0) {
			offDiagFound = true
		}
	}
	chk.Scalar(tst, "K[0][0]", 1e-15, diag, 1.0)
	if offDiagFound {
		tst.Fatalf("Dirichlet row/column 0 still has off-diagonal entries after Apply")
	}
	chk.Scalar(tst, "f[0]", 1e-15, out.F[0], 5.0)

	// the pristine system must be unchanged
	for i, e := range sys.Entries {
		chk.Scalar(tst, "pristine K unchanged", 1e-15, e.Val, original.Entries[i].Val)
	}
}
