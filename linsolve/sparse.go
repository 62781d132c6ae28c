// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve

import (
	"fmt"

	"github.com/cpmech/gosl/la"

	"rtmflow/assembly"
)

// SparseSolver solves K·p = f with gosl's sparse direct solver, following the
// InitR/Fact/SolveR/Free lifecycle used by gofem's fem.Domain.LinSol
// (fem/s_implicit.go) for the DIRECT_SPARSE backend named in spec.md §6.
type SparseSolver struct{}

// Solve implements PressureSolver.
func (o *SparseSolver) Solve(sys *assembly.System) ([]float64, error) {
	n := sys.N
	var tri la.Triplet
	tri.Init(n, n, len(sys.Entries))
	for _, e := range sys.Entries {
		tri.Put(e.Row, e.Col, e.Val)
	}

	solver := la.GetSolver("umfpack")
	defer solver.Free()

	symmetric, verbose, timing := true, false, false
	if err := solver.InitR(&tri, symmetric, verbose, timing); err != nil {
		return nil, &NumericalError{Msg: fmt.Sprintf("cannot initialise sparse solver: %v", err)}
	}
	if err := solver.Fact(); err != nil {
		return nil, &NumericalError{Msg: fmt.Sprintf("sparse factorisation failed: %v", err)}
	}

	x := make([]float64, n)
	if err := solver.SolveR(x, sys.F, false); err != nil {
		return nil, &NumericalError{Msg: fmt.Sprintf("sparse solve failed: %v", err)}
	}
	return x, nil
}
