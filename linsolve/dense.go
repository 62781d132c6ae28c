// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linsolve

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"rtmflow/assembly"
)

// NumericalError reports a singular system or a failed factorization/solve
// (spec.md §7).
type NumericalError struct {
	Msg string
}

func (e *NumericalError) Error() string { return e.Msg }

// DenseSolver solves K·p = f with a dense LU factorization, enriching the
// teacher's sparse-only stack with gonum's mat package (as used for dense
// numerical geometry in the sdfx pack repo) for the DIRECT_DENSE backend
// named in spec.md §6.
type DenseSolver struct{}

// Solve implements PressureSolver.
func (o *DenseSolver) Solve(sys *assembly.System) ([]float64, error) {
	n := sys.N
	a := mat.NewDense(n, n, nil)
	for _, e := range sys.Entries {
		a.Set(e.Row, e.Col, a.At(e.Row, e.Col)+e.Val)
	}
	b := mat.NewVecDense(n, sys.F)

	var lu mat.LU
	lu.Factorize(a)
	if cond := lu.Cond(); cond > 1e15 {
		return nil, &NumericalError{Msg: fmt.Sprintf("singular linear system after BC application (cond=%g)", cond)}
	}

	x := mat.NewVecDense(n, nil)
	if err := lu.SolveVecTo(x, false, b); err != nil {
		return nil, &NumericalError{Msg: fmt.Sprintf("dense solve failed: %v", err)}
	}
	return append([]float64(nil), x.RawVector().Data...), nil
}
