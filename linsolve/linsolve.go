// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linsolve dispatches the assembled pressure system to a concrete
// linear-algebra backend, generalizing gofem's name-keyed la.GetSolver
// registry (fem/domain.go) into an explicit, backend-agnostic interface
// (spec.md §4.5, §9 "solver backend dispatch").
package linsolve

import (
	"rtmflow/assembly"
)

// SolverType selects a pressure-solve backend.
type SolverType string

// Supported solver backends (spec.md §6).
const (
	DirectDense  SolverType = "DIRECT_DENSE"
	DirectSparse SolverType = "DIRECT_SPARSE"
)

// PressureSolver solves K·p = f for the assembled (post-BC) system.
type PressureSolver interface {
	Solve(sys *assembly.System) (p []float64, err error)
}

// SolverTypeError reports an unsupported solver type (spec.md §7).
type SolverTypeError struct {
	Type SolverType
}

func (e *SolverTypeError) Error() string {
	return "unsupported solver type: " + string(e.Type)
}

// New returns the concrete solver for the requested backend.
func New(t SolverType) (PressureSolver, error) {
	switch t {
	case DirectDense:
		return &DenseSolver{}, nil
	case DirectSparse:
		return &SparseSolver{}, nil
	default:
		return nil, &SolverTypeError{Type: t}
	}
}
