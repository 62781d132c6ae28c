// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sim wires mesh, boundary conditions, assembly, the pressure
// solver, velocity recovery and the fill engine into the orchestrator loop
// (spec.md §4.9), following the stage-driven imp/exp solver loop of gofem's
// fem.Solver (fem/s_implicit.go) generalized from a nonlinear Newton loop to
// the simpler linear-per-step fill loop this spec calls for.
package sim

import "github.com/cpmech/gosl/io"

// ProcessParams holds the global-to-one-run numeric knobs (spec.md §6).
// Zero-valued fields are filled in by SetDefault, matching the
// SetDefault/Validate convention used throughout the pack's inp package
// (inp/sim.go's LinSolData.SetDefault, SolverData.SetDefault).
type ProcessParams struct {
	Mu            float64 // dynamic viscosity, Pa.s
	WoDeltaTime   float64 // write-out schedule; <=0 means write out every step
	FillTolerance float64 // snap-to-1 tolerance, in [0,1)
}

// SetDefault fills in zero-valued fields with conservative defaults,
// matching spec.md §7's ConfigError recovery: "warn and proceed with
// defaults".
func (o *ProcessParams) SetDefault() {
	if o.Mu == 0 {
		io.Pfyel("sim: process parameters not assigned; using defaults\n")
		o.Mu = 1.0
	}
	// WoDeltaTime's zero value already means "write out every step" per
	// spec.md §6, so it needs no defaulting.
	if o.FillTolerance < 0 {
		o.FillTolerance = 0
	}
}

// Validate checks the parameters are physically sane.
func (o ProcessParams) Validate() error {
	if o.Mu <= 0 {
		return &ConfigError{Field: "Mu", Reason: "must be > 0"}
	}
	if o.FillTolerance < 0 || o.FillTolerance >= 1 {
		return &ConfigError{Field: "FillTolerance", Reason: "must be in [0,1)"}
	}
	return nil
}
