// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/cpmech/gosl/io"

	"rtmflow/assembly"
	"rtmflow/bc"
	"rtmflow/fill"
	"rtmflow/linsolve"
	"rtmflow/mesh"
	"rtmflow/timestep"
	"rtmflow/velocity"
)

// Solver owns the per-run time-step log and wires mesh, boundary
// conditions, assembly, the pressure solver, velocity recovery and the
// fill engine into the fixed BC->solve->velocity->free-surface->dt->fill
// ->record loop (spec.md §4.9, §5 "Ordering"). Mirrors the role of gofem's
// fem.Solver/fem.Domain pairing, with the nonlinear Newton iteration
// replaced by the single linear solve this spec's steady sub-problem needs
// at every step.
type Solver struct {
	Mesh    *mesh.Mesh
	BCs     *bc.Manager
	Params  ProcessParams
	PSolver linsolve.PressureSolver

	sys *assembly.System
	log *timestep.Log
}

// New wires the fixed collaborators of one simulation. solverType selects
// the pressure-solve backend (spec.md §6 "Solver constructor").
func New(m *mesh.Mesh, bcMgr *bc.Manager, params ProcessParams, solverType linsolve.SolverType) (*Solver, error) {
	params.SetDefault()
	if err := params.Validate(); err != nil {
		return nil, err
	}
	psolver, err := linsolve.New(solverType)
	if err != nil {
		return nil, err
	}
	if err := forceFillInlets(m, bcMgr); err != nil {
		return nil, err
	}
	return &Solver{
		Mesh:    m,
		BCs:     bcMgr,
		Params:  params,
		PSolver: psolver,
		sys:     assembly.Assemble(m, params.Mu),
		log:     timestep.NewLog(),
	}, nil
}

// Reset clears the mesh's fill state and the step log, so the same Solver
// can be re-run on an unchanged mesh+BCs (spec.md §5). Inlet CVs are
// immediately re-forced to fill=1, preserving the invariant that inlets are
// never counted among the empty nodes (spec.md §3).
func (o *Solver) Reset() {
	o.Mesh.Reset()
	o.log = timestep.NewLog()
	forceFillInlets(o.Mesh, o.BCs)
}

// forceFillInlets sets fill=1 on every CV covered by an inlet tag, per the
// invariant that Dirichlet-indexed (inlet) CVs are filled from t=0 and are
// excluded from the empty set (spec.md §3).
func forceFillInlets(m *mesh.Mesh, bcMgr *bc.Manager) error {
	for _, inlet := range bcMgr.Inlets {
		ids, ok := m.PhysicalNodes[inlet.Tag]
		if !ok {
			return &bc.MeshTagError{Tag: inlet.Tag, Context: "inlet boundary"}
		}
		for _, id := range ids {
			m.CVs[id].Fill = 1
		}
	}
	return nil
}

// Solve runs the orchestrator loop to completion and packs the result into
// a Solution (spec.md §4.9). K and f are assembled once, at New; BC
// application happens fresh on a copy every step (spec.md §4.3, §4.4).
func (o *Solver) Solve() (*timestep.Solution, error) {
	var t float64
	nextWoTime := o.Params.WoDeltaTime
	index := 0

	o.recordInitialStep()

	for o.Mesh.EmptyCount() > 0 {
		set, err := o.BCs.Build(o.Mesh, t)
		if err != nil {
			return nil, err
		}
		applied := bc.Apply(o.sys, set)

		p, err := o.PSolver.Solve(applied)
		if err != nil {
			return nil, err
		}

		v := velocity.Recover(o.Mesh, o.sys, p, o.Params.Mu)
		active := fill.ActiveCVs(o.Mesh)

		fluxes := make([]float64, len(active))
		for k, ni := range active {
			fluxes[k] = fill.Flux(o.Mesh, ni, v)
		}

		dt, err := fill.TimeStep(o.Mesh, active, fluxes)
		if err != nil {
			io.Pfred("sim: %v\n", err)
			return nil, err
		}

		writeOut := false
		if o.Params.WoDeltaTime > 0 {
			if t+dt > nextWoTime {
				dt = nextWoTime - t
				nextWoTime += o.Params.WoDeltaTime
				writeOut = true
			}
		} else {
			writeOut = true
		}

		fill.Advance(o.Mesh, active, fluxes, dt, o.Params.FillTolerance)
		t += dt
		index++

		o.log.Append(index, t, dt, p, v, cvFills(o.Mesh), cvFreeSurface(o.Mesh), writeOut)
	}

	return o.log.Pack(), nil
}

// recordInitialStep saves the t=0 snapshot before the loop starts
// (spec.md §4.9 "save_initial_step").
func (o *Solver) recordInitialStep() {
	n := len(o.Mesh.Nodes)
	p0 := make([]float64, n)
	v0 := make([][3]float64, len(o.Mesh.Triangles))
	o.log.Append(0, 0, 0, p0, v0, cvFills(o.Mesh), cvFreeSurface(o.Mesh), true)
}

func cvFills(m *mesh.Mesh) []float64 {
	out := make([]float64, len(m.CVs))
	for i, cv := range m.CVs {
		out[i] = cv.Fill
	}
	return out
}

func cvFreeSurface(m *mesh.Mesh) []bool {
	out := make([]bool, len(m.CVs))
	for i, cv := range m.CVs {
		out[i] = cv.FreeSurface
	}
	return out
}
