// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bc implements boundary-condition management and the row/column
// identity Dirichlet substitution of spec.md §4.4, generalizing the
// Lagrange-multiplier EssentialBc bookkeeping of gofem's fem.EssentialBcs
// into the simpler row/column-identity method this spec calls for.
package bc

import (
	"github.com/cpmech/gosl/fun"

	"rtmflow/assembly"
	"rtmflow/mesh"
)

// Inlet prescribes a pressure at every node covered by a physical tag. The
// value is a fun.Func so a future stage could drive it with something other
// than a constant, matching the teacher's EssentialBc.Fcn convention; a
// plain pressure level is just a fun.Cte.
type Inlet struct {
	Tag   string
	PFunc fun.Func
}

// Manager holds the set of inlets bound to a mesh's physical-node tags.
type Manager struct {
	Inlets []Inlet
}

// NewManager returns a BC manager with no inlets.
func NewManager() *Manager {
	return &Manager{}
}

// AddInlet registers an inlet. Tags are resolved against mesh.PhysicalNodes
// lazily, when Build is called, so that tag typos fail with a MeshTagError
// at bind time rather than silently matching nothing.
func (o *Manager) AddInlet(tag string, pressure float64) {
	o.Inlets = append(o.Inlets, Inlet{Tag: tag, PFunc: &fun.Cte{C: pressure}})
}

// Set is the combined Dirichlet set for one time step: node id -> prescribed
// pressure. Built fresh every step because the empty-node set changes as the
// front advances (spec.md §4.4).
type Set struct {
	Idx  []int
	Vals []float64
}

// Build forms the combined Dirichlet set at time t: inlets first (by
// insertion order, so an inlet always wins a conflict with an empty-node
// entry), then every node whose CV has fill<1 and is not already present.
func (o *Manager) Build(m *mesh.Mesh, t float64) (Set, error) {
	var set Set
	seen := make(map[int]bool)

	for _, inlet := range o.Inlets {
		ids, ok := m.PhysicalNodes[inlet.Tag]
		if !ok {
			return Set{}, &MeshTagError{Tag: inlet.Tag, Context: "inlet boundary"}
		}
		v := inlet.PFunc.F(t, nil)
		for _, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true
			set.Idx = append(set.Idx, id)
			set.Vals = append(set.Vals, v)
		}
	}

	for _, id := range m.EmptyNodeIds() {
		if seen[id] {
			continue
		}
		seen[id] = true
		set.Idx = append(set.Idx, id)
		set.Vals = append(set.Vals, 0)
	}

	return set, nil
}

// MeshTagError reports a boundary-condition tag with no matching mesh entry.
type MeshTagError struct {
	Tag     string
	Context string
}

func (e *MeshTagError) Error() string {
	return "Mesh contains unassigned boundary tag: " + e.Tag + " (" + e.Context + ")"
}

// Apply imposes the combined Dirichlet set on a clone of sys via the
// row/column identity method: K[i,:]=0, K[:,i]=0, K[i,i]=1, f[i]=v_i, with
// the eliminated columns' contribution folded into the RHS of the remaining
// rows so that the reduced system still solves for the correct free
// pressures. Zeroing both rows and columns (not just rows) is what keeps K
// symmetric positive definite post-substitution (spec.md §8 invariant 5).
// The pristine system passed in is never mutated (spec.md §4.4, §9).
func Apply(sys *assembly.System, set Set) *assembly.System {
	out := sys.Clone()

	dirichlet := make(map[int]float64, len(set.Idx))
	for k, i := range set.Idx {
		dirichlet[i] = set.Vals[k]
	}

	// fold eliminated columns into the RHS of the surviving rows before
	// dropping any entry.
	for _, e := range out.Entries {
		if _, rowFixed := dirichlet[e.Row]; rowFixed {
			continue
		}
		if v, colFixed := dirichlet[e.Col]; colFixed {
			out.F[e.Row] -= e.Val * v
		}
	}

	kept := out.Entries[:0]
	for _, e := range out.Entries {
		_, rowFixed := dirichlet[e.Row]
		_, colFixed := dirichlet[e.Col]
		if rowFixed || colFixed {
			continue
		}
		kept = append(kept, e)
	}
	out.Entries = kept

	for i, v := range dirichlet {
		out.Entries = append(out.Entries, assembly.Entry{Row: i, Col: i, Val: 1})
		out.F[i] = v
	}
	return out
}
