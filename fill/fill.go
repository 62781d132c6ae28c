// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fill implements free-surface detection, CV flux, CFL-like time
// step selection and fill-factor advancement (spec.md §4.7, §4.8), following
// the per-ip flux accumulation idiom of gofem's fem.ElemDiffu.Update
// (fem/e_diffu.go) generalized from per-element to per-CV sub-edge
// accumulation.
package fill

import (
	"rtmflow/mesh"
)

// NumericalError reports stalled flow: no active control volume has
// positive inflow, so the domain cannot progress (spec.md §7).
type NumericalError struct {
	Msg string
}

func (e *NumericalError) Error() string { return e.Msg }

// ActiveCVs returns the ids of every CV on the free surface: fill<1 and at
// least one topologically adjacent CV has fill>=1 (spec.md §4.7). The
// FreeSurface flag on each returned CV is also set.
func ActiveCVs(m *mesh.Mesh) []int {
	var active []int
	for i := range m.CVs {
		m.CVs[i].FreeSurface = false
	}
	for i := range m.CVs {
		if m.CVs[i].Fill >= 1 {
			continue
		}
		for _, adj := range m.Nodes[i].AdjacentNodes {
			if m.CVs[adj].Fill >= 1 {
				m.CVs[i].FreeSurface = true
				active = append(active, i)
				break
			}
		}
	}
	return active
}

// Flux computes the net volumetric inflow rate for one CV, summing over its
// sub-edges. Both sub-edge normals are outward from the CV; the leading
// minus sign converts an inward-pointing velocity into positive inflow
// (spec.md §4.7, Open Question 3 — inflow convention chosen and enforced
// consistently here).
func Flux(m *mesh.Mesh, cvNode int, v [][3]float64) float64 {
	cv := &m.CVs[cvNode]
	var phi float64
	for _, se := range cv.SubEdges {
		ve := v[se.Triangle]
		h := m.Triangles[se.Triangle].Material.H
		vn := ve[0]*se.Normal[0] + ve[1]*se.Normal[1] + ve[2]*se.Normal[2]
		phi += -vn * se.Length * h
	}
	return phi
}

// TimeStep computes the global CFL-like dt that exactly fills the
// fastest-advancing active CV (spec.md §4.7). fluxes must be pre-computed
// (one entry per entry of active, via Flux). Returns a NumericalError
// ("stalled flow") if no active CV has positive flux.
func TimeStep(m *mesh.Mesh, active []int, fluxes []float64) (float64, error) {
	dt := -1.0
	found := false
	for k, ni := range active {
		phi := fluxes[k]
		if phi <= 0 {
			continue
		}
		cv := &m.CVs[ni]
		dtCV := (1 - cv.Fill) * cv.Volume / phi
		if !found || dtCV < dt {
			dt = dtCV
			found = true
		}
	}
	if !found {
		return 0, &NumericalError{Msg: "stalled flow: no active control volume has positive inflow"}
	}
	return dt, nil
}

// Advance updates fill factors for every active CV given the step dt and
// its pre-computed fluxes, clamping to [0,1] and snapping to 1 within
// tolerance (spec.md §4.8).
func Advance(m *mesh.Mesh, active []int, fluxes []float64, dt, tolerance float64) {
	for k, ni := range active {
		phi := fluxes[k]
		cv := &m.CVs[ni]
		f := cv.Fill + phi*dt/cv.Volume
		if f < 0 {
			f = 0
		}
		if f > 1 {
			f = 1
		}
		if f >= 1-tolerance {
			f = 1
		}
		cv.Fill = f
	}
}
