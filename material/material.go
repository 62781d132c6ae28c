// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material implements the principal-axis permeability model and its
// per-triangle rosette projection, grounded on the material-binding idiom of
// gofem's inp.MatDb (name-keyed registry, fail at bind time on missing tag).
package material

import (
	"fmt"

	"rtmflow/geom"
)

// NumericalError reports a rosette direction that cannot be projected onto
// a triangle's tangent plane (spec.md §7).
type NumericalError struct {
	Msg string
}

func (e *NumericalError) Error() string { return e.Msg }

// MeshTagError reports a triangle whose physical tag has no material
// binding (spec.md §7).
type MeshTagError struct {
	Tag string
}

func (e *MeshTagError) Error() string {
	return "Mesh contains unassigned material tag: " + e.Tag
}

// PorousMaterial holds the principal-axis permeability tensor and the
// homogenized thickness/porosity of one physical-tag's worth of laminate.
type PorousMaterial struct {
	K   [3]float64 // principal permeabilities k1,k2,k3 (k3 is normal to the laminate)
	Phi float64    // porosity, in (0,1]
	H   float64    // effective thickness, > 0
}

// Rosette is a reference in-plane direction used to orient anisotropic
// permeability on each triangle. Per design decision (spec.md §9 Open
// Question 4) it stores a pure unit direction, not a point-minus-direction
// pair, so there is no sign ambiguity to "salvage" through normalization.
type Rosette struct {
	U geom.Vec3
}

// Frame is the rotated material frame R=[û v̂ n̂] (columns) bound to one
// triangle, together with the permeability tensor rotated into world
// coordinates.
type Frame struct {
	U, V, N geom.Vec3
	KWorld  [3][3]float64
}

// Project projects the rosette direction onto the triangle's tangent plane
// and rotates the principal permeability tensor into world coordinates
// (spec.md §4.1). It returns a NumericalError-flavored error when the
// rosette direction is parallel to the triangle normal.
func Project(mat PorousMaterial, ros Rosette, normal geom.Vec3) (Frame, error) {
	var fr Frame

	uPerp := geom.Sub(ros.U, geom.Scale(geom.Dot(ros.U, normal), normal))
	u, ok := geom.Unit(uPerp)
	if !ok {
		return fr, &NumericalError{Msg: fmt.Sprintf("rosette direction %v is parallel to triangle normal %v: cannot project", ros.U, normal)}
	}
	v := geom.Cross(u, normal)
	v, ok = geom.Unit(v)
	if !ok {
		return fr, &NumericalError{Msg: fmt.Sprintf("rosette direction %v produced a degenerate tangent frame", ros.U)}
	}
	fr.U, fr.V, fr.N = u, v, normal

	// R = [u v n] as columns; KWorld = R * diag(k) * Rᵀ.
	r := [3][3]float64{
		{u[0], v[0], normal[0]},
		{u[1], v[1], normal[1]},
		{u[2], v[2], normal[2]},
	}
	k := [3]float64{mat.K[0], mat.K[1], mat.K[2]}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for c := 0; c < 3; c++ {
				sum += r[i][c] * k[c] * r[j][c]
			}
			fr.KWorld[i][j] = sum
		}
	}
	return fr, nil
}

// Registry binds physical-domain tags to (PorousMaterial, Rosette) pairs, as
// gofem's inp.MatDb binds tags to solid/conduct/reten/porous models. Tag
// lookup failure at bind time is fatal (spec.md §6).
type Registry struct {
	byTag map[string]entry
}

type entry struct {
	mat PorousMaterial
	ros Rosette
}

// NewRegistry returns an empty material registry.
func NewRegistry() *Registry {
	return &Registry{byTag: make(map[string]entry)}
}

// Bind associates a physical-domain tag with a material and rosette.
func (o *Registry) Bind(tag string, mat PorousMaterial, ros Rosette) {
	o.byTag[tag] = entry{mat, ros}
}

// Get returns the (material, rosette) pair bound to tag, or an error if the
// tag has no binding.
func (o *Registry) Get(tag string) (PorousMaterial, Rosette, error) {
	e, ok := o.byTag[tag]
	if !ok {
		return PorousMaterial{}, Rosette{}, &MeshTagError{Tag: tag}
	}
	return e.mat, e.ros, nil
}
