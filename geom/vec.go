// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the geometry primitives needed to build the
// median-dual control-volume tessellation over a triangular surface mesh:
// triangle frames, Jacobians, shape-function gradients and planar edge
// normals.
package geom

import (
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Vec3 is a point or direction in the ambient 3D space.
type Vec3 [3]float64

// Sub returns a-b.
func Sub(a, b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Add returns a+b.
func Add(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Scale returns s*a.
func Scale(s float64, a Vec3) Vec3 {
	return Vec3{s * a[0], s * a[1], s * a[2]}
}

// Mid returns the midpoint of a and b.
func Mid(a, b Vec3) Vec3 {
	return Vec3{0.5 * (a[0] + b[0]), 0.5 * (a[1] + b[1]), 0.5 * (a[2] + b[2])}
}

// Norm returns the Euclidean length of v.
func Norm(v Vec3) float64 {
	return la.VecNorm(v[:])
}

// Cross returns a×b.
func Cross(a, b Vec3) (c Vec3) {
	utl.Cross3d(c[:], a[:], b[:])
	return
}

// Dot returns a·b.
func Dot(a, b Vec3) float64 {
	return utl.Dot3d(a[:], b[:])
}

// Unit returns v normalized; ok is false if v is (numerically) the zero vector.
func Unit(v Vec3) (u Vec3, ok bool) {
	n := Norm(v)
	if n < 1e-15 {
		return Vec3{}, false
	}
	return Scale(1/n, v), true
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec3) float64 {
	return Norm(Sub(a, b))
}

// PlanarNormal returns the xy-projected outward-sense normal of the segment
// a->b: (Δy/‖Δ‖, -Δx/‖Δ‖, 0), and the planar (xy) length of the segment.
func PlanarNormal(a, b Vec3) (n Vec3, length float64) {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	length = math.Hypot(dx, dy)
	if length < 1e-15 {
		return Vec3{}, 0
	}
	n = Vec3{dy / length, -dx / length, 0}
	return
}

// ShoelaceXY returns the (unsigned) area of the planar polygon with the
// given vertices, projected onto the xy-plane, via the shoelace formula.
func ShoelaceXY(pts []Vec3) float64 {
	var sum float64
	n := len(pts)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += pts[i][0]*pts[j][1] - pts[j][0]*pts[i][1]
	}
	return math.Abs(sum) / 2
}
