// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestNewTriFrame01(tst *testing.T) {

	chk.PrintTitle("NewTriFrame01: unit right triangle in the xy-plane")

	p0 := Vec3{0, 0, 0}
	p1 := Vec3{1, 0, 0}
	p2 := Vec3{0, 1, 0}

	f, err := NewTriFrame(p0, p1, p2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	chk.Scalar(tst, "area", 1e-15, f.Area, 0.5)
	chk.Scalar(tst, "normal.z", 1e-15, f.Normal[2], 1.0)
	chk.Scalar(tst, "centroid.x", 1e-15, f.Centroid[0], 1.0/3.0)
	chk.Scalar(tst, "centroid.y", 1e-15, f.Centroid[1], 1.0/3.0)

	// shape functions sum to 1 everywhere; their gradients must sum to 0
	var sum [3]float64
	for i := 0; i < 3; i++ {
		for m := 0; m < 3; m++ {
			sum[i] += f.GradN[i][m]
		}
	}
	for i := 0; i < 3; i++ {
		chk.Scalar(tst, "sum of GradN rows", 1e-13, sum[i], 0.0)
	}
}

func TestNewTriFrame02(tst *testing.T) {

	chk.PrintTitle("NewTriFrame02: degenerate (collinear) triangle errors")

	p0 := Vec3{0, 0, 0}
	p1 := Vec3{1, 0, 0}
	p2 := Vec3{2, 0, 0}

	_, err := NewTriFrame(p0, p1, p2)
	if err == nil {
		tst.Fatalf("expected a NumericalError for a degenerate triangle")
	}
	if _, ok := err.(*NumericalError); !ok {
		tst.Fatalf("expected *NumericalError, got %T", err)
	}
}

func TestPlanarNormal01(tst *testing.T) {

	chk.PrintTitle("PlanarNormal01: unit segment along x")

	n, length := PlanarNormal(Vec3{0, 0, 0}, Vec3{1, 0, 0})
	chk.Scalar(tst, "length", 1e-15, length, 1.0)
	chk.Scalar(tst, "n.x", 1e-15, n[0], 0.0)
	chk.Scalar(tst, "n.y", 1e-15, n[1], -1.0)
}

func TestShoelaceXY01(tst *testing.T) {

	chk.PrintTitle("ShoelaceXY01: unit square")

	area := ShoelaceXY([]Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}})
	chk.Scalar(tst, "area", 1e-15, area, 1.0)
}
