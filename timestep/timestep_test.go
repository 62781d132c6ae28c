// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timestep

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestPack01OnlyWriteOutPlusFinal(tst *testing.T) {

	chk.PrintTitle("Pack01: packing keeps only write-out steps, plus the forced final step")

	log := NewLog()
	log.Append(0, 0, 0, []float64{0}, [][3]float64{{0, 0, 0}}, []float64{0}, []bool{false}, true)
	log.Append(1, 1, 1, []float64{1}, [][3]float64{{0, 0, 0}}, []float64{0.5}, []bool{false}, false)
	log.Append(2, 2, 1, []float64{2}, [][3]float64{{0, 0, 0}}, []float64{0.9}, []bool{false}, false) // not write_out, but last

	sol := log.Pack()

	chk.IntAssert(sol.TimeSteps, 2)
	chk.Scalar(tst, "time[0]", 1e-15, sol.Time[0], 0)
	chk.Scalar(tst, "time[1] (forced final)", 1e-15, sol.Time[1], 2)
}

func TestPack02FillClamped(tst *testing.T) {

	chk.PrintTitle("Pack02: fill factor is clamped to [0,1] at record time")

	log := NewLog()
	log.Append(0, 0, 0, []float64{0}, [][3]float64{{0, 0, 0}}, []float64{-0.1, 1.2}, []bool{false, false}, true)

	sol := log.Pack()
	chk.Scalar(tst, "fill clamped low", 1e-15, sol.Fill[0][0], 0.0)
	chk.Scalar(tst, "fill clamped high", 1e-15, sol.Fill[0][1], 1.0)
}
