// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timestep owns the append-only step log and the final write-out
// selection that packs it into a Solution (spec.md §4.10), mirroring the
// snapshot-then-pack idiom of gofem's fem.Summary/fem.Output accumulation
// (fem/summary.go-style out-array bookkeeping, adapted here to an in-memory
// record instead of file output, since writing is out of scope).
package timestep

// Record is one computed time step, written unconditionally; only a subset
// is later packed into a Solution.
type Record struct {
	Index       int
	Time        float64
	Dt          float64
	P           []float64
	V           [][3]float64
	Fill        []float64
	FreeSurface []bool
	WriteOut    bool
}

// Log is the append-only sequence of time steps for one run.
type Log struct {
	Records []Record
}

// NewLog returns an empty step log.
func NewLog() *Log {
	return &Log{}
}

// Append records one step. v holds one 3-component (M×3) velocity per
// triangle and is stored as given; no z-column padding is done. fill is
// clamped to [0,1] at record time regardless of what fill.Advance already
// clamped to.
func (l *Log) Append(index int, t, dt float64, p []float64, v [][3]float64, fillFactor []float64, freeSurface []bool, writeOut bool) {
	clamped := make([]float64, len(fillFactor))
	for i, f := range fillFactor {
		switch {
		case f < 0:
			clamped[i] = 0
		case f > 1:
			clamped[i] = 1
		default:
			clamped[i] = f
		}
	}
	l.Records = append(l.Records, Record{
		Index: index, Time: t, Dt: dt,
		P: append([]float64(nil), p...),
		V: append([][3]float64(nil), v...),
		Fill: clamped,
		FreeSurface: append([]bool(nil), freeSurface...),
		WriteOut: writeOut,
	})
}

// Solution is the packed, write-out-only view of a completed run
// (spec.md §6).
type Solution struct {
	TimeSteps   int
	Time        []float64
	P           [][]float64
	Fill        [][]float64
	FreeSurface [][]bool
	V           [][][3]float64

	// Iterations is a diagnostic beyond the minimal §6 contract: the number
	// of steps computed, including non-write-out ones: the Index of the last
	// record, so an initial snapshot recorded at index 0 is not counted.
	Iterations int
}

// Pack selects every write-out record, forcing the last record in the log
// to count as write-out regardless of its own flag (spec.md §4.9, §4.10).
// Pack is only ever reached by a run that completed successfully; a stalled
// run returns a NumericalError to its caller instead (spec.md §7).
func (l *Log) Pack() *Solution {
	sol := &Solution{}
	if len(l.Records) == 0 {
		return sol
	}
	last := len(l.Records) - 1
	sol.Iterations = l.Records[last].Index
	for i, r := range l.Records {
		if !r.WriteOut && i != last {
			continue
		}
		sol.Time = append(sol.Time, r.Time)
		sol.P = append(sol.P, r.P)
		sol.Fill = append(sol.Fill, r.Fill)
		sol.FreeSurface = append(sol.FreeSurface, r.FreeSurface)
		sol.V = append(sol.V, r.V)
	}
	sol.TimeSteps = len(sol.Time)
	return sol
}
