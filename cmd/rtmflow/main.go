// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// rtmflow runs a 2D resin-infusion Darcy-flow simulation from a JSON mesh
// file and prints a summary of the resulting write-out steps. Mesh parsing
// and result-file writing are deliberately thin: the core package tree
// consumes an in-memory mesh.MeshInput and produces an in-memory
// timestep.Solution (spec.md §1, "out of scope").
package main

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"rtmflow/bc"
	"rtmflow/geom"
	"rtmflow/linsolve"
	"rtmflow/material"
	"rtmflow/mesh"
	"rtmflow/sim"
)

// inputFile is the on-disk JSON shape consumed by this command; it maps
// directly onto mesh.MeshInput plus the material bindings and inlet list
// the core needs to start a run.
type inputFile struct {
	Coords          [][3]float64        `json:"coords"`
	Conn            [][3]int            `json:"conn"`
	PhysicalDomains map[string][]int    `json:"physical_domains"`
	PhysicalNodes   map[string][]int    `json:"physical_nodes"`
	Materials       map[string]matEntry `json:"materials"`
	Inlets          []inletEntry        `json:"inlets"`
	Mu              float64             `json:"mu"`
	WoDeltaTime     float64             `json:"wo_delta_time"`
	FillTolerance   float64             `json:"fill_tolerance"`
	SolverType      string              `json:"solver_type"`
}

type matEntry struct {
	K         [3]float64 `json:"k"`
	Phi       float64    `json:"phi"`
	H         float64    `json:"h"`
	RosetteU  [3]float64 `json:"rosette_u"`
}

type inletEntry struct {
	Tag     string  `json:"tag"`
	Pressure float64 `json:"pressure"`
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.Pfred("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	fnamepath, _ := io.ArgToFilename(0, "", ".json", true)
	verbose := io.ArgToBool(1, true)

	if verbose {
		io.PfWhite("\nrtmflow -- 2D resin-infusion Darcy-flow simulator\n\n")
		io.Pf("%v\n", io.ArgsTable(
			"input mesh file", "fnamepath", fnamepath,
		))
	}

	in, err := readInputFile(fnamepath)
	if err != nil {
		chk.Panic("%v", err)
	}

	reg := material.NewRegistry()
	for tag, me := range in.Materials {
		pm := material.PorousMaterial{K: me.K, Phi: me.Phi, H: me.H}
		ros := material.Rosette{U: geom.Vec3(me.RosetteU)}
		reg.Bind(tag, pm, ros)
	}

	m, err := mesh.Build(mesh.MeshInput{
		Coords:          in.Coords,
		Conn:            in.Conn,
		PhysicalDomains: in.PhysicalDomains,
		PhysicalNodes:   in.PhysicalNodes,
	}, reg)
	if err != nil {
		chk.Panic("%v", err)
	}

	bcMgr := bc.NewManager()
	for _, inlet := range in.Inlets {
		bcMgr.AddInlet(inlet.Tag, inlet.Pressure)
	}

	solverType := linsolve.SolverType(in.SolverType)
	if solverType == "" {
		solverType = linsolve.DirectSparse
	}

	solver, err := sim.New(m, bcMgr, sim.ProcessParams{
		Mu:            in.Mu,
		WoDeltaTime:   in.WoDeltaTime,
		FillTolerance: in.FillTolerance,
	}, solverType)
	if err != nil {
		chk.Panic("%v", err)
	}

	sol, err := solver.Solve()
	if err != nil {
		chk.Panic("%v", err)
	}

	if verbose {
		io.Pfgreen("\nfinished: %d write-out steps (%d iterations total)\n", sol.TimeSteps, sol.Iterations)
		for i, t := range sol.Time {
			io.Pf("  step %3d: t=%.6g\n", i, t)
		}
	}
}

func readInputFile(path string) (*inputFile, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("cannot read input file %q: %v", path, err)
	}
	var in inputFile
	if err := json.Unmarshal(b, &in); err != nil {
		return nil, chk.Err("cannot parse input file %q: %v", path, err)
	}
	return &in, nil
}
