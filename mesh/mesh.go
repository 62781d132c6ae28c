// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh builds the median-dual control-volume tessellation over a
// triangular surface mesh and holds the resulting flat, dense-id node/
// triangle/edge/CV arrays (spec.md §3, §4.2). Cross-references are plain
// integer ids into these arrays — no cyclic pointers, matching the "arena of
// structs" design called for in spec.md §9.
package mesh

import (
	"rtmflow/geom"
	"rtmflow/material"
)

// Node is an immutable mesh vertex plus its topological cross-references,
// filled in once during Build.
type Node struct {
	Id                int
	X                 geom.Vec3
	IncidentTriangles []int
	IncidentEdges     []int
	AdjacentNodes     []int
}

// Triangle is a 2D element embedded in 3D, carrying its cached geometry and
// its resolved, rotated permeability.
type Triangle struct {
	Id       int
	Nodes    [3]int
	Edges    [3]int // indices into Mesh.Edges, one per triangle edge, not deduplicated
	Tag      string
	Frame    geom.TriFrame
	Material material.PorousMaterial
	MatFrame material.Frame
}

// Edge is a directed triangle edge. Edges are *not* deduplicated across
// triangles: each triangle owns its own three Edge records (spec.md §9).
type Edge struct {
	Id       int
	Nodes    [2]int
	Mid      geom.Vec3
	Normal   geom.Vec3
	Length   float64
	Triangle int
	Local    int // 0, 1 or 2: this edge's position within its owning triangle
}

// SubEdge is half of a CV's boundary contributed by one incident triangle:
// the segment from an edge midpoint to the triangle centroid (or vice
// versa). Normal always points outward from the owning CV (spec.md §4.2
// step 6).
type SubEdge struct {
	Triangle   int
	Start, End geom.Vec3
	Normal     geom.Vec3
	Length     float64
}

// CV is the median-dual control volume bound to one node; CVs[i].Node == i
// for all i (spec.md §3 invariant).
type CV struct {
	Node        int
	SubEdges    []SubEdge
	Area        float64
	Volume      float64
	Fill        float64
	FreeSurface bool
}

// Mesh holds the complete pre-processed CV/FE mesh.
type Mesh struct {
	Nodes     []Node
	Triangles []Triangle
	Edges     []Edge
	CVs       []CV

	// PhysicalNodes maps a boundary-line physical tag to the node ids it
	// covers, carried through from MeshInput for boundary-condition lookup.
	PhysicalNodes map[string][]int
}

// MeshInput is the external mesh-parsing contract (spec.md §6): everything
// the core needs, and nothing about how it was read from disk.
type MeshInput struct {
	Coords          [][3]float64
	Conn            [][3]int
	PhysicalDomains map[string][]int // tag -> triangle indices
	PhysicalNodes   map[string][]int // tag -> node indices
}

// EmptyNodeIds returns the ids of all nodes whose CV has fill < 1.
func (m *Mesh) EmptyNodeIds() []int {
	var ids []int
	for _, cv := range m.CVs {
		if cv.Fill < 1 {
			ids = append(ids, cv.Node)
		}
	}
	return ids
}

// EmptyCount returns the number of CVs with fill < 1.
func (m *Mesh) EmptyCount() int {
	n := 0
	for _, cv := range m.CVs {
		if cv.Fill < 1 {
			n++
		}
	}
	return n
}

// Reset clears all CV fill/free-surface state back to empty, as required
// before re-running a solution on the same mesh (spec.md §5).
func (m *Mesh) Reset() {
	for i := range m.CVs {
		m.CVs[i].Fill = 0
		m.CVs[i].FreeSurface = false
	}
}
