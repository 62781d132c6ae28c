// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"fmt"

	"github.com/cpmech/gosl/utl"

	"rtmflow/geom"
	"rtmflow/material"
)

// MeshTopologyError reports a control-volume walk that could not find
// exactly two node-incident edges in an incident triangle (spec.md §7).
type MeshTopologyError struct {
	Msg string
}

func (e *MeshTopologyError) Error() string { return e.Msg }

// Build constructs nodes, triangles, edges and control volumes from a
// MeshInput, binding materials/rosettes by physical tag. Order follows
// spec.md §4.2 exactly: nodes, then triangles (materials resolved by tag),
// then edges, then node adjacency, then per-node CVs with outward-normal
// enforcement.
func Build(in MeshInput, reg *material.Registry) (*Mesh, error) {
	m := &Mesh{
		PhysicalNodes: in.PhysicalNodes,
	}

	// step 1: nodes
	m.Nodes = make([]Node, len(in.Coords))
	for i, c := range in.Coords {
		m.Nodes[i] = Node{Id: i, X: geom.Vec3{c[0], c[1], c[2]}}
	}

	// reverse map: triangle index -> physical tag
	triTag := make([]string, len(in.Conn))
	for tag, tris := range in.PhysicalDomains {
		for _, ti := range tris {
			triTag[ti] = tag
		}
	}

	// step 2: triangles
	m.Triangles = make([]Triangle, len(in.Conn))
	for ti, conn := range in.Conn {
		tag := triTag[ti]
		mat, ros, err := reg.Get(tag)
		if err != nil {
			return nil, err
		}
		p0 := m.Nodes[conn[0]].X
		p1 := m.Nodes[conn[1]].X
		p2 := m.Nodes[conn[2]].X
		frame, err := geom.NewTriFrame(p0, p1, p2)
		if err != nil {
			return nil, err
		}
		matFrame, err := material.Project(mat, ros, frame.Normal)
		if err != nil {
			return nil, err
		}
		m.Triangles[ti] = Triangle{
			Id:       ti,
			Nodes:    [3]int{conn[0], conn[1], conn[2]},
			Tag:      tag,
			Frame:    frame,
			Material: mat,
			MatFrame: matFrame,
		}
		for _, vi := range conn {
			m.Nodes[vi].IncidentTriangles = append(m.Nodes[vi].IncidentTriangles, ti)
		}
	}

	// step 3: three edges per triangle, no dedup
	for ti := range m.Triangles {
		conn := m.Triangles[ti].Nodes
		pairs := [3][2]int{{conn[0], conn[1]}, {conn[1], conn[2]}, {conn[2], conn[0]}}
		var edgeIds [3]int
		for local, pr := range pairs {
			a, b := m.Nodes[pr[0]].X, m.Nodes[pr[1]].X
			mid := geom.Mid(a, b)
			n, length := geom.PlanarNormal(a, b)
			eid := len(m.Edges)
			m.Edges = append(m.Edges, Edge{
				Id: eid, Nodes: pr, Mid: mid, Normal: n, Length: length,
				Triangle: ti, Local: local,
			})
			edgeIds[local] = eid
			m.Nodes[pr[0]].IncidentEdges = append(m.Nodes[pr[0]].IncidentEdges, eid)
			m.Nodes[pr[1]].IncidentEdges = append(m.Nodes[pr[1]].IncidentEdges, eid)
		}
		m.Triangles[ti].Edges = edgeIds
	}

	// step 4: node -> adjacent node ids, unioning node_ids of incident triangles minus self
	for ni := range m.Nodes {
		var adj []int
		for _, ti := range m.Nodes[ni].IncidentTriangles {
			for _, vj := range m.Triangles[ti].Nodes {
				if vj != ni {
					adj = append(adj, vj)
				}
			}
		}
		m.Nodes[ni].AdjacentNodes = utl.IntUnique(adj)
	}

	// step 5-7: per-node control volumes
	m.CVs = make([]CV, len(m.Nodes))
	for ni := range m.Nodes {
		cv, err := buildCV(m, ni)
		if err != nil {
			return nil, err
		}
		m.CVs[ni] = cv
	}

	return m, nil
}

// buildCV assembles the median-dual control volume owned by node ni.
func buildCV(m *Mesh, ni int) (CV, error) {
	node := m.Nodes[ni]
	cv := CV{Node: ni}

	for _, ti := range node.IncidentTriangles {
		tri := m.Triangles[ti]

		// find the two edges of this triangle that are incident to ni
		var incident []Edge
		for _, eid := range tri.Edges {
			e := m.Edges[eid]
			if e.Nodes[0] == ni || e.Nodes[1] == ni {
				incident = append(incident, e)
			}
		}
		if len(incident) != 2 {
			return CV{}, &MeshTopologyError{Msg: fmt.Sprintf("node %d has %d (not 2) incident edges in triangle %d", ni, len(incident), ti)}
		}

		m1, m2 := incident[0].Mid, incident[1].Mid
		centroid := tri.Frame.Centroid

		se1 := makeSubEdge(ti, m1, centroid, node.X, centroid)
		se2 := makeSubEdge(ti, centroid, m2, node.X, centroid)
		cv.SubEdges = append(cv.SubEdges, se1, se2)

		cv.Area += geom.ShoelaceXY([]geom.Vec3{node.X, m1, centroid, m2})
		cv.Volume += geom.ShoelaceXY([]geom.Vec3{node.X, m1, centroid, m2}) * tri.Material.H * tri.Material.Phi
	}
	return cv, nil
}

// makeSubEdge builds one sub-edge of a CV and enforces that its normal
// points outward, per spec.md §4.2 step 6: compare the distance of
// (centroid+n) and (centroid-n) to the node; if +n is closer, the computed
// normal points inward and must be flipped.
func makeSubEdge(tri int, start, end, node, centroid geom.Vec3) SubEdge {
	n, length := geom.PlanarNormal(start, end)
	if geom.Dist(geom.Add(centroid, n), node) < geom.Dist(geom.Sub(centroid, n), node) {
		n = geom.Scale(-1, n)
	}
	return SubEdge{Triangle: tri, Start: start, End: end, Normal: n, Length: length}
}
