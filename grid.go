// Copyright 2026 The Cloth Simulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cloth generates the rest-pose mesh and distance constraints for a
// rectangular cloth grid used in position-based dynamics (PBD) simulation.
// It produces flat vertex positions, a triangulated index buffer, and three
// families of distance constraints (structural, shear, bend) as GPU-ready
// flat arrays, in two phases: [Grid.Counts] reports the exact size of every
// output region, and [Grid.Set] fills caller-allocated arrays of those sizes.
// [Grid.Build] combines both phases into an owned [Mesh] result.
package cloth

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// ErrBufferSize is returned by [Grid.Set] when a caller-provided output
// array does not have exactly the size given by [Grid.Counts].
var ErrBufferSize = errors.New("output array has wrong size")

// Grid specifies a flat rectangular cloth grid. The rest pose spans Scale
// in both x and y, centered on x=0 with the first row at y=0 and z=0
// everywhere. Vertices are laid out row-major: index = row*NumX + col.
type Grid struct {

	// number of vertex columns (x axis). Values below 2 are treated as 2.
	NumX int

	// number of vertex rows (y axis). Values below 2 are treated as 2.
	NumY int

	// physical width and height of the flat rest pose.
	Scale float32
}

// NewGrid returns a Grid with the given number of vertex columns and rows
// and physical rest-pose extent.
func NewGrid(nx, ny int, scale float32) *Grid {
	gr := &Grid{}
	gr.Defaults()
	gr.NumX = nx
	gr.NumY = ny
	gr.Scale = scale
	return gr
}

func (gr *Grid) Defaults() {
	gr.NumX = 2
	gr.NumY = 2
	gr.Scale = 1
}

// Dims returns the grid dimensions clamped to the minimum of 2 vertices
// per axis. All generation uses these clamped values, so Counts and Set
// always agree for the same Grid.
func (gr *Grid) Dims() (nx, ny int) {
	return max(gr.NumX, 2), max(gr.NumY, 2)
}

// Counts has the exact number of elements in every output region for a
// given grid, so that storage can be allocated before [Grid.Set].
type Counts struct {

	// number of vertices, each 3 floats (x, y, z).
	Vertices int

	// number of triangle index entries (6 per quad).
	Indices int

	// number of structural constraints (direct neighbor edges).
	Structural int

	// number of shear constraints (quad diagonals).
	Shear int

	// number of bend constraints (skip-one neighbors).
	Bend int
}

// GridCounts returns the output element counts for a grid with the given
// number of vertex columns and rows (clamped to a minimum of 2 each).
func GridCounts(nx, ny int) Counts {
	nx, ny = max(nx, 2), max(ny, 2)
	nq := (nx - 1) * (ny - 1)
	return Counts{
		Vertices:   nx * ny,
		Indices:    nq * 6,
		Structural: (nx-1)*ny + nx*(ny-1),
		Shear:      nq * 2,
		Bend:       ny*max(nx-2, 0) + nx*max(ny-2, 0),
	}
}

// Counts returns the output element counts for this grid.
func (gr *Grid) Counts() Counts {
	return GridCounts(gr.NumX, gr.NumY)
}

// VertexFloats returns the number of floats in the vertex position array.
func (ct Counts) VertexFloats() int { return ct.Vertices * 3 }

// StructuralFloats returns the number of floats in the structural
// constraint array (3 per constraint).
func (ct Counts) StructuralFloats() int { return ct.Structural * 3 }

// ShearFloats returns the number of floats in the shear constraint array.
func (ct Counts) ShearFloats() int { return ct.Shear * 3 }

// BendFloats returns the number of floats in the bend constraint array.
func (ct Counts) BendFloats() int { return ct.Bend * 3 }

// Set fills the given pre-allocated arrays with the grid mesh and
// constraint data. Every array must have exactly the size given by
// [Grid.Counts] for this grid: vertex is 3 floats per vertex, index is one
// uint32 per triangle index entry, and each constraint array is a flat
// sequence of (vertexA, vertexB, restLength) float triples, with the
// vertex indices carried as float32 values. Array sizes are checked
// before any write; on mismatch Set returns an error wrapping
// [ErrBufferSize] and leaves all arrays untouched.
func (gr *Grid) Set(vertex math32.ArrayF32, index math32.ArrayU32, structural, shear, bend math32.ArrayF32) error {
	ct := gr.Counts()
	if err := ct.check(len(vertex), len(index), len(structural), len(shear), len(bend)); err != nil {
		return err
	}
	nx, ny := gr.Dims()
	setVertex(vertex, nx, ny, gr.Scale)
	setIndex(index, nx, ny)
	setStructural(structural, vertex, nx, ny)
	setShear(shear, vertex, nx, ny)
	setBend(bend, vertex, nx, ny)
	return nil
}

func (ct Counts) check(nVertex, nIndex, nStructural, nShear, nBend int) error {
	chk := func(name string, has, need int) error {
		if has != need {
			return fmt.Errorf("cloth.Grid.Set: %w: %s array must have %d elements, has %d", ErrBufferSize, name, need, has)
		}
		return nil
	}
	if err := chk("vertex", nVertex, ct.VertexFloats()); err != nil {
		return err
	}
	if err := chk("index", nIndex, ct.Indices); err != nil {
		return err
	}
	if err := chk("structural", nStructural, ct.StructuralFloats()); err != nil {
		return err
	}
	if err := chk("shear", nShear, ct.ShearFloats()); err != nil {
		return err
	}
	return chk("bend", nBend, ct.BendFloats())
}

// setVertex sets the rest-pose positions: row-major, x centered on 0,
// y increasing with row from 0, z = 0.
func setVertex(vertex math32.ArrayF32, nx, ny int, scale float32) {
	dx := scale / float32(nx-1)
	dy := scale / float32(ny-1)
	var pt math32.Vector3
	idx := 0
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			pt.Set(float32(i)*dx-0.5*scale, float32(j)*dy, 0)
			vertex.SetVector3(idx*3, pt)
			idx++
		}
	}
}

// setIndex sets the triangle indices, two triangles per quad, quads
// enumerated row-major. The order per quad is (v00, v01, v10),
// (v10, v01, v11), which consumers rely on for index-buffer layout.
func setIndex(index math32.ArrayU32, nx, ny int) {
	ii := 0
	for j := 0; j < ny-1; j++ {
		for i := 0; i < nx-1; i++ {
			v00 := uint32(j*nx + i)
			v10 := v00 + 1
			v01 := v00 + uint32(nx)
			v11 := v01 + 1
			index.Set(ii, v00, v01, v10, v10, v01, v11)
			ii += 6
		}
	}
}
