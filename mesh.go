// Copyright 2026 The Cloth Simulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cloth

import "cogentcore.org/core/math32"

// Mesh is a fully allocated generation result, owned by the caller.
// All arrays are flat and ready for GPU upload: Vertex is 3 floats per
// vertex, Index is a triangle list, and each constraint array is a flat
// sequence of (vertexA, vertexB, restLength) float triples.
type Mesh struct {

	// vertex rest positions, 3 floats (x, y, z) per vertex, row-major.
	Vertex math32.ArrayF32

	// triangle indices, 6 per quad.
	Index math32.ArrayU32

	// structural constraint triples (direct neighbor edges).
	Structural math32.ArrayF32

	// shear constraint triples (quad diagonals).
	Shear math32.ArrayF32

	// bend constraint triples (skip-one neighbors).
	Bend math32.ArrayF32
}

// Build generates the complete mesh and constraint data for the grid,
// allocating all result arrays internally from [Grid.Counts]. Two calls
// with the same grid produce bit-identical results.
func (gr *Grid) Build() *Mesh {
	ct := gr.Counts()
	ms := &Mesh{
		Vertex:     math32.NewArrayF32(ct.VertexFloats(), ct.VertexFloats()),
		Index:      math32.NewArrayU32(ct.Indices, ct.Indices),
		Structural: math32.NewArrayF32(ct.StructuralFloats(), ct.StructuralFloats()),
		Shear:      math32.NewArrayF32(ct.ShearFloats(), ct.ShearFloats()),
		Bend:       math32.NewArrayF32(ct.BendFloats(), ct.BendFloats()),
	}
	nx, ny := gr.Dims()
	setVertex(ms.Vertex, nx, ny, gr.Scale)
	setIndex(ms.Index, nx, ny)
	setStructural(ms.Structural, ms.Vertex, nx, ny)
	setShear(ms.Shear, ms.Vertex, nx, ny)
	setBend(ms.Bend, ms.Vertex, nx, ny)
	return ms
}

// Counts returns the element counts of the mesh arrays.
func (ms *Mesh) Counts() Counts {
	return Counts{
		Vertices:   len(ms.Vertex) / 3,
		Indices:    len(ms.Index),
		Structural: NumConstraints(ms.Structural),
		Shear:      NumConstraints(ms.Shear),
		Bend:       NumConstraints(ms.Bend),
	}
}

// VertexAt returns the rest position of the given vertex.
func (ms *Mesh) VertexAt(i int) math32.Vector3 {
	var pt math32.Vector3
	pt.FromSlice(ms.Vertex, i*3)
	return pt
}

// StructuralConstraints decodes the structural constraint array.
func (ms *Mesh) StructuralConstraints() []Constraint {
	return Constraints(ms.Structural)
}

// ShearConstraints decodes the shear constraint array.
func (ms *Mesh) ShearConstraints() []Constraint {
	return Constraints(ms.Shear)
}

// BendConstraints decodes the bend constraint array.
func (ms *Mesh) BendConstraints() []Constraint {
	return Constraints(ms.Bend)
}
