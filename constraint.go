// Copyright 2026 The Cloth Simulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cloth

import "cogentcore.org/core/math32"

// Constraint is one distance constraint between two grid vertices, used by
// a PBD solver to keep the vertices at RestLength apart. The three
// constraint families differ only in which vertex pairs they connect:
// structural constraints connect direct grid neighbors and resist stretch,
// shear constraints connect quad diagonals and resist in-plane shear, and
// bend constraints connect vertices two grid steps apart and resist
// out-of-plane folding.
type Constraint struct {

	// first vertex index (row-major: row*nx + col).
	A uint32

	// second vertex index.
	B uint32

	// distance between the two vertices in the rest pose.
	RestLength float32
}

// In the flat constraint arrays, each constraint is 3 consecutive floats:
// (A, B, RestLength), with the vertex indices stored as float32 values so
// that the whole array is one homogeneous numeric buffer for GPU upload.
// float32 represents integers up to 2^24 exactly, far beyond any realistic
// vertex count.

// ToSlice writes the constraint as a float triple at the given float
// offset in the array.
func (cn Constraint) ToSlice(ary math32.ArrayF32, offset int) {
	ary.Set(offset, float32(cn.A), float32(cn.B), cn.RestLength)
}

// FromSlice sets the constraint from the float triple at the given float
// offset in the array.
func (cn *Constraint) FromSlice(ary math32.ArrayF32, offset int) {
	cn.A = uint32(ary[offset])
	cn.B = uint32(ary[offset+1])
	cn.RestLength = ary[offset+2]
}

// NumConstraints returns the number of constraints in a flat constraint
// array (3 floats per constraint).
func NumConstraints(ary math32.ArrayF32) int {
	return len(ary) / 3
}

// ConstraintAt returns the i'th constraint in a flat constraint array.
func ConstraintAt(ary math32.ArrayF32, i int) Constraint {
	var cn Constraint
	cn.FromSlice(ary, i*3)
	return cn
}

// Constraints decodes a flat constraint array into a slice of [Constraint].
// The flat array is the canonical form; this is a convenience for Go
// consumers and tests.
func Constraints(ary math32.ArrayF32) []Constraint {
	cs := make([]Constraint, NumConstraints(ary))
	for i := range cs {
		cs[i].FromSlice(ary, i*3)
	}
	return cs
}

// restLength returns the distance between two vertices in the generated
// rest-pose vertex array. Rest lengths are always measured from the
// positions actually written, not derived from grid spacing, so they stay
// correct if the position policy changes.
func restLength(vertex math32.ArrayF32, a, b int) float32 {
	var pa, pb math32.Vector3
	pa.FromSlice(vertex, a*3)
	pb.FromSlice(vertex, b*3)
	return pa.DistanceTo(pb)
}

// setStructural emits the structural constraints: all horizontal neighbor
// pairs row-major, then all vertical neighbor pairs row-major.
func setStructural(structural, vertex math32.ArrayF32, nx, ny int) {
	ci := 0
	for j := 0; j < ny; j++ {
		for i := 0; i < nx-1; i++ {
			a := j*nx + i
			b := a + 1
			structural.Set(ci, float32(a), float32(b), restLength(vertex, a, b))
			ci += 3
		}
	}
	for j := 0; j < ny-1; j++ {
		for i := 0; i < nx; i++ {
			a := j*nx + i
			b := a + nx
			structural.Set(ci, float32(a), float32(b), restLength(vertex, a, b))
			ci += 3
		}
	}
}

// setShear emits the shear constraints: per quad, row-major, the diagonal
// (v00, v11) then the anti-diagonal (v10, v01).
func setShear(shear, vertex math32.ArrayF32, nx, ny int) {
	ci := 0
	for j := 0; j < ny-1; j++ {
		for i := 0; i < nx-1; i++ {
			v00 := j*nx + i
			v10 := v00 + 1
			v01 := v00 + nx
			v11 := v01 + 1
			shear.Set(ci, float32(v00), float32(v11), restLength(vertex, v00, v11))
			shear.Set(ci+3, float32(v10), float32(v01), restLength(vertex, v10, v01))
			ci += 6
		}
	}
}

// setBend emits the bend constraints: all horizontal skip-one pairs
// row-major (only when nx > 2), then all vertical skip-one pairs row-major
// (only when ny > 2).
func setBend(bend, vertex math32.ArrayF32, nx, ny int) {
	ci := 0
	for j := 0; j < ny; j++ {
		for i := 0; i < nx-2; i++ {
			a := j*nx + i
			b := a + 2
			bend.Set(ci, float32(a), float32(b), restLength(vertex, a, b))
			ci += 3
		}
	}
	for j := 0; j < ny-2; j++ {
		for i := 0; i < nx; i++ {
			a := j*nx + i
			b := a + 2*nx
			bend.Set(ci, float32(a), float32(b), restLength(vertex, a, b))
			ci += 3
		}
	}
}
