// Copyright 2026 The Cloth Simulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cloth

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

const standardTol = 1.0e-6

// pair returns the vertex pair of a constraint as plain ints, for
// comparing against expected enumeration orders.
func pair(cn Constraint) [2]int {
	return [2]int{int(cn.A), int(cn.B)}
}

func TestGrid3x3(t *testing.T) {
	gr := NewGrid(3, 3, 2)
	ms := gr.Build()

	// dx = dy = 1: x in {-1, 0, 1}, y in {0, 1, 2}, z = 0
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			pt := ms.VertexAt(j*3 + i)
			tolassert.EqualTol(t, float32(i-1), pt.X, standardTol)
			tolassert.EqualTol(t, float32(j), pt.Y, standardTol)
			assert.Equal(t, float32(0), pt.Z)
		}
	}

	// quad (0,0): v00=0, v10=1, v01=3, v11=4
	assert.Equal(t, []uint32{0, 3, 1, 1, 3, 4}, []uint32(ms.Index[:6]))
	assert.Equal(t, 24, len(ms.Index))

	st := ms.StructuralConstraints()
	if assert.Equal(t, 12, len(st)) {
		// horizontal row-major, then vertical row-major
		want := [][2]int{
			{0, 1}, {1, 2}, {3, 4}, {4, 5}, {6, 7}, {7, 8},
			{0, 3}, {1, 4}, {2, 5}, {3, 6}, {4, 7}, {5, 8},
		}
		for i, cn := range st {
			assert.Equal(t, want[i], pair(cn), "structural %d", i)
			tolassert.EqualTol(t, 1, cn.RestLength, standardTol, "structural %d", i)
		}
	}

	sh := ms.ShearConstraints()
	if assert.Equal(t, 8, len(sh)) {
		// per quad row-major: diagonal (v00, v11), then (v10, v01)
		want := [][2]int{
			{0, 4}, {1, 3}, {1, 5}, {2, 4},
			{3, 7}, {4, 6}, {4, 8}, {5, 7},
		}
		for i, cn := range sh {
			assert.Equal(t, want[i], pair(cn), "shear %d", i)
			tolassert.EqualTol(t, math32.Sqrt2, cn.RestLength, standardTol, "shear %d", i)
		}
	}

	bd := ms.BendConstraints()
	if assert.Equal(t, 6, len(bd)) {
		// horizontal skip-pairs, then vertical skip-pairs
		want := [][2]int{
			{0, 2}, {3, 5}, {6, 8},
			{0, 6}, {1, 7}, {2, 8},
		}
		for i, cn := range bd {
			assert.Equal(t, want[i], pair(cn), "bend %d", i)
			tolassert.EqualTol(t, 2, cn.RestLength, standardTol, "bend %d", i)
		}
	}
}

func TestRestLengths(t *testing.T) {
	gr := NewGrid(5, 4, 3)
	ms := gr.Build()
	nx, ny := gr.Dims()
	dx := gr.Scale / float32(nx-1)
	dy := gr.Scale / float32(ny-1)
	diag := math32.Sqrt(dx*dx + dy*dy)

	for i, cn := range ms.StructuralConstraints() {
		if cn.B == cn.A+1 {
			tolassert.EqualTol(t, dx, cn.RestLength, standardTol, "structural %d", i)
		} else {
			assert.Equal(t, cn.A+uint32(nx), cn.B, "structural %d", i)
			tolassert.EqualTol(t, dy, cn.RestLength, standardTol, "structural %d", i)
		}
	}
	for i, cn := range ms.ShearConstraints() {
		tolassert.EqualTol(t, diag, cn.RestLength, standardTol, "shear %d", i)
	}
	for i, cn := range ms.BendConstraints() {
		if cn.B == cn.A+2 {
			tolassert.EqualTol(t, 2*dx, cn.RestLength, standardTol, "bend %d", i)
		} else {
			assert.Equal(t, cn.A+uint32(2*nx), cn.B, "bend %d", i)
			tolassert.EqualTol(t, 2*dy, cn.RestLength, standardTol, "bend %d", i)
		}
	}
}

func TestConstraintArrays(t *testing.T) {
	ms := NewGrid(3, 3, 2).Build()

	assert.Equal(t, 12, NumConstraints(ms.Structural))
	first := ConstraintAt(ms.Structural, 0)
	assert.Equal(t, Constraint{A: 0, B: 1, RestLength: 1}, first)
	assert.Equal(t, Constraint{A: 0, B: 4, RestLength: math32.Sqrt(2)}, ConstraintAt(ms.Shear, 0))

	// indices are carried as float32 values in the flat arrays
	assert.Equal(t, float32(0), ms.Structural[0])
	assert.Equal(t, float32(1), ms.Structural[1])
	assert.Equal(t, float32(1), ms.Structural[2])

	ary := math32.NewArrayF32(3, 3)
	first.ToSlice(ary, 0)
	assert.Equal(t, math32.ArrayF32(ms.Structural[:3]), ary)
	var cn Constraint
	cn.FromSlice(ary, 0)
	assert.Equal(t, first, cn)

	assert.Equal(t, Constraints(ms.Bend), ms.BendConstraints())
}
