// Copyright 2026 The Cloth Simulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/core/base/iox/jsonx"
	"github.com/stretchr/testify/assert"
	cloth "github.com/widiba03304/cloth-simulation-webgpu"
)

// a bare invocation must run build, so exactly one command is
// registered as root, and it is build.
func TestCommands(t *testing.T) {
	roots := 0
	for _, cm := range Commands() {
		if cm.Root {
			roots++
			assert.Equal(t, "build", cm.Name)
			assert.NotNil(t, cm.Func)
		}
	}
	assert.Equal(t, 1, roots)
}

func TestBuild(t *testing.T) {
	out := filepath.Join(t.TempDir(), "grid.json")
	c := &Config{NumX: 3, NumY: 3, Scale: 2, Output: out}
	assert.NoError(t, Build(c))

	f, err := os.Open(out)
	assert.NoError(t, err)
	defer f.Close()
	ms := &cloth.Mesh{}
	assert.NoError(t, jsonx.Read(ms, f))
	assert.Equal(t, cloth.GridCounts(3, 3), ms.Counts())
	assert.Equal(t, cloth.Constraint{A: 0, B: 1, RestLength: 1}, cloth.ConstraintAt(ms.Structural, 0))
}

func TestCounts(t *testing.T) {
	assert.NoError(t, Counts(&Config{NumX: 3, NumY: 3}))
}
