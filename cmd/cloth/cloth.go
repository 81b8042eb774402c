// Copyright 2026 The Cloth Simulation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cloth generates cloth grid mesh and constraint data and writes
// it as JSON, for inspecting the generator output or bootstrapping a
// simulation host without running one.
package main

import (
	"fmt"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/cli"
	cloth "github.com/widiba03304/cloth-simulation-webgpu"
)

// Config is the configuration information for the cloth cli.
type Config struct {

	// NumX is the number of vertex columns in the grid.
	NumX int `flag:"nx,num-x" default:"32"`

	// NumY is the number of vertex rows in the grid.
	NumY int `flag:"ny,num-y" default:"32"`

	// Scale is the physical width and height of the flat rest pose.
	Scale float32 `default:"1"`

	// Output is the JSON file to write the mesh to.
	// If unset, the mesh is written to stdout.
	Output string `cmd:"build" flag:"o,output"`
}

func main() {
	opts := cli.DefaultOptions("cloth", "Cloth generates cloth grid mesh and constraint data for PBD simulation and writes it as JSON.")
	cli.Run(opts, &Config{}, Commands()...)
}

// Commands returns the cloth cli commands. Build is the root command,
// so a bare invocation builds.
func Commands() []*cli.Cmd[*Config] {
	return []*cli.Cmd[*Config]{
		{Func: Build, Name: "build", Doc: "Generate the grid mesh and constraints and write them as JSON.", Root: true},
		{Func: Counts, Name: "counts", Doc: "Print the output array element counts for the configured grid dimensions."},
	}
}

// Build generates the grid mesh and constraints and writes them as JSON.
func Build(c *Config) error {
	ms := cloth.NewGrid(c.NumX, c.NumY, c.Scale).Build()
	if c.Output == "" {
		return errors.Log(jsonx.WriteIndent(ms, os.Stdout))
	}
	f, err := os.Create(c.Output)
	if err != nil {
		return errors.Log(err)
	}
	defer f.Close()
	return errors.Log(jsonx.WriteIndent(ms, f))
}

// Counts prints the output array element counts for the configured grid
// dimensions, without generating anything.
func Counts(c *Config) error {
	ct := cloth.GridCounts(c.NumX, c.NumY)
	fmt.Printf("vertices: %d\nindices: %d\nstructural: %d\nshear: %d\nbend: %d\n",
		ct.Vertices, ct.Indices, ct.Structural, ct.Shear, ct.Bend)
	return nil
}
