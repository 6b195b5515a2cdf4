// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/neongraph/neongraph/codegraph"
	"github.com/neongraph/neongraph/scene"
	"github.com/neongraph/neongraph/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testConfig(t *testing.T) *Config {
	c := &Config{StateFile: filepath.Join(t.TempDir(), "state.toml")}
	c.Settings.Defaults()
	c.Settings.Seed = 5
	return c
}

func TestInput(t *testing.T) {
	c := testConfig(t)
	sto, err := store.Open(c.StateFile)
	require.NoError(t, err)

	text, err := input(c, sto)
	require.NoError(t, err)
	assert.Equal(t, store.Demo, text)

	require.NoError(t, sto.Save("let a = 1;"))
	text, err = input(c, sto)
	require.NoError(t, err)
	assert.Equal(t, "let a = 1;", text)

	c.Input = filepath.Join(t.TempDir(), "in.js")
	require.NoError(t, os.WriteFile(c.Input, []byte("class A {}"), 0644))
	text, err = input(c, sto)
	require.NoError(t, err)
	assert.Equal(t, "class A {}", text)

	c.Input = filepath.Join(t.TempDir(), "missing.js")
	_, err = input(c, sto)
	assert.Error(t, err)
}

func TestDump(t *testing.T) {
	v := headless(testConfig(t), "class CyberDeck {}\nfunction bypass() {}")
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, v))
	out := buf.String()
	assert.Contains(t, out, "CyberDeck")
	assert.Contains(t, out, "bypass")
	assert.Contains(t, out, "3 nodes")
	assert.Contains(t, out, "CyberDeck -> Main")
}

func TestExport(t *testing.T) {
	v := headless(testConfig(t), store.Demo)
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, v))

	var s Snapshot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &s))
	require.Len(t, s.Nodes, 8)
	assert.Equal(t, codegraph.Class, s.Nodes[1].Type)
	assert.Equal(t, "CyberDeck", s.Nodes[1].Name)
	assert.Equal(t, codegraph.Edges(v.State.GraphNodes()), s.Edges)
	require.Len(t, s.Layout, 8)
	assert.Equal(t, scene.Torus, s.Layout[0].Shape)
	assert.Equal(t, scene.Position(3).Y, s.Layout[3].Y)
	assert.Contains(t, buf.String(), "type: class")

	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, ExportFile(path, v))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, buf.String(), string(b))
}
