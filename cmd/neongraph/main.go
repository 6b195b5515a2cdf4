// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command neongraph shows pseudo source code as an interactive 3D graph
// of glowing declaration nodes.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"github.com/neongraph/neongraph/neon"
	"github.com/neongraph/neongraph/neonxyz"
	"github.com/neongraph/neongraph/scene"
	"github.com/neongraph/neongraph/store"
	"github.com/neongraph/neongraph/watch"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for neongraph.
type Config struct {

	// Input is an optional file to show instead of the saved text.
	Input string `posarg:"0" required:"-"`

	// Watch regenerates the graph whenever the input file changes.
	Watch bool `flag:"w,watch"`

	// Dump prints the nodes, edges and layout to the terminal instead of
	// opening the viewer.
	Dump bool

	// Export writes a YAML snapshot of the graph to the given file instead
	// of opening the viewer.
	Export string

	// StateFile is where the editor text is saved between runs.
	StateFile string `default:"~/.config/neongraph/state.toml"`

	neon.Settings
}

func main() { //types:skip
	opts := cli.DefaultOptions("neongraph", "Shows pseudo source code as an interactive 3D graph.")
	opts.DefaultFiles = []string{"neongraph.toml"}
	cli.Run(opts, &Config{}, Run)
}

// Run shows the graph in the viewer, or dumps or exports it.
func Run(c *Config) error { //cli:cmd -root
	sto, err := store.Open(c.StateFile)
	if err != nil {
		return err
	}
	text, err := input(c, sto)
	if err != nil {
		return err
	}

	switch {
	case c.Dump:
		return Dump(os.Stdout, headless(c, text))
	case c.Export != "":
		return ExportFile(c.Export, headless(c, text))
	}

	app := neonxyz.NewApp(c.Settings, sto, text)
	if c.Watch && c.Input != "" {
		w, err := watch.New(c.Input)
		if err != nil {
			return err
		}
		defer w.Close()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := w.Run(ctx, app.SetTextAsync); err != nil && ctx.Err() == nil {
				errors.Log(err)
			}
		}()
	}
	app.Run()
	return nil
}

// input returns the input file text when there is one, and otherwise the
// saved text.
func input(c *Config, sto *store.Store) (string, error) {
	if c.Input != "" {
		text, err := watch.Read(c.Input)
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return text, nil
	}
	text, err := sto.Load()
	if err != nil {
		slog.Warn("saved state unusable, using demo", "err", err)
	}
	return text, nil
}

// headless returns a viewer for the text without any rendering.
func headless(c *Config, text string) *neon.Viewer {
	v := neon.NewViewer(&scene.CountingBackend{}, c.Settings)
	v.Generate(text)
	return v
}
