// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store persists the editor text between runs in a small TOML file.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is the default location of the state file.
const DefaultPath = "~/.config/neongraph/state.toml"

// Demo is the text shown when nothing has been saved yet.
const Demo = `class CyberDeck {
constructor() {
this.security = "MAX";
}
}
function hackMainframe() {
const firewall = 9000;
bypass(firewall);
}
function bypass(target) {
let success = true;
}
const ICE_BREAKER = "v2.0";
const IS_ACTIVE = true;`

// data is the on-disk layout of the state file.
type data struct {
	NeonCode string `toml:"neonCode"`
}

// Store reads and writes the saved editor text.
type Store struct {

	// Path is the expanded path of the state file.
	Path string
}

// Open returns a [Store] for the given path, which may start with ~.
// An empty path means [DefaultPath].
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}
	p, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("store: expanding %q: %w", path, err)
	}
	return &Store{Path: p}, nil
}

// Load returns the saved text. It returns [Demo] when the file is missing
// or holds no text, and also when it cannot be read or parsed, in which
// case the error is returned alongside.
func (s *Store) Load() (string, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("no saved state, using demo", "path", s.Path)
		return Demo, nil
	}
	if err != nil {
		return Demo, fmt.Errorf("store: reading %s: %w", s.Path, err)
	}
	var d data
	if err := toml.Unmarshal(b, &d); err != nil {
		return Demo, fmt.Errorf("store: parsing %s: %w", s.Path, err)
	}
	if d.NeonCode == "" {
		return Demo, nil
	}
	return d.NeonCode, nil
}

// Save writes the text, creating the directory if needed.
func (s *Store) Save(text string) error {
	b, err := toml.Marshal(data{NeonCode: text})
	if err != nil {
		return fmt.Errorf("store: encoding: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if err := os.WriteFile(s.Path, b, 0644); err != nil {
		return fmt.Errorf("store: writing %s: %w", s.Path, err)
	}
	return nil
}
