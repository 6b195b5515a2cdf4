// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var png = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "a.js")
	require.NoError(t, os.WriteFile(txt, []byte("const a = 1;"), 0644))
	s, err := Read(txt)
	require.NoError(t, err)
	assert.Equal(t, "const a = 1;", s)

	bin := filepath.Join(dir, "b.png")
	require.NoError(t, os.WriteFile(bin, png, 0644))
	_, err = Read(bin)
	assert.ErrorIs(t, err, ErrBinary)

	bad := filepath.Join(dir, "c.js")
	require.NoError(t, os.WriteFile(bad, []byte{'a', 0xff, 0xfe, 'b'}, 0644))
	_, err = Read(bad)
	assert.ErrorIs(t, err, ErrBinary)

	_, err = Read(filepath.Join(dir, "missing.js"))
	assert.Error(t, err)
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.js")
	require.NoError(t, os.WriteFile(path, []byte("let a = 1;"), 0644))

	w, err := New(path)
	require.NoError(t, err)
	defer w.Close()

	got := make(chan string, 16)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, func(s string) { got <- s }) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.js"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("class A {}"), 0644))

	timeout := time.After(5 * time.Second)
	for seen := false; !seen; {
		select {
		case s := <-got:
			seen = s == "class A {}"
		case <-timeout:
			t.Fatal("no change delivered")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
}
