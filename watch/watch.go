// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package watch reloads an input file whenever it changes on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/fsnotify/fsnotify"
	"github.com/h2non/filetype"
)

// ErrBinary is returned for files that are not text.
var ErrBinary = errors.New("watch: not a text file")

// Read returns the contents of a text file. Files that are recognized as
// a binary format, or are not valid UTF-8, give [ErrBinary].
func Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if kind, _ := filetype.Match(b); kind != filetype.Unknown {
		return "", fmt.Errorf("%w: %s is %s", ErrBinary, path, kind.MIME.Value)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %s", ErrBinary, path)
	}
	return string(b), nil
}

// Watcher watches one file. The directory is watched rather than the file
// so that editors that save by renaming are still seen.
type Watcher struct {

	// Path is the cleaned path of the watched file.
	Path string

	watcher *fsnotify.Watcher
	last    string
}

// New starts watching the given file.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch: %w", err)
	}
	return &Watcher{Path: abs, watcher: fw}, nil
}

// Run calls fn with the new text each time the file is written or
// replaced and its text differs from the last delivered text. It blocks
// until the context is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context, fn func(text string)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.Path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			text, err := Read(w.Path)
			if err != nil {
				slog.Error("watch: reading changed file", "path", w.Path, "err", err)
				continue
			}
			if text == w.last {
				continue
			}
			w.last = text
			slog.Info("input changed", "path", w.Path)
			fn(text)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch", "err", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
