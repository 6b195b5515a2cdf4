// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Handle identifies a visual object owned by a [Backend].
// The zero Handle refers to nothing.
type Handle int

// Arena holds visual objects indexed by [Handle]. Handles are never reused,
// so a stale handle can not alias a newer object.
type Arena[T any] struct {
	items map[Handle]T
	last  Handle
}

// Add stores the value and returns its new handle.
func (a *Arena[T]) Add(v T) Handle {
	if a.items == nil {
		a.items = make(map[Handle]T)
	}
	a.last++
	a.items[a.last] = v
	return a.last
}

// Get returns the value for the handle, and false if it is not live.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	v, ok := a.items[h]
	return v, ok
}

// Release removes the handle and returns the value it held,
// and false if it was not live.
func (a *Arena[T]) Release(h Handle) (T, bool) {
	v, ok := a.items[h]
	if ok {
		delete(a.items, h)
	}
	return v, ok
}

// Len returns the number of live handles.
func (a *Arena[T]) Len() int {
	return len(a.items)
}
