// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package interact

import "time"

// DefaultScrollDelay is the default scroll debounce window.
const DefaultScrollDelay = 30 * time.Millisecond

// Debouncer coalesces bursts of events: each trigger restarts the window,
// and the last value fires once the window passes with no new trigger.
// It is polled from the frame loop rather than using timers, and times are
// durations on the caller's clock.
type Debouncer struct {

	// Delay is the quiet period before firing.
	Delay time.Duration

	pending  bool
	deadline time.Duration
	value    float32
}

// Trigger records an event at the given time, replacing any pending one.
func (db *Debouncer) Trigger(now time.Duration, v float32) {
	db.pending = true
	db.deadline = now + db.Delay
	db.value = v
}

// Cancel drops any pending event.
func (db *Debouncer) Cancel() {
	db.pending = false
}

// Pending returns whether an event is waiting to fire.
func (db *Debouncer) Pending() bool {
	return db.pending
}

// Poll returns the pending value and true if its window has passed.
func (db *Debouncer) Poll(now time.Duration) (float32, bool) {
	if !db.pending || now < db.deadline {
		return 0, false
	}
	db.pending = false
	return db.value, true
}
