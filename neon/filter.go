// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neon

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// FilterThreshold is the minimum name similarity for a fuzzy filter match.
const FilterThreshold = 0.75

// Filter returns the indexes of the nodes whose name or type matches the
// query, in node order. A node matches if its name or type contains the query
// ignoring case, or its name is similar enough to it. An empty query matches
// every node.
func (v *Viewer) Filter(query string) []int {
	q := strings.ToLower(strings.TrimSpace(query))
	var idxs []int
	jw := metrics.NewJaroWinkler()
	jw.CaseSensitive = false
	for i, n := range v.State.Nodes {
		name := strings.ToLower(n.Name)
		switch {
		case q == "",
			strings.Contains(name, q),
			strings.Contains(n.Type.String(), q),
			strutil.Similarity(q, name, jw) >= FilterThreshold:
			idxs = append(idxs, i)
		}
	}
	return idxs
}
