// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package md5rfc

import (
	"sort"
)

// Helper struct for sorting messages based on length
type lane struct {
	len uint
	pos uint
}

type lanes []lane

func (lns lanes) Len() int           { return len(lns) }
func (lns lanes) Swap(i, j int)      { lns[i], lns[j] = lns[j], lns[i] }
func (lns lanes) Less(i, j int) bool { return lns[i].len < lns[j].len }

// longestFirst returns the positions of input ordered from the longest to
// the shortest message, so the largest digests start first in a batch.
// Messages of equal length keep their input order.
func longestFirst(input [][]byte) []lane {
	sorted := make([]lane, len(input))
	for c, inpt := range input {
		sorted[c] = lane{uint(len(inpt)), uint(c)}
	}
	sort.Stable(sort.Reverse(lanes(sorted)))
	return sorted
}
