// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package md5rfc

import (
	"reflect"
	"testing"
)

type laneTest struct {
	in  []int
	out []uint
}

var goldenLanes = []laneTest{
	{[]int{}, []uint{}},
	{[]int{0, 0, 0}, []uint{0, 1, 2}},
	{[]int{64, 0, 64, 0}, []uint{0, 2, 1, 3}},
	{[]int{1 * 64, 2 * 64, 3 * 64, 4 * 64}, []uint{3, 2, 1, 0}},
	{[]int{10 * 64, 19 * 64, 27 * 64, 19 * 64, 10 * 64}, []uint{2, 1, 3, 0, 4}},
}

func TestLongestFirst(t *testing.T) {
	for gcase, g := range goldenLanes {
		input := make([][]byte, len(g.in))
		for i, l := range g.in {
			input[i] = make([]byte, l)
		}

		pos := []uint{}
		for _, l := range longestFirst(input) {
			if l.len != uint(len(input[l.pos])) {
				t.Fatalf("case %d: lane %d has length %d, want %d", gcase, l.pos, l.len, len(input[l.pos]))
			}
			pos = append(pos, l.pos)
		}

		if !reflect.DeepEqual(pos, g.out) {
			t.Fatalf("case %d: got %v\n                    want %v", gcase, pos, g.out)
		}
	}
}
