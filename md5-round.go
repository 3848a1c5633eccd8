// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package md5rfc

import (
	"math"
	"math/bits"
)

// Number of steps applied to every block, 16 per round.
const steps = 64

// round selects the mixing function, message schedule and rotation
// amounts used by a group of 16 steps.
type round uint8

const (
	round1 round = iota // F, g = i
	round2              // G, g = 5i+1
	round3              // H, g = 3i+5
	round4              // I, g = 7i
)

// roundOf returns the round that step i (0 <= i < 64) belongs to.
func roundOf(i int) round {
	return round(i >> 4)
}

// mix is the nonlinear function of the round.
func (r round) mix(x, y, z uint32) uint32 {
	switch r {
	case round1:
		return (x & y) | (^x & z)
	case round2:
		return (x & z) | (y & ^z)
	case round3:
		return x ^ y ^ z
	case round4:
		return y ^ (x | ^z)
	}
	panic("md5rfc: invalid round")
}

// index returns the message word consumed by step i.
func (r round) index(i int) int {
	switch r {
	case round1:
		return i
	case round2:
		return (5*i + 1) & 15
	case round3:
		return (3*i + 5) & 15
	case round4:
		return (7 * i) & 15
	}
	panic("md5rfc: invalid round")
}

// Per-round left rotation amounts, cycled four times within a round.
var md5shifts = [4][4]int{
	{7, 12, 17, 22},
	{5, 9, 14, 20},
	{4, 11, 16, 23},
	{6, 10, 15, 21},
}

// shift returns the left rotation applied by step i.
func (r round) shift(i int) int {
	return md5shifts[r][i&3]
}

// md5consts holds T[i] = floor(2^32 * |sin(i+1)|). It is computed once and
// only read afterwards, so it is shared by all concurrent digests.
var md5consts = func() (t [steps]uint32) {
	for i := range t {
		t[i] = uint32(math.Floor(math.Abs(math.Sin(float64(i+1))) * (1 << 32)))
	}
	return
}()

// step advances the working state by step i over message block x.
func (w *digest) step(i int, x *block) {
	r := roundOf(i)
	a, b, c, d := w.s[0], w.s[1], w.s[2], w.s[3]
	e := a + r.mix(b, c, d) + x[r.index(i)] + md5consts[i]
	w.s[0], w.s[1], w.s[2], w.s[3] = d, b+bits.RotateLeft32(e, r.shift(i)), b, c
}
