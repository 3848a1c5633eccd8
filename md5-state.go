// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package md5rfc

import (
	"encoding/binary"
	"math/bits"
)

// MD5 initialization constants
const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
)

// digest holds the four running registers A, B, C and D.
type digest struct {
	s [4]uint32
}

func newDigest() digest {
	return digest{s: [4]uint32{init0, init1, init2, init3}}
}

// add returns the component-wise sum of d and w modulo 2^32.
func (d digest) add(w digest) digest {
	return digest{s: [4]uint32{
		d.s[0] + w.s[0],
		d.s[1] + w.s[1],
		d.s[2] + w.s[2],
		d.s[3] + w.s[3],
	}}
}

// sum byte-swaps each register and lays them out big-endian, which gives
// the canonical digest byte order.
func (d digest) sum() (out [Size]byte) {
	for i, v := range d.s {
		binary.BigEndian.PutUint32(out[i*4:], bits.ReverseBytes32(v))
	}
	return
}
