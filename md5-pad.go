// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package md5rfc

import (
	"encoding/binary"
	"math"
)

const (
	blockBits  = BlockSize * 8
	lengthBits = 64

	// Largest message (in bytes) whose bit length, plus the padding
	// headroom, still fits the 64-bit length field.
	maxMessageLen = (math.MaxUint64 - blockBits - lengthBits) >> 3
)

// pad returns a copy of msg followed by a single 0x80 byte, zero bytes up
// to 448 mod 512 bits and the original length in bits as a little-endian
// uint64. The result is always a whole number of blocks.
func pad(msg []byte) []byte {
	l := uint64(len(msg))
	if l > maxMessageLen {
		panic("md5rfc: message length does not fit the 64-bit length field")
	}
	bitLen := l << 3

	// Size in bits up to (not including) the length field. Spills into an
	// extra block when fewer than 9 bytes remain in the last one.
	wrapped := (bitLen+lengthBits+blockBits)/blockBits*blockBits - lengthBits

	p := make([]byte, wrapped/8+lengthBits/8)
	copy(p, msg)
	p[l] = 0x80
	binary.LittleEndian.PutUint64(p[wrapped/8:], bitLen)
	return p
}
