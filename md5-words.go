// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package md5rfc

import (
	"encoding/binary"
	"fmt"
)

// block is one 512-bit unit of padded input as 16 little-endian words.
type block [16]uint32

// blockReader hands out the blocks of a padded buffer in order.
type blockReader struct {
	p []byte
}

func newBlockReader(p []byte) *blockReader {
	if len(p)%BlockSize != 0 {
		panic(fmt.Sprintf("md5rfc: padded length %d is not a multiple of %d", len(p), BlockSize))
	}
	return &blockReader{p: p}
}

// next decodes the following block into x. It returns false once the
// buffer is exhausted.
func (r *blockReader) next(x *block) bool {
	if len(r.p) == 0 {
		return false
	}
	for i := range x {
		x[i] = binary.LittleEndian.Uint32(r.p[i*4:])
	}
	r.p = r.p[BlockSize:]
	return true
}

// remaining returns the number of blocks not yet read.
func (r *blockReader) remaining() int { return len(r.p) / BlockSize }
