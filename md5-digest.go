// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package md5rfc

import (
	"errors"
	"hash"
)

// BlockSize - Block size of MD5 in bytes
const BlockSize = 64

// Size - Size of an MD5 checksum in bytes
const Size = 16

// Sum returns the MD5 digest of data. data is not modified.
func Sum(data []byte) [Size]byte {
	dig := newDigest()
	blockGeneric(&dig, pad(data))
	return dig.sum()
}

// Hasher is a hash.Hash that also releases its resources on Close.
type Hasher interface {
	hash.Hash
	Close()
}

// New returns a Hasher that computes the digest on the calling goroutine.
func New() Hasher {
	return &md5Digest{}
}

var errClosed = errors.New("md5Digest already closed. Reset first before writing again")

// md5Digest - Type for computing MD5 over a buffered message
type md5Digest struct {
	md5srv *md5Server
	x      []byte
	closed bool
	summed bool // result holds the digest of x
	result [Size]byte
}

// Size - Return size of checksum
func (d *md5Digest) Size() int { return Size }

// BlockSize - Return blocksize of checksum
func (d *md5Digest) BlockSize() int { return BlockSize }

// Reset - reset digest to its initial values
func (d *md5Digest) Reset() {
	d.x = d.x[:0]
	d.closed = false
	d.summed = false
}

// Write - append p to the buffered message
func (d *md5Digest) Write(p []byte) (nn int, err error) {
	if d.closed {
		return 0, errClosed
	}
	d.x = append(d.x, p...)
	d.summed = false
	return len(p), nil
}

// Close - drop the buffered message, keeping its digest for Sum
func (d *md5Digest) Close() {
	if !d.closed {
		d.compute()
		d.x = nil
		d.closed = true
	}
}

// Sum - Return MD5 sum in bytes. The buffered message is kept so
// subsequent writes extend it.
// Once closed it returns the digest of the message written before Close.
func (d *md5Digest) Sum(in []byte) (result []byte) {
	d.compute()
	return append(in, d.result[:]...)
}

// compute - compute the sum of the buffered message unless it is cached
func (d *md5Digest) compute() {
	if d.summed || d.closed {
		return
	}
	if d.md5srv != nil {
		d.result = d.md5srv.sum(d.x)
	} else {
		d.result = Sum(d.x)
	}
	d.summed = true
}
