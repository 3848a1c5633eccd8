// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package md5rfc

import (
	"context"
	"runtime"
	"sync"

	"github.com/klauspost/cpuid"
	"github.com/remeh/sizedwaitgroup"
)

// Final messages up to this size are digested by the caller instead of
// making a round trip through the worker pool.
const smallMessage = 128

// Server hashes independent messages on a shared pool of workers.
type Server interface {
	// NewHash returns a Hasher whose digests are computed by the pool.
	NewHash() Hasher
	// SumAll returns the digests of msgs in input order.
	SumAll(ctx context.Context, msgs [][]byte) ([][Size]byte, error)
	// Close stops the workers. Hashers keep working and digest inline.
	Close()
}

// Message to send across input channel
type blockInput struct {
	msg   []byte
	sumCh chan [Size]byte
}

// md5Server - Type to implement parallel handling of MD5 invocations
type md5Server struct {
	mu       sync.RWMutex
	blocksCh chan blockInput // Input channel, nil once closed
	workers  int
	wg       sync.WaitGroup
}

// defaultWorkers returns the number of logical cores, as reported by the
// cpu, or by the runtime when cpuid cannot tell.
func defaultWorkers() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// NewServer - Create new object for parallel processing handling, with one
// worker per logical core.
func NewServer() Server {
	return NewServerSize(defaultWorkers())
}

// NewServerSize - Create new object for parallel processing handling with
// the given number of workers. Values below one select the default.
func NewServerSize(workers int) Server {
	if workers < 1 {
		workers = defaultWorkers()
	}
	s := &md5Server{
		blocksCh: make(chan blockInput),
		workers:  workers,
	}
	s.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go s.process(s.blocksCh)
	}
	log.Debugf("Started MD5 server with %d workers (%s)", workers, cpuid.CPU.BrandName)
	return s
}

// process - reads messages from the input channel until it is closed
func (s *md5Server) process(blocksCh <-chan blockInput) {
	defer s.wg.Done()
	for block := range blocksCh {
		block.sumCh <- Sum(block.msg)
	}
}

func (s *md5Server) NewHash() Hasher {
	return &md5Digest{md5srv: s}
}

// sum - return the MD5 sum of msg, using the pool when it is running
func (s *md5Server) sum(msg []byte) [Size]byte {
	if len(msg) <= smallMessage {
		return Sum(msg)
	}

	s.mu.RLock()
	if s.blocksCh == nil {
		s.mu.RUnlock()
		return Sum(msg)
	}
	sumCh := make(chan [Size]byte, 1)
	s.blocksCh <- blockInput{msg: msg, sumCh: sumCh}
	s.mu.RUnlock()
	return <-sumCh
}

func (s *md5Server) SumAll(ctx context.Context, msgs [][]byte) ([][Size]byte, error) {
	sums := make([][Size]byte, len(msgs))
	log.Tracef("Digesting batch of %d messages", len(msgs))

	swg := sizedwaitgroup.New(s.workers)
	for _, l := range longestFirst(msgs) {
		err := ctx.Err()
		if err == nil {
			err = swg.AddWithContext(ctx)
		}
		if err != nil {
			swg.Wait()
			return nil, err
		}
		go func(pos uint) {
			defer swg.Done()
			sums[pos] = s.sum(msgs[pos])
		}(l.pos)
	}
	swg.Wait()
	return sums, nil
}

func (s *md5Server) Close() {
	s.mu.Lock()
	if s.blocksCh != nil {
		close(s.blocksCh)
		s.blocksCh = nil
	}
	s.mu.Unlock()
	s.wg.Wait()
	log.Debugf("Stopped MD5 server")
}
