// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cbqueue

// pad is cache line padding to prevent false sharing between adjacent
// hot fields (the ring's head/tail counters, the segment queue's
// head/tail segment pointers).
type pad [64]byte

// padShort is a cache line minus the 8-byte stamp field; placed after a
// slot's stamp and element, it makes each slot span at least one cache line.
type padShort [64 - 8]byte

// nextPow2GT returns the smallest power of two strictly greater than n.
//
// This is oneLap from spec.md §3.1: the stride separating the index bits
// from the lap bits in a packed head/tail counter. Using the next power
// of two rather than n itself keeps the lap increment a single shift and
// the index extraction a single AND, while still allowing arbitrary
// (non-power-of-two) capacities — unlike the teacher's SPSC/MPMCSeq
// ring variants, which require capacity itself to be a power of two.
func nextPow2GT(n uint64) uint64 {
	p := uint64(1)
	for p <= n {
		p <<= 1
	}
	return p
}
