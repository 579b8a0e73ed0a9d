// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cbqueue provides lock-free FIFO queues for concurrent producers
// and consumers.
//
// Two variants are offered:
//
//   - BoundedRingQueue: fixed capacity chosen at construction, backed by a
//     flat array of slots. Push fails with [ErrFull] once the queue is at
//     capacity; ForcePush instead evicts the oldest element to make room.
//   - UnboundedSegmentQueue: grows on demand by chaining fixed-size
//     segments. Push never fails in ordinary operation.
//
// Both are safe for any number of concurrent producer and consumer
// goroutines; neither specializes by producer/consumer arity the way the
// predecessor package's SPSC/MPSC/SPMC/MPMC family did.
//
// # Quick Start
//
//	q := cbqueue.NewBoundedRingQueue[int](1024)
//	u := cbqueue.NewUnboundedSegmentQueue[Event]()
//
// # Basic Usage
//
//	// Bounded: push can fail under backpressure.
//	v := 42
//	if err := q.Push(&v); err != nil {
//	    // queue is full
//	}
//	elem, err := q.Pop()
//	if cbqueue.IsWouldBlock(err) {
//	    // queue is empty
//	}
//
//	// Unbounded: push always succeeds.
//	ev := Event{}
//	u.Push(&ev)
//
// # Common Patterns
//
// Pipeline stage with backpressure (bounded):
//
//	q := cbqueue.NewBoundedRingQueue[Data](1024)
//
//	go func() { // producer
//	    backoff := iox.Backoff{}
//	    for data := range input {
//	        for q.Push(&data) != nil {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // consumer
//	    backoff := iox.Backoff{}
//	    for {
//	        data, err := q.Pop()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(data)
//	    }
//	}()
//
// Unbounded event log, never rejecting a write:
//
//	log := cbqueue.NewUnboundedSegmentQueue[Event]()
//
//	for ev := range events {
//	    log.Push(&ev)
//	}
//
//	for {
//	    ev, err := log.Pop()
//	    if err != nil {
//	        break
//	    }
//	    handle(ev)
//	}
//
// Fixed-size ring buffer that always accepts the latest value, dropping
// the oldest one under load (ForcePush):
//
//	latest := cbqueue.NewBoundedRingQueue[Sample](256)
//
//	go func() {
//	    for s := range samples {
//	        latest.ForcePush(&s)
//	    }
//	}()
//
// # Ordering
//
// Both queues are FIFO across the queue as a whole under sequential
// execution. Under genuine concurrency the relative order of two pushes
// from different producer goroutines (or two pops from different consumer
// goroutines) that race is whichever order their respective compare-and-
// swap operations land in, not program order between unrelated goroutines;
// a single producer's own pushes are always observed in the order it
// issued them, and symmetrically for a single consumer's own pops.
//
// # Error Handling
//
// Both queues signal empty/full as [code.hybscloud.com/iox.ErrWouldBlock]-shaped sentinels
// ([ErrFull], [ErrEmpty]), sourced from [code.hybscloud.com/iox] for
// ecosystem consistency with other queues built on
// [code.hybscloud.com/atomix]:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := q.Push(&item)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if !cbqueue.IsWouldBlock(err) {
//	        return err // unexpected
//	    }
//	    backoff.Wait()
//	}
//
// For semantic error classification (delegates to iox):
//
//	cbqueue.IsWouldBlock(err)  // true if queue full/empty
//	cbqueue.IsSemantic(err)    // true if control flow signal
//
// # Capacity and Length
//
// BoundedRingQueue's capacity is exactly the value passed to
// [NewBoundedRingQueue]; it is not rounded up to a power of two; the
// internal index+lap counter (see nextPow2GT in pad.go) handles arbitrary
// capacities without requiring one. Panics if capacity < 1.
//
// UnboundedSegmentQueue has no capacity; Len walks the live segment chain
// and is an O(segments) snapshot, not an O(1) read.
//
// BoundedRingQueue.Len is a consistent snapshot at some point during the
// call, not a live reading: under concurrent mutation the count may be
// stale the instant it is returned. UnboundedSegmentQueue.Len reads each
// segment's counters separately and is only an estimate under concurrent
// mutation. Do not build correctness-critical
// logic on an exact Len value; use it for diagnostics and capacity
// planning, not synchronization.
//
// # Thread Safety
//
// Every exported method except Close is safe for any number of concurrent
// callers, producers and consumers alike. Close requires exclusive access:
// it is not safe to call concurrently with Push/Pop/ForcePush or with
// another Close, since it walks and zeroes live slots without
// synchronization — see Close's doc comment on each type.
//
// # Race Detection
//
// Go's race detector is not designed for lock-free algorithm verification:
// it tracks explicit synchronization primitives (mutex, channel,
// WaitGroup) but cannot observe happens-before relationships established
// purely through atomic acquire/release memory ordering on separate
// variables. Both queue types here protect non-atomic data fields (the
// slot/cell payload) using such orderings, so the race detector may flag
// false positives on otherwise-correct interleavings. [RaceEnabled]
// reports whether the race detector is active so tests can skip the
// scenarios known to trip this false positive.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit memory
// ordering, and [code.hybscloud.com/spin] for spin-wait backoff between
// compare-and-swap retries. UnboundedSegmentQueue additionally uses
// [sync/atomic.Pointer] for its segment-chain links — see
// UnboundedSegmentQueue's doc comment for why that one structure steps
// outside atomix.
package cbqueue
