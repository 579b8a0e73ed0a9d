// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cbqueue

import "code.hybscloud.com/iox"

// ErrFull indicates Push could not proceed because the bounded queue is
// at capacity.
//
// ErrFull is a control flow signal, not a failure. The caller's value was
// never copied into the queue, so nothing is lost; retry after a Pop, or
// use ForcePush to evict the oldest element instead of failing.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency with
// other queues built on [code.hybscloud.com/atomix].
//
// Example:
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
var ErrFull = iox.ErrWouldBlock

// ErrEmpty indicates Pop could not proceed because the queue held no
// element at the time of the call.
//
// ErrEmpty is a control flow signal, not a failure: retry later, typically
// with an [iox.Backoff]. This is an alias for [iox.ErrWouldBlock].
var ErrEmpty = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates an operation could not
// proceed immediately (queue full on Push, queue empty on Pop).
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal rather than a
// failure. Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}
