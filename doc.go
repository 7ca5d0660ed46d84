// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package encq provides FIFO queues that store their elements encoded.
//
// Instead of keeping a slice of values, a queue packs the encoded record of
// every element back to back into one growable byte slice. Enqueue encodes
// directly into that slice and Dequeue decodes the oldest record in place:
// no per-element allocation, no per-element pointer for the garbage
// collector to trace.
//
// Two variants are available:
//
//   - Serial: single goroutine, no synchronization
//   - Shared: any number of goroutines, spin lock
//
// # Quick Start
//
// Direct constructors (recommended for most cases):
//
//	q := encq.NewSerial[uint64](codec.Uvarint[uint64]{})
//	q := encq.NewShared[Event](codec.JSON[Event]{})
//
// Builder API for preallocation and variant selection:
//
//	q := encq.Build[string](encq.New(4096), codec.String{})           // → Serial
//	q := encq.Build[string](encq.New(4096).Shared(), codec.String{})  // → Shared
//
// # Basic Usage
//
//	q := encq.NewSerial[string](codec.String{})
//
//	// Enqueue
//	s := "hello"
//	if err := q.Enqueue(&s); err != nil {
//	    // Encoder failed; the queue is unchanged
//	}
//
//	// Dequeue
//	s, err := q.Dequeue()
//	if encq.IsWouldBlock(err) {
//	    // Queue is empty
//	}
//
// # Record Formats
//
// A queue is parameterized by a [Codec]. The Encoder writes a record as any
// number of fragments to an io.Writer; the Decoder reads one record from the
// head of a byte slice and reports how many bytes it used. Records must be
// self-delimiting. Package [code.hybscloud.com/encq/codec] has formats for
// integers, floats, strings, byte slices, empty values and JSON.
//
// # Memory Layout
//
// Records live in [start, end) of the storage slice while the writer appends
// to the tail. When the tail reaches the slice capacity and the reader has
// freed enough space at the front, the record being written moves to the
// front and later records follow it there: the layout wraps, with the older
// records at [start, len) and the newer ones at [0, end). One byte is always
// kept free ahead of the reader. When the front runs into the reader, the
// records are copied into an array 1.5x larger (repeatedly, until they fit)
// and the layout is linear again. Once the reader drains the tail, it
// continues at the front and the drained tail is cut off.
//
// A record is always contiguous, even when its fragments arrive while the
// layout changes. Committed records are copied only when the array grows.
//
// The storage allocation never shrinks. Under a steady push/pop load it
// settles near the size of the live records instead of growing with the
// total bytes ever enqueued. [Serial.Stats] counts relocations, grows and
// reclaims.
//
// # Error Handling
//
// Dequeue returns [ErrWouldBlock] on an empty queue. This error is sourced
// from [code.hybscloud.com/iox] for ecosystem consistency:
//
//	encq.IsWouldBlock(err)  // true if queue empty
//	encq.IsSemantic(err)    // true if control flow signal
//	encq.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// Codec failures are wrapped: [EncodeError] from Enqueue leaves the queue as
// it was. [DecodeError] from Dequeue means the queue no longer knows where
// its records are, and it must be discarded.
//
// # Thread Safety
//
// Serial must be used by one goroutine at a time. Shared serializes every
// operation with a spin lock and may be used from any goroutine. Neither
// queue may be modified from inside its own Codec: Serial panics, Shared
// deadlocks on its own lock.
//
// # Race Detection
//
// Shared synchronizes through [code.hybscloud.com/atomix] acquire-release
// operations, which the race detector cannot observe. Concurrent tests of
// Shared are excluded via //go:build !race.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU pause instructions.
package encq
