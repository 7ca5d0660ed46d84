// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package encq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// Dequeue and Peek return it when the queue holds no records. It is a
// control flow signal, not a failure: the queue is left untouched.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	for {
//	    v, err := q.Dequeue()
//	    if encq.IsWouldBlock(err) {
//	        break // drained
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    handle(v)
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// ErrRecordBounds is reported (wrapped in a [DecodeError]) when a Decoder
// claims to have consumed more bytes than it was given, or a negative count.
var ErrRecordBounds = errors.New("encq: decoded record exceeds buffer bounds")

// EncodeError is returned by Enqueue when the Encoder fails.
//
// The record is abandoned. Len and the committed records are unchanged and
// the queue stays usable.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return "encq: encode: " + e.Err.Error() }

func (e *EncodeError) Unwrap() error { return e.Err }

// DecodeError is returned by Dequeue, Peek and All when the Decoder fails.
//
// Dequeue has already counted the record as removed when decoding starts, so
// after a DecodeError from Dequeue the element count no longer matches the
// buffer contents. Treat the queue as corrupt and stop using it.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "encq: decode: " + e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
