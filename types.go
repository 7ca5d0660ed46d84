// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package encq

import "io"

// Encoder writes the record of one value.
//
// Encode must call w.Write zero or more times with consecutive fragments of
// the record and must produce a self-delimiting encoding: a Decoder has to
// be able to find the end of the record without outside metadata. Writes to
// a queue never fail, so the only errors are the Encoder's own.
//
// The fragments are copied; Encode may reuse its scratch buffers once Write
// returns.
type Encoder[T any] interface {
	Encode(w io.Writer, elem *T) error
}

// Decoder reads the record of one value.
//
// data starts with one complete record and may be followed by bytes of later
// records. Decode returns the value and n, the number of bytes of data the
// record occupied. The remaining len(data)-n bytes are left for the next
// call.
//
// data aliases the queue's storage and is overwritten by later operations.
// Decode must copy anything it keeps.
type Decoder[T any] interface {
	Decode(data []byte) (elem T, n int, err error)
}

// Codec is the record format of a queue.
//
// The codec package provides implementations for integers, floats, strings,
// byte slices, empty values and JSON documents.
type Codec[T any] interface {
	Encoder[T]
	Decoder[T]
}

// Queue is the combined producer-consumer interface for an encoded FIFO
// queue.
//
// Example:
//
//	q := encq.NewSerial[uint64](codec.Uvarint[uint64]{})
//
//	// Enqueue
//	v := uint64(42)
//	if err := q.Enqueue(&v); err != nil {
//	    // Handle encoder failure
//	}
//
//	// Dequeue
//	elem, err := q.Dequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]

	// Len returns the number of records in the queue.
	Len() int

	// Cap returns the number of bytes allocated for records.
	Cap() int
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs. Its
// encoded form is stored, so the original can be modified after Enqueue
// returns.
type Producer[T any] interface {
	// Enqueue encodes an element at the back of the queue.
	// Returns nil on success, or an *EncodeError if the Encoder fails.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
type Consumer[T any] interface {
	// Dequeue removes and decodes the element at the front of the queue.
	// Returns (zero-value, ErrWouldBlock) if the queue is empty, or an
	// *DecodeError if the Decoder fails.
	Dequeue() (T, error)
}
