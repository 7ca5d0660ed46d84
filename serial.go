// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package encq

import "iter"

// Stats counts layout events of a queue since creation or the last Reset.
type Stats struct {
	// Relocations counts records moved from the full tail to the front.
	Relocations uint64
	// Grows counts moves into a larger array while writing at the front.
	// A linearization that keeps the capacity is not counted.
	Grows uint64
	// Reclaims counts returns of the reader to the front after the tail
	// was drained.
	Reclaims uint64
}

// buffer is the state shared by the write cursor and the read path.
//
// Committed records occupy [start, end) with end == len(buf) (linear), or
// [start, len(buf)) followed by [0, end) with end < start (wrapped).
type buffer struct {
	buf     []byte
	start   int // first byte of the oldest record
	end     int // end of the newest committed record
	count   int
	writing bool
	stats   Stats
}

// front returns the span holding the oldest record, as Dequeue would see it,
// without reclaiming anything.
func (b *buffer) front() (pos, limit int) {
	if b.start == len(b.buf) {
		if b.start == b.end {
			return 0, 0
		}
		return 0, b.end
	}
	return b.start, len(b.buf)
}

// reclaim moves the reader to the front once the tail span is drained and
// cuts the drained tail off the logical length.
func (b *buffer) reclaim() {
	if b.start != len(b.buf) {
		return
	}
	if b.start == b.end {
		// Only zero-length records are left.
		b.end = 0
	}
	b.start = 0
	b.buf = b.buf[:b.end]
	b.stats.Reclaims++
}

// rollback drops the bytes of an abandoned record from the tail. Bytes left
// at the front are unreachable and get overwritten by the next record.
func (b *buffer) rollback() {
	if b.end >= b.start {
		b.buf = b.buf[:b.end]
	}
}

// Serial is a FIFO queue storing its elements as encoded records in one
// growable byte slice.
//
// Enqueue encodes straight into the slice and Dequeue decodes in place, so
// no per-element allocation happens beyond what the Codec does. Space freed
// at the front by Dequeue is reused by later records; the slice grows only
// when the live records no longer fit, and its allocation is never released.
//
// Serial is not safe for concurrent use. Use [Shared] or an outside lock
// when several goroutines access one queue.
type Serial[T any] struct {
	buffer
	codec Codec[T]
}

// NewSerial creates an empty queue using the record format c.
// No memory is allocated until the first Enqueue.
func NewSerial[T any](c Codec[T]) *Serial[T] {
	if c == nil {
		panic("encq: nil codec")
	}
	return &Serial[T]{codec: c}
}

// Enqueue encodes elem at the back of the queue.
//
// If the Encoder fails, Enqueue returns an *EncodeError and the queue keeps
// its previous records and length. The same holds when the Encoder panics
// and the caller recovers.
//
// Enqueue panics if called from within an Encode on the same queue.
func (q *Serial[T]) Enqueue(elem *T) error {
	if q.writing {
		panic("encq: Enqueue called while encoding into the same queue")
	}
	q.writing = true
	committed := false
	defer func() {
		// Also runs when the Encoder panics.
		if !committed {
			q.rollback()
		}
		q.writing = false
	}()

	w := cursor{b: &q.buffer, p: q.end}
	if err := q.codec.Encode(&w, elem); err != nil {
		return &EncodeError{Err: err}
	}
	q.end = w.p
	q.count++
	committed = true
	return nil
}

// Dequeue removes and decodes the oldest element.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
//
// A *DecodeError leaves the queue corrupt; see [DecodeError].
func (q *Serial[T]) Dequeue() (T, error) {
	var zero T
	if q.count == 0 {
		return zero, ErrWouldBlock
	}
	q.count--
	q.reclaim()

	elem, n, err := q.decode(q.start, len(q.buf))
	if err != nil {
		return zero, err
	}
	q.start += n
	return elem, nil
}

// Peek decodes the oldest element without removing it.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *Serial[T]) Peek() (T, error) {
	var zero T
	if q.count == 0 {
		return zero, ErrWouldBlock
	}
	pos, limit := q.front()
	elem, _, err := q.decode(pos, limit)
	if err != nil {
		return zero, err
	}
	return elem, nil
}

// All returns an iterator over the queued elements, oldest first, without
// removing them. Iteration stops after the first *DecodeError.
//
// The queue must not be modified while an iteration is in progress.
// The iterator may be used again later and then reflects the queue at that
// time.
func (q *Serial[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		pos, end, limit := q.start, q.end, len(q.buf)
		for range q.count {
			if pos == limit {
				if pos == end {
					end = 0
				}
				pos, limit = 0, end
			}
			elem, n, err := q.decode(pos, limit)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			pos += n
			if !yield(elem, nil) {
				return
			}
		}
	}
}

func (q *Serial[T]) decode(pos, limit int) (T, int, error) {
	var zero T
	elem, n, err := q.codec.Decode(q.buf[pos:limit])
	if err != nil {
		return zero, 0, &DecodeError{Err: err}
	}
	if n < 0 || n > limit-pos {
		return zero, 0, &DecodeError{Err: ErrRecordBounds}
	}
	return elem, n, nil
}

// Len returns the number of elements in the queue.
func (q *Serial[T]) Len() int {
	return q.count
}

// Cap returns the number of bytes allocated for records.
func (q *Serial[T]) Cap() int {
	return cap(q.buf)
}

// Size returns the number of bytes taken by the queued records.
func (q *Serial[T]) Size() int {
	if q.end < q.start {
		return len(q.buf) - q.start + q.end
	}
	return q.end - q.start
}

// Reset removes all elements. The allocation is kept for reuse.
func (q *Serial[T]) Reset() {
	q.buf = q.buf[:0]
	q.start, q.end, q.count = 0, 0, 0
	q.stats = Stats{}
}

// Stats returns the layout event counters.
func (q *Serial[T]) Stats() Stats {
	return q.stats
}
