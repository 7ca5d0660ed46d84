// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package encq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Shared is a [Serial] queue guarded by a spin lock, for use by any number
// of producer and consumer goroutines.
//
// Every operation takes the lock for the duration of one encode or decode,
// so Codecs used with Shared should be cheap. Len reads a published count
// and never takes the lock.
//
// Shared has no All method: an iterator cannot hold the lock across yields.
type Shared[T any] struct {
	_      pad
	lock   atomix.Uint64 // 0 free, 1 held
	_      pad
	length atomix.Uint64 // Len published under the lock
	_      pad
	q      Serial[T]
}

// NewShared creates an empty concurrent queue using the record format c.
func NewShared[T any](c Codec[T]) *Shared[T] {
	if c == nil {
		panic("encq: nil codec")
	}
	return &Shared[T]{q: Serial[T]{codec: c}}
}

func (s *Shared[T]) acquire() {
	sw := spin.Wait{}
	for !s.lock.CompareAndSwapAcqRel(0, 1) {
		sw.Once()
	}
}

func (s *Shared[T]) release() {
	s.length.StoreRelease(uint64(s.q.count))
	s.lock.StoreRelease(0)
}

// Enqueue encodes elem at the back of the queue.
// Returns an *EncodeError if the Encoder fails.
//
// The Encoder must not call back into s: the lock is not reentrant, so
// such a call spins forever instead of panicking like [Serial.Enqueue].
// An Encoder that panics leaves the queue as it was and releases the lock.
func (s *Shared[T]) Enqueue(elem *T) error {
	s.acquire()
	defer s.release()
	return s.q.Enqueue(elem)
}

// Dequeue removes and decodes the oldest element.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (s *Shared[T]) Dequeue() (T, error) {
	s.acquire()
	defer s.release()
	return s.q.Dequeue()
}

// Peek decodes the oldest element without removing it.
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (s *Shared[T]) Peek() (T, error) {
	s.acquire()
	defer s.release()
	return s.q.Peek()
}

// Len returns the number of elements as of the last completed operation.
func (s *Shared[T]) Len() int {
	return int(s.length.LoadAcquire())
}

// Cap returns the number of bytes allocated for records.
func (s *Shared[T]) Cap() int {
	s.acquire()
	defer s.release()
	return s.q.Cap()
}

// Reset removes all elements. The allocation is kept for reuse.
func (s *Shared[T]) Reset() {
	s.acquire()
	defer s.release()
	s.q.Reset()
}

// Stats returns the layout event counters.
func (s *Shared[T]) Stats() Stats {
	s.acquire()
	defer s.release()
	return s.q.Stats()
}
