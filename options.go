// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package encq

// Options configures queue creation.
type Options struct {
	// Access pattern (determines queue type)
	shared bool

	// Initial byte capacity of the record storage
	capacity int
}

// Builder creates queues with fluent configuration.
//
// Example:
//
//	// Single-goroutine queue with 4 KiB preallocated
//	q := encq.BuildSerial[string](encq.New(4096), codec.String{})
//
//	// Queue for concurrent producers and consumers
//	q := encq.BuildShared[Event](encq.New(0).Shared(), codec.JSON[Event]{})
type Builder struct {
	opts Options
}

// New creates a queue builder with the given initial byte capacity.
//
// The capacity is a starting allocation, not a limit: queues grow as
// needed. A capacity of 0 defers allocation to the first Enqueue.
//
// Panics if capacity < 0.
func New(capacity int) *Builder {
	if capacity < 0 {
		panic("encq: capacity must be >= 0")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// Shared declares that several goroutines will access the queue.
// Selects the lock-guarded [Shared] queue.
func (b *Builder) Shared() *Builder {
	b.opts.shared = true
	return b
}

// Build creates a Queue[T] using the record format c.
//
// Selection:
//
//	Shared() → *Shared[T]
//	default  → *Serial[T]
func Build[T any](b *Builder, c Codec[T]) Queue[T] {
	if b.opts.shared {
		return BuildShared(b, c)
	}
	return BuildSerial(b, c)
}

// BuildSerial creates a Serial queue with compile-time type safety.
// Panics if builder is configured with Shared().
func BuildSerial[T any](b *Builder, c Codec[T]) *Serial[T] {
	if b.opts.shared {
		panic("encq: BuildSerial requires a builder without Shared()")
	}
	q := NewSerial(c)
	q.preallocate(b.opts.capacity)
	return q
}

// BuildShared creates a Shared queue with compile-time type safety.
// Panics if builder is not configured with Shared().
func BuildShared[T any](b *Builder, c Codec[T]) *Shared[T] {
	if !b.opts.shared {
		panic("encq: BuildShared requires Shared()")
	}
	s := NewShared(c)
	s.q.preallocate(b.opts.capacity)
	return s
}

func (b *buffer) preallocate(capacity int) {
	if capacity > 0 {
		b.buf = make([]byte, 0, capacity)
	}
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
