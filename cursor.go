// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package encq

import "math"

// cursor receives the fragments of the record being enqueued.
//
// p is where the next fragment goes. It is either below b.start (the record
// is being written into space freed ahead of the reader) or equal to
// len(b.buf) (the record is being appended to the tail). Whichever way
// the fragments are placed, the finished record is contiguous.
type cursor struct {
	b *buffer
	p int
}

// Write places one fragment. It never fails.
func (w *cursor) Write(frag []byte) (int, error) {
	b, n := w.b, len(frag)

	if w.p < b.start {
		// Stop one byte short of start so a non-empty queue never has
		// start == end.
		if w.p+n < b.start {
			w.p += copy(b.buf[w.p:], frag)
			return n, nil
		}
		w.linearize(n)
		b.buf = append(b.buf, frag...)
		w.p = len(b.buf)
		return n, nil
	}

	if n <= cap(b.buf)-w.p {
		b.buf = append(b.buf, frag...)
		w.p = len(b.buf)
		return n, nil
	}

	// The tail is full. Move what was written of this record so far to the
	// front and continue there, if it fits ahead of the reader.
	written := w.p - b.end
	if written+n < b.start {
		copy(b.buf[:written], b.buf[b.end:w.p])
		copy(b.buf[written:], frag)
		b.buf = b.buf[:b.end]
		w.p = written + n
		b.stats.Relocations++
		return n, nil
	}

	b.buf = append(b.buf, frag...)
	w.p = len(b.buf)
	return n, nil
}

// linearize moves the buffer into a new array with the tail span
// [start, len) followed by the front span [0, p), making room for n more
// bytes. Afterwards start is 0 and the layout is linear.
//
// The new array keeps the old capacity when that already holds need bytes,
// which happens after a relocation has cut len below cap.
func (w *cursor) linearize(n int) {
	b := w.b
	need := len(b.buf) - b.start + w.p + n + 1
	c := growCap(cap(b.buf), need)
	if c > cap(b.buf) {
		b.stats.Grows++
	}

	grown := make([]byte, 0, c)
	grown = append(grown, b.buf[b.start:]...)
	grown = append(grown, b.buf[:w.p]...)

	if b.end < b.start {
		b.end = len(b.buf) - b.start + b.end
	} else {
		b.end -= b.start
	}
	b.buf = grown
	b.start = 0
}

// growCap returns the first value of c, 1.5c, 2.25c, ... that is >= need.
// Each step adds at least one byte; on overflow need itself is returned.
func growCap(c, need int) int {
	for c < need {
		step := c >> 1
		if step == 0 {
			step = 1
		}
		if c > math.MaxInt-step {
			return need
		}
		c += step
	}
	return c
}
