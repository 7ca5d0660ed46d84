// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"encoding/binary"
	"io"
	"math"
)

// Unsigned is the set of unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Uvarint encodes unsigned integers as LEB128 varints of 1 to 10 bytes.
type Uvarint[T Unsigned] struct{}

func (Uvarint[T]) Encode(w io.Writer, v *T) error {
	var scratch [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(scratch[:], uint64(*v))
	_, err := w.Write(scratch[:n])
	return err
}

func (Uvarint[T]) Decode(data []byte) (T, int, error) {
	x, n, err := uvarint(data)
	if err != nil {
		return 0, 0, err
	}
	v := T(x)
	if uint64(v) != x {
		return 0, 0, ErrOverflow
	}
	return v, n, nil
}

// Varint encodes signed integers as zig-zag LEB128 varints, so small
// negative numbers stay short.
type Varint[T Signed] struct{}

func (Varint[T]) Encode(w io.Writer, v *T) error {
	var scratch [binary.MaxVarintLen64]byte
	n := binary.PutVarint(scratch[:], int64(*v))
	_, err := w.Write(scratch[:n])
	return err
}

func (Varint[T]) Decode(data []byte) (T, int, error) {
	x, n := binary.Varint(data)
	switch {
	case n == 0:
		return 0, 0, io.ErrUnexpectedEOF
	case n < 0:
		return 0, 0, ErrOverflow
	}
	v := T(x)
	if int64(v) != x {
		return 0, 0, ErrOverflow
	}
	return v, n, nil
}

// Float64 encodes float64 values as their IEEE 754 bits, little endian.
type Float64 struct{}

func (Float64) Encode(w io.Writer, v *float64) error {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], math.Float64bits(*v))
	_, err := w.Write(scratch[:])
	return err
}

func (Float64) Decode(data []byte) (float64, int, error) {
	if len(data) < 8 {
		return 0, 0, io.ErrUnexpectedEOF
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(data)), 8, nil
}

func uvarint(data []byte) (uint64, int, error) {
	x, n := binary.Uvarint(data)
	switch {
	case n == 0:
		return 0, 0, io.ErrUnexpectedEOF
	case n < 0:
		return 0, 0, ErrOverflow
	}
	return x, n, nil
}

func putHeader(w io.Writer, size int) error {
	var scratch [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(scratch[:], uint64(size))
	_, err := w.Write(scratch[:n])
	return err
}

// payload splits a length-prefixed record into its payload and total size.
func payload(data []byte) ([]byte, int, error) {
	size, n, err := uvarint(data)
	if err != nil {
		return nil, 0, err
	}
	if size > uint64(len(data)-n) {
		return nil, 0, io.ErrUnexpectedEOF
	}
	end := n + int(size)
	return data[n:end], end, nil
}
