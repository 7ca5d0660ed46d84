// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package codec provides record formats for encq queues.
//
// Every format is self-delimiting: a record carries enough information for
// the decoder to find its end, so records can be packed back to back.
//
//	Uvarint[T]  unsigned integers, LEB128
//	Varint[T]   signed integers, zig-zag LEB128
//	Float64     8 bytes, little endian
//	Bytes       uvarint length + payload
//	String      uvarint length + payload
//	Empty       struct{}, zero bytes
//	JSON[T]     uvarint length + JSON document
//
// Length-prefixed formats write the header and the payload as two separate
// fragments, so the payload is never copied into a scratch buffer.
//
// Decoders copy out of the input; nothing returned aliases queue storage.
// Truncated input fails with [io.ErrUnexpectedEOF].
package codec
