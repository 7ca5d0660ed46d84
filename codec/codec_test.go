// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec_test

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"code.hybscloud.com/encq/codec"
)

// fragments records every Write call separately.
type fragments [][]byte

func (f *fragments) Write(p []byte) (int, error) {
	*f = append(*f, bytes.Clone(p))
	return len(p), nil
}

func (f fragments) joined() []byte { return bytes.Join(f, nil) }

func TestUvarint(t *testing.T) {
	c := codec.Uvarint[uint64]{}
	for _, v := range []uint64{0, 1, 127, 128, 300, math.MaxUint64} {
		var f fragments
		if err := c.Encode(&f, &v); err != nil {
			t.Fatalf("Encode(%d): %v", v, err)
		}
		if len(f) != 1 {
			t.Fatalf("Encode(%d): got %d fragments, want 1", v, len(f))
		}
		data := append(f.joined(), 0xAA, 0xBB)
		got, n, err := c.Decode(data)
		if err != nil {
			t.Fatalf("Decode(%d): %v", v, err)
		}
		if got != v || n != len(data)-2 {
			t.Fatalf("Decode(%d): got (%d, %d), want (%d, %d)", v, got, n, v, len(data)-2)
		}
	}
}

func TestUvarintOverflow(t *testing.T) {
	wide := uint64(300)
	var f fragments
	codec.Uvarint[uint64]{}.Encode(&f, &wide)

	if _, _, err := (codec.Uvarint[uint8]{}).Decode(f.joined()); !errors.Is(err, codec.ErrOverflow) {
		t.Fatalf("Decode uint8: got %v, want ErrOverflow", err)
	}

	// Eleven continuation bytes overflow 64 bits
	long := bytes.Repeat([]byte{0xff}, 11)
	if _, _, err := (codec.Uvarint[uint64]{}).Decode(long); !errors.Is(err, codec.ErrOverflow) {
		t.Fatalf("Decode long: got %v, want ErrOverflow", err)
	}
}

func TestVarint(t *testing.T) {
	c := codec.Varint[int32]{}
	for _, v := range []int32{0, -1, 1, -64, 63, math.MinInt32, math.MaxInt32} {
		var f fragments
		if err := c.Encode(&f, &v); err != nil {
			t.Fatalf("Encode(%d): %v", v, err)
		}
		got, n, err := c.Decode(f.joined())
		if err != nil {
			t.Fatalf("Decode(%d): %v", v, err)
		}
		if got != v || n != len(f.joined()) {
			t.Fatalf("Decode(%d): got (%d, %d)", v, got, n)
		}
	}

	// Small negatives stay one byte
	var f fragments
	v := int32(-3)
	c.Encode(&f, &v)
	if len(f.joined()) != 1 {
		t.Fatalf("Encode(-3): got %d bytes, want 1", len(f.joined()))
	}

	big := int64(math.MaxInt32 + 1)
	var g fragments
	codec.Varint[int64]{}.Encode(&g, &big)
	if _, _, err := c.Decode(g.joined()); !errors.Is(err, codec.ErrOverflow) {
		t.Fatalf("Decode int32 overflow: got %v, want ErrOverflow", err)
	}
}

func TestFloat64(t *testing.T) {
	c := codec.Float64{}
	v := -math.Pi
	var f fragments
	c.Encode(&f, &v)
	got, n, err := c.Decode(f.joined())
	if err != nil || got != v || n != 8 {
		t.Fatalf("Decode: got (%v, %d, %v), want (%v, 8, nil)", got, n, err, v)
	}
	if _, _, err := c.Decode(f.joined()[:7]); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("Decode short: got %v, want ErrUnexpectedEOF", err)
	}
}

func TestStringFragments(t *testing.T) {
	c := codec.String{}
	s := "hello"
	var f fragments
	if err := c.Encode(&f, &s); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(f) != 2 {
		t.Fatalf("Encode: got %d fragments, want header and payload", len(f))
	}
	if !bytes.Equal(f[0], []byte{5}) || string(f[1]) != s {
		t.Fatalf("Encode: got %q", f)
	}

	data := append(f.joined(), "trailing"...)
	got, n, err := c.Decode(data)
	if err != nil || got != s || n != 6 {
		t.Fatalf("Decode: got (%q, %d, %v), want (%q, 6, nil)", got, n, err, s)
	}
}

func TestBytesCopies(t *testing.T) {
	c := codec.Bytes{}
	v := []byte{1, 2, 3}
	var f fragments
	c.Encode(&f, &v)
	data := f.joined()

	got, n, err := c.Decode(data)
	if err != nil || n != 4 || !bytes.Equal(got, v) {
		t.Fatalf("Decode: got (%v, %d, %v)", got, n, err)
	}
	data[1] = 99
	if got[0] != 1 {
		t.Fatal("Decode result aliases the input")
	}

	var nilBytes []byte
	var g fragments
	c.Encode(&g, &nilBytes)
	empty, n, err := c.Decode(g.joined())
	if err != nil || n != 1 || empty == nil || len(empty) != 0 {
		t.Fatalf("Decode nil: got (%v, %d, %v), want empty non-nil slice", empty, n, err)
	}
}

func TestTruncated(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
	}{
		{"UvarintEmpty", func() error { _, _, err := (codec.Uvarint[uint]{}).Decode(nil); return err }},
		{"UvarintCut", func() error { _, _, err := (codec.Uvarint[uint]{}).Decode([]byte{0x80}); return err }},
		{"VarintEmpty", func() error { _, _, err := (codec.Varint[int]{}).Decode(nil); return err }},
		{"StringPayload", func() error { _, _, err := (codec.String{}).Decode([]byte{5, 'a', 'b'}); return err }},
		{"BytesHeader", func() error { _, _, err := (codec.Bytes{}).Decode(nil); return err }},
		{"JSONPayload", func() error { _, _, err := (codec.JSON[int]{}).Decode([]byte{3, '1'}); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, io.ErrUnexpectedEOF) {
				t.Fatalf("got %v, want ErrUnexpectedEOF", err)
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	c := codec.Empty{}
	var f fragments
	v := struct{}{}
	if err := c.Encode(&f, &v); err != nil || len(f) != 0 {
		t.Fatalf("Encode: got %d fragments, err %v, want none", len(f), err)
	}
	if _, n, err := c.Decode([]byte{1, 2}); err != nil || n != 0 {
		t.Fatalf("Decode: got (%d, %v), want (0, nil)", n, err)
	}
}

type point struct {
	X, Y int
	Name string `json:"name,omitempty"`
}

func TestJSON(t *testing.T) {
	c := codec.JSON[point]{}
	v := point{X: 3, Y: -4, Name: "p"}
	var f fragments
	if err := c.Encode(&f, &v); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(f) != 2 {
		t.Fatalf("Encode: got %d fragments, want 2", len(f))
	}
	if string(f[1]) != `{"X":3,"Y":-4,"name":"p"}` {
		t.Fatalf("Encode: got document %s", f[1])
	}

	data := append(f.joined(), '{')
	got, n, err := c.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != v || n != len(data)-1 {
		t.Fatalf("Decode: got (%+v, %d), want (%+v, %d)", got, n, v, len(data)-1)
	}

	// Header is fine, document is not JSON
	if _, _, err := c.Decode([]byte{2, '{', 'x'}); err == nil {
		t.Fatal("Decode malformed: got nil error")
	}
}
