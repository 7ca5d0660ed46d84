// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"bytes"
	"io"
)

// Bytes encodes byte slices as a uvarint length followed by the bytes.
// A nil slice decodes as an empty, non-nil slice.
type Bytes struct{}

func (Bytes) Encode(w io.Writer, v *[]byte) error {
	if err := putHeader(w, len(*v)); err != nil {
		return err
	}
	_, err := w.Write(*v)
	return err
}

func (Bytes) Decode(data []byte) ([]byte, int, error) {
	p, n, err := payload(data)
	if err != nil {
		return nil, 0, err
	}
	return bytes.Clone(p), n, nil
}

// String encodes strings as a uvarint length followed by the bytes.
type String struct{}

func (String) Encode(w io.Writer, v *string) error {
	if err := putHeader(w, len(*v)); err != nil {
		return err
	}
	_, err := io.WriteString(w, *v)
	return err
}

func (String) Decode(data []byte) (string, int, error) {
	p, n, err := payload(data)
	if err != nil {
		return "", 0, err
	}
	return string(p), n, nil
}

// Empty encodes struct{} as zero bytes.
type Empty struct{}

func (Empty) Encode(io.Writer, *struct{}) error { return nil }

func (Empty) Decode([]byte) (struct{}, int, error) { return struct{}{}, 0, nil }
