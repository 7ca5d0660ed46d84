// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import (
	"io"

	"github.com/sugawarayuuta/sonnet"
)

// JSON encodes values of any JSON-marshalable type as a uvarint length
// followed by the JSON document.
//
// Marshaling follows encoding/json rules (struct tags, Marshaler and
// Unmarshaler implementations).
type JSON[T any] struct{}

func (JSON[T]) Encode(w io.Writer, v *T) error {
	doc, err := sonnet.Marshal(v)
	if err != nil {
		return err
	}
	if err := putHeader(w, len(doc)); err != nil {
		return err
	}
	_, err = w.Write(doc)
	return err
}

func (JSON[T]) Decode(data []byte) (T, int, error) {
	var v T
	doc, n, err := payload(data)
	if err != nil {
		return v, 0, err
	}
	if err := sonnet.Unmarshal(doc, &v); err != nil {
		return v, 0, err
	}
	return v, n, nil
}
