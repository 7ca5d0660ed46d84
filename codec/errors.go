// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package codec

import "errors"

// ErrOverflow indicates a record holds a number too large for the target
// type.
var ErrOverflow = errors.New("codec: value overflows target type")
