// Copyright © 2025 ANTDChain Contributors
// Licensed under the MIT License (MIT). See LICENSE in the repository root
// for more information.

// Package hexfmt renders byte slices as lowercase hexadecimal.
package hexfmt

import (
    "errors"
    "fmt"
)

// ErrNibbleRange marks a nibble outside 0..15. It only ever appears as a
// panic value and means the renderer itself is broken.
var ErrNibbleRange = errors.New("hexfmt: nibble out of range")

func nibbleChar(n byte) byte {
    switch {
    case n < 10:
        return '0' + n
    case n < 16:
        return 'a' + (n - 10)
    default:
        panic(fmt.Errorf("%w: %d", ErrNibbleRange, n))
    }
}

// ToHex returns two lowercase hex digits per byte, high nibble first.
func ToHex(b []byte) string {
    out := make([]byte, 0, len(b)*2)
    for _, c := range b {
        out = append(out, nibbleChar((c>>4)&0x0f), nibbleChar(c&0x0f))
    }
    return string(out)
}
