// Copyright © 2025 ANTDChain Contributors
// Licensed under the MIT License (MIT). See LICENSE in the repository root
// for more information.

package script

// EncodeScriptNum returns the minimal sign-magnitude little-endian encoding
// of n. The top bit of the last byte carries the sign; zero is empty.
func EncodeScriptNum(n int64) []byte {
    if n == 0 {
        return []byte{}
    }

    neg := n < 0
    // uint64 conversion keeps math.MinInt64 intact.
    mag := uint64(n)
    if neg {
        mag = -mag
    }

    out := make([]byte, 0, 9)
    for mag > 0 {
        out = append(out, byte(mag&0xff))
        mag >>= 8
    }

    last := len(out) - 1
    switch {
    case out[last]&0x80 != 0:
        if neg {
            out = append(out, 0x80)
        } else {
            out = append(out, 0x00)
        }
    case neg:
        out[last] |= 0x80
    }
    return out
}
