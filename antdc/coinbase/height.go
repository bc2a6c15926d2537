// Copyright © 2025 ANTDChain Contributors
// Licensed under the MIT License (MIT). See LICENSE in the repository root
// for more information.

// Package coinbase encodes block heights for a coinbase scriptSig.
//
// Two schemes are provided and they are not interchangeable: the compact
// AsicSeer form with an explicit length byte, and the BCHN form which pushes
// the height as a minimal script number.
package coinbase

import (
    "github.com/antdaza/cbheight/antdc/byteorder"
    "github.com/antdaza/cbheight/antdc/script"
)

// Bracket limits for the compact form. A height equal to a limit moves to
// the next, longer bracket.
const (
    compactLimit1 = 128
    compactLimit2 = 16512
    compactLimit3 = 2113664
)

func compactLen(height int32) int {
    switch {
    case height < compactLimit1:
        return 1
    case height < compactLimit2:
        return 2
    case height < compactLimit3:
        return 3
    default:
        return 4
    }
}

// EncodeCompactHeight returns a length byte followed by that many low bytes
// of the little-endian height. Negative heights always use one byte.
func EncodeCompactHeight(height int32) []byte {
    n := compactLen(height)

    var le [4]byte
    byteorder.PutLE32(le[:], uint32(height))

    out := make([]byte, 0, n+1)
    out = append(out, byte(n))
    return append(out, le[:n]...)
}

// EncodeScriptHeight returns the script push of height: a single opcode for
// 0, -1 and 1..16, otherwise a framed minimal script number.
func EncodeScriptHeight(height int64) []byte {
    if op, ok := script.SmallIntOpcode(height); ok {
        return []byte{byte(op)}
    }
    return script.AppendPush(nil, script.EncodeScriptNum(height))
}
