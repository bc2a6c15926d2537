// Copyright © 2025 ANTDChain Contributors
// Licensed under the MIT License (MIT). See LICENSE in the repository root
// for more information.

package script

import "github.com/antdaza/cbheight/antdc/byteorder"

// AppendPush appends a push of data to dst using the shortest framing.
func AppendPush(dst, data []byte) []byte {
    n := len(data)
    switch PushKindForLen(n) {
    case PushDirect:
        dst = append(dst, byte(n))
    case PushData1:
        dst = append(dst, byte(OP_PUSHDATA1), byte(n))
    case PushData2:
        var b2 [2]byte
        byteorder.PutLE16(b2[:], uint16(n))
        dst = append(dst, byte(OP_PUSHDATA2))
        dst = append(dst, b2[:]...)
    default:
        var b4 [4]byte
        byteorder.PutLE32(b4[:], uint32(n))
        dst = append(dst, byte(OP_PUSHDATA4))
        dst = append(dst, b4[:]...)
    }
    return append(dst, data...)
}
