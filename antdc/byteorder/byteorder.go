// Copyright © 2025 ANTDChain Contributors
// Licensed under the MIT License (MIT). See LICENSE in the repository root
// for more information.

// Package byteorder normalises host-order integers to little-endian.
package byteorder

import (
    "encoding/binary"
    "math/bits"
    "unsafe"
)

// probeValue is laid out in memory as 0f 00 on little-endian hosts.
const probeValue uint16 = 0x000f

var hostLittleEndian = probeLittleEndian()

func probeLittleEndian() bool {
    v := probeValue
    return *(*byte)(unsafe.Pointer(&v)) == byte(probeValue)
}

// HostIsLittleEndian reports the byte order detected at startup.
func HostIsLittleEndian() bool {
    return hostLittleEndian
}

func SwapBytes16(v uint16) uint16 { return bits.ReverseBytes16(v) }
func SwapBytes32(v uint32) uint32 { return bits.ReverseBytes32(v) }

// HostToLE16 returns v with its in-memory bytes in little-endian order.
func HostToLE16(v uint16) uint16 {
    if hostLittleEndian {
        return v
    }
    return SwapBytes16(v)
}

// HostToLE32 returns v with its in-memory bytes in little-endian order.
func HostToLE32(v uint32) uint32 {
    if hostLittleEndian {
        return v
    }
    return SwapBytes32(v)
}

// PutLE16 copies the normalised value's memory into dst[:2].
func PutLE16(dst []byte, v uint16) {
    binary.NativeEndian.PutUint16(dst, HostToLE16(v))
}

// PutLE32 copies the normalised value's memory into dst[:4].
func PutLE32(dst []byte, v uint32) {
    binary.NativeEndian.PutUint32(dst, HostToLE32(v))
}
