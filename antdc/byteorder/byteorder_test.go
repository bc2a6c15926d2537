// Copyright © 2025 ANTDChain Contributors
// Licensed under the MIT License (MIT). See LICENSE in the repository root
// for more information.

package byteorder

import (
    "encoding/binary"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestProbeMatchesNativeEndian(t *testing.T) {
    var buf [2]byte
    binary.NativeEndian.PutUint16(buf[:], 0x0102)
    assert.Equal(t, buf[0] == 0x02, HostIsLittleEndian())
    assert.Equal(t, probeLittleEndian(), HostIsLittleEndian())
}

func TestSwapBytes(t *testing.T) {
    assert.Equal(t, uint16(0x3412), SwapBytes16(0x1234))
    assert.Equal(t, uint32(0x78563412), SwapBytes32(0x12345678))
    assert.Equal(t, uint16(0xffff), SwapBytes16(0xffff))
    assert.Equal(t, uint32(0), SwapBytes32(0))
}

func TestHostToLE(t *testing.T) {
    if HostIsLittleEndian() {
        assert.Equal(t, uint16(0x1234), HostToLE16(0x1234))
        assert.Equal(t, uint32(0x12345678), HostToLE32(0x12345678))
    } else {
        assert.Equal(t, uint16(0x3412), HostToLE16(0x1234))
        assert.Equal(t, uint32(0x78563412), HostToLE32(0x12345678))
    }
}

func TestPutLE(t *testing.T) {
    testCases := []struct {
        v    uint32
        want []byte
    }{
        {0, []byte{0x00, 0x00, 0x00, 0x00}},
        {0x80, []byte{0x80, 0x00, 0x00, 0x00}},
        {0x12345678, []byte{0x78, 0x56, 0x34, 0x12}},
        {0xffffffff, []byte{0xff, 0xff, 0xff, 0xff}},
    }

    for _, tc := range testCases {
        var b4 [4]byte
        PutLE32(b4[:], tc.v)
        assert.Equal(t, tc.want, b4[:], "PutLE32(%#x)", tc.v)
        assert.Equal(t, tc.v, binary.LittleEndian.Uint32(b4[:]))
    }

    var b2 [2]byte
    PutLE16(b2[:], 0xabcd)
    assert.Equal(t, []byte{0xcd, 0xab}, b2[:])
}

func TestPutLEShortBufferPanics(t *testing.T) {
    require.Panics(t, func() { PutLE32(make([]byte, 3), 1) })
    require.Panics(t, func() { PutLE16(make([]byte, 1), 1) })
}
