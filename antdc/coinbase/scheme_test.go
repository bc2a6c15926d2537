// Copyright © 2025 ANTDChain Contributors
// Licensed under the MIT License (MIT). See LICENSE in the repository root
// for more information.

package coinbase

import (
    "math"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestLookupScheme(t *testing.T) {
    s, err := LookupScheme("asicseer")
    require.NoError(t, err)
    assert.Equal(t, "AsicSeer", s.Label())

    s, err = LookupScheme("  BCHN ")
    require.NoError(t, err)
    assert.Equal(t, "bchn", s.Name())

    _, err = LookupScheme("ckpool")
    require.ErrorIs(t, err, ErrUnknownScheme)
    assert.Contains(t, err.Error(), `"ckpool"`)
}

func TestSchemesOrder(t *testing.T) {
    all := Schemes()
    require.Len(t, all, 2)
    assert.Equal(t, "asicseer", all[0].Name())
    assert.Equal(t, "bchn", all[1].Name())
    assert.Equal(t, []string{"asicseer", "bchn"}, SchemeNames())

    // Callers cannot reorder the registry.
    all[0] = all[1]
    assert.Equal(t, "asicseer", Schemes()[0].Name())
}

func TestSchemeEncodeDelegates(t *testing.T) {
    for _, h := range []int64{-1, 0, 16, 17, 128, 2113664} {
        assert.Equal(t, EncodeCompactHeight(int32(h)), AsicSeer{}.Encode(h))
        assert.Equal(t, EncodeScriptHeight(h), BCHN{}.Encode(h))
    }
}

func TestAsicSeerTruncatesTo32Bits(t *testing.T) {
    h := int64(math.MaxInt32) + 1
    assert.Equal(t, EncodeCompactHeight(math.MinInt32), AsicSeer{}.Encode(h))
}
