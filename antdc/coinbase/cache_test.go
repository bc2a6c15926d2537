// Copyright © 2025 ANTDChain Contributors
// Licensed under the MIT License (MIT). See LICENSE in the repository root
// for more information.

package coinbase

import (
    "sync"
    "testing"

    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/testutil"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestNewEncodingCacheRejectsBadSize(t *testing.T) {
    _, err := NewEncodingCache(0, nil)
    require.ErrorIs(t, err, ErrCacheSize)

    _, err = NewEncodingCache(-5, nil)
    require.ErrorIs(t, err, ErrCacheSize)
}

func TestEncodingCacheHitsAndMisses(t *testing.T) {
    reg := prometheus.NewRegistry()
    cache, err := NewEncodingCache(8, NewMetrics(reg))
    require.NoError(t, err)

    first := cache.Encode(BCHN{}, 128)
    second := cache.Encode(BCHN{}, 128)
    assert.Equal(t, []byte{0x02, 0x80, 0x00}, first)
    assert.Equal(t, first, second)

    cache.Encode(AsicSeer{}, 128)

    m := cache.Metrics()
    assert.Equal(t, 1.0, testutil.ToFloat64(m.Hits.WithLabelValues("bchn")))
    assert.Equal(t, 1.0, testutil.ToFloat64(m.Misses.WithLabelValues("bchn")))
    assert.Equal(t, 1.0, testutil.ToFloat64(m.Encodings.WithLabelValues("bchn")))
    assert.Equal(t, 1.0, testutil.ToFloat64(m.Misses.WithLabelValues("asicseer")))
    assert.Equal(t, 2, cache.Len())

    n, err := testutil.GatherAndCount(reg, "cbheight_encodings_total")
    require.NoError(t, err)
    assert.Equal(t, 2, n)
}

func TestEncodingCacheReturnsCopies(t *testing.T) {
    cache, err := NewEncodingCache(4, nil)
    require.NoError(t, err)

    b := cache.Encode(AsicSeer{}, 2113664)
    b[0] = 0xff
    assert.Equal(t, []byte{0x04, 0x80, 0x40, 0x20, 0x00}, cache.Encode(AsicSeer{}, 2113664))
}

func TestEncodingCacheEvicts(t *testing.T) {
    cache, err := NewEncodingCache(2, nil)
    require.NoError(t, err)

    cache.Encode(BCHN{}, 1)
    cache.Encode(BCHN{}, 2)
    cache.Encode(BCHN{}, 3)
    assert.Equal(t, 2, cache.Len())

    cache.Purge()
    assert.Equal(t, 0, cache.Len())
}

func TestEncodingCacheConcurrent(t *testing.T) {
    cache, err := NewEncodingCache(64, nil)
    require.NoError(t, err)

    var wg sync.WaitGroup
    for w := 0; w < 8; w++ {
        wg.Add(1)
        go func() {
            defer wg.Done()
            for h := int64(0); h < 200; h++ {
                assert.Equal(t, EncodeScriptHeight(h), cache.Encode(BCHN{}, h))
            }
        }()
    }
    wg.Wait()
    assert.LessOrEqual(t, cache.Len(), 64)
}
