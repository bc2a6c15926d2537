// Copyright © 2025 ANTDChain Contributors
// Licensed under the MIT License (MIT). See LICENSE in the repository root
// for more information.

package coinbase

import (
    "errors"
    "fmt"
    "sync"

    "github.com/hashicorp/golang-lru/v2/simplelru"
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

var ErrCacheSize = errors.New("cache size must be positive")

// Metrics counts encodings per scheme.
type Metrics struct {
    Encodings *prometheus.CounterVec
    Hits      *prometheus.CounterVec
    Misses    *prometheus.CounterVec
}

// NewMetrics builds the counters and registers them on reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
    factory := promauto.With(reg)
    return &Metrics{
        Encodings: factory.NewCounterVec(prometheus.CounterOpts{
            Name: "cbheight_encodings_total",
            Help: "Heights encoded, by scheme",
        }, []string{"scheme"}),
        Hits: factory.NewCounterVec(prometheus.CounterOpts{
            Name: "cbheight_cache_hits_total",
            Help: "Encoding cache hits, by scheme",
        }, []string{"scheme"}),
        Misses: factory.NewCounterVec(prometheus.CounterOpts{
            Name: "cbheight_cache_misses_total",
            Help: "Encoding cache misses, by scheme",
        }, []string{"scheme"}),
    }
}

type cacheKey struct {
    scheme string
    height int64
}

// EncodingCache memoises scheme encodings in a small LRU.
type EncodingCache struct {
    lru     *simplelru.LRU[cacheKey, []byte]
    metrics *Metrics
    mu      sync.Mutex
}

func NewEncodingCache(size int, metrics *Metrics) (*EncodingCache, error) {
    if size <= 0 {
        return nil, fmt.Errorf("%w: %d", ErrCacheSize, size)
    }
    lru, err := simplelru.NewLRU[cacheKey, []byte](size, nil)
    if err != nil {
        return nil, err
    }
    if metrics == nil {
        metrics = NewMetrics(nil)
    }
    return &EncodingCache{lru: lru, metrics: metrics}, nil
}

// Encode returns s.Encode(height), reusing an earlier result when cached.
// The returned slice is always a private copy.
func (c *EncodingCache) Encode(s Scheme, height int64) []byte {
    key := cacheKey{scheme: s.Name(), height: height}

    c.mu.Lock()
    b, ok := c.lru.Get(key)
    c.mu.Unlock()

    if ok {
        c.metrics.Hits.WithLabelValues(key.scheme).Inc()
        return append([]byte(nil), b...)
    }

    c.metrics.Misses.WithLabelValues(key.scheme).Inc()
    b = s.Encode(height)
    c.metrics.Encodings.WithLabelValues(key.scheme).Inc()

    c.mu.Lock()
    c.lru.Add(key, b)
    c.mu.Unlock()

    return append([]byte(nil), b...)
}

// Len is the number of cached encodings.
func (c *EncodingCache) Len() int {
    c.mu.Lock()
    defer c.mu.Unlock()
    return c.lru.Len()
}

func (c *EncodingCache) Purge() {
    c.mu.Lock()
    defer c.mu.Unlock()
    c.lru.Purge()
}

// Metrics exposes the counters the cache reports into.
func (c *EncodingCache) Metrics() *Metrics {
    return c.metrics
}
