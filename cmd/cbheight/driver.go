// Copyright © 2025 ANTDChain Contributors
// Licensed under the MIT License (MIT). See LICENSE in the repository root
// for more information.

package main

import (
    "bufio"
    "bytes"
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "strconv"
    "strings"

    "github.com/prometheus/client_golang/prometheus"
    "github.com/sirupsen/logrus"

    "github.com/antdaza/cbheight/antdc/coinbase"
    "github.com/antdaza/cbheight/antdc/hexfmt"
)

var errInvalidHeight = errors.New("invalid height argument")

type encodingJSON struct {
    Scheme string `json:"scheme"`
    Label  string `json:"label"`
    Hex    string `json:"hex"`
}

type resultJSON struct {
    Height    int32          `json:"height"`
    Encodings []encodingJSON `json:"encodings"`
    Agree     *bool          `json:"agree,omitempty"`
}

// driver encodes heights with the selected schemes and prints the results.
type driver struct {
    schemes  []coinbase.Scheme
    cache    *coinbase.EncodingCache
    registry *prometheus.Registry
    logger   *logrus.Logger
    out      io.Writer
    enc      *json.Encoder
}

func newDriver(cfg Config, logger *logrus.Logger, out io.Writer) (*driver, error) {
    schemes, err := cfg.selectedSchemes()
    if err != nil {
        return nil, err
    }

    registry := prometheus.NewRegistry()
    cache, err := coinbase.NewEncodingCache(cfg.CacheSize, coinbase.NewMetrics(registry))
    if err != nil {
        return nil, err
    }

    d := &driver{
        schemes:  schemes,
        cache:    cache,
        registry: registry,
        logger:   logger,
        out:      out,
    }
    if cfg.JSON {
        d.enc = json.NewEncoder(out)
        d.enc.SetEscapeHTML(false)
    }
    return d, nil
}

// parseHeight accepts a base-10 integer that fits in 32 bits.
func parseHeight(arg string) (int32, error) {
    v, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 32)
    if err != nil {
        return 0, fmt.Errorf("%w %q", errInvalidHeight, arg)
    }
    return int32(v), nil
}

func (d *driver) emit(height int32) error {
    res := resultJSON{Height: height, Encodings: make([]encodingJSON, 0, len(d.schemes))}
    var encoded [][]byte

    for _, s := range d.schemes {
        b := d.cache.Encode(s, int64(height))
        encoded = append(encoded, b)

        d.logger.WithFields(logrus.Fields{
            "height": height,
            "scheme": s.Name(),
            "bytes":  len(b),
        }).Debug("Encoded height")

        h := hexfmt.ToHex(b)
        if d.enc == nil {
            if _, err := fmt.Fprintf(d.out, "%s - Value: %d Hex: %s\n", s.Label(), height, h); err != nil {
                return err
            }
            continue
        }
        res.Encodings = append(res.Encodings, encodingJSON{Scheme: s.Name(), Label: s.Label(), Hex: h})
    }

    if d.enc == nil {
        return nil
    }
    if len(encoded) == 2 {
        agree := bytes.Equal(encoded[0], encoded[1])
        res.Agree = &agree
    }
    return d.enc.Encode(res)
}

// runBatch processes one height per line. Blank lines and lines starting
// with '#' are skipped.
func (d *driver) runBatch(in io.Reader) error {
    scanner := bufio.NewScanner(in)
    lineNo := 0
    for scanner.Scan() {
        lineNo++
        line := strings.TrimSpace(scanner.Text())
        if line == "" || strings.HasPrefix(line, "#") {
            continue
        }
        height, err := parseHeight(line)
        if err != nil {
            return fmt.Errorf("line %d: %w", lineNo, err)
        }
        if err := d.emit(height); err != nil {
            return err
        }
    }
    if err := scanner.Err(); err != nil {
        return fmt.Errorf("failed to read heights: %w", err)
    }
    d.logger.WithFields(logrus.Fields{
        "lines":  lineNo,
        "cached": d.cache.Len(),
    }).Info("Batch complete")
    return nil
}

// logMetrics writes every collected counter to the logger.
func (d *driver) logMetrics() {
    families, err := d.registry.Gather()
    if err != nil {
        d.logger.Warnf("Failed to gather metrics: %v", err)
        return
    }
    for _, mf := range families {
        for _, m := range mf.GetMetric() {
            fields := logrus.Fields{
                "metric": mf.GetName(),
                "value":  m.GetCounter().GetValue(),
            }
            for _, lp := range m.GetLabel() {
                fields[lp.GetName()] = lp.GetValue()
            }
            d.logger.WithFields(fields).Info("Encoding metric")
        }
    }
}
