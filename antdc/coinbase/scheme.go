// Copyright © 2025 ANTDChain Contributors
// Licensed under the MIT License (MIT). See LICENSE in the repository root
// for more information.

package coinbase

import (
    "bytes"
    "errors"
    "fmt"
    "strings"
)

var ErrUnknownScheme = errors.New("unknown height scheme")

// Scheme is one way of serialising a height.
type Scheme interface {
    // Name is the lowercase identifier used in flags and JSON.
    Name() string
    // Label is the human readable tag printed next to results.
    Label() string
    Encode(height int64) []byte
}

// AsicSeer is the compact length-prefixed scheme. Heights are truncated to
// 32 bits before encoding.
type AsicSeer struct{}

func (AsicSeer) Name() string  { return "asicseer" }
func (AsicSeer) Label() string { return "AsicSeer" }

func (AsicSeer) Encode(height int64) []byte {
    return EncodeCompactHeight(int32(height))
}

// BCHN pushes the height as a minimal script number.
type BCHN struct{}

func (BCHN) Name() string  { return "bchn" }
func (BCHN) Label() string { return "BCHN" }

func (BCHN) Encode(height int64) []byte {
    return EncodeScriptHeight(height)
}

var schemes = []Scheme{AsicSeer{}, BCHN{}}

// Schemes returns every known scheme, compact form first.
func Schemes() []Scheme {
    out := make([]Scheme, len(schemes))
    copy(out, schemes)
    return out
}

// LookupScheme resolves a scheme by case-insensitive name.
func LookupScheme(name string) (Scheme, error) {
    key := strings.ToLower(strings.TrimSpace(name))
    for _, s := range schemes {
        if s.Name() == key {
            return s, nil
        }
    }
    return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// SchemeNames lists the names accepted by LookupScheme.
func SchemeNames() []string {
    names := make([]string, 0, len(schemes))
    for _, s := range schemes {
        names = append(names, s.Name())
    }
    return names
}

// Comparison holds both encodings of one height.
type Comparison struct {
    Height  int32
    Compact []byte
    Script  []byte
}

// Agree reports whether both schemes produced identical bytes.
func (c Comparison) Agree() bool {
    return bytes.Equal(c.Compact, c.Script)
}

func Compare(height int32) Comparison {
    return Comparison{
        Height:  height,
        Compact: EncodeCompactHeight(height),
        Script:  EncodeScriptHeight(int64(height)),
    }
}
