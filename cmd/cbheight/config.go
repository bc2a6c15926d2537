// Copyright © 2025 ANTDChain Contributors
// Licensed under the MIT License (MIT). See LICENSE in the repository root
// for more information.

package main

import (
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "strings"

    "github.com/sirupsen/logrus"

    "github.com/antdaza/cbheight/antdc/coinbase"
)

const schemeBoth = "both"

var errInvalidConfig = errors.New("invalid config")

// Config is the effective driver configuration.
type Config struct {
    Scheme    string `json:"scheme"`
    LogLevel  string `json:"log_level"`
    JSON      bool   `json:"json"`
    Batch     bool   `json:"batch"`
    CacheSize int    `json:"cache_size"`
    Metrics   bool   `json:"metrics"`
}

var allowedLogLevels = map[string]struct{}{
    "debug": {},
    "info":  {},
    "warn":  {},
    "error": {},
}

func DefaultConfig() Config {
    return Config{
        Scheme:    schemeBoth,
        LogLevel:  "warn",
        CacheSize: 1024,
    }
}

// LoadConfigFile reads a JSON config file over base. Keys missing from the
// file keep their value from base.
func LoadConfigFile(path string, base Config) (Config, error) {
    data, err := os.ReadFile(path)
    if err != nil {
        return base, fmt.Errorf("%w: failed to read config file: %v", errInvalidConfig, err)
    }

    cfg := base
    if err := json.Unmarshal(data, &cfg); err != nil {
        return base, fmt.Errorf("%w: failed to parse config file %s: %v", errInvalidConfig, path, err)
    }
    return cfg, nil
}

func ValidateConfig(cfg Config) error {
    scheme := strings.ToLower(strings.TrimSpace(cfg.Scheme))
    if scheme != schemeBoth {
        if _, err := coinbase.LookupScheme(scheme); err != nil {
            return fmt.Errorf("%w: scheme must be one of %s or %s: %v", errInvalidConfig, strings.Join(coinbase.SchemeNames(), ", "), schemeBoth, err)
        }
    }
    level := strings.ToLower(strings.TrimSpace(cfg.LogLevel))
    if _, ok := allowedLogLevels[level]; !ok {
        return fmt.Errorf("%w: invalid log_level %q", errInvalidConfig, cfg.LogLevel)
    }
    if cfg.CacheSize <= 0 {
        return fmt.Errorf("%w: cache_size must be > 0", errInvalidConfig)
    }
    return nil
}

// selectedSchemes resolves cfg.Scheme, which must already be valid.
func (cfg Config) selectedSchemes() ([]coinbase.Scheme, error) {
    scheme := strings.ToLower(strings.TrimSpace(cfg.Scheme))
    if scheme == schemeBoth {
        return coinbase.Schemes(), nil
    }
    s, err := coinbase.LookupScheme(scheme)
    if err != nil {
        return nil, err
    }
    return []coinbase.Scheme{s}, nil
}

func (cfg Config) logLevel() logrus.Level {
    level, err := logrus.ParseLevel(strings.TrimSpace(cfg.LogLevel))
    if err != nil {
        return logrus.WarnLevel
    }
    return level
}
