// Copyright © 2025 ANTDChain Contributors
// Licensed under the MIT License (MIT). See LICENSE in the repository root
// for more information.

// Command cbheight prints the coinbase encodings of a block height under the
// AsicSeer and BCHN schemes.
package main

import (
    "errors"
    "fmt"
    "io"
    "os"
    "regexp"
    "strings"

    "github.com/sirupsen/logrus"
    "github.com/urfave/cli/v2"
)

const appName = "cbheight"

// Exit statuses.
const (
    exitOK      = 0
    exitFailure = 1
    exitUsage   = 2
)

var errUsage = errors.New("usage error")

var negativeInt = regexp.MustCompile(`^-[0-9]+$`)

func main() {
    os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
    defaults := DefaultConfig()

    return &cli.App{
        Name:            appName,
        Usage:           "Serialize a block height for a coinbase scriptSig",
        ArgsUsage:       "<height>",
        HideHelpCommand: true,
        Reader:          stdin,
        Writer:          stdout,
        ErrWriter:       stderr,
        Flags: []cli.Flag{
            &cli.StringFlag{Name: "scheme", Value: defaults.Scheme, Usage: "Scheme to print: asicseer, bchn or both", EnvVars: []string{"CBHEIGHT_SCHEME"}},
            &cli.StringFlag{Name: "log-level", Value: defaults.LogLevel, Usage: "Log level: debug|info|warn|error", EnvVars: []string{"CBHEIGHT_LOG_LEVEL"}},
            &cli.BoolFlag{Name: "json", Usage: "Print one JSON object per height", EnvVars: []string{"CBHEIGHT_JSON"}},
            &cli.BoolFlag{Name: "batch", Usage: "Read heights from stdin, one per line", EnvVars: []string{"CBHEIGHT_BATCH"}},
            &cli.IntFlag{Name: "cache-size", Value: defaults.CacheSize, Usage: "Encoding cache capacity", EnvVars: []string{"CBHEIGHT_CACHE_SIZE"}},
            &cli.BoolFlag{Name: "metrics", Usage: "Log encoding counters when done", EnvVars: []string{"CBHEIGHT_METRICS"}},
            &cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "JSON config file", EnvVars: []string{"CBHEIGHT_CONFIG"}},
        },
        OnUsageError: func(c *cli.Context, err error, isSubcommand bool) error {
            return fmt.Errorf("%w: %v", errUsage, err)
        },
        ExitErrHandler: func(c *cli.Context, err error) {},
        Action:         encodeAction,
    }
}

// run executes the command and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
    app := newApp(stdin, stdout, stderr)
    err := app.Run(normalizeArgs(app.Flags, args))
    switch {
    case err == nil:
        return exitOK
    case errors.Is(err, errUsage):
        _, _ = fmt.Fprintf(stderr, "%s: %v\nusage: %s [flags] <height>\n", appName, err, appName)
        return exitUsage
    case errors.Is(err, errInvalidConfig):
        _, _ = fmt.Fprintf(stderr, "%s: %v\n", appName, err)
        return exitUsage
    default:
        _, _ = fmt.Fprintf(stderr, "%s: %v\n", appName, err)
        return exitFailure
    }
}

func encodeAction(c *cli.Context) error {
    cfg, err := resolveConfig(c)
    if err != nil {
        return err
    }

    logger := logrus.New()
    logger.SetOutput(c.App.ErrWriter)
    logger.SetFormatter(&logrus.TextFormatter{})
    logger.SetLevel(cfg.logLevel())
    if cfg.Metrics && !logger.IsLevelEnabled(logrus.InfoLevel) {
        logger.SetLevel(logrus.InfoLevel)
    }

    d, err := newDriver(cfg, logger, c.App.Writer)
    if err != nil {
        return err
    }
    if cfg.Metrics {
        defer d.logMetrics()
    }

    if cfg.Batch {
        if c.NArg() > 0 {
            return fmt.Errorf("%w: batch mode reads heights from stdin only", errUsage)
        }
        return d.runBatch(c.App.Reader)
    }

    switch c.NArg() {
    case 0:
        return fmt.Errorf("%w: please pass a height to serialize as hex", errUsage)
    case 1:
    default:
        return fmt.Errorf("%w: expected exactly one height, got %d arguments", errUsage, c.NArg())
    }

    height, err := parseHeight(c.Args().First())
    if err != nil {
        return err
    }
    return d.emit(height)
}

// resolveConfig layers defaults, the optional config file, then any flag
// or environment variable that was explicitly set.
func resolveConfig(c *cli.Context) (Config, error) {
    cfg := DefaultConfig()
    if path := c.String("config"); path != "" {
        loaded, err := LoadConfigFile(path, cfg)
        if err != nil {
            return cfg, err
        }
        cfg = loaded
    }

    if c.IsSet("scheme") {
        cfg.Scheme = c.String("scheme")
    }
    if c.IsSet("log-level") {
        cfg.LogLevel = c.String("log-level")
    }
    if c.IsSet("json") {
        cfg.JSON = c.Bool("json")
    }
    if c.IsSet("batch") {
        cfg.Batch = c.Bool("batch")
    }
    if c.IsSet("cache-size") {
        cfg.CacheSize = c.Int("cache-size")
    }
    if c.IsSet("metrics") {
        cfg.Metrics = c.Bool("metrics")
    }

    cfg.Scheme = strings.ToLower(strings.TrimSpace(cfg.Scheme))
    cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
    if err := ValidateConfig(cfg); err != nil {
        return cfg, err
    }
    return cfg, nil
}

// normalizeArgs moves positionals behind "--" so that flags may follow the
// height and a negative height is not mistaken for a flag.
func normalizeArgs(flags []cli.Flag, args []string) []string {
    if len(args) == 0 {
        return args
    }

    takesValue := make(map[string]bool)
    for _, f := range flags {
        if _, ok := f.(*cli.BoolFlag); ok {
            continue
        }
        for _, name := range f.Names() {
            takesValue["-"+name] = true
            takesValue["--"+name] = true
        }
    }

    out := []string{args[0]}
    var positional []string
    for i := 1; i < len(args); i++ {
        a := args[i]
        switch {
        case a == "--":
            positional = append(positional, args[i+1:]...)
            i = len(args)
        case len(a) > 1 && strings.HasPrefix(a, "-") && !negativeInt.MatchString(a):
            out = append(out, a)
            if takesValue[a] && i+1 < len(args) {
                i++
                out = append(out, args[i])
            }
        default:
            positional = append(positional, a)
        }
    }

    if len(positional) == 0 {
        return out
    }
    out = append(out, "--")
    return append(out, positional...)
}
