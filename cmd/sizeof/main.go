// Package main is the sizeof CLI entry point.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hyperjump/sizeof/internal/cli"
	"github.com/hyperjump/sizeof/internal/config"
	"github.com/hyperjump/sizeof/internal/sizefmt"
	"github.com/hyperjump/sizeof/internal/walk"
	"github.com/hyperjump/sizeof/pkg/utils"
	flag "github.com/spf13/pflag"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const help = `%s [-%s] FILE ...

Options (capitalize to negate):
b - print bytes (no K, M, G, or T)
f - print file name (default)
i - print with base 2 units (default)
s - sum all sizes together
v - report unreadable entries on stderr
j - write JSON lines
y - write YAML documents
`

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func printUsage(w io.Writer, prog string) {
	fmt.Fprintf(w, help, prog, config.Letters)
}

// run executes sizeof with args (program name first) and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	prog := "sizeof"
	if len(args) > 0 {
		prog = args[0]
		args = args[1:]
	}

	opts, targets, err := config.Parse(args)
	switch {
	case errors.Is(err, flag.ErrHelp):
		printUsage(stdout, prog)
		return 0
	case err != nil:
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return 1
	}
	if len(targets) == 0 {
		printUsage(stdout, prog)
		return 0
	}

	logger := zap.NewNop()
	if opts.Verbose {
		logger = utils.NewConsoleLogger(stderr, zapcore.DebugLevel)
	}
	defer logger.Sync()

	acc := walk.NewAccumulator(walk.New(walk.WithLogger(logger)), opts.Sum)
	printer := cli.NewPrinter(stdout, opts, targets)
	for _, target := range targets {
		acc.Begin()
		start := time.Now()
		if err := acc.Add(target); err != nil {
			for _, e := range multierr.Errors(err) {
				logger.Warn("skipped unreadable entry", zap.String("target", target), zap.Error(e))
			}
		}
		logger.Debug("measured target",
			zap.String("path", target),
			zap.Uint64("total", acc.Total()),
			zap.Duration("elapsed", time.Since(start)),
		)
		if opts.Sum {
			continue
		}
		if err := printer.Print(target, sizefmt.Format(acc.Total(), opts.BytesOnly, opts.Binary)); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", prog, err)
			return 1
		}
	}
	if opts.Sum {
		if err := printer.Print("", sizefmt.Format(acc.Total(), opts.BytesOnly, opts.Binary)); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", prog, err)
			return 1
		}
	}
	if err := printer.Close(); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return 1
	}
	return 0
}
