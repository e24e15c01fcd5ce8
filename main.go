package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tebeka/atexit"

	"github.com/jcorbin/tapevm/internal/config"
	"github.com/jcorbin/tapevm/internal/flushio"
	"github.com/jcorbin/tapevm/internal/logio"
)

func main() {
	out := flushio.NewWriteFlusher(os.Stdout)
	atexit.Register(func() { out.Flush() })

	cmd := command{
		stdin:  os.Stdin,
		stdout: out,
	}
	cmd.log.SetOutput(os.Stderr)
	atexit.Exit(cmd.main(context.Background(), os.Args[1:]))
}

type command struct {
	stdin  io.Reader
	stdout io.Writer
	log    logio.Logger

	cfg config.Config
}

const usageExitCode = 2

func (cmd *command) main(ctx context.Context, args []string) int {
	path, err := cmd.parseFlags(args)
	if err != nil {
		var reported usageError
		if !errors.As(err, &reported) {
			cmd.log.Errorf("%v", err)
		}
		return usageExitCode
	}

	src, err := os.ReadFile(path)
	if err != nil {
		cmd.log.Errorf("%v", err)
		return usageExitCode
	}

	prog, err := LexNamed(path, src)
	if err != nil {
		cmd.log.Errorf("%v", err)
		return cmd.log.ExitCode()
	}

	if cmd.cfg.Dump {
		prog.WriteTo(&logio.Writer{Logf: cmd.log.Leveledf("DUMP")})
	}

	eof, err := ParseEOFBehavior(cmd.cfg.EOF)
	if err != nil {
		cmd.log.Errorf("%v", err)
		return usageExitCode
	}
	opts := []VMOption{
		WithInput(cmd.stdin),
		WithOutput(cmd.stdout),
		WithCells(cmd.cfg.Cells),
		WithEOF(eof),
	}
	if cmd.cfg.StrictBounds {
		opts = append(opts, WithStrictBounds())
	}
	if cmd.cfg.Trace {
		opts = append(opts, WithLogf(cmd.log.Leveledf("TRACE")))
	}
	vm := New(opts...)

	if timeout := cmd.cfg.Timeout.Duration; timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	cmd.log.ErrorIf(vm.Execute(ctx, prog))
	return cmd.log.ExitCode()
}

// parseFlags loads any configuration file, then applies explicitly set flags
// over it, returning the source file path argument.
func (cmd *command) parseFlags(args []string) (string, error) {
	flags := flag.NewFlagSet("tapevm", flag.ContinueOnError)
	flags.SetOutput(&logio.Writer{Logf: cmd.log.Leveledf("")})
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: tapevm [options] <source-file>\n")
		flags.PrintDefaults()
	}

	var (
		configPath string
		cells      int
		strict     bool
		eof        string
		timeout    time.Duration
		trace      bool
		dump       bool
	)
	defaults := config.Default()
	flags.StringVar(&configPath, "config", "", "load run configuration from a TOML file")
	flags.IntVar(&cells, "cells", defaults.Cells, "number of tape cells")
	flags.BoolVar(&strict, "strict", false, "fail as soon as the data pointer leaves the tape")
	flags.StringVar(&eof, "eof", defaults.EOF, "cell handling at end of input: unchanged, zero, or max")
	flags.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flags.BoolVar(&trace, "trace", false, "enable trace logging")
	flags.BoolVar(&dump, "dump", false, "log a listing of the lexed program")
	if err := flags.Parse(args); err != nil {
		return "", usageError{err}
	}

	cmd.cfg = defaults
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return "", err
		}
		cmd.cfg = cfg
	}

	var err error
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cells":
			if cells <= 0 && err == nil {
				err = fmt.Errorf("invalid -cells %v: must be positive", cells)
			}
			cmd.cfg.Cells = cells
		case "strict":
			cmd.cfg.StrictBounds = strict
		case "eof":
			cmd.cfg.EOF = eof
		case "timeout":
			cmd.cfg.Timeout.Duration = timeout
		case "trace":
			cmd.cfg.Trace = trace
		case "dump":
			cmd.cfg.Dump = dump
		}
	})
	if err != nil {
		return "", err
	}

	if flags.NArg() != 1 {
		fmt.Fprintf(flags.Output(), "expected exactly one source file argument\n")
		flags.Usage()
		return "", usageError{flag.ErrHelp}
	}
	return flags.Arg(0), nil
}

// usageError is a flag error that has already been reported with usage.
type usageError struct{ error }

func (err usageError) Unwrap() error { return err.error }
