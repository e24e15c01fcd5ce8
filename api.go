package main

import (
	"context"
	"errors"
	"io"

	"github.com/jcorbin/tapevm/internal/panicerr"
)

// New creates a VM, reading empty input and discarding output unless
// configured otherwise.
func New(opts ...VMOption) *VM {
	var vm VM
	defaultOptions.apply(&vm)
	VMOptions(opts...).apply(&vm)
	return &vm
}

// Execute runs prog to completion against a fresh tape. Returns nil if the
// program counter runs off the end of the program; otherwise returns the
// first fatal error, e.g. an *OverflowError, an I/O error, or ctx.Err().
// Any buffered output is flushed before Execute returns.
func (vm *VM) Execute(ctx context.Context, prog Program) error {
	err := panicerr.Recover("VM", func() error {
		vm.run(ctx, prog)
		return nil
	})
	var halt haltError
	if errors.As(err, &halt) {
		err = halt.error
	}
	return err
}

func WithInput(r io.Reader) VMOption          { return withInput(r) }
func WithByteInput(br io.ByteReader) VMOption { return withByteInput(br) }
func WithOutput(w io.Writer) VMOption         { return withOutput(w) }
func WithTee(w io.Writer) VMOption            { return withTee(w) }
func WithCells(n int) VMOption                { return withCells(n) }
func WithStrictBounds() VMOption              { return strictOption(true) }
func WithEOF(eof EOFBehavior) VMOption        { return eofOption(eof) }

func WithLogf(logfn func(mess string, args ...interface{})) VMOption { return withLogfn(logfn) }
