package main

import (
	"bufio"
	"bytes"
	"io"

	"github.com/jcorbin/tapevm/internal/flushio"
	"github.com/jcorbin/tapevm/internal/mem"
)

// VMOption configures a VM.
type VMOption interface{ apply(vm *VM) }

var defaultOptions = VMOptions(
	withInput(bytes.NewReader(nil)),
	withOutput(io.Discard),
	withCells(mem.DefaultCells),
)

// VMOptions combines any number of options into one.
func VMOptions(opts ...VMOption) VMOption {
	var res vmOptions
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case vmOptions:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type vmOptions []VMOption

func (opts vmOptions) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type inputOption struct{ io.Reader }
type byteInputOption struct{ io.ByteReader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type cellsOption int
type strictOption bool
type eofOption EOFBehavior

func withInput(r io.Reader) inputOption              { return inputOption{r} }
func withByteInput(br io.ByteReader) byteInputOption { return byteInputOption{br} }
func withOutput(w io.Writer) outputOption            { return outputOption{w} }
func withTee(w io.Writer) teeOption                  { return teeOption{w} }
func withCells(n int) cellsOption                    { return cellsOption(n) }

func (i inputOption) apply(vm *VM) {
	vm.in = newByteReader(i.Reader)
}

func (i byteInputOption) apply(vm *VM) {
	vm.in = i.ByteReader
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
}

func (n cellsOption) apply(vm *VM) {
	vm.cells = int(n)
}

func (strict strictOption) apply(vm *VM) {
	vm.strict = bool(strict)
}

func (eof eofOption) apply(vm *VM) {
	vm.eof = EOFBehavior(eof)
}

func newByteReader(r io.Reader) io.ByteReader {
	if br, is := r.(io.ByteReader); is {
		return br
	}
	return bufio.NewReader(r)
}
