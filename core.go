package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/tapevm/internal/flushio"
)

// Core provides the byte I/O channels and logging used by the VM.
type Core struct {
	logging
	in  io.ByteReader
	out flushio.WriteFlusher
}

func (core *Core) halt(err error) {
	// ignore any panics while trying to flush output
	func() {
		defer func() { recover() }()
		if core.out != nil {
			if ferr := core.out.Flush(); err == nil {
				err = ferr
			}
		}
	}()

	// ignore any panics while logging
	func() {
		defer func() { recover() }()
		if err != nil {
			core.logf("#", "halt error: %v", err)
		} else {
			core.logf("#", "halt")
		}
	}()

	panic(haltError{err})
}

func (core *Core) haltif(err error) {
	if err != nil {
		core.halt(err)
	}
}

func (core *Core) writeByte(b byte) {
	if err := flushio.WriteByte(core.out, b); err != nil {
		core.halt(err)
	}
}

// readByte flushes any pending output before reading a single byte, so that
// interactive programs show their prompt before blocking. Returns false at
// end of input.
func (core *Core) readByte() (byte, bool) {
	if err := core.out.Flush(); err != nil {
		core.halt(err)
	}
	b, err := core.in.ReadByte()
	if err == io.EOF {
		return 0, false
	} else if err != nil {
		core.halt(err)
	}
	return b, true
}

type haltError struct{ error }

func (err haltError) Error() string {
	if err.error != nil {
		return fmt.Sprintf("halted: %v", err.error)
	}
	return "halted"
}
func (err haltError) Unwrap() error { return err.error }

type logging struct {
	logfn func(mess string, args ...interface{})

	markWidth int
}

func (log *logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		for _, r := range mark {
			mark = strings.Repeat(string(r), n) + mark
			break
		}
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
