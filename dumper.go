package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/jcorbin/tapevm/internal/logio"
)

type vmDumper struct {
	vm  *VM
	out io.Writer

	rowWidth int
}

// dump logs the machine state line by line.
func (vm *VM) dump() {
	lw := &logio.Writer{Logf: func(mess string, args ...interface{}) {
		vm.logf("#", mess, args...)
	}}
	vmDumper{vm: vm, out: lw}.dump()
	lw.Sync()
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "VM Dump\n")
	fmt.Fprintf(dump.out, "  pc: %v/%v\n", dump.vm.pc, len(dump.vm.prog))
	fmt.Fprintf(dump.out, "  ptr: %v\n", dump.vm.ptr)
	dump.dumpTape()
}

func (dump vmDumper) dumpTape() {
	tape := dump.vm.tape
	if tape == nil {
		return
	}
	if dump.rowWidth == 0 {
		dump.rowWidth = 16
	}

	// show every used cell, and the cell under the data pointer
	end := tape.Used()
	if ptr := dump.vm.ptr; ptr >= end && ptr < tape.Size() {
		end = ptr + 1
	}
	fmt.Fprintf(dump.out, "Tape [%v/%v]\n", end, tape.Size())

	addrWidth := len(strconv.Itoa(end)) + 1
	var buf bytes.Buffer
	row := make([]byte, dump.rowWidth)
	for addr := 0; addr < end; addr += dump.rowWidth {
		cells := row
		if n := end - addr; n < len(cells) {
			cells = cells[:n]
		}
		tape.LoadInto(addr, cells)
		fmt.Fprintf(&buf, "  @% *v", addrWidth, addr)
		for i, val := range cells {
			if addr+i == dump.vm.ptr {
				fmt.Fprintf(&buf, " [%02x]", val)
			} else {
				fmt.Fprintf(&buf, " %02x", val)
			}
		}
		buf.WriteByte('\n')
		buf.WriteTo(dump.out)
	}
}
