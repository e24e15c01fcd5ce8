package main

import (
	"errors"
	"fmt"

	"github.com/jcorbin/tapevm/internal/mem"
)

// VM implements a tape machine.  The machine has a tape of byte cells, all
// initially zero, and a data pointer that starts at the left end of the tape.
// Programs are read-only instruction sequences walked by a program counter.
//
// A VM may execute any number of programs in turn, each against a fresh tape;
// it must not be used by more than one goroutine at a time.
type VM struct {
	Core

	cells  int
	strict bool
	eof    EOFBehavior

	prog Program // instructions being executed
	pc   uint    // program counter
	ptr  int     // data pointer
	tape *mem.Tape
}

// EOFBehavior determines what an input operation does to the cell once input
// is exhausted.
type EOFBehavior int

const (
	// EOFUnchanged leaves the cell as it was.
	EOFUnchanged EOFBehavior = iota
	// EOFZero stores 0 into the cell.
	EOFZero
	// EOFMax stores 255 into the cell.
	EOFMax
)

var eofNames = [...]string{"unchanged", "zero", "max"}

func (eof EOFBehavior) String() string {
	if int(eof) < len(eofNames) {
		return eofNames[eof]
	}
	return fmt.Sprintf("EOFBehavior(%d)", int(eof))
}

// ParseEOFBehavior parses the String() form of an EOFBehavior.
func ParseEOFBehavior(s string) (EOFBehavior, error) {
	for i, name := range eofNames {
		if s == name {
			return EOFBehavior(i), nil
		}
	}
	return 0, fmt.Errorf("invalid eof behavior %q", s)
}

// ErrOverflow is wrapped by every OverflowError.
var ErrOverflow = errors.New("tape overflow")

// OverflowError reports a data pointer that moved, or was used, outside of
// the tape.
type OverflowError struct {
	Op  Opcode
	At  uint
	Ptr int
}

func (err *OverflowError) Error() string {
	return fmt.Sprintf("%v by %v @%v with data pointer %v", ErrOverflow, err.Op, err.At, err.Ptr)
}

func (err *OverflowError) Unwrap() error { return ErrOverflow }

func (vm *VM) overflow(op Opcode) {
	vm.halt(&OverflowError{op, vm.pc, vm.ptr})
}

//// Cell Operations

// Symbol   Name   Function
//    +     inc    add one to the cell, wrapping 255 around to 0
func (vm *VM) inc() { vm.add(1) }

// Symbol   Name   Function
//    -     dec    subtract one from the cell, wrapping 0 around to 255
func (vm *VM) dec() { vm.add(0xff) }

func (vm *VM) add(delta byte) {
	if _, err := vm.tape.Add(vm.ptr, delta); err != nil {
		vm.limitError(err)
	}
}

func (vm *VM) cell() byte {
	val, err := vm.tape.Load(vm.ptr)
	if err != nil {
		vm.limitError(err)
	}
	return val
}

func (vm *VM) setCell(val byte) {
	if err := vm.tape.Stor(vm.ptr, val); err != nil {
		vm.limitError(err)
	}
}

func (vm *VM) limitError(err error) {
	var lim mem.LimitError
	if errors.As(err, &lim) && vm.pc < uint(len(vm.prog)) {
		vm.overflow(vm.prog[vm.pc].Opcode())
	}
	vm.halt(err)
}

//// Pointer Operations

// The pointer checks are lazy by default: the data pointer may come to rest
// one cell past either end of the tape, and only moving it further is an
// overflow. Any cell access while it rests there is an overflow too. Strict
// mode instead rejects any move that leaves the tape.

// Symbol   Name    Function
//    >     right   move the data pointer one cell to the right
func (vm *VM) right() {
	limit := vm.tape.Size()
	if vm.strict {
		limit--
	}
	if vm.ptr >= limit {
		vm.overflow(OpIncPtr)
	}
	vm.ptr++
}

// Symbol   Name    Function
//    <     left    move the data pointer one cell to the left
func (vm *VM) left() {
	if vm.ptr < 0 || (vm.strict && vm.ptr == 0) {
		vm.overflow(OpDecPtr)
	}
	vm.ptr--
}

//// Control Operations

// Symbol   Name   Function
//    [     jz     if the cell is zero, continue after the matching ]
func (vm *VM) jz(br Branch) uint {
	if vm.cell() == 0 {
		return uint(br.Jump)
	}
	return vm.pc + 1
}

// Symbol   Name   Function
//    ]     jnz    if the cell is non-zero, continue after the matching [
func (vm *VM) jnz(br Branch) uint {
	if vm.cell() != 0 {
		return uint(br.Jump)
	}
	return vm.pc + 1
}

//// Input/Output Operations

// Symbol   Name   Function
//    .     out    write the cell to output
func (vm *VM) output() { vm.writeByte(vm.cell()) }

// Symbol   Name   Function
//    ,     in     read one byte from input into the cell; at end of input
//                 the cell is handled according to the EOFBehavior
func (vm *VM) input() {
	if b, ok := vm.readByte(); ok {
		vm.setCell(b)
		return
	}
	switch vm.eof {
	case EOFZero:
		vm.setCell(0)
	case EOFMax:
		vm.setCell(0xff)
	default:
		vm.cell() // still an overflow if the pointer is off the tape
	}
}

var (
	vmCodeTable   [256]func(vm *VM)
	vmBranchTable [256]func(vm *VM, br Branch) uint
)

func init() {
	vmCodeTable[OpIncCell] = (*VM).inc
	vmCodeTable[OpDecCell] = (*VM).dec
	vmCodeTable[OpIncPtr] = (*VM).right
	vmCodeTable[OpDecPtr] = (*VM).left
	vmCodeTable[OpOutput] = (*VM).output
	vmCodeTable[OpInput] = (*VM).input

	vmBranchTable[OpJumpZero] = (*VM).jz
	vmBranchTable[OpJumpNonZero] = (*VM).jnz
}
