package main

import (
	"context"
	"fmt"

	"github.com/jcorbin/tapevm/internal/ctlchar"
	"github.com/jcorbin/tapevm/internal/mem"
)

func (vm *VM) run(ctx context.Context, prog Program) {
	vm.init(prog)
	defer vm.release()
	vm.exec(ctx)
}

func (vm *VM) init(prog Program) {
	if vm.cells <= 0 {
		vm.cells = mem.DefaultCells
	}
	vm.tape = mem.NewTape(vm.cells)
	vm.prog = prog
	vm.pc = 0
	vm.ptr = 0
}

// release drops the run state; the tape does not outlive its run.
func (vm *VM) release() {
	vm.tape = nil
	vm.prog = nil
}

func (vm *VM) exec(ctx context.Context) {
	done := ctx.Done()
	for vm.pc < uint(len(vm.prog)) {
		vm.step()
		if done != nil {
			select {
			case <-done:
				vm.halt(ctx.Err())
			default:
			}
		}
	}
	vm.halt(nil)
}

// halt dumps machine state when tracing, before halting the core.
func (vm *VM) halt(err error) {
	if vm.logfn != nil && vm.tape != nil {
		vm.dump()
	}
	vm.Core.halt(err)
}

func (vm *VM) step() {
	at := vm.pc
	in := vm.prog[at]
	if vm.logfn != nil {
		vm.logf(">", "exec @%v %v -- ptr:%v cell:%v", at, in, vm.ptr, vm.cellName())
	}
	switch in := in.(type) {
	case Branch:
		if branch := vmBranchTable[in.Code]; branch != nil {
			vm.pc = branch(vm, in)
			return
		}
	case Simple:
		if code := vmCodeTable[in]; code != nil {
			code(vm)
			vm.pc++
			return
		}
	}
	vm.halt(codeError{at, in})
}

func (vm *VM) cellName() string {
	if val, err := vm.tape.Load(vm.ptr); err == nil {
		return ctlchar.Name(val)
	}
	return "--"
}

type codeError struct {
	at uint
	in Instruction
}

func (err codeError) Error() string { return fmt.Sprintf("invalid instruction %v @%v", err.in, err.at) }
