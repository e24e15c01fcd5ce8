package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Instruction is either a Simple operation or a Branch.
type Instruction interface {
	Opcode() Opcode
	String() string
	instruction()
}

// Simple is any non-branching instruction: it carries nothing but its opcode.
type Simple Opcode

// Branch is a conditional jump instruction, annotated with the position of
// its structural counterpart.
type Branch struct {
	Code Opcode

	// Match is the index of the paired branch instruction.
	Match int

	// Jump is where execution continues when the branch is taken: just past
	// the matching ] for a [, or just past the matching [ for a ].
	Jump int
}

func (op Simple) Opcode() Opcode { return Opcode(op) }
func (br Branch) Opcode() Opcode { return br.Code }

func (op Simple) String() string {
	return fmt.Sprintf("%c %v", Opcode(op).Char(), Opcode(op))
}

func (br Branch) String() string {
	return fmt.Sprintf("%c %v @%v", br.Code.Char(), br.Code, br.Match)
}

func (Simple) instruction() {}
func (Branch) instruction() {}

// Program is a validated instruction sequence, as produced by Lex.
// It must not be modified once lexed.
type Program []Instruction

// Source renders the program back into its canonical source bytes, stripped
// of any comments.
func (prog Program) Source() []byte {
	src := make([]byte, len(prog))
	for i, in := range prog {
		src[i] = in.Opcode().Char()
	}
	return src
}

func (prog Program) String() string {
	var buf bytes.Buffer
	prog.WriteTo(&buf)
	return buf.String()
}

// WriteTo writes a listing of the program, one instruction per line.
func (prog Program) WriteTo(w io.Writer) (n int64, err error) {
	width := len(strconv.Itoa(len(prog))) + 1
	var buf bytes.Buffer
	for i, in := range prog {
		fmt.Fprintf(&buf, "  @% *v %v\n", width, i, in)
		m, werr := buf.WriteTo(w)
		n += m
		if werr != nil {
			return n, werr
		}
	}
	return n, nil
}
