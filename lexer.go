package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/jcorbin/tapevm/internal/fileinput"
)

var (
	ErrUnmatchedOpen  = errors.New("Unmatched '['")
	ErrUnmatchedClose = errors.New("Unmatched ']'")
)

// SyntaxError reports an unmatched branch marker, located within its source.
type SyntaxError struct {
	Loc fileinput.Location
	Err error
}

func (err *SyntaxError) Error() string { return fmt.Sprintf("%v: %v", err.Loc, err.Err) }
func (err *SyntaxError) Unwrap() error { return err.Err }

// Lex translates source bytes into a Program, resolving the target of every
// branch instruction. Any byte that is not one of the eight operations is
// ignored. Returns a *SyntaxError if branch markers are not properly paired.
func Lex(src []byte) (Program, error) { return LexNamed("<input>", src) }

// LexNamed is like Lex, but names the source for any error location.
func LexNamed(name string, src []byte) (Program, error) {
	return LexReader(fileinput.Named(name, bytes.NewReader(src)))
}

// LexReader lexes everything read from r; if r has a Name() string method, it
// is used to locate any errors.
func LexReader(r io.Reader) (Program, error) {
	lex := lexer{in: fileinput.Input{Queue: []io.Reader{r}}}
	return lex.lex()
}

type lexer struct {
	in    fileinput.Input
	prog  Program
	opens []pendingOpen
}

type pendingOpen struct {
	at  int
	loc fileinput.Location
}

func (lex *lexer) lex() (Program, error) {
	for {
		b, err := lex.in.ReadByte()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		switch op := Opcode(b); op {
		case OpJumpZero:
			lex.opens = append(lex.opens, pendingOpen{len(lex.prog), lex.in.Loc})
			// target patched once the matching ] is found
			lex.prog = append(lex.prog, Branch{Code: OpJumpZero})

		case OpJumpNonZero:
			i := len(lex.opens) - 1
			if i < 0 {
				return nil, &SyntaxError{lex.in.Loc, ErrUnmatchedClose}
			}
			open := lex.opens[i].at
			lex.opens = lex.opens[:i]
			at := len(lex.prog)
			lex.prog[open] = Branch{Code: OpJumpZero, Match: at, Jump: at + 1}
			lex.prog = append(lex.prog, Branch{Code: OpJumpNonZero, Match: open, Jump: open + 1})

		default:
			if op.Valid() {
				lex.prog = append(lex.prog, Simple(op))
			}
		}
	}

	if i := len(lex.opens) - 1; i >= 0 {
		return nil, &SyntaxError{lex.opens[i].loc, ErrUnmatchedOpen}
	}
	return lex.prog, nil
}
