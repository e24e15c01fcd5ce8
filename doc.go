/* Package main: tapevm -- a tape machine for the eight instruction language

The machine has a tape of byte cells, 30000 by default, all starting at zero,
and a data pointer that starts on the leftmost cell.  Programs manipulate the
cell under the data pointer, move the pointer, loop, and move single bytes in
and out of the machine.  There are eight instructions, each a single source
character:

	+  inc    add one to the cell, wrapping 255 around to 0
	-  dec    subtract one from the cell, wrapping 0 around to 255
	>  right  move the data pointer one cell to the right
	<  left   move the data pointer one cell to the left
	[  jz     if the cell is zero, continue after the matching ]
	]  jnz    if the cell is non-zero, continue after the matching [
	.  out    write the cell to output
	,  in     read one byte of input into the cell

Every other byte of source is a comment.

Section 1: Lexing (see lexer.go)

Source is scanned once, left to right.  Each operation character becomes one
instruction; [ and ] must pair up like parentheses, and each pair is resolved
right then: both halves record the position of the other, along with where
execution continues when the branch is taken.  An unmatched ] is reported as
soon as it is seen; an unmatched [ only once the whole source has been read.
Either way the error is located by source name, line, and column.

Section 2: Execution (see vm.go and internals.go)

The program counter walks the instruction sequence, which is never modified.
Branches jump straight to their precomputed targets, so looping costs no
searching.  Running off the end of the program is a normal halt.

The data pointer is checked lazily by default: it may come to rest one cell
past either end of the tape, and moving it any further is an overflow, as is
touching the cell under it while it rests there.  Strict mode rejects a move
off the tape right away.

Reading past the end of input leaves the cell unchanged by default; the
machine may instead be configured to store 0 or 255.

Output is buffered, and flushed whenever the program reads input or halts.

Section 3: The command (see main.go)

	tapevm [options] <source-file>

Options may also come from a TOML file given with -config; flags given on the
command line override it.  The command exits non-zero if the program fails to
lex or halts with an error.

*/
package main
