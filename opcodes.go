package main

// Opcode identifies one of the eight machine operations. Each opcode's value
// is the source byte that denotes it; every other source byte is a comment.
type Opcode byte

// Here's a handy summary of all the operations:
const (
	OpIncCell     Opcode = '+' // inc  increment the cell under the data pointer
	OpDecCell     Opcode = '-' // dec  decrement the cell under the data pointer
	OpIncPtr      Opcode = '>' // right  move the data pointer one cell right
	OpDecPtr      Opcode = '<' // left   move the data pointer one cell left
	OpJumpZero    Opcode = '[' // jz   skip past the matching ] if the cell is zero
	OpJumpNonZero Opcode = ']' // jnz  loop back past the matching [ if the cell is non-zero
	OpOutput      Opcode = '.' // out  write the cell to output
	OpInput       Opcode = ',' // in   read one byte of input into the cell
)

var opcodeNames = map[Opcode]string{
	OpIncCell:     "inc",
	OpDecCell:     "dec",
	OpIncPtr:      "right",
	OpDecPtr:      "left",
	OpJumpZero:    "jz",
	OpJumpNonZero: "jnz",
	OpOutput:      "out",
	OpInput:       "in",
}

// Valid returns true only for the eight operation bytes.
func (op Opcode) Valid() bool {
	_, ok := opcodeNames[op]
	return ok
}

// IsBranch returns true for the two conditional jump operations.
func (op Opcode) IsBranch() bool { return op == OpJumpZero || op == OpJumpNonZero }

// Char returns the source byte denoting op.
func (op Opcode) Char() byte { return byte(op) }

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return "invalid"
}
