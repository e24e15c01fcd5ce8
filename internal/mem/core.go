package mem

import "fmt"

// DefaultCells is the conventional tape length.
const DefaultCells = 30000

// Tape implements a fixed-size byte-cell memory.
// The zero value is a tape of length 0; use NewTape to allocate one.
type Tape struct {
	cells []byte
}

// LimitError indicates that a memory operation, like load or store, addressed
// a cell outside of the tape.
type LimitError struct {
	Addr int
	Op   string
}

func (lim LimitError) Error() string {
	return fmt.Sprintf("tape limit exceeded by %v @%v", lim.Op, lim.Addr)
}

// NewTape allocates a zeroed tape of size cells.
func NewTape(size int) *Tape {
	if size < 0 {
		size = 0
	}
	return &Tape{cells: make([]byte, size)}
}

// Size returns the number of cells in the tape.
func (m *Tape) Size() int { return len(m.cells) }

// InBounds returns true if addr names a cell within the tape.
func (m *Tape) InBounds(addr int) bool { return 0 <= addr && addr < len(m.cells) }

func (m *Tape) checkLimit(addr int, op string) error {
	if !m.InBounds(addr) {
		return LimitError{addr, op}
	}
	return nil
}
