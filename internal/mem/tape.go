package mem

// Load returns the value of the cell at addr.
func (m *Tape) Load(addr int) (byte, error) {
	if err := m.checkLimit(addr, "load"); err != nil {
		return 0, err
	}
	return m.cells[addr], nil
}

// Stor sets the cell at addr.
func (m *Tape) Stor(addr int, val byte) error {
	if err := m.checkLimit(addr, "stor"); err != nil {
		return err
	}
	m.cells[addr] = val
	return nil
}

// Add adds delta to the cell at addr, wrapping modulo 256, and returns the
// new value.
func (m *Tape) Add(addr int, delta byte) (byte, error) {
	if err := m.checkLimit(addr, "add"); err != nil {
		return 0, err
	}
	m.cells[addr] += delta
	return m.cells[addr], nil
}

// LoadInto copies len(buf) cells starting at addr into buf.
// Returns an error if any part of the range lies outside the tape; no partial
// load is done.
func (m *Tape) LoadInto(addr int, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	if err := m.checkLimit(addr, "load"); err != nil {
		return err
	}
	if err := m.checkLimit(addr+len(buf)-1, "load"); err != nil {
		return err
	}
	copy(buf, m.cells[addr:])
	return nil
}

// Used returns an address one past the last non-zero cell.
func (m *Tape) Used() int {
	for i := len(m.cells) - 1; i >= 0; i-- {
		if m.cells[i] != 0 {
			return i + 1
		}
	}
	return 0
}
