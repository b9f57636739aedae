package narrowway

import (
	"narrowway-go/sbox"
)

// matrix is a block viewed as rows of 8 bytes. It lives for a single
// Encrypt or Decrypt call.
type matrix struct {
	rows [maxRows][rowBytes]byte
	n    int
}

func (m *matrix) load(block []byte, rows int) {
	m.n = rows
	for r := 0; r < rows; r++ {
		copy(m.rows[r][:], block[r*rowBytes:(r+1)*rowBytes])
	}
}

func (m *matrix) dump(block []byte) {
	for r := 0; r < m.n; r++ {
		copy(block[r*rowBytes:(r+1)*rowBytes], m.rows[r][:])
	}
}

// shiftColumns rotates column c down by c mod n rows. Column 0 never moves.
func (m *matrix) shiftColumns() {
	var col [maxRows]byte
	for c := 1; c < rowBytes; c++ {
		step := c % m.n
		if step == 0 {
			continue
		}
		m.column(c, col[:m.n])
		rotateRight(col[:m.n], step)
		m.setColumn(c, col[:m.n])
	}
}

// shiftColumnsInv undoes shiftColumns.
func (m *matrix) shiftColumnsInv() {
	var col [maxRows]byte
	for c := 1; c < rowBytes; c++ {
		step := c % m.n
		if step == 0 {
			continue
		}
		m.column(c, col[:m.n])
		rotateLeft(col[:m.n], step)
		m.setColumn(c, col[:m.n])
	}
}

func (m *matrix) column(c int, dst []byte) {
	for r := range dst {
		dst[r] = m.rows[r][c]
	}
}

func (m *matrix) setColumn(c int, src []byte) {
	for r, v := range src {
		m.rows[r][c] = v
	}
}

// subBytes passes row r through boxes[r].
func (m *matrix) subBytes(boxes []sbox.Box) {
	for r := 0; r < m.n; r++ {
		box := &boxes[r]
		for c := range m.rows[r] {
			m.rows[r][c] = box[m.rows[r][c]]
		}
	}
}

// applyRound runs the confusion function over every row, keyed by the
// matching 8-byte slice of the round key.
func (m *matrix) applyRound(key []byte) {
	for r := 0; r < m.n; r++ {
		funcF(&m.rows[r], key[r*rowBytes:(r+1)*rowBytes])
	}
}

func (m *matrix) applyRoundInv(key []byte) {
	for r := 0; r < m.n; r++ {
		funcFInv(&m.rows[r], key[r*rowBytes:(r+1)*rowBytes])
	}
}
