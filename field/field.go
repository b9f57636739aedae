// Package field implements arithmetic in GF(2^8) under the NarrowWay
// reduction polynomial x^8 + x^6 + x^5 + x^4 + 1.
//
// Two engines are provided behind the Arithmetic interface: Direct, which
// computes every product and inverse on demand, and Table, which answers from
// lookup tables produced by running the direct algorithm over every input.
// Both must agree on every input.
package field

//go:generate go run narrowway-go/cmd/gentables -field tables_gen.go -sbox ../sbox/tables_gen.go

import (
	"sync"
)

// Modulus is the reduction byte, the modulus polynomial without its x^8 term.
const Modulus byte = 0b1110001

// Arithmetic is a GF(2^8) multiplication and inversion strategy.
type Arithmetic interface {
	Mul(f, g byte) byte
	Inv(f byte) byte
}

// Add adds two elements in GF(2^8)
func Add(f, g byte) byte {
	return f ^ g
}

// Sub subtracts two elements in GF(2^8), which is the same as adding them
func Sub(f, g byte) byte {
	return Add(f, g)
}

// AddVec adds a and b element-wise into dst
func AddVec(dst, a, b []byte) {
	if len(a) != len(b) || len(dst) < len(a) {
		panic("field: cannot add vectors of different lengths")
	}

	for i := range a {
		dst[i] = a[i] ^ b[i]
	}
}

// Direct computes products and inverses on demand.
type Direct struct{}

// Mul multiplies two elements in GF(2^8)
func (Direct) Mul(f, g byte) byte {
	return gf256Mul(f, g)
}

// Inv calculates the inverse of an element in GF(2^8), zero maps to zero
func (Direct) Inv(f byte) byte {
	return gf256Inv(f)
}

// Table answers products and inverses from precomputed tables.
type Table struct {
	mulTable [256][256]byte
	invTable [256]byte
}

var (
	tables     *Table
	tablesOnce sync.Once
)

// Tables returns the process wide tabulated engine, building it on first use.
func Tables() *Table {
	tablesOnce.Do(func() {
		tables = InitField()
	})
	return tables
}

// InitField builds a new tabulated engine.
func InitField() *Table {
	t := new(Table)
	t.invTable = invTable
	generateMulTable(&t.mulTable)
	return t
}

// Mul multiplies two elements in GF(2^8)
func (t *Table) Mul(f, g byte) byte {
	return t.mulTable[f][g]
}

// Inv calculates the inverse of an element in GF(2^8)
func (t *Table) Inv(f byte) byte {
	return t.invTable[f]
}

// InverseTable returns a copy of the generated inverse table.
func InverseTable() [256]byte {
	return invTable
}

// ComputeInverseTable runs the direct inversion over every element.
func ComputeInverseTable() [256]byte {
	var inv [256]byte
	for i := range inv {
		inv[i] = gf256Inv(byte(i))
	}
	return inv
}

// gf256Mul is peasant multiplication: f is doubled once per bit of g and the
// reduction byte is folded in whenever the doubling carries out of the top bit.
func gf256Mul(f, g byte) byte {
	var r byte
	for i := 0; i < 8; i++ {
		if g&1 != 0 {
			r ^= f
		}
		carry := f&0x80 != 0
		f <<= 1
		if carry {
			f ^= Modulus
		}
		g >>= 1
	}
	return r
}

func gf256Inv(f byte) byte {
	for i := 0; i < 256; i++ {
		if gf256Mul(f, byte(i)) == 1 {
			return byte(i)
		}
	}
	return 0
}

func generateMulTable(mulTable *[256][256]byte) {
	for i := 0; i < 256; i++ {
		for j := 0; j < 256; j++ {
			mulTable[i][j] = gf256Mul(byte(i), byte(j))
		}
	}
}
