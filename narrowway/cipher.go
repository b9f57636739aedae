// Package narrowway implements the NarrowWay block ciphers, a family of
// substitution-permutation networks over 256-, 384- and 512-bit blocks.
//
// A Cipher is built once from a master key and is read-only afterwards, so a
// single instance may encrypt and decrypt from many goroutines at once.
package narrowway

import (
	"crypto/cipher"

	"narrowway-go/field"
	"narrowway-go/sbox"
)

// Cipher is an expanded NarrowWay key. It implements cipher.Block.
type Cipher struct {
	params    Params
	roundKeys [][]byte
	sBoxes    [][]sbox.Box
	sInvs     [][]sbox.Box
}

var _ cipher.Block = (*Cipher)(nil)

// New expands key for variant v using the tabulated field engine.
func New(v Variant, key []byte) (*Cipher, error) {
	return NewWithField(v, key, field.Tables())
}

// NewWithField expands key for variant v using the arithmetic engine a.
func NewWithField(v Variant, key []byte, a field.Arithmetic) (*Cipher, error) {
	p, err := ParamsFor(v)
	if err != nil {
		return nil, err
	}
	if len(key) != p.BlockSize {
		return nil, KeySizeError(len(key))
	}
	return newCipher(p, key, a), nil
}

// NewCipher creates and returns a new cipher.Block. The key length selects
// the variant: 32, 48 or 64 bytes for NarrowWay-256, -384 or -512.
func NewCipher(key []byte) (cipher.Block, error) {
	v, err := VariantForKeySize(len(key))
	if err != nil {
		return nil, err
	}
	return New(v, key)
}

// NewCipher256 expands a NarrowWay-256 key.
func NewCipher256(key [32]byte) *Cipher {
	p, _ := ParamsFor(Variant256)
	return newCipher(p, key[:], field.Tables())
}

// NewCipher384 expands a NarrowWay-384 key.
func NewCipher384(key [48]byte) *Cipher {
	p, _ := ParamsFor(Variant384)
	return newCipher(p, key[:], field.Tables())
}

// NewCipher512 expands a NarrowWay-512 key.
func NewCipher512(key [64]byte) *Cipher {
	p, _ := ParamsFor(Variant512)
	return newCipher(p, key[:], field.Tables())
}

func newCipher(p Params, key []byte, a field.Arithmetic) *Cipher {
	c := &Cipher{
		params:    p,
		roundKeys: expandKey(a, p, key),
		sBoxes:    make([][]sbox.Box, p.Rounds),
		sInvs:     make([][]sbox.Box, p.Rounds),
	}

	base := baseBox(a)
	for round, rk := range c.roundKeys {
		c.sBoxes[round] = make([]sbox.Box, p.Rows)
		c.sInvs[round] = make([]sbox.Box, p.Rows)
		for s := 0; s < p.Rows; s++ {
			mask := sbox.Digest(a, rk[s*rowBytes:(s+1)*rowBytes])
			c.sBoxes[round][s] = sbox.Round(base, mask)
			c.sInvs[round][s] = sbox.Inverse(c.sBoxes[round][s])
		}
	}

	return c
}

// baseBox uses the generated table alongside the tabulated engine and
// derives it from a otherwise.
func baseBox(a field.Arithmetic) sbox.Box {
	if _, ok := a.(*field.Table); ok {
		return sbox.Base()
	}
	return sbox.ComputeBase(a)
}

// BlockSize returns the block size in bytes.
func (c *Cipher) BlockSize() int {
	return c.params.BlockSize
}

// Params returns the variant parameters of c.
func (c *Cipher) Params() Params {
	return c.params
}

// Variant returns the variant of c.
func (c *Cipher) Variant() Variant {
	return c.params.Variant
}

// Encrypt encrypts the first block in src into dst. Dst and src may overlap
// entirely.
func (c *Cipher) Encrypt(dst, src []byte) {
	c.checkBlocks(dst, src)

	var m matrix
	m.load(src, c.params.Rows)

	for round := 0; round < c.params.Rounds; round++ {
		m.shiftColumns()
		m.subBytes(c.sBoxes[round])
		m.applyRound(c.roundKeys[round])
	}

	m.dump(dst)
}

// Decrypt decrypts the first block in src into dst. Dst and src may overlap
// entirely.
func (c *Cipher) Decrypt(dst, src []byte) {
	c.checkBlocks(dst, src)

	var m matrix
	m.load(src, c.params.Rows)

	for round := c.params.Rounds - 1; round >= 0; round-- {
		m.applyRoundInv(c.roundKeys[round])
		m.subBytes(c.sInvs[round])
		m.shiftColumnsInv()
	}

	m.dump(dst)
}

func (c *Cipher) checkBlocks(dst, src []byte) {
	if len(src) < c.params.BlockSize {
		panic("narrowway: input not full block")
	}
	if len(dst) < c.params.BlockSize {
		panic("narrowway: output not full block")
	}
}
