// Package sbox derives the keyed byte substitution tables of NarrowWay.
//
// Every round box is the fixed base box XORed with a single mask byte, so it
// stays a bijection whatever the mask is.
package sbox

import (
	"math/bits"

	"narrowway-go/field"
)

// Box is a byte substitution table.
type Box [256]byte

// BitMix XORs b with its right rotations by 2, 4, 6 and 7 bits.
func BitMix(b byte) byte {
	return b ^
		bits.RotateLeft8(b, -2) ^
		bits.RotateLeft8(b, -4) ^
		bits.RotateLeft8(b, -6) ^
		bits.RotateLeft8(b, -7)
}

// Base returns the generated base box.
func Base() Box {
	return baseBox
}

// ComputeBase derives the base box from the field inverse of every element.
func ComputeBase(a field.Arithmetic) Box {
	var box Box
	for i := range box {
		box[i] = BitMix(a.Inv(byte(i)))
	}
	return box
}

// Round masks every entry of base with mask.
func Round(base Box, mask byte) Box {
	box := base
	for i := range box {
		box[i] ^= mask
	}
	return box
}

// Inverse returns the positional inverse of box.
func Inverse(box Box) Box {
	var inv Box
	for i, v := range box {
		inv[v] = byte(i)
	}
	return inv
}

// Digest folds an 8-byte subkey segment into a mask byte by multiplying its
// bytes together. Zero bytes count as one so they cannot absorb the product.
func Digest(a field.Arithmetic, segment []byte) byte {
	d := byte(1)
	for _, b := range segment {
		d = a.Mul(d, max(b, 1))
	}
	return d
}

// IsPermutation reports whether every byte value appears exactly once in box.
func IsPermutation(box Box) bool {
	var seen [256]bool
	for _, v := range box {
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
