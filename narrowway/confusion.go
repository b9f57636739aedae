package narrowway

import (
	"math/bits"

	"narrowway-go/field"
)

func rotl(b byte, k int) byte {
	return bits.RotateLeft8(b, k)
}

func rotr(b byte, k int) byte {
	return bits.RotateLeft8(b, -k)
}

// funcF mixes one row with XORs and bit rotations, injects the row key and
// interleaves the two halves of the row. It is affine over GF(2).
func funcF(p *[rowBytes]byte, key []byte) {
	p[1] ^= p[0] ^ p[2]
	p[6] ^= p[5] ^ p[7]

	p[1] = rotl(p[1], 3)
	p[2] ^= p[4]
	p[6] = rotr(p[6], 2)

	p[2] = rotl(p[2], 2)
	p[5] ^= p[3] ^ p[6]

	p[4] = rotr(p[4], 4)
	p[4] ^= p[1]

	p[3] ^= p[4] ^ p[7]
	p[5] = rotl(p[5], 1)

	p[0] ^= p[2]
	p[7] ^= p[5]

	field.AddVec(p[:], p[:], key[:rowBytes])

	p[0], p[1], p[2], p[3], p[4], p[5], p[6], p[7] = p[4], p[5], p[0], p[1], p[6], p[7], p[2], p[3]
}

// funcFInv undoes funcF step by step in reverse order.
func funcFInv(p *[rowBytes]byte, key []byte) {
	p[4], p[5], p[0], p[1], p[6], p[7], p[2], p[3] = p[0], p[1], p[2], p[3], p[4], p[5], p[6], p[7]

	field.AddVec(p[:], p[:], key[:rowBytes])

	p[7] ^= p[5]
	p[0] ^= p[2]

	p[5] = rotr(p[5], 1)
	p[3] ^= p[4] ^ p[7]

	p[4] ^= p[1]
	p[4] = rotl(p[4], 4)

	p[5] ^= p[3] ^ p[6]
	p[2] = rotr(p[2], 2)

	p[6] = rotl(p[6], 2)
	p[2] ^= p[4]
	p[1] = rotr(p[1], 3)

	p[6] ^= p[5] ^ p[7]
	p[1] ^= p[0] ^ p[2]
}
