package narrowway

import (
	"math/bits"

	"narrowway-go/field"
)

// roundConstant doubles 2 in the field round+2 times.
func roundConstant(a field.Arithmetic, round int) byte {
	c := byte(2)
	for i := 0; i < round+2; i++ {
		c = a.Mul(c, 2)
	}
	return c
}

// roundKey derives the key of round from the previous round's key, or from
// the master key for round 0. Each byte is chained to the one before it, so a
// change to prev[i] reaches every later byte.
func roundKey(a field.Arithmetic, prev []byte, round int) []byte {
	key := make([]byte, len(prev))

	key[0] = a.Inv(bits.RotateLeft8(prev[0], 4)) ^ roundConstant(a, round)
	for i := 1; i < len(prev); i++ {
		key[i] = a.Inv(bits.RotateLeft8(prev[i], 4)) ^ key[i-1]
	}

	return key
}

func expandKey(a field.Arithmetic, p Params, key []byte) [][]byte {
	roundKeys := make([][]byte, p.Rounds)

	prev := key
	for round := range roundKeys {
		roundKeys[round] = roundKey(a, prev, round)
		prev = roundKeys[round]
	}

	return roundKeys
}
