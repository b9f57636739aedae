package narrowway

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFuncFKnownAnswer(t *testing.T) {
	p := [8]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}
	funcF(&p, make([]byte, 8))
	require.Equal(t, [8]byte{0xa3, 0x5d, 0x32, 0x3b, 0x62, 0xb2, 0x33, 0x2b}, p)
}

func TestFuncFInvRestoresRow(t *testing.T) {
	require := require.New(t)

	for i := 0; i < 4096; i++ {
		var p [8]byte
		key := make([]byte, 8)
		_, _ = rand.Read(p[:])
		_, _ = rand.Read(key)

		orig := p
		funcF(&p, key)
		funcFInv(&p, key)
		require.Equal(orig, p)
	}
}

func TestFuncFIsAffine(t *testing.T) {
	require := require.New(t)

	key := make([]byte, 8)
	_, _ = rand.Read(key)

	var zero [8]byte
	funcF(&zero, key)

	for i := 0; i < 256; i++ {
		var a, b [8]byte
		_, _ = rand.Read(a[:])
		_, _ = rand.Read(b[:])

		var sum [8]byte
		for j := range sum {
			sum[j] = a[j] ^ b[j]
		}

		funcF(&a, key)
		funcF(&b, key)
		funcF(&sum, key)

		for j := range sum {
			require.Equal(sum[j], a[j]^b[j]^zero[j])
		}
	}
}

func TestFuncFKeyIsXoredAfterMixing(t *testing.T) {
	var a, b [8]byte
	key := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	funcF(&a, make([]byte, 8))
	funcF(&b, key)

	// the key lands before the final interleave
	require.Equal(t, [8]byte{5, 6, 1, 2, 7, 8, 3, 4}, [8]byte{
		a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3],
		a[4] ^ b[4], a[5] ^ b[5], a[6] ^ b[6], a[7] ^ b[7],
	})
}
