package narrowway

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func naiveRotateRight(s []int, k int) []int {
	n := len(s)
	out := make([]int, n)
	for i, v := range s {
		out[((i+k)%n+n)%n] = v
	}
	return out
}

func TestRotateRight(t *testing.T) {
	require := require.New(t)

	for n := 1; n <= 9; n++ {
		for k := -n; k <= 2*n; k++ {
			s := make([]int, n)
			for i := range s {
				s[i] = i
			}
			want := naiveRotateRight(s, k)
			rotateRight(s, k)
			require.Equal(want, s, "n=%d k=%d", n, k)
		}
	}
}

func TestRotateLeftUndoesRotateRight(t *testing.T) {
	require := require.New(t)

	for n := 1; n <= 9; n++ {
		for k := 0; k <= n; k++ {
			s := []byte("abcdefghi")[:n]
			orig := append([]byte(nil), s...)
			rotateRight(s, k)
			rotateLeft(s, k)
			require.Equal(orig, s, "n=%d k=%d", n, k)
		}
	}
}

func TestRotateEmpty(t *testing.T) {
	var s []byte
	rotateRight(s, 3)
	rotateLeft(s, 3)
	require.Empty(t, s)
}
