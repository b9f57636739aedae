package handle

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"narrowway-go/narrowway"
)

func TestLifecycle(t *testing.T) {
	require := require.New(t)
	r := NewRegistry()

	key := make([]byte, 32)
	h, err := r.New(narrowway.Variant256, key)
	require.NoError(err)
	require.NotZero(h)
	require.Equal(1, r.Len())

	pt := make([]byte, 32)
	ct := make([]byte, 32)
	require.NoError(r.Encrypt(h, narrowway.Variant256, ct, pt))

	want := make([]byte, 32)
	narrowway.NewCipher256([32]byte{}).Encrypt(want, pt)
	require.Equal(want, ct)

	out := make([]byte, 32)
	require.NoError(r.Decrypt(h, narrowway.Variant256, out, ct))
	require.Equal(pt, out)

	require.NoError(r.Free(h, narrowway.Variant256))
	require.Zero(r.Len())
}

func TestUseAfterFree(t *testing.T) {
	require := require.New(t)
	r := NewRegistry()

	h, err := r.New(narrowway.Variant384, make([]byte, 48))
	require.NoError(err)
	require.NoError(r.Free(h, narrowway.Variant384))

	buf := make([]byte, 48)
	require.ErrorIs(r.Encrypt(h, narrowway.Variant384, buf, buf), ErrInvalidHandle)
	require.ErrorIs(r.Decrypt(h, narrowway.Variant384, buf, buf), ErrInvalidHandle)
	require.ErrorIs(r.Free(h, narrowway.Variant384), ErrInvalidHandle)
}

func TestZeroHandleIsInvalid(t *testing.T) {
	r := NewRegistry()
	buf := make([]byte, 64)
	require.ErrorIs(t, r.Encrypt(0, narrowway.Variant512, buf, buf), ErrInvalidHandle)
}

func TestVariantMismatch(t *testing.T) {
	require := require.New(t)
	r := NewRegistry()

	h, err := r.New(narrowway.Variant512, make([]byte, 64))
	require.NoError(err)

	buf := make([]byte, 64)
	require.ErrorIs(r.Encrypt(h, narrowway.Variant256, buf, buf), ErrVariantMismatch)
	require.ErrorIs(r.Free(h, narrowway.Variant384), ErrVariantMismatch)
	require.Equal(1, r.Len())
}

func TestShortBuffers(t *testing.T) {
	require := require.New(t)
	r := NewRegistry()

	h, err := r.New(narrowway.Variant256, make([]byte, 32))
	require.NoError(err)

	require.ErrorIs(r.Encrypt(h, narrowway.Variant256, make([]byte, 32), make([]byte, 31)), ErrBufferSize)
	require.ErrorIs(r.Decrypt(h, narrowway.Variant256, make([]byte, 8), make([]byte, 32)), ErrBufferSize)
}

func TestBadKey(t *testing.T) {
	r := NewRegistry()
	_, err := r.New(narrowway.Variant256, make([]byte, 48))
	require.Equal(t, narrowway.KeySizeError(48), err)
	require.Zero(t, r.Len())
}

func TestHandlesAreDistinct(t *testing.T) {
	require := require.New(t)
	r := NewRegistry()

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		seen = make(map[Handle]bool)
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h, err := r.New(narrowway.Variant256, make([]byte, 32))
			if err != nil {
				return
			}
			mu.Lock()
			seen[h] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(seen, 32)
	require.Equal(32, r.Len())
}
