package benchmark

import (
	"bytes"
	"os"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"narrowway-go/field"
	"narrowway-go/log"
	"narrowway-go/narrowway"
)

func TestRun(t *testing.T) {
	require := require.New(t)

	var logBuf bytes.Buffer
	backend, err := log.NewWriter(&logBuf, "DEBUG")
	require.NoError(err)

	results, err := Run(Options{
		Variant: narrowway.Variant384,
		Field:   field.Direct{},
		Samples: 3,
		Workers: 4,
		Blocks:  64,
	}, backend.GetLogger("benchmark"))
	require.NoError(err)

	require.Equal("NarrowWay-384", results.Variant)
	require.Equal("direct", results.Field)
	require.Len(results.New, 3)
	require.Len(results.Encrypt, 3)
	require.Len(results.Decrypt, 3)
	require.Positive(results.Throughput)
	require.Contains(logBuf.String(), "MiB/s")

	dir := t.TempDir()
	name, err := Write(results, dir)
	require.NoError(err)

	b, err := os.ReadFile(name)
	require.NoError(err)
	var decoded Results
	require.NoError(json.Unmarshal(b, &decoded))
	require.Equal(*results, decoded)
}

func TestRunWithoutThroughput(t *testing.T) {
	require := require.New(t)

	backend, err := log.New("", "ERROR", true)
	require.NoError(err)

	results, err := Run(Options{Variant: narrowway.Variant256, Samples: 1}, backend.GetLogger("benchmark"))
	require.NoError(err)
	require.Equal("table", results.Field)
	require.Zero(results.Throughput)

	_, err = Run(Options{Variant: 1024}, backend.GetLogger("benchmark"))
	require.ErrorIs(err, narrowway.ErrUnknownVariant)
}

func TestThroughputMoreWorkersThanBlocks(t *testing.T) {
	c := narrowway.NewCipher256([32]byte{})
	elapsed, n, err := throughput(c, 8, 3, make([]byte, 32))
	require.NoError(t, err)
	require.Positive(t, int64(elapsed))
	require.Equal(t, int64(3), n)
}

func TestThroughputBlocksAreSharedBetweenWorkers(t *testing.T) {
	c := narrowway.NewCipher512([64]byte{})
	for _, workers := range []int{1, 2, 4, 7} {
		_, n, err := throughput(c, workers, 100, make([]byte, 64))
		require.NoError(t, err)
		require.Equal(t, int64(100), n, "%d workers", workers)
	}
}
