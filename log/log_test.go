package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/op/go-logging.v1"
)

func TestParseLevel(t *testing.T) {
	require := require.New(t)

	for name, want := range map[string]logging.Level{
		"ERROR":   logging.ERROR,
		"WARNING": logging.WARNING,
		"NOTICE":  logging.NOTICE,
		"INFO":    logging.INFO,
		"debug":   logging.DEBUG,
	} {
		got, err := ParseLevel(name)
		require.NoError(err, name)
		require.Equal(want, got, name)
		require.True(IsValidLevel(name))
	}

	require.False(IsValidLevel("TRACE"))
	require.False(IsValidLevel(""))

	_, err := New("", "TRACE", false)
	require.Error(err)
}

func TestWriterBackendFiltersByLevel(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	b, err := NewWriter(&buf, "NOTICE")
	require.NoError(err)

	l := b.GetLogger("test")
	l.Debug("hidden")
	l.Notice("shown %d", 42)

	require.NotContains(buf.String(), "hidden")
	require.Contains(buf.String(), "NOTI test: shown 42")
	require.NoError(b.Close())
}

func TestFileBackend(t *testing.T) {
	require := require.New(t)

	f := filepath.Join(t.TempDir(), "narrowway.log")
	b, err := New(f, "DEBUG", false)
	require.NoError(err)
	b.GetLogger("file").Info("hello")
	require.NoError(b.Close())

	body, err := os.ReadFile(f)
	require.NoError(err)
	require.Contains(string(body), "INFO file: hello")

	b, err = New(f, "DEBUG", true)
	require.NoError(err)
	b.GetLogger("file").Info("discarded")
	require.NoError(b.Close())

	body, err = os.ReadFile(f)
	require.NoError(err)
	require.NotContains(string(body), "discarded")

	_, err = New(filepath.Join(t.TempDir(), "missing", "x.log"), "DEBUG", false)
	require.Error(err)
}
