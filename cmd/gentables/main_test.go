package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderMatchesCommittedTables(t *testing.T) {
	for path, tbl := range map[string]table{
		"../../field/tables_gen.go": fieldTable(),
		"../../sbox/tables_gen.go":  sboxTable(),
	} {
		t.Run(tbl.pkg, func(t *testing.T) {
			want, err := os.ReadFile(path)
			require.NoError(t, err)

			got, err := render(tbl)
			require.NoError(t, err)
			require.Equal(t, string(want), string(got), "run go generate ./field")
		})
	}
}

func TestWriteTable(t *testing.T) {
	require := require.New(t)

	path := t.TempDir() + "/tables_gen.go"
	require.NoError(writeTable(path, fieldTable()))

	b, err := os.ReadFile(path)
	require.NoError(err)
	require.Contains(string(b), "var invTable = [256]byte{")
	require.Contains(string(b), "\t0x00, 0x01, 0xb8, 0xd0,")
}
