package qstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeTableFindOrAddAndRemove(t *testing.T) {
	nt := newNodeTable()

	n := Node{Kind: KindLiteral, Lexical: "hi"}
	id, err := nt.FindOrAdd(n)
	require.NoError(t, err)
	require.Equal(t, 1, nt.Len())

	got, ok := nt.Lookup(id)
	require.True(t, ok)
	require.Equal(t, n, got)

	_, ok = nt.Find(n)
	require.True(t, ok)

	nt.Remove(id)
	require.Equal(t, 0, nt.Len())
	_, ok = nt.Lookup(id)
	require.False(t, ok)
}
