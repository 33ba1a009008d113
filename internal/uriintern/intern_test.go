package uriintern

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/qstore/qerrors"
)

func TestInternSharesPrefixAcrossNamespace(t *testing.T) {
	in := New()

	foo, err := in.Intern("http://example.org/ns#foo")
	require.NoError(t, err)
	bar, err := in.Intern("http://example.org/ns#bar")
	require.NoError(t, err)

	require.Equal(t, foo.Prefix, bar.Prefix, "URIs sharing a namespace should share a prefix id")
	require.NotEqual(t, foo.Suffix, bar.Suffix)
}

func TestInternIsIdempotent(t *testing.T) {
	in := New()

	id1, err := in.Intern("http://example.org/ns#foo")
	require.NoError(t, err)
	id2, err := in.Intern("http://example.org/ns#foo")
	require.NoError(t, err)

	require.Equal(t, id1, id2)
}

func TestSplitPrefersHash(t *testing.T) {
	prefix, suffix, err := split("http://example.org/path#frag")
	require.NoError(t, err)
	require.Equal(t, "http://example.org/path#", prefix)
	require.Equal(t, "frag", suffix)

	in := New()
	id, err := in.Intern("http://example.org/path#frag")
	require.NoError(t, err)
	uri, ok := in.Materialize(id)
	require.True(t, ok)
	require.Equal(t, "http://example.org/path#frag", uri)
}

func TestSplitFallsBackToSlash(t *testing.T) {
	prefix, suffix, err := split("http://example.org/a/b/c")
	require.NoError(t, err)
	require.Equal(t, "http://example.org/a/b/", prefix)
	require.Equal(t, "c", suffix)

	in := New()
	id, err := in.Intern("http://example.org/a/b/c")
	require.NoError(t, err)
	uri, ok := in.Materialize(id)
	require.True(t, ok)
	require.Equal(t, "http://example.org/a/b/c", uri)
}

func TestMalformedURI(t *testing.T) {
	in := New()
	_, err := in.Intern("no-separator-at-all")
	require.ErrorIs(t, err, qerrors.ErrMalformedURI)
}

func TestLookupDoesNotIntern(t *testing.T) {
	in := New()
	_, ok := in.Lookup("http://example.org/ns#foo")
	require.False(t, ok)

	_, err := in.Intern("http://example.org/ns#foo")
	require.NoError(t, err)

	id, ok := in.Lookup("http://example.org/ns#foo")
	require.True(t, ok)

	uri, ok := in.Materialize(id)
	require.True(t, ok)
	require.Equal(t, "http://example.org/ns#foo", uri)
}
