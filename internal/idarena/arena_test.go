package idarena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindOrAddReusesExistingID(t *testing.T) {
	a := New[string](Width64)

	id1, err := a.FindOrAdd("foo")
	require.NoError(t, err)

	id2, err := a.FindOrAdd("foo")
	require.NoError(t, err)

	require.Equal(t, id1, id2)
	require.Equal(t, 1, a.Len())
}

func TestFindOrAddAllocatesFreshIDs(t *testing.T) {
	a := New[string](Width64)

	id1, err := a.FindOrAdd("a")
	require.NoError(t, err)
	id2, err := a.FindOrAdd("b")
	require.NoError(t, err)

	require.NotEqual(t, id1, id2)
	require.Equal(t, 2, a.Len())
}

func TestFindDoesNotMutate(t *testing.T) {
	a := New[string](Width64)

	_, ok := a.Find("missing")
	require.False(t, ok)
	require.Equal(t, 0, a.Len())
}

func TestRemoveByIDFreesSlotForReuse(t *testing.T) {
	a := New[string](Width64)

	id, err := a.FindOrAdd("foo")
	require.NoError(t, err)

	a.RemoveByID(id)
	require.Equal(t, 0, a.Len())

	_, ok := a.Get(id)
	require.False(t, ok)

	newID, err := a.FindOrAdd("bar")
	require.NoError(t, err)
	require.Equal(t, id, newID, "freed id should be reused LIFO")
}

func TestRemoveByKey(t *testing.T) {
	a := New[string](Width64)

	id, err := a.FindOrAdd("foo")
	require.NoError(t, err)

	a.RemoveByKey("foo")
	_, ok := a.Get(id)
	require.False(t, ok)
	_, ok = a.Lookup("foo")
	require.False(t, ok)
}

func TestOverflow(t *testing.T) {
	a := New[int](Width(1))

	_, err := a.FindOrAdd(0)
	require.NoError(t, err)
	_, err = a.FindOrAdd(1)
	require.NoError(t, err)
	_, err = a.FindOrAdd(2)
	require.Error(t, err)
}

func TestGetOnUnknownID(t *testing.T) {
	a := New[string](Width64)
	_, ok := a.Get(42)
	require.False(t, ok)
}
