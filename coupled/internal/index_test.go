package internal

import (
	"testing"

	"github.com/GrayChrysTea/coupled-values/coupled/commons"
	"github.com/stretchr/testify/require"
)

func mustPair(t *testing.T, a, b string) *commons.Pair[string] {
	p, err := commons.NewPair(a, b)
	require.Nil(t, err)
	return p
}

func TestValueIndex(t *testing.T) {
	ab := mustPair(t, "a", "b")
	cd := mustPair(t, "c", "d")
	idx, err := NewValueIndex([]*commons.Pair[string]{ab, cd})
	require.Nil(t, err)
	require.Equal(t, 4, idx.Size())
	owner, ok := idx.Owner("b")
	require.Equal(t, true, ok)
	require.Equal(t, ab, owner)
	require.Equal(t, false, idx.Contains("e"))

	require.Equal(t, commons.ErrClashing, idx.Bind(mustPair(t, "e", "a")))
	require.Equal(t, false, idx.Contains("e"))

	idx.Unbind(ab)
	require.Equal(t, 2, idx.Size())
	require.Equal(t, false, idx.Contains("a"))
	idx.Clear()
	require.Equal(t, 0, idx.Size())
}

func TestValueIndexClashingBatch(t *testing.T) {
	_, err := NewValueIndex([]*commons.Pair[string]{mustPair(t, "a", "b"), mustPair(t, "c", "b")})
	require.Equal(t, commons.ErrClashing, err)
}

func TestValueIndexRebind(t *testing.T) {
	ab := mustPair(t, "a", "b")
	cd := mustPair(t, "c", "d")
	idx, _ := NewValueIndex([]*commons.Pair[string]{ab, cd})
	require.Nil(t, ab.Edit("a", "x"))
	require.Nil(t, idx.Rebind("b", "x"))
	owner, ok := idx.Owner("x")
	require.Equal(t, true, ok)
	require.Equal(t, ab, owner)
	require.Equal(t, false, idx.Contains("b"))
	require.Equal(t, commons.ErrNotFound, idx.Rebind("b", "y"))
	require.Equal(t, commons.ErrClashing, idx.Rebind("x", "c"))
}
