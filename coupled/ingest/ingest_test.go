package ingest

import (
	"errors"
	"testing"

	"github.com/GrayChrysTea/coupled-values/coupled/commons"
	"github.com/stretchr/testify/require"
)

type pairList []*commons.Pair[string]

func (l pairList) Pairs() []*commons.Pair[string] {
	return l
}

func values[V comparable](pairs []*commons.Pair[V]) [][2]V {
	out := make([][2]V, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, [2]V{p.First(), p.Second()})
	}
	return out
}

func TestToPairsTuples(t *testing.T) {
	pairs, err := ToPairs[string]([][2]string{{"a", "b"}, {"c", "d"}, {"e", "f"}})
	require.Nil(t, err)
	require.Equal(t, [][2]string{{"a", "b"}, {"c", "d"}, {"e", "f"}}, values(pairs))

	pairs, err = ToPairs[string]([][]string{{"x", "y"}})
	require.Nil(t, err)
	require.Equal(t, [][2]string{{"x", "y"}}, values(pairs))

	_, err = ToPairs[string]([][]string{{"x", "y", "z"}})
	require.True(t, errors.Is(err, commons.ErrUnsupportedShape))

	intPairs, err := ToPairs[int]([2]int{1, 2})
	require.Nil(t, err)
	require.Equal(t, [][2]int{{1, 2}}, values(intPairs))
}

func TestToPairsInvalidPair(t *testing.T) {
	_, err := ToPairs[string]([][2]string{{"a", "b"}, {"c", "c"}})
	require.True(t, errors.Is(err, commons.ErrInvalidPair))
	_, err = ToPairs[string]([2]string{"a", "a"})
	require.True(t, errors.Is(err, commons.ErrInvalidPair))
	_, err = ToPairs[string](map[string]string{"a": "a"})
	require.True(t, errors.Is(err, commons.ErrInvalidPair))
	_, err = ToPairs[string](commons.Pair[string]{})
	require.True(t, errors.Is(err, commons.ErrInvalidPair))
}

func TestToPairsMap(t *testing.T) {
	pairs, err := ToPairs[string](map[string]string{"c": "b", "a": "b"})
	require.Nil(t, err)
	require.Equal(t, [][2]string{{"a", "b"}, {"c", "b"}}, values(pairs))
}

func TestToPairsExistingPairs(t *testing.T) {
	ab, _ := commons.NewPair("a", "b")
	cd, _ := commons.NewPair("c", "d")

	pairs, err := ToPairs[string](ab)
	require.Nil(t, err)
	require.Equal(t, 1, len(pairs))
	require.NotSame(t, ab, pairs[0])
	require.Equal(t, true, pairs[0].IsEquivalentTo(ab))

	pairs, err = ToPairs[string]([]*commons.Pair[string]{ab, cd})
	require.Nil(t, err)
	require.Equal(t, [][2]string{{"a", "b"}, {"c", "d"}}, values(pairs))

	pairs, err = ToPairs[string](pairList{cd, ab})
	require.Nil(t, err)
	require.Equal(t, [][2]string{{"c", "d"}, {"a", "b"}}, values(pairs))

	_, err = ToPairs[string]([]*commons.Pair[string]{ab, nil})
	require.True(t, errors.Is(err, commons.ErrUnsupportedShape))
}

func TestToPairsUnsupported(t *testing.T) {
	_, err := ToPairs[string](42)
	require.True(t, errors.Is(err, commons.ErrUnsupportedShape))
	_, err = ToPairs[string]([]string{"a", "b"})
	require.True(t, errors.Is(err, commons.ErrUnsupportedShape))
	_, err = ToPairs[int](map[string]string{"a": "b"})
	require.True(t, errors.Is(err, commons.ErrUnsupportedShape))

	pairs, err := ToPairs[string](nil)
	require.Nil(t, err)
	require.Equal(t, 0, len(pairs))
}

func TestFromDocumentMapping(t *testing.T) {
	doc := []byte(`
zeta: alpha
beta: gamma
delta: epsilon
`)
	pairs, err := FromDocument[string](doc)
	require.Nil(t, err)
	require.Equal(t, [][2]string{{"zeta", "alpha"}, {"beta", "gamma"}, {"delta", "epsilon"}}, values(pairs))
}

func TestFromDocumentJSON(t *testing.T) {
	pairs, err := FromDocument[string]([]byte(`{"k1": "v1", "a": "b"}`))
	require.Nil(t, err)
	require.Equal(t, [][2]string{{"k1", "v1"}, {"a", "b"}}, values(pairs))

	intPairs, err := FromDocument[int]([]byte(`[[1, 2], [3, 4]]`))
	require.Nil(t, err)
	require.Equal(t, [][2]int{{1, 2}, {3, 4}}, values(intPairs))

	intPairs, err = FromDocument[int]([]byte(`[5, 6]`))
	require.Nil(t, err)
	require.Equal(t, [][2]int{{5, 6}}, values(intPairs))
}

func TestFromDocumentErrors(t *testing.T) {
	_, err := FromDocument[string]([]byte(`a: a`))
	require.True(t, errors.Is(err, commons.ErrInvalidPair))

	_, err = FromDocument[string]([]byte("- [a, b, c]\n- [d, e]\n"))
	require.True(t, errors.Is(err, commons.ErrUnsupportedShape))

	_, err = FromDocument[string]([]byte("- a\n- b\n- c\n"))
	require.True(t, errors.Is(err, commons.ErrUnsupportedShape))

	_, err = FromDocument[string]([]byte(`just a scalar`))
	require.True(t, errors.Is(err, commons.ErrUnsupportedShape))

	_, err = FromDocument[int]([]byte(`{a: b}`))
	require.NotNil(t, err)

	pairs, err := FromDocument[string]([]byte(``))
	require.Nil(t, err)
	require.Equal(t, 0, len(pairs))
}
