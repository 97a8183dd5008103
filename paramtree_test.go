package paramtree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"paramtree.dev/paramtree"
	"paramtree.dev/paramtree/params"
)

func TestHash(t *testing.T) {
	t.Parallel()
	a := paramtree.Hash(nil, []byte("hello"))
	require.Equal(t, a, paramtree.Hash(nil, []byte("hello")))
	require.NotEqual(t, a, paramtree.Hash(nil, []byte("world")))

	tag := paramtree.Hash(nil, []byte("tag"))
	require.NotEqual(t, a, paramtree.Hash(&tag, []byte("hello")))
	require.Len(t, a.String(), 64)
}

func TestFingerprint(t *testing.T) {
	t.Parallel()
	b1 := params.NewBlock("root")
	require.NoError(t, b1.AddValue("x", int64(1)))
	b2 := b1.Clone()
	require.Equal(t, paramtree.Fingerprint(&b1), paramtree.Fingerprint(&b2))

	require.NoError(t, b2.AddValue("y", int64(2)))
	require.NotEqual(t, paramtree.Fingerprint(&b1), paramtree.Fingerprint(&b2))
}
