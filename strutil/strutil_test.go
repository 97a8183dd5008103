package strutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"paramtree.dev/paramtree/strutil"
)

func TestTrim(t *testing.T) {
	t.Parallel()
	require.Equal(t, "abc \t", strutil.LTrim(" \n abc \t"))
	require.Equal(t, " \n abc", strutil.RTrim(" \n abc \t"))
	require.Equal(t, "abc", strutil.Trim(" \n abc \t"))
	require.Equal(t, "", strutil.Trim(" \r\n\t\f\v "))
}

func TestSplit(t *testing.T) {
	t.Parallel()
	require.Equal(t, []string{"a", "b", "c"}, strutil.Split("a b c", " "))
	// consecutive delimiters are treated as one
	require.Equal(t, []string{"a", "b"}, strutil.Split("a   b", " "))
	require.Nil(t, strutil.Split("", " "))
}

func TestUpToFirstReverse(t *testing.T) {
	t.Parallel()
	require.Equal(t, "file.txt", strutil.UpToFirstReverse("/a/b/file.txt", "/"))
	require.Equal(t, "noslash", strutil.UpToFirstReverse("noslash", "/"))
}

func TestMakeSubSets(t *testing.T) {
	t.Parallel()
	ss := strutil.MakeSubSets(6659, 8)
	require.Len(t, ss, 8)
	sizes := make([]int, len(ss))
	total := 0
	for i, s := range ss {
		sizes[i] = s.Size
		require.Equal(t, s.End-s.Begin, s.Size)
		total += s.Size
	}
	require.Equal(t, []int{833, 833, 833, 832, 832, 832, 832, 832}, sizes)
	require.Equal(t, 6659, total)
	require.Equal(t, 0, ss[0].Begin)
	require.Equal(t, 6659, ss[len(ss)-1].End)
}

func TestPrintIterationProgress(t *testing.T) {
	t.Parallel()
	var hits []string
	for i := 0; i < 100; i++ {
		if s := strutil.PrintIterationProgress(i, 100, 4); s != "" {
			hits = append(hits, s)
		}
	}
	require.Equal(t, []string{"25%", "50%", "75%", "100%"}, hits)
}

func TestDJB2a(t *testing.T) {
	t.Parallel()
	require.Equal(t, uint32(5381), strutil.DJB2a(""))
	require.Equal(t, strutil.DJB2a("abc"), strutil.DJB2a("abc"))
	require.NotEqual(t, strutil.DJB2a("abc"), strutil.DJB2a("abd"))
}
