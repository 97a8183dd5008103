package params_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"paramtree.dev/paramtree/params"
	"paramtree.dev/paramtree/varying"
)

func sampleTree(t *testing.T) params.Block {
	b := params.NewBlock("root")
	require.NoError(t, b.AddValue("a", int64(1)))
	require.NoError(t, params.AddVector(&b, "b", []float64{1.5, 2.5}))
	require.NoError(t, b.AddValue("c", "x"))
	return b
}

func TestDumpJSON(t *testing.T) {
	t.Parallel()
	b := sampleTree(t)
	data := b.DumpJSON()
	require.Equal(t, `{"a":1,"b":[1.5,2.5],"c":"x"}`, string(data))

	// the projection is deterministic on an unmutated tree
	require.Equal(t, data, b.DumpJSON())

	// and it is valid JSON
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, 1.0, decoded["a"])
	require.Equal(t, []any{1.5, 2.5}, decoded["b"])
	require.Equal(t, "x", decoded["c"])
}

func TestDumpJSONEscaping(t *testing.T) {
	t.Parallel()
	b := params.NewBlock("root")
	require.NoError(t, b.AddValue(`we"ird`, "line\nbreak"))
	data := b.DumpJSON()
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "line\nbreak", decoded[`we"ird`])
}

func TestDumpJSONNested(t *testing.T) {
	t.Parallel()
	outer := params.NewBlock("outer")
	inner := params.NewBlock("inner")
	require.NoError(t, inner.AddValue("flag", true))
	require.NoError(t, outer.AddParameter(inner))
	require.Equal(t, `{"inner":{"flag":true}}`, string(outer.DumpJSON()))

	// array children do not emit their names
	arr := params.NewArrayParam("xs", []int64{7, 8})
	top := params.NewBlock("top")
	require.NoError(t, top.AddParameter(arr))
	require.Equal(t, `{"xs":[7,8]}`, string(top.DumpJSON()))
}

func TestDumpJSONHandle(t *testing.T) {
	t.Parallel()
	b := params.NewBlock("cfg")
	require.NoError(t, b.AddValue("dev", &device{addr: 1}))

	// a handle leaf has no JSON value of its own; its type identity is
	// emitted as a JSON string
	data := b.DumpJSON()
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, string(varying.TypeIDOf(&device{})), decoded["dev"])
}

func TestDumpString(t *testing.T) {
	t.Parallel()
	b := sampleTree(t)
	out := b.DumpString()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Equal(t, "root (BLOCK)", lines[0])
	require.Contains(t, lines, "  a = 1 (INTEGER)")
	require.Contains(t, lines, "  b (ARRAY)")
	require.Contains(t, lines, "    0 = 1.5 (FLOAT)")
	require.Contains(t, lines, "    1 = 2.5 (FLOAT)")
	require.Contains(t, lines, "  c = x (STRING)")

	// stable across repeated dumps
	require.Equal(t, out, b.DumpString())
}

func TestDumpEmptyComposites(t *testing.T) {
	t.Parallel()
	b := params.NewBlock("empty")
	require.Equal(t, `{}`, string(b.DumpJSON()))
	arr := params.NewArrayParam("none", []int64{})
	require.Equal(t, `[]`, string(arr.DumpJSON()))
}
