package params

import (
	"encoding/json"
	"fmt"
	"strings"
)

// indentUnit is added per depth level in the human-readable dump.
const indentUnit = "  "

// RecursiveDumpToString renders the subtree as an indented human-readable
// listing. Scalar leaves print as "<offset><name> = <value> (<type name>)";
// composites print a header and recurse.
func (b *Block) RecursiveDumpToString(out *strings.Builder, offset string) {
	if b.value != nil {
		fmt.Fprintf(out, "%s%s = %s (%s)\n", offset, b.name, b.value.String(), b.TypeName())
		return
	}
	fmt.Fprintf(out, "%s%s (%s)\n", offset, b.name, b.TypeName())
	for i := range b.params {
		b.params[i].RecursiveDumpToString(out, offset+indentUnit)
	}
}

// DumpString renders the subtree from a zero offset.
func (b *Block) DumpString() string {
	sb := new(strings.Builder)
	b.RecursiveDumpToString(sb, "")
	return sb.String()
}

// RecursiveDumpToJSON renders the subtree as strict JSON. A Block becomes an
// object keyed by child names in stored order, an Array becomes an array
// without names, scalar leaves become primitives of the matching JSON type.
// There is no entry point to reconstruct a tree from this output.
func (b *Block) RecursiveDumpToJSON(out *strings.Builder) {
	switch {
	case b.value != nil:
		out.WriteString(b.value.JSON())
	case b.typ == TypeArray:
		out.WriteByte('[')
		for i := range b.params {
			if i > 0 {
				out.WriteByte(',')
			}
			b.params[i].RecursiveDumpToJSON(out)
		}
		out.WriteByte(']')
	default:
		out.WriteByte('{')
		for i := range b.params {
			if i > 0 {
				out.WriteByte(',')
			}
			out.WriteString(quoteJSONKey(b.params[i].name))
			out.WriteByte(':')
			b.params[i].RecursiveDumpToJSON(out)
		}
		out.WriteByte('}')
	}
}

// DumpJSON renders the subtree as a JSON document.
func (b *Block) DumpJSON() []byte {
	sb := new(strings.Builder)
	b.RecursiveDumpToJSON(sb)
	return []byte(sb.String())
}

func quoteJSONKey(s string) string {
	data, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	return string(data)
}
