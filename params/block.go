// Package params implements the hierarchical parameter block: a tree of
// named, dynamically-typed values used to pass structured configuration and
// results between subsystems without a compile-time schema.
//
// A Block is either a scalar leaf wrapping one varying.Varying, or a
// composite holding an ordered sequence of named child blocks. Composites are
// tagged TypeBlock (name-addressed) or TypeArray (position-addressed).
package params

import (
	"slices"
	"strconv"
	"strings"

	"paramtree.dev/paramtree/varying"
)

type BlockType int

const (
	TypeInvalid BlockType = iota
	TypeBoolean
	TypeFloat
	TypeString
	TypeInteger
	TypeUserData
	TypeArray
	TypeBlock
)

// BlockTypeName maps a BlockType to the label used in diagnostics and dumps.
func BlockTypeName(t BlockType) string {
	switch t {
	case TypeBoolean:
		return "BOOLEAN"
	case TypeFloat:
		return "FLOAT"
	case TypeString:
		return "STRING"
	case TypeInteger:
		return "INTEGER"
	case TypeUserData:
		return "USER_DATA"
	case TypeArray:
		return "ARRAY"
	case TypeBlock:
		return "BLOCK"
	default:
		return "INVALID_VALUE"
	}
}

func typeOfKind(k varying.Kind) BlockType {
	switch k {
	case varying.KindBool:
		return TypeBoolean
	case varying.KindFloat:
		return TypeFloat
	case varying.KindString:
		return TypeString
	case varying.KindInteger:
		return TypeInteger
	case varying.KindHandle:
		return TypeUserData
	default:
		return TypeInvalid
	}
}

const defaultErrorScope = "Unknown Scope"

type Block struct {
	typ        BlockType
	name       string
	value      *varying.Varying
	params     []Block
	errorScope string
}

// NewBlock constructs an empty composite of type Block.
func NewBlock(name string) Block {
	return Block{typ: TypeBlock, name: name, errorScope: defaultErrorScope}
}

// NewParam constructs a scalar leaf from value.
// The leaf type follows the varying classification of value; anything that is
// not a supported primitive becomes a USER_DATA handle leaf.
func NewParam(name string, value any) Block {
	v := varying.New(value)
	return Block{
		typ:        typeOfKind(v.Kind()),
		name:       name,
		value:      &v,
		errorScope: defaultErrorScope,
	}
}

// NewArrayParam constructs an Array whose children are scalar leaves named by
// their decimal position, in input order.
func NewArrayParam[T any](name string, values []T) Block {
	b := Block{typ: TypeArray, name: name, errorScope: defaultErrorScope}
	for k, v := range values {
		b.params = append(b.params, NewParam(strconv.Itoa(k), v))
	}
	return b
}

func (b *Block) Type() BlockType {
	return b.typ
}

func (b *Block) TypeName() string {
	return BlockTypeName(b.typ)
}

func (b *Block) Name() string {
	return b.name
}

func (b *Block) SetName(name string) {
	b.name = name
}

// IsScalar reports whether the block is a single value of one of the types
// BOOLEAN, FLOAT, STRING, INTEGER.
func (b *Block) IsScalar() bool {
	switch b.typ {
	case TypeBoolean, TypeFloat, TypeString, TypeInteger:
		return true
	}
	return false
}

// HasValue reports whether the block carries a scalar payload. A block with
// sub-parameters never has a value; an empty Block has neither.
func (b *Block) HasValue() bool {
	return b.value != nil
}

// Value returns the scalar payload. It fails with ErrNoValue on composites
// and on empty blocks.
func (b *Block) Value() (varying.Varying, error) {
	if b.value == nil {
		return varying.Varying{}, b.wrapScope(ErrNoValue{Type: b.typ})
	}
	return *b.value, nil
}

func (b *Block) NumParameters() int {
	return len(b.params)
}

// Parameters returns the ordered sub-parameters. The returned slice is the
// block's own storage; callers must treat it as read-only.
func (b *Block) Parameters() []Block {
	return b.params
}

func (b *Block) GetErrorOriginScope() string {
	return b.errorScope
}

// SetErrorOriginScope attaches a diagnostic label to the block and its whole
// subtree. The label rides along with copies and is prepended to failures.
func (b *Block) SetErrorOriginScope(scope string) {
	b.errorScope = scope
	for i := range b.params {
		b.params[i].SetErrorOriginScope(scope)
	}
}

// Clone returns a deep copy. Children are copied recursively; a handle leaf
// in the copy shares the external object with the original, nothing else is
// aliased.
func (b *Block) Clone() Block {
	out := *b
	if len(b.params) > 0 {
		out.params = make([]Block, len(b.params))
		for i := range b.params {
			out.params[i] = b.params[i].Clone()
		}
	}
	return out
}

// AddParameter appends a deep copy of p to the sub-parameter list.
// It fails with ErrStructuralViolation on a block that carries a scalar
// payload.
func (b *Block) AddParameter(p Block) error {
	if b.value != nil {
		return b.wrapScope(ErrStructuralViolation{Name: b.name, Type: b.typ})
	}
	b.params = append(b.params, p.Clone())
	return nil
}

// AddValue constructs a scalar leaf from value and appends it.
func (b *Block) AddValue(name string, value any) error {
	return b.AddParameter(NewParam(name, value))
}

// AddVector constructs an Array leaf sequence from values and appends it.
func AddVector[T any](b *Block, name string, values []T) error {
	return b.AddParameter(NewArrayParam(name, values))
}

// ChangeToArray retags the block as an Array, making its children
// position-addressable. Existing children keep their declared names.
// It fails with ErrStructuralViolation on a scalar-payload block.
func (b *Block) ChangeToArray() error {
	if b.value != nil {
		return b.wrapScope(ErrStructuralViolation{Name: b.name, Type: b.typ})
	}
	b.typ = TypeArray
	return nil
}

// SortParameters stably reorders the sub-parameters by name.
// Do not call this on an Array consumed positionally.
func (b *Block) SortParameters() {
	slices.SortStableFunc(b.params, func(x, y Block) int {
		return strings.Compare(x.name, y.name)
	})
}

// Has reports whether a sub-parameter with the given name exists.
func (b *Block) Has(name string) bool {
	for i := range b.params {
		if b.params[i].name == name {
			return true
		}
	}
	return false
}

// GetParam returns the first sub-parameter with the given name.
func (b *Block) GetParam(name string) (*Block, error) {
	for i := range b.params {
		if b.params[i].name == name {
			return &b.params[i], nil
		}
	}
	return nil, b.wrapScope(ErrNotFound{Name: name})
}

// GetParamIndex returns the sub-parameter at index i.
func (b *Block) GetParamIndex(i int) (*Block, error) {
	if i < 0 || i >= len(b.params) {
		return nil, b.wrapScope(ErrOutOfRange{Index: i, Count: len(b.params)})
	}
	return &b.params[i], nil
}

// RequireParameter fails with ErrMissingRequired unless a sub-parameter with
// the given name exists. It is used as a precondition guard.
func (b *Block) RequireParameter(name string) error {
	if !b.Has(name) {
		return b.wrapScope(ErrMissingRequired{Name: name})
	}
	return nil
}

// RequireBlockTypeIs fails with ErrTypeMismatch unless the block is of type t.
func (b *Block) RequireBlockTypeIs(t BlockType) error {
	if b.typ != t {
		return b.wrapScope(ErrTypeMismatch{Name: b.name, Want: t, Have: b.typ})
	}
	return nil
}

// RequireParameterBlockTypeIs checks the type of the named sub-parameter.
func (b *Block) RequireParameterBlockTypeIs(name string, t BlockType) error {
	p, err := b.GetParam(name)
	if err != nil {
		return err
	}
	return p.RequireBlockTypeIs(t)
}
