package params

import "fmt"

// Every failure kind below is a typed error raised synchronously at the
// offending call. Composed accessors only ever wrap these with additional
// scope context; nothing is suppressed or retried.

type ErrStructuralViolation struct {
	Name string
	Type BlockType
}

func (e ErrStructuralViolation) Error() string {
	return fmt.Sprintf("parameter %q of type %s holds a scalar value and cannot carry sub-parameters", e.Name, BlockTypeName(e.Type))
}

type ErrTypeMismatch struct {
	Name       string
	Want, Have BlockType
}

func (e ErrTypeMismatch) Error() string {
	return fmt.Sprintf("parameter %q is of type %s, not %s", e.Name, BlockTypeName(e.Have), BlockTypeName(e.Want))
}

type ErrNotFound struct {
	Name string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("parameter %q not present in block", e.Name)
}

type ErrOutOfRange struct {
	Index, Count int
}

func (e ErrOutOfRange) Error() string {
	return fmt.Sprintf("parameter index %d out of range [0, %d)", e.Index, e.Count)
}

type ErrMissingRequired struct {
	Name string
}

func (e ErrMissingRequired) Error() string {
	return fmt.Sprintf("required parameter %q is absent", e.Name)
}

type ErrNullHandle struct {
	Name string
}

func (e ErrNullHandle) Error() string {
	return fmt.Sprintf("handle parameter %q is null", e.Name)
}

type ErrHeterogeneousArray struct {
	Name       string
	Want, Have BlockType
}

func (e ErrHeterogeneousArray) Error() string {
	return fmt.Sprintf("array %q mixes sub-parameter types %s and %s", e.Name, BlockTypeName(e.Want), BlockTypeName(e.Have))
}

type ErrNoValue struct {
	Type BlockType
}

func (e ErrNoValue) Error() string {
	return fmt.Sprintf("value not available for block type %s", BlockTypeName(e.Type))
}

func (b *Block) wrapScope(err error) error {
	return fmt.Errorf("%s:%s: %w", b.errorScope, b.name, err)
}
