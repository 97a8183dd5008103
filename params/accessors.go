package params

import (
	"paramtree.dev/paramtree/varying"
)

// GetValue returns the scalar payload of b as T.
// It is only valid on scalar leaves; Array and Block fail with ErrNoValue.
// Type-mismatch failures from the underlying varying are re-raised with the
// block's error scope and name prepended.
func GetValue[T any](b *Block) (T, error) {
	var zero T
	if b.value == nil {
		return zero, b.wrapScope(ErrNoValue{Type: b.typ})
	}
	out, err := varying.As[T](*b.value)
	if err != nil {
		return zero, b.wrapScope(err)
	}
	return out, nil
}

// GetParamValue fetches the sub-parameter with the given name and returns its
// value as T.
func GetParamValue[T any](b *Block, name string) (T, error) {
	var zero T
	p, err := b.GetParam(name)
	if err != nil {
		return zero, err
	}
	return GetValue[T](p)
}

// GetVectorValue converts the children of an Array block to a slice of T.
// An empty array yields an empty slice. Children of mixed types fail with
// ErrHeterogeneousArray before any element is converted.
func GetVectorValue[T any](b *Block) ([]T, error) {
	if b.typ != TypeArray {
		return nil, b.wrapScope(ErrTypeMismatch{Name: b.name, Want: TypeArray, Have: b.typ})
	}
	if len(b.params) == 0 {
		return []T{}, nil
	}
	front := &b.params[0]
	for i := range b.params {
		if b.params[i].typ != front.typ {
			return nil, b.wrapScope(ErrHeterogeneousArray{
				Name: b.name,
				Want: front.typ,
				Have: b.params[i].typ,
			})
		}
	}
	out := make([]T, 0, len(b.params))
	for i := range b.params {
		v, err := GetValue[T](&b.params[i])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// GetParamVectorValue fetches the named Array sub-parameter and converts it
// to a slice of T.
func GetParamVectorValue[T any](b *Block, name string) ([]T, error) {
	p, err := b.GetParam(name)
	if err != nil {
		return nil, err
	}
	return GetVectorValue[T](p)
}

// GetHandleParam fetches the named USER_DATA sub-parameter and narrows the
// held object to T.
//
// A null handle fails with ErrNullHandle when check is true; with check false
// it yields the zero T without failing. A handle whose object does not
// support T fails with varying.ErrInvalidCast.
func GetHandleParam[T any](b *Block, name string, check bool) (T, error) {
	var zero T
	p, err := b.GetParam(name)
	if err != nil {
		return zero, err
	}
	h, err := GetValue[*varying.Handle](p)
	if err != nil {
		return zero, err
	}
	if h.IsNil() {
		if check {
			return zero, b.wrapScope(ErrNullHandle{Name: name})
		}
		return zero, nil
	}
	out, err := varying.HandleAs[T](h)
	if err != nil {
		return zero, b.wrapScope(err)
	}
	return out, nil
}
