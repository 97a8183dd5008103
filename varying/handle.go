package varying

import (
	"fmt"
	"reflect"
)

// TypeID is a stable identity token for the dynamic type behind a Handle.
type TypeID string

func TypeIDOf(x any) TypeID {
	if x == nil {
		return "<nil>"
	}
	return TypeID(reflect.TypeOf(x).String())
}

// Handle wraps an externally owned object the tree never interprets.
// Copies of a tree share the same Handle, so the wrapped object stays alive
// as long as any holder keeps a reference to it, inside a tree or not.
type Handle struct {
	typeID TypeID
	obj    any
}

func NewHandle(obj any) *Handle {
	return &Handle{typeID: TypeIDOf(obj), obj: obj}
}

func (h *Handle) TypeID() TypeID {
	return h.typeID
}

func (h *Handle) Object() any {
	if h == nil {
		return nil
	}
	return h.obj
}

// IsNil reports whether the handle references nothing.
func (h *Handle) IsNil() bool {
	return h == nil || h.obj == nil
}

// HandleAs narrows the held object to T.
// The narrowing is an explicit checked operation; a handle whose object does
// not support T fails with ErrInvalidCast.
func HandleAs[T any](h *Handle) (T, error) {
	var zero T
	if h.IsNil() {
		return zero, ErrInvalidCast{Want: fmt.Sprintf("%T", zero), Have: "<nil>"}
	}
	out, ok := h.obj.(T)
	if !ok {
		return zero, ErrInvalidCast{Want: fmt.Sprintf("%T", zero), Have: h.typeID}
	}
	return out, nil
}
