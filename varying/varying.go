// Package varying implements a run-time tagged value over a closed set of
// primitive kinds. A Varying holds exactly one payload and is immutable once
// constructed; replacing the value means constructing a new Varying.
package varying

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindFloat
	KindString
	KindInteger
	KindHandle
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "BOOL"
	case KindFloat:
		return "FLOAT"
	case KindString:
		return "STRING"
	case KindInteger:
		return "INTEGER"
	case KindHandle:
		return "HANDLE"
	default:
		return "INVALID"
	}
}

type Varying struct {
	kind Kind

	b bool
	f float64
	i int64
	s string
	h *Handle

	// bits is the bit width of the numeric type the value was constructed
	// from. Retrieval may widen but never narrow.
	bits int

	// uns marks an integer constructed from a uint64 above the int64
	// range; i then holds the value's bit pattern.
	uns bool
}

func NewBool(v bool) Varying {
	return Varying{kind: KindBool, b: v}
}

func NewFloat(v float64, bits int) Varying {
	return Varying{kind: KindFloat, f: v, bits: bits}
}

func NewString(v string) Varying {
	return Varying{kind: KindString, s: v}
}

func NewInteger(v int64, bits int) Varying {
	return Varying{kind: KindInteger, i: v, bits: bits}
}

// NewUnsigned stores v exactly, including values above the int64 range.
func NewUnsigned(v uint64, bits int) Varying {
	return Varying{kind: KindInteger, i: int64(v), bits: bits, uns: v > math.MaxInt64}
}

func NewOpaque(h *Handle) Varying {
	return Varying{kind: KindHandle, h: h}
}

// New classifies x into exactly one Kind by inspecting its type.
// Classification order is bool, float, string, integer; anything else is kept
// as an opaque Handle without interpretation.
func New(x any) Varying {
	switch x := x.(type) {
	case Varying:
		return x
	case *Handle:
		return NewOpaque(x)
	case bool:
		return NewBool(x)
	case string:
		return NewString(x)
	}
	rv := reflect.ValueOf(x)
	if !rv.IsValid() {
		return NewOpaque(nil)
	}
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return NewFloat(rv.Float(), rv.Type().Bits())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewInteger(rv.Int(), rv.Type().Bits())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return NewUnsigned(rv.Uint(), rv.Type().Bits())
	case reflect.String:
		return NewString(rv.String())
	case reflect.Bool:
		return NewBool(rv.Bool())
	default:
		return NewOpaque(NewHandle(x))
	}
}

func (v Varying) Kind() Kind {
	return v.kind
}

// NumBits returns the bit width recorded at construction for numeric kinds.
func (v Varying) NumBits() int {
	return v.bits
}

// AsBool and friends are unchecked fast paths; they panic when the kind does
// not match. Use As for checked retrieval.
func (v Varying) AsBool() bool {
	v.mustBe(KindBool)
	return v.b
}

func (v Varying) AsFloat() float64 {
	v.mustBe(KindFloat)
	return v.f
}

func (v Varying) AsInteger() int64 {
	v.mustBe(KindInteger)
	if v.uns {
		panic("varying: integer exceeds int64 range")
	}
	return v.i
}

func (v Varying) AsString() string {
	v.mustBe(KindString)
	return v.s
}

func (v Varying) AsHandle() *Handle {
	v.mustBe(KindHandle)
	return v.h
}

func (v Varying) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("varying: %v accessed as %v", v.kind, k))
	}
}

// As returns the stored value as T.
// The classification of T must match the stored kind, with two exceptions: a
// stored Integer may widen to an equal-or-larger integer or to any float, and
// a stored Float may widen to an equal-or-larger float. A Float never
// converts to Integer. A conversion that cannot represent the stored value
// exactly, including an unsigned value above the int64 range requested as a
// signed type, fails rather than truncate.
func As[T any](v Varying) (T, error) {
	var zero T
	rt := reflect.TypeOf(&zero).Elem()
	if rt == reflect.TypeOf((*Handle)(nil)) {
		if v.kind != KindHandle {
			return zero, ErrTypeMismatch{Want: KindHandle, Have: v.kind}
		}
		return any(v.h).(T), nil
	}
	out := reflect.New(rt).Elem()
	switch rt.Kind() {
	case reflect.Bool:
		if v.kind != KindBool {
			return zero, ErrTypeMismatch{Want: KindBool, Have: v.kind}
		}
		out.SetBool(v.b)
	case reflect.String:
		if v.kind != KindString {
			return zero, ErrTypeMismatch{Want: KindString, Have: v.kind}
		}
		out.SetString(v.s)
	case reflect.Float32, reflect.Float64:
		switch v.kind {
		case KindFloat:
			if rt.Bits() < v.bits {
				return zero, ErrTypeMismatch{Want: KindFloat, Have: v.kind, Narrowing: true}
			}
			out.SetFloat(v.f)
		case KindInteger:
			if v.uns {
				out.SetFloat(float64(uint64(v.i)))
			} else {
				out.SetFloat(float64(v.i))
			}
		default:
			return zero, ErrTypeMismatch{Want: KindFloat, Have: v.kind}
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.kind != KindInteger {
			return zero, ErrTypeMismatch{Want: KindInteger, Have: v.kind}
		}
		if rt.Bits() < v.bits || v.uns || out.OverflowInt(v.i) {
			return zero, ErrTypeMismatch{Want: KindInteger, Have: v.kind, Narrowing: true}
		}
		out.SetInt(v.i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.kind != KindInteger {
			return zero, ErrTypeMismatch{Want: KindInteger, Have: v.kind}
		}
		if rt.Bits() < v.bits || (!v.uns && v.i < 0) || out.OverflowUint(uint64(v.i)) {
			return zero, ErrTypeMismatch{Want: KindInteger, Have: v.kind, Narrowing: true}
		}
		out.SetUint(uint64(v.i))
	default:
		return zero, ErrTypeMismatch{Want: KindInvalid, Have: v.kind}
	}
	return out.Interface().(T), nil
}

// String renders the payload for human-readable dumps.
func (v Varying) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindFloat:
		return formatFloat(v.f, v.bits)
	case KindString:
		return v.s
	case KindInteger:
		return v.formatInt()
	case KindHandle:
		if v.h == nil {
			return "<nil>"
		}
		return string(v.h.TypeID())
	default:
		return "<invalid>"
	}
}

// JSON renders the payload as a strict JSON primitive.
// Handles have no JSON representation of their own; their type identity is
// emitted as a JSON string.
func (v Varying) JSON() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindFloat:
		if math.IsInf(v.f, 0) || math.IsNaN(v.f) {
			return "null"
		}
		return formatFloat(v.f, v.bits)
	case KindString:
		return quoteJSON(v.s)
	case KindInteger:
		return v.formatInt()
	case KindHandle:
		return quoteJSON(v.String())
	default:
		return "null"
	}
}

func (v Varying) formatInt() string {
	if v.uns {
		return strconv.FormatUint(uint64(v.i), 10)
	}
	return strconv.FormatInt(v.i, 10)
}

func formatFloat(f float64, bits int) string {
	if bits != 32 {
		bits = 64
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

func quoteJSON(s string) string {
	data, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	return string(data)
}
