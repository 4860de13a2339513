// Package jsontree models JSON documents as an explicit tagged union with
// ordered objects, so templates can be rewritten and written back without
// losing key order or the textual form of numbers.
package jsontree

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Kind identifies the variant held by a Value.
type Kind uint8

// Value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON type name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// Value is a JSON value. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	num  json.Number
	str  string
	arr  []Value
	obj  *Object
}

// Null returns the JSON null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a number value from its textual JSON form.
func Number(n json.Number) Value { return Value{kind: KindNumber, num: n} }

// Int returns a number value for an integer.
func Int(n int) Value { return Number(json.Number(fmt.Sprint(n))) }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// NewArray returns an array value holding elems.
func NewArray(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindArray, arr: elems}
}

// ObjectValue wraps an Object. A nil object becomes an empty one.
func ObjectValue(o *Object) Value {
	if o == nil {
		o = NewObject()
	}
	return Value{kind: KindObject, obj: o}
}

// EmptyObject returns a new empty object value.
func EmptyObject() Value { return ObjectValue(NewObject()) }

// Kind reports the variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean and whether v is a bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the number text and whether v is a number.
func (v Value) AsNumber() (json.Number, bool) { return v.num, v.kind == KindNumber }

// AsString returns the string and whether v is a string.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsArray returns the elements and whether v is an array.
// The returned slice is shared with v.
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == KindArray }

// AsObject returns the object and whether v is an object.
// The returned object is shared with v.
func (v Value) AsObject() (*Object, bool) { return v.obj, v.kind == KindObject }

// IsEmptyObject reports whether v is an object with no members.
func (v Value) IsEmptyObject() bool {
	return v.kind == KindObject && v.obj.Len() == 0
}

// Clone returns a deep copy of v.
func Clone(v Value) Value {
	switch v.kind {
	case KindArray:
		elems := make([]Value, len(v.arr))
		for i, e := range v.arr {
			elems[i] = Clone(e)
		}
		return NewArray(elems...)
	case KindObject:
		out := NewObject()
		for _, m := range v.obj.members {
			out.Set(m.Key, Clone(m.Value))
		}
		return ObjectValue(out)
	default:
		return v
	}
}

// Equal reports whether a and b are structurally equal, including object
// key order. Numbers compare by their textual form.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.num == b.num
	case KindString:
		return a.str == b.str
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		for i, m := range a.obj.members {
			other := b.obj.members[i]
			if m.Key != other.Key || !Equal(m.Value, other.Value) {
				return false
			}
		}
		return true
	}
	return false
}

// FromAny converts a Go value built from maps, slices and scalars into a
// Value. Map keys are sorted since Go maps carry no order.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		return Number(t), nil
	case int:
		return Int(t), nil
	case int64:
		return Number(json.Number(fmt.Sprint(t))), nil
	case float64:
		data, err := json.Marshal(t)
		if err != nil {
			return Value{}, fmt.Errorf("encoding number: %w", err)
		}
		return Number(json.Number(data)), nil
	case []string:
		elems := make([]Value, 0, len(t))
		for _, s := range t {
			elems = append(elems, String(s))
		}
		return NewArray(elems...), nil
	case []any:
		elems := make([]Value, 0, len(t))
		for _, e := range t {
			v, err := FromAny(e)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, v)
		}
		return NewArray(elems...), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := NewObject()
		for _, k := range keys {
			v, err := FromAny(t[k])
			if err != nil {
				return Value{}, err
			}
			obj.Set(k, v)
		}
		return ObjectValue(obj), nil
	default:
		return Value{}, fmt.Errorf("unsupported type %T", x)
	}
}
