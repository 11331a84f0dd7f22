package uritemplate

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindUndefined is an absent or null value.
	KindUndefined Kind = iota
	// KindScalar is a string, number or boolean, held as text.
	KindScalar
	// KindList is an ordered list of values.
	KindList
	// KindMap is an ordered list of name/value pairs.
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a variable value as defined by RFC 6570 Section 2.3.
// The zero Value is undefined.
type Value struct {
	kind   Kind
	scalar string
	list   []Value
	pairs  []Pair
}

// Pair is one entry of a map value. Map values keep their pairs in the
// order given, which is the order they are expanded in.
type Pair struct {
	Key   string
	Value Value
}

// Undefined returns the undefined value.
func Undefined() Value {
	return Value{}
}

// String returns a scalar value holding s. The empty string is defined.
func String(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

// Int returns a scalar value holding the decimal form of i.
func Int(i int64) Value {
	return String(strconv.FormatInt(i, 10))
}

// Uint returns a scalar value holding the decimal form of u.
func Uint(u uint64) Value {
	return String(strconv.FormatUint(u, 10))
}

// Float returns a scalar value holding the shortest decimal form of f.
func Float(f float64) Value {
	return String(strconv.FormatFloat(f, 'f', -1, 64))
}

// Bool returns a scalar value holding "true" or "false".
func Bool(b bool) Value {
	return String(strconv.FormatBool(b))
}

// List returns a list value.
func List(items ...Value) Value {
	return Value{kind: KindList, list: items}
}

// Strings returns a list of scalar values.
func Strings(items ...string) Value {
	list := make([]Value, len(items))
	for i, s := range items {
		list[i] = String(s)
	}
	return List(list...)
}

// Map returns a map value with the given pairs in order.
func Map(pairs ...Pair) Value {
	return Value{kind: KindMap, pairs: pairs}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsDefined reports whether v is defined per RFC 6570 Section 2.3:
// scalars are always defined, even when empty; lists and maps are
// defined when at least one member is.
func (v Value) IsDefined() bool {
	switch v.kind {
	case KindScalar:
		return true
	case KindList:
		for _, item := range v.list {
			if item.IsDefined() {
				return true
			}
		}
	case KindMap:
		for _, p := range v.pairs {
			if p.Value.IsDefined() {
				return true
			}
		}
	}
	return false
}

// Items returns the members of a list value. The slice must not be modified.
func (v Value) Items() []Value {
	return v.list
}

// Pairs returns the entries of a map value. The slice must not be modified.
func (v Value) Pairs() []Pair {
	return v.pairs
}

// String returns the text of a scalar. Nested lists and maps render as the
// comma-joined text of their defined members.
func (v Value) String() string {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindList:
		parts := make([]string, 0, len(v.list))
		for _, item := range v.list {
			if item.IsDefined() {
				parts = append(parts, item.String())
			}
		}
		return strings.Join(parts, ",")
	case KindMap:
		parts := make([]string, 0, 2*len(v.pairs))
		for _, p := range v.pairs {
			if p.Value.IsDefined() {
				parts = append(parts, p.Key, p.Value.String())
			}
		}
		return strings.Join(parts, ",")
	}
	return ""
}

// Variables binds variable names to values for expansion. Names missing
// from the map are undefined.
type Variables map[string]Value

// VariablesOf converts native Go values with ValueOf.
func VariablesOf(m map[string]any) (Variables, error) {
	vars := make(Variables, len(m))
	for name, x := range m {
		v, err := ValueOf(x)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", name, err)
		}
		vars[name] = v
	}
	return vars, nil
}

// ValueOf converts a native Go value:
//   - nil and nil pointers become undefined
//   - strings, booleans, integers and floats become scalars
//   - fmt.Stringer and encoding.TextMarshaler implementations become scalars
//   - []byte becomes a scalar holding its bytes
//   - slices and arrays become lists
//   - maps with string keys become maps, ordered by key
//
// A Value or *Value is returned as is.
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Undefined(), nil
	case Value:
		return t, nil
	case *Value:
		if t == nil {
			return Undefined(), nil
		}
		return *t, nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case []byte:
		return String(string(t)), nil
	case fmt.Stringer:
		if rv := reflect.ValueOf(t); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return Undefined(), nil
		}
		return String(t.String()), nil
	case encoding.TextMarshaler:
		if rv := reflect.ValueOf(t); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return Undefined(), nil
		}
		text, err := t.MarshalText()
		if err != nil {
			return Value{}, err
		}
		return String(string(text)), nil
	}

	return valueOfReflect(reflect.ValueOf(x))
}

func valueOfReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Undefined(), nil
		}
		return ValueOf(rv.Elem().Interface())

	case reflect.String:
		return String(rv.String()), nil

	case reflect.Bool:
		return Bool(rv.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(rv.Uint()), nil

	case reflect.Float32, reflect.Float64:
		return String(strconv.FormatFloat(rv.Float(), 'f', -1, rv.Type().Bits())), nil

	case reflect.Slice, reflect.Array:
		items := make([]Value, rv.Len())
		for i := range items {
			item, err := ValueOf(rv.Index(i).Interface())
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			items[i] = item
		}
		return List(items...), nil

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedValue, rv.Type())
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return keys[i].String() < keys[j].String()
		})
		pairs := make([]Pair, len(keys))
		for i, k := range keys {
			item, err := ValueOf(rv.MapIndex(k).Interface())
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", k.String(), err)
			}
			pairs[i] = Pair{Key: k.String(), Value: item}
		}
		return Map(pairs...), nil
	}

	return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedValue, rv.Type())
}
