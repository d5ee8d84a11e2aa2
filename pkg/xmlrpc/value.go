// Package xmlrpc converts between XML-RPC wire documents and a small
// closed set of Go values.
package xmlrpc

import (
	"fmt"
	"sort"
	"time"
)

// Value is one XML-RPC value. The set of implementations is closed:
// Int, Bool, String, Double, DateTime, Base64, Struct and Array.
type Value interface {
	xmlrpcValue()
}

// Int is <int>, <i4> or <i8>.
type Int int64

// Bool is <boolean>.
type Bool bool

// String is <string>, or a <value> without a type element.
type String string

// Double is <double>.
type Double float64

// DateTime is <dateTime.iso8601>.
type DateTime time.Time

// Base64 is <base64>, carried decoded.
type Base64 []byte

// Member is one named field of a Struct.
type Member struct {
	Name  string
	Value Value
}

// Struct keeps members in document order. Names are unique.
type Struct []Member

// Array is an ordered list of values.
type Array []Value

func (Int) xmlrpcValue()      {}
func (Bool) xmlrpcValue()     {}
func (String) xmlrpcValue()   {}
func (Double) xmlrpcValue()   {}
func (DateTime) xmlrpcValue() {}
func (Base64) xmlrpcValue()   {}
func (Struct) xmlrpcValue()   {}
func (Array) xmlrpcValue()    {}

// Get returns the member value stored under name.
func (s Struct) Get(name string) (Value, bool) {
	for _, m := range s {
		if m.Name == name {
			return m.Value, true
		}
	}
	return nil, false
}

// String returns the named member rendered as text. Ints are formatted in
// base 10 so ids and fault codes read the same whichever type the server
// picked. Missing members and containers yield "".
func (s Struct) String(name string) string {
	v, ok := s.Get(name)
	if !ok {
		return ""
	}
	return Text(v)
}

// Set replaces the named member or appends it.
func (s Struct) Set(name string, v Value) Struct {
	for i := range s {
		if s[i].Name == name {
			s[i].Value = v
			return s
		}
	}
	return append(s, Member{Name: name, Value: v})
}

// Text renders a scalar as text. Containers render as "".
func Text(v Value) string {
	switch t := v.(type) {
	case String:
		return string(t)
	case Int:
		return fmt.Sprintf("%d", int64(t))
	case Bool:
		if t {
			return "1"
		}
		return "0"
	case Double:
		return fmt.Sprintf("%g", float64(t))
	case DateTime:
		return time.Time(t).Format(dateTimeLayout)
	case Base64:
		return string(t)
	default:
		return ""
	}
}

// FromNative converts plain Go values into XML-RPC values. Maps become
// structs with members sorted by key.
func FromNative(v any) (Value, error) {
	switch t := v.(type) {
	case Value:
		return t, nil
	case string:
		return String(t), nil
	case int:
		return Int(t), nil
	case int32:
		return Int(t), nil
	case int64:
		return Int(t), nil
	case bool:
		return Bool(t), nil
	case float64:
		return Double(t), nil
	case []byte:
		return Base64(t), nil
	case time.Time:
		return DateTime(t), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		s := make(Struct, 0, len(keys))
		for _, k := range keys {
			mv, err := FromNative(t[k])
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", k, err)
			}
			s = append(s, Member{Name: k, Value: mv})
		}
		return s, nil
	case []string:
		a := make(Array, len(t))
		for i, item := range t {
			a[i] = String(item)
		}
		return a, nil
	case []any:
		a := make(Array, len(t))
		for i, item := range t {
			iv, err := FromNative(item)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			a[i] = iv
		}
		return a, nil
	default:
		return nil, fmt.Errorf("xmlrpc: unsupported type %T", v)
	}
}
