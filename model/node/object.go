package node

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Number is the literal text of a JSON number.
type Number string

// Array is an output JSON array. Elements are string, bool, Number,
// *Object, Array or nil for null.
type Array []any

// Object is an output JSON object that serializes its members in insertion order.
type Object struct {
	keys   []string
	values map[string]any
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{values: map[string]any{}}
}

// Set adds or replaces the member key. Replacing keeps the original position.
func (o *Object) Set(key string, value any) *Object {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

// SetObject sets key unless value is nil or has no members.
func (o *Object) SetObject(key string, value *Object) *Object {
	if value.Len() == 0 {
		return o
	}
	return o.Set(key, value)
}

// SetArray sets key unless value is empty.
func (o *Object) SetArray(key string, value Array) *Object {
	if len(value) == 0 {
		return o
	}
	return o.Set(key, value)
}

// Get returns the member key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the member names in order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return append([]string(nil), o.keys...)
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

func (o *Object) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	if err := o.write(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (a Array) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	if err := a.write(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (o *Object) write(b *bytes.Buffer) error {
	if o == nil {
		b.WriteString("null")
		return nil
	}
	b.WriteByte('{')
	setComma := false
	for _, k := range o.keys {
		if setComma {
			b.WriteByte(',')
		}
		setComma = true
		if err := writeString(b, k); err != nil {
			return err
		}
		b.WriteByte(':')
		if err := writeValue(b, o.values[k]); err != nil {
			return err
		}
	}
	b.WriteByte('}')
	return nil
}

func (a Array) write(b *bytes.Buffer) error {
	b.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			b.WriteByte(',')
		}
		if err := writeValue(b, v); err != nil {
			return err
		}
	}
	b.WriteByte(']')
	return nil
}

func writeValue(b *bytes.Buffer, v any) error {
	switch v := v.(type) {
	case nil:
		b.WriteString("null")
	case string:
		return writeString(b, v)
	case bool:
		if v {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case Number:
		b.WriteString(string(v))
	case *Object:
		return v.write(b)
	case Array:
		return v.write(b)
	default:
		return writeJSON(b, v)
	}
	return nil
}

func writeString(b *bytes.Buffer, s string) error {
	return writeJSON(b, s)
}

func writeJSON(b *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	b.WriteString(strings.TrimSuffix(tmp.String(), "\n"))
	return nil
}
