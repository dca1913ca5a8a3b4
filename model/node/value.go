// Package node holds the JSON document representation used by the codec.
//
// Input documents are read as Value, a lazily scanned view over the raw
// bytes. Output documents are built as Object and Array, which keep the
// order fields were added in.
package node

import (
	"encoding/json"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// Value is a view of one JSON value inside an input document.
// The zero Value represents an absent value.
type Value struct {
	raw []byte
	typ jsonparser.ValueType
}

// Fields are the members of a JSON object keyed by name.
// Looking up a missing name yields the absent Value.
type Fields map[string]Value

// Parse checks that data is well-formed JSON and returns its top-level value.
func Parse(data []byte) (Value, error) {
	if !json.Valid(data) {
		return Value{}, errors.New("malformed JSON document")
	}
	raw, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return Value{}, errors.Wrap(err, "scan JSON document")
	}
	return Value{raw: raw, typ: typ}, nil
}

// Type returns the JSON type of v; jsonparser.NotExist for an absent value.
func (v Value) Type() jsonparser.ValueType {
	return v.typ
}

// Exists reports whether v is present in the document, null included.
func (v Value) Exists() bool {
	return v.typ != jsonparser.NotExist
}

// IsNull reports whether v is an explicit JSON null.
func (v Value) IsNull() bool {
	return v.typ == jsonparser.Null
}

// Raw returns the bytes of v. String values are returned without quotes
// and still escaped.
func (v Value) Raw() []byte {
	return v.raw
}

// Object returns the members of v, or false if v is not an object.
func (v Value) Object() (Fields, bool) {
	if v.typ != jsonparser.Object {
		return nil, false
	}
	fields := Fields{}
	err := jsonparser.ObjectEach(v.raw, func(key, value []byte, typ jsonparser.ValueType, _ int) error {
		fields[string(key)] = Value{raw: value, typ: typ}
		return nil
	})
	if err != nil {
		return nil, false
	}
	return fields, true
}

// Get returns the member key of an object value.
func (v Value) Get(key string) Value {
	if v.typ != jsonparser.Object {
		return Value{}
	}
	raw, typ, _, err := jsonparser.Get(v.raw, key)
	if err != nil {
		return Value{}
	}
	return Value{raw: raw, typ: typ}
}

// Array returns the elements of v, or false if v is not an array.
func (v Value) Array() ([]Value, bool) {
	if v.typ != jsonparser.Array {
		return nil, false
	}
	var items []Value
	_, err := jsonparser.ArrayEach(v.raw, func(value []byte, typ jsonparser.ValueType, _ int, err error) {
		if err != nil {
			return
		}
		items = append(items, Value{raw: value, typ: typ})
	})
	if err != nil {
		return nil, false
	}
	return items, true
}

// AsString returns the unescaped content of a string value.
func (v Value) AsString() (string, bool) {
	if v.typ != jsonparser.String {
		return "", false
	}
	s, err := jsonparser.ParseString(v.raw)
	if err != nil {
		return "", false
	}
	return s, true
}

// AsBool returns the content of a boolean value.
func (v Value) AsBool() (bool, bool) {
	if v.typ != jsonparser.Boolean {
		return false, false
	}
	b, err := jsonparser.ParseBoolean(v.raw)
	if err != nil {
		return false, false
	}
	return b, true
}

// AsInt returns the content of an integral number value.
func (v Value) AsInt() (int64, bool) {
	if v.typ != jsonparser.Number {
		return 0, false
	}
	i, err := jsonparser.ParseInt(v.raw)
	if err != nil {
		return 0, false
	}
	return i, true
}

// AsNumber returns the literal text of a number value.
func (v Value) AsNumber() (string, bool) {
	if v.typ != jsonparser.Number {
		return "", false
	}
	return string(v.raw), true
}
