package r5

import (
	"github.com/fastfhir/fhir-r5-go/model/node"
	"github.com/fastfhir/fhir-r5-go/utils/array"
	"github.com/fastfhir/fhir-r5-go/utils/strutil"
)

// Extension is additional content defined by implementations.
type Extension struct {
	// Unique id for inter-element referencing.
	Id *string
	// Nested extensions.
	Extension []Extension
	// Identifies the meaning of the extension.
	Url string
	// Value of extension.
	Value ExtensionValue
}

// ExtensionValue is one of the types an Extension may carry in value[x].
type ExtensionValue interface {
	choice
	isExtensionValue()
}

// choice is implemented by every type that appears in a [x] element.
type choice interface {
	// choiceSuffix is the type name appended to the element name in JSON.
	choiceSuffix() string
	cloneChoice() choice
}

// primitiveElement is implemented by pointers to primitive types. Both
// results are nil for a nil receiver.
type primitiveElement interface {
	jsonParts() (value any, element *node.Object)
}

// ParseExtension reads an extension object; nil if v is not one or lacks a url.
func ParseExtension(v node.Value) *Extension {
	f, ok := v.Object()
	if !ok {
		return nil
	}
	url, ok := f["url"].AsString()
	if !ok {
		return nil
	}
	e := &Extension{Url: url}
	e.Id, e.Extension = parseElement(f)
	for _, c := range extensionValueParsers {
		if val := c.parse(f, "value"+c.suffix); val != nil {
			e.Value = val
			break
		}
	}
	return e
}

func (e *Extension) ToJSON() *node.Object {
	if e == nil {
		return nil
	}
	o := node.NewObject()
	writeElement(o, e.Id, e.Extension)
	o.Set("url", e.Url)
	setChoice(o, "value", e.Value)
	return o
}

func (e *Extension) Clone() *Extension {
	if e == nil {
		return nil
	}
	return &Extension{
		Id:        cloneString(e.Id),
		Extension: cloneAll(e.Extension),
		Url:       e.Url,
		Value:     cloneChoice(e.Value),
	}
}

type choiceParser[C any] struct {
	suffix string
	parse  func(f node.Fields, key string) C
}

func primitiveChoice[C any, T any, P interface {
	*T
	choice
}](suffix string, parse func(v, ext node.Value) P) choiceParser[C] {
	return choiceParser[C]{suffix: suffix, parse: func(f node.Fields, key string) C {
		var zero C
		p := parse(f[key], f["_"+key])
		if (*T)(p) == nil {
			return zero
		}
		return any(p).(C)
	}}
}

func complexChoice[C any, T any, P interface {
	*T
	choice
}](suffix string, parse func(v node.Value) P) choiceParser[C] {
	return choiceParser[C]{suffix: suffix, parse: func(f node.Fields, key string) C {
		var zero C
		p := parse(f[key])
		if (*T)(p) == nil {
			return zero
		}
		return any(p).(C)
	}}
}

// parseChoice tries the candidates in order and returns the first match for name[x].
func parseChoice[C comparable](f node.Fields, name string, candidates []choiceParser[C]) C {
	var zero C
	for _, c := range candidates {
		if v := c.parse(f, name+c.suffix); v != zero {
			return v
		}
	}
	return zero
}

// Choice tables are filled in init; the parsers refer back to them.
var extensionValueParsers []choiceParser[ExtensionValue]

func init() {
	extensionValueParsers = []choiceParser[ExtensionValue]{
		primitiveChoice[ExtensionValue]("Boolean", ParseBoolean),
		primitiveChoice[ExtensionValue]("Integer", ParseInteger),
		primitiveChoice[ExtensionValue]("Decimal", ParseDecimal),
		primitiveChoice[ExtensionValue]("String", ParseString),
		primitiveChoice[ExtensionValue]("Uri", ParseUri),
		primitiveChoice[ExtensionValue]("Url", ParseUrl),
		primitiveChoice[ExtensionValue]("Code", ParseCode),
		primitiveChoice[ExtensionValue]("Id", ParseId),
		primitiveChoice[ExtensionValue]("Date", ParseDate),
		primitiveChoice[ExtensionValue]("DateTime", ParseDateTime),
		primitiveChoice[ExtensionValue]("Instant", ParseInstant),
		primitiveChoice[ExtensionValue]("Time", ParseTime),
		primitiveChoice[ExtensionValue]("Markdown", ParseMarkdown),
		complexChoice[ExtensionValue]("Coding", ParseCoding),
		complexChoice[ExtensionValue]("CodeableConcept", ParseCodeableConcept),
		complexChoice[ExtensionValue]("Quantity", ParseQuantity),
		complexChoice[ExtensionValue]("Range", ParseRange),
		complexChoice[ExtensionValue]("Period", ParsePeriod),
		complexChoice[ExtensionValue]("Identifier", ParseIdentifier),
		complexChoice[ExtensionValue]("Reference", ParseReference),
	}
}

// setChoice writes c under name+suffix; nothing is written for nil.
func setChoice(o *node.Object, name string, c choice) {
	if c == nil {
		return
	}
	key := name + c.choiceSuffix()
	switch v := c.(type) {
	case primitiveElement:
		setPrimitive(o, key, v)
	case interface{ ToJSON() *node.Object }:
		o.SetObject(key, v.ToJSON())
	}
}

func cloneChoice[C choice](c C) C {
	var zero C
	if any(c) == nil {
		return zero
	}
	return c.cloneChoice().(C)
}

// parseElement reads the id and extension members shared by all elements.
func parseElement(f node.Fields) (*string, []Extension) {
	var id *string
	if s, ok := f["id"].AsString(); ok {
		id = &s
	}
	return id, parseArray(f["extension"], ParseExtension)
}

func writeElement(o *node.Object, id *string, ext []Extension) {
	if id != nil {
		o.Set("id", *id)
	}
	o.SetArray("extension", toJSONArray(ext))
}

// elementObject is the "_name" companion of a primitive, or nil if empty.
func elementObject(id *string, ext []Extension) *node.Object {
	if id == nil && len(ext) == 0 {
		return nil
	}
	o := node.NewObject()
	writeElement(o, id, ext)
	return o
}

func setPrimitive(o *node.Object, key string, p primitiveElement) {
	v, elem := p.jsonParts()
	if v != nil {
		o.Set(key, v)
	}
	o.SetObject("_"+key, elem)
}

// setPrimitiveArray writes key and, if any item has an id or extensions, _key
// with null placeholders keeping both arrays aligned.
func setPrimitiveArray[T any, P interface {
	*T
	primitiveElement
}](o *node.Object, key string, items []T) {
	if len(items) == 0 {
		return
	}
	values := make(node.Array, len(items))
	elems := make(node.Array, len(items))
	hasElem := false
	for i := range items {
		v, elem := P(&items[i]).jsonParts()
		values[i] = v
		if elem != nil {
			elems[i] = elem
			hasElem = true
		}
	}
	o.Set(key, values)
	if hasElem {
		o.Set("_"+key, elems)
	}
}

// parseArray parses each item of an array, skipping items that do not parse.
func parseArray[T any](v node.Value, parse func(node.Value) *T) []T {
	items, ok := v.Array()
	if !ok {
		return nil
	}
	var out []T
	for _, item := range items {
		if p := parse(item); p != nil {
			out = array.Add(out, *p)
		}
	}
	return out
}

// parsePrimitiveArray pairs the items of key with those of _key.
func parsePrimitiveArray[T any](v, ext node.Value, parse func(v, ext node.Value) *T) []T {
	values, _ := v.Array()
	elems, _ := ext.Array()
	out, err := array.Make[T](max(len(values), len(elems)))
	if err != nil {
		return nil
	}
	count := 0
	for i := range out {
		var iv, ie node.Value
		if i < len(values) {
			iv = values[i]
		}
		if i < len(elems) {
			ie = elems[i]
		}
		if p := parse(iv, ie); p != nil {
			out[count] = *p
			count++
		}
	}
	if count < len(out) {
		out, _ = array.Resize(out, count)
	}
	return out
}

func toJSONArray[T any, P interface {
	*T
	ToJSON() *node.Object
}](items []T) node.Array {
	if len(items) == 0 {
		return nil
	}
	out := make(node.Array, 0, len(items))
	for i := range items {
		if o := P(&items[i]).ToJSON(); o != nil {
			out = append(out, o)
		}
	}
	return out
}

func cloneAll[T any, P interface {
	*T
	Clone() *T
}](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i := range items {
		out[i] = *P(&items[i]).Clone()
	}
	return out
}

func cloneString(s *string) *string {
	return strutil.Dup(s)
}
