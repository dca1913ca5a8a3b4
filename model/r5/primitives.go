package r5

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"

	"github.com/fastfhir/fhir-r5-go/model/node"
	"github.com/fastfhir/fhir-r5-go/model/primitive"
	"github.com/fastfhir/fhir-r5-go/utils/ptr"
)

// parsePrimitive reads the element part of a primitive from ext and the
// value from v using read. It fails if v has the wrong shape or if neither
// a value nor an element part is present.
func parsePrimitive(v, ext node.Value, read func(node.Value) bool) (*string, []Extension, bool) {
	hasValue := v.Exists() && !v.IsNull()
	if hasValue && !read(v) {
		return nil, nil, false
	}
	var (
		id   *string
		exts []Extension
	)
	if f, ok := ext.Object(); ok {
		id, exts = parseElement(f)
	}
	if !hasValue && id == nil && len(exts) == 0 {
		return nil, nil, false
	}
	return id, exts, true
}

// Boolean is a value of "true" or "false".
type Boolean struct {
	Id        *string
	Extension []Extension
	Value     *bool
}

// NewBoolean returns a Boolean holding b.
func NewBoolean(b bool) *Boolean {
	return &Boolean{Value: &b}
}

// ParseBoolean returns nil if v is not a JSON boolean.
func ParseBoolean(v, ext node.Value) *Boolean {
	p := &Boolean{}
	id, exts, ok := parsePrimitive(v, ext, func(v node.Value) bool {
		b, ok := v.AsBool()
		if ok {
			p.Value = &b
		}
		return ok
	})
	if !ok {
		return nil
	}
	p.Id, p.Extension = id, exts
	return p
}

// ToJSON returns the JSON value, or nil.
func (p *Boolean) ToJSON() any {
	if p == nil || p.Value == nil {
		return nil
	}
	return *p.Value
}

func (p *Boolean) jsonParts() (any, *node.Object) {
	if p == nil {
		return nil, nil
	}
	return p.ToJSON(), elementObject(p.Id, p.Extension)
}

func (p *Boolean) Clone() *Boolean {
	if p == nil {
		return nil
	}
	c := &Boolean{Id: cloneString(p.Id), Extension: cloneAll(p.Extension)}
	if p.Value != nil {
		b := *p.Value
		c.Value = &b
	}
	return c
}

// True reports whether p holds true.
func (p *Boolean) True() bool {
	return p != nil && p.Value != nil && *p.Value
}

// Integer is a signed 32-bit integer.
type Integer struct {
	Id        *string
	Extension []Extension
	Value     *int32
}

// NewInteger returns an Integer holding i.
func NewInteger(i int32) *Integer {
	return &Integer{Value: &i}
}

// ParseInteger returns nil if v is not a JSON number in the int32 range.
func ParseInteger(v, ext node.Value) *Integer {
	p := &Integer{}
	id, exts, ok := parsePrimitive(v, ext, func(v node.Value) bool {
		i, ok := v.AsInt()
		if !ok || int64(int32(i)) != i {
			return false
		}
		i32 := int32(i)
		p.Value = &i32
		return true
	})
	if !ok {
		return nil
	}
	p.Id, p.Extension = id, exts
	return p
}

// ToJSON returns the JSON value, or nil.
func (p *Integer) ToJSON() any {
	if p == nil || p.Value == nil {
		return nil
	}
	return node.Number(strconv.FormatInt(int64(*p.Value), 10))
}

func (p *Integer) jsonParts() (any, *node.Object) {
	if p == nil {
		return nil, nil
	}
	return p.ToJSON(), elementObject(p.Id, p.Extension)
}

func (p *Integer) Clone() *Integer {
	if p == nil {
		return nil
	}
	c := &Integer{Id: cloneString(p.Id), Extension: cloneAll(p.Extension)}
	if p.Value != nil {
		i := *p.Value
		c.Value = &i
	}
	return c
}

// Decimal is a rational number with implicit precision.
// The textual precision of the value is preserved.
type Decimal struct {
	Id        *string
	Extension []Extension
	Value     *apd.Decimal
}

// NewDecimal parses s into a Decimal.
func NewDecimal(s string) (*Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &Decimal{Value: d}, nil
}

// ParseDecimal returns nil if v is not a JSON number.
func ParseDecimal(v, ext node.Value) *Decimal {
	p := &Decimal{}
	id, exts, ok := parsePrimitive(v, ext, func(v node.Value) bool {
		text, ok := v.AsNumber()
		if !ok {
			return false
		}
		d, _, err := apd.NewFromString(text)
		if err != nil {
			return false
		}
		p.Value = d
		return true
	})
	if !ok {
		return nil
	}
	p.Id, p.Extension = id, exts
	return p
}

// ToJSON returns the JSON value, or nil.
func (p *Decimal) ToJSON() any {
	if p == nil || p.Value == nil {
		return nil
	}
	return node.Number(p.Value.Text('G'))
}

func (p *Decimal) jsonParts() (any, *node.Object) {
	if p == nil {
		return nil, nil
	}
	return p.ToJSON(), elementObject(p.Id, p.Extension)
}

func (p *Decimal) Clone() *Decimal {
	if p == nil {
		return nil
	}
	c := &Decimal{Id: cloneString(p.Id), Extension: cloneAll(p.Extension)}
	if p.Value != nil {
		c.Value = new(apd.Decimal).Set(p.Value)
	}
	return c
}

// String is a sequence of Unicode characters.
type String struct {
	Id        *string
	Extension []Extension
	Value     *string
}

// NewString returns a String holding a copy of s.
func NewString(s string) *String {
	return &String{Value: ptr.To(s)}
}

// ParseString returns nil if v is not a JSON string.
func ParseString(v, ext node.Value) *String {
	p := &String{}
	id, exts, ok := parsePrimitive(v, ext, func(v node.Value) bool {
		s, ok := v.AsString()
		if ok {
			p.Value = &s
		}
		return ok
	})
	if !ok {
		return nil
	}
	p.Id, p.Extension = id, exts
	return p
}

// ToJSON returns the JSON value, or nil.
func (p *String) ToJSON() any {
	if p == nil || p.Value == nil {
		return nil
	}
	return *p.Value
}

func (p *String) jsonParts() (any, *node.Object) {
	if p == nil {
		return nil, nil
	}
	return p.ToJSON(), elementObject(p.Id, p.Extension)
}

func (p *String) Clone() *String {
	if p == nil {
		return nil
	}
	return &String{
		Id:        cloneString(p.Id),
		Extension: cloneAll(p.Extension),
		Value:     cloneString(p.Value),
	}
}

// Get returns the value, or "" if unset.
func (p *String) Get() string {
	return ptr.Deref(p.value())
}

func (p *String) value() *string {
	if p == nil {
		return nil
	}
	return p.Value
}

// Uri is a string of characters used to identify a name or a resource.
type Uri struct {
	Id        *string
	Extension []Extension
	Value     *string
}

// NewUri returns an Uri holding a copy of s.
func NewUri(s string) *Uri {
	return &Uri{Value: &s}
}

// ParseUri returns nil if v is not a JSON string.
func ParseUri(v, ext node.Value) *Uri {
	return (*Uri)(ParseString(v, ext))
}

// ToJSON returns the JSON value, or nil.
func (p *Uri) ToJSON() any {
	return (*String)(p).ToJSON()
}

func (p *Uri) jsonParts() (any, *node.Object) {
	return (*String)(p).jsonParts()
}

func (p *Uri) Clone() *Uri {
	return (*Uri)((*String)(p).Clone())
}

// Get returns the value, or "" if unset.
func (p *Uri) Get() string {
	return (*String)(p).Get()
}

// Valid reports whether an unset value or a value of the right format is held.
func (p *Uri) Valid() bool {
	return p == nil || p.Value == nil || primitive.ValidateURI(*p.Value)
}

// Url is a URI that is a literal reference.
type Url struct {
	Id        *string
	Extension []Extension
	Value     *string
}

// NewUrl returns an Url holding a copy of s.
func NewUrl(s string) *Url {
	return &Url{Value: &s}
}

// ParseUrl returns nil if v is not a JSON string.
func ParseUrl(v, ext node.Value) *Url {
	return (*Url)(ParseString(v, ext))
}

// ToJSON returns the JSON value, or nil.
func (p *Url) ToJSON() any {
	return (*String)(p).ToJSON()
}

func (p *Url) jsonParts() (any, *node.Object) {
	return (*String)(p).jsonParts()
}

func (p *Url) Clone() *Url {
	return (*Url)((*String)(p).Clone())
}

// Get returns the value, or "" if unset.
func (p *Url) Get() string {
	return (*String)(p).Get()
}

// Valid reports whether an unset value or a value of the right format is held.
func (p *Url) Valid() bool {
	return p == nil || p.Value == nil || primitive.ValidateURL(*p.Value)
}

// Code is a token from a code system: at least one character, no whitespace.
type Code struct {
	Id        *string
	Extension []Extension
	Value     *string
}

// NewCode returns a Code holding a copy of s.
func NewCode(s string) *Code {
	return &Code{Value: &s}
}

// ParseCode returns nil if v is not a JSON string.
func ParseCode(v, ext node.Value) *Code {
	return (*Code)(ParseString(v, ext))
}

// ToJSON returns the JSON value, or nil.
func (p *Code) ToJSON() any {
	return (*String)(p).ToJSON()
}

func (p *Code) jsonParts() (any, *node.Object) {
	return (*String)(p).jsonParts()
}

func (p *Code) Clone() *Code {
	return (*Code)((*String)(p).Clone())
}

// Get returns the value, or "" if unset.
func (p *Code) Get() string {
	return (*String)(p).Get()
}

// Valid reports whether an unset value or a value of the right format is held.
func (p *Code) Valid() bool {
	return p == nil || p.Value == nil || primitive.ValidateCode(*p.Value)
}

// Id is any combination of letters, numerals, "-" and ".", at most 64 characters.
type Id struct {
	Id        *string
	Extension []Extension
	Value     *string
}

// NewId returns an Id holding a copy of s.
func NewId(s string) *Id {
	return &Id{Value: &s}
}

// ParseId returns nil if v is not a JSON string.
func ParseId(v, ext node.Value) *Id {
	return (*Id)(ParseString(v, ext))
}

// ToJSON returns the JSON value, or nil.
func (p *Id) ToJSON() any {
	return (*String)(p).ToJSON()
}

func (p *Id) jsonParts() (any, *node.Object) {
	return (*String)(p).jsonParts()
}

func (p *Id) Clone() *Id {
	return (*Id)((*String)(p).Clone())
}

// Get returns the value, or "" if unset.
func (p *Id) Get() string {
	return (*String)(p).Get()
}

// Valid reports whether an unset value or a value of the right format is held.
func (p *Id) Valid() bool {
	return p == nil || p.Value == nil || primitive.ValidateID(*p.Value)
}

// Date is a date or partial date (e.g. just year or year + month).
type Date struct {
	Id        *string
	Extension []Extension
	Value     *string
}

// NewDate returns a Date holding a copy of s.
func NewDate(s string) *Date {
	return &Date{Value: &s}
}

// ParseDate returns nil if v is not a JSON string.
func ParseDate(v, ext node.Value) *Date {
	return (*Date)(ParseString(v, ext))
}

// ToJSON returns the JSON value, or nil.
func (p *Date) ToJSON() any {
	return (*String)(p).ToJSON()
}

func (p *Date) jsonParts() (any, *node.Object) {
	return (*String)(p).jsonParts()
}

func (p *Date) Clone() *Date {
	return (*Date)((*String)(p).Clone())
}

// Get returns the value, or "" if unset.
func (p *Date) Get() string {
	return (*String)(p).Get()
}

// Valid reports whether an unset value or a value of the right format is held.
func (p *Date) Valid() bool {
	return p == nil || p.Value == nil || primitive.ValidateDate(*p.Value)
}

// DateTime is a date, date-time or partial date.
type DateTime struct {
	Id        *string
	Extension []Extension
	Value     *string
}

// NewDateTime returns a DateTime holding a copy of s.
func NewDateTime(s string) *DateTime {
	return &DateTime{Value: &s}
}

// ParseDateTime returns nil if v is not a JSON string.
func ParseDateTime(v, ext node.Value) *DateTime {
	return (*DateTime)(ParseString(v, ext))
}

// ToJSON returns the JSON value, or nil.
func (p *DateTime) ToJSON() any {
	return (*String)(p).ToJSON()
}

func (p *DateTime) jsonParts() (any, *node.Object) {
	return (*String)(p).jsonParts()
}

func (p *DateTime) Clone() *DateTime {
	return (*DateTime)((*String)(p).Clone())
}

// Get returns the value, or "" if unset.
func (p *DateTime) Get() string {
	return (*String)(p).Get()
}

// Valid reports whether an unset value or a value of the right format is held.
func (p *DateTime) Valid() bool {
	return p == nil || p.Value == nil || primitive.ValidateDateTime(*p.Value)
}

// Instant is a point in time, known at least to the second, with a timezone.
type Instant struct {
	Id        *string
	Extension []Extension
	Value     *string
}

// NewInstant returns an Instant holding a copy of s.
func NewInstant(s string) *Instant {
	return &Instant{Value: &s}
}

// ParseInstant returns nil if v is not a JSON string.
func ParseInstant(v, ext node.Value) *Instant {
	return (*Instant)(ParseString(v, ext))
}

// ToJSON returns the JSON value, or nil.
func (p *Instant) ToJSON() any {
	return (*String)(p).ToJSON()
}

func (p *Instant) jsonParts() (any, *node.Object) {
	return (*String)(p).jsonParts()
}

func (p *Instant) Clone() *Instant {
	return (*Instant)((*String)(p).Clone())
}

// Get returns the value, or "" if unset.
func (p *Instant) Get() string {
	return (*String)(p).Get()
}

// Valid reports whether an unset value or a value of the right format is held.
func (p *Instant) Valid() bool {
	return p == nil || p.Value == nil || primitive.ValidateInstant(*p.Value)
}

// Time is a time during the day, with no date specified.
type Time struct {
	Id        *string
	Extension []Extension
	Value     *string
}

// NewTime returns a Time holding a copy of s.
func NewTime(s string) *Time {
	return &Time{Value: &s}
}

// ParseTime returns nil if v is not a JSON string.
func ParseTime(v, ext node.Value) *Time {
	return (*Time)(ParseString(v, ext))
}

// ToJSON returns the JSON value, or nil.
func (p *Time) ToJSON() any {
	return (*String)(p).ToJSON()
}

func (p *Time) jsonParts() (any, *node.Object) {
	return (*String)(p).jsonParts()
}

func (p *Time) Clone() *Time {
	return (*Time)((*String)(p).Clone())
}

// Get returns the value, or "" if unset.
func (p *Time) Get() string {
	return (*String)(p).Get()
}

// Valid reports whether an unset value or a value of the right format is held.
func (p *Time) Valid() bool {
	return p == nil || p.Value == nil || primitive.ValidateTime(*p.Value)
}

// Markdown is a string that may contain GitHub Flavored Markdown syntax.
type Markdown struct {
	Id        *string
	Extension []Extension
	Value     *string
}

// NewMarkdown returns a Markdown holding a copy of s.
func NewMarkdown(s string) *Markdown {
	return &Markdown{Value: &s}
}

// ParseMarkdown returns nil if v is not a JSON string.
func ParseMarkdown(v, ext node.Value) *Markdown {
	return (*Markdown)(ParseString(v, ext))
}

// ToJSON returns the JSON value, or nil.
func (p *Markdown) ToJSON() any {
	return (*String)(p).ToJSON()
}

func (p *Markdown) jsonParts() (any, *node.Object) {
	return (*String)(p).jsonParts()
}

func (p *Markdown) Clone() *Markdown {
	return (*Markdown)((*String)(p).Clone())
}

// Get returns the value, or "" if unset.
func (p *Markdown) Get() string {
	return (*String)(p).Get()
}

func (p *Boolean) choiceSuffix() string  { return "Boolean" }
func (p *Boolean) cloneChoice() choice   { return p.Clone() }
func (p *Boolean) isExtensionValue()     {}
func (p *Integer) choiceSuffix() string  { return "Integer" }
func (p *Integer) cloneChoice() choice   { return p.Clone() }
func (p *Integer) isExtensionValue()     {}
func (p *Decimal) choiceSuffix() string  { return "Decimal" }
func (p *Decimal) cloneChoice() choice   { return p.Clone() }
func (p *Decimal) isExtensionValue()     {}
func (p *String) choiceSuffix() string   { return "String" }
func (p *String) cloneChoice() choice    { return p.Clone() }
func (p *String) isExtensionValue()      {}
func (p *Uri) choiceSuffix() string      { return "Uri" }
func (p *Uri) cloneChoice() choice       { return p.Clone() }
func (p *Uri) isExtensionValue()         {}
func (p *Url) choiceSuffix() string      { return "Url" }
func (p *Url) cloneChoice() choice       { return p.Clone() }
func (p *Url) isExtensionValue()         {}
func (p *Code) choiceSuffix() string     { return "Code" }
func (p *Code) cloneChoice() choice      { return p.Clone() }
func (p *Code) isExtensionValue()        {}
func (p *Id) choiceSuffix() string       { return "Id" }
func (p *Id) cloneChoice() choice        { return p.Clone() }
func (p *Id) isExtensionValue()          {}
func (p *Date) choiceSuffix() string     { return "Date" }
func (p *Date) cloneChoice() choice      { return p.Clone() }
func (p *Date) isExtensionValue()        {}
func (p *DateTime) choiceSuffix() string { return "DateTime" }
func (p *DateTime) cloneChoice() choice  { return p.Clone() }
func (p *DateTime) isExtensionValue()    {}
func (p *Instant) choiceSuffix() string  { return "Instant" }
func (p *Instant) cloneChoice() choice   { return p.Clone() }
func (p *Instant) isExtensionValue()     {}
func (p *Time) choiceSuffix() string     { return "Time" }
func (p *Time) cloneChoice() choice      { return p.Clone() }
func (p *Time) isExtensionValue()        {}
func (p *Markdown) choiceSuffix() string { return "Markdown" }
func (p *Markdown) cloneChoice() choice  { return p.Clone() }
func (p *Markdown) isExtensionValue()    {}
