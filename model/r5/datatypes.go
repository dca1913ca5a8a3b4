package r5

import (
	"strings"

	"github.com/fastfhir/fhir-r5-go/model/node"
	"github.com/fastfhir/fhir-r5-go/utils/ptr"
	"github.com/fastfhir/fhir-r5-go/utils/strutil"
)

func primitiveField[T any](f node.Fields, key string, parse func(v, ext node.Value) *T) *T {
	return parse(f[key], f["_"+key])
}

func primitiveArray[T any](f node.Fields, key string, parse func(v, ext node.Value) *T) []T {
	return parsePrimitiveArray(f[key], f["_"+key], parse)
}

// Coding is a reference to a code defined by a terminology system.
type Coding struct {
	Id           *string
	Extension    []Extension
	System       *Uri
	Version      *String
	Code         *Code
	Display      *String
	UserSelected *Boolean
}

func ParseCoding(v node.Value) *Coding {
	f, ok := v.Object()
	if !ok {
		return nil
	}
	c := &Coding{}
	c.Id, c.Extension = parseElement(f)
	c.System = primitiveField(f, "system", ParseUri)
	c.Version = primitiveField(f, "version", ParseString)
	c.Code = primitiveField(f, "code", ParseCode)
	c.Display = primitiveField(f, "display", ParseString)
	c.UserSelected = primitiveField(f, "userSelected", ParseBoolean)
	return c
}

func (c *Coding) ToJSON() *node.Object {
	if c == nil {
		return nil
	}
	o := node.NewObject()
	writeElement(o, c.Id, c.Extension)
	setPrimitive(o, "system", c.System)
	setPrimitive(o, "version", c.Version)
	setPrimitive(o, "code", c.Code)
	setPrimitive(o, "display", c.Display)
	setPrimitive(o, "userSelected", c.UserSelected)
	return o
}

func (c *Coding) Clone() *Coding {
	if c == nil {
		return nil
	}
	return &Coding{
		Id:           cloneString(c.Id),
		Extension:    cloneAll(c.Extension),
		System:       c.System.Clone(),
		Version:      c.Version.Clone(),
		Code:         c.Code.Clone(),
		Display:      c.Display.Clone(),
		UserSelected: c.UserSelected.Clone(),
	}
}

// CodeableConcept is a concept that may be defined by one or more codes
// from formal terminologies, or by text.
type CodeableConcept struct {
	Id        *string
	Extension []Extension
	Coding    []Coding
	Text      *String
}

func ParseCodeableConcept(v node.Value) *CodeableConcept {
	f, ok := v.Object()
	if !ok {
		return nil
	}
	c := &CodeableConcept{}
	c.Id, c.Extension = parseElement(f)
	c.Coding = parseArray(f["coding"], ParseCoding)
	c.Text = primitiveField(f, "text", ParseString)
	return c
}

func (c *CodeableConcept) ToJSON() *node.Object {
	if c == nil {
		return nil
	}
	o := node.NewObject()
	writeElement(o, c.Id, c.Extension)
	o.SetArray("coding", toJSONArray(c.Coding))
	setPrimitive(o, "text", c.Text)
	return o
}

func (c *CodeableConcept) Clone() *CodeableConcept {
	if c == nil {
		return nil
	}
	return &CodeableConcept{
		Id:        cloneString(c.Id),
		Extension: cloneAll(c.Extension),
		Coding:    cloneAll(c.Coding),
		Text:      c.Text.Clone(),
	}
}

// HasCode reports whether any coding matches system and code.
func (c *CodeableConcept) HasCode(system, code string) bool {
	if c == nil {
		return false
	}
	for _, cd := range c.Coding {
		if cd.System.Get() == system && cd.Code.Get() == code {
			return true
		}
	}
	return false
}

// CodeableReference is a reference to a resource or a concept.
type CodeableReference struct {
	Id        *string
	Extension []Extension
	Concept   *CodeableConcept
	Reference *Reference
}

func ParseCodeableReference(v node.Value) *CodeableReference {
	f, ok := v.Object()
	if !ok {
		return nil
	}
	c := &CodeableReference{}
	c.Id, c.Extension = parseElement(f)
	c.Concept = ParseCodeableConcept(f["concept"])
	c.Reference = ParseReference(f["reference"])
	return c
}

func (c *CodeableReference) ToJSON() *node.Object {
	if c == nil {
		return nil
	}
	o := node.NewObject()
	writeElement(o, c.Id, c.Extension)
	o.SetObject("concept", c.Concept.ToJSON())
	o.SetObject("reference", c.Reference.ToJSON())
	return o
}

func (c *CodeableReference) Clone() *CodeableReference {
	if c == nil {
		return nil
	}
	return &CodeableReference{
		Id:        cloneString(c.Id),
		Extension: cloneAll(c.Extension),
		Concept:   c.Concept.Clone(),
		Reference: c.Reference.Clone(),
	}
}

// Quantity is a measured amount.
type Quantity struct {
	Id         *string
	Extension  []Extension
	Value      *Decimal
	Comparator *Code
	Unit       *String
	System     *Uri
	Code       *Code
}

func ParseQuantity(v node.Value) *Quantity {
	f, ok := v.Object()
	if !ok {
		return nil
	}
	q := &Quantity{}
	q.Id, q.Extension = parseElement(f)
	q.Value = primitiveField(f, "value", ParseDecimal)
	q.Comparator = primitiveField(f, "comparator", ParseCode)
	q.Unit = primitiveField(f, "unit", ParseString)
	q.System = primitiveField(f, "system", ParseUri)
	q.Code = primitiveField(f, "code", ParseCode)
	return q
}

func (q *Quantity) ToJSON() *node.Object {
	if q == nil {
		return nil
	}
	o := node.NewObject()
	writeElement(o, q.Id, q.Extension)
	setPrimitive(o, "value", q.Value)
	setPrimitive(o, "comparator", q.Comparator)
	setPrimitive(o, "unit", q.Unit)
	setPrimitive(o, "system", q.System)
	setPrimitive(o, "code", q.Code)
	return o
}

func (q *Quantity) Clone() *Quantity {
	if q == nil {
		return nil
	}
	return &Quantity{
		Id:         cloneString(q.Id),
		Extension:  cloneAll(q.Extension),
		Value:      q.Value.Clone(),
		Comparator: q.Comparator.Clone(),
		Unit:       q.Unit.Clone(),
		System:     q.System.Clone(),
		Code:       q.Code.Clone(),
	}
}

// Range is a set of ordered quantities between a low and a high limit.
type Range struct {
	Id        *string
	Extension []Extension
	Low       *Quantity
	High      *Quantity
}

func ParseRange(v node.Value) *Range {
	f, ok := v.Object()
	if !ok {
		return nil
	}
	r := &Range{}
	r.Id, r.Extension = parseElement(f)
	r.Low = ParseQuantity(f["low"])
	r.High = ParseQuantity(f["high"])
	return r
}

func (r *Range) ToJSON() *node.Object {
	if r == nil {
		return nil
	}
	o := node.NewObject()
	writeElement(o, r.Id, r.Extension)
	o.SetObject("low", r.Low.ToJSON())
	o.SetObject("high", r.High.ToJSON())
	return o
}

func (r *Range) Clone() *Range {
	if r == nil {
		return nil
	}
	return &Range{
		Id:        cloneString(r.Id),
		Extension: cloneAll(r.Extension),
		Low:       r.Low.Clone(),
		High:      r.High.Clone(),
	}
}

// Period is a time range defined by start and end date/time.
type Period struct {
	Id        *string
	Extension []Extension
	Start     *DateTime
	End       *DateTime
}

func ParsePeriod(v node.Value) *Period {
	f, ok := v.Object()
	if !ok {
		return nil
	}
	p := &Period{}
	p.Id, p.Extension = parseElement(f)
	p.Start = primitiveField(f, "start", ParseDateTime)
	p.End = primitiveField(f, "end", ParseDateTime)
	return p
}

func (p *Period) ToJSON() *node.Object {
	if p == nil {
		return nil
	}
	o := node.NewObject()
	writeElement(o, p.Id, p.Extension)
	setPrimitive(o, "start", p.Start)
	setPrimitive(o, "end", p.End)
	return o
}

func (p *Period) Clone() *Period {
	if p == nil {
		return nil
	}
	return &Period{
		Id:        cloneString(p.Id),
		Extension: cloneAll(p.Extension),
		Start:     p.Start.Clone(),
		End:       p.End.Clone(),
	}
}

// Valid reports whether start and end are well-formed.
func (p *Period) Valid() bool {
	return p == nil || (p.Start.Valid() && p.End.Valid())
}

// Identifier is a numeric or alphanumeric string associated with a single
// object or entity within a given system.
type Identifier struct {
	Id        *string
	Extension []Extension
	Use       *Code
	Type      *CodeableConcept
	System    *Uri
	Value     *String
	Period    *Period
	Assigner  *Reference
}

func ParseIdentifier(v node.Value) *Identifier {
	f, ok := v.Object()
	if !ok {
		return nil
	}
	i := &Identifier{}
	i.Id, i.Extension = parseElement(f)
	i.Use = primitiveField(f, "use", ParseCode)
	i.Type = ParseCodeableConcept(f["type"])
	i.System = primitiveField(f, "system", ParseUri)
	i.Value = primitiveField(f, "value", ParseString)
	i.Period = ParsePeriod(f["period"])
	i.Assigner = ParseReference(f["assigner"])
	return i
}

func (i *Identifier) ToJSON() *node.Object {
	if i == nil {
		return nil
	}
	o := node.NewObject()
	writeElement(o, i.Id, i.Extension)
	setPrimitive(o, "use", i.Use)
	o.SetObject("type", i.Type.ToJSON())
	setPrimitive(o, "system", i.System)
	setPrimitive(o, "value", i.Value)
	o.SetObject("period", i.Period.ToJSON())
	o.SetObject("assigner", i.Assigner.ToJSON())
	return o
}

func (i *Identifier) Clone() *Identifier {
	if i == nil {
		return nil
	}
	return &Identifier{
		Id:        cloneString(i.Id),
		Extension: cloneAll(i.Extension),
		Use:       i.Use.Clone(),
		Type:      i.Type.Clone(),
		System:    i.System.Clone(),
		Value:     i.Value.Clone(),
		Period:    i.Period.Clone(),
		Assigner:  i.Assigner.Clone(),
	}
}

// Reference is a reference from one resource to another.
type Reference struct {
	Id         *string
	Extension  []Extension
	Reference  *String
	Type       *Uri
	Identifier *Identifier
	Display    *String
}

// NewReference returns a literal reference such as "Patient/123".
func NewReference(ref string) *Reference {
	return &Reference{Reference: NewString(ref)}
}

func ParseReference(v node.Value) *Reference {
	f, ok := v.Object()
	if !ok {
		return nil
	}
	r := &Reference{}
	r.Id, r.Extension = parseElement(f)
	r.Reference = primitiveField(f, "reference", ParseString)
	r.Type = primitiveField(f, "type", ParseUri)
	r.Identifier = ParseIdentifier(f["identifier"])
	r.Display = primitiveField(f, "display", ParseString)
	return r
}

func (r *Reference) ToJSON() *node.Object {
	if r == nil {
		return nil
	}
	o := node.NewObject()
	writeElement(o, r.Id, r.Extension)
	setPrimitive(o, "reference", r.Reference)
	setPrimitive(o, "type", r.Type)
	o.SetObject("identifier", r.Identifier.ToJSON())
	setPrimitive(o, "display", r.Display)
	return o
}

func (r *Reference) Clone() *Reference {
	if r == nil {
		return nil
	}
	return &Reference{
		Id:         cloneString(r.Id),
		Extension:  cloneAll(r.Extension),
		Reference:  r.Reference.Clone(),
		Type:       r.Type.Clone(),
		Identifier: r.Identifier.Clone(),
		Display:    r.Display.Clone(),
	}
}

// IsSet reports whether r points at something: a literal reference, a
// logical identifier or at least a display text.
func (r *Reference) IsSet() bool {
	if r == nil {
		return false
	}
	return !strutil.IsEmpty(r.Reference.value()) || r.Identifier != nil || !strutil.IsEmpty(r.Display.value())
}

// HumanName is a name of a human with text, parts and usage information.
type HumanName struct {
	Id        *string
	Extension []Extension
	Use       *Code
	Text      *String
	Family    *String
	Given     []String
	Prefix    []String
	Suffix    []String
	Period    *Period
}

func ParseHumanName(v node.Value) *HumanName {
	f, ok := v.Object()
	if !ok {
		return nil
	}
	n := &HumanName{}
	n.Id, n.Extension = parseElement(f)
	n.Use = primitiveField(f, "use", ParseCode)
	n.Text = primitiveField(f, "text", ParseString)
	n.Family = primitiveField(f, "family", ParseString)
	n.Given = primitiveArray(f, "given", ParseString)
	n.Prefix = primitiveArray(f, "prefix", ParseString)
	n.Suffix = primitiveArray(f, "suffix", ParseString)
	n.Period = ParsePeriod(f["period"])
	return n
}

func (n *HumanName) ToJSON() *node.Object {
	if n == nil {
		return nil
	}
	o := node.NewObject()
	writeElement(o, n.Id, n.Extension)
	setPrimitive(o, "use", n.Use)
	setPrimitive(o, "text", n.Text)
	setPrimitive(o, "family", n.Family)
	setPrimitiveArray(o, "given", n.Given)
	setPrimitiveArray(o, "prefix", n.Prefix)
	setPrimitiveArray(o, "suffix", n.Suffix)
	o.SetObject("period", n.Period.ToJSON())
	return o
}

func (n *HumanName) Clone() *HumanName {
	if n == nil {
		return nil
	}
	return &HumanName{
		Id:        cloneString(n.Id),
		Extension: cloneAll(n.Extension),
		Use:       n.Use.Clone(),
		Text:      n.Text.Clone(),
		Family:    n.Family.Clone(),
		Given:     cloneAll(n.Given),
		Prefix:    cloneAll(n.Prefix),
		Suffix:    cloneAll(n.Suffix),
		Period:    n.Period.Clone(),
	}
}

// Display returns the text of the name, or given names followed by the family name.
func (n *HumanName) Display() string {
	if n == nil {
		return ""
	}
	if t := ptr.Deref(strutil.Trim(n.Text.value())); t != "" {
		return t
	}
	var parts []string
	for i := range n.Given {
		if g := ptr.Deref(strutil.Trim(n.Given[i].value())); g != "" {
			parts = append(parts, g)
		}
	}
	if fam := ptr.Deref(strutil.Trim(n.Family.value())); fam != "" {
		parts = append(parts, fam)
	}
	return strings.Join(parts, " ")
}

// ContactPoint holds details of a technology-mediated contact point.
type ContactPoint struct {
	Id        *string
	Extension []Extension
	System    *Code
	Value     *String
	Use       *Code
	Rank      *Integer
	Period    *Period
}

func ParseContactPoint(v node.Value) *ContactPoint {
	f, ok := v.Object()
	if !ok {
		return nil
	}
	c := &ContactPoint{}
	c.Id, c.Extension = parseElement(f)
	c.System = primitiveField(f, "system", ParseCode)
	c.Value = primitiveField(f, "value", ParseString)
	c.Use = primitiveField(f, "use", ParseCode)
	c.Rank = primitiveField(f, "rank", ParseInteger)
	c.Period = ParsePeriod(f["period"])
	return c
}

func (c *ContactPoint) ToJSON() *node.Object {
	if c == nil {
		return nil
	}
	o := node.NewObject()
	writeElement(o, c.Id, c.Extension)
	setPrimitive(o, "system", c.System)
	setPrimitive(o, "value", c.Value)
	setPrimitive(o, "use", c.Use)
	setPrimitive(o, "rank", c.Rank)
	o.SetObject("period", c.Period.ToJSON())
	return o
}

func (c *ContactPoint) Clone() *ContactPoint {
	if c == nil {
		return nil
	}
	return &ContactPoint{
		Id:        cloneString(c.Id),
		Extension: cloneAll(c.Extension),
		System:    c.System.Clone(),
		Value:     c.Value.Clone(),
		Use:       c.Use.Clone(),
		Rank:      c.Rank.Clone(),
		Period:    c.Period.Clone(),
	}
}

// Address is a postal address.
type Address struct {
	Id         *string
	Extension  []Extension
	Use        *Code
	Type       *Code
	Text       *String
	Line       []String
	City       *String
	District   *String
	State      *String
	PostalCode *String
	Country    *String
	Period     *Period
}

func ParseAddress(v node.Value) *Address {
	f, ok := v.Object()
	if !ok {
		return nil
	}
	a := &Address{}
	a.Id, a.Extension = parseElement(f)
	a.Use = primitiveField(f, "use", ParseCode)
	a.Type = primitiveField(f, "type", ParseCode)
	a.Text = primitiveField(f, "text", ParseString)
	a.Line = primitiveArray(f, "line", ParseString)
	a.City = primitiveField(f, "city", ParseString)
	a.District = primitiveField(f, "district", ParseString)
	a.State = primitiveField(f, "state", ParseString)
	a.PostalCode = primitiveField(f, "postalCode", ParseString)
	a.Country = primitiveField(f, "country", ParseString)
	a.Period = ParsePeriod(f["period"])
	return a
}

func (a *Address) ToJSON() *node.Object {
	if a == nil {
		return nil
	}
	o := node.NewObject()
	writeElement(o, a.Id, a.Extension)
	setPrimitive(o, "use", a.Use)
	setPrimitive(o, "type", a.Type)
	setPrimitive(o, "text", a.Text)
	setPrimitiveArray(o, "line", a.Line)
	setPrimitive(o, "city", a.City)
	setPrimitive(o, "district", a.District)
	setPrimitive(o, "state", a.State)
	setPrimitive(o, "postalCode", a.PostalCode)
	setPrimitive(o, "country", a.Country)
	o.SetObject("period", a.Period.ToJSON())
	return o
}

func (a *Address) Clone() *Address {
	if a == nil {
		return nil
	}
	return &Address{
		Id:         cloneString(a.Id),
		Extension:  cloneAll(a.Extension),
		Use:        a.Use.Clone(),
		Type:       a.Type.Clone(),
		Text:       a.Text.Clone(),
		Line:       cloneAll(a.Line),
		City:       a.City.Clone(),
		District:   a.District.Clone(),
		State:      a.State.Clone(),
		PostalCode: a.PostalCode.Clone(),
		Country:    a.Country.Clone(),
		Period:     a.Period.Clone(),
	}
}

// AnnotationAuthor is Reference or String.
type AnnotationAuthor interface {
	choice
	isAnnotationAuthor()
}

// Annotation is a text note which also contains information about who made
// the statement and when.
type Annotation struct {
	Id        *string
	Extension []Extension
	Author    AnnotationAuthor
	Time      *DateTime
	Text      Markdown
}

var annotationAuthorParsers []choiceParser[AnnotationAuthor]

func init() {
	annotationAuthorParsers = []choiceParser[AnnotationAuthor]{
		complexChoice[AnnotationAuthor]("Reference", ParseReference),
		primitiveChoice[AnnotationAuthor]("String", ParseString),
	}
}

func ParseAnnotation(v node.Value) *Annotation {
	f, ok := v.Object()
	if !ok {
		return nil
	}
	a := &Annotation{}
	a.Id, a.Extension = parseElement(f)
	a.Author = parseChoice(f, "author", annotationAuthorParsers)
	a.Time = primitiveField(f, "time", ParseDateTime)
	if t := primitiveField(f, "text", ParseMarkdown); t != nil {
		a.Text = *t
	}
	return a
}

func (a *Annotation) ToJSON() *node.Object {
	if a == nil {
		return nil
	}
	o := node.NewObject()
	writeElement(o, a.Id, a.Extension)
	setChoice(o, "author", a.Author)
	setPrimitive(o, "time", a.Time)
	setPrimitive(o, "text", &a.Text)
	return o
}

func (a *Annotation) Clone() *Annotation {
	if a == nil {
		return nil
	}
	return &Annotation{
		Id:        cloneString(a.Id),
		Extension: cloneAll(a.Extension),
		Author:    cloneChoice(a.Author),
		Time:      a.Time.Clone(),
		Text:      *a.Text.Clone(),
	}
}

func (r *Reference) isAnnotationAuthor() {}
func (p *String) isAnnotationAuthor()    {}

// Meta is metadata about a resource.
type Meta struct {
	Id          *string
	Extension   []Extension
	VersionId   *Id
	LastUpdated *Instant
	Source      *Uri
	Profile     []Uri
	Security    []Coding
	Tag         []Coding
}

func ParseMeta(v node.Value) *Meta {
	f, ok := v.Object()
	if !ok {
		return nil
	}
	m := &Meta{}
	m.Id, m.Extension = parseElement(f)
	m.VersionId = primitiveField(f, "versionId", ParseId)
	m.LastUpdated = primitiveField(f, "lastUpdated", ParseInstant)
	m.Source = primitiveField(f, "source", ParseUri)
	m.Profile = primitiveArray(f, "profile", ParseUri)
	m.Security = parseArray(f["security"], ParseCoding)
	m.Tag = parseArray(f["tag"], ParseCoding)
	return m
}

func (m *Meta) ToJSON() *node.Object {
	if m == nil {
		return nil
	}
	o := node.NewObject()
	writeElement(o, m.Id, m.Extension)
	setPrimitive(o, "versionId", m.VersionId)
	setPrimitive(o, "lastUpdated", m.LastUpdated)
	setPrimitive(o, "source", m.Source)
	setPrimitiveArray(o, "profile", m.Profile)
	o.SetArray("security", toJSONArray(m.Security))
	o.SetArray("tag", toJSONArray(m.Tag))
	return o
}

func (m *Meta) Clone() *Meta {
	if m == nil {
		return nil
	}
	return &Meta{
		Id:          cloneString(m.Id),
		Extension:   cloneAll(m.Extension),
		VersionId:   m.VersionId.Clone(),
		LastUpdated: m.LastUpdated.Clone(),
		Source:      m.Source.Clone(),
		Profile:     cloneAll(m.Profile),
		Security:    cloneAll(m.Security),
		Tag:         cloneAll(m.Tag),
	}
}

// Narrative is a human-readable summary of the resource.
type Narrative struct {
	Id        *string
	Extension []Extension
	Status    Code
	// Div is limited XHTML content.
	Div string
}

func ParseNarrative(v node.Value) *Narrative {
	f, ok := v.Object()
	if !ok {
		return nil
	}
	n := &Narrative{}
	n.Id, n.Extension = parseElement(f)
	if s := primitiveField(f, "status", ParseCode); s != nil {
		n.Status = *s
	}
	n.Div, _ = f["div"].AsString()
	return n
}

func (n *Narrative) ToJSON() *node.Object {
	if n == nil {
		return nil
	}
	o := node.NewObject()
	writeElement(o, n.Id, n.Extension)
	setPrimitive(o, "status", &n.Status)
	if n.Div != "" {
		o.Set("div", n.Div)
	}
	return o
}

func (n *Narrative) Clone() *Narrative {
	if n == nil {
		return nil
	}
	return &Narrative{
		Id:        cloneString(n.Id),
		Extension: cloneAll(n.Extension),
		Status:    *n.Status.Clone(),
		Div:       n.Div,
	}
}

func (c *Coding) choiceSuffix() string          { return "Coding" }
func (c *Coding) cloneChoice() choice           { return c.Clone() }
func (c *Coding) isExtensionValue()             {}
func (c *CodeableConcept) choiceSuffix() string { return "CodeableConcept" }
func (c *CodeableConcept) cloneChoice() choice  { return c.Clone() }
func (c *CodeableConcept) isExtensionValue()    {}
func (q *Quantity) choiceSuffix() string        { return "Quantity" }
func (q *Quantity) cloneChoice() choice         { return q.Clone() }
func (q *Quantity) isExtensionValue()           {}
func (r *Range) choiceSuffix() string           { return "Range" }
func (r *Range) cloneChoice() choice            { return r.Clone() }
func (r *Range) isExtensionValue()              {}
func (p *Period) choiceSuffix() string          { return "Period" }
func (p *Period) cloneChoice() choice           { return p.Clone() }
func (p *Period) isExtensionValue()             {}
func (i *Identifier) choiceSuffix() string      { return "Identifier" }
func (i *Identifier) cloneChoice() choice       { return i.Clone() }
func (i *Identifier) isExtensionValue()         {}
func (r *Reference) choiceSuffix() string       { return "Reference" }
func (r *Reference) cloneChoice() choice        { return r.Clone() }
func (r *Reference) isExtensionValue()          {}

// ExtendedContactDetail holds contact information, including the purpose
// and the organization it applies to.
type ExtendedContactDetail struct {
	Id           *string
	Extension    []Extension
	Purpose      *CodeableConcept
	Name         []HumanName
	Telecom      []ContactPoint
	Address      *Address
	Organization *Reference
	Period       *Period
}

func ParseExtendedContactDetail(v node.Value) *ExtendedContactDetail {
	f, ok := v.Object()
	if !ok {
		return nil
	}
	c := &ExtendedContactDetail{}
	c.Id, c.Extension = parseElement(f)
	c.Purpose = ParseCodeableConcept(f["purpose"])
	c.Name = parseArray(f["name"], ParseHumanName)
	c.Telecom = parseArray(f["telecom"], ParseContactPoint)
	c.Address = ParseAddress(f["address"])
	c.Organization = ParseReference(f["organization"])
	c.Period = ParsePeriod(f["period"])
	return c
}

func (c *ExtendedContactDetail) ToJSON() *node.Object {
	if c == nil {
		return nil
	}
	o := node.NewObject()
	writeElement(o, c.Id, c.Extension)
	o.SetObject("purpose", c.Purpose.ToJSON())
	o.SetArray("name", toJSONArray(c.Name))
	o.SetArray("telecom", toJSONArray(c.Telecom))
	o.SetObject("address", c.Address.ToJSON())
	o.SetObject("organization", c.Organization.ToJSON())
	o.SetObject("period", c.Period.ToJSON())
	return o
}

func (c *ExtendedContactDetail) Clone() *ExtendedContactDetail {
	if c == nil {
		return nil
	}
	return &ExtendedContactDetail{
		Id:           cloneString(c.Id),
		Extension:    cloneAll(c.Extension),
		Purpose:      c.Purpose.Clone(),
		Name:         cloneAll(c.Name),
		Telecom:      cloneAll(c.Telecom),
		Address:      c.Address.Clone(),
		Organization: c.Organization.Clone(),
		Period:       c.Period.Clone(),
	}
}
