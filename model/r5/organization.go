package r5

import (
	"github.com/fastfhir/fhir-r5-go/model"
	"github.com/fastfhir/fhir-r5-go/model/node"
)

// Organization is a formally or informally recognized grouping of people or
// organizations formed for the purpose of achieving some form of collective
// action.
type Organization struct {
	model.Base
	DomainResource
	Identifier  []Identifier
	Active      *Boolean
	Type        []CodeableConcept
	Name        *String
	Alias       []String
	Description *Markdown
	Contact     []ExtendedContactDetail
	PartOf      *Reference
	Endpoint    []Reference
}

func init() {
	register(model.TypeOrganization, NewOrganization, ParseOrganization)
}

func NewOrganization(id string) (*Organization, error) {
	o := &Organization{}
	if err := o.Init(model.TypeOrganization, id); err != nil {
		return nil, err
	}
	return o, nil
}

func ParseOrganization(v node.Value) (*Organization, error) {
	f, id, err := parseHeader(v, model.TypeOrganization)
	if err != nil {
		return nil, err
	}
	o, err := NewOrganization(id)
	if err != nil {
		return nil, err
	}
	o.parseDomainResource(f)
	o.Identifier = parseArray(f["identifier"], ParseIdentifier)
	o.Active = primitiveField(f, "active", ParseBoolean)
	o.Type = parseArray(f["type"], ParseCodeableConcept)
	o.Name = primitiveField(f, "name", ParseString)
	o.Alias = primitiveArray(f, "alias", ParseString)
	o.Description = primitiveField(f, "description", ParseMarkdown)
	o.Contact = parseArray(f["contact"], ParseExtendedContactDetail)
	o.PartOf = ParseReference(f["partOf"])
	o.Endpoint = parseArray(f["endpoint"], ParseReference)
	return o, nil
}

func (o *Organization) UnmarshalJSON(data []byte) error {
	return unmarshal(data, o, ParseOrganization)
}

func (o *Organization) ToJSON() *node.Object {
	out := o.JSONObject()
	o.writeDomainResource(out)
	out.SetArray("identifier", toJSONArray(o.Identifier))
	setPrimitive(out, "active", o.Active)
	out.SetArray("type", toJSONArray(o.Type))
	setPrimitive(out, "name", o.Name)
	setPrimitiveArray(out, "alias", o.Alias)
	setPrimitive(out, "description", o.Description)
	out.SetArray("contact", toJSONArray(o.Contact))
	out.SetObject("partOf", o.PartOf.ToJSON())
	out.SetArray("endpoint", toJSONArray(o.Endpoint))
	return out
}

// Validate requires a name or an identifier.
func (o *Organization) Validate() error {
	if err := o.Base.Validate(); err != nil {
		return err
	}
	if err := o.validateDomainResource(); err != nil {
		return err
	}
	if o.Name.Get() == "" && len(o.Identifier) == 0 {
		return model.NewError(model.KindValidationFailed, "name", "Organization needs a name or an identifier")
	}
	return nil
}

func (o *Organization) DisplayName() string {
	if s := o.Name.Get(); s != "" {
		return s
	}
	return o.Base.DisplayName()
}

func (o *Organization) Clone() model.Resource {
	return &Organization{
		Base:           o.CloneBase(),
		DomainResource: o.cloneDomainResource(),
		Identifier:     cloneAll(o.Identifier),
		Active:         o.Active.Clone(),
		Type:           cloneAll(o.Type),
		Name:           o.Name.Clone(),
		Alias:          cloneAll(o.Alias),
		Description:    o.Description.Clone(),
		Contact:        cloneAll(o.Contact),
		PartOf:         o.PartOf.Clone(),
		Endpoint:       cloneAll(o.Endpoint),
	}
}

func (o *Organization) Destroy() {
	*o = Organization{Base: o.Base}
}

// IsActive reports the active flag; unset counts as active.
func (o *Organization) IsActive() bool {
	return o.Active == nil || o.Active.Value == nil || *o.Active.Value
}
