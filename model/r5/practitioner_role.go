package r5

import (
	"github.com/fastfhir/fhir-r5-go/model"
	"github.com/fastfhir/fhir-r5-go/model/node"
)

// PractitionerRole is a specific set of roles, locations, specialties and
// services that a practitioner may perform at an organization for a period
// of time.
type PractitionerRole struct {
	model.Base
	DomainResource
	Identifier []Identifier
	// Defaults to true for new roles.
	Active            *Boolean
	Period            *Period
	Practitioner      *Reference
	Organization      *Reference
	Code              []CodeableConcept
	Specialty         []CodeableConcept
	Location          []Reference
	HealthcareService []Reference
	Characteristic    []CodeableConcept
	Communication     []CodeableConcept
	Endpoint          []Reference
}

func init() {
	register(model.TypePractitionerRole, NewPractitionerRole, ParsePractitionerRole)
}

// NewPractitionerRole returns an active PractitionerRole with the given id.
func NewPractitionerRole(id string) (*PractitionerRole, error) {
	r := &PractitionerRole{Active: NewBoolean(true)}
	if err := r.Init(model.TypePractitionerRole, id); err != nil {
		return nil, err
	}
	return r, nil
}

func ParsePractitionerRole(v node.Value) (*PractitionerRole, error) {
	f, id, err := parseHeader(v, model.TypePractitionerRole)
	if err != nil {
		return nil, err
	}
	r, err := NewPractitionerRole(id)
	if err != nil {
		return nil, err
	}
	r.parseDomainResource(f)
	r.Identifier = parseArray(f["identifier"], ParseIdentifier)
	if a := primitiveField(f, "active", ParseBoolean); a != nil {
		r.Active = a
	}
	r.Period = ParsePeriod(f["period"])
	r.Practitioner = ParseReference(f["practitioner"])
	r.Organization = ParseReference(f["organization"])
	r.Code = parseArray(f["code"], ParseCodeableConcept)
	r.Specialty = parseArray(f["specialty"], ParseCodeableConcept)
	r.Location = parseArray(f["location"], ParseReference)
	r.HealthcareService = parseArray(f["healthcareService"], ParseReference)
	r.Characteristic = parseArray(f["characteristic"], ParseCodeableConcept)
	r.Communication = parseArray(f["communication"], ParseCodeableConcept)
	r.Endpoint = parseArray(f["endpoint"], ParseReference)
	return r, nil
}

func (r *PractitionerRole) UnmarshalJSON(data []byte) error {
	return unmarshal(data, r, ParsePractitionerRole)
}

func (r *PractitionerRole) ToJSON() *node.Object {
	o := r.JSONObject()
	r.writeDomainResource(o)
	o.SetArray("identifier", toJSONArray(r.Identifier))
	setPrimitive(o, "active", r.Active)
	o.SetObject("period", r.Period.ToJSON())
	o.SetObject("practitioner", r.Practitioner.ToJSON())
	o.SetObject("organization", r.Organization.ToJSON())
	o.SetArray("code", toJSONArray(r.Code))
	o.SetArray("specialty", toJSONArray(r.Specialty))
	o.SetArray("location", toJSONArray(r.Location))
	o.SetArray("healthcareService", toJSONArray(r.HealthcareService))
	o.SetArray("characteristic", toJSONArray(r.Characteristic))
	o.SetArray("communication", toJSONArray(r.Communication))
	o.SetArray("endpoint", toJSONArray(r.Endpoint))
	return o
}

// Validate requires both the practitioner and the organization.
func (r *PractitionerRole) Validate() error {
	if err := r.Base.Validate(); err != nil {
		return err
	}
	if err := r.validateDomainResource(); err != nil {
		return err
	}
	if err := required(r.Practitioner.IsSet(), model.TypePractitionerRole, "practitioner"); err != nil {
		return err
	}
	if err := required(r.Organization.IsSet(), model.TypePractitionerRole, "organization"); err != nil {
		return err
	}
	if !r.Period.Valid() {
		return model.NewError(model.KindValidationFailed, "period", "invalid period")
	}
	return nil
}

func (r *PractitionerRole) DisplayName() string {
	if r.Practitioner != nil {
		if s := r.Practitioner.Display.Get(); s != "" {
			return s
		}
	}
	return r.Base.DisplayName()
}

func (r *PractitionerRole) Clone() model.Resource {
	return &PractitionerRole{
		Base:              r.CloneBase(),
		DomainResource:    r.cloneDomainResource(),
		Identifier:        cloneAll(r.Identifier),
		Active:            r.Active.Clone(),
		Period:            r.Period.Clone(),
		Practitioner:      r.Practitioner.Clone(),
		Organization:      r.Organization.Clone(),
		Code:              cloneAll(r.Code),
		Specialty:         cloneAll(r.Specialty),
		Location:          cloneAll(r.Location),
		HealthcareService: cloneAll(r.HealthcareService),
		Characteristic:    cloneAll(r.Characteristic),
		Communication:     cloneAll(r.Communication),
		Endpoint:          cloneAll(r.Endpoint),
	}
}

func (r *PractitionerRole) Destroy() {
	*r = PractitionerRole{Base: r.Base}
}

// IsActive reports the active flag; unset counts as active.
func (r *PractitionerRole) IsActive() bool {
	return r.Active == nil || r.Active.Value == nil || *r.Active.Value
}

// SetPractitioner points the role at a Practitioner, e.g. "Practitioner/123".
func (r *PractitionerRole) SetPractitioner(ref string) {
	r.Practitioner = NewReference(ref)
}

// SetOrganization points the role at an Organization.
func (r *PractitionerRole) SetOrganization(ref string) {
	r.Organization = NewReference(ref)
}

// HasSpecialty reports whether any specialty carries the given code.
func (r *PractitionerRole) HasSpecialty(system, code string) bool {
	for i := range r.Specialty {
		if r.Specialty[i].HasCode(system, code) {
			return true
		}
	}
	return false
}
