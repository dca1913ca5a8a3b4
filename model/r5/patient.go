package r5

import (
	"bytes"

	"github.com/fastfhir/fhir-r5-go/model"
	"github.com/fastfhir/fhir-r5-go/model/node"
	"github.com/fastfhir/fhir-r5-go/model/primitive"
	"github.com/fastfhir/fhir-r5-go/utils/array"
)

// Patient holds demographics and other administrative information about an
// individual receiving care or other health-related services.
type Patient struct {
	model.Base
	DomainResource
	// An identifier for this patient.
	Identifier []Identifier
	// Whether this patient's record is in active use.
	Active *Boolean
	// A name associated with the patient.
	Name []HumanName
	// A contact detail for the individual.
	Telecom []ContactPoint
	// AdministrativeGenderNull when not recorded.
	Gender AdministrativeGender
	// The date of birth for the individual.
	BirthDate *Date
	// Indicates if the individual is deceased or not.
	Deceased PatientDeceased
	// An address for the individual.
	Address []Address
	// Marital (civil) status of a patient.
	MaritalStatus *CodeableConcept
	// Patient's nominated primary care provider.
	GeneralPractitioner []Reference
	// Organization that is the custodian of the patient record.
	ManagingOrganization *Reference
}

// PatientDeceased is Boolean or DateTime.
type PatientDeceased interface {
	choice
	isPatientDeceased()
}

func (p *Boolean) isPatientDeceased()  {}
func (p *DateTime) isPatientDeceased() {}

var patientDeceasedParsers []choiceParser[PatientDeceased]

func init() {
	patientDeceasedParsers = []choiceParser[PatientDeceased]{
		primitiveChoice[PatientDeceased]("Boolean", ParseBoolean),
		primitiveChoice[PatientDeceased]("DateTime", ParseDateTime),
	}
	register(model.TypePatient, NewPatient, ParsePatient)
}

// NewPatient returns an empty Patient with the given id.
func NewPatient(id string) (*Patient, error) {
	p := &Patient{}
	if err := p.Init(model.TypePatient, id); err != nil {
		return nil, err
	}
	return p, nil
}

// ParsePatient builds a Patient from its JSON form. Members that do not
// have the expected shape are left unset.
func ParsePatient(v node.Value) (*Patient, error) {
	f, id, err := parseHeader(v, model.TypePatient)
	if err != nil {
		return nil, err
	}
	p, err := NewPatient(id)
	if err != nil {
		return nil, err
	}
	p.parseDomainResource(f)
	p.Identifier = parseArray(f["identifier"], ParseIdentifier)
	p.Active = primitiveField(f, "active", ParseBoolean)
	p.Name = parseArray(f["name"], ParseHumanName)
	p.Telecom = parseArray(f["telecom"], ParseContactPoint)
	if g, ok := f["gender"].AsString(); ok {
		p.Gender = AdministrativeGenderFromString(g)
	}
	p.BirthDate = primitiveField(f, "birthDate", ParseDate)
	p.Deceased = parseChoice(f, "deceased", patientDeceasedParsers)
	p.Address = parseArray(f["address"], ParseAddress)
	p.MaritalStatus = ParseCodeableConcept(f["maritalStatus"])
	p.GeneralPractitioner = parseArray(f["generalPractitioner"], ParseReference)
	p.ManagingOrganization = ParseReference(f["managingOrganization"])
	return p, nil
}

func (p *Patient) UnmarshalJSON(data []byte) error {
	return unmarshal(data, p, ParsePatient)
}

func (p *Patient) ToJSON() *node.Object {
	o := p.JSONObject()
	p.writeDomainResource(o)
	o.SetArray("identifier", toJSONArray(p.Identifier))
	setPrimitive(o, "active", p.Active)
	o.SetArray("name", toJSONArray(p.Name))
	o.SetArray("telecom", toJSONArray(p.Telecom))
	if p.Gender.IsValid() {
		o.Set("gender", p.Gender.String())
	}
	setPrimitive(o, "birthDate", p.BirthDate)
	setChoice(o, "deceased", p.Deceased)
	o.SetArray("address", toJSONArray(p.Address))
	o.SetObject("maritalStatus", p.MaritalStatus.ToJSON())
	o.SetArray("generalPractitioner", toJSONArray(p.GeneralPractitioner))
	o.SetObject("managingOrganization", p.ManagingOrganization.ToJSON())
	return o
}

func (p *Patient) Validate() error {
	if err := p.Base.Validate(); err != nil {
		return err
	}
	if err := p.validateDomainResource(); err != nil {
		return err
	}
	if p.Gender != AdministrativeGenderNull && !p.Gender.IsValid() {
		return model.NewError(model.KindValidationFailed, "gender", "unknown gender %d", int(p.Gender))
	}
	if !p.BirthDate.Valid() {
		return model.NewError(model.KindValidationFailed, "birthDate", "invalid date %q", p.BirthDate.Get())
	}
	if d, ok := p.Deceased.(*DateTime); ok && !d.Valid() {
		return model.NewError(model.KindValidationFailed, "deceasedDateTime", "invalid dateTime %q", d.Get())
	}
	return nil
}

// DisplayName is the first name of the patient, or the type name.
func (p *Patient) DisplayName() string {
	for i := range p.Name {
		if s := p.Name[i].Display(); s != "" {
			return s
		}
	}
	return p.Base.DisplayName()
}

func (p *Patient) Clone() model.Resource {
	return &Patient{
		Base:                 p.CloneBase(),
		DomainResource:       p.cloneDomainResource(),
		Identifier:           cloneAll(p.Identifier),
		Active:               p.Active.Clone(),
		Name:                 cloneAll(p.Name),
		Telecom:              cloneAll(p.Telecom),
		Gender:               p.Gender,
		BirthDate:            p.BirthDate.Clone(),
		Deceased:             cloneChoice(p.Deceased),
		Address:              cloneAll(p.Address),
		MaritalStatus:        p.MaritalStatus.Clone(),
		GeneralPractitioner:  cloneAll(p.GeneralPractitioner),
		ManagingOrganization: p.ManagingOrganization.Clone(),
	}
}

func (p *Patient) Destroy() {
	*p = Patient{Base: p.Base}
}

// IsActive reports whether the record is in active use. A record without
// an active flag is considered active.
func (p *Patient) IsActive() bool {
	return p.Active == nil || p.Active.Value == nil || *p.Active.Value
}

// SetActive sets the active flag.
func (p *Patient) SetActive(active bool) {
	p.Active = NewBoolean(active)
}

// SetGender sets the gender; AdministrativeGenderNull clears it.
func (p *Patient) SetGender(g AdministrativeGender) error {
	if g != AdministrativeGenderNull && !g.IsValid() {
		return model.NewError(model.KindInvalidArgument, "gender", "unknown gender %d", int(g))
	}
	p.Gender = g
	return nil
}

// SetBirthDate sets the birth date. An invalid date is rejected and the
// previous value kept.
func (p *Patient) SetBirthDate(date string) error {
	if !primitive.ValidateDate(date) {
		return model.NewError(model.KindInvalidArgument, "birthDate", "invalid date %q", date)
	}
	p.BirthDate = NewDate(date)
	return nil
}

// IsDeceased reports whether the patient is known to be deceased, either
// through a deceased flag or a date of death.
func (p *Patient) IsDeceased() bool {
	switch d := p.Deceased.(type) {
	case *Boolean:
		return d.True()
	case *DateTime:
		return d.Get() != ""
	}
	return false
}

// SetDeceasedBoolean replaces deceased[x] with a flag.
func (p *Patient) SetDeceasedBoolean(deceased bool) {
	p.Deceased = NewBoolean(deceased)
}

// SetDeceasedDateTime replaces deceased[x] with a date of death.
func (p *Patient) SetDeceasedDateTime(dateTime string) error {
	if !primitive.ValidateDateTime(dateTime) {
		return model.NewError(model.KindInvalidArgument, "deceasedDateTime", "invalid dateTime %q", dateTime)
	}
	p.Deceased = NewDateTime(dateTime)
	return nil
}

// Equal reports whether p and other have the same id and content.
func (p *Patient) Equal(other *Patient) bool {
	if p == nil || other == nil {
		return p == other
	}
	a, errA := p.ToJSON().MarshalJSON()
	b, errB := other.ToJSON().MarshalJSON()
	return errA == nil && errB == nil && bytes.Equal(a, b)
}

// AddName appends a name.
func (p *Patient) AddName(name HumanName) {
	p.Name = array.Add(p.Name, name)
}

// RemoveName deletes the name at index i, keeping the order of the rest.
func (p *Patient) RemoveName(i int) error {
	names, err := array.Remove(p.Name, i)
	if err != nil {
		return err
	}
	p.Name = names
	return nil
}
