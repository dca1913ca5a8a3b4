package r5

import (
	"github.com/fastfhir/fhir-r5-go/model"
	"github.com/fastfhir/fhir-r5-go/model/node"
)

// CarePlan describes the intention of how one or more practitioners intend
// to deliver care for a particular patient, group or community.
type CarePlan struct {
	model.Base
	DomainResource
	Identifier            []Identifier
	InstantiatesCanonical []Uri
	InstantiatesUri       []Uri
	BasedOn               []Reference
	Replaces              []Reference
	PartOf                []Reference
	// draft | active | on-hold | revoked | completed | entered-in-error | unknown
	Status RequestStatus
	// proposal | plan | order | option | directive
	Intent         CarePlanIntent
	Category       []CodeableConcept
	Title          *String
	Description    *String
	Subject        *Reference
	Encounter      *Reference
	Period         *Period
	Created        *DateTime
	Custodian      *Reference
	Contributor    []Reference
	CareTeam       []Reference
	Addresses      []CodeableReference
	SupportingInfo []Reference
	Goal           []Reference
	Activity       []CarePlanActivity
	Note           []Annotation

	// codes read from JSON that are outside the value sets
	rawStatus, rawIntent string
}

// CarePlanActivity is an action that has occurred or is planned as part of
// the care plan.
type CarePlanActivity struct {
	Id                       *string
	Extension                []Extension
	ModifierExtension        []Extension
	PerformedActivity        []CodeableReference
	Progress                 []Annotation
	PlannedActivityReference *Reference
}

func ParseCarePlanActivity(v node.Value) *CarePlanActivity {
	f, ok := v.Object()
	if !ok {
		return nil
	}
	a := &CarePlanActivity{}
	a.Id, a.Extension = parseElement(f)
	a.ModifierExtension = parseArray(f["modifierExtension"], ParseExtension)
	a.PerformedActivity = parseArray(f["performedActivity"], ParseCodeableReference)
	a.Progress = parseArray(f["progress"], ParseAnnotation)
	a.PlannedActivityReference = ParseReference(f["plannedActivityReference"])
	return a
}

func (a *CarePlanActivity) ToJSON() *node.Object {
	if a == nil {
		return nil
	}
	o := node.NewObject()
	writeElement(o, a.Id, a.Extension)
	o.SetArray("modifierExtension", toJSONArray(a.ModifierExtension))
	o.SetArray("performedActivity", toJSONArray(a.PerformedActivity))
	o.SetArray("progress", toJSONArray(a.Progress))
	o.SetObject("plannedActivityReference", a.PlannedActivityReference.ToJSON())
	return o
}

func (a *CarePlanActivity) Clone() *CarePlanActivity {
	if a == nil {
		return nil
	}
	return &CarePlanActivity{
		Id:                       cloneString(a.Id),
		Extension:                cloneAll(a.Extension),
		ModifierExtension:        cloneAll(a.ModifierExtension),
		PerformedActivity:        cloneAll(a.PerformedActivity),
		Progress:                 cloneAll(a.Progress),
		PlannedActivityReference: a.PlannedActivityReference.Clone(),
	}
}

func init() {
	register(model.TypeCarePlan, NewCarePlan, ParseCarePlan)
}

// NewCarePlan returns a draft plan with the given id.
func NewCarePlan(id string) (*CarePlan, error) {
	c := &CarePlan{
		Status: RequestStatusDraft,
		Intent: CarePlanIntentPlan,
	}
	if err := c.Init(model.TypeCarePlan, id); err != nil {
		return nil, err
	}
	return c, nil
}

// ParseCarePlan builds a CarePlan from its JSON form. An unrecognized
// status or intent code leaves the field at its Null value.
// ParseCarePlan reads a CarePlan. Status and intent are unset when absent
// from the document; the defaults of NewCarePlan do not apply to them.
func ParseCarePlan(v node.Value) (*CarePlan, error) {
	f, id, err := parseHeader(v, model.TypeCarePlan)
	if err != nil {
		return nil, err
	}
	c, err := NewCarePlan(id)
	if err != nil {
		return nil, err
	}
	c.parseDomainResource(f)
	c.Identifier = parseArray(f["identifier"], ParseIdentifier)
	c.InstantiatesCanonical = primitiveArray(f, "instantiatesCanonical", ParseUri)
	c.InstantiatesUri = primitiveArray(f, "instantiatesUri", ParseUri)
	c.BasedOn = parseArray(f["basedOn"], ParseReference)
	c.Replaces = parseArray(f["replaces"], ParseReference)
	c.PartOf = parseArray(f["partOf"], ParseReference)
	c.Status, c.rawStatus = parseCode(f["status"], RequestStatusFromString)
	c.Intent, c.rawIntent = parseCode(f["intent"], CarePlanIntentFromString)
	c.Category = parseArray(f["category"], ParseCodeableConcept)
	c.Title = primitiveField(f, "title", ParseString)
	c.Description = primitiveField(f, "description", ParseString)
	c.Subject = ParseReference(f["subject"])
	c.Encounter = ParseReference(f["encounter"])
	c.Period = ParsePeriod(f["period"])
	c.Created = primitiveField(f, "created", ParseDateTime)
	c.Custodian = ParseReference(f["custodian"])
	c.Contributor = parseArray(f["contributor"], ParseReference)
	c.CareTeam = parseArray(f["careTeam"], ParseReference)
	c.Addresses = parseArray(f["addresses"], ParseCodeableReference)
	c.SupportingInfo = parseArray(f["supportingInfo"], ParseReference)
	c.Goal = parseArray(f["goal"], ParseReference)
	c.Activity = parseArray(f["activity"], ParseCarePlanActivity)
	c.Note = parseArray(f["note"], ParseAnnotation)
	return c, nil
}

func (c *CarePlan) UnmarshalJSON(data []byte) error {
	return unmarshal(data, c, ParseCarePlan)
}

func (c *CarePlan) ToJSON() *node.Object {
	o := c.JSONObject()
	c.writeDomainResource(o)
	o.SetArray("identifier", toJSONArray(c.Identifier))
	setPrimitiveArray(o, "instantiatesCanonical", c.InstantiatesCanonical)
	setPrimitiveArray(o, "instantiatesUri", c.InstantiatesUri)
	o.SetArray("basedOn", toJSONArray(c.BasedOn))
	o.SetArray("replaces", toJSONArray(c.Replaces))
	o.SetArray("partOf", toJSONArray(c.PartOf))
	setCode(o, "status", c.Status, c.rawStatus)
	setCode(o, "intent", c.Intent, c.rawIntent)
	o.SetArray("category", toJSONArray(c.Category))
	setPrimitive(o, "title", c.Title)
	setPrimitive(o, "description", c.Description)
	o.SetObject("subject", c.Subject.ToJSON())
	o.SetObject("encounter", c.Encounter.ToJSON())
	o.SetObject("period", c.Period.ToJSON())
	setPrimitive(o, "created", c.Created)
	o.SetObject("custodian", c.Custodian.ToJSON())
	o.SetArray("contributor", toJSONArray(c.Contributor))
	o.SetArray("careTeam", toJSONArray(c.CareTeam))
	o.SetArray("addresses", toJSONArray(c.Addresses))
	o.SetArray("supportingInfo", toJSONArray(c.SupportingInfo))
	o.SetArray("goal", toJSONArray(c.Goal))
	o.SetArray("activity", toJSONArray(c.Activity))
	o.SetArray("note", toJSONArray(c.Note))
	return o
}

// Validate requires a known status and intent.
func (c *CarePlan) Validate() error {
	if err := c.Base.Validate(); err != nil {
		return err
	}
	if err := c.validateDomainResource(); err != nil {
		return err
	}
	if err := requiredCode(c.Status, c.rawStatus, model.TypeCarePlan, "status"); err != nil {
		return err
	}
	if err := requiredCode(c.Intent, c.rawIntent, model.TypeCarePlan, "intent"); err != nil {
		return err
	}
	if c.Subject != nil && !c.Subject.IsSet() {
		return model.NewError(model.KindValidationFailed, "subject", "empty reference")
	}
	if !c.Period.Valid() {
		return model.NewError(model.KindValidationFailed, "period", "invalid period")
	}
	if !c.Created.Valid() {
		return model.NewError(model.KindValidationFailed, "created", "invalid dateTime %q", c.Created.Get())
	}
	return nil
}

func (c *CarePlan) DisplayName() string {
	if s := c.Title.Get(); s != "" {
		return s
	}
	return c.Base.DisplayName()
}

func (c *CarePlan) Clone() model.Resource {
	return &CarePlan{
		Base:                  c.CloneBase(),
		DomainResource:        c.cloneDomainResource(),
		Identifier:            cloneAll(c.Identifier),
		InstantiatesCanonical: cloneAll(c.InstantiatesCanonical),
		InstantiatesUri:       cloneAll(c.InstantiatesUri),
		BasedOn:               cloneAll(c.BasedOn),
		Replaces:              cloneAll(c.Replaces),
		PartOf:                cloneAll(c.PartOf),
		Status:                c.Status,
		Intent:                c.Intent,
		rawStatus:             c.rawStatus,
		rawIntent:             c.rawIntent,
		Category:              cloneAll(c.Category),
		Title:                 c.Title.Clone(),
		Description:           c.Description.Clone(),
		Subject:               c.Subject.Clone(),
		Encounter:             c.Encounter.Clone(),
		Period:                c.Period.Clone(),
		Created:               c.Created.Clone(),
		Custodian:             c.Custodian.Clone(),
		Contributor:           cloneAll(c.Contributor),
		CareTeam:              cloneAll(c.CareTeam),
		Addresses:             cloneAll(c.Addresses),
		SupportingInfo:        cloneAll(c.SupportingInfo),
		Goal:                  cloneAll(c.Goal),
		Activity:              cloneAll(c.Activity),
		Note:                  cloneAll(c.Note),
	}
}

func (c *CarePlan) Destroy() {
	*c = CarePlan{Base: c.Base}
}

// IsActive reports whether the plan is in force.
func (c *CarePlan) IsActive() bool {
	return c.Status == RequestStatusActive
}

// IsCompleted reports whether the plan is no longer being acted upon because
// it was carried out.
func (c *CarePlan) IsCompleted() bool {
	return c.Status == RequestStatusCompleted
}

// SetStatus sets the status; unknown values are rejected.
func (c *CarePlan) SetStatus(s RequestStatus) error {
	if !s.IsValid() {
		return model.NewError(model.KindInvalidArgument, "status", "unknown status %d", int(s))
	}
	c.Status, c.rawStatus = s, ""
	return nil
}

// SetIntent sets the intent; unknown values are rejected.
func (c *CarePlan) SetIntent(i CarePlanIntent) error {
	if !i.IsValid() {
		return model.NewError(model.KindInvalidArgument, "intent", "unknown intent %d", int(i))
	}
	c.Intent, c.rawIntent = i, ""
	return nil
}

// AddressesCondition reports whether the plan addresses the given concept.
func (c *CarePlan) AddressesCondition(system, code string) bool {
	for i := range c.Addresses {
		if c.Addresses[i].Concept.HasCode(system, code) {
			return true
		}
	}
	return false
}
