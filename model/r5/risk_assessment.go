package r5

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/fastfhir/fhir-r5-go/model"
	"github.com/fastfhir/fhir-r5-go/model/node"
)

// RiskAssessment is an assessment of the likely outcome(s) for a patient or
// other subject as well as the likelihood of each outcome.
type RiskAssessment struct {
	model.Base
	DomainResource
	Identifier []Identifier
	BasedOn    *Reference
	Parent     *Reference
	// registered | preliminary | final | amended | corrected | cancelled | entered-in-error | unknown
	Status     ObservationStatus
	Method     *CodeableConcept
	Code       *CodeableConcept
	Subject    *Reference
	Encounter  *Reference
	Occurrence RiskAssessmentOccurrence
	Condition  *Reference
	Performer  *Reference
	Reason     []CodeableReference
	Basis      []Reference
	Prediction []RiskAssessmentPrediction
	Mitigation *String
	Note       []Annotation

	// status code read from JSON that is outside the value set
	rawStatus string
}

// RiskAssessmentOccurrence is DateTime or Period.
type RiskAssessmentOccurrence interface {
	choice
	isRiskAssessmentOccurrence()
}

// RiskAssessmentProbability is Decimal or Range.
type RiskAssessmentProbability interface {
	choice
	isRiskAssessmentProbability()
}

// RiskAssessmentWhen is Period or Range.
type RiskAssessmentWhen interface {
	choice
	isRiskAssessmentWhen()
}

func (p *DateTime) isRiskAssessmentOccurrence() {}
func (p *Period) isRiskAssessmentOccurrence()   {}
func (p *Decimal) isRiskAssessmentProbability() {}
func (r *Range) isRiskAssessmentProbability()   {}
func (p *Period) isRiskAssessmentWhen()         {}
func (r *Range) isRiskAssessmentWhen()          {}

var (
	riskAssessmentOccurrenceParsers  []choiceParser[RiskAssessmentOccurrence]
	riskAssessmentProbabilityParsers []choiceParser[RiskAssessmentProbability]
	riskAssessmentWhenParsers        []choiceParser[RiskAssessmentWhen]
)

func init() {
	riskAssessmentOccurrenceParsers = []choiceParser[RiskAssessmentOccurrence]{
		primitiveChoice[RiskAssessmentOccurrence]("DateTime", ParseDateTime),
		complexChoice[RiskAssessmentOccurrence]("Period", ParsePeriod),
	}
	riskAssessmentProbabilityParsers = []choiceParser[RiskAssessmentProbability]{
		primitiveChoice[RiskAssessmentProbability]("Decimal", ParseDecimal),
		complexChoice[RiskAssessmentProbability]("Range", ParseRange),
	}
	riskAssessmentWhenParsers = []choiceParser[RiskAssessmentWhen]{
		complexChoice[RiskAssessmentWhen]("Period", ParsePeriod),
		complexChoice[RiskAssessmentWhen]("Range", ParseRange),
	}
	register(model.TypeRiskAssessment, NewRiskAssessment, ParseRiskAssessment)
}

// RiskAssessmentPrediction describes the expected outcome for the subject.
type RiskAssessmentPrediction struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Outcome           *CodeableConcept
	// Likelihood of specified outcome, as a percentage in 0..100 or a range.
	Probability     RiskAssessmentProbability
	QualitativeRisk *CodeableConcept
	RelativeRisk    *Decimal
	When            RiskAssessmentWhen
	Rationale       *String
}

func ParseRiskAssessmentPrediction(v node.Value) *RiskAssessmentPrediction {
	f, ok := v.Object()
	if !ok {
		return nil
	}
	p := &RiskAssessmentPrediction{}
	p.Id, p.Extension = parseElement(f)
	p.ModifierExtension = parseArray(f["modifierExtension"], ParseExtension)
	p.Outcome = ParseCodeableConcept(f["outcome"])
	p.Probability = parseChoice(f, "probability", riskAssessmentProbabilityParsers)
	p.QualitativeRisk = ParseCodeableConcept(f["qualitativeRisk"])
	p.RelativeRisk = primitiveField(f, "relativeRisk", ParseDecimal)
	p.When = parseChoice(f, "when", riskAssessmentWhenParsers)
	p.Rationale = primitiveField(f, "rationale", ParseString)
	return p
}

func (p *RiskAssessmentPrediction) ToJSON() *node.Object {
	if p == nil {
		return nil
	}
	o := node.NewObject()
	writeElement(o, p.Id, p.Extension)
	o.SetArray("modifierExtension", toJSONArray(p.ModifierExtension))
	o.SetObject("outcome", p.Outcome.ToJSON())
	setChoice(o, "probability", p.Probability)
	o.SetObject("qualitativeRisk", p.QualitativeRisk.ToJSON())
	setPrimitive(o, "relativeRisk", p.RelativeRisk)
	setChoice(o, "when", p.When)
	setPrimitive(o, "rationale", p.Rationale)
	return o
}

func (p *RiskAssessmentPrediction) Clone() *RiskAssessmentPrediction {
	if p == nil {
		return nil
	}
	return &RiskAssessmentPrediction{
		Id:                cloneString(p.Id),
		Extension:         cloneAll(p.Extension),
		ModifierExtension: cloneAll(p.ModifierExtension),
		Outcome:           p.Outcome.Clone(),
		Probability:       cloneChoice(p.Probability),
		QualitativeRisk:   p.QualitativeRisk.Clone(),
		RelativeRisk:      p.RelativeRisk.Clone(),
		When:              cloneChoice(p.When),
		Rationale:         p.Rationale.Clone(),
	}
}

// ProbabilityDecimal returns probabilityDecimal, or nil if the prediction
// has no decimal probability.
func (p *RiskAssessmentPrediction) ProbabilityDecimal() *apd.Decimal {
	if d, ok := p.Probability.(*Decimal); ok && d != nil {
		return d.Value
	}
	return nil
}

var maxProbability = apd.New(100, 0)

// NewRiskAssessment returns a registered assessment with the given id.
func NewRiskAssessment(id string) (*RiskAssessment, error) {
	r := &RiskAssessment{Status: ObservationStatusRegistered}
	if err := r.Init(model.TypeRiskAssessment, id); err != nil {
		return nil, err
	}
	return r, nil
}

// ParseRiskAssessment reads a RiskAssessment. An absent status stays unset.
func ParseRiskAssessment(v node.Value) (*RiskAssessment, error) {
	f, id, err := parseHeader(v, model.TypeRiskAssessment)
	if err != nil {
		return nil, err
	}
	r, err := NewRiskAssessment(id)
	if err != nil {
		return nil, err
	}
	r.parseDomainResource(f)
	r.Identifier = parseArray(f["identifier"], ParseIdentifier)
	r.BasedOn = ParseReference(f["basedOn"])
	r.Parent = ParseReference(f["parent"])
	r.Status, r.rawStatus = parseCode(f["status"], ObservationStatusFromString)
	r.Method = ParseCodeableConcept(f["method"])
	r.Code = ParseCodeableConcept(f["code"])
	r.Subject = ParseReference(f["subject"])
	r.Encounter = ParseReference(f["encounter"])
	r.Occurrence = parseChoice(f, "occurrence", riskAssessmentOccurrenceParsers)
	r.Condition = ParseReference(f["condition"])
	r.Performer = ParseReference(f["performer"])
	r.Reason = parseArray(f["reason"], ParseCodeableReference)
	r.Basis = parseArray(f["basis"], ParseReference)
	r.Prediction = parseArray(f["prediction"], ParseRiskAssessmentPrediction)
	r.Mitigation = primitiveField(f, "mitigation", ParseString)
	r.Note = parseArray(f["note"], ParseAnnotation)
	return r, nil
}

func (r *RiskAssessment) UnmarshalJSON(data []byte) error {
	return unmarshal(data, r, ParseRiskAssessment)
}

func (r *RiskAssessment) ToJSON() *node.Object {
	o := r.JSONObject()
	r.writeDomainResource(o)
	o.SetArray("identifier", toJSONArray(r.Identifier))
	o.SetObject("basedOn", r.BasedOn.ToJSON())
	o.SetObject("parent", r.Parent.ToJSON())
	setCode(o, "status", r.Status, r.rawStatus)
	o.SetObject("method", r.Method.ToJSON())
	o.SetObject("code", r.Code.ToJSON())
	o.SetObject("subject", r.Subject.ToJSON())
	o.SetObject("encounter", r.Encounter.ToJSON())
	setChoice(o, "occurrence", r.Occurrence)
	o.SetObject("condition", r.Condition.ToJSON())
	o.SetObject("performer", r.Performer.ToJSON())
	o.SetArray("reason", toJSONArray(r.Reason))
	o.SetArray("basis", toJSONArray(r.Basis))
	o.SetArray("prediction", toJSONArray(r.Prediction))
	setPrimitive(o, "mitigation", r.Mitigation)
	o.SetArray("note", toJSONArray(r.Note))
	return o
}

// Validate requires a known status. A decimal probability may not exceed 100.
func (r *RiskAssessment) Validate() error {
	if err := r.Base.Validate(); err != nil {
		return err
	}
	if err := r.validateDomainResource(); err != nil {
		return err
	}
	if err := requiredCode(r.Status, r.rawStatus, model.TypeRiskAssessment, "status"); err != nil {
		return err
	}
	if r.Subject != nil && !r.Subject.IsSet() {
		return model.NewError(model.KindValidationFailed, "subject", "empty reference")
	}
	for i := range r.Prediction {
		d := r.Prediction[i].ProbabilityDecimal()
		if d != nil && (d.Negative || d.Cmp(maxProbability) > 0) {
			return model.NewError(model.KindValidationFailed, "prediction.probabilityDecimal",
				"probability %s out of range", d.Text('G'))
		}
	}
	return nil
}

func (r *RiskAssessment) DisplayName() string {
	if r.Code != nil {
		if s := r.Code.Text.Get(); s != "" {
			return s
		}
	}
	return r.Base.DisplayName()
}

func (r *RiskAssessment) Clone() model.Resource {
	return &RiskAssessment{
		Base:           r.CloneBase(),
		DomainResource: r.cloneDomainResource(),
		Identifier:     cloneAll(r.Identifier),
		BasedOn:        r.BasedOn.Clone(),
		Parent:         r.Parent.Clone(),
		Status:         r.Status,
		rawStatus:      r.rawStatus,
		Method:         r.Method.Clone(),
		Code:           r.Code.Clone(),
		Subject:        r.Subject.Clone(),
		Encounter:      r.Encounter.Clone(),
		Occurrence:     cloneChoice(r.Occurrence),
		Condition:      r.Condition.Clone(),
		Performer:      r.Performer.Clone(),
		Reason:         cloneAll(r.Reason),
		Basis:          cloneAll(r.Basis),
		Prediction:     cloneAll(r.Prediction),
		Mitigation:     r.Mitigation.Clone(),
		Note:           cloneAll(r.Note),
	}
}

func (r *RiskAssessment) Destroy() {
	*r = RiskAssessment{Base: r.Base}
}

// IsActive reports whether the assessment is final.
func (r *RiskAssessment) IsActive() bool {
	return r.Status == ObservationStatusFinal
}

// SetStatus sets the status; unknown values are rejected.
func (r *RiskAssessment) SetStatus(s ObservationStatus) error {
	if !s.IsValid() {
		return model.NewError(model.KindInvalidArgument, "status", "unknown status %d", int(s))
	}
	r.Status, r.rawStatus = s, ""
	return nil
}

// IsHighRisk reports whether any prediction has a decimal probability of at
// least threshold.
func (r *RiskAssessment) IsHighRisk(threshold float64) bool {
	t, err := new(apd.Decimal).SetFloat64(threshold)
	if err != nil {
		return false
	}
	for i := range r.Prediction {
		if d := r.Prediction[i].ProbabilityDecimal(); d != nil && d.Cmp(t) >= 0 {
			return true
		}
	}
	return false
}
