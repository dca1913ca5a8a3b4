package r5

import (
	"github.com/fastfhir/fhir-r5-go/model"
	"github.com/fastfhir/fhir-r5-go/model/node"
	"github.com/fastfhir/fhir-r5-go/utils/array"
)

// OperationOutcome is a collection of error, warning, or information
// messages that result from a system action.
type OperationOutcome struct {
	model.Base
	DomainResource
	Issue []OperationOutcomeIssue
}

// OperationOutcomeIssue is a single issue associated with the action.
type OperationOutcomeIssue struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Severity          IssueSeverity
	Code              IssueType
	Details           *CodeableConcept
	Diagnostics       *String
	// FHIRPath of element(s) related to issue.
	Expression []String
}

func ParseOperationOutcomeIssue(v node.Value) *OperationOutcomeIssue {
	f, ok := v.Object()
	if !ok {
		return nil
	}
	i := &OperationOutcomeIssue{}
	i.Id, i.Extension = parseElement(f)
	i.ModifierExtension = parseArray(f["modifierExtension"], ParseExtension)
	if s, ok := f["severity"].AsString(); ok {
		i.Severity = IssueSeverityFromString(s)
	}
	if s, ok := f["code"].AsString(); ok {
		i.Code = IssueTypeFromString(s)
	}
	i.Details = ParseCodeableConcept(f["details"])
	i.Diagnostics = primitiveField(f, "diagnostics", ParseString)
	i.Expression = primitiveArray(f, "expression", ParseString)
	return i
}

func (i *OperationOutcomeIssue) ToJSON() *node.Object {
	if i == nil {
		return nil
	}
	o := node.NewObject()
	writeElement(o, i.Id, i.Extension)
	o.SetArray("modifierExtension", toJSONArray(i.ModifierExtension))
	if i.Severity.IsValid() {
		o.Set("severity", i.Severity.String())
	}
	if i.Code.IsValid() {
		o.Set("code", i.Code.String())
	}
	o.SetObject("details", i.Details.ToJSON())
	setPrimitive(o, "diagnostics", i.Diagnostics)
	setPrimitiveArray(o, "expression", i.Expression)
	return o
}

func (i *OperationOutcomeIssue) Clone() *OperationOutcomeIssue {
	if i == nil {
		return nil
	}
	return &OperationOutcomeIssue{
		Id:                cloneString(i.Id),
		Extension:         cloneAll(i.Extension),
		ModifierExtension: cloneAll(i.ModifierExtension),
		Severity:          i.Severity,
		Code:              i.Code,
		Details:           i.Details.Clone(),
		Diagnostics:       i.Diagnostics.Clone(),
		Expression:        cloneAll(i.Expression),
	}
}

func init() {
	register(model.TypeOperationOutcome, NewOperationOutcome, ParseOperationOutcome)
}

func NewOperationOutcome(id string) (*OperationOutcome, error) {
	o := &OperationOutcome{}
	if err := o.Init(model.TypeOperationOutcome, id); err != nil {
		return nil, err
	}
	return o, nil
}

func ParseOperationOutcome(v node.Value) (*OperationOutcome, error) {
	f, id, err := parseHeader(v, model.TypeOperationOutcome)
	if err != nil {
		return nil, err
	}
	o, err := NewOperationOutcome(id)
	if err != nil {
		return nil, err
	}
	o.parseDomainResource(f)
	o.Issue = parseArray(f["issue"], ParseOperationOutcomeIssue)
	return o, nil
}

func (o *OperationOutcome) UnmarshalJSON(data []byte) error {
	return unmarshal(data, o, ParseOperationOutcome)
}

func (o *OperationOutcome) ToJSON() *node.Object {
	out := o.JSONObject()
	o.writeDomainResource(out)
	out.SetArray("issue", toJSONArray(o.Issue))
	return out
}

// Validate requires at least one issue, each with a known severity and code.
func (o *OperationOutcome) Validate() error {
	if err := o.Base.Validate(); err != nil {
		return err
	}
	if err := o.validateDomainResource(); err != nil {
		return err
	}
	if err := required(len(o.Issue) > 0, model.TypeOperationOutcome, "issue"); err != nil {
		return err
	}
	for _, i := range o.Issue {
		if !i.Severity.IsValid() {
			return model.NewError(model.KindValidationFailed, "issue.severity", "OperationOutcome.issue.severity is required")
		}
		if !i.Code.IsValid() {
			return model.NewError(model.KindValidationFailed, "issue.code", "OperationOutcome.issue.code is required")
		}
	}
	return nil
}

// DisplayName is the diagnostics of the first issue, or the type name.
func (o *OperationOutcome) DisplayName() string {
	if len(o.Issue) > 0 {
		if s := o.Issue[0].Diagnostics.Get(); s != "" {
			return s
		}
	}
	return o.Base.DisplayName()
}

func (o *OperationOutcome) Clone() model.Resource {
	return &OperationOutcome{
		Base:           o.CloneBase(),
		DomainResource: o.cloneDomainResource(),
		Issue:          cloneAll(o.Issue),
	}
}

func (o *OperationOutcome) Destroy() {
	*o = OperationOutcome{Base: o.Base}
}

// AddIssue appends an issue and returns o.
func (o *OperationOutcome) AddIssue(severity IssueSeverity, code IssueType, diagnostics string, expression ...string) *OperationOutcome {
	issue := OperationOutcomeIssue{Severity: severity, Code: code}
	if diagnostics != "" {
		issue.Diagnostics = NewString(diagnostics)
	}
	for _, e := range expression {
		issue.Expression = append(issue.Expression, *NewString(e))
	}
	o.Issue = array.Add(o.Issue, issue)
	return o
}

// RemoveIssue deletes the issue at index i.
func (o *OperationOutcome) RemoveIssue(i int) error {
	issues, err := array.Remove(o.Issue, i)
	if err != nil {
		return err
	}
	o.Issue = issues
	return nil
}

// HasErrors reports whether any issue is an error or fatal.
func (o *OperationOutcome) HasErrors() bool {
	for _, i := range o.Issue {
		if i.Severity == IssueSeverityFatal || i.Severity == IssueSeverityError {
			return true
		}
	}
	return false
}
