package r5

import (
	"github.com/fastfhir/fhir-r5-go/model"
	"github.com/fastfhir/fhir-r5-go/model/node"
)

// EpisodeOfCare is an association between a patient and an organization /
// healthcare provider(s) during which time encounters may occur.
type EpisodeOfCare struct {
	model.Base
	DomainResource
	Identifier           []Identifier
	Status               EpisodeOfCareStatus
	StatusHistory        []EpisodeOfCareStatusHistory
	Type                 []CodeableConcept
	Patient              *Reference
	ManagingOrganization *Reference
	Period               *Period
	ReferralRequest      []Reference
	CareManager          *Reference
	CareTeam             []Reference
	Account              []Reference
}

// EpisodeOfCareStatusHistory is a past status of the episode.
type EpisodeOfCareStatusHistory struct {
	Id                *string
	Extension         []Extension
	ModifierExtension []Extension
	Status            EpisodeOfCareStatus
	Period            Period
}

func ParseEpisodeOfCareStatusHistory(v node.Value) *EpisodeOfCareStatusHistory {
	f, ok := v.Object()
	if !ok {
		return nil
	}
	h := &EpisodeOfCareStatusHistory{}
	h.Id, h.Extension = parseElement(f)
	h.ModifierExtension = parseArray(f["modifierExtension"], ParseExtension)
	if s, ok := f["status"].AsString(); ok {
		h.Status = EpisodeOfCareStatusFromString(s)
	}
	if p := ParsePeriod(f["period"]); p != nil {
		h.Period = *p
	}
	return h
}

func (h *EpisodeOfCareStatusHistory) ToJSON() *node.Object {
	if h == nil {
		return nil
	}
	o := node.NewObject()
	writeElement(o, h.Id, h.Extension)
	o.SetArray("modifierExtension", toJSONArray(h.ModifierExtension))
	if h.Status.IsValid() {
		o.Set("status", h.Status.String())
	}
	o.SetObject("period", h.Period.ToJSON())
	return o
}

func (h *EpisodeOfCareStatusHistory) Clone() *EpisodeOfCareStatusHistory {
	if h == nil {
		return nil
	}
	return &EpisodeOfCareStatusHistory{
		Id:                cloneString(h.Id),
		Extension:         cloneAll(h.Extension),
		ModifierExtension: cloneAll(h.ModifierExtension),
		Status:            h.Status,
		Period:            *h.Period.Clone(),
	}
}

func init() {
	register(model.TypeEpisodeOfCare, NewEpisodeOfCare, ParseEpisodeOfCare)
}

// NewEpisodeOfCare returns an episode with no status.
func NewEpisodeOfCare(id string) (*EpisodeOfCare, error) {
	e := &EpisodeOfCare{}
	if err := e.Init(model.TypeEpisodeOfCare, id); err != nil {
		return nil, err
	}
	return e, nil
}

func ParseEpisodeOfCare(v node.Value) (*EpisodeOfCare, error) {
	f, id, err := parseHeader(v, model.TypeEpisodeOfCare)
	if err != nil {
		return nil, err
	}
	e, err := NewEpisodeOfCare(id)
	if err != nil {
		return nil, err
	}
	e.parseDomainResource(f)
	e.Identifier = parseArray(f["identifier"], ParseIdentifier)
	if s, ok := f["status"].AsString(); ok {
		e.Status = EpisodeOfCareStatusFromString(s)
	}
	e.StatusHistory = parseArray(f["statusHistory"], ParseEpisodeOfCareStatusHistory)
	e.Type = parseArray(f["type"], ParseCodeableConcept)
	e.Patient = ParseReference(f["patient"])
	e.ManagingOrganization = ParseReference(f["managingOrganization"])
	e.Period = ParsePeriod(f["period"])
	e.ReferralRequest = parseArray(f["referralRequest"], ParseReference)
	e.CareManager = ParseReference(f["careManager"])
	e.CareTeam = parseArray(f["careTeam"], ParseReference)
	e.Account = parseArray(f["account"], ParseReference)
	return e, nil
}

func (e *EpisodeOfCare) UnmarshalJSON(data []byte) error {
	return unmarshal(data, e, ParseEpisodeOfCare)
}

func (e *EpisodeOfCare) ToJSON() *node.Object {
	o := e.JSONObject()
	e.writeDomainResource(o)
	o.SetArray("identifier", toJSONArray(e.Identifier))
	if e.Status.IsValid() {
		o.Set("status", e.Status.String())
	}
	o.SetArray("statusHistory", toJSONArray(e.StatusHistory))
	o.SetArray("type", toJSONArray(e.Type))
	o.SetObject("patient", e.Patient.ToJSON())
	o.SetObject("managingOrganization", e.ManagingOrganization.ToJSON())
	o.SetObject("period", e.Period.ToJSON())
	o.SetArray("referralRequest", toJSONArray(e.ReferralRequest))
	o.SetObject("careManager", e.CareManager.ToJSON())
	o.SetArray("careTeam", toJSONArray(e.CareTeam))
	o.SetArray("account", toJSONArray(e.Account))
	return o
}

// Validate requires a known status and the patient.
func (e *EpisodeOfCare) Validate() error {
	if err := e.Base.Validate(); err != nil {
		return err
	}
	if err := e.validateDomainResource(); err != nil {
		return err
	}
	if err := required(e.Status.IsValid(), model.TypeEpisodeOfCare, "status"); err != nil {
		return err
	}
	if err := required(e.Patient.IsSet(), model.TypeEpisodeOfCare, "patient"); err != nil {
		return err
	}
	for i := range e.StatusHistory {
		if !e.StatusHistory[i].Status.IsValid() {
			return model.NewError(model.KindValidationFailed, "statusHistory.status", "EpisodeOfCare.statusHistory.status is required")
		}
	}
	return nil
}

func (e *EpisodeOfCare) DisplayName() string {
	if len(e.Type) > 0 {
		if s := e.Type[0].Text.Get(); s != "" {
			return s
		}
	}
	return e.Base.DisplayName()
}

func (e *EpisodeOfCare) Clone() model.Resource {
	return &EpisodeOfCare{
		Base:                 e.CloneBase(),
		DomainResource:       e.cloneDomainResource(),
		Identifier:           cloneAll(e.Identifier),
		Status:               e.Status,
		StatusHistory:        cloneAll(e.StatusHistory),
		Type:                 cloneAll(e.Type),
		Patient:              e.Patient.Clone(),
		ManagingOrganization: e.ManagingOrganization.Clone(),
		Period:               e.Period.Clone(),
		ReferralRequest:      cloneAll(e.ReferralRequest),
		CareManager:          e.CareManager.Clone(),
		CareTeam:             cloneAll(e.CareTeam),
		Account:              cloneAll(e.Account),
	}
}

func (e *EpisodeOfCare) Destroy() {
	*e = EpisodeOfCare{Base: e.Base}
}

func (e *EpisodeOfCare) IsActive() bool {
	return e.Status == EpisodeOfCareStatusActive
}

func (e *EpisodeOfCare) IsFinished() bool {
	return e.Status == EpisodeOfCareStatusFinished
}

// SetStatus changes the status. The status being replaced is appended to
// the status history, ending at changedAt.
func (e *EpisodeOfCare) SetStatus(s EpisodeOfCareStatus, changedAt string) error {
	if !s.IsValid() {
		return model.NewError(model.KindInvalidArgument, "status", "unknown status %d", int(s))
	}
	if e.Status.IsValid() && e.Status != s {
		h := EpisodeOfCareStatusHistory{Status: e.Status}
		if changedAt != "" {
			h.Period.End = NewDateTime(changedAt)
		}
		e.StatusHistory = append(e.StatusHistory, h)
	}
	e.Status = s
	return nil
}
