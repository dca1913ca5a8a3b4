package model_test

import (
	"github.com/fastfhir/fhir-r5-go/model"
	"github.com/fastfhir/fhir-r5-go/model/node"
)

// basic is a minimal resource used to exercise the base system.
type basic struct {
	model.Base
	Code      string
	destroyed int
}

func newBasic(id string) (*basic, error) {
	b := &basic{}
	if err := b.Init(model.TypeBasic, id); err != nil {
		return nil, err
	}
	return b, nil
}

func parseBasic(v node.Value) (*basic, error) {
	id, _ := v.Get("id").AsString()
	b, err := newBasic(id)
	if err != nil {
		return nil, err
	}
	b.Code, _ = v.Get("code").AsString()
	return b, nil
}

func (b *basic) MarshalJSON() ([]byte, error) { return model.Marshal(b) }
func (b *basic) String() string               { return b.ID() }

func (b *basic) ToJSON() *node.Object {
	o := b.JSONObject()
	if b.Code != "" {
		o.Set("code", b.Code)
	}
	return o
}

func (b *basic) Clone() model.Resource {
	return &basic{Base: b.CloneBase(), Code: b.Code}
}

func (b *basic) Destroy() {
	b.destroyed++
	b.Code = ""
}

func (b *basic) IsActive() bool { return b.Code == "active" }

func basicRegistration() model.Registration {
	return model.Registration{
		Name: "Basic",
		Type: model.TypeBasic,
		New: func(id string) (model.Resource, error) {
			b, err := newBasic(id)
			if err != nil {
				return nil, err
			}
			return b, nil
		},
		Parse: func(v node.Value) (model.Resource, error) {
			b, err := parseBasic(v)
			if err != nil {
				return nil, err
			}
			return b, nil
		},
	}
}
