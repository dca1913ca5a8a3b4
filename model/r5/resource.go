package r5

import (
	"github.com/fastfhir/fhir-r5-go/model"
	"github.com/fastfhir/fhir-r5-go/model/node"
)

// DomainResource holds the elements of resources that carry narrative and
// extensions. Contained resources are not modelled.
type DomainResource struct {
	Meta              *Meta
	ImplicitRules     *Uri
	Language          *Code
	Text              *Narrative
	Extension         []Extension
	ModifierExtension []Extension
}

func (d *DomainResource) parseDomainResource(f node.Fields) {
	d.Meta = ParseMeta(f["meta"])
	d.ImplicitRules = primitiveField(f, "implicitRules", ParseUri)
	d.Language = primitiveField(f, "language", ParseCode)
	d.Text = ParseNarrative(f["text"])
	d.Extension = parseArray(f["extension"], ParseExtension)
	d.ModifierExtension = parseArray(f["modifierExtension"], ParseExtension)
}

func (d *DomainResource) writeDomainResource(o *node.Object) {
	o.SetObject("meta", d.Meta.ToJSON())
	setPrimitive(o, "implicitRules", d.ImplicitRules)
	setPrimitive(o, "language", d.Language)
	o.SetObject("text", d.Text.ToJSON())
	o.SetArray("extension", toJSONArray(d.Extension))
	o.SetArray("modifierExtension", toJSONArray(d.ModifierExtension))
}

func (d *DomainResource) cloneDomainResource() DomainResource {
	return DomainResource{
		Meta:              d.Meta.Clone(),
		ImplicitRules:     d.ImplicitRules.Clone(),
		Language:          d.Language.Clone(),
		Text:              d.Text.Clone(),
		Extension:         cloneAll(d.Extension),
		ModifierExtension: cloneAll(d.ModifierExtension),
	}
}

func (d *DomainResource) validateDomainResource() error {
	if !d.ImplicitRules.Valid() {
		return model.NewError(model.KindValidationFailed, "implicitRules", "invalid uri %q", d.ImplicitRules.Get())
	}
	if !d.Language.Valid() {
		return model.NewError(model.KindValidationFailed, "language", "invalid code %q", d.Language.Get())
	}
	return nil
}

// parseHeader checks that v is a JSON object of resource type t with an id
// and returns its members and the id.
func parseHeader(v node.Value, t model.ResourceType) (node.Fields, string, error) {
	f, ok := v.Object()
	if !ok {
		return nil, "", model.NewError(model.KindInvalidJSON, "", "%s must be a JSON object", t)
	}
	rt, ok := f["resourceType"].AsString()
	if !ok {
		return nil, "", model.NewError(model.KindInvalidJSON, "resourceType", "missing resourceType")
	}
	if rt != t.String() {
		return nil, "", model.NewError(model.KindInvalidJSON, "resourceType", "expected %s, got %q", t, rt)
	}
	id, ok := f["id"].AsString()
	if !ok {
		return nil, "", model.NewError(model.KindInvalidArgument, "id", "%s without id", t)
	}
	return f, id, nil
}

// unmarshal decodes data with parse and stores the result in dst.
func unmarshal[R any](data []byte, dst *R, parse func(node.Value) (*R, error)) error {
	v, err := node.Parse(data)
	if err != nil {
		return model.WrapError(err, model.KindInvalidJSON, "", "decode resource")
	}
	r, err := parse(v)
	if err != nil {
		return err
	}
	*dst = *r
	return nil
}

// required returns a ValidationFailed error for field unless ok.
func required(ok bool, t model.ResourceType, field string) error {
	if ok {
		return nil
	}
	return model.NewError(model.KindValidationFailed, field, "%s.%s is required", t, field)
}

// coded is a value set enumeration.
type coded interface {
	~int
	IsValid() bool
	String() string
}

// parseCode reads a coded field. An absent key yields the Null value. A code
// outside the value set also yields Null and is returned as raw so that it
// is written back unchanged.
func parseCode[E coded](v node.Value, fromString func(string) E) (e E, raw string) {
	s, ok := v.AsString()
	if !ok {
		return e, ""
	}
	if e = fromString(s); !e.IsValid() {
		return e, s
	}
	return e, ""
}

func setCode[E coded](o *node.Object, key string, e E, raw string) {
	switch {
	case e.IsValid():
		o.Set(key, e.String())
	case raw != "":
		o.Set(key, raw)
	}
}

// requiredCode is like required for a coded field, naming an unknown code.
func requiredCode[E coded](e E, raw string, t model.ResourceType, field string) error {
	if !e.IsValid() && raw != "" {
		return model.NewError(model.KindValidationFailed, field, "%s.%s has unknown code %q", t, field, raw)
	}
	return required(e.IsValid(), t, field)
}

// register adds a resource type to the default registry.
func register[R model.Resource](t model.ResourceType, newFn func(id string) (R, error), parseFn func(node.Value) (R, error)) {
	model.MustRegister(model.Registration{
		Name: t.String(),
		Type: t,
		New: func(id string) (model.Resource, error) {
			r, err := newFn(id)
			if err != nil {
				return nil, err
			}
			return r, nil
		},
		Parse: func(v node.Value) (model.Resource, error) {
			r, err := parseFn(v)
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	})
}
