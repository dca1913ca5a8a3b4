package model_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fastfhir/fhir-r5-go/model"
)

func TestRegistryCreate(t *testing.T) {
	reg := model.NewRegistry()
	if err := reg.Register(basicRegistration()); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"Basic", "basic"} {
		r, err := reg.CreateByName(name, "b1")
		if err != nil {
			t.Fatalf("CreateByName(%q) = %v", name, err)
		}
		if r.ResourceType() != model.TypeBasic {
			t.Errorf("ResourceType() = %v", r.ResourceType())
		}
		model.Release(r)
	}

	r, err := reg.CreateByType(model.TypeBasic, "b2")
	if err != nil {
		t.Fatal(err)
	}
	if id, _ := r.ResourceId(); id != "b2" {
		t.Errorf("id = %q", id)
	}
	model.Release(r)

	if _, err := reg.CreateByName("Basic", "bad id"); !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("CreateByName(bad id) = %v", err)
	}
}

func TestRegistryNotFound(t *testing.T) {
	reg := model.NewRegistry()

	r, err := reg.CreateByName("Spaceship", "x")
	if r != nil || !errors.Is(err, model.ErrNotFound) {
		t.Errorf("CreateByName() = %v, %v", r, err)
	}
	r, err = reg.CreateByType(model.TypeBasic, "x")
	if r != nil || !errors.Is(err, model.ErrNotFound) {
		t.Errorf("CreateByType() = %v, %v", r, err)
	}
	if _, err := reg.Parse([]byte(`{"resourceType":"Basic","id":"x"}`)); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Parse() = %v", err)
	}
}

func TestRegistryRegister(t *testing.T) {
	reg := model.NewRegistry()
	if err := reg.Register(basicRegistration()); err != nil {
		t.Fatal(err)
	}
	if err := reg.Register(basicRegistration()); err != nil {
		t.Errorf("registering twice must be a no-op: %v", err)
	}
	if reg.Count() != 1 {
		t.Errorf("Count() = %d", reg.Count())
	}

	conflict := basicRegistration()
	conflict.Type = model.TypeBinary
	if err := reg.Register(conflict); !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("Register(conflict) = %v", err)
	}
	renamed := basicRegistration()
	renamed.Name = "Basic2"
	if err := reg.Register(renamed); !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("Register(renamed) = %v", err)
	}
	misnamed := basicRegistration()
	misnamed.Name = "Foo"
	misnamed.Type = model.TypePatient
	if err := reg.Register(misnamed); !errors.Is(err, &model.Error{Kind: model.KindInvalidArgument, Field: "name"}) {
		t.Errorf("Register(name/type mismatch) = %v", err)
	}
	if _, ok := reg.Lookup("Foo"); ok {
		t.Error("mismatched registration was stored")
	}
	invalid := basicRegistration()
	invalid.Type = model.TypeUnknown
	if err := reg.Register(invalid); !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("Register(invalid type) = %v", err)
	}

	var names []string
	for _, e := range reg.Entries() {
		names = append(names, e.Name)
	}
	if diff := cmp.Diff([]string{"Basic"}, names); diff != "" {
		t.Error(diff)
	}

	reg.Reset()
	if reg.Count() != 0 {
		t.Error("Reset() kept registrations")
	}
}

func TestRegistryParse(t *testing.T) {
	reg := model.NewRegistry()
	_ = reg.Register(basicRegistration())

	r, err := reg.Parse([]byte(`{"resourceType":"Basic","id":"b1","code":"active"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer model.Release(r)
	if !model.IsActive(r) {
		t.Error("code not parsed")
	}

	tests := map[string]string{
		"malformed":       `{"resourceType":`,
		"array":           `[]`,
		"no type":         `{"id":"b1"}`,
		"empty type":      `{"resourceType":"","id":"b1"}`,
		"type not string": `{"resourceType":true}`,
	}
	for name, in := range tests {
		if _, err := reg.Parse([]byte(in)); !errors.Is(err, model.ErrInvalidJSON) {
			t.Errorf("%s: Parse() = %v, want invalid JSON", name, err)
		}
	}
}

func TestRegistryRegisterDoesNotLog(t *testing.T) {
	var buf bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.TraceLevel)
	defer func() { log.Logger = saved }()

	reg := model.NewRegistry()
	if err := reg.Register(basicRegistration()); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("Register() logged %q", buf.String())
	}
}
