package model_test

import (
	"testing"

	"github.com/fastfhir/fhir-r5-go/model"
)

func TestResourceTypeNames(t *testing.T) {
	types := model.ResourceTypes()
	if len(types) != 158 {
		t.Errorf("len(ResourceTypes()) = %d, want 158", len(types))
	}
	for _, rt := range types {
		name := rt.String()
		if name == "" {
			t.Errorf("type %d has no name", int(rt))
			continue
		}
		if got := model.ResourceTypeFromString(name); got != rt {
			t.Errorf("ResourceTypeFromString(%q) = %d, want %d", name, int(got), int(rt))
		}
	}

	for _, name := range []string{"", "patient", "Spaceship"} {
		if got := model.ResourceTypeFromString(name); got != model.TypeUnknown {
			t.Errorf("ResourceTypeFromString(%q) = %v, want TypeUnknown", name, got)
		}
	}
	if model.TypeUnknown.IsValid() || model.TypeUnknown.String() != "" {
		t.Error("TypeUnknown must be invalid and unnamed")
	}
	if model.TypePatient.String() != "Patient" {
		t.Errorf("TypePatient = %q", model.TypePatient.String())
	}
}
