package r5_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fastfhir/fhir-r5-go/model"
	"github.com/fastfhir/fhir-r5-go/model/r5"
	"github.com/fastfhir/fhir-r5-go/testdata"
	"github.com/fastfhir/fhir-r5-go/testdata/assert"
)

func TestRoundtripJSON(t *testing.T) {
	for name, jsonIn := range testdata.GetExamples() {
		jsonIn := jsonIn
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r, err := model.Parse(jsonIn)
			if err != nil {
				t.Fatalf("Failed to parse JSON: %v", err)
			}
			defer model.Release(r)

			jsonOut, err := json.Marshal(r)
			if err != nil {
				t.Fatalf("Failed to marshal JSON: %v", err)
			}
			assert.JSONEqual(t, string(jsonIn), string(jsonOut))

			again, err := model.Parse(jsonOut)
			if err != nil {
				t.Fatalf("Failed to parse marshalled JSON: %v", err)
			}
			defer model.Release(again)
			if got, want := model.IsValid(again), model.IsValid(r); got != want {
				t.Errorf("validity changed after roundtrip: %v, want %v", got, want)
			}
		})
	}
}

func TestRoundtripClone(t *testing.T) {
	for name, jsonIn := range testdata.GetExamples() {
		jsonIn := jsonIn
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r, err := model.Parse(jsonIn)
			if err != nil {
				t.Fatalf("Failed to parse JSON: %v", err)
			}
			c := model.Clone(r)
			model.Release(r)

			if n := model.RefCount(c); n != 1 {
				t.Errorf("clone refcount = %d, want 1", n)
			}
			out, err := model.Marshal(c)
			if err != nil {
				t.Fatal(err)
			}
			assert.JSONEqual(t, string(jsonIn), string(out))
			model.Release(c)
		})
	}
}

func TestExamplesValidate(t *testing.T) {
	for name, jsonIn := range testdata.GetExamples() {
		r, err := model.Parse(jsonIn)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if err := model.Validate(r); err != nil {
			t.Errorf("%s: %v", name, err)
		}
		model.Release(r)
	}
}

func TestRoundtripKeepsValidity(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{
			name: "care plan with unknown status",
			in:   `{"resourceType":"CarePlan","id":"c1","status":"bogus","intent":"plan"}`,
			out:  `{"resourceType":"CarePlan","id":"c1","status":"bogus","intent":"plan"}`,
		},
		{
			name: "care plan with unknown intent",
			in:   `{"resourceType":"CarePlan","id":"c1","status":"active","intent":"wish"}`,
			out:  `{"resourceType":"CarePlan","id":"c1","status":"active","intent":"wish"}`,
		},
		{
			name: "care plan without status",
			in:   `{"resourceType":"CarePlan","id":"c1","intent":"plan"}`,
			out:  `{"resourceType":"CarePlan","id":"c1","intent":"plan"}`,
		},
		{
			name: "risk assessment with unknown status",
			in:   `{"resourceType":"RiskAssessment","id":"r1","status":"bogus"}`,
			out:  `{"resourceType":"RiskAssessment","id":"r1","status":"bogus"}`,
		},
		{
			name: "risk assessment without status",
			in:   `{"resourceType":"RiskAssessment","id":"r1"}`,
			out:  `{"resourceType":"RiskAssessment","id":"r1"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := model.Parse([]byte(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			defer model.Release(r)
			if model.IsValid(r) {
				t.Fatal("parsed resource must not validate")
			}

			out, err := model.Marshal(r)
			if err != nil {
				t.Fatal(err)
			}
			assert.JSONEqual(t, tt.out, string(out))

			again, err := model.Parse(out)
			if err != nil {
				t.Fatal(err)
			}
			defer model.Release(again)
			if model.IsValid(again) {
				t.Error("resource became valid after roundtrip")
			}
		})
	}
}

func TestRoundtripUnsetStatus(t *testing.T) {
	c, err := r5.NewCarePlan("c1")
	if err != nil {
		t.Fatal(err)
	}
	defer model.Release(c)
	c.Status = r5.RequestStatusNull

	out, err := model.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	again, err := model.Parse(out)
	if err != nil {
		t.Fatal(err)
	}
	defer model.Release(again)

	if model.IsValid(c) || model.IsValid(again) {
		t.Errorf("unset status must fail validation before and after roundtrip, got %s", out)
	}
}

func TestUnknownCodeClearedBySetter(t *testing.T) {
	r, err := model.Parse([]byte(`{"resourceType":"CarePlan","id":"c1","status":"bogus","intent":"plan"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer model.Release(r)
	c := r.(*r5.CarePlan)

	clone := model.Clone(c)
	defer model.Release(clone)
	if out, _ := model.Marshal(clone); !strings.Contains(string(out), `"status":"bogus"`) {
		t.Errorf("clone lost the unknown status: %s", out)
	}

	if err := c.SetStatus(r5.RequestStatusActive); err != nil {
		t.Fatal(err)
	}
	if err := model.Validate(c); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	out, _ := model.Marshal(c)
	assert.JSONEqual(t, `{"resourceType":"CarePlan","id":"c1","status":"active","intent":"plan"}`, string(out))
}
