package model_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/fastfhir/fhir-r5-go/model"
)

func TestKindString(t *testing.T) {
	for kind, want := range map[model.Kind]string{
		model.KindNone:             "No error",
		model.KindInvalidArgument:  "Invalid argument",
		model.KindOutOfMemory:      "Out of memory",
		model.KindInvalidJSON:      "Invalid JSON",
		model.KindValidationFailed: "Validation failed",
		model.KindNotFound:         "Not found",
		model.Kind(99):             "Unknown error",
		model.Kind(-1):             "Unknown error",
	} {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
	if !model.KindOutOfMemory.Fatal() || model.KindValidationFailed.Fatal() {
		t.Error("only out of memory is fatal")
	}
}

func TestErrorDetails(t *testing.T) {
	err := model.NewError(model.KindValidationFailed, "subject", "CarePlan.subject is required")

	if got, want := err.Error(), "Validation failed (subject): CarePlan.subject is required"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !strings.Contains(err.Location, ".go:") {
		t.Errorf("Location = %q, want file:line", err.Location)
	}
}

func TestErrorMatching(t *testing.T) {
	cause := errors.New("unexpected end of input")
	err := fmt.Errorf("decode: %w", model.WrapError(cause, model.KindInvalidJSON, "", "parse resource"))

	if !errors.Is(err, model.ErrInvalidJSON) {
		t.Error("errors.Is(ErrInvalidJSON) = false")
	}
	if errors.Is(err, model.ErrNotFound) {
		t.Error("errors.Is(ErrNotFound) = true")
	}
	if !errors.Is(err, cause) {
		t.Error("cause not reachable")
	}
	if model.KindOf(err) != model.KindInvalidJSON {
		t.Errorf("KindOf() = %v", model.KindOf(err))
	}
	if model.KindOf(cause) != model.KindNone {
		t.Error("KindOf(non-model error) must be KindNone")
	}

	field := model.NewError(model.KindValidationFailed, "status", "")
	if !errors.Is(field, &model.Error{Kind: model.KindValidationFailed, Field: "status"}) {
		t.Error("field match failed")
	}
	if errors.Is(field, &model.Error{Kind: model.KindValidationFailed, Field: "intent"}) {
		t.Error("field mismatch matched")
	}
}
