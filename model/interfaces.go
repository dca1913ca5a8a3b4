package model

import (
	"encoding/json"
	"fmt"

	"github.com/fastfhir/fhir-r5-go/model/node"
)

// Element is any element in the FHIR model that serializes to a JSON object.
//
// This includes Resources, Datatypes and BackboneElements.
type Element interface {
	json.Marshaler
	fmt.Stringer
	ToJSON() *node.Object
}

// Resource is any FHIR Resource.
//
// Implementations embed Base and are created through their constructor or
// the registry. Use the package-level functions (Retain, Release, Validate,
// Clone, ToJSON, DisplayName) rather than calling the methods directly; they
// guard against use after release.
type Resource interface {
	Element
	ResourceType() ResourceType
	ResourceId() (string, bool)
	// Validate checks the required-field rules of the resource type.
	Validate() error
	// DisplayName is a short human readable label; "" selects the type name.
	DisplayName() string
	// Clone returns a deep copy holding a single reference.
	Clone() Resource
	// Destroy drops every owned field. It is called once, by Release.
	Destroy()

	base() *Base
}

// Activity is implemented by resources that have a notion of being active.
type Activity interface {
	IsActive() bool
}
