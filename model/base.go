package model

import (
	"sync/atomic"

	"github.com/fastfhir/fhir-r5-go/model/node"
	"github.com/fastfhir/fhir-r5-go/model/primitive"
)

const (
	stateLive int32 = iota
	stateDestroyed
)

// Base carries the fields shared by all resources: id, type and reference count.
// Resource implementations embed it.
type Base struct {
	id    string
	typ   ResourceType
	refs  int32
	state int32
}

// Init sets the type and id and gives the resource its first reference.
func (b *Base) Init(t ResourceType, id string) error {
	if !t.IsValid() {
		return NewError(KindInvalidArgument, "resourceType", "invalid resource type %d", int(t))
	}
	if !primitive.ValidateID(id) {
		return NewError(KindInvalidArgument, "id", "invalid resource id %q", id)
	}
	b.typ = t
	b.id = id
	atomic.StoreInt32(&b.refs, 1)
	atomic.StoreInt32(&b.state, stateLive)
	return nil
}

// CloneBase returns a Base with the same type and id and a single reference.
func (b *Base) CloneBase() Base {
	return Base{id: b.id, typ: b.typ, refs: 1}
}

func (b *Base) ResourceType() ResourceType {
	return b.typ
}

func (b *Base) ResourceId() (string, bool) {
	return b.id, b.id != ""
}

// ID returns the resource id.
func (b *Base) ID() string {
	return b.id
}

// SetID replaces the id if it satisfies the id grammar.
func (b *Base) SetID(id string) error {
	if !primitive.ValidateID(id) {
		return NewError(KindInvalidArgument, "id", "invalid resource id %q", id)
	}
	b.id = id
	return nil
}

// RefCount returns the current number of references.
func (b *Base) RefCount() int {
	return int(atomic.LoadInt32(&b.refs))
}

// Validate checks the id and type; resource types extend it with their own rules.
func (b *Base) Validate() error {
	if !b.typ.IsValid() {
		return NewError(KindValidationFailed, "resourceType", "resource type not set")
	}
	if !primitive.ValidateID(b.id) {
		return NewError(KindValidationFailed, "id", "invalid resource id %q", b.id)
	}
	return nil
}

// DisplayName defaults to the resource type name.
func (b *Base) DisplayName() string {
	return b.typ.String()
}

// JSONObject starts the JSON form of the resource with resourceType and id.
func (b *Base) JSONObject() *node.Object {
	return node.NewObject().
		Set("resourceType", b.typ.String()).
		Set("id", b.id)
}

func (b *Base) base() *Base {
	return b
}

func (b *Base) destroyed() bool {
	return atomic.LoadInt32(&b.state) == stateDestroyed
}
