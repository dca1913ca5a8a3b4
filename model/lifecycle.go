package model

import (
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/fastfhir/fhir-r5-go/model/node"
)

// live returns the base of r and panics with *ReleasedError if r was destroyed.
func live(r Resource) *Base {
	b := r.base()
	if b.destroyed() {
		panic(&ReleasedError{Type: b.typ, ID: b.id})
	}
	return b
}

// Retain adds a reference to r and returns r.
func Retain[R Resource](r R) R {
	b := live(r)
	atomic.AddInt32(&b.refs, 1)
	return r
}

// Release drops a reference to r. Dropping the last reference destroys r;
// any later use of r, including another Release, panics with *ReleasedError.
func Release(r Resource) {
	b := r.base()
	if b.destroyed() {
		log.Warn().
			Str("resourceType", b.typ.String()).
			Str("id", b.id).
			Msg("resource released past zero")
		panic(&ReleasedError{Type: b.typ, ID: b.id})
	}
	if atomic.AddInt32(&b.refs, -1) > 0 {
		return
	}
	if !atomic.CompareAndSwapInt32(&b.state, stateLive, stateDestroyed) {
		panic(&ReleasedError{Type: b.typ, ID: b.id})
	}
	atomic.StoreInt32(&b.refs, 0)
	r.Destroy()
}

// RefCount returns the number of references held on r.
func RefCount(r Resource) int {
	return live(r).RefCount()
}

// Validate checks r against the rules of its resource type.
func Validate(r Resource) error {
	live(r)
	return r.Validate()
}

// IsValid is Validate reduced to a boolean.
func IsValid(r Resource) bool {
	return Validate(r) == nil
}

// ToJSON returns the JSON form of r. It always starts with resourceType and id.
func ToJSON(r Resource) *node.Object {
	live(r)
	return r.ToJSON()
}

// Marshal encodes r as compact JSON without HTML escaping.
func Marshal(r Resource) ([]byte, error) {
	return ToJSON(r).MarshalJSON()
}

// Clone deep copies r. The copy holds one reference and shares nothing with r.
func Clone[R Resource](r R) R {
	live(r)
	c := r.Clone()
	cb := c.base()
	atomic.StoreInt32(&cb.refs, 1)
	atomic.StoreInt32(&cb.state, stateLive)
	return c.(R)
}

// DisplayName returns a label for r, falling back to its type name.
func DisplayName(r Resource) string {
	b := live(r)
	if name := r.DisplayName(); name != "" {
		return name
	}
	return b.typ.String()
}

// IsActive reports whether r is active. Resources without an activity
// notion are never active.
func IsActive(r Resource) bool {
	live(r)
	a, ok := r.(Activity)
	return ok && a.IsActive()
}
