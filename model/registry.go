package model

import (
	"slices"
	"strings"
	"sync"

	"github.com/buger/jsonparser"
	"github.com/rs/zerolog/log"

	"github.com/fastfhir/fhir-r5-go/model/node"
)

// Registration binds a resource type to its constructor and parser.
type Registration struct {
	Name string
	Type ResourceType
	// New creates an empty resource with the given id.
	New func(id string) (Resource, error)
	// Parse builds a resource from a JSON object.
	Parse func(v node.Value) (Resource, error)
}

// Registry maps resource type names and enum values to registrations.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Registration
	byType map[ResourceType]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: map[string]Registration{},
		byType: map[ResourceType]string{},
	}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry resource packages register with.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds reg. The name must be the type's name. Registering a name and
// type that are already bound to each other is a no-op; binding either to
// something else is an error.
func (r *Registry) Register(reg Registration) error {
	switch {
	case reg.Name == "":
		return NewError(KindInvalidArgument, "name", "empty resource type name")
	case !reg.Type.IsValid():
		return NewError(KindInvalidArgument, "type", "invalid resource type for %s", reg.Name)
	case reg.Name != reg.Type.String():
		return NewError(KindInvalidArgument, "name", "name %s does not match resource type %s", reg.Name, reg.Type)
	case reg.New == nil || reg.Parse == nil:
		return NewError(KindInvalidArgument, "", "%s registered without constructor or parser", reg.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byName[reg.Name]; ok {
		if existing.Type != reg.Type {
			return NewError(KindInvalidArgument, "type",
				"%s already registered as %s", reg.Name, existing.Type)
		}
		return nil
	}
	if name, ok := r.byType[reg.Type]; ok {
		return NewError(KindInvalidArgument, "name",
			"%s already registered under name %s", reg.Type, name)
	}

	r.byName[reg.Name] = reg
	r.byType[reg.Type] = reg.Name
	return nil
}

// Lookup returns the registration for name. An exact match wins over a
// case-insensitive one.
func (r *Registry) Lookup(name string) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if reg, ok := r.byName[name]; ok {
		return reg, true
	}
	for n, reg := range r.byName {
		if strings.EqualFold(n, name) {
			return reg, true
		}
	}
	return Registration{}, false
}

// LookupType returns the registration for t.
func (r *Registry) LookupType(t ResourceType) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.byType[t]
	if !ok {
		return Registration{}, false
	}
	return r.byName[name], true
}

// Entries returns all registrations sorted by name.
func (r *Registry) Entries() []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Registration, 0, len(r.byName))
	for _, reg := range r.byName {
		entries = append(entries, reg)
	}
	slices.SortFunc(entries, func(a, b Registration) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries
}

// Count returns the number of registered types.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

// Reset removes all registrations.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName = map[string]Registration{}
	r.byType = map[ResourceType]string{}
}

// CreateByName creates a resource of the type registered under name.
func (r *Registry) CreateByName(name, id string) (Resource, error) {
	reg, ok := r.Lookup(name)
	if !ok {
		log.Debug().Str("resourceType", name).Msg("resource type not registered")
		return nil, NewError(KindNotFound, "resourceType", "resource type %q not registered", name)
	}
	return reg.New(id)
}

// CreateByType creates a resource of type t.
func (r *Registry) CreateByType(t ResourceType, id string) (Resource, error) {
	reg, ok := r.LookupType(t)
	if !ok {
		log.Debug().Int("resourceType", int(t)).Msg("resource type not registered")
		return nil, NewError(KindNotFound, "resourceType", "resource type %d not registered", int(t))
	}
	return reg.New(id)
}

// Parse decodes a JSON resource document, dispatching on its resourceType.
func (r *Registry) Parse(data []byte) (Resource, error) {
	v, err := node.Parse(data)
	if err != nil {
		return nil, WrapError(err, KindInvalidJSON, "", "parse resource")
	}
	return r.ParseValue(v)
}

// ParseValue is like Parse for an already scanned document.
func (r *Registry) ParseValue(v node.Value) (Resource, error) {
	rt, err := PeekResourceType(v)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	reg, ok := r.byName[rt]
	r.mu.RUnlock()
	if !ok {
		return nil, NewError(KindNotFound, "resourceType", "resource type %q not registered", rt)
	}
	return reg.Parse(v)
}

// PeekResourceType returns the resourceType member of a JSON object.
func PeekResourceType(v node.Value) (string, error) {
	if v.Type() != jsonparser.Object {
		return "", NewError(KindInvalidJSON, "", "resource must be a JSON object")
	}
	rt, ok := v.Get("resourceType").AsString()
	if !ok || rt == "" {
		return "", NewError(KindInvalidJSON, "resourceType", "missing resourceType")
	}
	return rt, nil
}

// Register adds reg to the default registry.
func Register(reg Registration) error {
	return defaultRegistry.Register(reg)
}

// MustRegister is Register for use in init functions.
func MustRegister(reg Registration) {
	if err := Register(reg); err != nil {
		panic(err)
	}
}

// CreateByName creates a resource through the default registry.
func CreateByName(name, id string) (Resource, error) {
	return defaultRegistry.CreateByName(name, id)
}

// CreateByType creates a resource through the default registry.
func CreateByType(t ResourceType, id string) (Resource, error) {
	return defaultRegistry.CreateByType(t, id)
}

// Parse decodes a resource document through the default registry.
func Parse(data []byte) (Resource, error) {
	return defaultRegistry.Parse(data)
}
