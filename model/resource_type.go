package model

//go:generate go run ../internal/cmd/generate -definitions ../internal/cmd/generate/definitions.json -out ..

// ResourceType identifies the kind of a resource.
// The zero value is TypeUnknown.
type ResourceType int

var resourceTypesByName map[string]ResourceType

func init() {
	resourceTypesByName = make(map[string]ResourceType, len(resourceTypeNames))
	for t, name := range resourceTypeNames {
		if name != "" {
			resourceTypesByName[name] = ResourceType(t)
		}
	}
}

// String returns the resource type name as used in resourceType, or "" for
// TypeUnknown and out-of-range values.
func (t ResourceType) String() string {
	if !t.IsValid() {
		return ""
	}
	return resourceTypeNames[t]
}

// IsValid reports whether t names a resource type.
func (t ResourceType) IsValid() bool {
	return t > TypeUnknown && t < typeCount
}

// ResourceTypeFromString returns the type named name, or TypeUnknown.
// Names are case-sensitive.
func ResourceTypeFromString(name string) ResourceType {
	t, ok := resourceTypesByName[name]
	if !ok {
		return TypeUnknown
	}
	return t
}

// ResourceTypes returns every valid resource type in declaration order.
func ResourceTypes() []ResourceType {
	types := make([]ResourceType, 0, int(typeCount)-1)
	for t := TypeUnknown + 1; t < typeCount; t++ {
		types = append(types, t)
	}
	return types
}
