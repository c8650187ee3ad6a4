// Package schema defines the query surface of resource types: for each type,
// the set of its own fields and the relationships leading to other types.
// Schemas are pure data supplied by the caller; the schema/query package
// validates raw query parameters against them.
package schema

// FieldSet holds a set of field names valid for a resource type.
type FieldSet map[string]bool

// NewFieldSet builds a FieldSet from a list of field names.
func NewFieldSet(names ...string) FieldSet {
	fs := make(FieldSet, len(names))
	for _, n := range names {
		fs[n] = true
	}
	return fs
}

// Has tells if name is part of the set.
func (fs FieldSet) Has(name string) bool {
	return fs[name]
}

// Diff returns the names part of fs but missing from allowed. The order of
// the returned names is not specified.
func (fs FieldSet) Diff(allowed FieldSet) []string {
	var missing []string
	for name := range fs {
		if !allowed.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Schema describes a resource type: its type name as exposed to clients, its
// own field names and its relationships to other types. Relationships point
// to other Schemas and may form cycles when resources reference each other,
// including self references.
type Schema struct {
	// Type is the resource type name.
	Type string
	// Fields is the set of the type's own field names.
	Fields FieldSet
	// Relationships maps relationship names to the related type's schema.
	Relationships map[string]*Schema
}

// HasField tells if the schema declares the given field.
func (s *Schema) HasField(name string) bool {
	return s.Fields.Has(name)
}

// Relationship returns the schema reached through the named relationship, or
// nil if the schema does not declare it.
func (s *Schema) Relationship(name string) *Schema {
	return s.Relationships[name]
}

// SchemaForType resolves a type name against the schema: the schema itself
// when the name matches its own type name, otherwise the schema of the
// relationship whose name matches. Returns nil when neither does.
func (s *Schema) SchemaForType(name string) *Schema {
	if name == s.Type {
		return s
	}
	return s.Relationships[name]
}
