// Package query parses and validates raw query-string parameters (sort,
// filter, sparse fieldsets and relationship includes) against a resource
// schema and turns them into a structured query spec, or rejects them with an
// InvalidQueryError naming the offending parameter.
//
// Parsing is a pure function of the raw parameters and the schema: the
// package never logs, performs no I/O and shares no state across requests,
// so any number of parses may run concurrently against the same schema.
package query

import (
	"github.com/rs/query-layer/schema"
)

// Params holds the raw query parameters consumed by Parse, pre-split by the
// transport layer into the four logical slots. An absent parameter is
// represented by its zero value and parses as a no-op.
type Params struct {
	// Fields maps resource type names to coma separated field lists.
	Fields map[string]string
	// Include is a coma separated list of relationship paths, each path a
	// dot separated chain of relationship names.
	Include string
	// Filter maps field names to raw filter values.
	Filter map[string]string
	// Sort is a coma separated field list. A field is reversed if preceded
	// by a minus sign (-).
	Sort string
}

// Spec is a validated query descriptor. It is built once per request by
// Parse and must be treated as read-only afterwards: every name it holds was
// checked against the schema at build time.
type Spec struct {
	// Schema is the resource schema the spec was validated against. The spec
	// borrows it for the request's lifetime.
	Schema *schema.Schema
	// Sort holds the requested sort fields, in request order. Duplicates are
	// kept as supplied.
	Sort Sort
	// Filter maps filter field names to their raw values.
	Filter Filter
	// Fields maps resource type names to the set of fields requested for
	// that type. A type with no entry gets all its fields; enforcing that
	// convention belongs to the caller.
	Fields map[string]schema.FieldSet
	// Include is the merged tree of requested relationship paths.
	Include IncludeTree
}

// NewSpec creates an empty query spec for the given resource schema.
func NewSpec(s *schema.Schema) *Spec {
	return &Spec{
		Schema:  s,
		Sort:    Sort{},
		Filter:  Filter{},
		Fields:  map[string]schema.FieldSet{},
		Include: IncludeTree{},
	}
}

// Parse validates raw query parameters against the resource schema and
// builds the corresponding spec. Parameters are processed in a fixed order
// (fields, include, filter, sort) so that the reported error is
// deterministic when several parameters are invalid at once; the first
// failure aborts the parse and no partial spec is returned.
func Parse(p Params, s *schema.Schema) (*Spec, error) {
	q := NewSpec(s)
	if err := q.SetFields(p.Fields); err != nil {
		return nil, err
	}
	if err := q.SetInclude(p.Include); err != nil {
		return nil, err
	}
	if err := q.SetFilter(p.Filter, s.Fields); err != nil {
		return nil, err
	}
	if err := q.SetSort(p.Sort, s.Fields); err != nil {
		return nil, err
	}
	return q, nil
}
