package query

import (
	"strings"

	"github.com/rs/query-layer/schema"
)

// SetFields validates per-type sparse fieldset requests and records them in
// the spec. Each key of fields names a resource type, resolved against the
// spec's schema: the schema's own type name or the name of one of its
// relationships. An unresolvable type name aborts the parse with that name
// as the offending parameter.
//
// Each value is a coma separated field list checked against the resolved
// type's own fields. Unlike sort and filter, violations are batched: all
// disallowed fields of a list are reported in a single error, joined by
// comas. Repeated fields collapse, order is irrelevant. An empty map leaves
// the spec untouched.
func (q *Spec) SetFields(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	if q.Fields == nil {
		q.Fields = map[string]schema.FieldSet{}
	}
	for typeName, list := range fields {
		ts := q.Schema.SchemaForType(typeName)
		if ts == nil {
			return &InvalidQueryError{Resource: q.Schema.Type, Param: typeName, ParamType: ParamFields}
		}
		requested := schema.NewFieldSet(strings.Split(list, ",")...)
		if excess := requested.Diff(ts.Fields); len(excess) > 0 {
			return &InvalidQueryError{
				Resource:  q.Schema.Type,
				Param:     strings.Join(excess, ","),
				ParamType: ParamFields,
			}
		}
		q.Fields[typeName] = requested
	}
	return nil
}
