package query

import (
	"github.com/rs/query-layer/schema"
)

// Filter maps filter field names to the raw value supplied by the client.
// Values are kept as strings: interpreting them (type coercion, comparison
// operators) belongs to the storage layer consuming the spec.
type Filter map[string]string

// SetFilter validates raw filter pairs against allowed and merges them into
// the spec's filter. Every key must be part of allowed; the first one that
// is not aborts the parse. A key seen more than once keeps the last value.
// An empty map leaves the spec untouched.
func (q *Spec) SetFilter(filter map[string]string, allowed schema.FieldSet) error {
	if len(filter) == 0 {
		return nil
	}
	for key := range filter {
		if !allowed.Has(key) {
			return &InvalidQueryError{Resource: q.Schema.Type, Param: key, ParamType: ParamFilter}
		}
	}
	if q.Filter == nil {
		q.Filter = Filter{}
	}
	for key, value := range filter {
		q.Filter[key] = value
	}
	return nil
}
