package query

import (
	"strings"

	"github.com/rs/query-layer/schema"
)

// Sort is a list of fields to sort on, in request order.
type Sort []SortField

// SortField holds a single sort field and its direction.
type SortField struct {
	// Name is the name of the field to sort on.
	Name string
	// Reversed instructs to reverse the sorting if set to true.
	Reversed bool
}

// SetSort parses a sort expression and sets it as the spec's sort order. A
// sort expression is a list of fields separated by comas (,). A field sort
// is reversed if preceded by a minus sign (-). Every field must be part of
// allowed; the first one that is not aborts the parse. An empty expression
// leaves the spec untouched.
func (q *Spec) SetSort(sort string, allowed schema.FieldSet) error {
	if sort == "" {
		return nil
	}
	s := Sort{}
	for _, f := range strings.Split(sort, ",") {
		sf := SortField{Name: f}
		// If the field starts with - (to indicate descended sort), shift it
		// before the allow-list lookup.
		if strings.HasPrefix(f, "-") {
			sf.Name = f[1:]
			sf.Reversed = true
		}
		// An empty name is never allowed, so stray comas fail here too
		// rather than being skipped.
		if !allowed.Has(sf.Name) {
			return &InvalidQueryError{Resource: q.Schema.Type, Param: sf.Name, ParamType: ParamSort}
		}
		s = append(s, sf)
	}
	q.Sort = s
	return nil
}
