package rest

import (
	"github.com/rs/query-layer/schema/query"
	"golang.org/x/net/context"
)

type key int

const specKey key = iota

// NewContext stores the parsed query spec in the context.
func NewContext(ctx context.Context, q *query.Spec) context.Context {
	return context.WithValue(ctx, specKey, q)
}

// SpecFromContext extracts the parsed query spec from the given net/context.
func SpecFromContext(ctx context.Context) (*query.Spec, bool) {
	q, ok := ctx.Value(specKey).(*query.Spec)
	return q, ok
}
