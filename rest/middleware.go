package rest

import (
	"net/http"

	"github.com/rs/query-layer/schema"
)

// NewMiddleware returns a net/http middleware parsing the query string of
// every request against the resource schema. Requests with a valid query get
// the parsed spec attached to their context; invalid ones are answered with
// a 422 JSON error without reaching the wrapped handler.
//
// The returned function is compatible with middleware chainers such as
// alice.
func NewMiddleware(s *schema.Schema) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q, err := ParseRequest(r, s)
			if err != nil {
				send(w, err.Code, formatError(err))
				return
			}
			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), q)))
		})
	}
}
