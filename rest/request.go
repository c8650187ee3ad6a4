// Package rest binds the query parser to net/http: it extracts the sort,
// include, filter[...] and fields[...] query-string parameters from a
// request, runs them through schema/query and turns validation failures into
// HTTP errors. The parsed spec is attached to the request context so that
// downstream handlers can build their data query from it.
package rest

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/query-layer/schema"
	"github.com/rs/query-layer/schema/query"
)

// bracketKey extracts name from keys of the form prefix[name].
func bracketKey(key, prefix string) (string, bool) {
	if strings.HasPrefix(key, prefix+"[") && strings.HasSuffix(key, "]") {
		return key[len(prefix)+1 : len(key)-1], true
	}
	return "", false
}

// ParseParams splits raw query-string values into the four parameter slots
// consumed by query.Parse. Filter and sparse fieldset parameters use a
// bracket grammar (filter[name]=value, fields[type]=list). When a key is
// repeated, the last value wins. Keys that match none of the four slots are
// ignored: they belong to other layers (pagination, timeouts).
func ParseParams(values url.Values) query.Params {
	p := query.Params{}
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		val := vals[len(vals)-1]
		switch key {
		case "sort":
			p.Sort = val
		case "include":
			p.Include = val
		default:
			if name, ok := bracketKey(key, "filter"); ok {
				if p.Filter == nil {
					p.Filter = map[string]string{}
				}
				p.Filter[name] = val
			} else if name, ok := bracketKey(key, "fields"); ok {
				if p.Fields == nil {
					p.Fields = map[string]string{}
				}
				p.Fields[name] = val
			}
		}
	}
	return p
}

// ParseRequest parses and validates the request's query string against the
// resource schema. On failure it returns a 422 error ready to be sent as the
// response.
func ParseRequest(r *http.Request, s *schema.Schema) (*query.Spec, *Error) {
	q, err := query.Parse(ParseParams(r.URL.Query()), s)
	if err != nil {
		return nil, NewError(err)
	}
	return q, nil
}
