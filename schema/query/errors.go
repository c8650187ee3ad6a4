package query

import "fmt"

// ParamType identifies which of the four query parameters a validation error
// relates to.
type ParamType string

// Parameter types reported by InvalidQueryError.
const (
	ParamSort    ParamType = "sort"
	ParamFilter  ParamType = "filter"
	ParamFields  ParamType = "fields"
	ParamInclude ParamType = "include"
)

// InvalidQueryError is the only error kind produced by the query parsers. It
// carries the resource type the parameter was checked against, the offending
// parameter value and the parameter it was found in. There is no distinction
// between malformed and disallowed input: both end up here, differentiated
// only by the reported Param.
type InvalidQueryError struct {
	// Resource is the type name of the schema the parameter was checked
	// against.
	Resource string
	// Param is the offending value: a field name for sort and filter, a type
	// name or a coma separated list of field names for fields, a full
	// relationship path for include.
	Param string
	// ParamType tells which query parameter Param was found in.
	ParamType ParamType
}

// Error returns the error as string.
func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("invalid %s parameter `%s' for resource `%s'", e.ParamType, e.Param, e.Resource)
}
