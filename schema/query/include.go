package query

import (
	"sort"
	"strings"
)

// IncludeTree is the merged tree of requested relationship paths. Each key
// is a relationship name, each value the tree of deeper includes under it; a
// leaf maps to an empty tree. The tree is set-like: the order in which paths
// were supplied is not preserved.
type IncludeTree map[string]IncludeTree

// add merges a relationship path into the tree. When the head of the path
// collides with an existing branch the merge recurses into that branch, so
// sibling branches are preserved at every depth.
func (t IncludeTree) add(path []string) {
	if len(path) == 0 {
		return
	}
	sub := t[path[0]]
	if sub == nil {
		sub = IncludeTree{}
		t[path[0]] = sub
	}
	sub.add(path[1:])
}

// Paths flattens the tree back into sorted dot separated paths, one per
// leaf. A single-branch tree yields the path that produced it; merged trees
// yield one path per distinct leaf.
func (t IncludeTree) Paths() []string {
	var paths []string
	for name, sub := range t {
		if len(sub) == 0 {
			paths = append(paths, name)
			continue
		}
		for _, p := range sub.Paths() {
			paths = append(paths, name+"."+p)
		}
	}
	sort.Strings(paths)
	return paths
}

// SetInclude parses an include expression and merges it into the spec's
// include tree. An include expression is a list of relationship paths
// separated by comas (,), each path a dot separated chain of relationship
// names walked from the spec's schema: each segment must be a relationship
// of the schema reached through the previous segments. A path that does not
// fully resolve aborts the parse, reporting the whole path rather than the
// failing segment. An empty expression leaves the spec untouched.
//
// The walk is bounded by the length of the supplied path, never by the
// schema's shape, so cyclic schemas are handled without special casing.
func (q *Spec) SetInclude(include string) error {
	if include == "" {
		return nil
	}
	if q.Include == nil {
		q.Include = IncludeTree{}
	}
	for _, token := range strings.Split(include, ",") {
		path := strings.Split(token, ".")
		// Resolve every segment before touching the tree: an empty segment
		// (stray coma or trailing dot) is never a relationship name, so it
		// fails here instead of being dropped.
		node := q.Schema
		for _, seg := range path {
			if node = node.Relationship(seg); node == nil {
				return &InvalidQueryError{Resource: q.Schema.Type, Param: token, ParamType: ParamInclude}
			}
		}
		q.Include.add(path)
	}
	return nil
}
