package query

import (
	"reflect"
	"strings"
	"testing"

	"github.com/rs/query-layer/schema"
)

// testSchema builds a users/posts/comments schema graph with a cycle between
// users and posts.
func testSchema() *schema.Schema {
	users := &schema.Schema{
		Type:   "users",
		Fields: schema.NewFieldSet("id", "name", "age"),
	}
	comments := &schema.Schema{
		Type:   "comments",
		Fields: schema.NewFieldSet("id", "body"),
	}
	posts := &schema.Schema{
		Type:   "posts",
		Fields: schema.NewFieldSet("id", "title"),
	}
	users.Relationships = map[string]*schema.Schema{"posts": posts}
	posts.Relationships = map[string]*schema.Schema{"author": users, "comments": comments}
	comments.Relationships = map[string]*schema.Schema{"author": users}
	return users
}

func TestParse(t *testing.T) {
	s := testSchema()
	q, err := Parse(Params{
		Fields:  map[string]string{"users": "id,name", "posts": "title"},
		Include: "posts,posts.comments",
		Filter:  map[string]string{"name": "John"},
		Sort:    "-age,name",
	}, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := &Spec{
		Schema: s,
		Sort:   Sort{{Name: "age", Reversed: true}, {Name: "name"}},
		Filter: Filter{"name": "John"},
		Fields: map[string]schema.FieldSet{
			"users": schema.NewFieldSet("id", "name"),
			"posts": schema.NewFieldSet("title"),
		},
		Include: IncludeTree{"posts": IncludeTree{"comments": IncludeTree{}}},
	}
	if !reflect.DeepEqual(q, want) {
		t.Errorf("invalid spec:\ngot:  %#v\nwant: %#v", q, want)
	}
}

func TestParseEmptyParamsIsNoop(t *testing.T) {
	s := testSchema()
	q, err := Parse(Params{}, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(q, NewSpec(s)) {
		t.Errorf("invalid spec:\ngot:  %#v\nwant: %#v", q, NewSpec(s))
	}
}

func TestParseOrderOfPrecedence(t *testing.T) {
	s := testSchema()
	// With all four parameters invalid at once, the fields error wins, then
	// include, then filter, then sort.
	params := Params{
		Fields:  map[string]string{"bogus": "id"},
		Include: "bogus",
		Filter:  map[string]string{"bogus": "x"},
		Sort:    "bogus",
	}
	tests := []struct {
		name string
		trim func(*Params)
		want ParamType
	}{
		{"fields first", func(p *Params) {}, ParamFields},
		{"then include", func(p *Params) { p.Fields = nil }, ParamInclude},
		{"then filter", func(p *Params) { p.Fields = nil; p.Include = "" }, ParamFilter},
		{"then sort", func(p *Params) { p.Fields = nil; p.Include = ""; p.Filter = nil }, ParamSort},
	}
	for i := range tests {
		tt := tests[i]
		t.Run(tt.name, func(t *testing.T) {
			p := params
			tt.trim(&p)
			q, err := Parse(p, s)
			if q != nil {
				t.Errorf("partial spec returned on error: %#v", q)
			}
			e, ok := err.(*InvalidQueryError)
			if !ok {
				t.Fatalf("unexpected error type: %#v", err)
			}
			if e.ParamType != tt.want {
				t.Errorf("invalid param type:\ngot:  %v\nwant: %v", e.ParamType, tt.want)
			}
		})
	}
}

// rawParams rebuilds raw parameters equivalent to an already parsed spec.
func rawParams(q *Spec) Params {
	p := Params{
		Include: strings.Join(q.Include.Paths(), ","),
		Filter:  map[string]string{},
		Fields:  map[string]string{},
	}
	sorts := make([]string, 0, len(q.Sort))
	for _, sf := range q.Sort {
		if sf.Reversed {
			sorts = append(sorts, "-"+sf.Name)
		} else {
			sorts = append(sorts, sf.Name)
		}
	}
	p.Sort = strings.Join(sorts, ",")
	for k, v := range q.Filter {
		p.Filter[k] = v
	}
	for typeName, fs := range q.Fields {
		names := make([]string, 0, len(fs))
		for name := range fs {
			names = append(names, name)
		}
		p.Fields[typeName] = strings.Join(names, ",")
	}
	return p
}

func TestParseRoundTrip(t *testing.T) {
	s := testSchema()
	q, err := Parse(Params{
		Fields:  map[string]string{"users": "id,name"},
		Include: "posts.author,posts.comments,posts",
		Filter:  map[string]string{"name": "John", "age": "42"},
		Sort:    "name,-age,name",
	}, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := Parse(rawParams(q), s)
	if err != nil {
		t.Fatalf("unexpected error on reparse: %v", err)
	}
	if !reflect.DeepEqual(again, q) {
		t.Errorf("reparse not stable:\ngot:  %#v\nwant: %#v", again, q)
	}
}
