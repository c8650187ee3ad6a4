package query

import (
	"reflect"
	"testing"
)

func TestSetFilter(t *testing.T) {
	s := testSchema()
	tests := []struct {
		name   string
		filter map[string]string
		want   Filter
		err    error
	}{
		{"empty", nil, Filter{}, nil},
		{"empty map", map[string]string{}, Filter{}, nil},
		{"single", map[string]string{"name": "John"}, Filter{"name": "John"}, nil},
		{"multiple", map[string]string{"name": "John", "age": "42"}, Filter{"name": "John", "age": "42"}, nil},
		{"raw value kept", map[string]string{"age": ">=42"}, Filter{"age": ">=42"}, nil},
		{"unknown key", map[string]string{"bogus": "x"}, nil,
			&InvalidQueryError{Resource: "users", Param: "bogus", ParamType: ParamFilter}},
		{"empty key", map[string]string{"": "x"}, nil,
			&InvalidQueryError{Resource: "users", Param: "", ParamType: ParamFilter}},
	}
	for i := range tests {
		tt := tests[i]
		t.Run(tt.name, func(t *testing.T) {
			q := NewSpec(s)
			err := q.SetFilter(tt.filter, s.Fields)
			if !reflect.DeepEqual(err, tt.err) {
				t.Errorf("unexpected error:\ngot:  %v\nwant: %v", err, tt.err)
			}
			if err == nil && !reflect.DeepEqual(q.Filter, tt.want) {
				t.Errorf("invalid filter:\ngot:  %#v\nwant: %#v", q.Filter, tt.want)
			}
		})
	}
}

func TestSetFilterLastWriteWins(t *testing.T) {
	s := testSchema()
	q := NewSpec(s)
	if err := q.SetFilter(map[string]string{"name": "John"}, s.Fields); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := q.SetFilter(map[string]string{"name": "Jane"}, s.Fields); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(q.Filter, Filter{"name": "Jane"}) {
		t.Errorf("invalid filter:\ngot:  %#v\nwant: %#v", q.Filter, Filter{"name": "Jane"})
	}
}

func TestSetFilterAbortsBeforeWriting(t *testing.T) {
	s := testSchema()
	q := NewSpec(s)
	err := q.SetFilter(map[string]string{"name": "John", "bogus": "x"}, s.Fields)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(q.Filter) != 0 {
		t.Errorf("filter modified on error: %#v", q.Filter)
	}
}
