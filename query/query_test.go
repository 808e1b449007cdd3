package query_test

import (
	"errors"
	"testing"

	"github.com/creachadair/minjson"
	"github.com/creachadair/minjson/query"
	"github.com/google/go-cmp/cmp"
	"go4.org/mem"
)

const testInput = `{
  "title": "Example",
  "episodes": [
    {"airDate": "2021-11-30", "n": 1, "guests": []},
    {"airDate": "2021-12-07", "n": 2, "guests": ["Alice", "Bob"]}
  ],
  "meta": {"count": 2, "tags": ["a", "b", "c"], "note": null}
}`

func mustRoot(t *testing.T, input string) minjson.Value {
	t.Helper()
	v, _, err := minjson.Scan(mem.S(input))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	return v
}

func TestQuery(t *testing.T) {
	root := mustRoot(t, testInput)

	tests := []struct {
		name string
		q    query.Query
		want string
	}{
		{"Root", query.Path(), testInput},
		{"Key", query.Key("title"), `"Example"`},
		{"Seq", query.Seq{
			query.Key("episodes"),
			query.Index(0),
			query.Key("airDate"),
		}, `"2021-11-30"`},
		{"Path", query.Path("episodes", 1, "guests", 0), `"Alice"`},
		{"NegIndex", query.Path("episodes", -1, "n"), `2`},
		{"LastTag", query.Path("meta", "tags", -1), `"c"`},
		{"FirstTag", query.Path("meta", "tags", -3), `"a"`},
		{"Nested", query.Path("meta", query.Key("tags"), query.Index(1)), `"b"`},
		{"Alt", query.Path("meta", query.Alt{
			query.Key("nonesuch"),
			query.Key("note"),
		}), `null`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, err := query.Eval(root, test.q)
			if err != nil {
				t.Fatalf("Eval failed: %v", err)
			}
			if diff := cmp.Diff(test.want, v.String()); diff != "" {
				t.Errorf("Result: (-want, +got)\n%s", diff)
			}
		})
	}
}

func TestQuery_errors(t *testing.T) {
	root := mustRoot(t, testInput)

	tests := []struct {
		name string
		q    query.Query
		want error
	}{
		{"MissingKey", query.Path("nonesuch"), minjson.ErrKeyNotFound},
		{"KeyOfArray", query.Path("episodes", "n"), minjson.ErrWrongKind},
		{"IndexOfObject", query.Path("meta", 0), minjson.ErrWrongKind},
		{"IndexRange", query.Path("meta", "tags", 3), minjson.ErrIndexRange},
		{"NegIndexRange", query.Path("meta", "tags", -4), minjson.ErrIndexRange},
		{"EmptyArray", query.Path("episodes", 0, "guests", 0), minjson.ErrIndexRange},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, err := query.Eval(root, test.q)
			if !errors.Is(err, test.want) {
				t.Errorf("Eval: got %v, %v; want error %v", v, err, test.want)
			}
		})
	}

	if v, err := query.Eval(root, query.Alt{}); err == nil {
		t.Errorf("Eval empty Alt: got %v, want error", v)
	}

	bad := mustRoot(t, `{"a": [1, ?]}`)
	if _, err := query.Eval(bad, query.Path("a", 1)); !errors.Is(err, minjson.ErrInvalidLiteral) {
		t.Errorf("Eval malformed: got %v, want %v", err, minjson.ErrInvalidLiteral)
	}
}

func TestExists(t *testing.T) {
	root := mustRoot(t, testInput)
	if !query.Exists("meta", "note")(root) {
		t.Error("Exists meta.note: got false, want true")
	}
	if query.Exists("meta", "nonesuch")(root) {
		t.Error("Exists meta.nonesuch: got true, want false")
	}
}

func TestLen(t *testing.T) {
	root := mustRoot(t, testInput)
	tests := []struct {
		q    query.Query
		want int
	}{
		{query.Path(), 3},
		{query.Path("episodes"), 2},
		{query.Path("meta", "tags"), 3},
		{query.Path("episodes", 0, "guests"), 0},
		{query.Path("title"), 7},
		{query.Path("meta", "note"), 0},
	}
	for _, test := range tests {
		v, err := query.Eval(root, test.q)
		if err != nil {
			t.Fatalf("Eval: %v", err)
		}
		if got, err := query.Len(v); err != nil {
			t.Errorf("Len(%v): unexpected error: %v", v, err)
		} else if got != test.want {
			t.Errorf("Len(%v): got %d, want %d", v, got, test.want)
		}
	}

	n, _ := query.Eval(root, query.Path("meta", "count"))
	if got, err := query.Len(n); err == nil {
		t.Errorf("Len(number): got %d, want error", got)
	}
}

func TestRecur(t *testing.T) {
	root := mustRoot(t, testInput)

	dates, err := query.Recur(root, query.Key("airDate"))
	if err != nil {
		t.Fatalf("Recur: %v", err)
	}
	var got []string
	for _, v := range dates {
		got = append(got, v.String())
	}
	if diff := cmp.Diff([]string{`"2021-11-30"`, `"2021-12-07"`}, got); diff != "" {
		t.Errorf("Recur airDate: (-want, +got)\n%s", diff)
	}

	// Visit every value in lexical order.
	all, err := query.Recur(mustRoot(t, `{"a": [1, {"b": 2}], "c": 3}`), query.Path())
	if err != nil {
		t.Fatalf("Recur: %v", err)
	}
	got = got[:0]
	for _, v := range all {
		got = append(got, v.String())
	}
	if diff := cmp.Diff([]string{
		`{"a": [1, {"b": 2}], "c": 3}`, `[1, {"b": 2}]`, `1`, `{"b": 2}`, `2`, `3`,
	}, got); diff != "" {
		t.Errorf("Recur all: (-want, +got)\n%s", diff)
	}

	if vs, err := query.Recur(root, query.Key("nonesuch")); err == nil {
		t.Errorf("Recur nonesuch: got %v, want error", vs)
	}
}
