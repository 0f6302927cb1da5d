package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stringerID struct{ raw string }

func (s stringerID) String() string { return s.raw }

func TestSameIDCoercesNumbers(t *testing.T) {
	cases := []struct {
		a, b any
		want bool
	}{
		{3, "3", true},
		{int64(7), 7, true},
		{uint8(2), " 2 ", true},
		{float64(4), 4, true},
		{4.5, 4, false},
		{"abc", "abc", true},
		{"abc", "abd", false},
		{stringerID{"uuid-1"}, "uuid-1", true},
		{nil, nil, true},
		{nil, 0, false},
	}
	for _, tc := range cases {
		if got := SameID(tc.a, tc.b); got != tc.want {
			t.Fatalf("SameID(%#v, %#v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSequence(t *testing.T) {
	type id int

	if _, ok := Sequence("abc"); ok {
		t.Fatalf("strings must be scalars")
	}
	if _, ok := Sequence([]byte("abc")); ok {
		t.Fatalf("byte slices must be scalars")
	}
	if _, ok := Sequence(nil); ok {
		t.Fatalf("nil must not be a sequence")
	}

	items, ok := Sequence([]id{1, 2})
	if !ok {
		t.Fatalf("expected typed slice to be a sequence")
	}
	if diff := cmp.Diff([]any{id(1), id(2)}, items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}

	strs, ok := Sequence([]string{"a", "b"})
	if !ok || len(strs) != 2 || strs[1] != "b" {
		t.Fatalf("unexpected string sequence %#v", strs)
	}

	array, ok := Sequence([2]int{5, 6})
	if !ok || array[0] != 5 {
		t.Fatalf("unexpected array sequence %#v", array)
	}
}

func TestSequenceDoesNotAlias(t *testing.T) {
	src := []any{1, 2}
	items, _ := Sequence(src)
	items[0] = 9
	if src[0] != 1 {
		t.Fatalf("expected Sequence to copy its input")
	}
}

func TestStringForm(t *testing.T) {
	if got := StringForm(nil); got != "" {
		t.Fatalf("nil: got %q", got)
	}
	if got := StringForm(42); got != "42" {
		t.Fatalf("int: got %q", got)
	}
	if got := StringForm(stringerID{"x"}); got != "x" {
		t.Fatalf("stringer: got %q", got)
	}
}

func TestHumanize(t *testing.T) {
	cases := map[string]string{
		"role_id":      "Role",
		"tag_ids":      "Tag",
		"publishedAt":  "Published at",
		"avatar-image": "Avatar image",
		"line2":        "Line 2",
		"_id":          "Id",
		"":             "",
	}
	for in, want := range cases {
		if got := Humanize(in); got != want {
			t.Fatalf("Humanize(%q) = %q, want %q", in, got, want)
		}
	}
}
