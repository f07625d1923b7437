package ident

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// uriView flattens a classification for structural comparison.
type uriView struct {
	Kind   string
	Scheme string
	Host   string
	Path   string
	Text   string
}

func viewOf(c URIClass) uriView {
	v := uriView{Kind: c.Kind().String()}
	if u := c.URI(); u != nil {
		v.Scheme = u.Scheme
		v.Host = u.Host
		v.Path = u.Path
		v.Text = u.String()
	}
	return v
}

func TestClassifyURI(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  uriView
	}{
		{
			name:  "absolute https",
			input: "https://example.com/a/b",
			want: uriView{
				Kind: "absolute", Scheme: "https", Host: "example.com",
				Path: "/a/b", Text: "https://example.com/a/b",
			},
		},
		{
			name:  "absolute urn",
			input: "urn:isbn:0451450523",
			want: uriView{
				Kind: "absolute", Scheme: "urn",
				Text: "urn:isbn:0451450523",
			},
		},
		{
			name:  "relative path",
			input: "/a/b",
			want:  uriView{Kind: "relative", Path: "/a/b", Text: "/a/b"},
		},
		{
			name:  "relative without leading slash",
			input: "a/b?q=1",
			want:  uriView{Kind: "relative", Path: "a/b", Text: "a/b?q=1"},
		},
		{
			name:  "empty string",
			input: "",
			want:  uriView{Kind: "invalid"},
		},
		{
			name:  "control character",
			input: "not a uri at all \x00",
			want:  uriView{Kind: "invalid"},
		},
		{
			name:  "malformed percent escape",
			input: "https://example.com/%zz",
			want:  uriView{Kind: "invalid"},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := viewOf(ClassifyURI(tc.input))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("classification mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifyURI_Exhaustive(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"", " ", "https://example.com", "/x", "x", "urn:a:b",
		"://missing-scheme", "https://", "%", "\x7f", "mailto:a@b.c",
	}

	for _, in := range inputs {
		c := ClassifyURI(in)

		tags := 0
		if c.IsAbsolute() {
			tags++
		}
		if c.IsRelative() {
			tags++
		}
		if c.IsInvalid() {
			tags++
		}
		if tags != 1 {
			t.Fatalf("input %q: expected exactly one class, got %d", in, tags)
		}

		if c.IsInvalid() && c.URI() != nil {
			t.Fatalf("input %q: invalid class must carry no URI", in)
		}
		if !c.IsInvalid() && c.URI() == nil {
			t.Fatalf("input %q: %s class must carry a URI", in, c.Kind())
		}
	}
}

func TestClassifyURI_AbsoluteHasPriority(t *testing.T) {
	t.Parallel()

	c := ClassifyURI("https://example.com/a")
	if !c.IsAbsolute() {
		t.Fatalf("expected absolute, got %s", c.Kind())
	}
}

func TestClassifyURI_Idempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"https://example.com/a/b", "urn:isbn:0451450523", "/rel/x"} {
		first := ClassifyURI(in)
		again := ClassifyURI(first.URI().String())

		if diff := cmp.Diff(viewOf(first), viewOf(again)); diff != "" {
			t.Fatalf("re-classification of %q diverged (-first +again):\n%s", in, diff)
		}
	}
}
