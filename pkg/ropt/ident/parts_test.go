package ident

import (
	"net/url"
	"strings"
	"testing"
)

func mustAbs(t *testing.T, s string) *url.URL {
	t.Helper()

	c := ClassifyURI(s)
	if !c.IsAbsolute() {
		t.Fatalf("test input %q is not an absolute URI", s)
	}
	return c.URI()
}

func TestParts_Split(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input     string
		container string
		leaf      string
	}{
		{"https://example.com/a/b", "https://example.com/a", "b"},
		{"https://example.com/docs/readme.txt", "https://example.com/docs", "readme.txt"},
		{"https://example.com/a/", "https://example.com/a", ""},
		{"urn:isbn:0451450523", "", ""},
		{"mailto:user@example.com", "", ""},
	}

	for _, tc := range cases {
		u := mustAbs(t, tc.input)

		if got := ContainerPart(u); got != tc.container {
			t.Fatalf("%q: expected container %q, got %q", tc.input, tc.container, got)
		}
		if got := LeafPart(u); got != tc.leaf {
			t.Fatalf("%q: expected leaf %q, got %q", tc.input, tc.leaf, got)
		}
	}
}

func TestParts_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"https://example.com/a/b",
		"https://example.com/one/two/three",
		"ftp://host/dir/file.bin",
	}

	for _, in := range inputs {
		u := mustAbs(t, in)
		s := u.String()

		if strings.LastIndexByte(s, '/') <= 0 {
			t.Fatalf("test input %q has no separator past position zero", in)
		}

		joined := ContainerPart(u) + "/" + LeafPart(u)
		if joined != s {
			t.Fatalf("round trip mismatch: %q != %q", joined, s)
		}
	}
}
