package ident

import (
	"testing"
)

func TestClassifyIdentifier(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  IdentifierKind
	}{
		{"urn", "urn:isbn:0451450523", URN},
		{"urn uppercase scheme", "URN:example:animal:ferret", URN},
		{"https url", "https://example.com/x", URL},
		{"mailto url", "mailto:user@example.com", URL},
		{"ftp url", "ftp://host/file", URL},
		{"relative path", "/relative/path", NotURI},
		{"empty", "", NotURI},
		{"garbage", "not a uri at all \x00", NotURI},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ClassifyIdentifier(tc.input)
			if got.Kind() != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got.Kind())
			}

			if tc.want == NotURI {
				if got.URI() != nil {
					t.Fatal("NotURI must carry no URI")
				}
				return
			}
			if got.URI() == nil {
				t.Fatal("classified identifier must carry its URI")
			}
		})
	}
}

func TestClassifyIdentifier_Exhaustive(t *testing.T) {
	t.Parallel()

	inputs := []string{"urn:x:y", "https://a/b", "/r", "", "x", "URN:x:y"}

	for _, in := range inputs {
		id := ClassifyIdentifier(in)

		tags := 0
		if id.IsURL() {
			tags++
		}
		if id.IsURN() {
			tags++
		}
		if id.IsNotURI() {
			tags++
		}
		if tags != 1 {
			t.Fatalf("input %q: expected exactly one class, got %d", in, tags)
		}
	}
}

func TestClassifyIdentifier_AgreesWithURIClassifier(t *testing.T) {
	t.Parallel()

	inputs := []string{"urn:x:y", "https://a/b", "/r", "", "a b"}

	for _, in := range inputs {
		id := ClassifyIdentifier(in)
		c := ClassifyURI(in)

		if id.IsNotURI() == c.IsAbsolute() {
			t.Fatalf("input %q: identifier class %s disagrees with URI class %s",
				in, id.Kind(), c.Kind())
		}
	}
}
