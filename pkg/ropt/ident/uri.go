package ident

import (
	"net/url"
)

// URIKind tags the three mutually exclusive well-formedness classes.
type URIKind int

const (
	InvalidURI URIKind = iota
	RelativeURI
	AbsoluteURI
)

func (k URIKind) String() string {
	switch k {
	case AbsoluteURI:
		return "absolute"
	case RelativeURI:
		return "relative"
	default:
		return "invalid"
	}
}

// URIClass is the outcome of classifying a string. It carries the parsed
// URI for the absolute and relative classes and nothing for the invalid
// class. Values are constructed only by ClassifyURI.
type URIClass struct {
	kind URIKind
	uri  *url.URL
}

func (c URIClass) Kind() URIKind {
	return c.kind
}

// URI returns the parsed URI, nil for the invalid class.
func (c URIClass) URI() *url.URL {
	return c.uri
}

func (c URIClass) IsAbsolute() bool {
	return c.kind == AbsoluteURI
}

func (c URIClass) IsRelative() bool {
	return c.kind == RelativeURI
}

func (c URIClass) IsInvalid() bool {
	return c.kind == InvalidURI
}

// ClassifyURI classifies s as an absolute URI, a relative URI reference or
// an invalid string. Classification is total: every string, including the
// empty one, falls into exactly one class. Absolute takes priority over
// relative. The carried URI is parsed from s itself, preserving its
// textual form.
func ClassifyURI(s string) URIClass {
	if s == "" {
		return URIClass{kind: InvalidURI}
	}

	u, err := url.Parse(s)
	if err != nil {
		return URIClass{kind: InvalidURI}
	}

	if u.IsAbs() {
		return URIClass{kind: AbsoluteURI, uri: u}
	}
	return URIClass{kind: RelativeURI, uri: u}
}
