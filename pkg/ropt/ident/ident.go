package ident

import (
	"net/url"
	"strings"
)

const urnScheme = "urn"

// IdentifierKind tags the three mutually exclusive identifier classes.
type IdentifierKind int

const (
	NotURI IdentifierKind = iota
	URL
	URN
)

func (k IdentifierKind) String() string {
	switch k {
	case URL:
		return "url"
	case URN:
		return "urn"
	default:
		return "noturi"
	}
}

// Identifier is a classified absolute URI: a URL-like or URN-like
// identifier, or NotURI for anything that is not a well-formed absolute
// URI. Values are constructed only by ClassifyIdentifier, so any URL or
// URN identifier is backed by a string verified to be a well-formed
// absolute URI at construction time.
type Identifier struct {
	kind IdentifierKind
	uri  *url.URL
}

func (i Identifier) Kind() IdentifierKind {
	return i.kind
}

// URI returns the verified absolute URI, nil for NotURI.
func (i Identifier) URI() *url.URL {
	return i.uri
}

func (i Identifier) IsURL() bool {
	return i.kind == URL
}

func (i Identifier) IsURN() bool {
	return i.kind == URN
}

func (i Identifier) IsNotURI() bool {
	return i.kind == NotURI
}

// ClassifyIdentifier layers identifier classification on top of
// ClassifyURI: an absolute URI with the "urn" scheme (compared case
// insensitively) is a URN, an absolute URI with any other scheme is a
// URL, and everything else is NotURI.
func ClassifyIdentifier(s string) Identifier {
	c := ClassifyURI(s)
	if !c.IsAbsolute() {
		return Identifier{kind: NotURI}
	}

	if strings.EqualFold(c.URI().Scheme, urnScheme) {
		return Identifier{kind: URN, uri: c.URI()}
	}
	return Identifier{kind: URL, uri: c.URI()}
}
