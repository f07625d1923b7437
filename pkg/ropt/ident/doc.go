// Package ident classifies strings into URI well-formedness and
// identifier classes.
//
// ClassifyURI sorts any string into absolute, relative or invalid using
// the platform URI parser; ClassifyIdentifier refines absolute URIs into
// URN-like and URL-like identifiers. Both classifications are total and
// never panic; invalid input is an ordinary outcome, not an error.
//
// ContainerPart and LeafPart split an absolute URI's canonical form at
// its last path separator.
package ident
