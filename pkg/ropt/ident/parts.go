package ident

import (
	"net/url"
	"strings"
)

// ContainerPart returns the part of the URI's absolute form strictly
// before the last '/', or "" when no '/' occurs past position zero.
// The URI must already be classified absolute.
func ContainerPart(u *url.URL) string {
	s := u.String()
	if i := strings.LastIndexByte(s, '/'); i > 0 {
		return s[:i]
	}
	return ""
}

// LeafPart returns the part of the URI's absolute form strictly after
// the last '/', or "" when no '/' occurs past position zero or nothing
// follows it. The URI must already be classified absolute.
func LeafPart(u *url.URL) string {
	s := u.String()
	if i := strings.LastIndexByte(s, '/'); i > 0 && i+1 < len(s) {
		return s[i+1:]
	}
	return ""
}
