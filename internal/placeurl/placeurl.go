// Package placeurl extracts a place identifier from Google Maps URLs in their
// many shapes: share links with id query parameters, redirect wrappers with a
// nested "link" parameter, and long /maps/place/ URLs carrying the id inside a
// !1s<id>! data segment.
package placeurl

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var placeIDPattern = regexp.MustCompile(`!1s([^!]+)!`)

// idParams are checked in order on every query string we see.
var idParams = []string{"query_place_id", "place_id", "placeid"}

// nested link parameters are unwrapped at most this many times
const maxLinkDepth = 2

// Extract returns the URL-decoded, NFKC-normalized place id, or false when no
// strategy matches or the URL does not parse.
func Extract(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	id := extract(u, 0)
	if id == "" {
		return "", false
	}
	return norm.NFKC.String(id), true
}

func extract(u *url.URL, depth int) string {
	query := u.Query()
	for _, key := range idParams {
		if v := query.Get(key); v != "" {
			return v
		}
	}

	if link := query.Get("link"); link != "" && depth < maxLinkDepth {
		if inner, err := url.Parse(link); err == nil {
			if id := extract(inner, depth+1); id != "" {
				return id
			}
		}
	}

	if strings.Contains(u.Path, "/maps/place/") {
		// match on the raw path so percent-encoded ids survive until we
		// decode the capture ourselves
		source := u.EscapedPath() + u.EscapedFragment()
		if m := placeIDPattern.FindStringSubmatch(source); m != nil {
			id, err := url.PathUnescape(m[1])
			if err != nil {
				id = m[1]
			}
			if id != "" {
				return id
			}
		}
	}
	return ""
}
