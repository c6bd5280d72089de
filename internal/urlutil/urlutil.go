// Package urlutil normalizes URLs and matches hostnames for scope matching.
// Candidates are decomposed and canonicalized (lowercase scheme and host,
// IDN hosts converted to ASCII, lexically cleaned paths) so that case,
// percent-encoding, and dot-segment tricks cannot bypass a scope entry.
package urlutil

import (
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/idna"
)

// Candidate is the normalized decomposition of a URL used for matching.
// Query and fragment are dropped; scope decisions are made on the
// scheme, host, and path alone.
type Candidate struct {
	// Scheme is the lowercase URL scheme, never empty.
	Scheme string

	// Host is the lowercase ASCII hostname without port or trailing dot.
	// Empty for opaque URLs such as mailto:.
	Host string

	// Path is the cleaned URL path, or the opaque part for opaque URLs.
	Path string

	// Opaque reports whether the URL had an opaque part instead of a
	// host and path (e.g. "mailto:user@example.com").
	Opaque bool
}

// Normalize parses and canonicalizes a raw URL. The second return value is
// false when the input is not a parseable absolute URL; such candidates can
// never match any entry.
func Normalize(raw string) (Candidate, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return Candidate{}, false
	}

	c := Candidate{Scheme: strings.ToLower(u.Scheme)}

	if u.Opaque != "" {
		c.Path = u.Opaque
		c.Opaque = true
		return c, true
	}

	c.Host = NormalizeHost(u.Hostname())

	p := u.Path
	if p == "" {
		p = "/"
	}
	// Clean collapses dot segments so "/a/../b" and "/b" match identically.
	c.Path = path.Clean(p)
	return c, true
}

// NormalizeHost lowercases a hostname, strips the trailing dot, and converts
// internationalized names to their ASCII (punycode) form. Conversion failures
// (e.g. wildcard labels in patterns) keep the lowercased original.
func NormalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		ascii = strings.TrimSuffix(ascii, ".")
		if ascii != "" {
			return ascii
		}
	}
	return host
}

// MatchHost checks if a normalized hostname matches a host pattern.
// Supports exact match and wildcard patterns (*.example.com), plus a bare
// "*" matching every host. *.example.com matches sub.example.com but NOT
// example.com itself. Matching is case-insensitive.
func MatchHost(pattern, host string) bool {
	pattern = strings.ToLower(strings.TrimSuffix(pattern, "."))

	if pattern == "*" {
		return host != ""
	}
	if !strings.HasPrefix(pattern, "*.") {
		// Exact match.
		return host == pattern
	}

	// Wildcard match: strip the "*" prefix to get ".example.com". The host
	// must end with the suffix and be longer than it, so the apex domain
	// itself does not match.
	suffix := pattern[1:]
	return len(host) > len(suffix) && strings.HasSuffix(host, suffix)
}
