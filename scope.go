package opengate

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/zhangyunhao116/opengate/internal/pathutil"
	"github.com/zhangyunhao116/opengate/internal/urlutil"
)

// EntryKind distinguishes URL-shaped from path-shaped scope entries.
type EntryKind int

const (
	// EntryURL marks an entry matched against URLs.
	EntryURL EntryKind = iota

	// EntryPath marks an entry matched against filesystem paths.
	EntryPath
)

// String returns the string representation of an EntryKind.
func (k EntryKind) String() string {
	switch k {
	case EntryURL:
		return "url"
	case EntryPath:
		return "path"
	default:
		return unknownStr
	}
}

// Entry is a single scope pattern rule placed in an allow or a deny set.
//
// URL entries must carry a scheme and are matched component-wise: the scheme
// exactly (case-insensitive), the host exactly or via a *.suffix wildcard,
// and the path as a glob (* within a segment, ** across segments). An entry
// without a path component matches every path. Query and fragment are ignored.
//
// Path entries are glob patterns matched case-sensitively against the
// normalized (absolute, cleaned, symlink-resolved) candidate path.
type Entry struct {
	// Kind selects URL or path matching.
	Kind EntryKind

	// Pattern is the raw pattern text.
	Pattern string
}

// URLEntry returns a URL-shaped scope entry.
func URLEntry(pattern string) Entry {
	return Entry{Kind: EntryURL, Pattern: pattern}
}

// PathEntry returns a path-shaped scope entry.
func PathEntry(pattern string) Entry {
	return Entry{Kind: EntryPath, Pattern: pattern}
}

// String returns a short "kind:pattern" form for logs and error messages.
func (e Entry) String() string {
	return e.Kind.String() + ":" + e.Pattern
}

// Validate checks that the entry pattern is well-formed and compilable.
func (e Entry) Validate() error {
	if e.Pattern == "" {
		return errors.New("pattern must not be empty")
	}
	switch e.Kind {
	case EntryURL:
		u, err := url.Parse(e.Pattern)
		if err != nil {
			return fmt.Errorf("invalid url pattern %q: %w", e.Pattern, err)
		}
		if u.Scheme == "" {
			return fmt.Errorf("url pattern %q must include a scheme", e.Pattern)
		}
		if p := urlPatternPath(u); p != "" {
			if _, err := pathutil.CompileGlob(p); err != nil {
				return fmt.Errorf("invalid url pattern %q: %w", e.Pattern, err)
			}
		}
		return nil
	case EntryPath:
		if pathutil.ContainsNullByte(e.Pattern) {
			return errors.New("path pattern must not contain null bytes")
		}
		if _, err := pathutil.CompileGlob(e.Pattern); err != nil {
			return fmt.Errorf("invalid path pattern %q: %w", e.Pattern, err)
		}
		return nil
	default:
		return fmt.Errorf("unknown entry kind %d", e.Kind)
	}
}

// urlPatternPath extracts the part of a parsed URL pattern that is matched
// against the candidate path: the opaque part for opaque URLs, the path
// component otherwise.
func urlPatternPath(u *url.URL) string {
	if u.Opaque != "" {
		return u.Opaque
	}
	return u.Path
}

// compiledEntry is the matcher form of an Entry. Entries whose pattern cannot
// be parsed or compiled are marked bad; a bad deny entry fails closed.
type compiledEntry struct {
	kind EntryKind
	bad  bool

	// URL entry fields.
	scheme  string
	host    string
	opaque  bool
	anyPath bool
	pathRE  *regexp.Regexp

	// Path entry field.
	re *regexp.Regexp
}

func compileEntry(e Entry) compiledEntry {
	ce := compiledEntry{kind: e.Kind}
	if e.Pattern == "" {
		ce.bad = true
		return ce
	}

	switch e.Kind {
	case EntryURL:
		u, err := url.Parse(e.Pattern)
		if err != nil || u.Scheme == "" {
			ce.bad = true
			return ce
		}
		ce.scheme = strings.ToLower(u.Scheme)
		if u.Opaque != "" {
			ce.opaque = true
			ce.pathRE, err = pathutil.CompileGlob(u.Opaque)
			if err != nil {
				ce.bad = true
			}
			return ce
		}
		ce.host = urlutil.NormalizeHost(u.Hostname())
		if u.Path == "" {
			ce.anyPath = true
			return ce
		}
		ce.pathRE, err = pathutil.CompileGlob(u.Path)
		if err != nil {
			ce.bad = true
		}
	case EntryPath:
		if pathutil.ContainsNullByte(e.Pattern) {
			ce.bad = true
			return ce
		}
		re, err := pathutil.CompileGlob(pathutil.NormalizePattern(e.Pattern))
		if err != nil {
			ce.bad = true
			return ce
		}
		ce.re = re
	default:
		ce.bad = true
	}
	return ce
}

// matchURL reports whether the entry matches a normalized URL candidate.
// Only called for valid URL entries.
func (ce compiledEntry) matchURL(c urlutil.Candidate) bool {
	if ce.scheme != c.Scheme {
		return false
	}
	if ce.opaque != c.Opaque {
		return false
	}
	if ce.opaque {
		return ce.pathRE.MatchString(c.Path)
	}
	if !urlutil.MatchHost(ce.host, c.Host) {
		return false
	}
	if ce.anyPath {
		return true
	}
	return ce.pathRE.MatchString(c.Path)
}

// Scope is the merged allow/deny rule set effective for one request.
// It is immutable once constructed and must not be cached across requests:
// the call scope varies per caller and must never leak into another
// caller's decision.
type Scope struct {
	allows []compiledEntry
	denies []compiledEntry
}

// NewScope builds a Scope from allow and deny entry sets.
func NewScope(allows, denies []Entry) *Scope {
	s := &Scope{
		allows: make([]compiledEntry, 0, len(allows)),
		denies: make([]compiledEntry, 0, len(denies)),
	}
	for _, e := range allows {
		s.allows = append(s.allows, compileEntry(e))
	}
	for _, e := range denies {
		s.denies = append(s.denies, compileEntry(e))
	}
	return s
}

// ResolveScope merges a call-scoped allow/deny set with the globally
// configured set into the effective Scope for a single request. The merge is
// a plain union per class, so it is order-independent and duplicates are
// harmless. It is recomputed fresh on every request by design.
func ResolveScope(callAllows, callDenies, globalAllows, globalDenies []Entry) *Scope {
	allows := make([]Entry, 0, len(callAllows)+len(globalAllows))
	allows = append(allows, callAllows...)
	allows = append(allows, globalAllows...)

	denies := make([]Entry, 0, len(callDenies)+len(globalDenies))
	denies = append(denies, callDenies...)
	denies = append(denies, globalDenies...)

	return NewScope(allows, denies)
}

// IsURLAllowed decides whether a URL is permitted by the scope.
//
// Deny entries are checked first and win unconditionally; then any matching
// allow entry permits; otherwise the URL is denied. Candidates that do not
// parse as absolute URLs match nothing and fall through to the default deny.
// A deny entry with an uncompilable pattern fails closed.
func (s *Scope) IsURLAllowed(rawURL string) bool {
	cand, ok := urlutil.Normalize(rawURL)

	for _, ce := range s.denies {
		if ce.kind != EntryURL {
			continue
		}
		if ce.bad {
			return false
		}
		if ok && ce.matchURL(cand) {
			return false
		}
	}
	if !ok {
		return false
	}
	for _, ce := range s.allows {
		if ce.kind != EntryURL || ce.bad {
			continue
		}
		if ce.matchURL(cand) {
			return true
		}
	}
	return false
}

// IsPathAllowed decides whether a filesystem path is permitted by the scope.
//
// The candidate is normalized first (absolute, cleaned, symlinks resolved on
// the longest existing prefix) and the decision is made against the
// normalized form, never the raw input. Normalization failures return a
// PathResolutionError, which is distinct from a denial: one is "cannot
// evaluate", the other is a policy refusal.
func (s *Scope) IsPathAllowed(path string) (bool, error) {
	normalized, err := pathutil.Normalize(path)
	if err != nil {
		return false, &PathResolutionError{Path: path, Err: err}
	}

	for _, ce := range s.denies {
		if ce.kind != EntryPath {
			continue
		}
		if ce.bad {
			return false, nil
		}
		if ce.re.MatchString(normalized) {
			return false, nil
		}
	}
	for _, ce := range s.allows {
		if ce.kind != EntryPath || ce.bad {
			continue
		}
		if ce.re.MatchString(normalized) {
			return true, nil
		}
	}
	return false, nil
}
