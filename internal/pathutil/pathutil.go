// Package pathutil provides path normalization and glob pattern compilation
// for filesystem scope matching. Candidates are always normalized before they
// are matched so that relative segments, ".." traversal, and symbolic links
// cannot be used to slip past a scope entry.
package pathutil

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"
)

// Normalize converts a candidate path into the canonical form used for scope
// matching: absolute, lexically cleaned, with symbolic links resolved.
//
// When the path (or a suffix of it) does not exist, the deepest existing
// ancestor is resolved and the remaining components are reattached lexically,
// so a decision can still be made for not-yet-created files. Hard failures
// (null bytes, unreadable working directory, I/O errors during resolution)
// are returned as errors and must be surfaced as "cannot evaluate", never as
// a denial.
func Normalize(path string) (string, error) {
	if ContainsNullByte(path) {
		return "", fmt.Errorf("pathutil: path %q contains null byte", StripNullBytes(path))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("pathutil: cannot make path absolute: %w", err)
	}
	abs = filepath.Clean(abs)

	resolved, err := filepath.EvalSymlinks(abs)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("pathutil: cannot resolve symlinks: %w", err)
	}

	// The leaf does not exist. Walk up to the deepest existing ancestor,
	// resolve that, and reattach the missing components.
	prefix := abs
	var rest []string
	for {
		parent := filepath.Dir(prefix)
		if parent == prefix {
			// No existing ancestor at all; the cleaned absolute path is the
			// best canonical form available.
			return abs, nil
		}
		rest = append(rest, filepath.Base(prefix))
		prefix = parent

		resolved, err = filepath.EvalSymlinks(prefix)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("pathutil: cannot resolve symlinks: %w", err)
		}
	}
	for i := len(rest) - 1; i >= 0; i-- {
		resolved = filepath.Join(resolved, rest[i])
	}
	return resolved, nil
}

// NormalizePattern canonicalizes a scope pattern the same way Normalize
// canonicalizes candidates, without destroying glob metacharacters: the
// longest glob-free directory prefix is resolved and the glob suffix is
// reattached. Resolution failures fall back to the cleaned absolute pattern,
// since patterns may legitimately reference directories that do not exist yet.
func NormalizePattern(pattern string) string {
	abs, err := filepath.Abs(pattern)
	if err != nil {
		return filepath.Clean(pattern)
	}
	abs = filepath.Clean(abs)

	root := abs
	for IsGlobPattern(root) {
		root = filepath.Dir(root)
	}
	resolved, err := Normalize(root)
	if err != nil {
		return abs
	}
	if root == abs {
		return resolved
	}
	return resolved + abs[len(root):]
}

// CompileGlob compiles a glob pattern into a regexp matching full paths.
func CompileGlob(pattern string) (*regexp.Regexp, error) {
	return regexp.Compile(GlobToRegex(pattern))
}

// GlobToRegex converts a glob pattern to a regexp string.
// Supports: * (any non-separator), ** (any including separator),
// ? (single non-separator char), [...] (character class).
func GlobToRegex(pattern string) string {
	var b strings.Builder
	b.WriteString("^")
	i := 0
	for i < len(pattern) {
		ch := pattern[i]
		switch ch {
		case '*':
			if i+1 < len(pattern) && pattern[i+1] == '*' {
				// ** matches everything including separators.
				i += 2
				// Skip a trailing separator after **.
				if i < len(pattern) && pattern[i] == '/' {
					i++
				}
				if i >= len(pattern) {
					// ** at the end of the pattern matches any suffix.
					b.WriteString(".*")
					continue
				}
				// Match any prefix (including empty) that ends at a boundary.
				b.WriteString("(?:.*/)?")
				continue
			}
			// Single * matches anything except separator.
			b.WriteString("[^/]*")
		case '?':
			b.WriteString("[^/]")
		case '[':
			// Pass through character class [...] verbatim.
			j := i + 1
			if j < len(pattern) && pattern[j] == ']' {
				j++ // allow ] as first char in class
			}
			for j < len(pattern) && pattern[j] != ']' {
				j++
			}
			if j < len(pattern) {
				// Found closing ], pass through as regex character class.
				b.WriteString(pattern[i : j+1])
				i = j + 1
				continue
			}
			// No closing bracket — escape the [ literally.
			b.WriteString("\\[")
		case '.', '+', '^', '$', '|', '(', ')', '{', '}', ']', '\\':
			b.WriteByte('\\')
			b.WriteByte(ch)
		default:
			b.WriteByte(ch)
		}
		i++
	}
	b.WriteString("$")
	return b.String()
}

// IsGlobPattern returns true if the string contains glob metacharacters.
func IsGlobPattern(s string) bool {
	return strings.ContainsAny(s, "*?[")
}

// ContainsNullByte returns true if the string contains a null byte.
func ContainsNullByte(s string) bool {
	return strings.ContainsRune(s, '\x00')
}

// StripNullBytes removes all null bytes from a string.
func StripNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}
