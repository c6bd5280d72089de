// Package opengate gates requests to open external resources (URLs and
// filesystem paths) with the operating system's native "open" facility.
//
// It merges a per-call scope with an application-wide scope into a single
// allow/deny decision for each request, resolves logical handler program
// names (e.g. "chrome", "xdg-open") to platform-correct executables, and
// launches permitted resources detached.
//
// Key properties:
//   - Deny entries always override allow entries.
//   - Absence of a matching allow entry means denial (default deny).
//   - Paths are normalized (absolute, cleaned, symlinks resolved) before
//     matching, so ".." traversal and symlink tricks cannot bypass the scope.
//   - Scopes are rebuilt fresh for every request; nothing is cached across
//     callers, so one caller's grant can never leak into another's decision.
//
// Basic usage:
//
//	cfg := opengate.DefaultConfig()
//	cfg.GlobalAllows = []opengate.Entry{
//	    opengate.URLEntry("https://*.example.com/*"),
//	}
//	gate, err := opengate.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = gate.OpenURL(ctx, "https://docs.example.com/intro")
package opengate
