package opengate

import (
	"context"
	"fmt"
	"log/slog"
)

// Gate decides whether open requests are permitted and dispatches permitted
// ones to the platform opener.
//
// A Gate holds no mutable state: the effective scope is resolved fresh for
// every request, so a Gate is safe for unbounded concurrent use by multiple
// callers.
type Gate struct {
	globalAllows []Entry
	globalDenies []Entry
	opener       Opener
	logger       *slog.Logger
}

// New creates a Gate with the given configuration. The configuration is
// validated before the gate is created.
func New(cfg *Config) (*Gate, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: config must not be nil", ErrConfigInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Gate{
		globalAllows: append([]Entry(nil), cfg.GlobalAllows...),
		globalDenies: append([]Entry(nil), cfg.GlobalDenies...),
		opener:       cfg.Opener,
		logger:       cfg.Logger,
	}
	if g.opener == nil {
		g.opener = newSystemOpener()
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g, nil
}

// OpenURL opens a URL with the system default handler, or with the program
// requested via WithProgram/WithProgramName.
//
// The URL is checked against the effective scope (call entries merged with
// the global entries) before anything is launched. Denied requests return a
// ForbiddenURLError carrying the URL exactly as requested. No failure on
// this path is retried.
func (g *Gate) OpenURL(ctx context.Context, rawURL string, opts ...Option) error {
	o := applyOptions(opts)

	scope := ResolveScope(o.allows, o.denies, g.globalAllows, g.globalDenies)
	if !scope.IsURLAllowed(rawURL) {
		g.logger.Warn("opengate: url denied by scope", "url", rawURL)
		return &ForbiddenURLError{URL: rawURL}
	}
	return g.launch(ctx, rawURL, o)
}

// OpenPath opens a filesystem path with the system default handler, or with
// the program requested via WithProgram/WithProgramName.
//
// The path is normalized and checked against the effective scope before
// anything is launched. Denied requests return a ForbiddenPathError carrying
// the path exactly as requested; paths that cannot be normalized return a
// PathResolutionError instead, since no policy decision was reached.
func (g *Gate) OpenPath(ctx context.Context, path string, opts ...Option) error {
	o := applyOptions(opts)

	scope := ResolveScope(o.allows, o.denies, g.globalAllows, g.globalDenies)
	allowed, err := scope.IsPathAllowed(path)
	if err != nil {
		return err
	}
	if !allowed {
		g.logger.Warn("opengate: path denied by scope", "path", path)
		return &ForbiddenPathError{Path: path}
	}
	return g.launch(ctx, path, o)
}

// RevealItemInDir shows a path in the system file manager.
//
// Revealing is a strictly local action that never interprets the item's
// content, so it is intentionally not scope checked.
func (g *Gate) RevealItemInDir(ctx context.Context, path string) error {
	g.logger.Debug("opengate: revealing item", "path", path)
	if err := g.opener.Reveal(ctx, path); err != nil {
		return &OpenError{Resource: path, Err: err}
	}
	return nil
}

// launch resolves the program override, if any, and hands the permitted
// resource to the opener. The launch is detached; the opened program's
// lifetime never blocks the request.
func (g *Gate) launch(ctx context.Context, resource string, o *callOptions) error {
	prog, hasProg, err := o.resolveProgram()
	if err != nil {
		return err
	}

	if hasProg {
		g.logger.Debug("opengate: launching handler", "resource", resource, "program", prog.Name())
		if err := g.opener.OpenWith(ctx, resource, prog.ExecutableName()); err != nil {
			return &OpenError{Resource: resource, Err: err}
		}
		return nil
	}

	g.logger.Debug("opengate: launching default handler", "resource", resource)
	if err := g.opener.Open(ctx, resource); err != nil {
		return &OpenError{Resource: resource, Err: err}
	}
	return nil
}
