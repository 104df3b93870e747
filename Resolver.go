package rlink

import (
	"log/slog"

	"github.com/rohanthewiz/rlink/internal/logging"
)

// Resolver turns a composite link into an ordered list of route values.
// It holds no mutable state; one Resolver serves any number of
// concurrent resolutions.
type Resolver struct {
	registry *Registry
	parser   StackParser
	logger   *slog.Logger
}

// NewResolver builds a Resolver over registry. A nil parser selects
// DefaultStackParser and a nil logger discards output.
func NewResolver(registry *Registry, parser StackParser, logger *slog.Logger) *Resolver {
	if parser == nil {
		parser = &DefaultStackParser{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Resolver{registry: registry, parser: parser, logger: logger}
}

// Resolve parses link and resolves every concrete path in it.
//
// Resolution is all-or-nothing: the first path that no template matches
// fails the whole call with UnknownPath, and factories for later paths
// are not invoked. Parsing errors and factory coercion errors are
// returned unchanged.
func (r *Resolver) Resolve(link string) ([]any, error) {
	if r == nil || r.registry == nil {
		return nil, notInitialized()
	}

	paths, err := r.parser.Parse(link)
	if err != nil {
		r.logger.Debug("deep link rejected", "link", link, "error", err)
		return nil, err
	}

	return r.ResolvePaths(paths)
}

// ResolvePaths resolves already split concrete paths, keeping their order.
func (r *Resolver) ResolvePaths(paths []string) ([]any, error) {
	if r == nil || r.registry == nil {
		return nil, notInitialized()
	}

	routes := make([]any, 0, len(paths))

	for i, path := range paths {
		template, params, ok := r.registry.Match(path)
		if !ok {
			r.logger.Debug("no template matches path", "index", i, "path", path)
			return nil, unknownPath(path)
		}

		factory, _ := r.registry.FactoryFor(template)
		route, err := factory.Create(params)
		if err != nil {
			r.logger.Debug("route factory failed", "index", i, "path", path, "template", template, "error", err)
			return nil, err
		}

		r.logger.Debug("resolved path", "index", i, "path", path, "template", template)
		routes = append(routes, route)
	}

	return routes, nil
}
