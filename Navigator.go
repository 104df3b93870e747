package rlink

import (
	"fmt"
	"log/slog"

	"github.com/rohanthewiz/rlink/internal/logging"
)

// Navigator is the entry point most applications use: it resolves a
// deep link against a registry and rebuilds a host's back stack from it.
//
// A Navigator is built explicitly and passed to whoever handles links;
// there is no package level instance. Methods called on a nil Navigator,
// or on one built without a registry, fail with NotInitialized.
type Navigator struct {
	registry *Registry
	parser   StackParser
	resolver *Resolver
	builder  *StackBuilder
	logger   *slog.Logger
}

type navOptions struct {
	parser   StackParser
	strategy Strategy
	logger   *slog.Logger
}

// Option configures NewNavigator.
type Option func(*navOptions)

// WithParser replaces the stack parser.
func WithParser(parser StackParser) Option {
	return func(o *navOptions) {
		o.parser = parser
	}
}

// WithStackParam reads the back stack from the named query parameter.
func WithStackParam(name string) Option {
	return func(o *navOptions) {
		o.parser = NewStackParser(name)
	}
}

// WithStrategy selects how back stacks are rebuilt.
func WithStrategy(strategy Strategy) Option {
	return func(o *navOptions) {
		o.strategy = strategy
	}
}

// WithLogger sets the logger. Resolution steps are logged at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *navOptions) {
		o.logger = logger
	}
}

// WithConfig applies the stack parameter and strategy of cfg.
func WithConfig(cfg Config) Option {
	return func(o *navOptions) {
		o.parser = NewStackParser(cfg.StackParam)
		o.strategy = cfg.StrategyValue()
	}
}

// NewNavigator builds a Navigator over registry.
func NewNavigator(registry *Registry, opts ...Option) *Navigator {
	o := navOptions{
		parser:   &DefaultStackParser{},
		strategy: StrategySequential,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Navigator{
		registry: registry,
		parser:   o.parser,
		resolver: NewResolver(registry, o.parser, o.logger),
		builder:  NewStackBuilder(registry, o.strategy, o.logger),
		logger:   o.logger,
	}
}

func (n *Navigator) ready() bool {
	return n != nil && n.registry != nil
}

// Registry returns the registry the navigator resolves against.
func (n *Navigator) Registry() *Registry {
	if n == nil {
		return nil
	}
	return n.registry
}

// Resolve turns link into route values. See Resolver.Resolve.
func (n *Navigator) Resolve(link string) ([]any, error) {
	if !n.ready() {
		return nil, notInitialized()
	}
	return n.resolver.Resolve(link)
}

// Apply rebuilds host's back stack from routes. See StackBuilder.Apply.
func (n *Navigator) Apply(host Host, routes []any) error {
	if !n.ready() {
		return notInitialized()
	}
	return n.builder.Apply(host, routes)
}

// NavigateTo resolves link and applies the result to host.
// Nothing reaches the host unless every path in the link resolves.
func (n *Navigator) NavigateTo(host Host, link string) error {
	if !n.ready() {
		return notInitialized()
	}

	routes, err := n.resolver.Resolve(link)
	if err != nil {
		n.logger.Info("deep link not resolved", "link", link, "kind", KindOf(err).String(), "error", err)
		return err
	}

	if err = n.builder.Apply(host, routes); err != nil {
		return err
	}

	n.logger.Info("deep link applied", "link", link, "depth", len(routes))
	return nil
}

// LinkFor builds a composite link that resolves to routes, starting
// from base (for example "myapp://open"). The navigator's parser must
// implement StackEncoder, otherwise the link could not be read back and
// ErrNotEncodable is returned. DefaultStackParser encodes.
func (n *Navigator) LinkFor(base string, routes ...any) (string, error) {
	if !n.ready() {
		return "", notInitialized()
	}

	enc, ok := n.parser.(StackEncoder)
	if !ok {
		return "", fmt.Errorf("parser %T: %w", n.parser, ErrNotEncodable)
	}

	paths := make([]string, 0, len(routes))
	for _, route := range routes {
		path, err := n.registry.PathFor(route)
		if err != nil {
			return "", err
		}
		paths = append(paths, path)
	}

	return enc.Encode(base, paths)
}
