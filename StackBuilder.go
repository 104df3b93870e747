package rlink

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rohanthewiz/rlink/consts"
	"github.com/rohanthewiz/rlink/internal/logging"
)

var ErrBatchUnsupported = errors.New("host cannot install a batch of destinations")

// Destination is a route value paired with the template it was built from.
// It is the unit a navigation host shows.
type Destination struct {
	Template string
	Route    any
}

// Host is the navigation surface the StackBuilder drives.
// Calls must come from whatever single goroutine owns the host.
type Host interface {
	// Replace clears the back stack and makes dest the new root.
	Replace(dest Destination) error
	// Push puts dest on top of the back stack.
	Push(dest Destination) error
}

// BatchHost is a Host that can install a whole back stack in one step.
type BatchHost interface {
	Host
	// Install replaces the back stack with dests, dests[0] at the bottom.
	Install(dests []Destination) error
}

// Strategy selects how a back stack is rebuilt from a route list.
type Strategy int

const (
	// StrategySequential replaces the stack with the first route and
	// pushes the rest one by one. If a push fails the host keeps the
	// routes applied before it.
	StrategySequential Strategy = iota
	// StrategyBatch hands every destination to BatchHost.Install at once,
	// so no intermediate stack is ever visible.
	StrategyBatch
)

func (s Strategy) String() string {
	switch s {
	case StrategyBatch:
		return consts.StrategyBatch
	default:
		return consts.StrategySequential
	}
}

// ParseStrategy maps a configured name to a Strategy.
func ParseStrategy(name string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case consts.StrategySequential, "":
		return StrategySequential, true
	case consts.StrategyBatch:
		return StrategyBatch, true
	default:
		return 0, false
	}
}

// StackBuilder reconstructs a host's back stack from resolved routes.
type StackBuilder struct {
	registry *Registry
	strategy Strategy
	logger   *slog.Logger
}

// NewStackBuilder builds a StackBuilder. The registry supplies the
// template of each route; a nil logger discards output.
func NewStackBuilder(registry *Registry, strategy Strategy, logger *slog.Logger) *StackBuilder {
	if logger == nil {
		logger = logging.Discard()
	}
	return &StackBuilder{registry: registry, strategy: strategy, logger: logger}
}

// Strategy returns the configured strategy.
func (b *StackBuilder) Strategy() Strategy {
	return b.strategy
}

// Apply rebuilds the back stack of host so that routes[0] is at the bottom
// and the last route on top. An empty list does nothing.
// Every failure, including a panic inside the host, is returned as
// NavigationFailed carrying the cause's type name and message.
func (b *StackBuilder) Apply(host Host, routes []any) (err error) {
	if b == nil || b.registry == nil {
		return notInitialized()
	}
	if len(routes) == 0 {
		return nil
	}
	if host == nil {
		return navigationRefused("NilHost", errors.New("navigation host is nil"))
	}

	defer func() {
		if rec := recover(); rec != nil {
			b.logger.Error("navigation host panicked", "panic", rec)
			if cause, ok := rec.(error); ok {
				err = navigationFailed(cause)
				return
			}
			err = navigationRefused("Panic", fmt.Errorf("%v", rec))
		}
	}()

	dests := make([]Destination, len(routes))
	for i, route := range routes {
		template, ok := b.registry.TemplateFor(route)
		if !ok {
			return navigationRefused("UnregisteredRoute", fmt.Errorf("route pattern not found for %T: %w", route, ErrUnregisteredRoute))
		}
		dests[i] = Destination{Template: template, Route: route}
	}

	switch b.strategy {
	case StrategyBatch:
		batch, ok := host.(BatchHost)
		if !ok {
			return navigationRefused("BatchUnsupported", fmt.Errorf("%T: %w", host, ErrBatchUnsupported))
		}
		err = batch.Install(dests)
	default:
		err = b.applySequential(host, dests)
	}
	if err != nil {
		b.logger.Warn("back stack not rebuilt", "strategy", b.strategy.String(), "error", err)
		return navigationFailed(err)
	}

	b.logger.Debug("back stack rebuilt", "strategy", b.strategy.String(), "depth", len(dests))
	return nil
}

func (b *StackBuilder) applySequential(host Host, dests []Destination) error {
	if err := host.Replace(dests[0]); err != nil {
		return err
	}
	for _, dest := range dests[1:] {
		if err := host.Push(dest); err != nil {
			return err
		}
	}
	return nil
}
