package rlink

import (
	"reflect"

	"github.com/rohanthewiz/rlink/core/pattern"
)

// Factory builds a route value from the parameters captured for one template.
// One Factory exists per template. Factories are expected to be pure: the
// Resolver calls them only after a successful match and passes their
// coercion errors through unchanged.
type Factory interface {
	Create(params Params) (any, error)
}

// FactoryFunc adapts an ordinary function to the Factory interface.
type FactoryFunc func(params Params) (any, error)

func (f FactoryFunc) Create(params Params) (any, error) {
	return f(params)
}

// RouteTyper is implemented by factories that know the Go type of the
// routes they build. The registry uses it for reverse lookup when an
// Entry does not name its RouteType.
type RouteTyper interface {
	RouteType() reflect.Type
}

// Encoder is implemented by factories that can turn a route value back into
// its parameters, in the order they should be written.
type Encoder interface {
	Encode(route any) ([]pattern.Parameter, error)
}

type typedFactory[T any] struct {
	fn func(Params) (T, error)
}

// Typed wraps a constructor for routes of type T.
// The route type is recorded for reverse lookup.
func Typed[T any](fn func(Params) (T, error)) Factory {
	return typedFactory[T]{fn: fn}
}

func (f typedFactory[T]) Create(params Params) (any, error) {
	v, err := f.fn(params)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (f typedFactory[T]) RouteType() reflect.Type {
	return reflect.TypeFor[T]()
}

type constantFactory struct {
	route any
}

// Constant returns a Factory for a template without parameters.
// It ignores its input and always returns route.
func Constant(route any) Factory {
	return constantFactory{route: route}
}

func (f constantFactory) Create(Params) (any, error) {
	return f.route, nil
}

func (f constantFactory) RouteType() reflect.Type {
	return reflect.TypeOf(f.route)
}

// Encode has nothing to write: a constant route carries no parameters.
func (f constantFactory) Encode(any) ([]pattern.Parameter, error) {
	return nil, nil
}
