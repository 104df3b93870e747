package rlink

import (
	"reflect"
	"sort"

	"github.com/rohanthewiz/rlink/core/pattern"
)

// Templated is implemented by route values that know their own template.
// The registry consults it before falling back to lookup by Go type,
// which lets many templates share one route type.
type Templated interface {
	RouteTemplate() string
}

// DynamicRoute is the route value built for routes declared in data
// (a manifest) rather than as Go types. Values holds the coerced
// parameters; optional parameters that were absent are not present.
type DynamicRoute struct {
	Name     string
	Template string
	Values   map[string]any
}

func (r DynamicRoute) RouteTemplate() string {
	return r.Template
}

// Get returns the coerced value of a parameter.
func (r DynamicRoute) Get(name string) (any, bool) {
	v, ok := r.Values[name]
	return v, ok
}

// Parameters renders Values as raw parameters ordered by key.
func (r DynamicRoute) Parameters() []pattern.Parameter {
	keys := make([]string, 0, len(r.Values))
	for k := range r.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]pattern.Parameter, 0, len(keys))
	for _, k := range keys {
		out = append(out, pattern.Parameter{Key: k, Value: formatValue(reflect.ValueOf(r.Values[k]))})
	}
	return out
}
