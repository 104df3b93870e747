package pattern

import "sort"

// Parameter is a single named value captured from a concrete path,
// either from a placeholder segment or from the query string.
//
// Example:
//
//	Template: product/{productId}
//	Path:     product/123?ref=home
//	Result:   []Parameter{{Key: "productId", Value: "123"}, {Key: "ref", Value: "home"}}
type Parameter struct {
	Key   string
	Value string
}

// Params maps parameter names to their raw, undecoded values.
// Path-derived keys are inserted first and query keys second,
// so a query key overwrites a placeholder of the same name.
type Params map[string]string

// Get returns the raw value for name and whether it was present.
func (p Params) Get(name string) (string, bool) {
	v, ok := p[name]
	return v, ok
}

// Sorted returns the parameters ordered by key.
// Handy for printing, where map order would make output unstable.
func (p Params) Sorted() []Parameter {
	out := make([]Parameter, 0, len(p))
	for k, v := range p {
		out = append(out, Parameter{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
