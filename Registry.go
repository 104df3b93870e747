package rlink

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/rohanthewiz/rlink/consts"
	"github.com/rohanthewiz/rlink/core/pattern"
)

var (
	ErrNilFactory           = errors.New("entry has no factory")
	ErrDuplicateTemplate    = errors.New("template is registered more than once")
	ErrDuplicateRouteType   = errors.New("route type is registered for more than one template")
	ErrOverlappingTemplates = errors.New("templates match the same paths")
	ErrUnregisteredRoute    = errors.New("route has no registered template")
	ErrNotEncodable         = errors.New("route cannot be encoded into a path")
)

// ConflictMode controls the order in which templates are tried and
// whether structurally ambiguous templates are accepted.
type ConflictMode string

const (
	// ConflictFirstMatch tries templates in registration order. The first
	// registered of two overlapping templates wins.
	ConflictFirstMatch ConflictMode = consts.ConflictFirstMatch
	// ConflictPreferStatic tries templates with literal segments ahead of
	// placeholders at the first position where they differ.
	// Ties keep registration order.
	ConflictPreferStatic ConflictMode = consts.ConflictPreferStatic
	// ConflictStrict rejects a registry in which two templates overlap.
	ConflictStrict ConflictMode = consts.ConflictStrict
)

// ParseConflictMode maps a configured name to a ConflictMode.
func ParseConflictMode(name string) (ConflictMode, bool) {
	switch ConflictMode(strings.ToLower(strings.TrimSpace(name))) {
	case ConflictFirstMatch, "":
		return ConflictFirstMatch, true
	case ConflictPreferStatic:
		return ConflictPreferStatic, true
	case ConflictStrict:
		return ConflictStrict, true
	default:
		return "", false
	}
}

func (m ConflictMode) String() string {
	if m == "" {
		return string(ConflictFirstMatch)
	}
	return string(m)
}

// Entry binds a template to the Factory that builds its routes.
// RouteType is optional; when nil it is taken from the Factory if it
// implements RouteTyper.
type Entry struct {
	Template  string
	Factory   Factory
	RouteType reflect.Type
}

// RouteList describes a registered route for inspection and debugging.
type RouteList struct {
	Template     string
	RouteType    string
	Placeholders []string
}

type registryEntry struct {
	tpl     *pattern.Template
	factory Factory
	typ     reflect.Type
}

// Registry maps templates to factories and route types back to templates.
// It is immutable once built and can be shared by any number of
// concurrent resolutions without locking.
type Registry struct {
	entries    []registryEntry
	byTemplate map[string]*registryEntry
	byType     map[reflect.Type]*registryEntry
	mode       ConflictMode
}

// RegistryOption configures NewRegistry.
type RegistryOption func(*Registry)

// WithConflictMode sets how overlapping templates are handled.
func WithConflictMode(mode ConflictMode) RegistryOption {
	return func(r *Registry) {
		r.mode = mode
	}
}

// NewRegistry validates entries and builds a Registry.
// It fails when a template is invalid or registered twice, when an entry
// has no factory, when two templates claim the same route type, or, in
// strict mode, when two templates overlap.
func NewRegistry(entries []Entry, opts ...RegistryOption) (*Registry, error) {
	r := &Registry{
		entries:    make([]registryEntry, 0, len(entries)),
		byTemplate: make(map[string]*registryEntry, len(entries)),
		byType:     make(map[reflect.Type]*registryEntry, len(entries)),
		mode:       ConflictFirstMatch,
	}
	for _, opt := range opts {
		opt(r)
	}

	seen := make(map[string]struct{}, len(entries))

	for _, e := range entries {
		if e.Factory == nil {
			return nil, fmt.Errorf("template %q: %w", e.Template, ErrNilFactory)
		}
		if _, dup := seen[e.Template]; dup {
			return nil, fmt.Errorf("template %q: %w", e.Template, ErrDuplicateTemplate)
		}
		seen[e.Template] = struct{}{}

		tpl, err := pattern.Compile(e.Template)
		if err != nil {
			return nil, err
		}

		typ := e.RouteType
		if typ == nil {
			if rt, ok := e.Factory.(RouteTyper); ok {
				typ = rt.RouteType()
			}
		}

		r.entries = append(r.entries, registryEntry{tpl: tpl, factory: e.Factory, typ: typ})
	}

	switch r.mode {
	case ConflictStrict:
		if err := r.checkOverlaps(); err != nil {
			return nil, err
		}
	case ConflictPreferStatic:
		sort.SliceStable(r.entries, func(i, j int) bool {
			return staticFirst(r.entries[i].tpl, r.entries[j].tpl)
		})
	}

	// Index after sorting so the pointers refer to the final slice
	templated := reflect.TypeFor[Templated]()
	for i := range r.entries {
		e := &r.entries[i]
		r.byTemplate[e.tpl.String()] = e

		if e.typ == nil || e.typ.Implements(templated) {
			continue
		}
		if prev, dup := r.byType[e.typ]; dup {
			return nil, fmt.Errorf("%s: %w: %q and %q", e.typ, ErrDuplicateRouteType, prev.tpl, e.tpl)
		}
		r.byType[e.typ] = e
	}

	return r, nil
}

// MustRegistry is like NewRegistry but panics on error.
func MustRegistry(entries []Entry, opts ...RegistryOption) *Registry {
	r, err := NewRegistry(entries, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) checkOverlaps() error {
	for i := range r.entries {
		for j := i + 1; j < len(r.entries); j++ {
			a, b := r.entries[i].tpl, r.entries[j].tpl
			if pattern.Overlaps(a, b) {
				return fmt.Errorf("%w: %q and %q", ErrOverlappingTemplates, a, b)
			}
		}
	}
	return nil
}

// staticFirst orders templates by their literal/placeholder shape,
// a literal sorting before a placeholder at the first differing segment.
func staticFirst(a, b *pattern.Template) bool {
	ka, kb := shape(a), shape(b)
	for i := 0; i < len(ka) && i < len(kb); i++ {
		if ka[i] != kb[i] {
			return !ka[i]
		}
	}
	return len(ka) < len(kb)
}

// shape marks placeholder segments with true.
func shape(t *pattern.Template) []bool {
	out := make([]bool, t.Segments())
	for i := range out {
		out[i] = t.IsPlaceholder(i)
	}
	return out
}

// Mode returns the conflict mode the registry was built with.
func (r *Registry) Mode() ConflictMode {
	return r.mode
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Patterns returns the registered templates in match order.
// The order is fixed for the life of the registry.
func (r *Registry) Patterns() []string {
	out := make([]string, len(r.entries))
	for i := range r.entries {
		out[i] = r.entries[i].tpl.String()
	}
	return out
}

// FactoryFor returns the factory registered for template.
func (r *Registry) FactoryFor(template string) (Factory, bool) {
	e, ok := r.byTemplate[template]
	if !ok {
		return nil, false
	}
	return e.factory, true
}

// TemplateFor returns the template a route value was built from.
// Routes implementing Templated answer for themselves; others are
// looked up by their Go type.
func (r *Registry) TemplateFor(route any) (string, bool) {
	if t, ok := route.(Templated); ok {
		tpl := t.RouteTemplate()
		if _, registered := r.byTemplate[tpl]; registered {
			return tpl, true
		}
		return "", false
	}

	e, ok := r.byType[reflect.TypeOf(route)]
	if !ok {
		return "", false
	}
	return e.tpl.String(), true
}

// Match tries each template in order against concretePath and returns the
// first one that fits together with its parameters.
func (r *Registry) Match(concretePath string) (string, Params, bool) {
	for i := range r.entries {
		e := &r.entries[i]
		if raw, ok := e.tpl.Match(concretePath); ok {
			return e.tpl.String(), NewParams(e.tpl.String(), raw), true
		}
	}
	return "", Params{}, false
}

// Routes lists the registered routes in match order.
func (r *Registry) Routes() []RouteList {
	out := make([]RouteList, 0, len(r.entries))
	for i := range r.entries {
		e := &r.entries[i]
		typ := "-"
		if e.typ != nil {
			typ = e.typ.String()
		}
		out = append(out, RouteList{
			Template:     e.tpl.String(),
			RouteType:    typ,
			Placeholders: e.tpl.Placeholders(),
		})
	}
	return out
}

// PathFor renders route back into a concrete path: placeholders are filled
// from the route's parameters and the remaining parameters are appended
// as a query string in order. Values are written raw, as Match reads them.
func (r *Registry) PathFor(route any) (string, error) {
	template, ok := r.TemplateFor(route)
	if !ok {
		return "", fmt.Errorf("%T: %w", route, ErrUnregisteredRoute)
	}
	e := r.byTemplate[template]

	var params []pattern.Parameter
	switch {
	case isDynamic(route):
		params = dynamicParams(route)
	default:
		enc, ok := e.factory.(Encoder)
		if !ok {
			if len(e.tpl.Placeholders()) > 0 {
				return "", fmt.Errorf("%T: %w", route, ErrNotEncodable)
			}
			return e.tpl.Expand(nil)
		}
		var err error
		if params, err = enc.Encode(route); err != nil {
			return "", err
		}
	}

	for _, p := range params {
		if strings.Contains(p.Value, consts.StackSeparator) {
			return "", fmt.Errorf("%T: %w: parameter %q", route, ErrNotEncodable, p.Key)
		}
	}

	placeholders := make(map[string]string, len(params))
	for _, name := range e.tpl.Placeholders() {
		for _, p := range params {
			if p.Key == name {
				placeholders[name] = p.Value
			}
		}
	}

	path, err := e.tpl.Expand(placeholders)
	if err != nil {
		return "", err
	}

	var query []string
	for _, p := range params {
		if _, bound := placeholders[p.Key]; bound {
			continue
		}
		if strings.Contains(p.Value, consts.StrAmpersand) {
			return "", fmt.Errorf("%T: %w: parameter %q", route, ErrNotEncodable, p.Key)
		}
		query = append(query, p.Key+consts.StrEquals+p.Value)
	}
	if len(query) > 0 {
		path += consts.StrQuestion + strings.Join(query, consts.StrAmpersand)
	}

	return path, nil
}

func isDynamic(route any) bool {
	switch route.(type) {
	case DynamicRoute, *DynamicRoute:
		return true
	}
	return false
}

func dynamicParams(route any) []pattern.Parameter {
	switch r := route.(type) {
	case DynamicRoute:
		return r.Parameters()
	case *DynamicRoute:
		return r.Parameters()
	}
	return nil
}
