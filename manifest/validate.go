package manifest

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/rohanthewiz/rlink"
	"github.com/rohanthewiz/rlink/core/pattern"
)

// ValidationError lists every problem found in a manifest.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid route manifest: " + e.Problems[0]
	}
	return fmt.Sprintf("invalid route manifest (%d problems): %s", len(e.Problems), strings.Join(e.Problems, "; "))
}

// Validate checks the whole manifest and reports all problems at once.
func (m *Manifest) Validate() error {
	var problems []string

	if len(m.Routes) == 0 {
		problems = append(problems, "no routes declared")
	}
	if _, ok := rlink.ParseStrategy(m.Strategy); !ok {
		problems = append(problems, fmt.Sprintf("unknown strategy %q", m.Strategy))
	}
	if _, ok := rlink.ParseConflictMode(m.ConflictMode); !ok {
		problems = append(problems, fmt.Sprintf("unknown conflict mode %q", m.ConflictMode))
	}

	problems = append(problems, duplicatePaths(m.Routes)...)

	for i, route := range m.Routes {
		problems = append(problems, validateRoute(i, route)...)
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// duplicatePaths reports each path used by more than one route,
// naming all of them.
func duplicatePaths(routes []Route) []string {
	byPath := lo.GroupBy(routes, func(r Route) string { return r.Path })

	var problems []string
	for _, path := range lo.Uniq(lo.Map(routes, func(r Route, _ int) string { return r.Path })) {
		group := byPath[path]
		if path == "" || len(group) < 2 {
			continue
		}
		names := lo.Map(group, func(r Route, _ int) string { return r.Name })
		problems = append(problems, fmt.Sprintf("path %q is used by multiple routes: [%s]", path, strings.Join(names, ", ")))
	}
	return problems
}

func validateRoute(i int, route Route) []string {
	var problems []string

	label := route.Name
	if label == "" {
		label = fmt.Sprintf("#%d", i+1)
		problems = append(problems, fmt.Sprintf("route %s has no name", label))
	}
	if route.Path == "" {
		return append(problems, fmt.Sprintf("route %s has no path", label))
	}

	tpl, err := pattern.Compile(route.Path)
	if err != nil {
		return append(problems, fmt.Sprintf("route %s: %v", label, err))
	}

	seen := make(map[string]bool, len(route.Params))
	for _, p := range route.Params {
		if p.Name == "" {
			problems = append(problems, fmt.Sprintf("route %s: parameter without a name", label))
			continue
		}
		if seen[p.Name] {
			problems = append(problems, fmt.Sprintf("route %s: parameter %q is declared more than once", label, p.Name))
		}
		seen[p.Name] = true

		kind, ok := rlink.ParseParamKind(p.Type)
		switch {
		case !ok:
			problems = append(problems, fmt.Sprintf("route %s: parameter %q has unknown type %q", label, p.Name, p.Type))
		case kind == rlink.ParamEnum && len(p.Values) == 0:
			problems = append(problems, fmt.Sprintf("route %s: enum parameter %q has no values", label, p.Name))
		case kind != rlink.ParamEnum && len(p.Values) > 0:
			problems = append(problems, fmt.Sprintf("route %s: parameter %q lists values but is not an enum", label, p.Name))
		}
	}

	for _, name := range tpl.Placeholders() {
		if !seen[name] {
			problems = append(problems, fmt.Sprintf("route %s: placeholder {%s} has no declared parameter", label, name))
		}
	}

	return problems
}
