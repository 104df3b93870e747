package manifest

import (
	"reflect"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rohanthewiz/rlink"
)

// dynamicFactory builds DynamicRoutes for one manifest route.
type dynamicFactory struct {
	name     string
	template string
	specs    []rlink.ParamSpec
}

func newDynamicFactory(route Route) *dynamicFactory {
	f := &dynamicFactory{name: route.Name, template: route.Path}
	for _, p := range route.Params {
		f.specs = append(f.specs, specFor(p))
	}
	return f
}

// specFor converts a validated Param. Enum values are uppercased since
// raw values are uppercased before they are compared.
func specFor(p Param) rlink.ParamSpec {
	kind, _ := rlink.ParseParamKind(p.Type)
	spec := rlink.ParamSpec{Name: p.Name, Kind: kind, Required: !p.Optional}

	if kind == rlink.ParamEnum {
		upper := cases.Upper(language.Und)
		for _, v := range p.Values {
			spec.Enum = append(spec.Enum, upper.String(v))
		}
	}
	return spec
}

func (f *dynamicFactory) Create(params rlink.Params) (any, error) {
	values := make(map[string]any, len(f.specs))

	for _, spec := range f.specs {
		v, err := params.Coerce(spec)
		if err != nil {
			return nil, err
		}
		if v != nil {
			values[spec.Name] = v
		}
	}

	return rlink.DynamicRoute{Name: f.name, Template: f.template, Values: values}, nil
}

func (f *dynamicFactory) RouteType() reflect.Type {
	return reflect.TypeFor[rlink.DynamicRoute]()
}
