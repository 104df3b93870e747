package rlink

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rohanthewiz/rlink/core/pattern"
)

// ParamKind is the target type of a parameter coercion.
type ParamKind int

const (
	ParamString ParamKind = iota
	ParamInt              // 32-bit range
	ParamInt64
	ParamBool
	ParamFloat
	ParamEnum
)

func (k ParamKind) String() string {
	switch k {
	case ParamString:
		return "string"
	case ParamInt:
		return "int"
	case ParamInt64:
		return "long"
	case ParamBool:
		return "bool"
	case ParamFloat:
		return "float"
	case ParamEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// ParseParamKind maps a declared type name to a ParamKind.
// A few common aliases are accepted.
func ParseParamKind(name string) (ParamKind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "string", "str":
		return ParamString, true
	case "int", "integer", "int32":
		return ParamInt, true
	case "long", "int64":
		return ParamInt64, true
	case "bool", "boolean":
		return ParamBool, true
	case "float", "double", "float64":
		return ParamFloat, true
	case "enum":
		return ParamEnum, true
	default:
		return 0, false
	}
}

// ParamSpec declares one parameter of a route: its name, target kind,
// whether it is required, and the enumerant names for ParamEnum.
type ParamSpec struct {
	Name     string
	Kind     ParamKind
	Required bool
	Enum     []string
}

// Coerce converts a raw parameter value according to spec.
//
// An optional parameter that is absent or fails to convert yields (nil, nil).
// A required parameter fails with MissingParameter when it is a string and
// absent, and with InvalidParameter in every other failing case.
// template is only used to label the error.
func Coerce(template string, spec ParamSpec, raw string, present bool) (any, error) {
	v, ok := convert(spec, raw, present)
	if ok {
		return v, nil
	}
	if !spec.Required {
		return nil, nil
	}
	if spec.Kind == ParamString && !present {
		return nil, missingParameter(template, spec.Name)
	}
	return nil, invalidParameter(template, spec.Name)
}

func convert(spec ParamSpec, raw string, present bool) (any, bool) {
	if !present {
		return nil, false
	}

	switch spec.Kind {
	case ParamString:
		return raw, true

	case ParamInt:
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, false
		}
		return int(n), true

	case ParamInt64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, false
		}
		return n, true

	case ParamBool:
		switch {
		case strings.EqualFold(raw, "true"):
			return true, true
		case strings.EqualFold(raw, "false"):
			return false, true
		}
		return nil, false

	case ParamFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, false
		}
		return f, true

	case ParamEnum:
		// A Caser holds state, so one is made per call
		upper := cases.Upper(language.Und).String(raw)
		if slices.Contains(spec.Enum, upper) {
			return upper, true
		}
		return nil, false
	}

	return nil, false
}

// Params is the parameter map handed to a Factory: the raw values captured
// for one concrete path together with the template that matched it.
// The typed accessors apply Coerce. Required accessors return the
// coercion error; Opt accessors return nil instead of failing.
type Params struct {
	template string
	raw      pattern.Params
}

// NewParams wraps a raw parameter map for the given template.
func NewParams(template string, raw map[string]string) Params {
	return Params{template: template, raw: raw}
}

// Template returns the template the parameters were matched against.
func (p Params) Template() string {
	return p.template
}

// Raw returns the undecoded value for name.
func (p Params) Raw(name string) (string, bool) {
	v, ok := p.raw[name]
	return v, ok
}

// Len returns the number of captured parameters.
func (p Params) Len() int {
	return len(p.raw)
}

// Values returns a copy of the raw parameter map.
func (p Params) Values() pattern.Params {
	out := make(pattern.Params, len(p.raw))
	for k, v := range p.raw {
		out[k] = v
	}
	return out
}

// Coerce applies Coerce to the value named by spec.Name.
func (p Params) Coerce(spec ParamSpec) (any, error) {
	raw, ok := p.raw[spec.Name]
	return Coerce(p.template, spec, raw, ok)
}

func (p Params) String(name string) (string, error) {
	return required[string](p, ParamSpec{Name: name, Kind: ParamString, Required: true})
}

func (p Params) Int(name string) (int, error) {
	return required[int](p, ParamSpec{Name: name, Kind: ParamInt, Required: true})
}

func (p Params) Int64(name string) (int64, error) {
	return required[int64](p, ParamSpec{Name: name, Kind: ParamInt64, Required: true})
}

func (p Params) Bool(name string) (bool, error) {
	return required[bool](p, ParamSpec{Name: name, Kind: ParamBool, Required: true})
}

func (p Params) Float(name string) (float64, error) {
	return required[float64](p, ParamSpec{Name: name, Kind: ParamFloat, Required: true})
}

// Enum uppercases the raw value and returns it if it is one of values.
func (p Params) Enum(name string, values ...string) (string, error) {
	return required[string](p, ParamSpec{Name: name, Kind: ParamEnum, Required: true, Enum: values})
}

func (p Params) OptString(name string) *string {
	return optional[string](p, ParamSpec{Name: name, Kind: ParamString})
}

func (p Params) OptInt(name string) *int {
	return optional[int](p, ParamSpec{Name: name, Kind: ParamInt})
}

func (p Params) OptInt64(name string) *int64 {
	return optional[int64](p, ParamSpec{Name: name, Kind: ParamInt64})
}

func (p Params) OptBool(name string) *bool {
	return optional[bool](p, ParamSpec{Name: name, Kind: ParamBool})
}

func (p Params) OptFloat(name string) *float64 {
	return optional[float64](p, ParamSpec{Name: name, Kind: ParamFloat})
}

func (p Params) OptEnum(name string, values ...string) *string {
	return optional[string](p, ParamSpec{Name: name, Kind: ParamEnum, Enum: values})
}

func required[T any](p Params, spec ParamSpec) (T, error) {
	var zero T
	v, err := p.Coerce(spec)
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

func optional[T any](p Params, spec ParamSpec) *T {
	v, _ := p.Coerce(spec)
	if v == nil {
		return nil
	}
	t := v.(T)
	return &t
}
