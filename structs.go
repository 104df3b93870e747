package rlink

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/rohanthewiz/rlink/consts"
	"github.com/rohanthewiz/rlink/core/pattern"
)

var (
	ErrNotStruct        = errors.New("route type is not a struct")
	ErrUnsupportedField = errors.New("unsupported route field type")
	ErrWrongRouteType   = errors.New("route has the wrong type for this factory")
)

// structField ties one tagged struct field to its parameter declaration.
type structField struct {
	index int
	spec  ParamSpec
	typ   reflect.Type // field type with the pointer removed
	ptr   bool
}

type structFactory[T any] struct {
	fields []structField
}

// StructFactory builds a Factory for the struct type T from `route` tags:
//
//	type Profile struct {
//	    UserID int64   `route:"userId"`
//	    Ref    *string `route:"ref"`
//	    Tab    *string `route:"tab,enum=POSTS|LIKES"`
//	}
//
// Non-pointer fields are required and pointer fields optional.
// Supported field types are string kinds, int, int32, int64, bool,
// float32 and float64. The enum option turns a string field into an
// enumerant match. Untagged fields and fields tagged "-" are ignored.
func StructFactory[T any]() (Factory, error) {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%s: %w", t, ErrNotStruct)
	}

	f := &structFactory[T]{}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup(consts.RouteTag)
		if !ok || tag == "-" {
			continue
		}
		if !sf.IsExported() {
			return nil, fmt.Errorf("%s.%s: %w: field is not exported", t, sf.Name, ErrUnsupportedField)
		}

		name, enum := parseRouteTag(tag)
		if name == "" {
			name = sf.Name
		}

		ft, ptr := sf.Type, false
		if ft.Kind() == reflect.Pointer {
			ft, ptr = ft.Elem(), true
		}

		kind, ok := kindForType(ft, enum != nil)
		if !ok {
			return nil, fmt.Errorf("%s.%s: %w: %s", t, sf.Name, ErrUnsupportedField, sf.Type)
		}

		f.fields = append(f.fields, structField{
			index: i,
			spec:  ParamSpec{Name: name, Kind: kind, Required: !ptr, Enum: enum},
			typ:   ft,
			ptr:   ptr,
		})
	}

	return f, nil
}

// MustStructFactory is like StructFactory but panics on error.
func MustStructFactory[T any]() Factory {
	f, err := StructFactory[T]()
	if err != nil {
		panic(err)
	}
	return f
}

func (f *structFactory[T]) Create(params Params) (any, error) {
	var out T
	rv := reflect.ValueOf(&out).Elem()

	for _, fd := range f.fields {
		v, err := params.Coerce(fd.spec)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}

		val := reflect.ValueOf(v).Convert(fd.typ)
		field := rv.Field(fd.index)
		if fd.ptr {
			p := reflect.New(fd.typ)
			p.Elem().Set(val)
			field.Set(p)
			continue
		}
		field.Set(val)
	}

	return out, nil
}

func (f *structFactory[T]) RouteType() reflect.Type {
	return reflect.TypeFor[T]()
}

// Encode writes the tagged fields of route in declaration order.
// Nil optional fields are left out.
func (f *structFactory[T]) Encode(route any) ([]pattern.Parameter, error) {
	rv := reflect.ValueOf(route)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if !rv.IsValid() || rv.Type() != reflect.TypeFor[T]() {
		return nil, fmt.Errorf("%T: %w", route, ErrWrongRouteType)
	}

	out := make([]pattern.Parameter, 0, len(f.fields))
	for _, fd := range f.fields {
		field := rv.Field(fd.index)
		if fd.ptr {
			if field.IsNil() {
				continue
			}
			field = field.Elem()
		}
		out = append(out, pattern.Parameter{Key: fd.spec.Name, Value: formatValue(field)})
	}

	return out, nil
}

// parseRouteTag splits `name,enum=A|B`.
func parseRouteTag(tag string) (name string, enum []string) {
	parts := strings.Split(tag, ",")
	name = strings.TrimSpace(parts[0])

	for _, opt := range parts[1:] {
		key, value, _ := strings.Cut(strings.TrimSpace(opt), "=")
		if key == "enum" {
			enum = strings.Split(value, "|")
		}
	}

	return name, enum
}

func kindForType(t reflect.Type, isEnum bool) (ParamKind, bool) {
	switch t.Kind() {
	case reflect.String:
		if isEnum {
			return ParamEnum, true
		}
		return ParamString, true
	case reflect.Int, reflect.Int32:
		return ParamInt, true
	case reflect.Int64:
		return ParamInt64, true
	case reflect.Bool:
		return ParamBool, true
	case reflect.Float32, reflect.Float64:
		return ParamFloat, true
	default:
		return 0, false
	}
}

// formatValue renders a parameter value the way Coerce would read it back.
func formatValue(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	default:
		return fmt.Sprint(v.Interface())
	}
}
