package rlink

import (
	"errors"
	"fmt"
	"reflect"
)

// Kind tags an *Error with one of the failure classes a resolution
// or navigation can end in.
type Kind int

const (
	KindParsingFailed Kind = iota + 1
	KindUnknownPath
	KindMissingParameter
	KindInvalidParameter
	KindNavigationFailed
	KindNotInitialized
)

func (k Kind) String() string {
	switch k {
	case KindParsingFailed:
		return "ParsingFailed"
	case KindUnknownPath:
		return "UnknownPath"
	case KindMissingParameter:
		return "MissingParameter"
	case KindInvalidParameter:
		return "InvalidParameter"
	case KindNavigationFailed:
		return "NavigationFailed"
	case KindNotInitialized:
		return "NotInitialized"
	default:
		return "Unknown"
	}
}

// Sentinels for errors.Is. An *Error matches a sentinel of the same Kind.
var (
	ErrParsingFailed    = &Error{Kind: KindParsingFailed}
	ErrUnknownPath      = &Error{Kind: KindUnknownPath}
	ErrMissingParameter = &Error{Kind: KindMissingParameter}
	ErrInvalidParameter = &Error{Kind: KindInvalidParameter}
	ErrNavigationFailed = &Error{Kind: KindNavigationFailed}
	ErrNotInitialized   = &Error{Kind: KindNotInitialized}
)

// Error is the single error type returned by resolution and navigation.
// Which fields are set depends on Kind:
//
//   - ParsingFailed:    Link, Reason
//   - UnknownPath:      Path
//   - MissingParameter: Template, Param
//   - InvalidParameter: Template, Param
//   - NavigationFailed: Reason, Detail (opaque strings from the host failure)
//   - NotInitialized:   nothing
//
// Err holds the underlying cause when there is one.
type Error struct {
	Kind     Kind
	Link     string
	Path     string
	Template string
	Param    string
	Reason   string
	Detail   string
	Err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindParsingFailed:
		return fmt.Sprintf("rlink: failed to parse link %q: %s", e.Link, e.Reason)
	case KindUnknownPath:
		return fmt.Sprintf("rlink: no route registered for path %q", e.Path)
	case KindMissingParameter:
		return fmt.Sprintf("rlink: required parameter %q is missing in path %q", e.Param, e.Template)
	case KindInvalidParameter:
		return fmt.Sprintf("rlink: parameter %q in path %q could not be converted", e.Param, e.Template)
	case KindNavigationFailed:
		if e.Detail == "" {
			return fmt.Sprintf("rlink: navigation failed: %s", e.Reason)
		}
		return fmt.Sprintf("rlink: navigation failed: %s: %s", e.Reason, e.Detail)
	case KindNotInitialized:
		return "rlink: navigator used before it was constructed with a registry"
	default:
		return "rlink: unknown error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind, so the package sentinels work
// with errors.Is regardless of the fields carried.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// IsKind reports whether err is or wraps an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func parsingFailed(link, reason string, cause error) *Error {
	return &Error{Kind: KindParsingFailed, Link: link, Reason: reason, Err: cause}
}

func unknownPath(path string) *Error {
	return &Error{Kind: KindUnknownPath, Path: path}
}

func missingParameter(template, param string) *Error {
	return &Error{Kind: KindMissingParameter, Template: template, Param: param}
}

func invalidParameter(template, param string) *Error {
	return &Error{Kind: KindInvalidParameter, Template: template, Param: param}
}

func notInitialized() *Error {
	return &Error{Kind: KindNotInitialized}
}

// navigationFailed carries the host failure's type name and message
// without interpreting them.
func navigationFailed(cause error) *Error {
	return &Error{
		Kind:   KindNavigationFailed,
		Reason: typeName(cause),
		Detail: cause.Error(),
		Err:    cause,
	}
}

// navigationRefused is a NavigationFailed raised before or around the
// host rather than by it, so the reason is named here.
func navigationRefused(reason string, cause error) *Error {
	return &Error{
		Kind:   KindNavigationFailed,
		Reason: reason,
		Detail: cause.Error(),
		Err:    cause,
	}
}

// typeName returns the bare type name of v, "Unknown" for unnamed types.
func typeName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return "Unknown"
	}
	return t.Name()
}
