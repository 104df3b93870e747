package pattern

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rohanthewiz/rlink/consts"
)

var (
	ErrDuplicatePlaceholder = errors.New("duplicate placeholder name")
	ErrEmptyPlaceholder     = errors.New("empty placeholder name")
	ErrMissingValue         = errors.New("no value for placeholder")
	ErrInvalidValue         = errors.New("placeholder value contains a separator")
)

// segment is one slash-delimited piece of a template.
// Literal segments compare case-insensitively; placeholder segments bind.
type segment struct {
	text  string // literal text, or the placeholder name
	param bool
}

// Template is a compiled path template such as "profile/{userId}".
// It is immutable once compiled and safe to share between goroutines.
//
// Structure example for "shop/{category}/item/{itemId}":
//
//	[shop] [{category}] [item] [{itemId}]
//
// Matching is segment-count exact: there are no wildcard or catch-all segments.
type Template struct {
	raw      string
	segments []segment
	names    []string
}

// Compile splits a template into segments and checks that every
// placeholder name is non-empty and unique within the template.
func Compile(template string) (*Template, error) {
	tpl := compile(template)

	seen := make(map[string]struct{}, len(tpl.names))
	for _, name := range tpl.names {
		if name == "" {
			return nil, fmt.Errorf("template %q: %w", template, ErrEmptyPlaceholder)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("template %q: %w %q", template, ErrDuplicatePlaceholder, name)
		}
		seen[name] = struct{}{}
	}

	return tpl, nil
}

// MustCompile is like Compile but panics on an invalid template.
// Intended for package level route tables.
func MustCompile(template string) *Template {
	tpl, err := Compile(template)
	if err != nil {
		panic(err)
	}
	return tpl
}

// compile splits without validating, so the string form of Match
// behaves exactly like the plain segment walk.
func compile(template string) *Template {
	parts := strings.Split(template, consts.StrFwdSlash)
	tpl := &Template{
		raw:      template,
		segments: make([]segment, len(parts)),
	}

	for i, part := range parts {
		if isPlaceholder(part) {
			name := part[1 : len(part)-1]
			tpl.segments[i] = segment{text: name, param: true}
			tpl.names = append(tpl.names, name)
			continue
		}
		tpl.segments[i] = segment{text: part}
	}

	return tpl
}

// isPlaceholder reports whether a segment has the form {name}.
func isPlaceholder(s string) bool {
	return len(s) >= 2 && s[0] == consts.RuneOpenBrace && s[len(s)-1] == consts.RuneCloseBrace
}

// String returns the template as it was declared.
func (t *Template) String() string {
	return t.raw
}

// Placeholders returns placeholder names in declaration order.
func (t *Template) Placeholders() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Segments returns the number of slash-delimited segments.
func (t *Template) Segments() int {
	return len(t.segments)
}

// IsPlaceholder reports whether segment i is a placeholder.
func (t *Template) IsPlaceholder(i int) bool {
	return i >= 0 && i < len(t.segments) && t.segments[i].param
}

// Literals returns the number of literal (non-placeholder) segments.
func (t *Template) Literals() int {
	n := 0
	for _, seg := range t.segments {
		if !seg.param {
			n++
		}
	}
	return n
}

// Match checks a concrete path against the template and returns the
// captured parameters, or false when the path does not fit.
func (t *Template) Match(concretePath string) (Params, bool) {
	path, query := splitQuery(concretePath)
	parts := strings.Split(path, consts.StrFwdSlash)

	if len(parts) != len(t.segments) {
		return nil, false
	}

	params := make(Params, len(t.names))

	for i, seg := range t.segments {
		if seg.param {
			params[seg.text] = parts[i]
			continue
		}
		if !strings.EqualFold(seg.text, parts[i]) {
			return nil, false
		}
	}

	if query != "" {
		parseQuery(query, params)
	}

	return params, true
}

// Expand renders a concrete path from placeholder values.
// Literal segments are written as declared. Values are used verbatim,
// so a value containing a slash or a question mark is rejected
// because it could not be matched back to the same template.
func (t *Template) Expand(values map[string]string) (string, error) {
	var sb strings.Builder

	for i, seg := range t.segments {
		if i > 0 {
			sb.WriteByte(consts.RuneFwdSlash)
		}
		if !seg.param {
			sb.WriteString(seg.text)
			continue
		}

		v, ok := values[seg.text]
		if !ok {
			return "", fmt.Errorf("template %q: %w %q", t.raw, ErrMissingValue, seg.text)
		}
		if strings.ContainsAny(v, consts.StrFwdSlash+consts.StrQuestion) {
			return "", fmt.Errorf("template %q: %w: %q", t.raw, ErrInvalidValue, seg.text)
		}
		sb.WriteString(v)
	}

	return sb.String(), nil
}

// Overlaps reports whether some concrete path would match both templates.
// That is the case when they have the same number of segments and at every
// position either side is a placeholder or the literals are equal ignoring case.
func Overlaps(a, b *Template) bool {
	if len(a.segments) != len(b.segments) {
		return false
	}

	for i := range a.segments {
		sa, sb := a.segments[i], b.segments[i]
		if sa.param || sb.param {
			continue
		}
		if !strings.EqualFold(sa.text, sb.text) {
			return false
		}
	}

	return true
}
