package rlink

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"

	"github.com/rohanthewiz/rlink/consts"
)

var ErrEmptyStack = errors.New("no paths to encode")

// StackParser splits a composite deep link into its concrete paths.
type StackParser interface {
	Parse(link string) ([]string, error)
}

// StackEncoder is the inverse of StackParser.
type StackEncoder interface {
	Encode(base string, paths []string) (string, error)
}

// DefaultStackParser reads the back stack from one query parameter of the
// link, Param ("stack" when empty), holding percent-encoded concrete paths
// separated by '|':
//
//	myapp://open?stack=home%7Cproduct%2F123%3Fref%3Dpush
//
// The value is decoded exactly once, then split. Blank entries are dropped
// and order is kept. An empty result is not an error here; callers decide
// what a link without entries means.
type DefaultStackParser struct {
	Param string
}

// NewStackParser returns a parser reading the given query parameter.
func NewStackParser(param string) *DefaultStackParser {
	return &DefaultStackParser{Param: param}
}

func (p *DefaultStackParser) param() string {
	if p == nil || p.Param == "" {
		return consts.StackParam
	}
	return p.Param
}

// Parse fails with ParsingFailed when the link is not a URI, when the
// parameter is missing or blank, or when it is not valid percent-encoding.
func (p *DefaultStackParser) Parse(link string) ([]string, error) {
	name := p.param()

	u, err := url.Parse(link)
	if err != nil {
		return nil, parsingFailed(link, err.Error(), err)
	}

	encoded, ok := rawQueryParam(u.RawQuery, name)
	if !ok {
		return nil, parsingFailed(link, fmt.Sprintf("missing '%s' query parameter", name), nil)
	}

	decoded, err := url.QueryUnescape(encoded)
	if err != nil {
		return nil, parsingFailed(link, err.Error(), err)
	}
	if strings.TrimSpace(decoded) == "" {
		return nil, parsingFailed(link, fmt.Sprintf("blank '%s' query parameter", name), nil)
	}

	return lo.Filter(strings.Split(decoded, consts.StackSeparator), func(entry string, _ int) bool {
		return strings.TrimSpace(entry) != ""
	}), nil
}

// Encode builds a composite link by adding the parameter to base.
// Existing query parameters of base are kept.
func (p *DefaultStackParser) Encode(base string, paths []string) (string, error) {
	return EncodeStack(base, p.param(), paths...)
}

// EncodeStack joins paths with '|', percent-encodes the result and adds it
// to base as the query parameter param. A path that is blank or contains
// '|' could not be read back and is rejected.
func EncodeStack(base string, param string, paths ...string) (string, error) {
	if len(paths) == 0 {
		return "", ErrEmptyStack
	}
	for _, path := range paths {
		if strings.TrimSpace(path) == "" || strings.Contains(path, consts.StackSeparator) {
			return "", fmt.Errorf("cannot encode path %q into a stack", path)
		}
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}

	pair := url.QueryEscape(param) + consts.StrEquals + url.QueryEscape(strings.Join(paths, consts.StackSeparator))
	if u.RawQuery == "" {
		u.RawQuery = pair
	} else {
		u.RawQuery += consts.StrAmpersand + pair
	}

	return u.String(), nil
}

// rawQueryParam returns the still-encoded value of the first occurrence
// of name in a raw query string.
func rawQueryParam(rawQuery string, name string) (string, bool) {
	for _, pair := range strings.Split(rawQuery, consts.StrAmpersand) {
		key, value, _ := strings.Cut(pair, consts.StrEquals)
		if k, err := url.QueryUnescape(key); err == nil {
			key = k
		}
		if key == name {
			return value, true
		}
	}
	return "", false
}
