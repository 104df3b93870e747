package pattern

import (
	"strings"

	"github.com/rohanthewiz/rlink/consts"
)

// Match compares a concrete path such as "profile/123?ref=share" with a
// template such as "profile/{id}" and extracts the parameters.
// It returns false when the segment counts differ or a literal segment
// does not equal its path segment ignoring case.
//
// Placeholder values are bound raw (no percent-decoding). Query pairs are
// merged after the path values; pairs without '=' are ignored and the last
// occurrence of a repeated key wins.
func Match(concretePath string, template string) (Params, bool) {
	return compile(template).Match(concretePath)
}

// splitQuery cuts the path at the first '?'.
// The query part is empty when there is no '?'.
func splitQuery(concretePath string) (path string, query string) {
	if i := strings.IndexByte(concretePath, consts.RuneQuestion); i >= 0 {
		return concretePath[:i], concretePath[i+1:]
	}
	return concretePath, ""
}

// parseQuery adds key=value pairs to params.
func parseQuery(query string, params Params) {
	for _, pair := range strings.Split(query, consts.StrAmpersand) {
		key, value, found := strings.Cut(pair, consts.StrEquals)
		if !found {
			continue
		}
		params[key] = value
	}
}
