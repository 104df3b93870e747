package pattern_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rlink/core/pattern"
	"github.com/rohanthewiz/rlink/core/pattern/testdata"
)

func TestMatchExactPath(t *testing.T) {
	params, ok := pattern.Match("home/dashboard", "home/dashboard")
	assert.True(t, ok)
	assert.Equal(t, len(params), 0)
	assert.True(t, params != nil)
}

func TestMatchPathVariable(t *testing.T) {
	params, ok := pattern.Match("profile/12345", "profile/{userId}")
	assert.True(t, ok)
	assert.Equal(t, len(params), 1)
	assert.Equal(t, params["userId"], "12345")
}

func TestMatchMultiplePathVariables(t *testing.T) {
	params, ok := pattern.Match("shop/category/books/item/99", "shop/category/{categoryName}/item/{itemId}")
	assert.True(t, ok)
	assert.Equal(t, params["categoryName"], "books")
	assert.Equal(t, params["itemId"], "99")
}

func TestMatchQueryParameters(t *testing.T) {
	params, ok := pattern.Match("search?keyword=golang&sort=latest", "search")
	assert.True(t, ok)
	assert.Equal(t, params["keyword"], "golang")
	assert.Equal(t, params["sort"], "latest")
}

func TestMatchMixedParameters(t *testing.T) {
	params, ok := pattern.Match("profile/user_123?ref=share_button&mode=dark", "profile/{id}")
	assert.True(t, ok)
	assert.Equal(t, len(params), 3)
	assert.Equal(t, params["id"], "user_123")
	assert.Equal(t, params["ref"], "share_button")
	assert.Equal(t, params["mode"], "dark")
}

func TestMatchLastQueryValueWins(t *testing.T) {
	params, ok := pattern.Match("search?sort=a&sort=b", "search")
	assert.True(t, ok)
	assert.DeepEqual(t, params, pattern.Params{"sort": "b"})
}

func TestMatchQueryOverwritesPlaceholder(t *testing.T) {
	params, ok := pattern.Match("profile/1?userId=2", "profile/{userId}")
	assert.True(t, ok)
	assert.Equal(t, params["userId"], "2")
}

func TestMatchIgnoresPairsWithoutEquals(t *testing.T) {
	params, ok := pattern.Match("search?flag&q=go&=empty&k=a=b", "search")
	assert.True(t, ok)
	_, hasFlag := params.Get("flag")
	assert.False(t, hasFlag)
	assert.Equal(t, params["q"], "go")
	assert.Equal(t, params[""], "empty")
	assert.Equal(t, params["k"], "a=b")
}

func TestMatchPlaceholderIsRaw(t *testing.T) {
	params, ok := pattern.Match("tag/hello%20world", "tag/{name}")
	assert.True(t, ok)
	assert.Equal(t, params["name"], "hello%20world")
}

func TestMatchNoMatch(t *testing.T) {
	notMatching := []struct {
		path     string
		template string
	}{
		{"profile/123/edit", "profile/{id}"},
		{"profile", "profile/{id}"},
		{"profile/", "profile"},
		{"", "home"},
		{"home", ""},
		{"a//b", "a/b"},
	}

	for _, tt := range notMatching {
		params, ok := pattern.Match(tt.path, tt.template)
		assert.False(t, ok)
		assert.Equal(t, len(params), 0)
	}
}

func TestMatchStaticPathDiffers(t *testing.T) {
	_, ok := pattern.Match("settings/profile", "settings/account")
	assert.False(t, ok)
}

func TestMatchIgnoreCase(t *testing.T) {
	_, ok := pattern.Match("MyPage/Settings", "mypage/settings")
	assert.True(t, ok)
}

func TestMatchEmptyTemplate(t *testing.T) {
	params, ok := pattern.Match("", "")
	assert.True(t, ok)
	assert.Equal(t, len(params), 0)

	params, ok = pattern.Match("?q=1", "")
	assert.True(t, ok)
	assert.Equal(t, params["q"], "1")
}

func TestMatchConsecutiveSlashes(t *testing.T) {
	_, ok := pattern.Match("a//b", "a//b")
	assert.True(t, ok)

	params, ok := pattern.Match("a//b", "a/{mid}/b")
	assert.True(t, ok)
	assert.Equal(t, params["mid"], "")
}

func TestMatchLoneBraceIsLiteral(t *testing.T) {
	params, ok := pattern.Match("a/{", "a/{")
	assert.True(t, ok)
	assert.Equal(t, len(params), 0)

	_, ok = pattern.Match("a/x", "a/{")
	assert.False(t, ok)

	tpl := pattern.MustCompile("a/{")
	assert.False(t, tpl.IsPlaceholder(1))
	assert.Equal(t, len(tpl.Placeholders()), 0)
}

func TestMatchFixtures(t *testing.T) {
	fixtures := testdata.Fixtures("testdata/templates.txt")
	assert.True(t, len(fixtures) > 0)

	for _, fx := range fixtures {
		t.Run(fx.Template, func(t *testing.T) {
			tpl := pattern.MustCompile(fx.Template)
			_, ok := tpl.Match(fx.Path)
			assert.True(t, ok)
		})
	}
}
