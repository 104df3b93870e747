package rlink_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rlink"
	"github.com/rohanthewiz/rlink/internal/logging"
)

// recordedRegistry wraps every sample factory with rec.
func recordedRegistry(rec *recorder) *rlink.Registry {
	entries := sampleEntries()
	for i := range entries {
		entries[i].Factory = rec.wrap(entries[i].Template, entries[i].Factory)
	}
	return rlink.MustRegistry(entries)
}

func TestResolveProfileAndSettings(t *testing.T) {
	res := rlink.NewResolver(sampleRegistry(), nil, nil)

	routes, err := res.Resolve("myapp://open?stack=profile%2F123%7Csettings")
	assert.Nil(t, err)
	assert.Equal(t, len(routes), 2)

	profile, ok := routes[0].(Profile)
	assert.True(t, ok)
	assert.Equal(t, profile.UserID, "123")

	_, ok = routes[1].(Settings)
	assert.True(t, ok)
}

func TestResolveQueryParameters(t *testing.T) {
	res := rlink.NewResolver(sampleRegistry(), nil, nil)

	routes, err := res.Resolve("myapp://open?stack=home%7CSEARCH%3Fq%3Dlamp%26sort%3Dlatest%26page%3Dx")
	assert.Nil(t, err)
	assert.Equal(t, len(routes), 2)

	s := routes[1].(Search)
	assert.Equal(t, s.Query, "lamp")
	assert.Equal(t, *s.Sort, "LATEST")
	assert.True(t, s.Page == nil)
}

func TestResolveUnknownPathStopsEarly(t *testing.T) {
	rec := newRecorder()
	res := rlink.NewResolver(recordedRegistry(rec), nil, nil)

	routes, err := res.Resolve("myapp://open?stack=home%7Cnowhere%2F1%7Cprofile%2F5")
	assert.True(t, routes == nil)
	assert.True(t, errors.Is(err, rlink.ErrUnknownPath))

	var rerr *rlink.Error
	assert.True(t, errors.As(err, &rerr))
	assert.Equal(t, rerr.Path, "nowhere/1")

	assert.Equal(t, rec.calls["home"], 1)
	assert.Equal(t, rec.calls["profile/{userId}"], 0)
}

func TestResolveCoercionErrorPropagates(t *testing.T) {
	rec := newRecorder()
	res := rlink.NewResolver(recordedRegistry(rec), nil, nil)

	_, err := res.Resolve("myapp://open?stack=product%2Fabc%7Csettings")
	assert.True(t, rlink.IsKind(err, rlink.KindInvalidParameter))

	var rerr *rlink.Error
	assert.True(t, errors.As(err, &rerr))
	assert.Equal(t, rerr.Template, "product/{productId}")
	assert.Equal(t, rerr.Param, "productId")
	assert.Equal(t, rec.calls["settings"], 0)
}

func TestResolveMissingParameter(t *testing.T) {
	res := rlink.NewResolver(sampleRegistry(), nil, nil)

	_, err := res.Resolve("myapp://open?stack=search%3Fsort%3Dlatest")
	assert.True(t, errors.Is(err, rlink.ErrMissingParameter))
}

func TestResolveParsingFailed(t *testing.T) {
	rec := newRecorder()
	res := rlink.NewResolver(recordedRegistry(rec), nil, nil)

	_, err := res.Resolve("myapp://open?path=home")
	assert.True(t, errors.Is(err, rlink.ErrParsingFailed))
	assert.Equal(t, len(rec.calls), 0)
}

func TestResolveOnlySeparatorsIsEmpty(t *testing.T) {
	res := rlink.NewResolver(sampleRegistry(), nil, nil)

	routes, err := res.Resolve("myapp://open?stack=%7C")
	assert.Nil(t, err)
	assert.Equal(t, len(routes), 0)
}

func TestResolveNotInitialized(t *testing.T) {
	_, err := rlink.NewResolver(nil, nil, nil).Resolve("myapp://open?stack=home")
	assert.True(t, errors.Is(err, rlink.ErrNotInitialized))

	var res *rlink.Resolver
	_, err = res.ResolvePaths([]string{"home"})
	assert.True(t, errors.Is(err, rlink.ErrNotInitialized))
}

func TestResolveCustomParser(t *testing.T) {
	res := rlink.NewResolver(sampleRegistry(), rlink.NewStackParser("s"), nil)

	routes, err := res.Resolve("myapp://open?s=settings")
	assert.Nil(t, err)
	assert.Equal(t, len(routes), 1)
}

func TestResolveLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	res := rlink.NewResolver(sampleRegistry(), nil, logging.New(&buf, "debug"))

	_, err := res.Resolve("myapp://open?stack=home%7Cmissing")
	assert.True(t, err != nil)
	assert.Contains(t, buf.String(), `"msg":"resolved path"`)
	assert.Contains(t, buf.String(), `"msg":"no template matches path"`)
	assert.Contains(t, buf.String(), `"path":"missing"`)
}

func TestResolveIsRepeatable(t *testing.T) {
	res := rlink.NewResolver(sampleRegistry(), nil, nil)
	link := "myapp://open?stack=home%7Cproduct%2F8"

	first, err := res.Resolve(link)
	assert.Nil(t, err)
	second, err := res.Resolve(link)
	assert.Nil(t, err)

	assert.Equal(t, len(first), len(second))
	assert.Equal(t, first[1].(Product).ID, second[1].(Product).ID)
}
