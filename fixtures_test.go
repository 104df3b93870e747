package rlink_test

import (
	"errors"
	"reflect"

	"github.com/rohanthewiz/rlink"
)

type Home struct{}

type Settings struct{}

type Profile struct {
	UserID string `route:"userId"`
}

type Product struct {
	ID  int64   `route:"productId"`
	Ref *string `route:"ref"`
}

type Search struct {
	Query string  `route:"q"`
	Sort  *string `route:"sort,enum=LATEST|POPULAR"`
	Page  *int    `route:"page"`
}

// recorder counts factory calls per template.
type recorder struct {
	calls map[string]int
}

func newRecorder() *recorder {
	return &recorder{calls: make(map[string]int)}
}

func (r *recorder) wrap(template string, f rlink.Factory) rlink.Factory {
	return recordingFactory{template: template, next: f, rec: r}
}

type recordingFactory struct {
	template string
	next     rlink.Factory
	rec      *recorder
}

func (f recordingFactory) Create(p rlink.Params) (any, error) {
	f.rec.calls[f.template]++
	return f.next.Create(p)
}

func (f recordingFactory) RouteType() reflect.Type {
	return f.next.(rlink.RouteTyper).RouteType()
}

func sampleEntries() []rlink.Entry {
	return []rlink.Entry{
		{Template: "home", Factory: rlink.Constant(Home{})},
		{Template: "settings", Factory: rlink.Constant(Settings{})},
		{Template: "profile/{userId}", Factory: rlink.MustStructFactory[Profile]()},
		{Template: "product/{productId}", Factory: rlink.MustStructFactory[Product]()},
		{Template: "search", Factory: rlink.MustStructFactory[Search]()},
	}
}

func sampleRegistry() *rlink.Registry {
	return rlink.MustRegistry(sampleEntries())
}

// failingHost rejects the operation named by failOn.
type failingHost struct {
	*rlink.MemoryHost
	failOn string
	err    error
}

func (h *failingHost) Replace(d rlink.Destination) error {
	if h.failOn == "replace" {
		return h.err
	}
	return h.MemoryHost.Replace(d)
}

func (h *failingHost) Push(d rlink.Destination) error {
	if h.failOn == "push" {
		return h.err
	}
	return h.MemoryHost.Push(d)
}

// HostRejected is a host error with its own type name.
type HostRejected struct {
	Msg string
}

func (e *HostRejected) Error() string { return e.Msg }

// sequentialOnlyHost implements Host but not BatchHost.
type sequentialOnlyHost struct {
	replaced, pushed int
}

func (h *sequentialOnlyHost) Replace(rlink.Destination) error { h.replaced++; return nil }
func (h *sequentialOnlyHost) Push(rlink.Destination) error    { h.pushed++; return nil }

// panickingHost panics on Replace.
type panickingHost struct {
	value any
}

func (h panickingHost) Replace(rlink.Destination) error { panic(h.value) }
func (h panickingHost) Push(rlink.Destination) error    { return nil }

var errBoom = errors.New("boom")
