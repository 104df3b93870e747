// Package rlink resolves composite deep links into typed route values and
// rebuilds a navigation back stack from them.
//
// A composite link carries a whole back stack in one query parameter:
//
//	myapp://open?stack=home%7Cproduct%2F123%3Fref%3Dpush%7Csettings
//
// decodes to "home|product/123?ref=push|settings". Each entry is matched
// against the templates of a Registry ("product/{productId}"), the first
// matching template's Factory turns the captured parameters into a route
// value, and a StackBuilder replays the routes onto a navigation Host.
//
// # Basic Usage
//
//	type Home struct{}
//	type Product struct {
//	    ID  int64   `route:"productId"`
//	    Ref *string `route:"ref"`
//	}
//
//	registry := rlink.MustRegistry([]rlink.Entry{
//	    {Template: "home", Factory: rlink.Constant(Home{})},
//	    {Template: "product/{productId}", Factory: rlink.MustStructFactory[Product]()},
//	})
//
//	nav := rlink.NewNavigator(registry, rlink.WithStrategy(rlink.StrategyBatch))
//	err := nav.NavigateTo(host, link)
//
// Resolution is all-or-nothing: one unknown path or one parameter that
// fails to convert aborts the link and nothing reaches the host.
// Every failure is an *Error tagged with a Kind.
package rlink
