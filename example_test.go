package rlink_test

import (
	"fmt"

	"github.com/rohanthewiz/rlink"
)

func ExampleNavigator_NavigateTo() {
	type Home struct{}
	type Product struct {
		ID  int64   `route:"productId"`
		Ref *string `route:"ref"`
	}

	registry := rlink.MustRegistry([]rlink.Entry{
		{Template: "home", Factory: rlink.Constant(Home{})},
		{Template: "product/{productId}", Factory: rlink.MustStructFactory[Product]()},
	})

	nav := rlink.NewNavigator(registry)
	host := rlink.NewMemoryHost()

	err := nav.NavigateTo(host, "myapp://open?stack=home%7Cproduct%2F123%3Fref%3Dpush")
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, d := range host.Stack() {
		fmt.Println(d.Template)
	}
	top, _ := host.Current()
	p := top.Route.(Product)
	fmt.Println(p.ID, *p.Ref)

	// Output:
	// home
	// product/{productId}
	// 123 push
}

func ExampleRegistry_PathFor() {
	type Profile struct {
		UserID int64   `route:"userId"`
		Tab    *string `route:"tab,enum=POSTS|LIKES"`
	}

	registry := rlink.MustRegistry([]rlink.Entry{
		{Template: "profile/{userId}", Factory: rlink.MustStructFactory[Profile]()},
	})

	tab := "LIKES"
	path, _ := registry.PathFor(Profile{UserID: 7, Tab: &tab})
	fmt.Println(path)

	link, _ := rlink.NewNavigator(registry).LinkFor("myapp://open", Profile{UserID: 7})
	fmt.Println(link)

	// Output:
	// profile/7?tab=LIKES
	// myapp://open?stack=profile%2F7
}

func ExampleIsKind() {
	registry := rlink.MustRegistry([]rlink.Entry{
		{Template: "home", Factory: rlink.Constant("home")},
	})

	_, err := rlink.NewNavigator(registry).Resolve("myapp://open?stack=home%7Cnowhere")
	fmt.Println(rlink.IsKind(err, rlink.KindUnknownPath))
	fmt.Println(err)

	// Output:
	// true
	// rlink: no route registered for path "nowhere"
}
