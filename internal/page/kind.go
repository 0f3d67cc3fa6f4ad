// Package page resolves the page kind once per request and runs that page's
// controller: load, then render or fall back to an error block.
package page

// Kind enumerates the site's pages.
type Kind int

const (
	KindHome Kind = iota
	KindDirectory
	KindDiscover
	KindJoin
	KindThankYou
)

var kindInfo = map[Kind]struct {
	path, title, heading string
}{
	KindHome:      {path: "/", title: "Home", heading: "Welcome to the Timpanogos Chamber"},
	KindDirectory: {path: "/directory", title: "Directory", heading: "Member Directory"},
	KindDiscover:  {path: "/discover", title: "Discover", heading: "Discover Provo"},
	KindJoin:      {path: "/join", title: "Join", heading: "Become a Member"},
	KindThankYou:  {path: "/thankyou", title: "Thank You", heading: "Thank You for Applying"},
}

// String returns the page title.
func (k Kind) String() string { return kindInfo[k].title }

// Path returns the route the page is served on.
func (k Kind) Path() string { return kindInfo[k].path }

// Heading returns the page's h1.
func (k Kind) Heading() string { return kindInfo[k].heading }

// KindForPath resolves a route to a page kind.
func KindForPath(path string) (Kind, bool) {
	for k, info := range kindInfo {
		if info.path == path {
			return k, true
		}
	}
	return 0, false
}
