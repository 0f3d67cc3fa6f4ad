package render

import "html/template"

// NavItem is one link of the site navigation.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// Page is the layout's view model.
type Page struct {
	Title        string
	Heading      string
	Path         string
	Theme        string
	Nav          []NavItem
	Body         template.HTML
	Year         int
	LastModified string
}

// Navigation returns the site links with the one matching path marked active.
func Navigation(path string) []NavItem {
	items := []NavItem{
		{Label: "Home", Href: "/"},
		{Label: "Directory", Href: "/directory"},
		{Label: "Discover", Href: "/discover"},
		{Label: "Join", Href: "/join"},
	}
	for i := range items {
		items[i].Active = items[i].Href == path
	}
	return items
}
