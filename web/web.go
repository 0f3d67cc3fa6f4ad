// Package web embeds the site's static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var assets embed.FS

// Static returns the asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
