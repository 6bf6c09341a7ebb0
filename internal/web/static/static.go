// Package static embeds the site's static assets.
package static

import (
	"embed"
	"net/http"
)

//go:embed site.css
var assetsFS embed.FS

// Handler serves the embedded static assets.
func Handler() http.Handler {
	return http.FileServerFS(assetsFS)
}
