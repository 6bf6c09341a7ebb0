// Package routepath stores canonical HTTP paths for web modules.
package routepath

const (
	Root        = "/"
	About       = "/about"
	Affiliation = "/affiliation"
	Course      = "/course"
	Contact     = "/contact"

	APIContactPrefix = "/api/contact/"
	APIContact       = "/api/contact"
)
