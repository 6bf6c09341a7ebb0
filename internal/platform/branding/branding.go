// Package branding centralizes product naming used across the site.
package branding

// AppName is the public display name of the institute.
const AppName = "RJR Education VSD Centre"

// University is the affiliating university displayed on the site.
const University = "Manonmaniam Sundaranar University"
