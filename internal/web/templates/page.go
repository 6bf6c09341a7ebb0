package templates

import (
	"github.com/rjreducation/vsdcentre/internal/web/i18nhttp"
	"golang.org/x/text/language"
)

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
}

// LanguageOption represents a supported language option in the UI.
type LanguageOption = i18nhttp.LanguageOption

// LanguageOptions returns supported language options with active selection.
func LanguageOptions(page PageContext) []LanguageOption {
	return i18nhttp.BuildLanguageOptions(i18nhttp.Supported(), page.Lang, func(tag language.Tag) string {
		return T(page.Loc, i18nhttp.LanguageKeyLabel(tag))
	})
}

// ActiveLanguageLabel returns the label for the active language selection.
func ActiveLanguageLabel(page PageContext) string {
	return i18nhttp.ActiveLanguageLabel(LanguageOptions(page))
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(page PageContext, tag string) string {
	return i18nhttp.LanguageURL(page.CurrentPath, page.CurrentQuery, tag)
}
