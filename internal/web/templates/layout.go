package templates

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/rjreducation/vsdcentre/internal/platform/branding"
	"github.com/rjreducation/vsdcentre/internal/web/routepath"
)

type navLink struct {
	Path string
	Key  string
}

func navLinks() []navLink {
	return []navLink{
		{Path: routepath.Root, Key: "nav.home"},
		{Path: routepath.About, Key: "nav.about"},
		{Path: routepath.Affiliation, Key: "nav.affiliation"},
		{Path: routepath.Course, Key: "nav.course"},
		{Path: routepath.Contact, Key: "nav.contact"},
	}
}

// ComposePageTitle appends the site name to a page title.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	if strings.HasSuffix(title, "| "+branding.AppName) {
		return title
	}
	return title + " | " + branding.AppName
}

// Layout wraps page content in the shared site chrome.
func Layout(page PageContext, title string, description string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		lang := strings.TrimSpace(page.Lang)
		if lang == "" {
			lang = "en"
		}
		b.WriteString("<!doctype html>\n")
		fmt.Fprintf(&b, `<html lang=%q>`, lang)
		b.WriteString("<head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		fmt.Fprintf(&b, "<title>%s</title>", templ.EscapeString(ComposePageTitle(title)))
		if description = strings.TrimSpace(description); description != "" {
			fmt.Fprintf(&b, `<meta name="description" content="%s">`, templ.EscapeString(description))
		}
		b.WriteString(`<link rel="stylesheet" href="/static/site.css">`)
		b.WriteString("</head><body>")
		writeTopbar(&b)
		writeNavbar(&b, page)
		b.WriteString(`<main class="site-main">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		var tail strings.Builder
		tail.WriteString("</main>")
		writeFooter(&tail, page)
		tail.WriteString("</body></html>")
		_, err := io.WriteString(w, tail.String())
		return err
	})
}

func writeTopbar(b *strings.Builder) {
	b.WriteString(`<div class="topbar">`)
	b.WriteString(`<span>+91 98765 43210</span>`)
	b.WriteString(`<span>info@rjreducation.com</span>`)
	b.WriteString("</div>")
}

func writeNavbar(b *strings.Builder, page PageContext) {
	b.WriteString(`<header class="navbar"><nav aria-label="Main">`)
	fmt.Fprintf(b, `<a class="brand" href=%q>%s</a>`, routepath.Root, templ.EscapeString(branding.AppName))
	b.WriteString(`<ul class="nav-links">`)
	for _, link := range navLinks() {
		class := "nav-link"
		if link.Path == page.CurrentPath {
			class = "nav-link active"
		}
		fmt.Fprintf(b, `<li><a class=%q href=%q>%s</a></li>`, class, link.Path, templ.EscapeString(T(page.Loc, link.Key)))
	}
	b.WriteString("</ul>")
	writeLanguageSwitcher(b, page)
	b.WriteString("</nav></header>")
}

func writeLanguageSwitcher(b *strings.Builder, page PageContext) {
	b.WriteString(`<div class="lang-switcher">`)
	for _, option := range LanguageOptions(page) {
		class := "lang-option"
		if option.Active {
			class = "lang-option active"
		}
		fmt.Fprintf(b, `<a class="%s" href="%s">%s</a>`, class, templ.EscapeString(LanguageURL(page, option.Tag)), templ.EscapeString(option.Label))
	}
	b.WriteString("</div>")
}

func writeFooter(b *strings.Builder, page PageContext) {
	b.WriteString(`<footer class="site-footer">`)
	fmt.Fprintf(b, `<p class="footer-description">%s</p>`, templ.EscapeString(T(page.Loc, "footer.description")))
	fmt.Fprintf(b, `<h2>%s</h2><ul class="footer-links">`, templ.EscapeString(T(page.Loc, "footer.quick_links")))
	for _, link := range navLinks() {
		fmt.Fprintf(b, `<li><a href=%q>%s</a></li>`, link.Path, templ.EscapeString(T(page.Loc, link.Key)))
	}
	b.WriteString("</ul>")
	fmt.Fprintf(b, `<p class="footer-copyright">&copy; %d %s. %s</p>`,
		time.Now().Year(),
		templ.EscapeString(branding.AppName),
		templ.EscapeString(T(page.Loc, "footer.copyright")))
	b.WriteString("</footer>")
}
