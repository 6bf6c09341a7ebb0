package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/rjreducation/vsdcentre/internal/web/routepath"
)

// HomePage renders the landing page with the hero section and course highlights.
func HomePage(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="hero">`)
		fmt.Fprintf(&b, `<h1>%s</h1>`, templ.EscapeString(T(page.Loc, "hero.title")))
		fmt.Fprintf(&b, `<h2>%s</h2>`, templ.EscapeString(T(page.Loc, "hero.subtitle")))
		fmt.Fprintf(&b, `<p>%s</p>`, templ.EscapeString(T(page.Loc, "hero.description")))
		fmt.Fprintf(&b, `<a class="btn btn-primary" href=%q>%s</a>`, routepath.Contact, templ.EscapeString(T(page.Loc, "hero.cta")))
		b.WriteString("</section>")

		b.WriteString(`<section class="highlights">`)
		highlights := []struct {
			titleKey string
			descKey  string
		}{
			{"course.traditional", "course.traditional_desc"},
			{"course.faculty", "course.faculty_desc"},
			{"course.career", "course.career_desc"},
		}
		for _, highlight := range highlights {
			b.WriteString(`<article class="highlight-card">`)
			fmt.Fprintf(&b, `<h3>%s</h3>`, templ.EscapeString(T(page.Loc, highlight.titleKey)))
			fmt.Fprintf(&b, `<p>%s</p>`, templ.EscapeString(T(page.Loc, highlight.descKey)))
			b.WriteString("</article>")
		}
		b.WriteString("</section>")

		_, err := io.WriteString(w, b.String())
		return err
	})
}
