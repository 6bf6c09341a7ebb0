package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// AboutPage renders the centre overview and university affiliation note.
func AboutPage(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="about">`)
		fmt.Fprintf(&b, `<h1>%s</h1>`, templ.EscapeString(T(page.Loc, "about.title")))
		for _, key := range []string{"about.description1", "about.description2", "about.description3"} {
			fmt.Fprintf(&b, `<p>%s</p>`, templ.EscapeString(T(page.Loc, key)))
		}
		b.WriteString(`<div class="affiliation-note">`)
		fmt.Fprintf(&b, `<span>%s</span> <strong>%s</strong>`,
			templ.EscapeString(T(page.Loc, "about.affiliation")),
			templ.EscapeString(T(page.Loc, "about.university")))
		b.WriteString("</div></section>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
