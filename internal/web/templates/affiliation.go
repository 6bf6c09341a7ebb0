package templates

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

type recognitionItem struct {
	Title  string
	Detail string
}

func recognitionItems() []recognitionItem {
	return []recognitionItem{
		{Title: "UGC Recognition", Detail: "University Grants Commission approved institution"},
		{Title: "State Government Approval", Detail: "Officially recognized by Tamil Nadu State Government"},
		{Title: "Professional Body Recognition", Detail: "Acknowledged by traditional medicine councils"},
		{Title: "National Validity", Detail: "Diploma valid across India for practice and employment"},
	}
}

// AffiliationPage renders the university affiliation and recognition details.
func AffiliationPage(page PageContext) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="affiliation">`)
		fmt.Fprintf(&b, `<h1>%s</h1>`, templ.EscapeString(T(page.Loc, "nav.affiliation")))
		fmt.Fprintf(&b, `<p class="affiliation-university"><span>%s</span> <strong>%s</strong></p>`,
			templ.EscapeString(T(page.Loc, "about.affiliation")),
			templ.EscapeString(T(page.Loc, "about.university")))
		b.WriteString(`<ul class="recognition-list">`)
		for _, item := range recognitionItems() {
			fmt.Fprintf(&b, `<li><h3>%s</h3><p>%s</p></li>`,
				templ.EscapeString(item.Title),
				templ.EscapeString(item.Detail))
		}
		b.WriteString("</ul></section>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
